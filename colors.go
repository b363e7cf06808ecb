// Copyright (c) Molviz & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package showcolor

// namedColors maps generic color names to their RGB triples as the renderer
// defines them. Several names share a triple (e.g. "dash" and "yellow"); the
// reverse mapping resolves such collisions to the lexicographically smallest
// name so that lookups stay deterministic.
var namedColors = map[string]Color{
	"aquamarine":   {0.5, 1.0, 1.0},
	"black":        {0.0, 0.0, 0.0},
	"blue":         {0.0, 0.0, 1.0},
	"bluewhite":    {0.85, 0.85, 1.0},
	"br0":          {0.1, 0.1, 1.0},
	"br1":          {0.2, 0.1, 0.9},
	"br2":          {0.3, 0.1, 0.8},
	"br3":          {0.4, 0.1, 0.7},
	"br4":          {0.5, 0.1, 0.6},
	"br5":          {0.6, 0.1, 0.5},
	"br6":          {0.7, 0.1, 0.4},
	"br7":          {0.8, 0.1, 0.3},
	"br8":          {0.9, 0.1, 0.2},
	"br9":          {1.0, 0.1, 0.1},
	"brightorange": {1.0, 0.7, 0.2},
	"brown":        {0.65, 0.32, 0.17},
	"carbon":       {0.2, 1.0, 0.2},
	"chartreuse":   {0.5, 1.0, 0.0},
	"chocolate":    {0.555, 0.222, 0.111},
	"cyan":         {0.0, 1.0, 1.0},
	"darksalmon":   {0.73, 0.55, 0.52},
	"dash":         {1.0, 1.0, 0.0},
	"deepblue":     {0.25, 0.25, 0.65},
	"deepolive":    {0.6, 0.6, 0.1},
	"deeppurple":   {0.6, 0.1, 0.6},
	"deepsalmon":   {1.0, 0.42, 0.42},
	"deepteal":     {0.1, 0.6, 0.6},
	"density":      {0.1, 0.1, 0.6},
	"dirtyviolet":  {0.7, 0.5, 0.5},
	"firebrick":    {0.698, 0.13, 0.13},
	"forest":       {0.2, 0.6, 0.2},
	"gray":         {0.5, 0.5, 0.5},
	"green":        {0.0, 1.0, 0.0},
	"greencyan":    {0.25, 1.0, 0.75},
	"hotpink":      {1.0, 0.0, 0.5},
	"hydrogen":     {0.9, 0.9, 0.9},
	"lightblue":    {0.75, 0.75, 1.0},
	"lightmagenta": {1.0, 0.2, 0.8},
	"lightorange":  {1.0, 0.8, 0.5},
	"lightpink":    {1.0, 0.75, 0.87},
	"lightteal":    {0.4, 0.7, 0.7},
	"lime":         {0.5, 1.0, 0.5},
	"limegreen":    {0.0, 1.0, 0.5},
	"limon":        {0.75, 1.0, 0.25},
	"magenta":      {1.0, 0.0, 1.0},
	"marine":       {0.0, 0.5, 1.0},
	"nitrogen":     {0.2, 0.2, 1.0},
	"olive":        {0.77, 0.7, 0.0},
	"orange":       {1.0, 0.5, 0.0},
	"oxygen":       {1.0, 0.3, 0.3},
	"palecyan":     {0.8, 1.0, 1.0},
	"palegreen":    {0.65, 0.9, 0.65},
	"paleyellow":   {1.0, 1.0, 0.5},
	"pink":         {1.0, 0.65, 0.85},
	"purple":       {0.75, 0.0, 0.75},
	"purpleblue":   {0.5, 0.0, 1.0},
	"raspberry":    {0.7, 0.3, 0.4},
	"red":          {1.0, 0.0, 0.0},
	"ruby":         {0.6, 0.2, 0.2},
	"salmon":       {1.0, 0.6, 0.6},
	"sand":         {0.72, 0.55, 0.3},
	"skyblue":      {0.2, 0.5, 0.8},
	"slate":        {0.5, 0.5, 1.0},
	"smudge":       {0.55, 0.7, 0.4},
	"splitpea":     {0.52, 0.75, 0.0},
	"sulfur":       {0.9, 0.775, 0.25},
	"teal":         {0.0, 0.75, 0.75},
	"tv_blue":      {0.3, 0.3, 1.0},
	"tv_green":     {0.2, 1.0, 0.2},
	"tv_orange":    {1.0, 0.55, 0.15},
	"tv_red":       {1.0, 0.2, 0.2},
	"tv_yellow":    {1.0, 1.0, 0.2},
	"violet":       {1.0, 0.5, 1.0},
	"violetpurple": {0.55, 0.25, 0.6},
	"warmpink":     {0.85, 0.2, 0.5},
	"wheat":        {0.99, 0.82, 0.65},
	"white":        {1.0, 1.0, 1.0},
	"yellow":       {1.0, 1.0, 0.0},
	"yelloworange": {1.0, 0.87, 0.37},
}

// elementColors maps chemical element names to the display colors the
// renderer assigns their atoms. Element entries take priority over generic
// names when both tables contain the same triple.
var elementColors = map[string]Color{
	"actinium":      {0.439, 0.671, 0.980},
	"aluminum":      {0.749, 0.651, 0.651},
	"americium":     {0.329, 0.361, 0.949},
	"antimony":      {0.620, 0.388, 0.710},
	"argon":         {0.502, 0.820, 0.890},
	"arsenic":       {0.741, 0.502, 0.890},
	"astatine":      {0.459, 0.310, 0.271},
	"barium":        {0.000, 0.788, 0.000},
	"berkelium":     {0.541, 0.310, 0.890},
	"beryllium":     {0.761, 1.000, 0.000},
	"bismuth":       {0.620, 0.310, 0.710},
	"bohrium":       {0.878, 0.000, 0.220},
	"boron":         {1.000, 0.710, 0.710},
	"bromine":       {0.651, 0.161, 0.161},
	"cadmium":       {1.000, 0.851, 0.561},
	"calcium":       {0.239, 1.000, 0.000},
	"californium":   {0.631, 0.212, 0.831},
	"carbon":        {0.200, 1.000, 0.200},
	"cerium":        {1.000, 1.000, 0.780},
	"cesium":        {0.341, 0.090, 0.561},
	"chlorine":      {0.122, 0.941, 0.122},
	"chromium":      {0.541, 0.600, 0.780},
	"cobalt":        {0.941, 0.565, 0.627},
	"copper":        {0.784, 0.502, 0.200},
	"curium":        {0.471, 0.361, 0.890},
	"deuterium":     {0.900, 0.900, 0.900},
	"dubnium":       {0.820, 0.000, 0.310},
	"dysprosium":    {0.122, 1.000, 0.780},
	"einsteinium":   {0.702, 0.122, 0.831},
	"erbium":        {0.000, 0.902, 0.459},
	"europium":      {0.380, 1.000, 0.780},
	"fermium":       {0.702, 0.122, 0.729},
	"fluorine":      {0.702, 1.000, 1.000},
	"francium":      {0.259, 0.000, 0.400},
	"gadolinium":    {0.271, 1.000, 0.780},
	"gallium":       {0.761, 0.561, 0.561},
	"germanium":     {0.400, 0.561, 0.561},
	"gold":          {1.000, 0.820, 0.137},
	"hafnium":       {0.302, 0.761, 1.000},
	"hassium":       {0.902, 0.000, 0.180},
	"helium":        {0.851, 1.000, 1.000},
	"holmium":       {0.000, 1.000, 0.612},
	"hydrogen":      {0.900, 0.900, 0.900},
	"indium":        {0.651, 0.459, 0.451},
	"iodine":        {0.580, 0.000, 0.580},
	"iridium":       {0.090, 0.329, 0.529},
	"iron":          {0.878, 0.400, 0.200},
	"krypton":       {0.361, 0.722, 0.820},
	"lanthanum":     {0.439, 0.831, 1.000},
	"lawrencium":    {0.780, 0.000, 0.400},
	"lead":          {0.341, 0.349, 0.380},
	"lithium":       {0.800, 0.502, 1.000},
	"lutetium":      {0.000, 0.671, 0.141},
	"magnesium":     {0.541, 1.000, 0.000},
	"manganese":     {0.612, 0.478, 0.780},
	"meitnerium":    {0.922, 0.000, 0.149},
	"mendelevium":   {0.702, 0.051, 0.651},
	"mercury":       {0.722, 0.722, 0.816},
	"molybdenum":    {0.329, 0.710, 0.710},
	"neodymium":     {0.780, 1.000, 0.780},
	"neon":          {0.702, 0.890, 0.961},
	"neptunium":     {0.000, 0.502, 1.000},
	"nickel":        {0.314, 0.816, 0.314},
	"niobium":       {0.451, 0.761, 0.788},
	"nitrogen":      {0.200, 0.200, 1.000},
	"nobelium":      {0.741, 0.051, 0.529},
	"osmium":        {0.149, 0.400, 0.588},
	"oxygen":        {1.000, 0.300, 0.300},
	"palladium":     {0.000, 0.412, 0.522},
	"phosphorus":    {1.000, 0.502, 0.000},
	"platinum":      {0.816, 0.816, 0.878},
	"plutonium":     {0.000, 0.420, 1.000},
	"polonium":      {0.671, 0.361, 0.000},
	"potassium":     {0.561, 0.251, 0.831},
	"praseodymium":  {0.851, 1.000, 0.780},
	"promethium":    {0.639, 1.000, 0.780},
	"protactinium":  {0.000, 0.631, 1.000},
	"radium":        {0.000, 0.490, 0.000},
	"radon":         {0.259, 0.510, 0.588},
	"rhenium":       {0.149, 0.490, 0.671},
	"rhodium":       {0.039, 0.490, 0.549},
	"rubidium":      {0.439, 0.180, 0.690},
	"ruthenium":     {0.141, 0.561, 0.561},
	"rutherfordium": {0.800, 0.000, 0.349},
	"samarium":      {0.561, 1.000, 0.780},
	"scandium":      {0.902, 0.902, 0.902},
	"seaborgium":    {0.851, 0.000, 0.271},
	"selenium":      {1.000, 0.631, 0.000},
	"silicon":       {0.941, 0.784, 0.627},
	"silver":        {0.753, 0.753, 0.753},
	"sodium":        {0.671, 0.361, 0.949},
	"strontium":     {0.000, 1.000, 0.000},
	"sulfur":        {0.900, 0.775, 0.250},
	"tantalum":      {0.302, 0.651, 1.000},
	"technetium":    {0.231, 0.620, 0.620},
	"tellurium":     {0.831, 0.478, 0.000},
	"terbium":       {0.188, 1.000, 0.780},
	"thallium":      {0.651, 0.329, 0.302},
	"thorium":       {0.000, 0.729, 1.000},
	"thulium":       {0.000, 0.831, 0.322},
	"tin":           {0.400, 0.502, 0.502},
	"titanium":      {0.749, 0.761, 0.780},
	"tungsten":      {0.129, 0.580, 0.839},
	"uranium":       {0.000, 0.561, 1.000},
	"vanadium":      {0.651, 0.651, 0.671},
	"xenon":         {0.259, 0.620, 0.690},
	"ytterbium":     {0.000, 0.749, 0.220},
	"yttrium":       {0.580, 1.000, 1.000},
	"zinc":          {0.490, 0.502, 0.690},
	"zirconium":     {0.580, 0.878, 0.878},
}

var (
	byName      = make(map[string]Color)
	byColor     = make(map[Color]string)
	byColorElem = make(map[Color]bool)
)

func init() {
	// Set up the forward and reverse indexes. The collapse rules are
	// order-independent, so ranging over the maps is safe: element entries
	// beat generic ones, and within a subset the smallest name wins.
	for n, c := range namedColors {
		byName[n] = c
		registerReverse(n, c, false)
	}
	for n, c := range elementColors {
		byName[n] = c
		registerReverse(n, c, true)
	}
}

func registerReverse(name string, c Color, elem bool) {
	c = c.Round()
	cur, ok := byColor[c]
	if !ok {
		byColor[c] = name
		byColorElem[c] = elem
		return
	}
	if elem != byColorElem[c] {
		if elem {
			byColor[c] = name
			byColorElem[c] = true
		}
		return
	}
	if name < cur {
		byColor[c] = name
	}
}

// Tables returns the built-in generic and element color tables. The returned
// maps are shared and must not be modified.
func Tables() (named, elements map[string]Color) {
	return namedColors, elementColors
}

// LookupName returns the name registered for c, if any. The triple is
// rounded to table precision before the lookup.
func LookupName(c Color) (string, bool) {
	n, ok := byColor[c.Round()]
	return n, ok
}

// LookupColor returns the triple registered for the given color name.
func LookupColor(name string) (Color, bool) {
	c, ok := byName[name]
	return c, ok
}
