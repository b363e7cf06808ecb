// Copyright (c) Molviz & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws a legend image for annotated atoms: one row per
// atom with a swatch of its display color, its identifier, and the
// resolved color name.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"runtime"

	"github.com/creachadair/taskgroup"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/molviz/showcolor/annotate"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Preloaded font definition.
var regular *truetype.Font

func init() {
	var err error
	regular, err = truetype.Parse(goregular.TTF)
	if err != nil {
		panic(fmt.Sprintf("Parsing font: %v", err))
	}
}

// fontForSize constructs a new font.Face for the specified point size.
func fontForSize(points int) font.Face {
	return truetype.NewFace(regular, &truetype.Options{
		Size: float64(points),
	})
}

const (
	legendWidth = 420
	rowHeight   = 28
	swatchWidth = 48
	pad         = 8
	fontPoints  = 13
)

// Legend renders one row per annotated atom into a single image. Rows are
// drawn in parallel and composited in input order, so the result is
// deterministic for a given input.
func Legend(rows []annotate.Row) image.Image {
	bounds := image.Rect(0, 0, legendWidth, rowHeight*max(1, len(rows)))
	out := image.NewNRGBA(bounds)
	draw.Draw(out, bounds, image.NewUniform(color.White), image.Point{}, draw.Src)

	imgs := make([]image.Image, len(rows))
	g, run := taskgroup.New(nil).Limit(runtime.NumCPU())
	for i, r := range rows {
		i, r := i, r
		run(taskgroup.NoError(func() { imgs[i] = drawRow(r) }))
	}
	g.Wait()

	for i, img := range imgs {
		rect := image.Rect(0, i*rowHeight, legendWidth, (i+1)*rowHeight)
		draw.Draw(out, rect, img, image.Point{}, draw.Over)
	}
	return out
}

// drawRow paints a single legend row on its own context.
func drawRow(r annotate.Row) image.Image {
	dc := gg.NewContext(legendWidth, rowHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	c := r.RGB
	dc.SetRGB(c.R(), c.G(), c.B())
	dc.DrawRectangle(pad, pad/2, swatchWidth, rowHeight-pad)
	dc.Fill()

	dc.SetFontFace(fontForSize(fontPoints))
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(r.ID, swatchWidth+2*pad, rowHeight/2, 0, 0.35)
	dc.DrawStringAnchored(r.Name, legendWidth-pad, rowHeight/2, 1, 0.35)
	return dc.Image()
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
