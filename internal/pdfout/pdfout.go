// seehuhn.de/go/sketch - a shape rasterisation library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package pdfout writes sketch documents as single-page vector PDFs.
// The output is a vector rendition of the same geometry the engine
// rasterises, useful as a visual reference; it is not pixel-identical
// to the aliased raster output.
package pdfout

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/sketch"
)

// Magic number for circular arc approximation with cubic Bézier curves.
const arcK = 0.5522847498

// WritePDF renders the shapes (and, if non-nil, the clip window
// outline) onto a single width×height page at pdfPath. One PDF point
// corresponds to one pixel.
func WritePDF(pdfPath string, width, height int, shapes []sketch.Shape, window *rect.Rect) error {
	paper := &pdf.Rectangle{
		URx: float64(width),
		URy: float64(height),
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// White background, matching the pixel canvas.
	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, float64(width), float64(height))
	page.Fill()

	// PDF origin is bottom-left; documents assume top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(height)})

	page.SetLineWidth(1)

	for _, s := range shapes {
		if sketch.Malformed(s) != "" {
			continue
		}
		drawShape(page, s)
	}

	if window != nil {
		page.SetStrokeColor(color.DeviceRGB{1, 0, 0})
		page.Rectangle(window.LLx, window.LLy, window.URx-window.LLx, window.URy-window.LLy)
		page.Stroke()
	}

	return page.Close()
}

func drawShape(page *document.Page, s sketch.Shape) {
	c := sketch.ShapeColor(s)
	col := color.DeviceRGB{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
	page.SetStrokeColor(col)
	page.SetFillColor(col)

	switch s := s.(type) {
	case sketch.Line:
		page.MoveTo(s.P0.X, s.P0.Y)
		page.LineTo(s.P1.X, s.P1.Y)
		page.Stroke()

	case sketch.Circle:
		addCircle(page, s.Center.X, s.Center.Y, s.Radius())
		page.Stroke()

	case sketch.Bezier:
		page.MoveTo(s.P0.X, s.P0.Y)
		page.CurveTo(s.P1.X, s.P1.Y, s.P2.X, s.P2.Y, s.P3.X, s.P3.Y)
		page.Stroke()

	case sketch.Char:
		// Replicate the engine's pixel grid as 1×1 rectangles.
		sketch.GlyphPixels(s.Glyph, 0, 0, s.Scale, func(x, y int) {
			page.Rectangle(s.Origin.X+float64(x), s.Origin.Y+float64(y), 1, 1)
		})
		page.Fill()

	case sketch.Polygon:
		if s.Filled {
			addRing(page, s)
			page.FillEvenOdd()
		}
		// The outline is always drawn, as in the raster engine.
		addRing(page, s)
		page.Stroke()
	}
}

func addRing(page *document.Page, p sketch.Polygon) {
	page.MoveTo(p.Vertices[0].X, p.Vertices[0].Y)
	for _, v := range p.Vertices[1:] {
		page.LineTo(v.X, v.Y)
	}
	page.ClosePath()
}

// addCircle approximates a circle with four cubic Bézier arcs.
func addCircle(page *document.Page, cx, cy, r float64) {
	kr := arcK * r
	page.MoveTo(cx, cy-r)
	page.CurveTo(cx+kr, cy-r, cx+r, cy-kr, cx+r, cy)
	page.CurveTo(cx+r, cy+kr, cx+kr, cy+r, cx, cy+r)
	page.CurveTo(cx-kr, cy+r, cx-r, cy+kr, cx-r, cy)
	page.CurveTo(cx-r, cy-kr, cx-kr, cy-r, cx, cy-r)
	page.ClosePath()
}
