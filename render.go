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

package sketch

import (
	"image"
	"image/color"
)

// DefaultBezierSteps is the number of line segments used to flatten a
// cubic Bézier curve when no other value is configured.
const DefaultBezierSteps = 100

// Renderer converts shapes to pixel batches. Create one instance and
// reuse it for multiple shapes; internal buffers grow as needed but
// never shrink.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	// Bounds restricts polygon fill scans. Pixels produced by the
	// other rasterisers are not clamped here; the pixel sink drops
	// anything out of bounds.
	Bounds image.Rectangle

	// BezierSteps is the number of segments used to flatten cubic
	// Bézier curves. Larger values reduce faceting.
	BezierSteps int

	pix     []image.Point // output buffer, reused across calls
	samples []image.Point // curve sample buffer, reused across calls
}

// NewRenderer returns a Renderer for the given target bounds.
func NewRenderer(bounds image.Rectangle) *Renderer {
	return &Renderer{
		Bounds:      bounds,
		BezierSteps: DefaultBezierSteps,
	}
}

// Rasterise converts a single shape into its pixel set, in plot order.
// For a filled polygon the outline pixels precede the fill pixels. The
// returned slice is reused by the next call to Rasterise or Render and
// must not be retained.
//
// Malformed shapes (see Malformed) produce an empty pixel set.
func (r *Renderer) Rasterise(s Shape) []image.Point {
	r.pix = r.pix[:0]
	plot := func(x, y int) {
		r.pix = append(r.pix, image.Point{X: x, Y: y})
	}

	switch s := s.(type) {
	case Line:
		p0 := devPoint(s.P0)
		p1 := devPoint(s.P1)
		LinePixels(p0.X, p0.Y, p1.X, p1.Y, plot)

	case Circle:
		c := devPoint(s.Center)
		CirclePixels(c.X, c.Y, devInt(s.Radius()), plot)

	case Bezier:
		steps := r.BezierSteps
		if steps < 1 {
			steps = DefaultBezierSteps
		}
		r.samples = FlattenBezier(r.samples[:0], s.P0, s.P1, s.P2, s.P3, steps)
		for i := 0; i+1 < len(r.samples); i++ {
			a, b := r.samples[i], r.samples[i+1]
			LinePixels(a.X, a.Y, b.X, b.Y, plot)
		}

	case Char:
		o := devPoint(s.Origin)
		GlyphPixels(s.Glyph, o.X, o.Y, s.Scale, plot)

	case Polygon:
		n := len(s.Vertices)
		if n < 3 {
			break
		}
		for i := range n {
			p0 := devPoint(s.Vertices[i])
			p1 := devPoint(s.Vertices[(i+1)%n])
			LinePixels(p0.X, p0.Y, p1.X, p1.Y, plot)
		}
		if s.Filled {
			FillPolygon(s.Vertices, r.Bounds, plot)
		}
	}

	return r.pix
}

// Render rasterises the shapes in order onto dst, so later shapes paint
// over earlier ones. Malformed shapes are skipped with a warning; one
// bad shape never aborts the rest of the batch. The canvas is not
// cleared first.
func (r *Renderer) Render(dst Canvas, shapes []Shape) {
	r.Bounds = dst.Bounds()
	for _, s := range shapes {
		if reason := Malformed(s); reason != "" {
			Logger().Warn("skipping shape", "reason", reason)
			continue
		}
		pix := r.Rasterise(s)
		if len(pix) == 0 {
			continue
		}
		dst.WritePixels(pix, ShapeColor(s))
	}
}

// ShapeColor returns the shape's color.
func ShapeColor(s Shape) color.RGBA {
	switch s := s.(type) {
	case Line:
		return s.Color
	case Circle:
		return s.Color
	case Bezier:
		return s.Color
	case Char:
		return s.Color
	case Polygon:
		return s.Color
	}
	return Black
}

// Malformed reports why a shape cannot be rendered, or "" if it can.
// Degenerate geometry (zero-length lines, zero-radius circles,
// zero-area polygons with 3 or more vertices) is not malformed; it
// renders to a valid, possibly trivial, pixel set.
func Malformed(s Shape) string {
	switch s := s.(type) {
	case Polygon:
		if len(s.Vertices) < 3 {
			return "polygon has fewer than 3 vertices"
		}
	case Char:
		if s.Scale < 1 {
			return "character scale is less than 1"
		}
	}
	return ""
}
