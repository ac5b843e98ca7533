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
	"image/color"

	"seehuhn.de/go/geom/vec"
)

// Shape is one drawable element of a document. The concrete types are
// Line, Circle, Bezier, Char, and Polygon; no other implementations
// exist, so a type switch over these five cases is exhaustive.
type Shape interface {
	isShape()
}

// Line is a straight segment between two endpoints.
type Line struct {
	P0, P1 vec.Vec2
	Color  color.RGBA
}

func (Line) isShape() {}

// Circle is described by its center and one point on the circumference.
// The radius is the Euclidean distance between the two.
type Circle struct {
	Center, Edge vec.Vec2
	Color        color.RGBA
}

func (Circle) isShape() {}

// Radius returns the circle's radius.
func (c Circle) Radius() float64 {
	return c.Edge.Sub(c.Center).Length()
}

// Bezier is a cubic Bézier curve with four control points.
type Bezier struct {
	P0, P1, P2, P3 vec.Vec2
	Color          color.RGBA
}

func (Bezier) isShape() {}

// Char places a glyph from the built-in 8×8 bitmap alphabet.
// Scale is the integer pixel replication factor and must be at least 1.
type Char struct {
	Origin vec.Vec2
	Glyph  byte
	Scale  int
	Color  color.RGBA
}

func (Char) isShape() {}

// Polygon is a closed ring of vertices; the last vertex implicitly
// connects back to the first. At least 3 vertices are required for the
// polygon to render. The outline is always drawn; the interior is
// filled only if Filled is set.
type Polygon struct {
	Vertices []vec.Vec2
	Filled   bool
	Color    color.RGBA
}

func (Polygon) isShape() {}

// points returns the shape's point-set. The slice aliases the shape's
// own storage for Polygon and is freshly allocated otherwise.
func points(s Shape) []vec.Vec2 {
	switch s := s.(type) {
	case Line:
		return []vec.Vec2{s.P0, s.P1}
	case Circle:
		return []vec.Vec2{s.Center, s.Edge}
	case Bezier:
		return []vec.Vec2{s.P0, s.P1, s.P2, s.P3}
	case Char:
		return []vec.Vec2{s.Origin}
	case Polygon:
		return s.Vertices
	}
	return nil
}

// withPoints returns a copy of s with its point-set replaced by pts,
// preserving color and all other metadata. The length of pts must match
// the shape's own point count.
func withPoints(s Shape, pts []vec.Vec2) Shape {
	switch s := s.(type) {
	case Line:
		s.P0, s.P1 = pts[0], pts[1]
		return s
	case Circle:
		s.Center, s.Edge = pts[0], pts[1]
		return s
	case Bezier:
		s.P0, s.P1, s.P2, s.P3 = pts[0], pts[1], pts[2], pts[3]
		return s
	case Char:
		s.Origin = pts[0]
		return s
	case Polygon:
		s.Vertices = pts
		return s
	}
	return s
}
