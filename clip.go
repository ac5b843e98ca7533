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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Outcode is the 4-bit Cohen-Sutherland region classification of a
// point relative to a clip rectangle. The zero value means the point is
// inside.
type Outcode uint8

const (
	codeLeft   Outcode = 1 // x < xmin
	codeRight  Outcode = 2 // x > xmax
	codeBottom Outcode = 4 // y < ymin
	codeTop    Outcode = 8 // y > ymax
)

// outcode classifies p relative to w. w must be normalized
// (LLx ≤ URx, LLy ≤ URy).
func outcode(p vec.Vec2, w rect.Rect) Outcode {
	var code Outcode
	if p.X < w.LLx {
		code |= codeLeft
	} else if p.X > w.URx {
		code |= codeRight
	}
	if p.Y < w.LLy {
		code |= codeBottom
	} else if p.Y > w.URy {
		code |= codeTop
	}
	return code
}

// ClipLine clips the segment p0–p1 against the axis-aligned window w
// using the Cohen-Sutherland algorithm. It returns the clipped segment
// with endpoints rounded to integer coordinates, or ok == false if the
// segment lies entirely outside the window. Absence of output is the
// defined "fully outside" result, not an error.
//
// Each iteration first accepts (both outcodes zero) or rejects (bitwise
// AND non-zero), and only then moves one outside endpoint onto a window
// boundary. The boundaries are tried in the order top, bottom, right,
// left. The trivial-reject test runs before any intersection is
// computed, so a segment parallel to and outside a boundary never
// reaches the corresponding division.
func ClipLine(p0, p1 vec.Vec2, w rect.Rect) (q0, q1 vec.Vec2, ok bool) {
	code0 := outcode(p0, w)
	code1 := outcode(p1, w)

	for {
		if code0 == 0 && code1 == 0 {
			q0 = vec.Vec2{X: float64(devInt(p0.X)), Y: float64(devInt(p0.Y))}
			q1 = vec.Vec2{X: float64(devInt(p1.X)), Y: float64(devInt(p1.Y))}
			return q0, q1, true
		}
		if code0&code1 != 0 {
			return vec.Vec2{}, vec.Vec2{}, false
		}

		// Move whichever endpoint is outside onto the window boundary
		// flagged by its outcode.
		codeOut := code0
		if codeOut == 0 {
			codeOut = code1
		}

		var p vec.Vec2
		switch {
		case codeOut&codeTop != 0:
			p.X = p0.X + (p1.X-p0.X)*(w.URy-p0.Y)/(p1.Y-p0.Y)
			p.Y = w.URy
		case codeOut&codeBottom != 0:
			p.X = p0.X + (p1.X-p0.X)*(w.LLy-p0.Y)/(p1.Y-p0.Y)
			p.Y = w.LLy
		case codeOut&codeRight != 0:
			p.Y = p0.Y + (p1.Y-p0.Y)*(w.URx-p0.X)/(p1.X-p0.X)
			p.X = w.URx
		case codeOut&codeLeft != 0:
			p.Y = p0.Y + (p1.Y-p0.Y)*(w.LLx-p0.X)/(p1.X-p0.X)
			p.X = w.LLx
		}

		if codeOut == code0 {
			p0 = p
			code0 = outcode(p0, w)
		} else {
			p1 = p
			code1 = outcode(p1, w)
		}
	}
}
