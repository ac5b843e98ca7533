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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Translate returns a copy of s with every point moved by (dx, dy).
// Color and all other metadata are unchanged.
func Translate(s Shape, dx, dy float64) Shape {
	return apply(s, matrix.Matrix{1, 0, 0, 1, dx, dy})
}

// Rotate returns a copy of s rotated by angleDeg degrees about the
// pivot. In the y-down pixel coordinate space a positive angle rotates
// counter-clockwise. Rotating by 0 is the identity up to floating-point
// rounding.
func Rotate(s Shape, angleDeg float64, pivot vec.Vec2) Shape {
	rad := angleDeg * math.Pi / 180
	c := math.Cos(rad)
	sn := math.Sin(rad)
	return apply(s, matrix.Matrix{
		c, sn, -sn, c,
		pivot.X - c*pivot.X + sn*pivot.Y,
		pivot.Y - sn*pivot.X - c*pivot.Y,
	})
}

// Scale returns a copy of s scaled by factor about the pivot. Scaling
// by 1 is the identity up to floating-point rounding. The factor must
// be positive; callers are responsible for rejecting factor ≤ 0.
func Scale(s Shape, factor float64, pivot vec.Vec2) Shape {
	return apply(s, matrix.Matrix{
		factor, 0, 0, factor,
		pivot.X * (1 - factor),
		pivot.Y * (1 - factor),
	})
}

// apply maps every point of s through m, leaving metadata untouched.
func apply(s Shape, m matrix.Matrix) Shape {
	old := points(s)
	pts := make([]vec.Vec2, len(old))
	for i, p := range old {
		pts[i] = vec.Vec2{
			X: m[0]*p.X + m[2]*p.Y + m[4],
			Y: m[1]*p.X + m[3]*p.Y + m[5],
		}
	}
	return withPoints(s, pts)
}
