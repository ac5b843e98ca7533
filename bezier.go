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

	"seehuhn.de/go/geom/vec"
)

// FlattenBezier samples the cubic Bézier curve with control points
// p0, p1, p2, p3 at steps+1 uniformly spaced parameter values,
// inclusive of both endpoints, and appends the device-space samples to
// dst. The samples are the cubic Bernstein blend
//
//	B(t) = (1-t)³·p0 + 3(1-t)²t·p1 + 3(1-t)t²·p2 + t³·p3
//
// converted to pixels with devInt. The curve is rendered by connecting
// consecutive samples with LinePixels rather than by a dedicated curve
// pixel walk; the step count controls the faceting error. Steps must be
// at least 1.
func FlattenBezier(dst []image.Point, p0, p1, p2, p3 vec.Vec2, steps int) []image.Point {
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		t2 := t * t
		t3 := t2 * t
		mt := 1 - t
		mt2 := mt * mt
		mt3 := mt2 * mt

		pt := p0.Mul(mt3).
			Add(p1.Mul(3 * mt2 * t)).
			Add(p2.Mul(3 * mt * t2)).
			Add(p3.Mul(t3))
		dst = append(dst, devPoint(pt))
	}
	return dst
}
