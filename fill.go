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
	"slices"

	"seehuhn.de/go/geom/vec"
)

// FillPolygon fills the interior of the closed vertex ring using the
// even-odd (parity) rule, plotting one pixel at a time. The scan is
// restricted to bounds: scanlines outside its y-range are skipped and
// each span is clamped to its x-range. Fewer than 3 vertices fill
// nothing.
//
// For every integer scanline, the x-intersections with all non-horizontal
// edges whose y-range straddles the scanline are collected, sorted, and
// paired; pixels between each pair are inside. A scanline passing exactly
// through a vertex counts the intersection once per incident edge, so
// shared vertices can produce a double count; the resulting one-pixel
// artifacts are accepted rather than special-cased. An odd trailing
// intersection is ignored.
func FillPolygon(vertices []vec.Vec2, bounds image.Rectangle, plot func(x, y int)) {
	if len(vertices) < 3 {
		return
	}

	loY, hiY := vertices[0].Y, vertices[0].Y
	for _, v := range vertices[1:] {
		loY = min(loY, v.Y)
		hiY = max(hiY, v.Y)
	}
	yMin := max(devInt(loY), bounds.Min.Y)
	yMax := min(devInt(hiY), bounds.Max.Y)

	var xs []int // intersection buffer, reused across scanlines
	n := len(vertices)
	for y := yMin; y <= yMax; y++ {
		xs = xs[:0]
		yf := float64(y)

		for i := range n {
			v1 := vertices[i]
			v2 := vertices[(i+1)%n]

			if v1.Y == v2.Y { // horizontal edge
				continue
			}
			if yf < min(v1.Y, v2.Y) || yf > max(v1.Y, v2.Y) {
				continue
			}

			x := v1.X + (yf-v1.Y)*(v2.X-v1.X)/(v2.Y-v1.Y)
			xs = append(xs, devInt(x))
		}

		slices.Sort(xs)

		for i := 0; i+1 < len(xs); i += 2 {
			x1 := max(xs[i], bounds.Min.X)
			x2 := min(xs[i+1], bounds.Max.X)
			for x := x1; x <= x2; x++ {
				plot(x, y)
			}
		}
	}
}
