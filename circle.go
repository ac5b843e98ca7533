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

// CirclePixels draws the outline of the circle with the given center
// and radius using the midpoint circle algorithm. One octant is
// computed with the integer decision variable d = 1 - radius; the
// remaining seven octants are filled in by reflection. Pixels near the
// octant boundaries are emitted more than once; sinks must tolerate
// duplicates. Radius 0 plots the center pixel (eight times).
//
// A negative radius plots nothing.
func CirclePixels(cx, cy, radius int, plot func(x, y int)) {
	if radius < 0 {
		return
	}

	x, y := 0, radius
	d := 1 - radius
	for x <= y {
		plot(cx+x, cy+y)
		plot(cx-x, cy+y)
		plot(cx+x, cy-y)
		plot(cx-x, cy-y)
		plot(cx+y, cy+x)
		plot(cx-y, cy+x)
		plot(cx+y, cy-x)
		plot(cx-y, cy-x)

		if d < 0 {
			d += 2*x + 3
		} else {
			d += 2*(x-y) + 5
			y--
		}
		x++
	}
}
