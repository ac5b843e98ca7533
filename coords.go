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
	"math"

	"seehuhn.de/go/geom/vec"
)

// devInt converts a user-space coordinate to a device pixel coordinate.
// All float→pixel conversions in this package go through devInt, so
// pixel sets are deterministic regardless of which code path produced a
// coordinate. Rounding is half-away-from-zero.
func devInt(x float64) int {
	return int(math.Round(x))
}

// devPoint converts a user-space point to a device pixel.
func devPoint(p vec.Vec2) image.Point {
	return image.Point{X: devInt(p.X), Y: devInt(p.Y)}
}
