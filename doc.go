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

// Package sketch rasterises vector shapes onto a discrete pixel grid.
//
// The package converts shape descriptions (lines, circles, cubic Bézier
// curves, bitmap glyphs, polygons) into exact pixel sets using classic
// aliased algorithms: Bresenham line walking, the midpoint circle
// algorithm, even-odd scanline polygon filling, and fixed-step curve
// flattening. Line segments can be clipped against an axis-aligned
// window with the Cohen-Sutherland outcode algorithm, and whole shapes
// can be translated, rotated, and scaled about a pivot.
//
// There is no anti-aliasing and no sub-pixel positioning: every
// operation produces integer pixel coordinates, and identical inputs
// produce identical pixel sets.
package sketch
