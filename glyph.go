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

// glyphs is the built-in 8×8 dot-matrix alphabet. Each glyph is eight
// rows of eight cells; '#' marks a lit cell.
var glyphs = map[byte][8]string{
	'A': {
		"  ####  ",
		" ##  ## ",
		"##    ##",
		"########",
		"##    ##",
		"##    ##",
		"##    ##",
		"        ",
	},
	'B': {
		"####### ",
		"##    ##",
		"##    ##",
		"####### ",
		"##    ##",
		"##    ##",
		"####### ",
		"        ",
	},
	'C': {
		" ###### ",
		"##    ##",
		"##      ",
		"##      ",
		"##      ",
		"##    ##",
		" ###### ",
		"        ",
	},
}

// DefaultGlyph is substituted for characters outside the built-in
// alphabet.
const DefaultGlyph = 'A'

// HasGlyph reports whether ch is part of the built-in alphabet.
// Lower-case letters match their upper-case glyphs.
func HasGlyph(ch byte) bool {
	_, ok := glyphs[upper(ch)]
	return ok
}

// GlyphPixels plots the glyph for ch with its top-left corner at
// (x, y). Each lit cell of the 8×8 pattern becomes a scale×scale block
// of pixels, offset from the origin by (col·scale, row·scale).
// Characters outside the alphabet fall back to DefaultGlyph; this is
// deliberate and not an error. Scale must be at least 1.
func GlyphPixels(ch byte, x, y, scale int, plot func(x, y int)) {
	if scale < 1 {
		return
	}
	pattern, ok := glyphs[upper(ch)]
	if !ok {
		pattern = glyphs[DefaultGlyph]
	}

	for row, cells := range pattern {
		for col := range 8 {
			if cells[col] != '#' {
				continue
			}
			for dy := range scale {
				for dx := range scale {
					plot(x+col*scale+dx, y+row*scale+dy)
				}
			}
		}
	}
}

func upper(ch byte) byte {
	if ch >= 'a' && ch <= 'z' {
		return ch - 'a' + 'A'
	}
	return ch
}
