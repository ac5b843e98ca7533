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
	"fmt"
	"image/color"
)

// Black is the default shape color.
var Black = color.RGBA{A: 255}

// ParseHexColor parses a hex-triplet color string of the form "#rrggbb"
// or the short form "#rgb". The alpha channel is always fully opaque.
func ParseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 255}

	hexVal := func(b byte) (uint8, error) {
		switch {
		case b >= '0' && b <= '9':
			return b - '0', nil
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10, nil
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10, nil
		}
		return 0, fmt.Errorf("invalid hex digit %q", b)
	}

	var err error
	byteAt := func(i int) uint8 {
		hi, e1 := hexVal(s[i])
		lo, e2 := hexVal(s[i+1])
		if err == nil {
			if e1 != nil {
				err = e1
			} else if e2 != nil {
				err = e2
			}
		}
		return hi<<4 | lo
	}

	switch {
	case len(s) == 7 && s[0] == '#':
		c.R = byteAt(1)
		c.G = byteAt(3)
		c.B = byteAt(5)
	case len(s) == 4 && s[0] == '#':
		r, e1 := hexVal(s[1])
		g, e2 := hexVal(s[2])
		b, e3 := hexVal(s[3])
		if e1 != nil {
			err = e1
		} else if e2 != nil {
			err = e2
		} else if e3 != nil {
			err = e3
		}
		c.R = r * 17
		c.G = g * 17
		c.B = b * 17
	default:
		return c, fmt.Errorf("invalid color %q", s)
	}
	if err != nil {
		return color.RGBA{A: 255}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}

// FormatHexColor renders c in the "#rrggbb" interchange form.
// The alpha channel is ignored.
func FormatHexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
