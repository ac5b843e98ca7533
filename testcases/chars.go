package testcases

import "seehuhn.de/go/sketch"

var charCases = []TestCase{
	{
		Name:   "abc",
		Width:  96,
		Height: 32,
		Shapes: []sketch.Shape{
			sketch.Char{Origin: pt(4, 8), Glyph: 'A', Scale: 2, Color: rgb(0, 0, 0)},
			sketch.Char{Origin: pt(36, 8), Glyph: 'B', Scale: 2, Color: rgb(128, 0, 0)},
			sketch.Char{Origin: pt(68, 8), Glyph: 'C', Scale: 2, Color: rgb(0, 0, 128)},
		},
	},
	{
		Name:   "scales",
		Width:  96,
		Height: 48,
		Shapes: []sketch.Shape{
			sketch.Char{Origin: pt(4, 4), Glyph: 'A', Scale: 1, Color: rgb(0, 0, 0)},
			sketch.Char{Origin: pt(20, 4), Glyph: 'A', Scale: 2, Color: rgb(0, 0, 0)},
			sketch.Char{Origin: pt(44, 4), Glyph: 'A', Scale: 4, Color: rgb(0, 0, 0)},
		},
	},
	{
		Name:   "fallback_glyph",
		Width:  32,
		Height: 32,
		Shapes: []sketch.Shape{
			// 'Z' is not in the alphabet and renders as the default glyph.
			sketch.Char{Origin: pt(8, 8), Glyph: 'Z', Scale: 2, Color: rgb(0, 0, 0)},
		},
	},
}
