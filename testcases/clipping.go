package testcases

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/sketch"
)

var clipCases = []TestCase{
	{
		Name:   "line_crossing_window",
		Width:  64,
		Height: 64,
		Window: &rect.Rect{LLx: 16, LLy: 16, URx: 48, URy: 48},
		Shapes: []sketch.Shape{
			sketch.Line{P0: pt(4, 4), P1: pt(60, 60), Color: rgb(0, 0, 0)},
		},
	},
	{
		Name:   "line_inside_window",
		Width:  64,
		Height: 64,
		Window: &rect.Rect{LLx: 8, LLy: 8, URx: 56, URy: 56},
		Shapes: []sketch.Shape{
			sketch.Line{P0: pt(16, 24), P1: pt(48, 40), Color: rgb(0, 0, 0)},
		},
	},
	{
		Name:   "mixed_shapes",
		Width:  96,
		Height: 96,
		Window: &rect.Rect{LLx: 24, LLy: 24, URx: 72, URy: 72},
		Shapes: []sketch.Shape{
			sketch.Line{P0: pt(0, 48), P1: pt(96, 48), Color: rgb(0, 0, 0)},
			sketch.Line{P0: pt(80, 8), P1: pt(92, 20), Color: rgb(128, 0, 0)},
			sketch.Circle{Center: pt(48, 48), Edge: pt(64, 48), Color: rgb(0, 0, 255)},
		},
	},
}
