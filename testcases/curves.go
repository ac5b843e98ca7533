package testcases

import "seehuhn.de/go/sketch"

var curveCases = []TestCase{
	{
		Name:   "arch",
		Width:  96,
		Height: 64,
		Shapes: []sketch.Shape{
			sketch.Bezier{
				P0: pt(8, 56), P1: pt(32, 8), P2: pt(64, 8), P3: pt(88, 56),
				Color: rgb(0, 0, 0),
			},
		},
	},
	{
		Name:   "s_curve",
		Width:  96,
		Height: 96,
		Shapes: []sketch.Shape{
			sketch.Bezier{
				P0: pt(8, 8), P1: pt(88, 8), P2: pt(8, 88), P3: pt(88, 88),
				Color: rgb(0, 128, 0),
			},
		},
	},
	{
		Name:   "loop",
		Width:  96,
		Height: 96,
		Shapes: []sketch.Shape{
			sketch.Bezier{
				P0: pt(24, 72), P1: pt(120, 8), P2: pt(-24, 8), P3: pt(72, 72),
				Color: rgb(0, 0, 0),
			},
		},
	},
	{
		Name:   "collinear_controls",
		Width:  64,
		Height: 32,
		Shapes: []sketch.Shape{
			sketch.Bezier{
				P0: pt(4, 16), P1: pt(24, 16), P2: pt(44, 16), P3: pt(60, 16),
				Color: rgb(0, 0, 0),
			},
		},
	},
}
