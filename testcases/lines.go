package testcases

import "seehuhn.de/go/sketch"

var lineCases = []TestCase{
	{
		Name:   "horizontal",
		Width:  64,
		Height: 64,
		Shapes: []sketch.Shape{
			sketch.Line{P0: pt(4, 32), P1: pt(60, 32), Color: rgb(0, 0, 0)},
		},
	},
	{
		Name:   "vertical",
		Width:  64,
		Height: 64,
		Shapes: []sketch.Shape{
			sketch.Line{P0: pt(32, 4), P1: pt(32, 60), Color: rgb(0, 0, 0)},
		},
	},
	{
		Name:   "octants",
		Width:  64,
		Height: 64,
		Shapes: []sketch.Shape{
			sketch.Line{P0: pt(32, 32), P1: pt(60, 40), Color: rgb(0, 0, 0)},
			sketch.Line{P0: pt(32, 32), P1: pt(40, 60), Color: rgb(64, 64, 64)},
			sketch.Line{P0: pt(32, 32), P1: pt(24, 60), Color: rgb(128, 0, 0)},
			sketch.Line{P0: pt(32, 32), P1: pt(4, 40), Color: rgb(0, 128, 0)},
			sketch.Line{P0: pt(32, 32), P1: pt(4, 24), Color: rgb(0, 0, 128)},
			sketch.Line{P0: pt(32, 32), P1: pt(24, 4), Color: rgb(128, 128, 0)},
			sketch.Line{P0: pt(32, 32), P1: pt(40, 4), Color: rgb(0, 128, 128)},
			sketch.Line{P0: pt(32, 32), P1: pt(60, 24), Color: rgb(128, 0, 128)},
		},
	},
	{
		Name:   "single_point",
		Width:  16,
		Height: 16,
		Shapes: []sketch.Shape{
			sketch.Line{P0: pt(8, 8), P1: pt(8, 8), Color: rgb(0, 0, 0)},
		},
	},
	{
		Name:   "out_of_bounds",
		Width:  32,
		Height: 32,
		Shapes: []sketch.Shape{
			sketch.Line{P0: pt(-10, 16), P1: pt(42, 16), Color: rgb(0, 0, 0)},
		},
	},
}
