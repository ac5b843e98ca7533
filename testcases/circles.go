package testcases

import "seehuhn.de/go/sketch"

var circleCases = []TestCase{
	{
		Name:   "small",
		Width:  32,
		Height: 32,
		Shapes: []sketch.Shape{
			sketch.Circle{Center: pt(16, 16), Edge: pt(21, 16), Color: rgb(0, 0, 0)},
		},
	},
	{
		Name:   "large",
		Width:  128,
		Height: 128,
		Shapes: []sketch.Shape{
			sketch.Circle{Center: pt(64, 64), Edge: pt(64, 14), Color: rgb(0, 0, 255)},
		},
	},
	{
		Name:   "diagonal_edge_point",
		Width:  64,
		Height: 64,
		Shapes: []sketch.Shape{
			sketch.Circle{Center: pt(32, 32), Edge: pt(44, 48), Color: rgb(0, 0, 0)},
		},
	},
	{
		Name:   "zero_radius",
		Width:  16,
		Height: 16,
		Shapes: []sketch.Shape{
			sketch.Circle{Center: pt(8, 8), Edge: pt(8, 8), Color: rgb(0, 0, 0)},
		},
	},
	{
		Name:   "clipped_by_canvas",
		Width:  48,
		Height: 48,
		Shapes: []sketch.Shape{
			sketch.Circle{Center: pt(0, 0), Edge: pt(40, 0), Color: rgb(255, 0, 0)},
		},
	},
}
