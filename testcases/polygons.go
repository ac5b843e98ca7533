package testcases

import (
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/sketch"
)

var polygonCases = []TestCase{
	{
		Name:   "triangle_outline",
		Width:  64,
		Height: 64,
		Shapes: []sketch.Shape{
			sketch.Polygon{
				Vertices: []vec.Vec2{pt(8, 56), pt(32, 8), pt(56, 56)},
				Color:    rgb(0, 0, 0),
			},
		},
	},
	{
		Name:   "triangle_filled",
		Width:  64,
		Height: 64,
		Shapes: []sketch.Shape{
			sketch.Polygon{
				Vertices: []vec.Vec2{pt(8, 56), pt(32, 8), pt(56, 56)},
				Filled:   true,
				Color:    rgb(0, 128, 0),
			},
		},
	},
	{
		Name:   "concave_filled",
		Width:  64,
		Height: 64,
		Shapes: []sketch.Shape{
			sketch.Polygon{
				Vertices: []vec.Vec2{
					pt(8, 8), pt(56, 8), pt(56, 56), pt(32, 32), pt(8, 56),
				},
				Filled: true,
				Color:  rgb(128, 0, 128),
			},
		},
	},
	{
		Name:   "star_filled",
		Width:  64,
		Height: 64,
		Shapes: []sketch.Shape{
			sketch.Polygon{
				Vertices: []vec.Vec2{
					pt(32, 6), pt(47, 58), pt(6, 26), pt(58, 26), pt(17, 58),
				},
				Filled: true,
				Color:  rgb(0, 0, 0),
			},
		},
	},
	{
		Name:   "quad_filled_offscreen",
		Width:  48,
		Height: 48,
		Shapes: []sketch.Shape{
			sketch.Polygon{
				Vertices: []vec.Vec2{pt(-16, 12), pt(64, 12), pt(64, 36), pt(-16, 36)},
				Filled:   true,
				Color:    rgb(0, 0, 255),
			},
		},
	},
}
