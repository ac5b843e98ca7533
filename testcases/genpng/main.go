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

// Command genpng rasterises the test case corpus with the engine
// itself, one PNG per case. The output is what the library actually
// produces, for visual comparison against the genpdf references.
package main

import (
	"fmt"
	"image/color"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/testcases"
)

const outDir = "testdata/rendered"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pngPath := filepath.Join(outDir, name+".png")
			if err := renderPNG(tc, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func renderPNG(tc testcases.TestCase, pngPath string) error {
	canvas := sketch.NewImageCanvas(tc.Width, tc.Height)
	canvas.Clear(color.RGBA{R: 255, G: 255, B: 255, A: 255})

	r := sketch.NewRenderer(canvas.Bounds())
	shapes := tc.Shapes

	// The clip window outline is drawn on top as a red rectangle.
	if w := tc.Window; w != nil {
		shapes = append(slices.Clone(shapes), windowOutline(*w))
	}
	r.Render(canvas, shapes)

	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	if err := png.Encode(f, canvas.Img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func windowOutline(w rect.Rect) sketch.Shape {
	return sketch.Polygon{
		Vertices: []vec.Vec2{
			{X: w.LLx, Y: w.LLy},
			{X: w.URx, Y: w.LLy},
			{X: w.URx, Y: w.URy},
			{X: w.LLx, Y: w.URy},
		},
		Color: color.RGBA{R: 255, A: 255},
	}
}
