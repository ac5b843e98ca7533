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

package sketch_test

import (
	"image/color"
	"maps"
	"slices"
	"testing"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/testcases"
)

func TestRenderCorpus(t *testing.T) {
	// Rendering the whole corpus twice gives identical pixels.
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				a := renderCase(tc)
				b := renderCase(tc)
				if !slices.Equal(a.Img.Pix, b.Img.Pix) {
					t.Error("rendering is not deterministic")
				}
			})
		}
	}
}

func TestCorpusClipping(t *testing.T) {
	// Applying the clip window of a clipping case leaves no line pixels
	// outside the window.
	for _, tc := range testcases.All["clipping"] {
		t.Run(tc.Name, func(t *testing.T) {
			if tc.Window == nil {
				t.Fatal("clipping case has no window")
			}
			doc := sketch.Document{
				Shapes:     slices.Clone(tc.Shapes),
				ClipWindow: tc.Window,
			}
			if !doc.ApplyClip() {
				t.Fatal("ApplyClip returned false")
			}
			w := *tc.Window
			for _, s := range doc.Shapes {
				line, ok := s.(sketch.Line)
				if !ok {
					continue
				}
				for _, p := range []float64{line.P0.X, line.P1.X} {
					if p < w.LLx-0.5 || p > w.URx+0.5 {
						t.Errorf("line x=%g outside window", p)
					}
				}
				for _, p := range []float64{line.P0.Y, line.P1.Y} {
					if p < w.LLy-0.5 || p > w.URy+0.5 {
						t.Errorf("line y=%g outside window", p)
					}
				}
			}
		})
	}
}

func renderCase(tc testcases.TestCase) *sketch.ImageCanvas {
	canvas := sketch.NewImageCanvas(tc.Width, tc.Height)
	canvas.Clear(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	sketch.NewRenderer(canvas.Bounds()).Render(canvas, tc.Shapes)
	return canvas
}
