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
	"image"
	"math"
	"testing"
)

func collectCircle(cx, cy, r int) []image.Point {
	var pts []image.Point
	CirclePixels(cx, cy, r, func(x, y int) {
		pts = append(pts, image.Point{X: x, Y: y})
	})
	return pts
}

func TestCircleDistance(t *testing.T) {
	// Every plotted pixel lies within one unit of the ideal radius.
	for _, r := range []int{1, 2, 5, 17, 100} {
		pts := collectCircle(0, 0, r)
		if len(pts) == 0 {
			t.Fatalf("radius %d: no pixels", r)
		}
		for _, p := range pts {
			d := math.Round(math.Hypot(float64(p.X), float64(p.Y)))
			if d < float64(r-1) || d > float64(r+1) {
				t.Errorf("radius %d: pixel %v at distance %g", r, p, d)
			}
		}
	}
}

func TestCircleSymmetry(t *testing.T) {
	// The pixel set is symmetric under all eight reflections.
	set := toSet(collectCircle(0, 0, 23))
	for p := range set {
		mirrors := []image.Point{
			{X: -p.X, Y: p.Y}, {X: p.X, Y: -p.Y}, {X: -p.X, Y: -p.Y},
			{X: p.Y, Y: p.X}, {X: -p.Y, Y: p.X},
			{X: p.Y, Y: -p.X}, {X: -p.Y, Y: -p.X},
		}
		for _, m := range mirrors {
			if !set[m] {
				t.Fatalf("pixel %v present but mirror %v missing", p, m)
			}
		}
	}
}

func TestCircleExtremes(t *testing.T) {
	// The four axis extremes are always plotted.
	cx, cy, r := 10, -4, 9
	set := toSet(collectCircle(cx, cy, r))
	for _, p := range []image.Point{
		{X: cx + r, Y: cy}, {X: cx - r, Y: cy},
		{X: cx, Y: cy + r}, {X: cx, Y: cy - r},
	} {
		if !set[p] {
			t.Errorf("extreme %v not plotted", p)
		}
	}
}

func TestCircleZeroRadius(t *testing.T) {
	pts := collectCircle(3, 4, 0)
	if len(pts) != 8 {
		t.Errorf("got %d plots, want 8", len(pts))
	}
	for _, p := range pts {
		if p != image.Pt(3, 4) {
			t.Errorf("pixel %v, want (3,4)", p)
		}
	}
}

func TestCircleNegativeRadius(t *testing.T) {
	if pts := collectCircle(0, 0, -1); len(pts) != 0 {
		t.Errorf("negative radius plotted %d pixels", len(pts))
	}
}
