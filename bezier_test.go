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
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestFlattenBezierEndpoints(t *testing.T) {
	p0 := vec.Vec2{X: 8, Y: 56}
	p3 := vec.Vec2{X: 88, Y: 56}
	pts := FlattenBezier(nil, p0, vec.Vec2{X: 32, Y: 8}, vec.Vec2{X: 64, Y: 8}, p3, 100)

	if len(pts) != 101 {
		t.Fatalf("got %d samples, want 101", len(pts))
	}
	if pts[0] != devPoint(p0) {
		t.Errorf("first sample = %v, want %v", pts[0], devPoint(p0))
	}
	if pts[100] != devPoint(p3) {
		t.Errorf("last sample = %v, want %v", pts[100], devPoint(p3))
	}
}

func TestFlattenBezierCollinear(t *testing.T) {
	// With all control points on one horizontal line the curve is that
	// line.
	pts := FlattenBezier(nil,
		vec.Vec2{X: 0, Y: 10}, vec.Vec2{X: 10, Y: 10},
		vec.Vec2{X: 20, Y: 10}, vec.Vec2{X: 30, Y: 10}, 50)
	for i, p := range pts {
		if p.Y != 10 {
			t.Errorf("sample %d = %v, want y=10", i, p)
		}
		if p.X < 0 || p.X > 30 {
			t.Errorf("sample %d = %v outside [0,30]", i, p)
		}
	}
}

func TestFlattenBezierMinSteps(t *testing.T) {
	// steps < 1 is clamped to a single segment: just the two endpoints.
	pts := FlattenBezier(nil,
		vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1, Y: 1},
		vec.Vec2{X: 2, Y: 2}, vec.Vec2{X: 3, Y: 3}, 0)
	if len(pts) != 2 {
		t.Fatalf("got %d samples, want 2", len(pts))
	}
	if pts[0] != image.Pt(0, 0) || pts[1] != image.Pt(3, 3) {
		t.Errorf("samples = %v", pts)
	}
}

func TestFlattenBezierAppends(t *testing.T) {
	prefix := []image.Point{{X: -1, Y: -1}}
	pts := FlattenBezier(prefix,
		vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 0, Y: 0},
		vec.Vec2{X: 4, Y: 0}, vec.Vec2{X: 4, Y: 0}, 4)
	if len(pts) != 1+5 {
		t.Fatalf("got %d samples, want 6", len(pts))
	}
	if pts[0] != image.Pt(-1, -1) {
		t.Errorf("prefix not preserved: %v", pts[0])
	}
}
