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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestDocumentAddClear(t *testing.T) {
	var doc Document
	doc.Add(Line{P0: vec.Vec2{X: 0, Y: 0}, P1: vec.Vec2{X: 5, Y: 5}})
	doc.SetClipWindow(0, 0, 10, 10)
	require.Len(t, doc.Shapes, 1)
	require.NotNil(t, doc.ClipWindow)

	doc.Clear()
	assert.Empty(t, doc.Shapes)
	assert.Nil(t, doc.ClipWindow)
}

func TestSetClipWindowNormalizes(t *testing.T) {
	var doc Document
	doc.SetClipWindow(40, 30, 10, 20)
	require.NotNil(t, doc.ClipWindow)
	assert.Equal(t, rect.Rect{LLx: 10, LLy: 20, URx: 40, URy: 30}, *doc.ClipWindow)
}

func TestToggleLastPolygonFill(t *testing.T) {
	var doc Document
	assert.False(t, doc.ToggleLastPolygonFill(), "no polygon to toggle")

	tri := []vec.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 3}}
	doc.Add(Polygon{Vertices: tri})
	doc.Add(Line{P0: vec.Vec2{X: 0, Y: 0}, P1: vec.Vec2{X: 1, Y: 1}})
	doc.Add(Polygon{Vertices: tri, Filled: true})

	require.True(t, doc.ToggleLastPolygonFill())
	assert.False(t, doc.Shapes[2].(Polygon).Filled, "last polygon toggled off")
	assert.False(t, doc.Shapes[0].(Polygon).Filled, "earlier polygon untouched")

	require.True(t, doc.ToggleLastPolygonFill())
	assert.True(t, doc.Shapes[2].(Polygon).Filled)
}

func TestScaleAllRejectsNonPositive(t *testing.T) {
	var doc Document
	doc.Add(Line{P0: vec.Vec2{X: 1, Y: 1}, P1: vec.Vec2{X: 2, Y: 2}})

	assert.Error(t, doc.ScaleAll(0, vec.Vec2{}))
	assert.Error(t, doc.ScaleAll(-2, vec.Vec2{}))
	assert.Equal(t, vec.Vec2{X: 1, Y: 1}, doc.Shapes[0].(Line).P0, "shapes unchanged")

	require.NoError(t, doc.ScaleAll(2, vec.Vec2{}))
	assert.Equal(t, vec.Vec2{X: 2, Y: 2}, doc.Shapes[0].(Line).P0)
}

func TestApplyClip(t *testing.T) {
	var doc Document
	doc.Add(Line{P0: vec.Vec2{X: 2, Y: 2}, P1: vec.Vec2{X: 8, Y: 8}})     // inside
	doc.Add(Line{P0: vec.Vec2{X: 20, Y: 20}, P1: vec.Vec2{X: 30, Y: 30}}) // outside
	doc.Add(Line{P0: vec.Vec2{X: -5, Y: 5}, P1: vec.Vec2{X: 5, Y: 5}})    // crossing
	doc.Add(Circle{Center: vec.Vec2{X: 50, Y: 50}, Edge: vec.Vec2{X: 60, Y: 50}})

	assert.False(t, doc.ApplyClip(), "no window set")
	require.Len(t, doc.Shapes, 4)

	doc.SetClipWindow(0, 0, 10, 10)
	require.True(t, doc.ApplyClip())
	require.Len(t, doc.Shapes, 3, "outside line dropped")

	crossing := doc.Shapes[1].(Line)
	assert.Equal(t, vec.Vec2{X: 0, Y: 5}, crossing.P0, "crossing line trimmed")

	assert.IsType(t, Circle{}, doc.Shapes[2], "non-line shapes pass through")
}

func TestDocumentSaveLoad(t *testing.T) {
	var doc Document
	doc.Add(Line{P0: vec.Vec2{X: 1, Y: 2}, P1: vec.Vec2{X: 3, Y: 4}, Color: Black})
	doc.Add(Char{Origin: vec.Vec2{X: 5, Y: 5}, Glyph: 'C', Scale: 2, Color: Black})

	path := filepath.Join(t.TempDir(), "drawing.json")
	require.NoError(t, doc.SaveFile(path))

	var loaded Document
	require.NoError(t, loaded.LoadFile(path))
	assert.Equal(t, doc.Shapes, loaded.Shapes)
}

func TestDocumentLoadMissingFile(t *testing.T) {
	var doc Document
	doc.Add(Line{P0: vec.Vec2{X: 1, Y: 1}, P1: vec.Vec2{X: 2, Y: 2}})

	err := doc.LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Len(t, doc.Shapes, 1, "document unchanged after failed load")
}

func TestDocumentDecodeFailurePreservesState(t *testing.T) {
	var doc Document
	doc.Add(Line{P0: vec.Vec2{X: 1, Y: 1}, P1: vec.Vec2{X: 2, Y: 2}})

	err := doc.Decode(strings.NewReader(`{"broken":`))
	require.Error(t, err)
	assert.Len(t, doc.Shapes, 1)
}

func TestDocumentLoadBadJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0666))

	var doc Document
	doc.Add(Line{P0: vec.Vec2{X: 1, Y: 1}, P1: vec.Vec2{X: 2, Y: 2}})
	require.Error(t, doc.LoadFile(path))
	assert.Len(t, doc.Shapes, 1)
}
