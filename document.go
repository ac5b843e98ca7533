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
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Document is the mutable drawing being edited: an ordered shape list
// (list order is paint order) and an optional clip window. The zero
// value is an empty document.
//
// A Document is not safe for concurrent use; hosts access it from a
// single control thread.
type Document struct {
	Shapes     []Shape
	ClipWindow *rect.Rect
}

// Add appends a shape to the document.
func (d *Document) Add(s Shape) {
	d.Shapes = append(d.Shapes, s)
}

// Clear removes all shapes and the clip window.
func (d *Document) Clear() {
	d.Shapes = nil
	d.ClipWindow = nil
}

// SetClipWindow sets the clip window to the rectangle spanned by the
// two corner points, normalizing the coordinate order.
func (d *Document) SetClipWindow(x0, y0, x1, y1 float64) {
	d.ClipWindow = &rect.Rect{
		LLx: min(x0, x1),
		LLy: min(y0, y1),
		URx: max(x0, x1),
		URy: max(y0, y1),
	}
}

// TranslateAll moves every shape by (dx, dy).
func (d *Document) TranslateAll(dx, dy float64) {
	for i, s := range d.Shapes {
		d.Shapes[i] = Translate(s, dx, dy)
	}
}

// RotateAll rotates every shape by angleDeg degrees about the pivot.
func (d *Document) RotateAll(angleDeg float64, pivot vec.Vec2) {
	for i, s := range d.Shapes {
		d.Shapes[i] = Rotate(s, angleDeg, pivot)
	}
}

// ScaleAll scales every shape by factor about the pivot.
// The factor must be positive.
func (d *Document) ScaleAll(factor float64, pivot vec.Vec2) error {
	if factor <= 0 {
		return fmt.Errorf("scale factor must be positive, got %g", factor)
	}
	for i, s := range d.Shapes {
		d.Shapes[i] = Scale(s, factor, pivot)
	}
	return nil
}

// ToggleLastPolygonFill flips the fill flag of the most recently added
// polygon. It returns false if the document contains no polygon.
func (d *Document) ToggleLastPolygonFill() bool {
	for i := len(d.Shapes) - 1; i >= 0; i-- {
		if p, ok := d.Shapes[i].(Polygon); ok {
			p.Filled = !p.Filled
			d.Shapes[i] = p
			return true
		}
	}
	return false
}

// ApplyClip destructively clips the document against the clip window:
// every line is replaced by its clipped segment or dropped entirely if
// it lies outside the window; all other shapes pass through unchanged.
// It returns false if no clip window is set.
func (d *Document) ApplyClip() bool {
	if d.ClipWindow == nil {
		return false
	}

	clipped := d.Shapes[:0]
	for _, s := range d.Shapes {
		line, ok := s.(Line)
		if !ok {
			clipped = append(clipped, s)
			continue
		}
		q0, q1, ok := ClipLine(line.P0, line.P1, *d.ClipWindow)
		if !ok {
			continue
		}
		line.P0, line.P1 = q0, q1
		clipped = append(clipped, line)
	}
	d.Shapes = clipped
	return true
}

// Encode writes the shape list to w in the interchange format.
func (d *Document) Encode(w io.Writer) error {
	return EncodeShapes(w, d.Shapes)
}

// Decode replaces the shape list with the document read from r. On
// error the previous shape list is left intact. The clip window is not
// part of the interchange document and is unaffected.
func (d *Document) Decode(r io.Reader) error {
	shapes, err := DecodeShapes(r)
	if err != nil {
		return err
	}
	d.Shapes = shapes
	return nil
}

// SaveFile writes the document to the named file.
func (d *Document) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := d.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return f.Close()
}

// LoadFile replaces the document's shapes with the contents of the
// named file. On error the document is unchanged.
func (d *Document) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := d.Decode(f); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}
