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
	"encoding/json"
	"fmt"
	"io"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// shapeRecord is the interchange form of a single shape. The on-disk
// document is a JSON array of these records.
type shapeRecord struct {
	Type   string      `json:"type"`
	Points [][]float64 `json:"points"`
	Color  string      `json:"color"`
	Char   string      `json:"char,omitempty"`
	Scale  int         `json:"scale,omitempty"`
	Filled *bool       `json:"filled,omitempty"`
}

// Interchange defaults for optional record fields.
const (
	defaultColor = "#000000"
	defaultChar  = DefaultGlyph
	defaultScale = 2
)

// EncodeShapes writes the shapes to w in the interchange format.
func EncodeShapes(w io.Writer, shapes []Shape) error {
	records := make([]shapeRecord, 0, len(shapes))
	for _, s := range shapes {
		records = append(records, recordFromShape(s))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// DecodeShapes reads an interchange document from r. Records of an
// unknown type, records with fewer points than their type requires, and
// records with an unparsable color are skipped with a warning rather
// than failing the whole document; structurally invalid JSON is an
// error.
func DecodeShapes(r io.Reader) ([]Shape, error) {
	var records []shapeRecord
	dec := json.NewDecoder(r)
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding shape list: %w", err)
	}

	shapes := make([]Shape, 0, len(records))
	for i, rec := range records {
		s, err := shapeFromRecord(rec)
		if err != nil {
			Logger().Warn("skipping record", "index", i, "type", rec.Type, "err", err)
			continue
		}
		shapes = append(shapes, s)
	}
	return shapes, nil
}

func recordFromShape(s Shape) shapeRecord {
	rec := shapeRecord{
		Color: FormatHexColor(ShapeColor(s)),
	}
	for _, p := range points(s) {
		rec.Points = append(rec.Points, []float64{p.X, p.Y})
	}

	switch s := s.(type) {
	case Line:
		rec.Type = "line"
	case Circle:
		rec.Type = "circle"
	case Bezier:
		rec.Type = "bezier"
	case Char:
		rec.Type = "char"
		rec.Char = string(s.Glyph)
		rec.Scale = s.Scale
	case Polygon:
		rec.Type = "polygon"
		filled := s.Filled
		rec.Filled = &filled
	}
	return rec
}

func shapeFromRecord(rec shapeRecord) (Shape, error) {
	colorStr := rec.Color
	if colorStr == "" {
		colorStr = defaultColor
	}
	col, err := ParseHexColor(colorStr)
	if err != nil {
		return nil, err
	}

	pts := make([]vec.Vec2, 0, len(rec.Points))
	for _, p := range rec.Points {
		if len(p) < 2 {
			return nil, fmt.Errorf("point has %d coordinates", len(p))
		}
		pts = append(pts, vec.Vec2{X: p[0], Y: p[1]})
	}

	need := map[string]int{
		"line": 2, "circle": 2, "bezier": 4, "char": 1, "polygon": 3,
	}
	n, ok := need[rec.Type]
	if !ok {
		return nil, fmt.Errorf("unknown shape type %q", rec.Type)
	}
	if len(pts) < n {
		return nil, fmt.Errorf("%s has %d points, need %d", rec.Type, len(pts), n)
	}

	switch rec.Type {
	case "line":
		return Line{P0: pts[0], P1: pts[1], Color: col}, nil
	case "circle":
		return Circle{Center: pts[0], Edge: pts[1], Color: col}, nil
	case "bezier":
		return Bezier{P0: pts[0], P1: pts[1], P2: pts[2], P3: pts[3], Color: col}, nil
	case "char":
		glyph := byte(defaultChar)
		if rec.Char != "" {
			glyph = upper(rec.Char[0])
		}
		scale := rec.Scale
		if scale < 1 {
			scale = defaultScale
		}
		return Char{Origin: pts[0], Glyph: glyph, Scale: scale, Color: col}, nil
	default: // "polygon"
		filled := false
		if rec.Filled != nil {
			filled = *rec.Filled
		}
		return Polygon{Vertices: pts, Filled: filled, Color: col}, nil
	}
}

// MarshalClipWindow renders a clip window as the 4-element record
// [xmin, ymin, xmax, ymax]. The clip window is stored independently of
// the shape list.
func MarshalClipWindow(w rect.Rect) ([]byte, error) {
	return json.Marshal([4]float64{w.LLx, w.LLy, w.URx, w.URy})
}

// UnmarshalClipWindow parses a 4-element clip window record. The
// returned rectangle is normalized so that xmin ≤ xmax and ymin ≤ ymax.
func UnmarshalClipWindow(data []byte) (rect.Rect, error) {
	var v [4]float64
	if err := json.Unmarshal(data, &v); err != nil {
		return rect.Rect{}, fmt.Errorf("decoding clip window: %w", err)
	}
	return rect.Rect{
		LLx: min(v[0], v[2]),
		LLy: min(v[1], v[3]),
		URx: max(v[0], v[2]),
		URy: max(v[1], v[3]),
	}, nil
}
