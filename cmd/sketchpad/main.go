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

// Command sketchpad is a minimal interactive front end for the sketch
// engine. All drawing is done by the engine itself; the window only
// shows the pixel canvas and forwards input.
//
// Modes (keys):
//
//	L line   C circle   B curve   G glyph   P polygon   W clip window
//
// Left click places points; a shape is added once its mode has enough
// of them. In polygon mode a right click closes the polygon. Other
// keys: F toggle fill of the last polygon, A apply the clip window,
// T/R/Y translate/rotate/scale everything, X clear, S save, O load,
// 1-4 select the pen colour.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch"
)

const (
	canvasWidth  = 800
	canvasHeight = 600
)

type mode int

const (
	modeLine mode = iota
	modeCircle
	modeBezier
	modeChar
	modePolygon
	modeWindow
)

func (m mode) String() string {
	switch m {
	case modeLine:
		return "line"
	case modeCircle:
		return "circle"
	case modeBezier:
		return "curve"
	case modeChar:
		return "glyph"
	case modePolygon:
		return "polygon"
	case modeWindow:
		return "clip window"
	}
	return "?"
}

// pointsNeeded is the number of clicks that completes a shape in each
// mode. Polygons are open-ended and closed with a right click.
var pointsNeeded = map[mode]int{
	modeLine:   2,
	modeCircle: 2,
	modeBezier: 4,
	modeChar:   1,
	modeWindow: 2,
}

var palette = []color.RGBA{
	{A: 255},         // black
	{R: 200, A: 255}, // red
	{G: 140, A: 255}, // green
	{B: 200, A: 255}, // blue
}

type game struct {
	doc      sketch.Document
	canvas   *sketch.ImageCanvas
	renderer *sketch.Renderer
	screen   *ebiten.Image
	filePath string

	mode    mode
	pending []vec.Vec2
	pen     color.RGBA
	glyph   byte
	dirty   bool
}

func newGame(filePath string) *game {
	canvas := sketch.NewImageCanvas(canvasWidth, canvasHeight)
	g := &game{
		canvas:   canvas,
		renderer: sketch.NewRenderer(canvas.Bounds()),
		screen:   ebiten.NewImage(canvasWidth, canvasHeight),
		filePath: filePath,
		pen:      palette[0],
		glyph:    'A',
		dirty:    true,
	}
	return g
}

func (g *game) Update() error {
	g.handleKeys()
	g.handleMouse()
	return nil
}

func (g *game) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		g.setMode(modeLine)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.setMode(modeCircle)
	case inpututil.IsKeyJustPressed(ebiten.KeyB):
		g.setMode(modeBezier)
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		g.setMode(modeChar)
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.setMode(modePolygon)
	case inpututil.IsKeyJustPressed(ebiten.KeyW):
		g.setMode(modeWindow)

	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		if g.doc.ToggleLastPolygonFill() {
			g.dirty = true
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		if g.doc.ApplyClip() {
			slog.Info("clip applied", "shapes", len(g.doc.Shapes))
			g.dirty = true
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		g.doc.TranslateAll(10, 0)
		g.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.doc.RotateAll(15, g.center())
		g.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyY):
		if err := g.doc.ScaleAll(1.1, g.center()); err == nil {
			g.dirty = true
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		g.doc.Clear()
		g.pending = g.pending[:0]
		g.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		if err := g.doc.SaveFile(g.filePath); err != nil {
			slog.Error("save failed", "err", err)
		} else {
			slog.Info("saved", "file", g.filePath, "shapes", len(g.doc.Shapes))
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		if err := g.doc.LoadFile(g.filePath); err != nil {
			slog.Error("load failed", "err", err)
		} else {
			slog.Info("loaded", "file", g.filePath, "shapes", len(g.doc.Shapes))
			g.dirty = true
		}
	}

	for i, key := range []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4} {
		if inpututil.IsKeyJustPressed(key) {
			g.pen = palette[i]
		}
	}

	// In glyph mode typed letters select the glyph to stamp.
	if g.mode == modeChar {
		for _, r := range ebiten.AppendInputChars(nil) {
			if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
				g.glyph = byte(r)
			}
		}
	}
}

func (g *game) handleMouse() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.pending = append(g.pending, vec.Vec2{X: float64(x), Y: float64(y)})
		if g.mode != modePolygon && len(g.pending) >= pointsNeeded[g.mode] {
			g.commit()
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && g.mode == modePolygon {
		g.commit()
	}
}

// commit turns the pending points into a shape (or the clip window)
// and adds it to the document.
func (g *game) commit() {
	pts := g.pending
	g.pending = g.pending[:0]

	switch g.mode {
	case modeLine:
		g.doc.Add(sketch.Line{P0: pts[0], P1: pts[1], Color: g.pen})
	case modeCircle:
		g.doc.Add(sketch.Circle{Center: pts[0], Edge: pts[1], Color: g.pen})
	case modeBezier:
		g.doc.Add(sketch.Bezier{P0: pts[0], P1: pts[1], P2: pts[2], P3: pts[3], Color: g.pen})
	case modeChar:
		g.doc.Add(sketch.Char{Origin: pts[0], Glyph: g.glyph, Scale: 2, Color: g.pen})
	case modePolygon:
		if len(pts) < 3 {
			slog.Warn("polygon needs at least 3 vertices", "got", len(pts))
			return
		}
		vertices := make([]vec.Vec2, len(pts))
		copy(vertices, pts)
		g.doc.Add(sketch.Polygon{Vertices: vertices, Color: g.pen})
	case modeWindow:
		g.doc.SetClipWindow(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y)
	}
	g.dirty = true
}

func (g *game) setMode(m mode) {
	if g.mode != m {
		g.pending = g.pending[:0]
	}
	g.mode = m
	slog.Info("mode", "mode", m.String())
}

func (g *game) center() vec.Vec2 {
	return vec.Vec2{X: canvasWidth / 2, Y: canvasHeight / 2}
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.dirty {
		g.redraw()
		g.screen.WritePixels(g.canvas.Img.Pix)
		g.dirty = false
	}
	screen.DrawImage(g.screen, nil)
	msg := fmt.Sprintf("mode: %s", g.mode)
	ebiten.SetWindowTitle("sketchpad - " + msg)
}

// redraw repaints the full canvas from the document.
func (g *game) redraw() {
	g.canvas.Clear(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	g.renderer.Render(g.canvas, g.doc.Shapes)
	if w := g.doc.ClipWindow; w != nil {
		g.renderer.Render(g.canvas, []sketch.Shape{windowOutline(*w)})
	}
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

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return canvasWidth, canvasHeight
}

func main() {
	filePath := flag.String("file", "drawing.json", "document file for save/load")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	sketch.SetLogger(logger)

	g := newGame(*filePath)
	ebiten.SetWindowTitle("sketchpad")
	ebiten.SetWindowSize(canvasWidth, canvasHeight)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintln(os.Stderr, "sketchpad:", err)
		os.Exit(1)
	}
}
