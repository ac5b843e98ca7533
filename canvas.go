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
	"image/color"
	"image/draw"
)

// Canvas receives batches of opaque pixels. Implementations must drop
// pixels outside their bounds silently (writing out of bounds is never
// an error) and must tolerate duplicate coordinates within one batch:
// writes are applied in batch order, so the last write wins.
type Canvas interface {
	// Bounds returns the writable pixel region.
	Bounds() image.Rectangle

	// WritePixels sets every in-bounds point of pts to c.
	WritePixels(pts []image.Point, c color.RGBA)

	// Clear fills the entire surface with c.
	Clear(c color.RGBA)
}

// ImageCanvas is a Canvas backed by an image.RGBA.
type ImageCanvas struct {
	Img *image.RGBA
}

// NewImageCanvas returns an ImageCanvas of the given size with all
// pixels transparent black.
func NewImageCanvas(width, height int) *ImageCanvas {
	return &ImageCanvas{
		Img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Bounds returns the writable pixel region.
func (c *ImageCanvas) Bounds() image.Rectangle {
	return c.Img.Bounds()
}

// WritePixels sets every in-bounds point of pts to col.
func (c *ImageCanvas) WritePixels(pts []image.Point, col color.RGBA) {
	b := c.Img.Bounds()
	for _, p := range pts {
		if p.X < b.Min.X || p.X >= b.Max.X || p.Y < b.Min.Y || p.Y >= b.Max.Y {
			continue
		}
		c.Img.SetRGBA(p.X, p.Y, col)
	}
}

// Clear fills the entire surface with col.
func (c *ImageCanvas) Clear(col color.RGBA) {
	draw.Draw(c.Img, c.Img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}
