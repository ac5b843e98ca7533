package sketch

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/vec"
)

// BenchmarkFillPolygon benchmarks the scanline fill on a five-pointed
// star at several sizes.
func BenchmarkFillPolygon(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			bounds := image.Rect(0, 0, size, size)
			star := starVertices(float64(size))
			sink := func(x, y int) {}

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				FillPolygon(star, bounds, sink)
			}
		})
	}
}

// BenchmarkVectorFill benchmarks x/image/vector on the same star, for
// comparison. The vector rasteriser computes anti-aliased coverage,
// which is more work per pixel than the binary fill above.
func BenchmarkVectorFill(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			star := starVertices(float64(size))
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{A: 255})
			r := vector.NewRasterizer(size, size)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)
				r.MoveTo(float32(star[0].X), float32(star[0].Y))
				for _, v := range star[1:] {
					r.LineTo(float32(v.X), float32(v.Y))
				}
				r.ClosePath()
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkRasteriseShapes benchmarks full shape dispatch with buffer
// reuse, the steady-state path of Renderer.Render.
func BenchmarkRasteriseShapes(b *testing.B) {
	const size = 800
	r := NewRenderer(image.Rect(0, 0, size, size))
	shapes := []Shape{
		Line{P0: vec.Vec2{X: 0, Y: 0}, P1: vec.Vec2{X: size, Y: size}},
		Circle{Center: vec.Vec2{X: 400, Y: 400}, Edge: vec.Vec2{X: 700, Y: 400}},
		Bezier{
			P0: vec.Vec2{X: 0, Y: 700}, P1: vec.Vec2{X: 300, Y: 0},
			P2: vec.Vec2{X: 500, Y: 0}, P3: vec.Vec2{X: 800, Y: 700},
		},
		Char{Origin: vec.Vec2{X: 100, Y: 100}, Glyph: 'B', Scale: 8},
		Polygon{Vertices: starVertices(size), Filled: true},
	}

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		for _, s := range shapes {
			_ = r.Rasterise(s)
		}
	}
}

// starVertices returns a self-intersecting five-pointed star spanning a
// size x size box.
func starVertices(size float64) []vec.Vec2 {
	s := size / 64
	return []vec.Vec2{
		{X: 32 * s, Y: 6 * s},
		{X: 47 * s, Y: 58 * s},
		{X: 6 * s, Y: 26 * s},
		{X: 58 * s, Y: 26 * s},
		{X: 17 * s, Y: 58 * s},
	}
}
