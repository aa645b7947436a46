// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icon

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/vector"
)

// kappa scales a radius to the cubic Bézier control-point distance that
// best approximates a quarter circle.
const kappa = 0.5522847498307933

// A canvas is a square pixel grid plus a rasterizer for filling antialiased
// shapes onto it. Fills blend alpha-over in call order. Pixels accumulate in
// premultiplied-alpha form; callers that need straight alpha convert on the
// way out.
type canvas struct {
	rgba *image.RGBA
	ras  vector.Rasterizer
}

// newCanvas returns a fully transparent n×n canvas.
func newCanvas(n int) *canvas {
	return &canvas{rgba: image.NewRGBA(image.Rect(0, 0, n, n))}
}

// newLayer returns a fully transparent canvas with c's dimensions, for
// drawing that must be finished (typically blurred) before landing on c.
func (c *canvas) newLayer() *canvas {
	return newCanvas(c.rgba.Rect.Dx())
}

// compose alpha-composites src over c. src must cover c's bounds.
func (c *canvas) compose(src image.Image) {
	draw.Draw(c.rgba, c.rgba.Rect, src, image.Point{}, draw.Over)
}

// blurred returns a Gaussian blur of c with the given standard deviation,
// leaving c itself untouched.
func (c *canvas) blurred(sigma float64) image.Image {
	return imaging.Blur(c.rgba, sigma)
}

func (c *canvas) begin() {
	c.ras.Reset(c.rgba.Rect.Dx(), c.rgba.Rect.Dy())
}

func (c *canvas) moveTo(x, y float64) { c.ras.MoveTo(float32(x), float32(y)) }
func (c *canvas) lineTo(x, y float64) { c.ras.LineTo(float32(x), float32(y)) }

func (c *canvas) cubeTo(x1, y1, x2, y2, x3, y3 float64) {
	c.ras.CubeTo(float32(x1), float32(y1), float32(x2), float32(y2), float32(x3), float32(y3))
}

// fill closes the current path and rasterizes it onto c in the given color.
func (c *canvas) fill(col color.NRGBA) {
	c.ras.ClosePath()
	c.ras.Draw(c.rgba, c.rgba.Rect, image.NewUniform(col), image.Point{})
}

// fillRect fills the axis-aligned rectangle spanning (x0, y0) to (x1, y1).
func (c *canvas) fillRect(x0, y0, x1, y1 float64, col color.NRGBA) {
	c.begin()
	c.moveTo(x0, y0)
	c.lineTo(x1, y0)
	c.lineTo(x1, y1)
	c.lineTo(x0, y1)
	c.fill(col)
}

// fillRoundedRect fills a rectangle whose corners are rounded with the given
// radius. The radius is clamped to half the shorter side, so passing an
// oversized radius yields a capsule rather than a self-intersecting path.
func (c *canvas) fillRoundedRect(x0, y0, x1, y1, r float64, col color.NRGBA) {
	if half := math.Min(x1-x0, y1-y0) / 2; r > half {
		r = half
	}
	if r < 0 {
		r = 0
	}
	k := kappa * r
	c.begin()
	c.moveTo(x0+r, y0)
	c.lineTo(x1-r, y0)
	c.cubeTo(x1-r+k, y0, x1, y0+r-k, x1, y0+r)
	c.lineTo(x1, y1-r)
	c.cubeTo(x1, y1-r+k, x1-r+k, y1, x1-r, y1)
	c.lineTo(x0+r, y1)
	c.cubeTo(x0+r-k, y1, x0, y1-r+k, x0, y1-r)
	c.lineTo(x0, y0+r)
	c.cubeTo(x0, y0+r-k, x0+r-k, y0, x0+r, y0)
	c.fill(col)
}

// fillEllipse fills the ellipse inscribed in the rectangle spanning
// (x0, y0) to (x1, y1).
func (c *canvas) fillEllipse(x0, y0, x1, y1 float64, col color.NRGBA) {
	rx := (x1 - x0) / 2
	ry := (y1 - y0) / 2
	cx := x0 + rx
	cy := y0 + ry
	kx := kappa * rx
	ky := kappa * ry
	c.begin()
	c.moveTo(cx+rx, cy)
	c.cubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	c.cubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	c.cubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	c.cubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	c.fill(col)
}

// fillCircle fills the circle of radius r centered on (cx, cy).
func (c *canvas) fillCircle(cx, cy, r float64, col color.NRGBA) {
	c.fillEllipse(cx-r, cy-r, cx+r, cy+r, col)
}

// fillTriangle fills the triangle with the given vertices.
func (c *canvas) fillTriangle(x0, y0, x1, y1, x2, y2 float64, col color.NRGBA) {
	c.begin()
	c.moveTo(x0, y0)
	c.lineTo(x1, y1)
	c.lineTo(x2, y2)
	c.fill(col)
}

// strokeArc strokes the circular arc of radius r around (cx, cy) from angle
// a0 to a1, as a filled band of the given width centered on the arc. Angles
// are in degrees and increase clockwise from the positive x axis, matching
// image coordinates where y grows downward.
func (c *canvas) strokeArc(cx, cy, r, a0, a1, width float64, col color.NRGBA) {
	t0 := a0 * math.Pi / 180
	t1 := a1 * math.Pi / 180
	outer := r + width/2
	inner := r - width/2
	if inner < 0 {
		inner = 0
	}
	c.begin()
	c.moveTo(cx+outer*math.Cos(t0), cy+outer*math.Sin(t0))
	c.arcTo(cx, cy, outer, t0, t1)
	c.lineTo(cx+inner*math.Cos(t1), cy+inner*math.Sin(t1))
	c.arcTo(cx, cy, inner, t1, t0)
	c.fill(col)
}

// arcTo extends the current path along the circle of radius r around
// (cx, cy) from angle t0 to t1, in radians. The pen must already sit on the
// arc's start point. Each emitted cubic spans at most a quarter turn.
func (c *canvas) arcTo(cx, cy, r, t0, t1 float64) {
	n := int(math.Ceil(math.Abs(t1-t0) / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	d := (t1 - t0) / float64(n)
	k := r * 4 / 3 * math.Tan(d/4)
	for i := 0; i < n; i++ {
		u0 := t0 + float64(i)*d
		u1 := u0 + d
		x0, y0 := cx+r*math.Cos(u0), cy+r*math.Sin(u0)
		x1, y1 := cx+r*math.Cos(u1), cy+r*math.Sin(u1)
		c.cubeTo(
			x0-k*math.Sin(u0), y0+k*math.Cos(u0),
			x1+k*math.Sin(u1), y1-k*math.Cos(u1),
			x1, y1,
		)
	}
}
