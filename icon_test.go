// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icon

import (
	"bytes"
	"image"
	"math"
	"strconv"
	"testing"
)

func TestRenderBounds(t *testing.T) {
	for _, size := range []int{1, 7, 16, 32, 48, 64, 128, 256} {
		got := Render(size)
		if want := image.Rect(0, 0, size, size); got.Bounds() != want {
			t.Errorf("Render(%d): bounds = %v, want %v", size, got.Bounds(), want)
		}
		if want := size * size * 4; len(got.Pix) != want {
			t.Errorf("Render(%d): len(Pix) = %d, want %d", size, len(got.Pix), want)
		}
		if want := size * 4; got.Stride != want {
			t.Errorf("Render(%d): stride = %d, want %d", size, got.Stride, want)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	for _, size := range []int{16, 64} {
		a := Render(size)
		b := Render(size)
		if !bytes.Equal(a.Pix, b.Pix) {
			t.Errorf("Render(%d): two renders differ", size)
		}
	}
}

func TestRenderCenterAndCorners(t *testing.T) {
	for _, size := range []int{16, 48, 256} {
		img := Render(size)
		if a := img.NRGBAAt(size/2, size/2).A; a < 200 {
			t.Errorf("Render(%d): center alpha = %d, want opaque bubble", size, a)
		}
		corners := []image.Point{
			{0, 0},
			{size - 1, 0},
			{0, size - 1},
			{size - 1, size - 1},
		}
		for _, pt := range corners {
			if a := img.NRGBAAt(pt.X, pt.Y).A; a > 8 {
				t.Errorf("Render(%d): corner %v alpha = %d, want near zero", size, pt, a)
			}
		}
	}
}

// opaqueBounds returns the bounding box of pixels with alpha of at least
// 128, which isolates the bubble from its translucent drop shadow.
func opaqueBounds(img *image.NRGBA) image.Rectangle {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	minX, minY := w, h
	maxX, maxY := -1, -1
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if img.NRGBAAt(x, y).A < 128 {
				continue
			}
			if x < minX {
				minX = x
			}
			if y < minY {
				minY = y
			}
			if x > maxX {
				maxX = x
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if maxX < 0 {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

func TestRenderScaleConsistency(t *testing.T) {
	const refSize = 256
	ref := opaqueBounds(Render(refSize))
	if ref.Empty() {
		t.Fatal("Render(256): no opaque pixels")
	}
	refW := float64(ref.Dx()) / refSize
	refH := float64(ref.Dy()) / refSize

	for _, size := range []int{32, 64, 128} {
		bb := opaqueBounds(Render(size))
		if bb.Empty() {
			t.Fatalf("Render(%d): no opaque pixels", size)
		}
		// The bubble box scales with the canvas; allow a couple of
		// pixels of rasterization slack on each side.
		tol := 2.5/float64(size) + 2.5/refSize
		if w := float64(bb.Dx()) / float64(size); math.Abs(w-refW) > tol {
			t.Errorf("Render(%d): bubble width ratio = %.4f, want %.4f within %.4f", size, w, refW, tol)
		}
		if h := float64(bb.Dy()) / float64(size); math.Abs(h-refH) > tol {
			t.Errorf("Render(%d): bubble height ratio = %.4f, want %.4f within %.4f", size, h, refH, tol)
		}
	}
}

func brightness(img *image.NRGBA, x, y int) int {
	c := img.NRGBAAt(x, y)
	return int(c.R) + int(c.G) + int(c.B)
}

func TestRenderFeatures(t *testing.T) {
	// Probe each foreground feature of the 256px icon against a plain
	// patch of bubble, which catches a missing or misplaced layer without
	// pinning exact pixel values.
	img := Render(256)

	tests := []struct {
		name    string
		x, y    int // feature pixel
		bx, by  int // plain bubble pixel on a comparable background
		minDiff int
	}{
		{"foreground head", 89, 82, 38, 82, 200},
		{"connection dot", 128, 102, 115, 102, 80},
		{"sync arc", 128, 215, 64, 215, 150},
		{"arrowhead", 151, 174, 64, 174, 200},
	}
	for _, tt := range tests {
		if a := img.NRGBAAt(tt.x, tt.y).A; a < 250 {
			t.Errorf("%s (%d,%d): alpha = %d, want opaque over the bubble", tt.name, tt.x, tt.y, a)
			continue
		}
		got := brightness(img, tt.x, tt.y)
		base := brightness(img, tt.bx, tt.by)
		if got-base < tt.minDiff {
			t.Errorf("%s (%d,%d): brightness = %d over base %d, want at least %d brighter",
				tt.name, tt.x, tt.y, got, base, tt.minDiff)
		}
	}
}

var benchSink *image.NRGBA

func BenchmarkRender(b *testing.B) {
	for _, size := range []int{16, 64, 256} {
		b.Run(strconv.Itoa(size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				benchSink = Render(size)
			}
		})
	}
}
