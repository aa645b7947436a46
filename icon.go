// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package icon procedurally renders the Setu application icon: a rounded
// blue bubble holding two person silhouettes, a row of connection dots
// between their heads, and a pair of sync arrows chasing each other below.
//
// There is no stored artwork. Shapes are rasterized at four times the
// requested size and the result is downsampled with a Lanczos filter, which
// keeps edges smooth at every resolution. All geometry is derived as fixed
// proportions of the working size, so the design is the same at 16 pixels
// as at 256, apart from resampling.
package icon

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// supersample is the ratio of the working canvas to the finished image.
const supersample = 4

// The palette. Alpha is straight, not premultiplied; translucent entries
// rely on alpha-over compositing against whatever is beneath them.
var (
	shadowColor    = color.NRGBA{0, 0, 0, 60}
	baseColor      = color.NRGBA{25, 90, 210, 255}
	bevelColor     = color.NRGBA{35, 105, 225, 255}
	highlightColor = color.NRGBA{70, 150, 255, 70}
	glossColor     = color.NRGBA{255, 255, 255, 35}
	frontColor     = color.NRGBA{255, 255, 255, 240}
	backColor      = color.NRGBA{190, 220, 255, 220}
	dotColor       = color.NRGBA{180, 220, 255, 180}
	arcColor       = color.NRGBA{200, 235, 255, 230}
	arrowColor     = color.NRGBA{220, 245, 255, 250}
)

// Render draws the icon at the given edge length and returns it as a
// size×size image with straight (non-premultiplied) alpha, so the Pix slice
// is laid out R, G, B, A row-major. Rendering is deterministic: two calls
// with equal sizes return identical pixels. The size must be positive.
func Render(size int) *image.NRGBA {
	n := size * supersample
	s := float64(n)
	c := newCanvas(n)

	pad := 0.06 * s
	radius := 0.24 * s

	// Drop shadow: the bubble's box nudged down and right, blurred on its
	// own layer, composited before everything else.
	off := 0.015 * s
	shadow := c.newLayer()
	shadow.fillRoundedRect(pad+off, pad+2*off, s-pad+off, s-pad+2*off, radius, shadowColor)
	c.compose(shadow.blurred(0.025 * s))

	// Bubble body: a dark base coat under a lighter coat that is inset on
	// every side except the bottom, leaving a darker rim along the lower
	// edge.
	c.fillRoundedRect(pad, pad, s-pad, s-pad, radius, baseColor)
	in := 0.02 * s
	c.fillRoundedRect(pad+in, pad+in, s-pad-in, s-pad, radius-in, bevelColor)

	// Directional light: a translucent wash over the upper half, blurred
	// into a soft vertical gradient.
	light := c.newLayer()
	light.fillRoundedRect(pad+in, pad+in, s-pad-in, 0.5*s, radius-in, highlightColor)
	c.compose(light.blurred(0.03 * s))

	// Gloss band hugging the top edge.
	gloss := c.newLayer()
	gloss.fillRoundedRect(pad+0.08*s, pad+0.03*s, s-pad-0.08*s, pad+0.15*s, 0.06*s, glossColor)
	c.compose(gloss.blurred(0.02 * s))

	// Two figures on a shared baseline. The foreground one sits left of
	// center, larger and near-white; its companion sits right, smaller and
	// tinted toward the bubble.
	cx := 0.5 * s
	cy := 0.42 * s
	person{cx: cx - 0.15*s, cy: cy, headR: 0.065 * s, bodyW: 0.09 * s, bodyH: 0.12 * s, color: frontColor}.draw(c, s)
	person{cx: cx + 0.15*s, cy: cy, headR: 0.058 * s, bodyW: 0.08 * s, bodyH: 0.11 * s, color: backColor}.draw(c, s)

	// Three dots bridging the heads.
	dotY := cy - 0.02*s
	dotR := math.Max(2, 0.012*s)
	for _, dx := range []float64{-0.02 * s, 0, 0.02 * s} {
		c.fillCircle(cx+dx, dotY, dotR, dotColor)
	}

	// Sync arrows in the bubble's lower half.
	drawSyncArrows(c, cx, 0.74*s, 0.10*s, s)

	return imaging.Resize(c.rgba, size, size, imaging.Lanczos)
}
