// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icon

import (
	"image/color"
	"math"
)

// A person is one silhouette: a round head over a torso with fully rounded
// shoulders, joined by a short neck. All fields are in working-canvas
// pixels. bodyW is the torso half-width, so the torso spans cx±bodyW.
type person struct {
	cx, cy float64 // anchor; the head floats a fixed fraction of s above cy
	headR  float64
	bodyW  float64
	bodyH  float64
	color  color.NRGBA
}

// draw paints the silhouette onto c. s is the working-canvas size, which
// the head offset, neck proportions and minimum feature sizes derive from.
func (p person) draw(c *canvas, s float64) {
	headY := p.cy - 0.10*s
	c.fillCircle(p.cx, headY, p.headR, p.color)

	// The neck overlaps both the head and the torso.
	neckHalfW := math.Max(2, 0.5*p.headR)
	neckTop := headY + p.headR - math.Max(1, 0.005*s)
	neckBot := neckTop + math.Max(2, 0.025*s)
	c.fillRect(p.cx-neckHalfW, neckTop, p.cx+neckHalfW, neckBot, p.color)

	bodyTop := neckBot - math.Max(1, 0.005*s)
	c.fillRoundedRect(p.cx-p.bodyW, bodyTop, p.cx+p.bodyW, bodyTop+p.bodyH, 0.5*p.bodyW, p.color)
}
