// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icon

import "math"

// drawSyncArrows draws two arrows chasing each other around the circle of
// radius r centered on (cx, cy): an arc from 210 to 330 degrees over the
// top and an arc from 30 to 150 degrees under the bottom, each capped with
// a solid triangular head at its leading edge. Angles follow the strokeArc
// convention, degrees clockwise from the positive x axis with y growing
// downward. s is the working-canvas size the stroke and head proportions
// derive from.
func drawSyncArrows(c *canvas, cx, cy, r, s float64) {
	width := math.Max(2, 0.022*s)

	// Both arcs land on one layer and are composited in a single step.
	arcs := c.newLayer()
	arcs.strokeArc(cx, cy, r, 210, 330, width, arcColor)
	arcs.strokeArc(cx, cy, r, 30, 150, width, arcColor)
	c.compose(arcs.rgba)

	// Arrowheads at the arcs' leading edges, -30 and 150 degrees, pointing
	// along the travel of their arcs. The offsets are tuned design
	// constants.
	a := 0.035 * s
	px := cx + r*math.Cos(-30*math.Pi/180)
	py := cy + r*math.Sin(-30*math.Pi/180)
	c.fillTriangle(px+a, py, px-0.3*a, py-a, px-0.3*a, py+0.4*a, arrowColor)

	px = cx + r*math.Cos(150*math.Pi/180)
	py = cy + r*math.Sin(150*math.Pi/180)
	c.fillTriangle(px-a, py, px+0.3*a, py+a, px+0.3*a, py-0.4*a, arrowColor)
}
