// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster enumerates the pixels covered by simple aliased primitives.
package raster

import "math"

// CircleOutline calls plot once for every integer pixel (x, y) whose
// distance from (cx, cy) lies in [radius-0.5, radius+0.5).
//
// The band is one pixel wide, so the outline is closed and never covers
// the center pixel when radius >= 1. Pixels are visited row by row,
// left to right. plot may receive coordinates outside any destination;
// clipping is the caller's job.
func CircleOutline(cx, cy, radius float64, plot func(x, y int)) {
	if radius <= 0 || plot == nil {
		return
	}
	inner := radius - 0.5
	outer := radius + 0.5
	inner2 := inner * inner
	if inner < 0 {
		inner2 = -1
	}
	outer2 := outer * outer

	minY := int(math.Floor(cy - outer))
	maxY := int(math.Ceil(cy + outer))
	minX := int(math.Floor(cx - outer))
	maxX := int(math.Ceil(cx + outer))

	for y := minY; y <= maxY; y++ {
		dy := float64(y) - cy
		for x := minX; x <= maxX; x++ {
			dx := float64(x) - cx
			d2 := dx*dx + dy*dy
			if d2 >= inner2 && d2 < outer2 {
				plot(x, y)
			}
		}
	}
}
