// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package blend provides byte-exact alpha compositing for premultiplied RGBA8.
//
// The field renderer relies on compositing being exactly reproducible, so
// every helper here rounds to nearest instead of using the faster shift
// approximations.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/
package blend

// div255 divides x by 255, rounding to nearest.
//
// Formula: ((x + 128) + ((x + 128) >> 8)) >> 8
//
// Exact for every x in [0, 255*255].
func div255(x uint32) uint32 {
	t := x + 128
	return (t + (t >> 8)) >> 8
}

// MulDiv255 returns round(a*b/255).
func MulDiv255(a, b byte) byte {
	return byte(div255(uint32(a) * uint32(b)))
}

// Unit converts a normalized value to a byte, rounding to nearest.
// Values outside [0, 1] are clamped.
func Unit(v float64) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(v*255 + 0.5)
}
