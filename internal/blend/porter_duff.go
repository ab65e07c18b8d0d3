// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blend

// Premultiply scales straight color channels by alpha.
func Premultiply(r, g, b, a byte) (byte, byte, byte) {
	if a == 255 {
		return r, g, b
	}
	return MulDiv255(r, a), MulDiv255(g, a), MulDiv255(b, a)
}

// Source replaces the destination with a straight-alpha source.
// The result is premultiplied.
func Source(dst []byte, r, g, b, a byte) {
	pr, pg, pb := Premultiply(r, g, b, a)
	dst[0], dst[1], dst[2], dst[3] = pr, pg, pb, a
}

// SourceOver composites a straight-alpha source over a premultiplied
// destination pixel in place.
// Formula: S + D * (1 - Sa)
//
// dst must hold at least 4 bytes (R, G, B, A).
func SourceOver(dst []byte, r, g, b, a byte) {
	if a == 255 {
		dst[0], dst[1], dst[2], dst[3] = r, g, b, 255
		return
	}
	if a == 0 {
		return
	}
	pr, pg, pb := Premultiply(r, g, b, a)
	inv := 255 - a
	dst[0] = pr + MulDiv255(dst[0], inv)
	dst[1] = pg + MulDiv255(dst[1], inv)
	dst[2] = pb + MulDiv255(dst[2], inv)
	dst[3] = a + MulDiv255(dst[3], inv)
}
