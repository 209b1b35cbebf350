// Package blit copies 8-bit coverage bitmaps into packed 32-bit pixel
// buffers.
//
// All row-stride arithmetic for text compositing lives here: callers pass
// explicit strides and offsets and never index the destination themselves.
package blit

// Pack replicates a grayscale intensity into the red, green and blue
// channels of a 0x00RRGGBB word.
func Pack(v byte) uint32 {
	u := uint32(v)
	return u<<16 | u<<8 | u
}

// Gray copies the srcWidth×srcRows bitmap src (rows srcStride bytes
// apart) into dst (rows dstStride words apart, dstRows rows) with the
// bitmap's top-left corner at column x, row y.
//
// Only bytes greater than zero are written, as Pack(v). Pixels that land
// outside 0 <= col < dstStride, 0 <= row < dstRows are dropped, and so are
// source bytes beyond len(src). There is no wraparound: a bitmap running
// past the right edge is clipped, not continued on the next row.
//
// Gray returns the number of destination pixels written.
func Gray(dst []uint32, dstStride, dstRows int, src []byte, srcStride, srcWidth, srcRows, x, y int) int {
	if dstStride <= 0 || dstRows <= 0 || srcWidth <= 0 || srcRows <= 0 || srcStride <= 0 {
		return 0
	}
	dstRows = min(dstRows, len(dst)/dstStride)
	srcWidth = min(srcWidth, srcStride)

	// Clip the source rectangle against the destination once, so the
	// inner loop needs no per-pixel bounds checks.
	sx0, sy0 := max(0, -x), max(0, -y)
	sx1 := min(srcWidth, dstStride-x)
	sy1 := min(srcRows, dstRows-y)
	if sx0 >= sx1 || sy0 >= sy1 {
		return 0
	}

	written := 0
	for sy := sy0; sy < sy1; sy++ {
		srow := sy * srcStride
		if srow >= len(src) {
			break
		}
		drow := (y+sy)*dstStride + x
		end := min(sx1, len(src)-srow)
		for sx := sx0; sx < end; sx++ {
			if v := src[srow+sx]; v > 0 {
				dst[drow+sx] = Pack(v)
				written++
			}
		}
	}
	return written
}
