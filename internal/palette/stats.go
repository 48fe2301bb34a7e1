package palette

// findDarkestColor returns the channel-wise minimum RGB across the subset.
func findDarkestColor(buf []byte, numPixels int) (r, g, b uint8) {
	r, g, b = 255, 255, 255
	for i := 0; i < numPixels; i++ {
		if v := buf[i*4]; v < r {
			r = v
		}
		if v := buf[i*4+1]; v < g {
			g = v
		}
		if v := buf[i*4+2]; v < b {
			b = v
		}
	}
	return
}

// findLightestColor returns the channel-wise maximum RGB across the subset.
func findLightestColor(buf []byte, numPixels int) (r, g, b uint8) {
	for i := 0; i < numPixels; i++ {
		if v := buf[i*4]; v > r {
			r = v
		}
		if v := buf[i*4+1]; v > g {
			g = v
		}
		if v := buf[i*4+2]; v > b {
			b = v
		}
	}
	return
}

// findSubcubeAverage returns the rounded mean RGB of the subset. Rounding
// adds half the pixel count before the integer division, matching
// round-half-up semantics rather than truncation.
func findSubcubeAverage(buf []byte, numPixels int) (r, g, b uint8) {
	var rs, gs, bs uint64
	for i := 0; i < numPixels; i++ {
		rs += uint64(buf[i*4])
		gs += uint64(buf[i*4+1])
		bs += uint64(buf[i*4+2])
	}
	n := uint64(numPixels)
	rs = (rs + n/2) / n
	gs = (gs + n/2) / n
	bs = (bs + n/2) / n
	return uint8(rs), uint8(gs), uint8(bs)
}

// findLargestRange returns the per-channel (max-min) range across the
// subset, used to pick the split axis for the next tree level.
func findLargestRange(buf []byte, numPixels int) (rRange, gRange, bRange int) {
	minR, maxR := 255, 0
	minG, maxG := 255, 0
	minB, maxB := 255, 0

	for i := 0; i < numPixels; i++ {
		r := int(buf[i*4])
		g := int(buf[i*4+1])
		b := int(buf[i*4+2])

		if r > maxR {
			maxR = r
		}
		if r < minR {
			minR = r
		}
		if g > maxG {
			maxG = g
		}
		if g < minG {
			minG = g
		}
		if b > maxB {
			maxB = b
		}
		if b < minB {
			minB = b
		}
	}

	return maxR - minR, maxG - minG, maxB - minB
}
