package quant

import "github.com/vividgif/gif89/internal/palette"

// Dither quantizes cur against pal using Floyd-Steinberg error-diffusion
// dithering. prev may be nil (first frame).
//
// Working precision is 32-bit signed per channel, scaled by 256, so
// quantization error carries 8 fractional bits of sub-single-color
// precision as it propagates to later pixels.
//
// out must be the same length as cur (width*height*4); unlike Threshold,
// Dither does not require (and does not support) out aliasing prev, since
// it needs its own scratch precision buffer regardless.
func Dither(prev, cur, out []byte, width, height int, pal *palette.Palette) {
	numPixels := width * height
	q := make([]int32, numPixels*4)
	for i, v := range cur {
		q[i] = int32(v) * 256
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			o := i * 4

			rr := (q[o] + 127) / 256
			gg := (q[o+1] + 127) / 256
			bb := (q[o+2] + 127) / 256

			if prev != nil && int32(prev[o]) == rr && int32(prev[o+1]) == gg && int32(prev[o+2]) == bb {
				// Wanted color already on screen: emit transparent and
				// skip error propagation entirely.
				q[o], q[o+1], q[o+2], q[o+3] = rr, gg, bb, 0
				continue
			}

			ind, _ := pal.GetClosestColor(int(rr), int(gg), int(bb), 0, palette.InitialBestDiff)

			rErr := q[o] - int32(pal.R[ind])*256
			gErr := q[o+1] - int32(pal.G[ind])*256
			bErr := q[o+2] - int32(pal.B[ind])*256

			q[o] = int32(pal.R[ind])
			q[o+1] = int32(pal.G[ind])
			q[o+2] = int32(pal.B[ind])
			q[o+3] = int32(ind)

			// Propagate to the four Floyd-Steinberg neighbors that haven't
			// been visited yet: right (7/16), below-left (3/16), below
			// (5/16), below-right (1/16). Note the below-left neighbor is
			// only checked against the overall buffer bound, not the row
			// start -- at x==0 it silently wraps onto the previous row's
			// trailing pixel. This is source-faithful, not a bug to fix.
			if loc := i + 1; loc < numPixels {
				propagate(q, loc, rErr, gErr, bErr, 7)
			}
			if loc := i + width - 1; loc < numPixels {
				propagate(q, loc, rErr, gErr, bErr, 3)
			}
			if loc := i + width; loc < numPixels {
				propagate(q, loc, rErr, gErr, bErr, 5)
			}
			if loc := i + width + 1; loc < numPixels {
				propagate(q, loc, rErr, gErr, bErr, 1)
			}
		}
	}

	for i := 0; i < numPixels*4; i++ {
		out[i] = byte(q[i])
	}
}

// propagate adds a weighted share of the quantization error to the
// neighbor at loc, for each of the R,G,B channels.
func propagate(q []int32, loc int, rErr, gErr, bErr int32, weight int32) {
	o := loc * 4
	q[o] += clampFloor(q[o], rErr*weight/16)
	q[o+1] += clampFloor(q[o+1], gErr*weight/16)
	q[o+2] += clampFloor(q[o+2], bErr*weight/16)
}

// clampFloor applies the one-sided error clamp: the neighbor channel is
// never driven below zero, but positive overshoot is allowed through
// uncapped (the final rounding step simply truncates it away). This is not
// symmetric error diffusion -- mirroring the asymmetry exactly is required
// for byte-exact output.
func clampFloor(target, delta int32) int32 {
	if -target > delta {
		return -target
	}
	return delta
}
