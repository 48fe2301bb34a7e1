// Package quant turns an RGBA8 frame plus a Palette into a paletted output
// buffer (RGB plus a palette index carried in the 4th byte), via either
// nearest-neighbor thresholding or Floyd-Steinberg dithering.
package quant

import "github.com/vividgif/gif89/internal/palette"

// Threshold quantizes cur against pal using nearest-neighbor thresholding,
// with no error diffusion. prev may be nil (first frame).
//
// out must be the same length as cur (width*height*4). It is safe for out
// to alias prev -- each pixel of prev is read before the same pixel of out
// is overwritten, within the same iteration.
func Threshold(prev, cur, out []byte, width, height int, pal *palette.Palette) {
	numPixels := width * height
	for i := 0; i < numPixels; i++ {
		o := i * 4

		if prev != nil && prev[o] == cur[o] && prev[o+1] == cur[o+1] && prev[o+2] == cur[o+2] {
			r, g, b := prev[o], prev[o+1], prev[o+2]
			out[o], out[o+1], out[o+2], out[o+3] = r, g, b, 0
			continue
		}

		ind, _ := pal.GetClosestColor(int(cur[o]), int(cur[o+1]), int(cur[o+2]), 1, palette.InitialBestDiff)
		out[o] = pal.R[ind]
		out[o+1] = pal.G[ind]
		out[o+2] = pal.B[ind]
		out[o+3] = byte(ind)
	}
}
