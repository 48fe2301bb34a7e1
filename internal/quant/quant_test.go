package quant

import (
	"testing"

	"github.com/vividgif/gif89/internal/palette"
)

func solidFrame(w, h int, r, g, b byte) []byte {
	buf := make([]byte, w*h*4)
	for i := 0; i < w*h; i++ {
		buf[i*4] = r
		buf[i*4+1] = g
		buf[i*4+2] = b
		buf[i*4+3] = 255
	}
	return buf
}

func TestThreshold_SolidFrameQuantizesToPaletteColor(t *testing.T) {
	frame := solidFrame(2, 2, 10, 20, 30)
	pal := palette.Build(nil, frame, 2, 2, 8, false)

	out := make([]byte, len(frame))
	Threshold(nil, frame, out, 2, 2, pal)

	for i := 0; i < 4; i++ {
		o := i * 4
		if out[o+3] == 0 {
			t.Fatalf("pixel %d: first frame must never be transparent, got index 0", i)
		}
		if out[o] != pal.R[out[o+3]] || out[o+1] != pal.G[out[o+3]] || out[o+2] != pal.B[out[o+3]] {
			t.Fatalf("pixel %d: output RGB doesn't match palette entry %d", i, out[o+3])
		}
	}
}

func TestThreshold_UnchangedPixelBecomesTransparent(t *testing.T) {
	prev := solidFrame(2, 2, 10, 20, 30)
	cur := solidFrame(2, 2, 10, 20, 30)
	pal := palette.Build(prev, cur, 2, 2, 8, false)

	out := make([]byte, len(cur))
	Threshold(prev, cur, out, 2, 2, pal)

	for i := 0; i < 4; i++ {
		if out[i*4+3] != 0 {
			t.Fatalf("pixel %d: expected transparent index 0, got %d", i, out[i*4+3])
		}
	}
}

func TestThreshold_ChangedPixelIsOpaque(t *testing.T) {
	prev := solidFrame(2, 2, 10, 20, 30)
	cur := solidFrame(2, 2, 10, 20, 30)
	cur[0], cur[1], cur[2] = 200, 100, 50 // pixel (0,0) changes

	pal := palette.Build(prev, cur, 2, 2, 8, false)
	out := make([]byte, len(cur))
	Threshold(prev, cur, out, 2, 2, pal)

	if out[3] == 0 {
		t.Fatalf("changed pixel (0,0) should not be transparent")
	}
	for i := 1; i < 4; i++ {
		if out[i*4+3] != 0 {
			t.Fatalf("pixel %d should be transparent (unchanged), got index %d", i, out[i*4+3])
		}
	}
}

func TestDither_NoTransparentIndexOnFirstFrame(t *testing.T) {
	width, height := 16, 1
	frame := make([]byte, width*height*4)
	for x := 0; x < width; x++ {
		frame[x*4] = byte(x * 17)
		frame[x*4+3] = 255
	}
	pal := palette.Build(nil, frame, width, height, 4, true)

	out := make([]byte, len(frame))
	Dither(nil, frame, out, width, height, pal)

	for x := 0; x < width; x++ {
		if out[x*4+3] == 0 {
			t.Fatalf("pixel %d: first frame with dithering should never use the transparency index", x)
		}
	}
}

func TestDither_IdenticalFramesAreAllTransparent(t *testing.T) {
	width, height := 8, 1
	frame := solidFrame(width, height, 40, 80, 120)
	pal := palette.Build(nil, frame, width, height, 4, true)

	out1 := make([]byte, len(frame))
	Dither(nil, frame, out1, width, height, pal)

	out2 := make([]byte, len(frame))
	Dither(out1, frame, out2, width, height, pal)

	for x := 0; x < width; x++ {
		if out2[x*4+3] != 0 {
			t.Fatalf("pixel %d: identical second frame should be fully transparent, got index %d", x, out2[x*4+3])
		}
	}
}
