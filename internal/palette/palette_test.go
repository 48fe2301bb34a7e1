package palette

import "testing"

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

func TestBuild_TransparentSlotIsBlack(t *testing.T) {
	frame := solidFrame(2, 2, 10, 20, 30)
	p := Build(nil, frame, 2, 2, 8, false)

	if p.R[0] != 0 || p.G[0] != 0 || p.B[0] != 0 {
		t.Fatalf("entry 0 = (%d,%d,%d), want (0,0,0)", p.R[0], p.G[0], p.B[0])
	}
}

func TestBuild_SolidFrameProducesMatchingLeafColor(t *testing.T) {
	frame := solidFrame(4, 4, 10, 20, 30)
	p := Build(nil, frame, 4, 4, 8, false)

	// 16 pixels spread over 255 leaves leave the low leaves (entry 1
	// included) without pixels, so look up the leaf the color resolves to.
	ind, diff := p.GetClosestColor(10, 20, 30, 1, InitialBestDiff)
	if diff != 0 || p.R[ind] != 10 || p.G[ind] != 20 || p.B[ind] != 30 {
		t.Fatalf("entry %d = (%d,%d,%d), want (10,20,30)", ind, p.R[ind], p.G[ind], p.B[ind])
	}
}

func TestGetClosestColor_NeverReturnsTransparencyIndex(t *testing.T) {
	frame := solidFrame(8, 8, 100, 150, 200)
	p := Build(nil, frame, 8, 8, 4, false)

	for _, q := range [][3]int{{0, 0, 0}, {255, 255, 255}, {100, 150, 200}, {1, 2, 3}} {
		ind, _ := p.GetClosestColor(q[0], q[1], q[2], 1, InitialBestDiff)
		if ind < 1 || ind > (1<<p.BitDepth)-1 {
			t.Fatalf("query %v: index %d out of range [1, %d]", q, ind, (1<<p.BitDepth)-1)
		}
	}
}

func TestPickChangedPixels_OnlyDiffersAreCompacted(t *testing.T) {
	prev := solidFrame(2, 2, 1, 1, 1)
	cur := solidFrame(2, 2, 1, 1, 1)
	// Change pixel index 2 (third pixel) only.
	cur[2*4], cur[2*4+1], cur[2*4+2] = 9, 9, 9

	n := PickChangedPixels(prev, cur, 4)
	if n != 1 {
		t.Fatalf("expected 1 changed pixel, got %d", n)
	}
	if cur[0] != 9 || cur[1] != 9 || cur[2] != 9 {
		t.Fatalf("compacted pixel at front should be (9,9,9), got (%d,%d,%d)", cur[0], cur[1], cur[2])
	}
}

func TestPickChangedPixels_NoChangesYieldsZero(t *testing.T) {
	prev := solidFrame(3, 3, 5, 6, 7)
	cur := solidFrame(3, 3, 5, 6, 7)

	if n := PickChangedPixels(prev, cur, 9); n != 0 {
		t.Fatalf("expected 0 changed pixels, got %d", n)
	}
}

func TestBuild_BitDepthOne(t *testing.T) {
	frame := make([]byte, 4*4*4)
	for i := 0; i < 4; i++ {
		c := byte(i * 60)
		frame[i*4], frame[i*4+1], frame[i*4+2] = c, c, c
		frame[i*4+3] = 255
	}
	p := Build(nil, frame, 4, 4, 1, false)
	if p.BitDepth != 1 {
		t.Fatalf("BitDepth = %d, want 1", p.BitDepth)
	}
	ind, _ := p.GetClosestColor(0, 0, 0, 1, InitialBestDiff)
	if ind != 1 {
		t.Fatalf("bit_depth=1 should only ever resolve to index 1, got %d", ind)
	}
}
