package gif89

// flipVertical returns a copy of frame with its scanlines reversed
// top-to-bottom. It never mutates frame, since callers may reuse the
// buffer across frames.
func flipVertical(frame []byte, width, height int) []byte {
	stride := width * 4
	out := make([]byte, len(frame))
	for y := 0; y < height; y++ {
		src := frame[y*stride : y*stride+stride]
		dst := out[(height-1-y)*stride : (height-1-y)*stride+stride]
		copy(dst, src)
	}
	return out
}
