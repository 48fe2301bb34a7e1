package palette

// PickChangedPixels compacts the pixels whose (R,G,B) differ from prev to
// the front of frame, preserving relative order, and returns the count of
// changed pixels. Destructive: frame is mutated in place. The palette
// builder uses this to train only on visually significant (changed)
// colors, so a mostly-static animation doesn't waste palette entries on
// the unchanged background.
func PickChangedPixels(prev, frame []byte, numPixels int) int {
	numChanged := 0
	w := 0
	for i := 0; i < numPixels; i++ {
		pi, fi := i*4, i*4
		if prev[pi] != frame[fi] || prev[pi+1] != frame[fi+1] || prev[pi+2] != frame[fi+2] {
			frame[w*4] = frame[fi]
			frame[w*4+1] = frame[fi+1]
			frame[w*4+2] = frame[fi+2]
			w++
			numChanged++
		}
	}
	return numChanged
}
