package gif89

// Options configures how a single frame is quantized and timed.
type Options struct {
	// Delay is this frame's display time in centiseconds. Zero means
	// "use the Writer's default delay".
	Delay int

	// BitDepth selects the palette size: 2^BitDepth colors, including the
	// transparency slot at index 0. Zero means 8 (256 colors). Valid
	// range is [1, 8].
	BitDepth int

	// Dither enables Floyd-Steinberg error-diffusion quantization instead
	// of nearest-neighbor thresholding.
	Dither bool

	// FlipVertical flips the frame top-to-bottom before quantizing it,
	// for sources whose scanlines run bottom-up.
	FlipVertical bool
}
