package gif89

import (
	"fmt"
	"io"
	"os"

	"github.com/vividgif/gif89/internal/container"
	"github.com/vividgif/gif89/internal/palette"
	"github.com/vividgif/gif89/internal/quant"
)

// Writer streams frames into a single animated GIF89a file. The canvas
// size and the looping decision are fixed at Open and cannot change for
// the lifetime of the Writer; every WriteFrame call quantizes against
// that same width and height.
//
// A Writer is not safe for concurrent use: writes must be serialized by
// the caller, exactly as the frames must appear in the output in call
// order.
type Writer struct {
	sink   io.WriteCloser
	width  int
	height int
	delay  int

	prev   []byte
	closed bool
}

// Open creates (or truncates) the file at path and writes the GIF89a
// header: magic bytes, logical screen descriptor, and -- if opts.Delay is
// non-zero -- the NETSCAPE2.0 extension that loops the animation
// forever. opts.Delay also becomes the writer's default per-frame delay;
// individual WriteFrame calls may override it with their own Options.Delay.
func Open(path string, width, height int, opts Options) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileOpen, err)
	}

	if err := container.WriteHeader(f, width, height, opts.Delay != 0); err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %v", ErrFileOpen, err)
	}

	return &Writer{sink: f, width: width, height: height, delay: opts.Delay}, nil
}

// WriteFrame builds a palette for frame, quantizes it against the
// previous frame (if any), and appends the result to the animation.
// frame must be a tightly packed RGBA8 buffer of exactly width*height*4
// bytes, in row-major order with no stride padding.
func (w *Writer) WriteFrame(frame []byte, opts Options) error {
	if w.closed {
		return ErrWriterClosed
	}
	if len(frame) != w.width*w.height*4 {
		return ErrInputSize
	}

	if opts.FlipVertical {
		frame = flipVertical(frame, w.width, w.height)
	}

	bitDepth := opts.BitDepth
	if bitDepth == 0 {
		bitDepth = 8
	}

	pal := palette.Build(w.prev, frame, w.width, w.height, bitDepth, opts.Dither)

	out := make([]byte, len(frame))
	if opts.Dither {
		quant.Dither(w.prev, frame, out, w.width, w.height, pal)
	} else {
		quant.Threshold(w.prev, frame, out, w.width, w.height, pal)
	}

	delay := opts.Delay
	if delay == 0 {
		delay = w.delay
	}

	if err := container.WriteFrame(w.sink, uint16(delay), bitDepth, pal, out, w.width, w.height); err != nil {
		return fmt.Errorf("gif89: writing frame: %w", err)
	}

	w.prev = out
	return nil
}

// Close appends the 0x3B trailer and closes the underlying file.
//
// Close should be called even after a WriteFrame error: a stream that
// ends in a valid trailer, even if truncated partway through the frames
// actually requested, is still parseable by every decoder that reads
// the format a block at a time rather than demanding an exact frame
// count up front. Close is idempotent -- calling it again on an already-
// closed Writer reports ErrWriterClosed rather than re-emitting the
// trailer or double-closing the sink.
func (w *Writer) Close() error {
	if w.closed {
		return ErrWriterClosed
	}
	w.closed = true

	if err := container.WriteTrailer(w.sink); err != nil {
		w.sink.Close()
		return fmt.Errorf("gif89: writing trailer: %w", err)
	}
	return w.sink.Close()
}
