package gif89

import "errors"

// Sentinel errors returned by Open, WriteFrame, and Close.
var (
	ErrFileOpen     = errors.New("gif89: failed to open output")
	ErrWriterClosed = errors.New("gif89: writer is closed")
	ErrInputSize    = errors.New("gif89: frame buffer size does not match width*height*4")
)
