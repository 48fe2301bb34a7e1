// Package lzw implements the variable-width LZW encoder GIF's image data
// sub-blocks require: a monotonically growing code dictionary with
// explicit clear/end codes, not an adaptive-reset scheme. It intentionally
// does not reuse the standard library's compress/lzw package, whose
// dictionary growth and reset strategy differ from the GIF reference
// encoder closely enough to be readable by any GIF decoder, but not
// closely enough to be byte-identical to it.
package lzw

import (
	"io"

	"github.com/vividgif/gif89/internal/bitio"
)

const dictSize = 4096

// node is one entry of the LZW dictionary: for each of the 256 possible
// next palette indices, the code of the run formed by extending the
// current run by that index (0 means "unused").
type node struct {
	next [256]uint16
}

// Encode compresses the palette-index channel (the 4th byte of every RGBA
// quad in indices) and writes it to sink as a complete GIF image data
// stream: the minimum-code-size byte, the LZW-coded sub-blocks, and the
// zero-length terminator.
func Encode(sink io.Writer, indices []byte, width, height, bitDepth int) error {
	minCodeSize := bitDepth
	clearCode := uint32(1 << uint(bitDepth))
	endCode := clearCode + 1

	if _, err := sink.Write([]byte{byte(minCodeSize)}); err != nil {
		return err
	}

	bw := bitio.New(sink)
	codeSize := uint32(minCodeSize + 1)
	maxCode := clearCode + 1
	dict := make([]node, dictSize)

	bw.WriteCode(clearCode, codeSize)

	currCode := int32(-1)
	numPixels := width * height

	for i := 0; i < numPixels; i++ {
		nextValue := indices[i*4+3]

		switch {
		case currCode < 0:
			// First value of a new run.
			currCode = int32(nextValue)

		case dict[currCode].next[nextValue] != 0:
			// The extended run already exists in the dictionary.
			currCode = int32(dict[currCode].next[nextValue])

		default:
			bw.WriteCode(uint32(currCode), codeSize)

			// code_size grows *after* the new code is recorded, so the
			// code just minted may itself need the wider width on its
			// very next emission. This ordering is what makes the stream
			// readable by reference decoders; growing before recording
			// produces a stream one bit narrower than decoders expect.
			maxCode++
			dict[currCode].next[nextValue] = uint16(maxCode)

			if maxCode >= (1 << codeSize) {
				codeSize++
			}
			if maxCode == 4095 {
				bw.WriteCode(clearCode, codeSize)
				dict = make([]node, dictSize)
				codeSize = uint32(minCodeSize + 1)
				maxCode = clearCode + 1
			}

			currCode = int32(nextValue)
		}
	}

	bw.WriteCode(uint32(currCode), codeSize)
	bw.WriteCode(clearCode, codeSize)
	bw.WriteCode(endCode, uint32(minCodeSize+1))

	bw.EndFrameFlush()
	bw.WriteTerminator()

	return bw.Err()
}
