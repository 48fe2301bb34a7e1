// Package container assembles GIF89a byte streams: the file header, the
// NETSCAPE2.0 looping extension, and the per-frame graphic control
// extension, image descriptor, local color table, and LZW image data. It
// does not decide dispose timing or pixel quantization itself -- those are
// supplied by the caller via internal/palette, internal/quant, and
// internal/lzw -- it only knows the block framing the format requires.
package container

import (
	"encoding/binary"
	"io"

	"github.com/vividgif/gif89/internal/lzw"
	"github.com/vividgif/gif89/internal/palette"
)

const trailer = 0x3B

// WriteHeader emits the "GIF89a" magic, the logical screen descriptor, a
// dummy 2-entry global color table, and -- when loop is true -- the
// NETSCAPE2.0 looping extension that tells viewers to repeat the
// animation forever.
//
// The global color table written here is never actually used for
// rendering: every frame carries its own local color table, per §4.8.
// It exists only because the logical screen descriptor's packed byte
// claims one is present, and decoders are entitled to expect it.
func WriteHeader(sink io.Writer, width, height int, loop bool) error {
	if _, err := io.WriteString(sink, "GIF89a"); err != nil {
		return err
	}

	lsd := make([]byte, 7)
	binary.LittleEndian.PutUint16(lsd[0:2], uint16(width))
	binary.LittleEndian.PutUint16(lsd[2:4], uint16(height))
	lsd[4] = 0xF0 // global color table present, 2 entries, bit depth tag bits set
	lsd[5] = 0x00 // background color index
	lsd[6] = 0x00 // pixel aspect ratio
	if _, err := sink.Write(lsd); err != nil {
		return err
	}

	// Dummy 2-entry global color table: six zero bytes.
	if _, err := sink.Write(make([]byte, 6)); err != nil {
		return err
	}

	if !loop {
		return nil
	}

	netscape := []byte{
		0x21, 0xFF, 0x0B,
		'N', 'E', 'T', 'S', 'C', 'A', 'P', 'E', '2', '.', '0',
		0x03, 0x01, 0x00, 0x00, 0x00,
	}
	_, err := sink.Write(netscape)
	return err
}

// WriteFrame emits one complete frame: graphic control extension, image
// descriptor, local color table, and LZW-compressed image data. indices
// carries the palette index of every pixel in the 4th byte of each RGBA
// quad, the layout internal/quant produces.
func WriteFrame(sink io.Writer, delayCentiseconds uint16, bitDepth int, pal *palette.Palette, indices []byte, width, height int) error {
	gce := make([]byte, 8)
	gce[0] = 0x21
	gce[1] = 0xF9
	gce[2] = 0x04
	gce[3] = 0x05 // dispose = leave in place, transparency flag set
	binary.LittleEndian.PutUint16(gce[4:6], delayCentiseconds)
	gce[6] = 0x00 // transparency index
	gce[7] = 0x00
	if _, err := sink.Write(gce); err != nil {
		return err
	}

	desc := make([]byte, 10)
	desc[0] = 0x2C
	binary.LittleEndian.PutUint16(desc[1:3], 0) // left
	binary.LittleEndian.PutUint16(desc[3:5], 0) // top
	binary.LittleEndian.PutUint16(desc[5:7], uint16(width))
	binary.LittleEndian.PutUint16(desc[7:9], uint16(height))
	desc[9] = 0x80 + byte(bitDepth-1) // local color table present, 2^bitDepth entries
	if _, err := sink.Write(desc); err != nil {
		return err
	}

	numColors := 1 << uint(bitDepth)
	lct := make([]byte, numColors*3)
	// Entry 0 is the transparency slot; left black, never indexed by an
	// opaque pixel.
	for i := 1; i < numColors; i++ {
		lct[i*3] = pal.R[i]
		lct[i*3+1] = pal.G[i]
		lct[i*3+2] = pal.B[i]
	}
	if _, err := sink.Write(lct); err != nil {
		return err
	}

	return lzw.Encode(sink, indices, width, height, bitDepth)
}

// WriteTrailer emits the single byte that closes every GIF stream.
func WriteTrailer(sink io.Writer) error {
	_, err := sink.Write([]byte{trailer})
	return err
}
