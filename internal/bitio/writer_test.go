package bitio

import (
	"bytes"
	"testing"
)

func TestWriter_SingleShortCode(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)

	w.WriteCode(5, 3) // 0b101, LSB-first
	w.EndFrameFlush()
	w.WriteTerminator()

	want := []byte{0x01, 0x05, 0x00}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got % x, want % x", buf.Bytes(), want)
	}
	if err := w.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWriter_FlushAt255Bytes(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)

	for i := 0; i < 255; i++ {
		w.WriteCode(uint32(i), 8)
	}

	// The 255th byte completes the sub-block mid-call; it must already be
	// flushed before EndFrameFlush runs.
	if got := buf.Len(); got != 256 {
		t.Fatalf("expected inline flush of a 255-byte sub-block (256 bytes written so far), got %d", got)
	}

	w.EndFrameFlush()
	w.WriteTerminator()

	if buf.Len() != 257 {
		t.Fatalf("expected a trailing zero-length terminator, total length %d", buf.Len())
	}
	if buf.Bytes()[256] != 0 {
		t.Fatalf("last byte should be the zero-length terminator, got %#x", buf.Bytes()[256])
	}
	if buf.Bytes()[0] != 255 {
		t.Fatalf("sub-block length byte should be 255, got %d", buf.Bytes()[0])
	}
	for i := 0; i < 255; i++ {
		if buf.Bytes()[1+i] != byte(i) {
			t.Fatalf("payload byte %d: got %d, want %d", i, buf.Bytes()[1+i], i)
		}
	}
}

func TestWriter_PartialByteNotEmittedUntilFull(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)

	w.WriteBit(1)
	w.WriteBit(0)
	w.WriteBit(1)
	if buf.Len() != 0 {
		t.Fatalf("partial byte should not be flushed early, got %d bytes", buf.Len())
	}

	w.EndFrameFlush()
	if buf.Len() != 2 { // length byte + 1 payload byte
		t.Fatalf("expected a single-byte sub-block after padding, got %d bytes", buf.Len())
	}
	if buf.Bytes()[1] != 0b101 {
		t.Fatalf("padded byte = %#b, want 0b101", buf.Bytes()[1])
	}
}

func TestWriter_LSBFirstBitOrder(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)

	// 0b1100 written as 4 bits, LSB first: 0,0,1,1
	w.WriteCode(0b1100, 4)
	w.EndFrameFlush()

	got := buf.Bytes()[1]
	want := byte(0b1100) // same nibble; low 4 bits of the resulting byte
	if got != want {
		t.Fatalf("got %#b, want %#b", got, want)
	}
}
