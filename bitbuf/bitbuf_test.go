/*
NAME
  bitbuf_test.go

DESCRIPTION
  bitbuf_test.go contains testing for functionality found in bitbuf.go and
  startcode.go.

AUTHORS
  mpeg1 contributors

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package bitbuf

import (
	"testing"
)

// TestReadRoundTrip checks that a sequence of differently-sized reads
// reconstructs the exact bit pattern written, the base invariant every
// other BitBuffer consumer (demuxer, video/audio decoders) depends on.
func TestReadRoundTrip(t *testing.T) {
	data := []byte{0x8f, 0xe3, 0x5a, 0x01}
	b := NewWithMemory(data, nil)

	cases := []struct {
		nBits int
		want  uint32
	}{
		{4, 0x8},
		{2, 0x3},
		{4, 0xf},
		{6, 0x23},
		{8, 0x5a},
		{8, 0x01},
	}
	for i, c := range cases {
		got := b.Read(c.nBits)
		if got != c.want {
			t.Errorf("read %d: Read(%d) = %#x, want %#x", i, c.nBits, got, c.want)
		}
	}
}

// TestReadSigned checks ReadSigned's signed mapping: a value with its top
// bit clear is returned as is, one with its top bit set maps to v - 2^n + 1.
func TestReadSigned(t *testing.T) {
	// 5-bit field 0b00011 (3) is positive; 0b11100 (28) maps to 28-32+1 = -3.
	b := NewWithMemory([]byte{0b00011_111, 0b00_000000}, nil)
	if got := b.ReadSigned(5); got != 3 {
		t.Errorf("ReadSigned(5) = %d, want 3", got)
	}

	b2 := NewWithMemory([]byte{0b11100_000}, nil)
	if got := b2.ReadSigned(5); got != -3 {
		t.Errorf("ReadSigned(5) = %d, want -3", got)
	}
}

// TestAlign checks that Align moves the read position forward to the next
// byte boundary and is a no-op when already aligned.
func TestAlign(t *testing.T) {
	b := NewWithMemory([]byte{0xff, 0xff}, nil)
	b.Read(3)
	b.Align()
	if b.Tell() != 8 {
		t.Errorf("Tell() after Align = %d, want 8", b.Tell())
	}
	b.Align()
	if b.Tell() != 8 {
		t.Errorf("Tell() after no-op Align = %d, want 8", b.Tell())
	}
}

// TestSkipBytes checks that a run of stuffing bytes is consumed and
// counted, and stops exactly at the first differing byte.
func TestSkipBytes(t *testing.T) {
	b := NewWithMemory([]byte{0xff, 0xff, 0xff, 0x42}, nil)
	n := b.SkipBytes(0xff)
	if n != 3 {
		t.Fatalf("SkipBytes = %d, want 3", n)
	}
	if got := b.Read(8); got != 0x42 {
		t.Errorf("byte after SkipBytes = %#x, want 0x42", got)
	}
}

// TestNextStartCodeAlignmentInvariant checks that NextStartCode always
// leaves the read position byte-aligned immediately after the full
// 00 00 01 XX marker, returning XX.
func TestNextStartCodeAlignmentInvariant(t *testing.T) {
	data := []byte{0x00, 0x01, 0x00, 0x00, 0x01, 0xB3, 0x02, 0x03}
	b := NewWithMemory(data, nil)

	code := b.NextStartCode()
	if code != 0xB3 {
		t.Fatalf("NextStartCode() = %#x, want 0xB3", code)
	}
	if b.Tell() != 6*8 {
		t.Fatalf("Tell() after NextStartCode = %d, want %d", b.Tell(), 6*8)
	}
	// The start-code byte itself has been consumed.
	if got := b.Read(8); got != 0x02 {
		t.Errorf("Read(8) after NextStartCode = %#x, want 0x02", got)
	}
}

// TestNextStartCodeNone checks that scanning a buffer with no 00 00 01
// marker returns StartCodeNone.
func TestNextStartCodeNone(t *testing.T) {
	b := NewWithMemory([]byte{0x11, 0x22, 0x33, 0x44}, nil)
	if code := b.NextStartCode(); code != StartCodeNone {
		t.Errorf("NextStartCode() = %d, want StartCodeNone", code)
	}
}

// TestFindStartCode checks that FindStartCode skips over non-matching
// start codes and lands just past the matching one.
func TestFindStartCode(t *testing.T) {
	data := []byte{
		0x00, 0x00, 0x01, 0xB3, // sequence header
		0x00, 0x00, 0x01, 0x00, // picture start
		0xAA,
	}
	b := NewWithMemory(data, nil)
	if code := b.FindStartCode(0x00); code != 0x00 {
		t.Fatalf("FindStartCode(0x00) = %#x, want 0x00", code)
	}
	if got := b.Read(8); got != 0xAA {
		t.Errorf("Read(8) after FindStartCode = %#x, want 0xAA", got)
	}
}

// TestHasStartCodeDoesNotAdvance checks that a HasStartCode probe leaves
// the read position untouched.
func TestHasStartCodeDoesNotAdvance(t *testing.T) {
	data := []byte{0x00, 0x00, 0x01, 0xB3, 0x00}
	b := NewWithMemory(data, nil)
	before := b.Tell()
	if !b.HasStartCode(0xB3) {
		t.Fatal("HasStartCode(0xB3) = false, want true")
	}
	if b.Tell() != before {
		t.Errorf("Tell() changed by HasStartCode: %d -> %d", before, b.Tell())
	}
}

// TestSeekAndRewind checks that Seek moves to an arbitrary bit offset and
// Rewind always returns to the start.
func TestSeekAndRewind(t *testing.T) {
	b := NewWithMemory([]byte{0x12, 0x34, 0x56}, nil)
	b.Seek(16)
	if got := b.Read(8); got != 0x56 {
		t.Fatalf("Read(8) after Seek(16) = %#x, want 0x56", got)
	}
	b.Rewind()
	if got := b.Read(8); got != 0x12 {
		t.Errorf("Read(8) after Rewind = %#x, want 0x12", got)
	}
}

// TestReadVLC checks VLC table traversal against a small 3-symbol table:
//
//	0       -> value 1
//	10      -> value 2
//	11      -> value 3
func TestReadVLC(t *testing.T) {
	table := []VLCEntry{
		{Index: 0, Value: 1}, // "0"  -> 1
		{Index: 2, Value: 0}, // "1"  -> internal, children at 2/3
		{Index: 0, Value: 2}, // "10" -> 2
		{Index: 0, Value: 3}, // "11" -> 3
	}

	cases := []struct {
		bits byte
		want int16
	}{
		{0b0_000000, 1},
		{0b10_00000, 2},
		{0b11_00000, 3},
	}
	for _, c := range cases {
		b := NewWithMemory([]byte{c.bits}, nil)
		if got := b.ReadVLC(table); got != c.want {
			t.Errorf("ReadVLC() with top bits %08b = %d, want %d", c.bits, got, c.want)
		}
	}
}

// TestWriteGrowsRingBuffer checks that a ring-mode buffer accepts writes
// beyond its initial capacity by growing, and that previously written data
// is still readable afterwards.
func TestWriteGrowsRingBuffer(t *testing.T) {
	b := NewWithCapacity(2, nil)
	if _, err := b.Write([]byte{0x01, 0x02, 0x03, 0x04, 0x05}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	for i, want := range []uint32{0x01, 0x02, 0x03, 0x04, 0x05} {
		if got := b.Read(8); got != want {
			t.Errorf("byte %d = %#x, want %#x", i, got, want)
		}
	}
}

// TestFixedMemRejectsWrite checks that FixedMemMode buffers refuse writes,
// since they wrap memory the caller already populated in full.
func TestFixedMemRejectsWrite(t *testing.T) {
	b := NewWithMemory([]byte{0x00}, nil)
	if _, err := b.Write([]byte{0x01}); err == nil {
		t.Error("Write on fixed-memory buffer: got nil error, want non-nil")
	}
}

// TestHasTriggersDiscard checks that Ring-mode buffers discard fully
// consumed leading bytes once a load is triggered, keeping Tell()
// monotonic across the compaction.
func TestHasTriggersDiscard(t *testing.T) {
	b := NewWithCapacity(4, nil)
	b.Write([]byte{0xAA, 0xBB, 0xCC, 0xDD})
	b.Read(16) // consume 0xAA, 0xBB
	before := b.Tell()

	fed := false
	b.SetLoadCallback(func(buf *BitBuffer) {
		if !fed {
			buf.Write([]byte{0xEE})
			fed = true
			return
		}
		buf.SignalEnd()
	})

	if !b.Has(8+8+8) { // forces a load, which compacts the already-read prefix
		t.Fatal("Has() = false after feeding enough bytes")
	}
	if b.Tell() != before {
		t.Errorf("Tell() changed across compaction: %d -> %d", before, b.Tell())
	}
	for i, want := range []uint32{0xCC, 0xDD, 0xEE} {
		if got := b.Read(8); got != want {
			t.Errorf("byte %d = %#x, want %#x", i, got, want)
		}
	}
}
