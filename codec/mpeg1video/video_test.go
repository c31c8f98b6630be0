/*
NAME
  video_test.go

DESCRIPTION
  video_test.go contains testing for functionality found in video.go and
  tables.go.

AUTHORS
  mpeg1 contributors

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package mpeg1video

import (
	"testing"

	"github.com/ausocean/mpeg1/bitbuf"
)

// bitWriter packs bits MSB-first into a byte slice, used to hand-construct
// synthetic elementary-stream fixtures.
type bitWriter struct {
	bytes []byte
	cur   byte
	nbits int
}

func (w *bitWriter) writeBits(v uint64, n int) {
	for ; n > 0; n-- {
		bit := byte((v >> uint(n-1)) & 1)
		w.cur = (w.cur << 1) | bit
		w.nbits++
		if w.nbits == 8 {
			w.bytes = append(w.bytes, w.cur)
			w.cur, w.nbits = 0, 0
		}
	}
}

func (w *bitWriter) writeStartCode(code byte) {
	w.bytes = append(w.bytes, 0x00, 0x00, 0x01, code)
}

func (w *bitWriter) finish() []byte {
	if w.nbits != 0 {
		panic("bitWriter: fixture not byte aligned")
	}
	return w.bytes
}

// sequenceHeader builds a minimal sequence_header (no custom quant
// matrices) for a width x height sequence at the given 4-bit framerate
// code, padded out so Decoder's conservative Has(maxHeaderSize) check
// (which budgets for two custom 64-byte matrices it never reads here)
// passes.
func sequenceHeader(width, height, framerateCode int) []byte {
	w := &bitWriter{}
	w.writeStartCode(startSequence)
	w.writeBits(uint64(width), 12)
	w.writeBits(uint64(height), 12)
	w.writeBits(0, 4) // pixel aspect ratio
	w.writeBits(uint64(framerateCode), 4)
	w.writeBits(0, 18+1+10+1) // bit_rate, marker, buffer_size, constrained bit
	w.writeBits(0, 1)         // no custom intra matrix
	w.writeBits(0, 1)         // no custom non-intra matrix
	data := w.finish()
	// Pad so at least 136 bytes (1088 bits) are available past the start
	// code, matching decodeSequenceHeader's upfront Has() budget.
	for len(data) < 4+136 {
		data = append(data, 0)
	}
	return data
}

func TestDecodeSequenceHeader(t *testing.T) {
	data := sequenceHeader(16, 16, 3) // code 3 -> 25 fps
	d := New(bitbuf.NewWithMemory(data, nil), false, nil)

	if !d.HasHeader() {
		t.Fatal("HasHeader() = false, want true")
	}
	if got, want := d.GetWidth(), 16; got != want {
		t.Errorf("GetWidth() = %d, want %d", got, want)
	}
	if got, want := d.GetHeight(), 16; got != want {
		t.Errorf("GetHeight() = %d, want %d", got, want)
	}
	if got, want := d.GetFramerate(), 25.0; got != want {
		t.Errorf("GetFramerate() = %v, want %v", got, want)
	}
	if d.mbWidth != 1 || d.mbHeight != 1 {
		t.Errorf("mbWidth/mbHeight = %d/%d, want 1/1", d.mbWidth, d.mbHeight)
	}
	if len(d.frameCurrent.Y.Data) != d.lumaWidth*d.lumaHeight {
		t.Errorf("frameCurrent.Y.Data len = %d, want %d", len(d.frameCurrent.Y.Data), d.lumaWidth*d.lumaHeight)
	}
	// The three frames must not alias each other's planes.
	d.frameCurrent.Y.Data[0] = 0xAB
	if d.frameForward.Y.Data[0] == 0xAB || d.frameBackward.Y.Data[0] == 0xAB {
		t.Error("frame planes alias across current/forward/backward")
	}
}

func TestDecodeSequenceHeaderRejectsZeroDimensions(t *testing.T) {
	w := &bitWriter{}
	w.writeStartCode(startSequence)
	w.writeBits(0, 12) // width = 0
	w.writeBits(16, 12)
	w.writeBits(0, 4)
	w.writeBits(3, 4)
	w.writeBits(0, 18+1+10+1)
	w.writeBits(0, 1)
	w.writeBits(0, 1)
	data := w.finish()
	for len(data) < 4+136 {
		data = append(data, 0)
	}

	d := New(bitbuf.NewWithMemory(data, nil), false, nil)
	if d.HasHeader() {
		t.Error("HasHeader() = true for a zero-width sequence, want false")
	}
}

func TestIsSlice(t *testing.T) {
	cases := []struct {
		code int
		want bool
	}{
		{0x00, false}, // picture start
		{0x01, true},  // first slice
		{0xAF, true},  // last slice
		{0xB0, false},
		{0xB3, false}, // sequence
	}
	for _, c := range cases {
		if got := isSlice(c.code); got != c.want {
			t.Errorf("isSlice(%#x) = %v, want %v", c.code, got, c.want)
		}
	}
}

func TestClampByte(t *testing.T) {
	cases := []struct {
		in   int
		want uint8
	}{
		{-100, 0},
		{0, 0},
		{128, 128},
		{255, 255},
		{300, 255},
	}
	for _, c := range cases {
		if got := clampByte(c.in); got != c.want {
			t.Errorf("clampByte(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestIDCTZeroInvariant(t *testing.T) {
	var block [64]int
	idct(&block)
	for i, v := range block {
		if v != 0 {
			t.Fatalf("idct(zero block)[%d] = %d, want 0", i, v)
		}
	}
}

func TestIDCTFlatDC(t *testing.T) {
	// A pure DC coefficient should produce a constant output block (flat
	// response of the inverse transform to a flat frequency input), which
	// is the case decodeBlock special-cases via the (s[0]+128)>>8 shortcut
	// rather than running the full idct; this exercises idct directly to
	// confirm that shortcut and the general path agree for n==1-shaped
	// input once premultiplied.
	var block [64]int
	block[0] = 8 << (3 + 5) // same premultiply shift decodeBlock applies
	idct(&block)
	want := block[0]
	for i, v := range block {
		if v != want {
			t.Errorf("idct(dc-only)[%d] = %d, want uniform %d", i, v, want)
		}
	}
	if shortcut := (8<<(3+5) + 128) >> 8; want != shortcut {
		t.Errorf("idct(dc-only) = %d, want %d from the (s[0]+128)>>8 shortcut", want, shortcut)
	}
}

// TestDecodeMotionVectorWrap checks decodeMotionVector's wraparound
// arithmetic against the r_size=0 (fscale=1) case, where the motion code
// itself is the delta with no extra range bits.
func TestDecodeMotionVectorWrap(t *testing.T) {
	// motionTable: single bit "1" decodes motion_code 0 (table[1] =
	// {Index:0, Value:0}), giving delta 0 regardless of r_size.
	b := bitbuf.NewWithMemory([]byte{0b1_0000000}, nil)
	d := &Decoder{buf: b}
	got := d.decodeMotionVector(0, 5)
	if got != 5 {
		t.Errorf("decodeMotionVector(0, 5) with motion_code 0 = %d, want 5", got)
	}

	// Bits "010" decode motion_code +1; 15+1 leaves the fscale=1 range
	// [-16, 15] and wraps to 16-32 = -16.
	b2 := bitbuf.NewWithMemory([]byte{0b010_00000}, nil)
	d2 := &Decoder{buf: b2}
	if got := d2.decodeMotionVector(0, 15); got != -16 {
		t.Errorf("decodeMotionVector(0, 15) with motion_code 1 = %d, want -16", got)
	}
}

func TestMacroblockTypeTablesIndexedByPictureType(t *testing.T) {
	if macroblockTypeTables[pictureTypeIntra] == nil {
		t.Error("macroblockTypeTables[pictureTypeIntra] is nil")
	}
	if macroblockTypeTables[pictureTypePredictive] == nil {
		t.Error("macroblockTypeTables[pictureTypePredictive] is nil")
	}
	if macroblockTypeTables[pictureTypeB] == nil {
		t.Error("macroblockTypeTables[pictureTypeB] is nil")
	}
}

func TestMacroblockAddressIncrementSingleBit(t *testing.T) {
	// Code "1" decodes increment 1 (table[1] = {Index:0, Value:1}).
	b := bitbuf.NewWithMemory([]byte{0b1_0000000}, nil)
	if got := b.ReadVLC(macroblockAddressIncrementTable); got != 1 {
		t.Errorf("ReadVLC(macroblockAddressIncrementTable) with bit '1' = %d, want 1", got)
	}
}
