/*
DESCRIPTION
  startcode.go implements MPEG start-code scanning and VLC decoding on top
  of BitBuffer, grounded directly on plm_buffer_next_start_code,
  plm_buffer_find_start_code, plm_buffer_has_start_code, and
  plm_buffer_read_vlc in the reference pl_mpeg implementation.

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

// StartCodeNone is returned by NextStartCode/FindStartCode when no start
// code is found before the end of available data.
const StartCodeNone = -1

// NextStartCode aligns to the next byte, then scans forward for the
// 00 00 01 pattern, consumes the full 4-byte marker (00 00 01 XX) and
// returns XX, the start-code value. It returns StartCodeNone once fewer
// than five bytes remain ahead of the scan, leaving the read position
// there rather than at the end of the data.
func (b *BitBuffer) NextStartCode() int {
	b.Align()
	for b.Has(8 * 5) {
		byteIndex := b.bitPos >> 3
		if b.bytes[byteIndex] == 0x00 && b.bytes[byteIndex+1] == 0x00 && b.bytes[byteIndex+2] == 0x01 {
			b.bitPos = (byteIndex + 4) * 8
			return int(b.bytes[byteIndex+3])
		}
		b.bitPos += 8
	}
	return StartCodeNone
}

// FindStartCode repeatedly calls NextStartCode until it finds one equal to
// code, returning code, or StartCodeNone if the buffer is exhausted first.
// On success the read position sits just past the matched 4-byte start
// code (00 00 01 code).
func (b *BitBuffer) FindStartCode(code int) int {
	for {
		current := b.NextStartCode()
		if current == code || current == StartCodeNone {
			return current
		}
	}
}

// HasStartCode reports whether code appears ahead in the buffer without
// disturbing the read position.
func (b *BitBuffer) HasStartCode(code int) bool {
	pos := b.Tell()
	discard := b.discardReadBytes
	b.discardReadBytes = false
	found := b.FindStartCode(code)
	b.discardReadBytes = discard
	b.Seek(pos)
	return found != StartCodeNone
}

// PeekNonZero reports whether any of the next n bits, starting at the
// current position, are non-zero, without advancing. Used by the video
// decoder's slice loop to tell whether a start code (23 zero bits) follows.
func (b *BitBuffer) PeekNonZero(n int) bool {
	pos := b.Tell()
	nonZero := false
	for n > 0 {
		take := n
		if take > 32 {
			take = 32
		}
		if b.Read(take) != 0 {
			nonZero = true
			break
		}
		n -= take
	}
	b.Seek(pos)
	return nonZero
}

// ReadVLC walks table one bit at a time, starting at the virtual root
// (index 0), following each entry's Index to its pair of children until it
// lands on a leaf (Index <= 0), returning that leaf's Value. This mirrors
// plm_buffer_read_vlc's traversal over the reference decoder's flat
// {index, value} tables exactly, so those tables can be transcribed
// verbatim into Go.
func (b *BitBuffer) ReadVLC(table []VLCEntry) int16 {
	var idx int16
	for {
		entry := table[idx+int16(b.Read(1))]
		if entry.Index <= 0 {
			return entry.Value
		}
		idx = entry.Index
	}
}

// ReadVLCUint is ReadVLC with the leaf Value reinterpreted as a uint16, so
// a negative leaf (such as the DCT coefficient table's escape value -1)
// reads back as its 16-bit pattern (0xffff).
func (b *BitBuffer) ReadVLCUint(table []VLCEntry) uint16 {
	return uint16(b.ReadVLC(table))
}
