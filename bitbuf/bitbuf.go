/*
DESCRIPTION
  bitbuf.go provides BitBuffer, a bit-addressed buffer over a byte source
  that can be a fixed memory block, a growable append buffer, a ring
  buffer backed by periodic loads that drops bytes already read, or a file
  read on demand. It is the
  foundation every other package in this module reads its bitstream through.

AUTHORS
  mpeg1 contributors

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package bitbuf implements a bit-level reader/writer over byte sources,
// grounded on the plm_buffer_t functions of the reference pl_mpeg
// implementation, restyled in the idiom of github.com/ausocean/av's
// codec/h264/h264dec/bits package.
package bitbuf

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/ausocean/mpeg1/internal/logging"
)

// Mode selects how a BitBuffer manages its backing bytes.
type Mode int

const (
	// FileMode reads bytes lazily from an *os.File as they're needed.
	FileMode Mode = iota
	// FixedMemMode wraps an existing, unchanging byte slice.
	FixedMemMode
	// RingMode is kept fed with fresh bytes by the caller (or a
	// LoadCallback), discarding what's been read before each load; its
	// capacity doubles whenever a Write would overflow it.
	RingMode
	// AppendMode grows without discarding, for buffers built up with Write.
	AppendMode
)

// defaultLoadSize is how many bytes FileMode reads per load, and the
// capacity a buffer starts from when none is given.
const defaultLoadSize = 64 * 1024

// LoadCallback is invoked when a BitBuffer runs low on bytes and needs more
// to satisfy a pending Has/Read/start-code scan. It should Write more bytes
// into b, or mark the end of stream with SignalEnd if none remain.
type LoadCallback func(b *BitBuffer)

// VLCEntry is one slot of a flat binary VLC decision table, in the layout
// used throughout the reference MPEG-1 decoder's generated tables: each
// node occupies two consecutive slots (the children reached by appending a
// 0 or a 1 bit), and a non-leaf entry's Index names the table offset of
// its own two children. A leaf entry has Index <= 0 and carries the
// decoded Value. The traversal state starts at the virtual root, slots 0
// and 1.
type VLCEntry struct {
	Index int16
	Value int16
}

// BitBuffer is a bit-addressed window over a byte slice, optionally backed
// by a file or a LoadCallback that tops it up on demand.
type BitBuffer struct {
	mode Mode
	log  logging.Logger

	bytes  []byte
	length int // number of valid bytes currently in bytes
	bitPos int // absolute bit position into bytes[0:length]

	totalSize        int // total stream size if known, 0 if unknown (e.g. growing file)
	discardedBits    int // bits permanently dropped from the front by compaction
	hasEnded         bool
	discardReadBytes bool

	loadCallback LoadCallback
	loading      bool // re-entrancy guard for loadCallback

	file          *os.File
	closeWhenDone bool
}

// NewWithMemory returns a BitBuffer wrapping an existing, fully-populated
// byte slice. The slice is used directly, not copied.
func NewWithMemory(b []byte, log logging.Logger) *BitBuffer {
	if log == nil {
		log = logging.NoLog{}
	}
	return &BitBuffer{
		mode:      FixedMemMode,
		log:       log,
		bytes:     b,
		length:    len(b),
		totalSize: len(b),
	}
}

// NewWithCapacity returns an empty ring-mode BitBuffer of the given
// capacity, intended to be kept fed via Write or a LoadCallback.
func NewWithCapacity(capacity int, log logging.Logger) *BitBuffer {
	if log == nil {
		log = logging.NoLog{}
	}
	return &BitBuffer{
		mode:             RingMode,
		log:              log,
		bytes:            make([]byte, 0, capacity),
		discardReadBytes: true,
	}
}

// NewForAppending returns an empty append-mode BitBuffer that grows to fit
// whatever is written to it and never discards read bytes, so Seek/Rewind
// work over the whole history.
func NewForAppending(initialCapacity int, log logging.Logger) *BitBuffer {
	if log == nil {
		log = logging.NoLog{}
	}
	if initialCapacity <= 0 {
		initialCapacity = defaultLoadSize
	}
	return &BitBuffer{
		mode:  AppendMode,
		log:   log,
		bytes: make([]byte, 0, initialCapacity),
	}
}

// NewWithFile returns a FileMode BitBuffer that reads from f on demand. If
// closeWhenDone is true, Close closes f.
func NewWithFile(f *os.File, closeWhenDone bool, log logging.Logger) *BitBuffer {
	if log == nil {
		log = logging.NoLog{}
	}
	b := &BitBuffer{
		mode:             FileMode,
		log:              log,
		bytes:            make([]byte, 0, defaultLoadSize),
		discardReadBytes: true,
		file:             f,
		closeWhenDone:    closeWhenDone,
	}
	if fi, err := f.Stat(); err == nil && fi.Size() > 0 {
		b.totalSize = int(fi.Size())
	}
	b.loadCallback = (*BitBuffer).loadFromFile
	return b
}

// NewWithFilename opens path and returns a FileMode BitBuffer over it. The
// file is closed by Close.
func NewWithFilename(path string, log logging.Logger) (*BitBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "bitbuf: could not open %s", path)
	}
	return NewWithFile(f, true, log), nil
}

// SetLoadCallback installs cb, replacing any load behaviour implied by the
// constructor (e.g. the file loader installed by NewWithFile).
func (b *BitBuffer) SetLoadCallback(cb LoadCallback) {
	b.loadCallback = cb
}

// Close releases any owned resources (the file, for FileMode buffers
// constructed with closeWhenDone).
func (b *BitBuffer) Close() error {
	if b.file != nil && b.closeWhenDone {
		err := b.file.Close()
		b.file = nil
		return err
	}
	return nil
}

// Size returns the total stream size in bytes if known, or 0 if the source
// is open-ended (a growing file or an append buffer with unknown end).
func (b *BitBuffer) Size() int {
	return b.totalSize
}

// Tell returns the current read position in bits from the start of the
// logical stream (accounting for any bytes already discarded).
func (b *BitBuffer) Tell() int {
	return b.discardedBits + b.bitPos
}

// HasEnded reports whether the source has signalled no more bytes will
// ever arrive (SignalEnd was called, or a file read hit io.EOF).
func (b *BitBuffer) HasEnded() bool {
	return b.hasEnded
}

// SignalEnd marks the buffer as exhausted: no further load attempts will
// produce more bytes.
func (b *BitBuffer) SignalEnd() {
	b.hasEnded = true
}

// Write appends p to the buffer, growing it as needed. It returns the
// number of bytes written and a non-nil error only for FixedMemMode, which
// cannot grow.
func (b *BitBuffer) Write(p []byte) (int, error) {
	if b.mode == FixedMemMode {
		return 0, errors.New("bitbuf: cannot write to a fixed-memory buffer")
	}
	if len(p) == 0 {
		return 0, nil
	}
	b.expand(len(p))
	n := copy(b.bytes[b.length:cap(b.bytes)], p)
	b.bytes = b.bytes[:b.length+n]
	b.length += n
	return len(p), nil
}

// expand grows the backing array's capacity, doubling as needed, so the
// next n bytes of Write won't repeatedly reallocate.
func (b *BitBuffer) expand(n int) {
	need := b.length + n
	if cap(b.bytes) >= need {
		return
	}
	newCap := cap(b.bytes)
	if newCap == 0 {
		newCap = defaultLoadSize
	}
	for newCap < need {
		newCap *= 2
	}
	grown := make([]byte, b.length, newCap)
	copy(grown, b.bytes[:b.length])
	b.bytes = grown
}

// discardConsumedBytes drops whole bytes already fully read from the front
// of the buffer in Ring/File mode, shifting bitPos back accordingly, to
// bound memory use on a long-running or looping source.
func (b *BitBuffer) discardConsumedBytes() {
	if !b.discardReadBytes {
		return
	}
	consumedBytes := b.bitPos / 8
	if consumedBytes == 0 {
		return
	}
	b.discardedBits += consumedBytes * 8
	copy(b.bytes, b.bytes[consumedBytes:b.length])
	b.length -= consumedBytes
	b.bytes = b.bytes[:b.length]
	b.bitPos -= consumedBytes * 8
}

// load triggers the LoadCallback (if any) to top up the buffer, guarding
// against re-entrant calls from within the callback itself.
func (b *BitBuffer) load() {
	if b.loadCallback == nil || b.loading || b.hasEnded {
		return
	}
	b.loading = true
	b.discardConsumedBytes()
	b.loadCallback(b)
	b.loading = false
}

// loadFromFile is the default LoadCallback installed by NewWithFile/
// NewWithFilename: it reads the next chunk from the underlying *os.File.
func (b *BitBuffer) loadFromFile() {
	buf := make([]byte, defaultLoadSize)
	n, err := b.file.Read(buf)
	if n > 0 {
		b.Write(buf[:n])
	}
	if err != nil {
		if err != io.EOF {
			b.log.Log(logging.Warning, "bitbuf: file read error", "error", err)
		}
		b.hasEnded = true
	}
}

// Has reports whether at least nBits are available to read without
// blocking further than one LoadCallback invocation.
func (b *BitBuffer) Has(nBits int) bool {
	if (b.length*8 - b.bitPos) >= nBits {
		return true
	}
	if b.hasEnded {
		return false
	}
	b.load()
	return (b.length*8 - b.bitPos) >= nBits
}

// Remaining returns the number of bits left to read in the buffer without
// attempting a load.
func (b *BitBuffer) Remaining() int {
	return b.length*8 - b.bitPos
}

// Read reads nBits (1..32) as an unsigned value, MSB first, advancing the
// read position. It returns 0 if the bits aren't available.
func (b *BitBuffer) Read(nBits int) uint32 {
	if nBits <= 0 || nBits > 32 {
		panic("bitbuf: Read: nBits out of range")
	}
	if !b.Has(nBits) {
		b.log.Log(logging.Warning, "bitbuf: short read", "wanted", nBits, "have", b.Remaining())
		return 0
	}
	var v uint32
	remaining := nBits
	for remaining > 0 {
		byteIndex := b.bitPos >> 3
		bitOffset := b.bitPos & 7
		bitsLeftInByte := 8 - bitOffset
		take := bitsLeftInByte
		if take > remaining {
			take = remaining
		}
		shift := bitsLeftInByte - take
		mask := byte((1 << uint(take)) - 1)
		bits := (b.bytes[byteIndex] >> uint(shift)) & mask
		v = (v << uint(take)) | uint32(bits)
		b.bitPos += take
		remaining -= take
	}
	return v
}

// ReadSigned reads nBits as read by Read and maps the result v to a signed
// value: with the top bit clear v is returned unchanged, with the top bit
// set it is returned as v - 2^nBits + 1 (so 5-bit 0b11100 reads as -3).
// This is not two's-complement sign extension.
func (b *BitBuffer) ReadSigned(nBits int) int32 {
	v := b.Read(nBits)
	if v < (1 << uint(nBits-1)) {
		return int32(v)
	}
	return int32(v) - (1 << uint(nBits)) + 1
}

// Align skips forward to the next byte boundary, discarding any partial
// byte of padding bits.
func (b *BitBuffer) Align() {
	b.bitPos = (b.bitPos + 7) &^ 7
}

// Skip advances nBits without decoding them.
func (b *BitBuffer) Skip(nBits int) {
	if !b.Has(nBits) {
		b.bitPos = b.length * 8
		return
	}
	b.bitPos += nBits
}

// SkipBytes advances, byte-aligned, past consecutive bytes equal to v,
// returning the count skipped. Used to eat stuffing bytes (0xFF in system
// headers, 0x00 padding between packs).
func (b *BitBuffer) SkipBytes(v byte) int {
	b.Align()
	n := 0
	for b.Has(8) {
		byteIndex := b.bitPos >> 3
		if b.bytes[byteIndex] != v {
			break
		}
		b.bitPos += 8
		n++
	}
	return n
}

// Seek moves the read position to the given absolute bit offset from the
// start of the logical stream. It fails silently (clamping) if pos predates
// bytes already discarded by Ring/File mode compaction.
func (b *BitBuffer) Seek(pos int) {
	rel := pos - b.discardedBits
	if rel < 0 {
		rel = 0
	}
	b.bitPos = rel
}

// Rewind resets the read position to the start of the buffer. For Ring/File
// mode buffers that have discarded bytes, this only rewinds as far as the
// oldest byte still held.
func (b *BitBuffer) Rewind() {
	b.bitPos = 0
}

// Pos returns the current read position as a byte offset into the slice
// returned by Bytes (i.e. relative to whatever bytes are currently
// resident, not the logical stream start once bytes have been discarded).
func (b *BitBuffer) Pos() int {
	return b.bitPos >> 3
}

// Bytes returns the valid, unread-and-read bytes currently resident in the
// buffer (length bytes from the backing array), primarily for tests and for
// Demuxer's byte-rate estimation which needs to see raw pack bytes.
func (b *BitBuffer) Bytes() []byte {
	return b.bytes[:b.length]
}
