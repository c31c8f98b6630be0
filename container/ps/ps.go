/*
DESCRIPTION
  ps.go implements a demuxer for MPEG-1 Program Stream, grounded directly
  on the plm_demux_t functions of the reference pl_mpeg implementation,
  restyled on github.com/ausocean/av's container/mts/pes packet handling
  and github.com/pkg/errors wrapping conventions.

AUTHORS
  mpeg1 contributors

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package ps demuxes an MPEG-1 Program Stream into its constituent video,
// audio and private-stream packets.
package ps

import (
	"math"

	"github.com/ausocean/mpeg1/bitbuf"
	"github.com/ausocean/mpeg1/internal/logging"
)

// Start-code / stream-id constants, the byte that follows 00 00 01.
const (
	StartPack    = 0xBA
	StartEnd     = 0xB9
	StartSystem  = 0xBB
	PacketVideo1 = 0xE0
	PacketAudio1 = 0xC0
	PacketAudio4 = 0xC3
	PacketPrivate = 0xBD
)

// InvalidTS is the sentinel presentation timestamp for "no timestamp".
const InvalidTS = -math.MaxFloat64

// tsFrequency is the MPEG system clock frequency (Hz) timestamps are
// expressed in units of.
const tsFrequency = 90000.0

// Packet is a single demultiplexed PES-like payload: a type (one of the
// Packet* stream-id constants), its PTS in seconds (or InvalidTS), and the
// payload bytes. Data aliases the demuxer's internal buffer and is only
// valid until the next Decode call.
type Packet struct {
	Type   int
	PTS    float64
	Data   []byte
}

// Demuxer parses PACK/SYSTEM headers once, then yields Packets on demand
// from an underlying bitbuf.BitBuffer.
type Demuxer struct {
	buf *bitbuf.BitBuffer
	log logging.Logger

	closeBufWhenDone bool

	systemClockRef float64
	lastFileSize   int
	lastDecodedPTS float64
	startTime      float64
	duration       float64

	startCode       int
	hasPackHeader   bool
	hasSystemHeader bool
	hasHeaders      bool

	numAudioStreams int
	numVideoStreams int

	currentPacket Packet
	pendingLength int // next_packet.length before the body is fetched
	pendingType   int
	pendingPTS    float64
}

// New wraps buf in a Demuxer. If closeBufWhenDone is true, Close also
// closes buf.
func New(buf *bitbuf.BitBuffer, closeBufWhenDone bool, log logging.Logger) *Demuxer {
	if log == nil {
		log = logging.NoLog{}
	}
	d := &Demuxer{
		buf:              buf,
		log:              log,
		closeBufWhenDone: closeBufWhenDone,
		startTime:        InvalidTS,
		duration:         InvalidTS,
		startCode:        -1,
	}
	d.HasHeaders()
	return d
}

// Close closes the underlying buffer if this Demuxer owns it.
func (d *Demuxer) Close() error {
	if d.closeBufWhenDone {
		return d.buf.Close()
	}
	return nil
}

// HasHeaders parses the PACK and SYSTEM headers if not already done,
// returning true once both are present.
func (d *Demuxer) HasHeaders() bool {
	if d.hasHeaders {
		return true
	}

	if !d.hasPackHeader {
		if d.startCode != StartPack && d.buf.FindStartCode(StartPack) == bitbuf.StartCodeNone {
			return false
		}
		d.startCode = StartPack
		if !d.buf.Has(64) {
			return false
		}
		d.startCode = -1

		if d.buf.Read(4) != 0x02 {
			return false
		}
		d.systemClockRef = d.decodeTime()
		d.buf.Skip(1)
		d.buf.Skip(22) // mux_rate * 50
		d.buf.Skip(1)
		d.hasPackHeader = true
	}

	if !d.hasSystemHeader {
		if d.startCode != StartSystem && d.buf.FindStartCode(StartSystem) == bitbuf.StartCodeNone {
			return false
		}
		d.startCode = StartSystem
		if !d.buf.Has(56) {
			return false
		}
		d.startCode = -1

		d.buf.Skip(16) // header_length
		d.buf.Skip(24) // rate bound
		d.numAudioStreams = int(d.buf.Read(6))
		d.buf.Skip(5) // misc flags
		d.numVideoStreams = int(d.buf.Read(5))
		d.hasSystemHeader = true
	}

	d.hasHeaders = true
	return true
}

// Probe scans up to limitBytes of start codes from the current position to
// discover which video/audio streams are present, without consuming the
// buffer permanently. It returns true if at least one stream was found.
func (d *Demuxer) Probe(limitBytes int) bool {
	previousPos := d.buf.Tell()

	videoStream := false
	var audioStreams [4]bool
	for {
		d.startCode = d.buf.NextStartCode()
		switch {
		case d.startCode == PacketVideo1:
			videoStream = true
		case d.startCode >= PacketAudio1 && d.startCode <= PacketAudio4:
			audioStreams[d.startCode-PacketAudio1] = true
		}
		if d.startCode == bitbuf.StartCodeNone || d.buf.Tell()-previousPos >= limitBytes*8 {
			break
		}
	}

	if videoStream {
		d.numVideoStreams = 1
	} else {
		d.numVideoStreams = 0
	}
	d.numAudioStreams = 0
	for _, present := range audioStreams {
		if present {
			d.numAudioStreams++
		}
	}

	d.seekBuffer(previousPos)
	return d.numVideoStreams > 0 || d.numAudioStreams > 0
}

// NumVideoStreams returns the number of video streams found in the headers
// (0 until HasHeaders succeeds).
func (d *Demuxer) NumVideoStreams() int {
	if !d.HasHeaders() {
		return 0
	}
	return d.numVideoStreams
}

// NumAudioStreams returns the number of audio streams found in the headers.
func (d *Demuxer) NumAudioStreams() int {
	if !d.HasHeaders() {
		return 0
	}
	return d.numAudioStreams
}

// Rewind resets the demuxer and its buffer to the start of the stream.
func (d *Demuxer) Rewind() {
	d.buf.Rewind()
	d.currentPacket.Data = nil
	d.pendingLength = 0
	d.startCode = -1
}

// HasEnded reports whether the underlying buffer has signalled end of
// stream.
func (d *Demuxer) HasEnded() bool {
	return d.buf.HasEnded()
}

// seekBuffer repositions the buffer and clears any in-flight packet state,
// mirroring plm_demux_buffer_seek.
func (d *Demuxer) seekBuffer(pos int) {
	d.buf.Seek(pos)
	d.currentPacket.Data = nil
	d.pendingLength = 0
	d.startCode = -1
}

// GetStartTime returns the PTS, in seconds, of the first packet of the
// given type, scanning from the beginning if not already known.
func (d *Demuxer) GetStartTime(typ int) float64 {
	if d.startTime != InvalidTS {
		return d.startTime
	}

	previousPos := d.buf.Tell()
	previousStartCode := d.startCode

	d.Rewind()
	for {
		pkt := d.Decode()
		if pkt == nil {
			break
		}
		if pkt.Type == typ {
			d.startTime = pkt.PTS
		}
		if d.startTime != InvalidTS {
			break
		}
	}

	d.seekBuffer(previousPos)
	d.startCode = previousStartCode
	return d.startTime
}

// GetDuration returns the stream duration, in seconds, for the given
// packet type, scanning backward from the end of the stream in
// exponentially growing windows (64 KiB, 128 KiB, ... up to 4 MiB) until a
// timestamped packet of that type is found.
func (d *Demuxer) GetDuration(typ int) float64 {
	fileSize := d.buf.Size()

	if d.duration != InvalidTS && d.lastFileSize == fileSize {
		return d.duration
	}

	previousPos := d.buf.Tell()
	previousStartCode := d.startCode

	const startRange = 64 * 1024
	const maxRange = 4096 * 1024
	for rng := startRange; rng <= maxRange; rng *= 2 {
		seekPos := fileSize - rng
		if seekPos < 0 {
			seekPos = 0
			rng = maxRange // bail after this round
		}
		d.seekBuffer(seekPos)
		d.currentPacket.Data = nil

		lastPTS := InvalidTS
		for {
			pkt := d.Decode()
			if pkt == nil {
				break
			}
			if pkt.PTS != InvalidTS && pkt.Type == typ {
				lastPTS = pkt.PTS
			}
		}
		if lastPTS != InvalidTS {
			d.duration = lastPTS - d.GetStartTime(typ)
			break
		}
	}

	d.seekBuffer(previousPos)
	d.startCode = previousStartCode
	d.lastFileSize = fileSize
	return d.duration
}

// maxSeekRetries bounds the byte-rate-estimation retry loop in Seek; 32
// iterations is generous for any realistically encoded stream.
const maxSeekRetries = 32

// Seek estimates a byte position for seekTime using the stream's average
// byte rate, iteratively refining the estimate, and returns the packet of
// the given type at (or just before) that time. If forceIntra is true, it
// additionally requires the packet to start with an intra-coded picture.
// Returns nil if no suitable packet is found within maxSeekRetries.
func (d *Demuxer) Seek(seekTime float64, typ int, forceIntra bool) *Packet {
	if !d.HasHeaders() {
		return nil
	}

	duration := d.GetDuration(typ)
	fileSize := d.buf.Size()
	byterate := float64(fileSize) / duration

	curTime := d.lastDecodedPTS
	scanSpan := 1.0

	if seekTime > duration {
		seekTime = duration
	} else if seekTime < 0 {
		seekTime = 0
	}
	seekTime += d.startTime

	for retry := 0; retry < maxSeekRetries; retry++ {
		foundPacketWithPTS := false
		foundPacketInRange := false
		lastValidPacketStart := -1
		firstPacketTime := InvalidTS

		curPos := d.buf.Tell()

		offset := (seekTime - curTime - scanSpan) * byterate
		seekPos := curPos + int(offset)
		if seekPos < 0 {
			seekPos = 0
		} else if seekPos > fileSize-256 {
			seekPos = fileSize - 256
		}

		d.seekBuffer(seekPos)

		for d.buf.FindStartCode(typ) != bitbuf.StartCodeNone {
			packetStart := d.buf.Tell()
			pkt := d.decodePacket(typ)

			if pkt == nil || pkt.PTS == InvalidTS {
				continue
			}

			if pkt.PTS > seekTime || pkt.PTS < seekTime-scanSpan {
				foundPacketWithPTS = true
				byterate = float64(seekPos-curPos) / (pkt.PTS - curTime)
				curTime = pkt.PTS
				break
			}

			if !foundPacketInRange {
				foundPacketInRange = true
				firstPacketTime = pkt.PTS
			}

			if forceIntra {
				if hasIntraPicture(pkt.Data) {
					lastValidPacketStart = packetStart
				}
			} else {
				lastValidPacketStart = packetStart
			}
		}

		if lastValidPacketStart != -1 {
			d.seekBuffer(lastValidPacketStart)
			return d.decodePacket(typ)
		} else if foundPacketInRange {
			scanSpan *= 2
			seekTime = firstPacketTime
		} else if !foundPacketWithPTS {
			byterate = float64(seekPos-curPos) / (duration - curTime)
			curTime = duration
		}
	}

	return nil
}

// hasIntraPicture scans a packet's payload for a START_PICTURE code
// (00 00 01 00) followed by picture_type bits indicating an I-frame
// (bits 11..13 of the picture header, i.e. (data[i+5] & 0x38) == 0x08).
func hasIntraPicture(data []byte) bool {
	for i := 0; i+5 < len(data); i++ {
		if data[i] == 0x00 && data[i+1] == 0x00 && data[i+2] == 0x01 && data[i+3] == 0x00 {
			return (data[i+5] & 0x38) == 0x08
		}
	}
	return false
}

// Decode returns the next packet in the stream, or nil at end of stream or
// on a transient short read. A prior packet's unread body bytes are
// skipped first.
func (d *Demuxer) Decode() *Packet {
	if !d.HasHeaders() {
		return nil
	}

	if d.currentPacket.Data != nil {
		bitsTillNext := len(d.currentPacket.Data) * 8
		if !d.buf.Has(bitsTillNext) {
			return nil
		}
		d.buf.Skip(bitsTillNext)
		d.currentPacket.Data = nil
	}

	if d.pendingLength != 0 {
		return d.getPacket()
	}

	if d.startCode != -1 {
		return d.decodePacket(d.startCode)
	}

	for {
		d.startCode = d.buf.NextStartCode()
		if d.startCode == PacketVideo1 ||
			d.startCode == PacketPrivate ||
			(d.startCode >= PacketAudio1 && d.startCode <= PacketAudio4) {
			return d.decodePacket(d.startCode)
		}
		if d.startCode == bitbuf.StartCodeNone {
			return nil
		}
	}
}

// decodeTime reads a 33-bit MPEG system clock timestamp in the
// [3 bits][marker][15 bits][marker][15 bits][marker] layout and scales it
// to seconds.
func (d *Demuxer) decodeTime() float64 {
	clock := uint64(d.buf.Read(3)) << 30
	d.buf.Skip(1)
	clock |= uint64(d.buf.Read(15)) << 15
	d.buf.Skip(1)
	clock |= uint64(d.buf.Read(15))
	d.buf.Skip(1)
	return float64(clock) / tsFrequency
}

// decodePacket reads a PES packet header for the given stream type,
// recording its length and PTS into the pending-packet fields, then
// fetches the body via getPacket.
func (d *Demuxer) decodePacket(typ int) *Packet {
	// The 16-bit length field counts every byte after itself, so the whole
	// packet is resident once 2+length bytes are.
	if !d.buf.Has(16) {
		return nil
	}
	all, pos := d.buf.Bytes(), d.buf.Pos()
	if !d.buf.Has((2 + (int(all[pos])<<8 | int(all[pos+1]))) << 3) {
		return nil
	}

	d.startCode = -1
	d.pendingType = typ
	length := int(d.buf.Read(16))
	length -= d.buf.SkipBytes(0xff) // stuffing

	if d.buf.Read(2) == 0x01 {
		d.buf.Skip(16) // P-STD buffer info
		length -= 2
	}

	switch d.buf.Read(2) {
	case 0x03:
		d.pendingPTS = d.decodeTime()
		d.lastDecodedPTS = d.pendingPTS
		d.buf.Skip(40) // DTS
		length -= 10
	case 0x02:
		d.pendingPTS = d.decodeTime()
		d.lastDecodedPTS = d.pendingPTS
		length -= 5
	case 0x00:
		d.pendingPTS = InvalidTS
		d.buf.Skip(4)
		length -= 1
	default:
		return nil // invalid marker
	}

	d.pendingLength = length
	return d.getPacket()
}

// getPacket materializes the pending packet once its full body is
// available in the buffer.
func (d *Demuxer) getPacket() *Packet {
	if !d.buf.Has(d.pendingLength << 3) {
		return nil
	}

	start := d.buf.Pos()
	all := d.buf.Bytes()
	d.currentPacket = Packet{
		Type: d.pendingType,
		PTS:  d.pendingPTS,
		Data: all[start : start+d.pendingLength],
	}
	d.pendingLength = 0
	return &d.currentPacket
}
