/*
NAME
  player_test.go

DESCRIPTION
  player_test.go contains testing for functionality found in player.go,
  config.go and wav.go.

AUTHORS
  mpeg1 contributors

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package player

import (
	"testing"

	"github.com/ausocean/mpeg1/bitbuf"
	"github.com/ausocean/mpeg1/codec/mpeg1audio"
)

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

// minimalPSStream builds a Program Stream with a PACK header, a SYSTEM
// header advertising one video and one audio stream, one video packet and
// one audio packet, each carrying an arbitrary (non-decodable) payload.
// It exercises Probe/HasHeaders/readPackets routing without requiring a
// real elementary stream payload.
func minimalPSStream() []byte {
	w := &bitWriter{}

	// PACK header: 4-bit marker 0010, 36-bit system clock ref (zero),
	// 1-bit marker, 22-bit mux_rate, 1-bit marker = 64 bits total.
	w.writeStartCode(0xBA)
	w.writeBits(0x02, 4)
	w.writeBits(0, 36)
	w.writeBits(1, 1)
	w.writeBits(0, 22)
	w.writeBits(1, 1)

	// SYSTEM header: 16-bit header_length, 24-bit rate bound, 6-bit
	// numAudioStreams, 5-bit misc, 5-bit numVideoStreams = 56 bits.
	w.writeStartCode(0xBB)
	w.writeBits(0, 16)
	w.writeBits(0, 24)
	w.writeBits(1, 6)
	w.writeBits(0, 5)
	w.writeBits(1, 5)

	writePacket := func(streamID byte, payload []byte) {
		w.writeStartCode(streamID)
		w.writeBits(uint64(len(payload)+5), 16) // length field
		w.writeBits(0, 2)                       // no P-STD info
		w.writeBits(0x02, 2)                    // PTS-only marker
		w.writeBits(0, 36)                      // PTS = 0
		for _, b := range payload {
			w.writeBits(uint64(b), 8)
		}
	}

	writePacket(0xE0, []byte{0, 0, 0, 0, 0, 0, 0, 0}) // video packet: no sequence start code present
	writePacket(0xC0, layerIIHeaderFixture())         // audio packet: a decodable Layer II header

	return w.finish()
}

// layerIIHeaderFixture builds a minimal stereo, no-CRC Layer II frame
// header (44.1 kHz / 80 kbit/s), padded to 8 bytes, mirroring
// mpeg1audio's own test fixture.
func layerIIHeaderFixture() []byte {
	w := &bitWriter{}
	w.writeBits(0x7FF, 11) // frame sync
	w.writeBits(3, 2)      // MPEG version 1
	w.writeBits(2, 2)      // Layer II
	w.writeBits(1, 1)      // protection_bit=1 -> no CRC
	w.writeBits(5, 4)      // bitrate field -> 80 kbit/s
	w.writeBits(0, 2)      // samplerate_index 0 -> 44100
	w.writeBits(0, 1)      // padding
	w.writeBits(0, 1)      // private
	w.writeBits(0, 2)      // mode stereo
	w.writeBits(0, 2)      // mode_extension
	w.writeBits(0, 4)      // copyright, original, emphasis
	data := w.finish()
	for len(data) < 8 {
		data = append(data, 0)
	}
	return data
}

func TestPlayerHasHeadersAndStreamCounts(t *testing.T) {
	buf := bitbuf.NewWithMemory(minimalPSStream(), nil)
	p := New(buf, true, NewConfig(), nil)
	defer p.Close()

	if !p.HasHeaders() {
		t.Fatal("HasHeaders() = false, want true")
	}
	if p.demuxer.NumVideoStreams() != 1 {
		t.Errorf("NumVideoStreams() = %d, want 1", p.demuxer.NumVideoStreams())
	}
	if p.demuxer.NumAudioStreams() != 1 {
		t.Errorf("NumAudioStreams() = %d, want 1", p.demuxer.NumAudioStreams())
	}
	if p.video == nil {
		t.Error("video decoder not created once a video stream was found")
	}
	if p.audio == nil {
		t.Error("audio decoder not created once an audio stream was found")
	}
}

func TestPlayerProbeFindsStreams(t *testing.T) {
	buf := bitbuf.NewWithMemory(minimalPSStream(), nil)
	p := New(buf, true, NewConfig(), nil)
	defer p.Close()

	if !p.Probe(0) {
		t.Error("Probe() = false, want true for a stream with video and audio packets")
	}
}

func TestPlayerRejectsGarbage(t *testing.T) {
	buf := bitbuf.NewWithMemory([]byte{0xde, 0xad, 0xbe, 0xef, 0, 0, 0, 0}, nil)
	p := New(buf, true, NewConfig(), nil)
	defer p.Close()

	if p.HasHeaders() {
		t.Error("HasHeaders() = true for a non-PS buffer, want false")
	}
}

func TestNewConfigDefaults(t *testing.T) {
	c := NewConfig()
	if !c.AudioEnabled || !c.VideoEnabled {
		t.Error("NewConfig() should enable both audio and video by default")
	}
	if c.AudioLeadTime != defaultAudioLeadTime {
		t.Errorf("AudioLeadTime = %v, want %v", c.AudioLeadTime, defaultAudioLeadTime)
	}
	if c.ProbeSize != DefaultProbeSize {
		t.Errorf("ProbeSize = %v, want %v", c.ProbeSize, DefaultProbeSize)
	}
}

func TestDumpWAVHeader(t *testing.T) {
	d := NewDumpWAV(44100)
	var s mpeg1audio.Samples
	s.Count = 2
	s.Interleaved[0], s.Interleaved[1] = 1.0, -1.0
	s.Interleaved[2], s.Interleaved[3] = 0.0, 0.5
	d.Write(&s, nil)

	data, err := d.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		t.Fatalf("Bytes() missing RIFF/WAVE markers: %v", data[:12])
	}
	wantPCMBytes := 2 * 2 * 2 // 2 frames * 2 channels * 2 bytes/sample
	if got := len(data) - 44; got != wantPCMBytes {
		t.Errorf("PCM payload length = %d, want %d", got, wantPCMBytes)
	}
}

func TestFloatToPCM16Clamps(t *testing.T) {
	if got := int16(floatToPCM16(2.0)); got != 32767 {
		t.Errorf("floatToPCM16(2.0) = %d, want 32767", got)
	}
	if got := int16(floatToPCM16(-2.0)); got != -32767 {
		t.Errorf("floatToPCM16(-2.0) = %d, want -32767", got)
	}
	if got := int16(floatToPCM16(0)); got != 0 {
		t.Errorf("floatToPCM16(0) = %d, want 0", got)
	}
}
