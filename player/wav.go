/*
NAME
  wav.go

DESCRIPTION
  wav.go adapts codec/wav's RIFF/WAVE header writer into a helper that
  accumulates a Player's decoded audio into a playable WAV byte stream.

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
	"encoding/binary"
	"math"

	"github.com/ausocean/mpeg1/codec/mpeg1audio"
	"github.com/ausocean/mpeg1/codec/wav"
)

// DumpWAV accumulates a Player's decoded audio samples and renders them
// to a 16-bit PCM WAV byte stream on Bytes.
type DumpWAV struct {
	sampleRate int
	pcm        []byte
}

// NewDumpWAV returns a DumpWAV for a stream at the given sample rate.
// Use SetAudioDecodeCallback(d.Write, nil) on a Player to feed it.
func NewDumpWAV(sampleRate int) *DumpWAV {
	return &DumpWAV{sampleRate: sampleRate}
}

// Write implements AudioDecodeFunc: it appends samples' interleaved
// stereo pairs to the accumulated PCM buffer, clamping and converting
// each float32 in [-1, 1] to a signed 16-bit little-endian sample.
func (d *DumpWAV) Write(samples *mpeg1audio.Samples, user interface{}) {
	buf := make([]byte, 4)
	for i := 0; i < samples.Count; i++ {
		for ch := 0; ch < 2; ch++ {
			v := samples.Interleaved[(i<<1)+ch]
			binary.LittleEndian.PutUint16(buf[:2], floatToPCM16(v))
			d.pcm = append(d.pcm, buf[0], buf[1])
		}
	}
}

// floatToPCM16 clamps v to [-1, 1] and converts it to a signed 16-bit PCM
// sample, stored in the low 16 bits of the returned value.
func floatToPCM16(v float32) uint16 {
	f := float64(v)
	if f > 1 {
		f = 1
	} else if f < -1 {
		f = -1
	}
	return uint16(int16(math.Round(f * 32767)))
}

// Bytes renders the accumulated PCM data as a complete 16-bit stereo WAV
// file.
func (d *DumpWAV) Bytes() ([]byte, error) {
	w := &wav.WAV{
		Metadata: wav.Metadata{
			Channels:   2,
			SampleRate: d.sampleRate,
		},
	}
	if _, err := w.Write(d.pcm); err != nil {
		return nil, err
	}
	return w.Audio, nil
}

// Reset discards any accumulated PCM data.
func (d *DumpWAV) Reset() { d.pcm = d.pcm[:0] }
