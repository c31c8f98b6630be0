/*
NAME
  wav.go

DESCRIPTION
  wav.go writes a RIFF/WAVE header in front of raw 16-bit PCM data.
  player.DumpWAV uses it to render a Player's decoded audio for offline
  inspection; trimmed to just that path rather than carrying a general
  multi-format WAV writer.

AUTHOR
  David Sutton <davidsutton@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package wav writes 16-bit PCM audio to the RIFF/WAVE container format.
package wav

import (
	"encoding/binary"
	"fmt"
)

// headerSize is the size, in bytes, of a canonical RIFF/WAVE/fmt/data
// header with no extension chunks.
const headerSize = 44

// PCMFormat is the WAVE audio_format value for linear PCM.
const PCMFormat = 1

var (
	errInvalidRate     = fmt.Errorf("invalid or no sample rate defined")
	errInvalidChannels = fmt.Errorf("invalid or no number of channels defined")
)

// Metadata describes the 16-bit PCM stream a WAV header is written for.
type Metadata struct {
	Channels   int
	SampleRate int
}

// WAV accumulates a header-prefixed 16-bit PCM audio byte stream.
type WAV struct {
	Metadata Metadata
	Audio    []byte
}

// bitDepth is fixed: DumpWAV only ever produces 16-bit PCM samples.
const bitDepth = 16

// Write encodes a RIFF/WAVE header for p (16-bit PCM samples) into w.Audio,
// followed by p itself.
func (w *WAV) Write(p []byte) (n int, err error) {
	if w.Metadata.Channels == 0 {
		return 0, errInvalidChannels
	}
	if w.Metadata.SampleRate == 0 {
		return 0, errInvalidRate
	}

	header := make([]byte, headerSize)
	copy(header[0:4], []byte("RIFF"))

	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, uint32(len(p)+headerSize))
	copy(header[4:8], buf)

	copy(header[8:12], []byte("WAVE"))
	copy(header[12:16], []byte("fmt "))

	binary.LittleEndian.PutUint32(buf, 16) // fmt chunk size
	copy(header[16:20], buf)

	binary.LittleEndian.PutUint16(buf[0:2], PCMFormat)
	copy(header[20:22], buf[0:2])

	binary.LittleEndian.PutUint16(buf[0:2], uint16(w.Metadata.Channels))
	copy(header[22:24], buf[0:2])

	binary.LittleEndian.PutUint32(buf[0:4], uint32(w.Metadata.SampleRate))
	copy(header[24:28], buf[0:4])

	byteRate := uint32(w.Metadata.SampleRate * bitDepth * w.Metadata.Channels / 8)
	binary.LittleEndian.PutUint32(buf[0:4], byteRate)
	copy(header[28:32], buf[0:4])

	blockAlign := uint16(bitDepth * w.Metadata.Channels / 8)
	binary.LittleEndian.PutUint16(buf[0:2], blockAlign)
	copy(header[32:34], buf[0:2])

	binary.LittleEndian.PutUint16(buf[0:2], bitDepth)
	copy(header[34:36], buf[0:2])

	copy(header[36:40], []byte("data"))
	binary.LittleEndian.PutUint32(buf[0:4], uint32(len(p)))
	copy(header[40:44], buf[0:4])

	w.Audio = append(header, p...)
	return len(p) + headerSize, nil
}
