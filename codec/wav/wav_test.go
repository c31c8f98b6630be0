/*
NAME
  wav_test.go

DESCRIPTION
  wav_test.go contains testing for functionality found in wav.go.

AUTHOR
  David Sutton <davidsutton@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package wav

import (
	"encoding/binary"
	"testing"
)

func TestWavWriter(t *testing.T) {
	tests := []struct {
		name    string
		md      Metadata
		input   []byte
		wantN   int
		wantErr error
	}{
		{name: "Header Only", md: Metadata{Channels: 1, SampleRate: 48000}, input: nil, wantN: 44, wantErr: nil},
		{name: "4 bytes", md: Metadata{Channels: 1, SampleRate: 48000}, input: []byte{0, 0, 0, 0}, wantN: 48, wantErr: nil},
		{name: "No channels", md: Metadata{SampleRate: 48000}, input: []byte{0, 0, 0, 0}, wantN: 0, wantErr: errInvalidChannels},
		{name: "Invalid channels", md: Metadata{Channels: 0, SampleRate: 48000}, input: []byte{0, 0, 0, 0}, wantN: 0, wantErr: errInvalidChannels},
		{name: "No sample rate", md: Metadata{Channels: 1}, input: []byte{0, 0, 0, 0}, wantN: 0, wantErr: errInvalidRate},
		{name: "Invalid sample rate", md: Metadata{Channels: 1, SampleRate: 0}, input: []byte{0, 0, 0, 0}, wantN: 0, wantErr: errInvalidRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &WAV{Metadata: tt.md}

			gotN, err := w.Write(tt.input)
			if err != tt.wantErr {
				t.Errorf("WAV.Write() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if gotN != tt.wantN {
				t.Errorf("WAV.Write() = %v, want %v", gotN, tt.wantN)
			}
		})
	}
}

func TestWavWriterHeaderFields(t *testing.T) {
	w := &WAV{Metadata: Metadata{Channels: 2, SampleRate: 44100}}
	if _, err := w.Write([]byte{1, 2, 3, 4}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if got, want := string(w.Audio[0:4]), "RIFF"; got != want {
		t.Errorf("RIFF chunk ID = %q, want %q", got, want)
	}
	if got, want := string(w.Audio[8:12]), "WAVE"; got != want {
		t.Errorf("WAVE format = %q, want %q", got, want)
	}
	if got, want := binary.LittleEndian.Uint16(w.Audio[22:24]), uint16(2); got != want {
		t.Errorf("num_channels = %d, want %d", got, want)
	}
	if got, want := binary.LittleEndian.Uint32(w.Audio[24:28]), uint32(44100); got != want {
		t.Errorf("sample_rate = %d, want %d", got, want)
	}
	if got, want := binary.LittleEndian.Uint16(w.Audio[34:36]), uint16(16); got != want {
		t.Errorf("bits_per_sample = %d, want %d", got, want)
	}
	if got, want := binary.LittleEndian.Uint32(w.Audio[40:44]), uint32(4); got != want {
		t.Errorf("data chunk size = %d, want %d", got, want)
	}
}
