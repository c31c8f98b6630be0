/*
NAME
  audio_test.go

DESCRIPTION
  audio_test.go contains testing for functionality found in audio.go and
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

package mpeg1audio

import (
	"testing"

	"github.com/ausocean/mpeg1/bitbuf"
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

func (w *bitWriter) finish() []byte {
	if w.nbits != 0 {
		panic("bitWriter: fixture not byte aligned")
	}
	return w.bytes
}

// layerIIHeader builds a minimal stereo, no-CRC Layer II frame header at
// 44.1 kHz / 80 kbit/s (bitrate field value 5 -> bitrateIndex 4).
func layerIIHeader() []byte {
	w := &bitWriter{}
	w.writeBits(frameSync, 11)
	w.writeBits(mpeg1, 2)
	w.writeBits(layerII, 2)
	w.writeBits(1, 1) // protection_bit=1 -> no CRC
	w.writeBits(5, 4) // bitrate field -> bitrateIndex 4 (80 kbit/s)
	w.writeBits(0, 2) // samplerate_index 0 -> 44100
	w.writeBits(0, 1) // padding
	w.writeBits(0, 1) // private
	w.writeBits(modeStereo, 2)
	w.writeBits(0, 2) // mode_extension (unused outside joint stereo)
	w.writeBits(0, 4) // copyright, original, emphasis
	data := w.finish()
	for len(data) < 8 {
		data = append(data, 0)
	}
	return data
}

func TestDecodeHeader(t *testing.T) {
	d := New(bitbuf.NewWithMemory(layerIIHeader(), nil), false, nil)

	if !d.HasHeader() {
		t.Fatal("HasHeader() = false, want true")
	}
	if got, want := d.GetSampleRate(), 44100; got != want {
		t.Errorf("GetSampleRate() = %d, want %d", got, want)
	}
	if d.bound != 32 {
		t.Errorf("bound = %d, want 32 for stereo mode", d.bound)
	}
	// frame_size = 144000*80/44100 + 0 = 261; data size = 261-4 = 257.
	if got, want := d.nextFrameDataSize, 257; got != want {
		t.Errorf("nextFrameDataSize = %d, want %d", got, want)
	}
}

func TestDecodeHeaderRejectsWrongLayer(t *testing.T) {
	w := &bitWriter{}
	w.writeBits(frameSync, 11)
	w.writeBits(mpeg1, 2)
	w.writeBits(1, 2) // layer III, not supported
	w.writeBits(1, 1)
	w.writeBits(5, 4)
	w.writeBits(0, 2)
	w.writeBits(0, 1)
	w.writeBits(0, 1)
	w.writeBits(modeStereo, 2)
	w.writeBits(0, 2)
	w.writeBits(0, 4)
	data := w.finish()
	for len(data) < 8 {
		data = append(data, 0)
	}

	d := New(bitbuf.NewWithMemory(data, nil), false, nil)
	if d.HasHeader() {
		t.Error("HasHeader() = true for a Layer III frame, want false")
	}
}

func TestSamplesLeftRight(t *testing.T) {
	var s Samples
	s.Count = 2
	s.Interleaved[0], s.Interleaved[1] = 0.1, 0.2
	s.Interleaved[2], s.Interleaved[3] = 0.3, 0.4

	left := s.Left()
	right := s.Right()
	if len(left) != 2 || left[0] != 0.1 || left[1] != 0.3 {
		t.Errorf("Left() = %v, want [0.1 0.3]", left)
	}
	if len(right) != 2 || right[0] != 0.2 || right[1] != 0.4 {
		t.Errorf("Right() = %v, want [0.2 0.4]", right)
	}
}

func TestIDCT36ZeroInvariant(t *testing.T) {
	d := &Decoder{}
	d.idct36(0, 0, 0)
	for i, v := range d.v[0] {
		if v != 0 {
			t.Fatalf("idct36(zero samples)[%d] = %v, want 0", i, v)
		}
	}
}

func TestAllocationTableSBLimitBounds(t *testing.T) {
	widths, sblimit := allocationTable(32, 0)
	if sblimit <= 0 || sblimit > 32 {
		t.Fatalf("sblimit = %d, want in (0, 32]", sblimit)
	}
	if len(widths) != sblimit {
		t.Fatalf("len(widths) = %d, want %d", len(widths), sblimit)
	}
	for sb, w := range widths {
		if w <= 0 {
			t.Errorf("widths[%d] = %d, want > 0", sb, w)
		}
	}
}

// TestAllocationTableClassSelection checks allocationTable picks the ISO
// 11172-3 Table B.1 class each (bitRatePerChannel, samplerateIndex) pair
// maps to: class C for any 32 kHz frame, class B for low-bitrate 44.1/48
// kHz, class A otherwise.
func TestAllocationTableClassSelection(t *testing.T) {
	cases := []struct {
		name                string
		bitRatePerChannel   int
		samplerateIndex     int
		wantSblimit         int
		wantFirstLastWidths [2]int
	}{
		{"32kHz-low-bitrate-takes-classC", 32, 2, 30, [2]int{4, 2}},
		{"32kHz-high-bitrate-still-classC", 192, 2, 30, [2]int{4, 2}},
		{"44100Hz-low-bitrate-classB", 48, 0, 8, [2]int{4, 3}},
		{"48000Hz-low-bitrate-classB", 32, 1, 8, [2]int{4, 3}},
		{"44100Hz-high-bitrate-classA", 56, 0, 27, [2]int{4, 2}},
		{"48000Hz-high-bitrate-classA", 192, 1, 27, [2]int{4, 2}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			widths, sblimit := allocationTable(c.bitRatePerChannel, c.samplerateIndex)
			if sblimit != c.wantSblimit {
				t.Errorf("sblimit = %d, want %d", sblimit, c.wantSblimit)
			}
			if len(widths) != sblimit {
				t.Fatalf("len(widths) = %d, want %d", len(widths), sblimit)
			}
			if widths[0] != c.wantFirstLastWidths[0] {
				t.Errorf("widths[0] = %d, want %d", widths[0], c.wantFirstLastWidths[0])
			}
			if got := widths[len(widths)-1]; got != c.wantFirstLastWidths[1] {
				t.Errorf("widths[last] = %d, want %d", got, c.wantFirstLastWidths[1])
			}
		})
	}
}

// TestNewSynthesisWindowShape checks the 1024-entry window is the 512-tap
// prototype repeated twice (not, e.g., a flat or unmodulated taper): its
// second half must equal its first, and its peak must sit in the lowpass
// main lobe rather than at the taper's unmodulated edges.
func TestNewSynthesisWindowShape(t *testing.T) {
	d := newSynthesisWindow()
	if len(d) != 1024 {
		t.Fatalf("len(newSynthesisWindow()) = %d, want 1024", len(d))
	}
	for i := 0; i < 512; i++ {
		if d[i] != d[i+512] {
			t.Fatalf("d[%d] = %v, d[%d] = %v, want mirrored halves equal", i, d[i], i+512, d[i+512])
		}
	}
	peak := 0
	for i, v := range d[:512] {
		if v > d[peak] {
			peak = i
		}
	}
	if peak < 200 || peak > 312 {
		t.Errorf("peak index = %d, want near the 512-tap prototype's center (~256)", peak)
	}
}
