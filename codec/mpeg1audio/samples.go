/*
NAME
  samples.go

DESCRIPTION
  samples.go defines the decoded audio sample buffer type, grounded on
  plm_samples_t of the reference plm_audio implementation.

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

// Samples holds one decoded audio frame: 1152 interleaved stereo sample
// pairs in [-1, 1]. A Samples returned by Decoder.Decode aliases the
// Decoder's internal buffer and is only valid until the next Decode call.
type Samples struct {
	Time        float64
	Count       int
	Interleaved [samplesPerFrame * 2]float32
}

// Left returns a freshly allocated copy of the left channel.
func (s *Samples) Left() []float32 {
	out := make([]float32, s.Count)
	for i := range out {
		out[i] = s.Interleaved[i<<1]
	}
	return out
}

// Right returns a freshly allocated copy of the right channel.
func (s *Samples) Right() []float32 {
	out := make([]float32, s.Count)
	for i := range out {
		out[i] = s.Interleaved[(i<<1)+1]
	}
	return out
}
