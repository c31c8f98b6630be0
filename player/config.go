/*
NAME
  config.go

DESCRIPTION
  config.go defines the tunables for a Player, in the style of
  revid/config.Config.

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

// DefaultProbeSize is the default number of bytes Player.Probe scans
// looking for video and audio packet start codes before giving up.
const DefaultProbeSize = 1 << 20

// maxSeekRetries has the same value as container/ps's cap on
// Demuxer.Seek's refine-and-rescan iterations. Player.Seek relies on that
// cap inside the demuxer and does not read this constant.
const maxSeekRetries = 32

// defaultBufferCapacity is the initial size of the video/audio elementary
// stream buffers the demuxer's packets are routed into.
const defaultBufferCapacity = 128 << 10

// defaultAudioLeadTime is how far ahead of the current video time audio is
// decoded, smoothing out interleaving jitter between the two streams.
const defaultAudioLeadTime = 0.2

// Config holds the tunables a Player exposes on its control surface.
type Config struct {
	// AudioEnabled and VideoEnabled gate whether Decode/DecodeAudio and
	// DecodeVideo do any work; both default true.
	AudioEnabled bool
	VideoEnabled bool

	// AudioStreamIndex selects which of the four audio streams (AUDIO_1
	// .. AUDIO_4, 0xC0-0xC3) is decoded.
	AudioStreamIndex int

	// Loop, if true, rewinds to the start instead of ending the stream
	// once both decoders are exhausted.
	Loop bool

	// AudioLeadTime is how far ahead of the video clock Decode keeps the
	// audio decoder.
	AudioLeadTime float64

	// ProbeSize is the byte budget Probe uses to look for stream headers.
	ProbeSize int
}

// NewConfig returns a Config with both streams enabled and the package
// defaults applied.
func NewConfig() Config {
	return Config{
		AudioEnabled:  true,
		VideoEnabled:  true,
		AudioLeadTime: defaultAudioLeadTime,
		ProbeSize:     DefaultProbeSize,
	}
}
