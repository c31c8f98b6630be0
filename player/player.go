/*
NAME
  player.go

DESCRIPTION
  player.go implements Player, which wraps a Demuxer and the video/audio
  decoders into the single synchronized playback surface described by
  plm_t in the reference pl_mpeg implementation.

AUTHORS
  mpeg1 contributors

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package player ties the PS demuxer and the video/audio elementary stream
// decoders together into a single time-synchronized playback surface.
package player

import (
	"github.com/ausocean/mpeg1/bitbuf"
	"github.com/ausocean/mpeg1/codec/mpeg1audio"
	"github.com/ausocean/mpeg1/codec/mpeg1video"
	"github.com/ausocean/mpeg1/container/ps"
	"github.com/ausocean/mpeg1/internal/logging"
)

// VideoDecodeFunc is invoked by Decode/DecodeVideo for each video frame
// successfully decoded.
type VideoDecodeFunc func(frame *mpeg1video.Frame, user interface{})

// AudioDecodeFunc is invoked by Decode/DecodeAudio for each audio sample
// frame successfully decoded.
type AudioDecodeFunc func(samples *mpeg1audio.Samples, user interface{})

// Player demultiplexes an MPEG-1 Program Stream and decodes its video and
// audio elementary streams in lockstep, in presentation-time order.
type Player struct {
	buf              *bitbuf.BitBuffer
	closeBufWhenDone bool
	log              logging.Logger
	config           Config

	demuxer  *ps.Demuxer
	videoBuf *bitbuf.BitBuffer
	audioBuf *bitbuf.BitBuffer
	video    *mpeg1video.Decoder
	audio    *mpeg1audio.Decoder

	time     float64
	hasEnded bool

	videoDecodeCB     VideoDecodeFunc
	videoDecodeCBUser interface{}
	audioDecodeCB     AudioDecodeFunc
	audioDecodeCBUser interface{}
}

// New wraps buf in a Player. If closeBufWhenDone is true, Close also
// closes buf. Video and audio decoding are both enabled by default; the
// decoders themselves are created lazily, once the demuxer's headers (and
// hence stream counts) are known.
func New(buf *bitbuf.BitBuffer, closeBufWhenDone bool, config Config, log logging.Logger) *Player {
	if log == nil {
		log = logging.NoLog{}
	}
	p := &Player{
		buf:              buf,
		closeBufWhenDone: closeBufWhenDone,
		log:              log,
		config:           config,
		demuxer:          ps.New(buf, closeBufWhenDone, log),
	}
	p.videoBuf = bitbuf.NewForAppending(defaultBufferCapacity, log)
	p.audioBuf = bitbuf.NewForAppending(defaultBufferCapacity, log)
	p.videoBuf.SetLoadCallback(p.readPackets)
	p.audioBuf.SetLoadCallback(p.readPackets)
	return p
}

// Close closes the demuxer (and, if owned, the underlying source buffer).
func (p *Player) Close() error {
	if p.video != nil {
		if err := p.video.Close(); err != nil {
			return err
		}
	}
	if p.audio != nil {
		if err := p.audio.Close(); err != nil {
			return err
		}
	}
	return p.demuxer.Close()
}

// Probe scans up to config.ProbeSize bytes (or the given hint, if
// positive) for stream headers, without disturbing the demuxer's position.
func (p *Player) Probe(limitBytes int) bool {
	if limitBytes <= 0 {
		limitBytes = p.config.ProbeSize
	}
	return p.demuxer.Probe(limitBytes)
}

// HasHeaders reports whether the demuxer's PACK/SYSTEM headers have been
// parsed, lazily creating the video/audio decoders once they are.
func (p *Player) HasHeaders() bool {
	if !p.demuxer.HasHeaders() {
		return false
	}
	p.ensureDecoders()
	return true
}

// ensureDecoders lazily creates the video and/or audio decoders, once the
// demuxer reports a corresponding stream is present and the caller has not
// disabled that stream.
func (p *Player) ensureDecoders() {
	if p.video == nil && p.config.VideoEnabled && p.demuxer.NumVideoStreams() > 0 {
		p.video = mpeg1video.New(p.videoBuf, false, p.log)
	}
	if p.audio == nil && p.config.AudioEnabled && p.demuxer.NumAudioStreams() > 0 {
		p.audio = mpeg1audio.New(p.audioBuf, false, p.log)
	}
}

// SetAudioEnabled and SetVideoEnabled enable or disable decoding of each
// stream; disabling does not destroy an already-created decoder.
func (p *Player) SetAudioEnabled(v bool) { p.config.AudioEnabled = v }
func (p *Player) SetVideoEnabled(v bool) { p.config.VideoEnabled = v }

// SetAudioStream selects which of the four audio streams (0..3) is
// decoded; out-of-range values are ignored. The index is read each time
// packets are routed, so a change also applies to an existing decoder.
func (p *Player) SetAudioStream(n int) {
	if n >= 0 && n <= 3 {
		p.config.AudioStreamIndex = n
	}
}

// SetLoop enables or disables looping back to the start of the stream on
// end-of-stream.
func (p *Player) SetLoop(v bool) { p.config.Loop = v }

// SetAudioLeadTime sets how far ahead of the video clock Decode keeps the
// audio decoder.
func (p *Player) SetAudioLeadTime(t float64) { p.config.AudioLeadTime = t }

// SetVideoDecodeCallback installs fn, called with user for every video
// frame Decode/DecodeVideo successfully decodes.
func (p *Player) SetVideoDecodeCallback(fn VideoDecodeFunc, user interface{}) {
	p.videoDecodeCB, p.videoDecodeCBUser = fn, user
}

// SetAudioDecodeCallback installs fn, called with user for every audio
// sample frame Decode/DecodeAudio successfully decodes.
func (p *Player) SetAudioDecodeCallback(fn AudioDecodeFunc, user interface{}) {
	p.audioDecodeCB, p.audioDecodeCBUser = fn, user
}

// HasEnded reports whether playback has reached the end of the stream
// (and Loop is not set).
func (p *Player) HasEnded() bool { return p.hasEnded }

// GetTime returns the current playback time, in seconds.
func (p *Player) GetTime() float64 { return p.time }

// GetDuration returns the stream's duration, in seconds, preferring the
// video stream's if both are present.
func (p *Player) GetDuration() float64 {
	if p.demuxer.NumVideoStreams() > 0 {
		return p.demuxer.GetDuration(ps.PacketVideo1)
	}
	return p.demuxer.GetDuration(ps.PacketAudio1 + p.config.AudioStreamIndex)
}

// GetFramerate returns the video stream's frame rate, or 0 if there is no
// video decoder.
func (p *Player) GetFramerate() float64 {
	if p.video == nil {
		return 0
	}
	return p.video.GetFramerate()
}

// GetSamplerate returns the audio stream's sample rate, or 0 if there is
// no audio decoder.
func (p *Player) GetSamplerate() int {
	if p.audio == nil {
		return 0
	}
	return p.audio.GetSampleRate()
}

// GetWidth and GetHeight return the video stream's coded dimensions, or 0
// if there is no video decoder.
func (p *Player) GetWidth() int {
	if p.video == nil {
		return 0
	}
	return p.video.GetWidth()
}

func (p *Player) GetHeight() int {
	if p.video == nil {
		return 0
	}
	return p.video.GetHeight()
}

// Rewind resets the demuxer, both elementary stream buffers and both
// decoders to the start of the stream, and zeroes the playback clock.
func (p *Player) Rewind() {
	p.demuxer.Rewind()
	if p.video != nil {
		p.video.Rewind()
	}
	if p.audio != nil {
		p.audio.Rewind()
	}
	p.time = 0
	p.hasEnded = false
}

// readPackets is the load callback installed on both elementary stream
// buffers: it demuxes packets, routing each one's body to the video or
// audio buffer by stream type, until a packet matching the type that
// triggered the load (b) has been seen, or the demuxer ends.
func (p *Player) readPackets(b *bitbuf.BitBuffer) {
	var requested int
	switch b {
	case p.videoBuf:
		requested = ps.PacketVideo1
	case p.audioBuf:
		requested = ps.PacketAudio1 + p.config.AudioStreamIndex
	}

	for {
		pkt := p.demuxer.Decode()
		if pkt == nil {
			if p.demuxer.HasEnded() {
				p.videoBuf.SignalEnd()
				p.audioBuf.SignalEnd()
			}
			return
		}

		switch {
		case pkt.Type == ps.PacketVideo1:
			p.videoBuf.Write(pkt.Data)
		case pkt.Type >= ps.PacketAudio1 && pkt.Type <= ps.PacketAudio4:
			if pkt.Type == ps.PacketAudio1+p.config.AudioStreamIndex {
				p.audioBuf.Write(pkt.Data)
			}
		}

		if pkt.Type == requested {
			return
		}
	}
}

// DecodeVideo decodes and returns the next video frame, advancing the
// playback clock to its time and invoking the video callback if set.
func (p *Player) DecodeVideo() *mpeg1video.Frame {
	if !p.HasHeaders() || p.video == nil || !p.config.VideoEnabled {
		return nil
	}
	frame := p.video.Decode()
	if frame == nil {
		return nil
	}
	p.time = frame.Time
	if p.videoDecodeCB != nil {
		p.videoDecodeCB(frame, p.videoDecodeCBUser)
	}
	return frame
}

// DecodeAudio decodes and returns the next audio sample frame, advancing
// the playback clock to its time and invoking the audio callback if set.
func (p *Player) DecodeAudio() *mpeg1audio.Samples {
	if !p.HasHeaders() || p.audio == nil || !p.config.AudioEnabled {
		return nil
	}
	samples := p.audio.Decode()
	if samples == nil {
		return nil
	}
	p.time = samples.Time
	if p.audioDecodeCB != nil {
		p.audioDecodeCB(samples, p.audioDecodeCBUser)
	}
	return samples
}

// Decode advances playback by tick seconds, alternately pulling video and
// audio frames until both decoders are at or past time+tick (audio is
// additionally kept config.AudioLeadTime ahead). On end-of-stream it loops
// (if configured) or sets HasEnded.
func (p *Player) Decode(tick float64) {
	if !p.HasHeaders() {
		return
	}

	videoTarget := p.time + tick
	audioTarget := p.time + tick + p.config.AudioLeadTime

	decodedVideo := true
	decodedAudio := true
	for decodedVideo || decodedAudio {
		// The decoders are called directly rather than through
		// DecodeVideo/DecodeAudio, which would move p.time to each frame's
		// time; the clock only advances by tick after the loop.
		decodedVideo = false
		if p.video != nil && p.config.VideoEnabled && p.video.GetTime() < videoTarget {
			if frame := p.video.Decode(); frame != nil {
				if p.videoDecodeCB != nil {
					p.videoDecodeCB(frame, p.videoDecodeCBUser)
				}
				decodedVideo = true
			}
		}
		decodedAudio = false
		if p.audio != nil && p.config.AudioEnabled && p.audio.GetTime() < audioTarget {
			if samples := p.audio.Decode(); samples != nil {
				if p.audioDecodeCB != nil {
					p.audioDecodeCB(samples, p.audioDecodeCBUser)
				}
				decodedAudio = true
			}
		}
		if !decodedVideo && !decodedAudio {
			if p.demuxer.HasEnded() {
				if p.config.Loop {
					p.Rewind()
				} else {
					p.hasEnded = true
				}
			}
			break
		}
	}

	p.time += tick
}

// Seek repositions the demuxer and decoders to the nearest intra video
// packet at or before time. If exact is true, it then decodes forward
// until the returned frame's time is at least time. Audio is resynced
// separately: the audio decoder is rewound, demuxing continues until an
// audio packet with a PTS past the target is seen, and audio is decoded up
// to config.AudioLeadTime ahead of it. Returns false if no suitable
// position was found.
func (p *Player) Seek(t float64, exact bool) bool {
	if !p.HasHeaders() {
		return false
	}

	if p.video != nil {
		pkt := p.demuxer.Seek(t, ps.PacketVideo1, true)
		if pkt == nil {
			return false
		}
		p.video.Rewind()
		p.videoBuf.Write(pkt.Data)
		frame := p.video.Decode()
		if exact {
			for frame != nil && frame.Time < t {
				frame = p.video.Decode()
			}
		}
		if frame != nil {
			p.time = frame.Time
		}
	} else {
		p.time = t
	}

	if p.audio != nil {
		p.audio.Rewind()
		for {
			pkt := p.demuxer.Decode()
			if pkt == nil {
				break
			}
			if pkt.Type == ps.PacketAudio1+p.config.AudioStreamIndex && pkt.PTS > p.time {
				p.audio.SetTime(pkt.PTS)
				p.audioBuf.Write(pkt.Data)
				break
			}
		}
		target := p.time + p.config.AudioLeadTime
		for p.audio.GetTime() < target {
			if p.DecodeAudio() == nil {
				break
			}
		}
	}

	p.hasEnded = false
	return true
}

// SeekFrame seeks the video stream only to the nearest intra frame at or
// before time (optionally iterating to an exact match, as Seek does for
// video), leaving audio untouched; useful for thumbnailing.
func (p *Player) SeekFrame(t float64, exact bool) *mpeg1video.Frame {
	if !p.HasHeaders() || p.video == nil {
		return nil
	}

	pkt := p.demuxer.Seek(t, ps.PacketVideo1, true)
	if pkt == nil {
		return nil
	}
	p.video.Rewind()
	p.videoBuf.Write(pkt.Data)

	frame := p.video.Decode()
	if exact {
		for frame != nil && frame.Time < t {
			frame = p.video.Decode()
		}
	}
	if frame != nil {
		p.time = frame.Time
	}
	return frame
}
