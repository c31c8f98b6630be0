/*
DESCRIPTION
  Mpeg1play is a program that plays back an MPEG-1 Program Stream file,
  decoding it at a fixed tick rate and optionally dumping its audio to a
  WAV file.

AUTHORS
  mpeg1 contributors

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package mpeg1play is a command-line front-end for decoding and playing
// back MPEG-1 Program Stream files.
package main

import (
	"flag"
	"io"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/mpeg1/bitbuf"
	"github.com/ausocean/mpeg1/codec/mpeg1audio"
	"github.com/ausocean/mpeg1/codec/mpeg1video"
	"github.com/ausocean/mpeg1/internal/logging"
	"github.com/ausocean/mpeg1/player"
)

// Logging related constants.
const (
	logPath      = "/var/log/mpeg1play/mpeg1play.log"
	logMaxSize   = 500 // MB
	logMaxBackup = 10
	logMaxAge    = 28 // days
	logVerbosity = logging.Debug
	logSuppress  = true
)

// defaultTick is the decode step Decode is called with, in seconds.
const defaultTick = 1.0 / 30.0

func main() {
	pathPtr := flag.String("path", "", "Path to the Program Stream file to play.")
	loopPtr := flag.Bool("loop", false, "Loop playback once the stream ends.")
	audioStreamPtr := flag.Int("audio-stream", 0, "Index (0-3) of the audio stream to decode.")
	tickPtr := flag.Float64("tick", defaultTick, "Decode step, in seconds.")
	wavPathPtr := flag.String("dump-wav", "", "If set, write decoded audio to this WAV file on exit.")
	probeSizePtr := flag.Int("probe-size", player.DefaultProbeSize, "Bytes to scan for stream headers.")
	flag.Parse()

	if *pathPtr == "" {
		flag.Usage()
		os.Exit(2)
	}

	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	l := logging.New(logVerbosity, io.MultiWriter(fileLog, os.Stderr), logSuppress)

	f, err := os.Open(*pathPtr)
	if err != nil {
		l.Fatal("could not open input file", "error", err)
	}

	buf := bitbuf.NewWithFile(f, true, l)

	cfg := player.NewConfig()
	cfg.Loop = *loopPtr
	cfg.AudioStreamIndex = *audioStreamPtr
	cfg.ProbeSize = *probeSizePtr

	p := player.New(buf, true, cfg, l)
	defer func() {
		if err := p.Close(); err != nil {
			l.Error("failed to close player", "error", err)
		}
	}()

	if !p.Probe(cfg.ProbeSize) || !p.HasHeaders() {
		l.Fatal("no playable video or audio stream found", "path", *pathPtr)
	}

	l.Info("stream opened",
		"path", *pathPtr,
		"width", p.GetWidth(),
		"height", p.GetHeight(),
		"framerate", p.GetFramerate(),
		"samplerate", p.GetSamplerate(),
		"duration", p.GetDuration(),
	)

	var frames, dumpedSamples int
	p.SetVideoDecodeCallback(func(frame *mpeg1video.Frame, user interface{}) { frames++ }, nil)

	var dumper *player.DumpWAV
	if *wavPathPtr != "" && p.GetSamplerate() > 0 {
		dumper = player.NewDumpWAV(p.GetSamplerate())
		p.SetAudioDecodeCallback(func(s *mpeg1audio.Samples, user interface{}) {
			dumper.Write(s, user)
			dumpedSamples += s.Count
		}, nil)
	}

	for !p.HasEnded() {
		p.Decode(*tickPtr)
	}

	l.Info("playback finished", "frames", frames, "audioSamples", dumpedSamples)

	if dumper != nil {
		data, err := dumper.Bytes()
		if err != nil {
			l.Fatal("failed to render WAV output", "error", err)
		}
		if err := os.WriteFile(*wavPathPtr, data, 0o644); err != nil {
			l.Fatal("failed to write WAV output", "error", err)
		}
		l.Info("wrote WAV output", "path", *wavPathPtr, "bytes", len(data))
	}
}
