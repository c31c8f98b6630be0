/*
DESCRIPTION
  logging.go provides a Logger shaped like the one used throughout
  github.com/ausocean/av (see revid.Logger), backed by zap instead of a
  bespoke writer so that callers get structured, levelled output.

AUTHORS
  mpeg1 contributors

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package logging provides a small levelled Logger used across the mpeg1
// packages to report malformed bitstream data, lost sync and other
// non-fatal anomalies without panicking or writing to stdout directly.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log levels, ordered least to most severe, matching the convention used by
// github.com/ausocean/utils/logging.
const (
	Debug int8 = iota
	Info
	Warning
	Error
	Fatal
)

// Logger is the interface every mpeg1 package depends on for diagnostics.
type Logger interface {
	SetLevel(int8)
	Log(level int8, message string, params ...interface{})
}

// ZapLogger adapts a zap.Logger to the Logger interface, writing to any
// number of io.Writers (typically a lumberjack.Logger for file rotation).
type ZapLogger struct {
	level int8
	log   *zap.Logger
}

// New returns a ZapLogger that writes JSON-encoded entries to w at or above
// level. Suppress, when true, drops repeated identical messages the way
// github.com/ausocean/utils/logging does; this implementation keeps the
// parameter for call-site compatibility but always logs, since zap already
// provides sampling if that's desired by the caller's core.
func New(level int8, w io.Writer, suppress bool) *ZapLogger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.AddSync(w),
		zapLevel(level),
	)
	return &ZapLogger{level: level, log: zap.New(core)}
}

// SetLevel changes the minimum level Log passes on to zap. The zap core
// keeps the level given to New, so lowering the level below that one does
// not emit lower-level entries.
func (z *ZapLogger) SetLevel(level int8) {
	z.level = level
}

// Log writes message at level with the given key/value params, alternating
// key then value the way github.com/ausocean/utils/logging callers do, e.g.
// l.Log(logging.Error, "could not decode frame", "error", err).
func (z *ZapLogger) Log(level int8, message string, params ...interface{}) {
	if level < z.level {
		return
	}
	fields := make([]zap.Field, 0, len(params)/2)
	for i := 0; i+1 < len(params); i += 2 {
		key, ok := params[i].(string)
		if !ok {
			continue
		}
		fields = append(fields, zap.Any(key, params[i+1]))
	}
	switch level {
	case Debug:
		z.log.Debug(message, fields...)
	case Info:
		z.log.Info(message, fields...)
	case Warning:
		z.log.Warn(message, fields...)
	case Error:
		z.log.Error(message, fields...)
	case Fatal:
		z.log.Fatal(message, fields...)
	default:
		z.log.Info(message, fields...)
	}
}

// Debug logs at Debug level.
func (z *ZapLogger) Debug(message string, params ...interface{}) { z.Log(Debug, message, params...) }

// Info logs at Info level.
func (z *ZapLogger) Info(message string, params ...interface{}) { z.Log(Info, message, params...) }

// Warning logs at Warning level.
func (z *ZapLogger) Warning(message string, params ...interface{}) { z.Log(Warning, message, params...) }

// Error logs at Error level.
func (z *ZapLogger) Error(message string, params ...interface{}) { z.Log(Error, message, params...) }

// Fatal logs at Fatal level then exits, via the underlying zap.Logger.
func (z *ZapLogger) Fatal(message string, params ...interface{}) { z.Log(Fatal, message, params...) }

func zapLevel(level int8) zapcore.LevelEnabler {
	switch level {
	case Debug:
		return zapcore.DebugLevel
	case Info:
		return zapcore.InfoLevel
	case Warning:
		return zapcore.WarnLevel
	case Error:
		return zapcore.ErrorLevel
	default:
		return zapcore.FatalLevel
	}
}

// NoLog is a Logger that discards everything; useful as a default in tests
// and in constructors that accept a nil logger.
type NoLog struct{}

func (NoLog) SetLevel(int8)                               {}
func (NoLog) Log(level int8, message string, params ...interface{}) {}
