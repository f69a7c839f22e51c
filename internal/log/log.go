// Copyright 2026 The svpost Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package log provides the structured log of post-processing runs using zap.
//
// Console messages are printed with gosl/io; this log keeps a machine-readable record of
// every stage in a (rotated) file. Before Init is called, all messages are discarded.
package log

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var log = zap.NewNop().Sugar()
var baseLogger = zap.NewNop()

// Init initializes the package-level logger
//
//	filename -- log file; use "" to log to stderr
//	maxSize  -- maximum size in megabytes of the log file before it gets rotated
func Init(filename string, debug bool, maxSize int) error {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	// stderr
	if filename == "" {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		zapLogger, err := cfg.Build(zap.AddCallerSkip(1))
		if err != nil {
			return chk.Err("can't initialize zap logger: %v", err)
		}
		set(zapLogger)
		return nil
	}

	// rotated file
	if err := os.MkdirAll(filepath.Dir(filename), 0777); err != nil {
		return chk.Err("can't create directory for log file %q: %v", filename, err)
	}
	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filename,
		MaxSize:    maxSize,
		MaxBackups: 3,
	})
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), writer, level)
	set(zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)))
	return nil
}

// Discard drops all subsequent messages
func Discard() {
	Sync()
	set(zap.NewNop())
}

// GetZapLogger returns the base zap logger
func GetZapLogger() *zap.Logger {
	return baseLogger
}

// Sync flushes any buffered log entries
func Sync() {
	log.Sync()
}

func set(l *zap.Logger) {
	baseLogger = l
	log = l.Sugar()
}

// Package-level convenience functions
func Debugw(msg string, keysAndValues ...interface{}) {
	log.Debugw(msg, keysAndValues...)
}

func Infow(msg string, keysAndValues ...interface{}) {
	log.Infow(msg, keysAndValues...)
}

func Warnw(msg string, keysAndValues ...interface{}) {
	log.Warnw(msg, keysAndValues...)
}

func Errorw(msg string, keysAndValues ...interface{}) {
	log.Errorw(msg, keysAndValues...)
}
