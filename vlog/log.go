// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vlog provides the leveled logging used by the containers and tools
// in this module. It is a thin layer over klog: a process-wide Log that the
// table package reports rehashes to, plus NewLogger for callers that want
// their messages tagged with a name. klog's state is process-wide, so every
// logger shares one verbosity and one set of outputs.
//
// By convention level 1 reports growth and level 2 reports shrinks, explicit
// rehashes and staged unions.
package vlog

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"sync"

	"k8s.io/klog/v2"
)

// Depth of the logger methods below the caller, for klog's file:line.
const stackSkip = 1

var (
	klogOnce  sync.Once
	klogFlags *flag.FlagSet
)

// setKlog sets one of klog's own flags without touching flag.CommandLine.
func setKlog(name, value string) error {
	klogOnce.Do(func() {
		klogFlags = flag.NewFlagSet("klog", flag.ContinueOnError)
		klog.InitFlags(klogFlags)
	})
	return klogFlags.Set(name, value)
}

// Configured is returned by Configure if the logger was configured before
// and OverridePriorConfiguration was not supplied.
var Configured = errors.New("logger has already been configured")

// InfoLog is the subset of Logger returned by VI.
type InfoLog interface {
	// Info logs to the INFO log.
	// Arguments are handled in the manner of fmt.Print; a newline is appended if missing.
	Info(args ...interface{})
	// Infof logs to the INFO log.
	// Arguments are handled in the manner of fmt.Printf; a newline is appended if missing.
	Infof(format string, args ...interface{})
}

// Logger is a leveled logger.
type Logger interface {
	InfoLog

	// V returns true if the configured verbosity is at least level.
	V(level Level) bool
	// VI is like V, except that it returns an InfoLog that either logs or
	// discards, allowing logger.VI(2).Infof style usage.
	VI(level Level) InfoLog

	// Error logs to the ERROR and INFO logs.
	Error(args ...interface{})
	// Errorf logs to the ERROR and INFO logs.
	Errorf(format string, args ...interface{})

	// FlushLog flushes all pending log I/O.
	FlushLog()

	// Configure applies opts to all future logging. It returns Configured
	// if called twice without OverridePriorConfiguration.
	Configure(opts ...LoggingOpts) error
	// LogDir returns the directory log files are written to.
	LogDir() string
}

type logger struct {
	prefix     string
	mu         sync.Mutex // guards the fields below
	autoFlush  bool
	logDir     string
	configured bool
}

// Log is the process-wide logger.
var Log *logger

func init() {
	Log = &logger{}
}

// NewLogger creates a logger whose messages are prefixed with name.
func NewLogger(name string) Logger {
	return &logger{prefix: "[" + name + "] "}
}

// Configure applies opts to all future logging. Some options, such as
// LogDir, only take effect before the first log file is created.
func (l *logger) Configure(opts ...LoggingOpts) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	override := false
	for _, o := range opts {
		if v, ok := o.(OverridePriorConfiguration); ok {
			override = bool(v)
		}
	}
	if l.configured && !override {
		return Configured
	}
	for _, o := range opts {
		var err error
		switch v := o.(type) {
		case AlsoLogToStderr:
			err = setKlog("alsologtostderr", strconv.FormatBool(bool(v)))
		case Level:
			err = setKlog("v", v.String())
		case LogDir:
			l.logDir = string(v)
			err = setKlog("log_dir", l.logDir)
		case LogToStderr:
			err = setKlog("logtostderr", strconv.FormatBool(bool(v)))
		case AutoFlush:
			l.autoFlush = bool(v)
		}
		if err != nil {
			return fmt.Errorf("vlog: %w", err)
		}
	}
	l.configured = true
	return nil
}

// LogDir returns the directory log files are written to.
func (l *logger) LogDir() string {
	if len(l.logDir) != 0 {
		return l.logDir
	}
	return os.TempDir()
}

func (l *logger) maybeFlush() {
	if l.autoFlush {
		klog.Flush()
	}
}

func (l *logger) Info(args ...interface{}) {
	klog.InfoDepth(stackSkip, l.prefix+fmt.Sprint(args...))
	l.maybeFlush()
}

func (l *logger) Infof(format string, args ...interface{}) {
	klog.InfoDepth(stackSkip, l.prefix+fmt.Sprintf(format, args...))
	l.maybeFlush()
}

func (l *logger) Error(args ...interface{}) {
	klog.ErrorDepth(stackSkip, l.prefix+fmt.Sprint(args...))
	l.maybeFlush()
}

func (l *logger) Errorf(format string, args ...interface{}) {
	klog.ErrorDepth(stackSkip, l.prefix+fmt.Sprintf(format, args...))
	l.maybeFlush()
}

func (l *logger) V(level Level) bool {
	return klog.V(klog.Level(level)).Enabled()
}

func (l *logger) VI(level Level) InfoLog {
	if l.V(level) {
		return l
	}
	return discard{}
}

func (l *logger) FlushLog() {
	klog.Flush()
}

type discard struct{}

func (discard) Info(args ...interface{})                 {}
func (discard) Infof(format string, args ...interface{}) {}

// Discard is a Logger that drops everything.
var Discard Logger = discardLogger{}

type discardLogger struct{ discard }

func (discardLogger) V(Level) bool                              { return false }
func (discardLogger) VI(Level) InfoLog                          { return discard{} }
func (discardLogger) Error(args ...interface{})                 {}
func (discardLogger) Errorf(format string, args ...interface{}) {}
func (discardLogger) FlushLog()                                 {}
func (discardLogger) Configure(...LoggingOpts) error            { return nil }
func (discardLogger) LogDir() string                            { return os.TempDir() }

// Info logs to the INFO log of Log.
func Info(args ...interface{}) { Log.Info(args...) }

// Infof logs to the INFO log of Log.
func Infof(format string, args ...interface{}) { Log.Infof(format, args...) }

// Errorf logs to the ERROR and INFO logs of Log.
func Errorf(format string, args ...interface{}) { Log.Errorf(format, args...) }

// V reports whether Log's verbosity is at least level.
func V(level Level) bool { return Log.V(level) }

// VI is Log.VI.
func VI(level Level) InfoLog { return Log.VI(level) }

// FlushLog flushes Log.
func FlushLog() { Log.FlushLog() }

// Configure configures Log.
func Configure(opts ...LoggingOpts) error { return Log.Configure(opts...) }

// Panicf logs to the ERROR log of Log and then panics with the same message.
func Panicf(format string, args ...interface{}) {
	Log.Errorf(format, args...)
	panic(fmt.Sprintf(format, args...))
}
