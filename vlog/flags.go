// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vlog

import "flag"

// LoggingFlags holds the values of the flags registered by
// RegisterLoggingFlags.
type LoggingFlags struct {
	ToStderr     bool
	AlsoToStderr bool
	LogDir       string
	Verbosity    Level
}

// RegisterLoggingFlags registers the logging flags on fs, each name
// prefixed with prefix:
//
//	--<prefix>v
//	--<prefix>log_dir
//	--<prefix>logtostderr
//	--<prefix>alsologtostderr
//
// go test claims -v, so when fs already has test.v the verbosity flag is
// registered as --<prefix>vlevel instead.
func RegisterLoggingFlags(fs *flag.FlagSet, lf *LoggingFlags, prefix string) {
	vflag := prefix + "v"
	if fs.Lookup("test.v") != nil {
		vflag = prefix + "vlevel"
	}
	fs.Var(&lf.Verbosity, vflag, "log level for V logs")
	fs.StringVar(&lf.LogDir, prefix+"log_dir", "", "if non-empty, write log files to this directory")
	fs.BoolVar(&lf.ToStderr, prefix+"logtostderr", false, "log to standard error instead of files")
	fs.BoolVar(&lf.AlsoToStderr, prefix+"alsologtostderr", false, "log to standard error as well as files")
}

// Options returns the LoggingOpts corresponding to the flag values.
func (lf *LoggingFlags) Options() []LoggingOpts {
	return []LoggingOpts{
		LogToStderr(lf.ToStderr),
		AlsoLogToStderr(lf.AlsoToStderr),
		LogDir(lf.LogDir),
		lf.Verbosity,
	}
}

// ConfigureFromLoggingFlags configures l from lf, followed by opts.
func (l *logger) ConfigureFromLoggingFlags(lf *LoggingFlags, opts ...LoggingOpts) error {
	return l.Configure(append(lf.Options(), opts...)...)
}
