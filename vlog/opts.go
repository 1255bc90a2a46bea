// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vlog

import (
	"strconv"

	"k8s.io/klog/v2"
)

// LoggingOpts is implemented by every option accepted by Configure.
type LoggingOpts interface {
	LoggingOpt()
}

type (
	// AlsoLogToStderr writes logs to standard error as well as to files.
	AlsoLogToStderr bool
	// AutoFlush flushes log output after every call.
	AutoFlush bool
	// LogDir writes log files to a directory other than os.TempDir.
	LogDir string
	// LogToStderr writes logs to standard error instead of to files.
	LogToStderr bool
	// OverridePriorConfiguration allows Configure to be called again.
	OverridePriorConfiguration bool
)

func (AlsoLogToStderr) LoggingOpt()            {}
func (AutoFlush) LoggingOpt()                  {}
func (LogDir) LoggingOpt()                     {}
func (LogToStderr) LoggingOpt()                {}
func (OverridePriorConfiguration) LoggingOpt() {}
func (Level) LoggingOpt()                      {}

// Level is a verbosity level for V logs. It implements flag.Value.
type Level klog.Level

// Set is part of the flag.Value interface. Unlike klog.Level.Set it does
// not change the process verbosity; Configure does that.
func (l *Level) Set(v string) error {
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return err
	}
	*l = Level(n)
	return nil
}

// Get is part of the flag.Getter interface.
func (l *Level) Get() interface{} {
	return *l
}

// String is part of the flag.Value interface.
func (l *Level) String() string {
	return strconv.FormatInt(int64(*l), 10)
}
