// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vlog_test

import (
	"bufio"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"v.io/x/hashset/vlog"
)

func ExampleVI() {
	vlog.VI(2).Infof("rehash %d -> %d slots", 256, 512)
}

func readInfoLines(t *testing.T, dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	var lines []string
	for _, e := range entries {
		// Skip symlinks to avoid double-counting log lines.
		if !e.Type().IsRegular() {
			continue
		}
		f, err := os.Open(filepath.Join(dir, e.Name()))
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			if line := scanner.Text(); len(line) > 0 && line[0] == 'I' {
				lines = append(lines, line)
			}
		}
		f.Close()
	}
	return lines
}

func TestVerbosity(t *testing.T) {
	dir := t.TempDir()
	var logger vlog.Logger = vlog.NewLogger("vlogtest")
	if err := logger.Configure(vlog.LogToStderr(false), vlog.LogDir(dir), vlog.Level(2)); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if got, want := logger.LogDir(), dir; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	logger.Infof("grew to %d slots", 512)
	logger.VI(2).Infof("shrunk to %d slots", 16)
	logger.VI(3).Infof("never shown")
	if !logger.V(1) || logger.V(3) {
		t.Errorf("V: got %v/%v, want true/false", logger.V(1), logger.V(3))
	}
	logger.FlushLog()

	all := strings.Join(readInfoLines(t, dir), "\n")
	for _, want := range []string{"[vlogtest] grew to 512 slots", "[vlogtest] shrunk to 16 slots"} {
		if !strings.Contains(all, want) {
			t.Errorf("log is missing %q:\n%s", want, all)
		}
	}
	if strings.Contains(all, "never shown") {
		t.Errorf("level 3 message was logged:\n%s", all)
	}
}

func TestConfigureTwice(t *testing.T) {
	logger := vlog.NewLogger("twice")
	if err := logger.Configure(vlog.Level(1)); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if got, want := logger.Configure(vlog.Level(2)), vlog.Configured; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if err := logger.Configure(vlog.Level(2), vlog.OverridePriorConfiguration(true)); err != nil {
		t.Errorf("Configure with override: %v", err)
	}
	if !logger.V(2) {
		t.Errorf("override did not take effect")
	}
}

func TestBadLevelFlag(t *testing.T) {
	var l vlog.Level
	if err := l.Set("loud"); err == nil {
		t.Errorf("Set(loud) succeeded")
	}
	if err := l.Set("4"); err != nil || l.String() != "4" {
		t.Errorf("Set(4): got %v, %v", l.String(), err)
	}
}

func TestRegisterLoggingFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	var lf vlog.LoggingFlags
	vlog.RegisterLoggingFlags(fs, &lf, "hs_")
	if err := fs.Parse([]string{"--hs_v=3", "--hs_logtostderr", "--hs_log_dir=/tmp/x"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got, want := lf.Verbosity, vlog.Level(3); got != want {
		t.Errorf("verbosity: got %v, want %v", got, want)
	}
	if !lf.ToStderr || lf.AlsoToStderr {
		t.Errorf("stderr flags: got %v/%v, want true/false", lf.ToStderr, lf.AlsoToStderr)
	}
	if got, want := lf.LogDir, "/tmp/x"; got != want {
		t.Errorf("log dir: got %v, want %v", got, want)
	}
	if got, want := len(lf.Options()), 4; got != want {
		t.Errorf("options: got %d, want %d", got, want)
	}
}

func TestDiscard(t *testing.T) {
	vlog.Discard.Infof("dropped %d", 1)
	vlog.Discard.VI(0).Info("dropped")
	if vlog.Discard.V(0) {
		t.Errorf("Discard reports verbosity")
	}
	if err := vlog.Discard.Configure(vlog.Level(3)); err != nil {
		t.Errorf("Configure: %v", err)
	}
	if got, want := vlog.Discard.LogDir(), os.TempDir(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
