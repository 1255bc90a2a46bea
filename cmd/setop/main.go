// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"v.io/x/hashset/vlog"
)

func main() {
	os.Exit(Main())
}

// Main runs setop and returns the code for passing to os.Exit.
func Main() int {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	cmd.SetArgs(os.Args[1:])
	err := cmd.Execute()
	vlog.FlushLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "setop: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	o := &options{}
	lf := &vlog.LoggingFlags{}
	root := &cobra.Command{
		Use:   "setop",
		Short: "setop runs set algebra over files of values",
		Long: `setop reads one value per line from its input files, builds a hash set
for each and prints the result of a set operation, one value per line.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := vlog.Log.ConfigureFromLoggingFlags(lf); err != nil && err != vlog.Configured {
				return err
			}
			return o.resolve(cmd.Flags())
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := o.register(root.PersistentFlags()); err != nil {
		panic(err)
	}
	logFlags := flag.NewFlagSet("logging", flag.ContinueOnError)
	vlog.RegisterLoggingFlags(logFlags, lf, "")
	root.PersistentFlags().AddGoFlagSet(logFlags)

	for _, op := range binaryOps {
		root.AddCommand(newBinaryCmd(o, op))
	}
	root.AddCommand(newStatsCmd(o))
	return root
}

func newBinaryCmd(o *options, op binaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   op.name + " <a> <b>",
		Short: op.short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRunner(o)
			if err != nil {
				return err
			}
			return r.binary(cmd, op.name, args[0], args[1])
		},
	}
}

func newStatsCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>",
		Short: "print occupancy statistics of the set built from a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRunner(o)
			if err != nil {
				return err
			}
			return r.stats(cmd, args[0])
		},
	}
}
