// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Command setop runs set algebra over files holding one value per line.

Usage:

	setop union|intersect|diff|symdiff [flags] <a> <b>
	setop stats [flags] <file>

Either input may be - for standard input. Blank lines are ignored and
duplicate lines count once. The binary operations print the resulting set,
one value per line, in table order unless --sort is given. stats prints the
occupancy of the table built from the file.

Values are parsed according to --type: int and uint are 64 bit, float is
float64 compared by bit pattern, string holds at most --width bytes and uuid
accepts the usual textual forms.

Defaults for --type, --width, --capacity, --seed, --reserve and --sort can
be given in a YAML file named by --config, with keys of the same names.
Flags given on the command line take precedence over the file.
*/
package main
