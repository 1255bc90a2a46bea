// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"v.io/x/hashset/cmd/flagvar"
	"v.io/x/hashset/table"
)

// options holds the settings shared by every subcommand. The same fields
// are filled from the --config file and from the command line.
type options struct {
	Config   string  `yaml:"-" flag:"config,,YAML file of defaults for the other flags"`
	Type     string  `yaml:"type" flag:"type,int,'element type: int, uint, float, string or uuid'"`
	Width    int     `yaml:"width" flag:"width,32,maximum byte length of string elements"`
	Capacity int     `yaml:"capacity" flag:"capacity,,initial number of slots"`
	Seed     uint64  `yaml:"seed" flag:"seed,0,'seed for the index coefficients, 0 picks one at random'"`
	Reserve  float64 `yaml:"reserve" flag:"reserve,-1,'if non-negative, shrink results to count*(1+reserve) slots'"`
	Sort     bool    `yaml:"sort" flag:"sort,false,print values in ascending order"`
}

var types = map[string]bool{"int": true, "uint": true, "float": true, "string": true, "uuid": true}

func (o *options) register(fs *pflag.FlagSet) error {
	return flagvar.RegisterFlagsInStruct(fs, "flag", o, map[string]interface{}{
		"capacity": table.DefaultCapacity,
	})
}

// resolve layers the config file, if any, between the defaults and the
// flags set on the command line, then validates the result.
func (o *options) resolve(fs *pflag.FlagSet) error {
	if o.Config != "" {
		changed := flagvar.Changed(fs)
		if err := o.load(o.Config); err != nil {
			return err
		}
		if err := flagvar.Reapply(fs, changed); err != nil {
			return err
		}
	}
	return o.validate()
}

func (o *options) load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(o); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%s: %v", path, err)
	}
	return nil
}

func (o *options) validate() error {
	if !types[o.Type] {
		return fmt.Errorf("unknown type %q, want one of int, uint, float, string or uuid", o.Type)
	}
	if o.Width <= 0 {
		return fmt.Errorf("string width must be positive, got %d", o.Width)
	}
	if o.Capacity <= 0 {
		return fmt.Errorf("capacity must be positive, got %d", o.Capacity)
	}
	if math.IsNaN(o.Reserve) || math.IsInf(o.Reserve, 0) {
		return fmt.Errorf("reserve must be a finite number, got %v", o.Reserve)
	}
	return nil
}

func (o *options) tableOptions() []table.Option {
	opts := []table.Option{table.WithCapacity(o.Capacity)}
	if o.Seed != 0 {
		opts = append(opts, table.WithSeed(o.Seed))
	}
	return opts
}
