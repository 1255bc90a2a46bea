// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"bytes"
	"cmp"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"v.io/x/hashset/metrics"
	"v.io/x/hashset/set"
	"v.io/x/hashset/table"
	"v.io/x/hashset/vlog"
)

type binaryOp struct {
	name, short string
}

var binaryOps = []binaryOp{
	{"union", "print the values in either input"},
	{"intersect", "print the values in both inputs"},
	{"diff", "print the values of the first input that are not in the second"},
	{"symdiff", "print the values in exactly one input"},
}

// runner carries out a subcommand for one element type.
type runner interface {
	binary(cmd *cobra.Command, op, a, b string) error
	stats(cmd *cobra.Command, file string) error
}

// kind describes how values of type T are read, written and ordered.
type kind[T any] struct {
	o       *options
	codec   set.Codec[T]
	parse   func(string) (T, error)
	format  func(T) string
	compare func(a, b T) int
	obs     *metrics.Observer
}

func newRunner(o *options) (runner, error) {
	switch o.Type {
	case "int":
		return newKind(o, set.Integer[int64](),
			func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) },
			func(v int64) string { return strconv.FormatInt(v, 10) },
			cmp.Compare[int64]), nil
	case "uint":
		return newKind(o, set.Integer[uint64](),
			func(s string) (uint64, error) { return strconv.ParseUint(s, 10, 64) },
			func(v uint64) string { return strconv.FormatUint(v, 10) },
			cmp.Compare[uint64]), nil
	case "float":
		return newKind(o, set.Float[float64](),
			func(s string) (float64, error) { return strconv.ParseFloat(s, 64) },
			func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) },
			cmp.Compare[float64]), nil
	case "string":
		return newKind(o, set.FixedString(o.Width),
			func(s string) (string, error) { return s, nil },
			func(v string) string { return v },
			strings.Compare), nil
	case "uuid":
		return newKind(o, set.UUID,
			uuid.Parse,
			uuid.UUID.String,
			func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) }), nil
	}
	return nil, fmt.Errorf("unknown type %q", o.Type)
}

func newKind[T any](o *options, codec set.Codec[T], parse func(string) (T, error), format func(T) string, compare func(a, b T) int) *kind[T] {
	return &kind[T]{
		o:       o,
		codec:   codec,
		parse:   parse,
		format:  format,
		compare: compare,
		obs:     metrics.NewObserver(nil),
	}
}

func (k *kind[T]) open(cmd *cobra.Command, name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(name)
}

// load builds a set from the lines of the named input.
func (k *kind[T]) load(cmd *cobra.Command, name string) (*set.Set[T], error) {
	r, err := k.open(cmd, name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	s, err := set.New(k.codec, append(k.o.tableOptions(), table.WithObserver(k.obs))...)
	if err != nil {
		return nil, err
	}
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if len(text) == 0 {
			continue
		}
		v, err := k.parse(text)
		if err == nil {
			_, err = s.Insert(v)
		}
		if err != nil {
			s.Release()
			return nil, fmt.Errorf("%s:%d: %v", name, line, err)
		}
	}
	if err := sc.Err(); err != nil {
		s.Release()
		return nil, fmt.Errorf("%s: %v", name, err)
	}
	vlog.VI(1).Infof("setop: %s: %d values in %d slots", name, s.Len(), s.Cap())
	return s, nil
}

func (k *kind[T]) shrink(s *set.Set[T]) error {
	if k.o.Reserve < 0 {
		return nil
	}
	return s.ShrinkReserve(k.o.Reserve)
}

func (k *kind[T]) binary(cmd *cobra.Command, op, a, b string) error {
	if a == "-" && b == "-" {
		return fmt.Errorf("only one input may be read from standard input")
	}
	sa, err := k.load(cmd, a)
	if err != nil {
		return err
	}
	defer sa.Release()
	sb, err := k.load(cmd, b)
	if err != nil {
		return err
	}
	defer sb.Release()

	var fn func(a, b *set.Set[T]) (*set.Set[T], error)
	switch op {
	case "union":
		fn = set.Union[T]
	case "intersect":
		fn = set.Intersection[T]
	case "diff":
		fn = set.Difference[T]
	case "symdiff":
		fn = set.SymmetricDifference[T]
	default:
		return fmt.Errorf("unknown operation %q", op)
	}
	r, err := fn(sa, sb)
	if err != nil {
		return err
	}
	defer r.Release()
	if err := k.shrink(r); err != nil {
		return err
	}
	vlog.VI(1).Infof("setop: %s: %d values, rehashes %v", op, r.Len(), k.obs)
	return k.write(cmd.OutOrStdout(), r)
}

func (k *kind[T]) write(w io.Writer, s *set.Set[T]) error {
	vs := s.ToSlice()
	if k.o.Sort {
		slices.SortFunc(vs, k.compare)
	}
	bw := bufio.NewWriter(w)
	for _, v := range vs {
		fmt.Fprintln(bw, k.format(v))
	}
	return bw.Flush()
}

func (k *kind[T]) stats(cmd *cobra.Command, file string) error {
	s, err := k.load(cmd, file)
	if err != nil {
		return err
	}
	defer s.Release()
	if err := k.shrink(s); err != nil {
		return err
	}
	st := s.Stats()
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "count      %d\n", st.Len)
	fmt.Fprintf(w, "capacity   %d\n", st.Cap)
	fmt.Fprintf(w, "tombstones %d\n", st.Deleted)
	fmt.Fprintf(w, "load       %.4f\n", st.LoadFactor())
	fmt.Fprintf(w, "max probe  %d\n", st.MaxProbe)
	fmt.Fprintf(w, "rehashes   %v\n", k.obs)
	return nil
}
