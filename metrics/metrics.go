// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics exports table activity as prometheus metrics.
package metrics

import (
	"strconv"

	prom "github.com/prometheus/client_golang/prometheus"

	"v.io/x/hashset/table"
)

const namespace = "hashset"

// Observer implements table.Observer. A nil *Observer drops everything.
type Observer struct {
	reg          *prom.Registry
	rehashes     *prom.CounterVec
	rehashSlots  prom.Histogram
	probeLengths *prom.HistogramVec
}

var _ table.Observer = (*Observer)(nil)

// NewObserver constructs the metrics and registers them with reg, or with a
// fresh registry if reg is nil.
func NewObserver(reg *prom.Registry) *Observer {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	o := &Observer{
		reg: reg,
		rehashes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "rehash_total",
			Help:      "Table rehashes by reason",
		}, []string{"reason"}),
		rehashSlots: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "rehash_slots",
			Help:      "Slot count of tables after a rehash",
			Buckets:   prom.ExponentialBuckets(1, 4, 12),
		}),
		probeLengths: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "probe_length",
			Help:      "Slots examined per lookup, insert or removal",
			Buckets:   []float64{1, 2, 3, 4, 6, 8, 12, 16, 32, 64, 128},
		}, []string{"op"}),
	}
	reg.MustRegister(o.rehashes, o.rehashSlots, o.probeLengths)
	return o
}

// Registry returns the registry the metrics are registered with.
func (o *Observer) Registry() *prom.Registry {
	if o == nil {
		return nil
	}
	return o.reg
}

// ObserveProbe implements table.Observer.
func (o *Observer) ObserveProbe(op table.Op, steps int) {
	if o == nil {
		return
	}
	o.probeLengths.WithLabelValues(string(op)).Observe(float64(steps))
}

// ObserveRehash implements table.Observer.
func (o *Observer) ObserveRehash(reason table.Reason, from, to, count int) {
	if o == nil {
		return
	}
	o.rehashes.WithLabelValues(string(reason)).Inc()
	o.rehashSlots.Observe(float64(to))
}

// Rehashes returns the number of rehashes seen for each reason.
func (o *Observer) Rehashes() (map[string]int, error) {
	out := map[string]int{}
	if o == nil {
		return out, nil
	}
	mfs, err := o.reg.Gather()
	if err != nil {
		return nil, err
	}
	want := prom.BuildFQName(namespace, "", "rehash_total")
	for _, mf := range mfs {
		if mf.GetName() != want {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "reason" {
					out[lp.GetValue()] += int(m.GetCounter().GetValue())
				}
			}
		}
	}
	return out, nil
}

// String summarizes the rehash counts, for logging.
func (o *Observer) String() string {
	r, err := o.Rehashes()
	if err != nil {
		return err.Error()
	}
	s := ""
	for _, reason := range []table.Reason{table.ReasonGrow, table.ReasonShrink, table.ReasonExplicit} {
		if s != "" {
			s += " "
		}
		s += string(reason) + "=" + strconv.Itoa(r[string(reason)])
	}
	return s
}
