// SPDX-License-Identifier: MIT

// File: options.go - functional configuration for Build.
//
// Safe by construction: With* constructors panic on nonsensical values
// (programmer error); unknown field names are data and fail Build instead.

package catalog

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/ppvstat/metadata"
	"github.com/katalvlaran/ppvstat/moments"
	"github.com/katalvlaran/ppvstat/ppv"
)

// DefaultWorkers processes structures sequentially.
const DefaultWorkers = 1

// Option configures Build.
type Option func(*options)

type options struct {
	fields  []string
	schema  metadata.Schema
	logger  logrus.FieldLogger
	workers int
	moments []moments.Option
}

func defaultOptions() options {
	return options{
		fields:  ppv.DefaultFields(),
		schema:  ppv.Schema(),
		logger:  logrus.StandardLogger(),
		workers: DefaultWorkers,
	}
}

// WithFields selects the quantities to compute, in column order of the rows.
// An empty list keeps the default set.
func WithFields(names ...string) Option {
	return func(o *options) {
		if len(names) > 0 {
			o.fields = append([]string(nil), names...)
		}
	}
}

// WithSchema replaces the metadata schema used for validation and lookup.
func WithSchema(s metadata.Schema) Option {
	return func(o *options) { o.schema = s }
}

// WithLogger sets the logger for metadata warnings and per-row debug output.
// Panics if l is nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("catalog: WithLogger requires a non-nil logger")
	}

	return func(o *options) { o.logger = l }
}

// WithWorkers bounds the number of structures processed concurrently.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("catalog: WithWorkers requires n >= 1")
	}

	return func(o *options) { o.workers = n }
}

// WithMomentOptions forwards opts to moments.New for every structure,
// e.g. moments.WithEigenMaxIter to change the eigen solver budget.
func WithMomentOptions(opts ...moments.Option) Option {
	return func(o *options) { o.moments = append(o.moments, opts...) }
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
