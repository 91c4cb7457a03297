package molfp

import (
	"maps"

	"github.com/hupe1980/molfp/toolkit"
)

type options struct {
	fpType      Type
	asArray     bool
	foldSize    int
	params      toolkit.Params
	tk          toolkit.Toolkit
	logger      *Logger
	metrics     MetricsCollector
	concurrency int
}

func defaultOptions() *options {
	return &options{
		fpType:  TypeECFP,
		asArray: true,
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
}

func applyOptions(optFns []Option) *options {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(o)
	}
	return o
}

// Option configures a fingerprint computation.
type Option func(*options)

// WithType selects the fingerprint tag. The default is TypeECFP.
func WithType(t Type) Option {
	return func(o *options) {
		o.fpType = t
	}
}

// WithFoldSize folds the result to the given width. The returned value is
// always a dense array in this case, regardless of WithNativeOutput.
func WithFoldSize(dim int) Option {
	return func(o *options) {
		o.foldSize = dim
	}
}

// WithNativeOutput returns the toolkit's native representation instead of
// normalizing to a dense array.
func WithNativeOutput() Option {
	return func(o *options) {
		o.asArray = false
	}
}

// WithParam overrides a single algorithm parameter. Every default key left
// untouched keeps its curated value.
func WithParam(key string, value any) Option {
	return func(o *options) {
		if o.params == nil {
			o.params = toolkit.Params{}
		}
		o.params[key] = value
	}
}

// WithParams overrides algorithm parameters per key. The map is copied;
// later WithParam/WithParams options win on conflicting keys.
func WithParams(params toolkit.Params) Option {
	return func(o *options) {
		if o.params == nil {
			o.params = make(toolkit.Params, len(params))
		}
		maps.Copy(o.params, params)
	}
}

// WithToolkit injects the toolkit binding to use for this call instead of
// the registered default.
func WithToolkit(tk toolkit.Toolkit) Option {
	return func(o *options) {
		o.tk = tk
	}
}

// WithLogger configures structured logging for compute and batch calls.
//
// If nil is passed, logging stays disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetrics configures a metrics collector.
//
// If nil is passed, metrics stay disabled.
func WithMetrics(collector MetricsCollector) Option {
	return func(o *options) {
		if collector == nil {
			collector = NoopMetricsCollector{}
		}
		o.metrics = collector
	}
}

// WithConcurrency bounds the number of concurrent computations in batch
// calls. Values below one fall back to GOMAXPROCS. Single computations
// ignore it.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}
