package ndslice

import "log/slog"

const (
	// DefaultBins is the per-dimension bin count used when neither explicit
	// edges nor bin counts are configured.
	DefaultBins = 100

	// DefaultMinRange is the span below which a data-derived range is
	// treated as degenerate.
	DefaultMinRange = 1e-12

	// DefaultDegenerateWidth is the span a degenerate range is widened to.
	DefaultDegenerateWidth = 1.0
)

type options struct {
	bins             int
	binsPerDim       []int
	edges            [][]float64
	minRange         float64
	degenerateWidth  float64
	parallelism      int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures slicer construction.
//
// Options are validated by the constructor; an invalid combination is
// reported there and never deferred to Setup.
type Option func(*options)

// WithBins sets the same bin count for every dimension.
func WithBins(n int) Option {
	return func(o *options) {
		o.bins = n
		o.binsPerDim = nil
	}
}

// WithBinsPerDimension sets one bin count per dimension, in dimension order.
func WithBinsPerDimension(n ...int) Option {
	return func(o *options) {
		o.binsPerDim = append([]int(nil), n...)
	}
}

// WithEdges sets explicit bin edges, one strictly increasing slice per
// dimension. Explicit edges take precedence over any bin count and are
// never recomputed from data.
//
// Example:
//
//	s, _ := ndslice.NewNDSlicer([]string{"x", "y"},
//	    ndslice.WithEdges(
//	        []float64{0, 0.5, 1},
//	        []float64{-1, 0, 1},
//	    ))
func WithEdges(edges ...[]float64) Option {
	return func(o *options) {
		o.edges = make([][]float64, len(edges))
		for i, e := range edges {
			o.edges[i] = append([]float64(nil), e...)
		}
	}
}

// WithMinRange sets the span floor below which a data-derived range is
// degenerate and gets widened.
func WithMinRange(minRange float64) Option {
	return func(o *options) {
		o.minRange = minRange
	}
}

// WithDegenerateWidth sets the span a degenerate range is widened to,
// centered on the range midpoint.
func WithDegenerateWidth(width float64) Option {
	return func(o *options) {
		o.degenerateWidth = width
	}
}

// WithParallelism sets how many row chunks are located concurrently during
// Setup. Results are identical to a serial setup. Values below 1 mean 1.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring setups
// and lookups. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &ndslice.BasicMetricsCollector{}
//	s, _ := ndslice.NewNDSlicer(dims, ndslice.WithMetricsCollector(metrics))
//	// ... setup and read bins ...
//	stats := metrics.GetStats()
//	fmt.Printf("Setups: %d, degenerate ranges: %d\n", stats.SetupCount, stats.DegenerateRanges)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for diagnostics.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := ndslice.NewJSONLogger(slog.LevelWarn)
//	s, _ := ndslice.NewNDSlicer(dims, ndslice.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		bins:             DefaultBins,
		minRange:         DefaultMinRange,
		degenerateWidth:  DefaultDegenerateWidth,
		parallelism:      1,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.parallelism < 1 {
		o.parallelism = 1
	}
	return o
}
