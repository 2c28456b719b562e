package hasharray

import (
	"log/slog"
)

// RandomSource draws uniform integers in [0, n).
//
// *math/rand/v2.Rand and *testutil.RNG satisfy it.
type RandomSource interface {
	IntN(n int) int
}

type options struct {
	ignoreDuplicates bool
	observer         any
	metricsCollector MetricsCollector
	logger           *Logger
	random           RandomSource
	resolveWorkers   int
}

// Option configures Collection construction and cloning.
//
// Clone and CloneEmpty start from the source collection's configuration and
// apply the given options on top.
type Option func(*options)

// WithIgnoreDuplicates rejects any item whose key values collide with keys
// already in the index. The first inserted item wins; the later item is
// silently dropped as a whole.
func WithIgnoreDuplicates() Option {
	return func(o *options) {
		o.ignoreDuplicates = true
	}
}

// WithMultimap restores the default policy where colliding items share a
// bucket. Useful when cloning a collection configured WithIgnoreDuplicates.
func WithMultimap() Option {
	return func(o *options) {
		o.ignoreDuplicates = false
	}
}

// WithObserver registers a mutation observer. Pass nil to clear an observer
// inherited by Clone.
//
// The observer type must match the collection's item type, otherwise New
// fails with ErrObserverType.
func WithObserver[T comparable](fn Observer[T]) Option {
	return func(o *options) {
		// A nil Observer[T] stored in an interface is not a nil interface.
		if fn == nil {
			o.observer = nil
			return
		}
		o.observer = fn
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &hasharray.BasicMetricsCollector{}
//	ha, _ := hasharray.New[*Order](keypath.Fields("id"), hasharray.WithMetricsCollector(metrics))
//	// ... use ha ...
//	stats := metrics.GetStats()
//	fmt.Printf("Adds: %d, Rejected: %d\n", stats.AddCalls, stats.ItemsRejected)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := hasharray.NewJSONLogger(slog.LevelDebug)
//	ha, _ := hasharray.New[*Order](keypath.Fields("id"), hasharray.WithLogger(logger))
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

// WithRandom sets the source used by Sample. Defaults to a randomly seeded
// math/rand/v2 generator.
func WithRandom(r RandomSource) Option {
	return func(o *options) {
		o.random = r
	}
}

// WithResolveWorkers resolves key paths of large AddAll batches on up to n
// goroutines before applying them in order. n <= 1 disables it.
//
// Key resolution must then be free of side effects, which holds for plain
// maps and structs and is required of Fielder implementations.
func WithResolveWorkers(n int) Option {
	return func(o *options) {
		o.resolveWorkers = n
	}
}

func applyOptions(base options, optFns []Option) options {
	o := base
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
