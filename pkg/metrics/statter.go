package metrics

import "time"

// Statter is the subset of a statsd client this library emits through. The
// testmetrics package provides a recording implementation.
type Statter interface {
	Inc(metric string, value int64, rate float32) error
	Gauge(metric string, value int64, rate float32) error
	TimingDuration(metric string, value time.Duration, rate float32) error
}
