package statsdx

import (
	"time"

	"github.com/cactus/go-statsd-client/statsd"

	"github.com/Nynra/pyserver-tools/pkg/logx"
)

const failureMessage = "failed-to-send-metric"

// Client is the slice of a statsd client this adapter forwards to.
type Client interface {
	Inc(metric string, value int64, rate float32) error
	Gauge(metric string, value int64, rate float32) error
	TimingDuration(metric string, value time.Duration, rate float32) error
}

var _ Client = statsd.Statter(nil)

// Statter forwards to a statsd client and logs send failures instead of
// surfacing them; metric emission must never fail an authorization call.
type Statter struct {
	statsdClient Client
	logger       logx.Logger
}

func NewStatter(logger logx.Logger, statsdClient Client) *Statter {
	return &Statter{
		statsdClient: statsdClient,
		logger:       logger,
	}
}

func (s *Statter) Inc(metric string, value int64, rate float32) error {
	if err := s.statsdClient.Inc(metric, value, rate); err != nil {
		s.logError(metric, value, err)
	}
	return nil
}

func (s *Statter) Gauge(metric string, value int64, rate float32) error {
	if err := s.statsdClient.Gauge(metric, value, rate); err != nil {
		s.logError(metric, value, err)
	}
	return nil
}

func (s *Statter) TimingDuration(metric string, value time.Duration, rate float32) error {
	if err := s.statsdClient.TimingDuration(metric, value, rate); err != nil {
		s.logError(metric, int64(value), err)
	}
	return nil
}

func (s *Statter) logError(metric string, value int64, err error) {
	s.logger.Error(failureMessage, err, logx.Data{
		Key:   "metric",
		Value: metric,
	}, logx.Data{
		Key:   "value",
		Value: value,
	})
}
