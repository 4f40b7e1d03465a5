package statsdx_test

import (
	"errors"
	"time"

	"code.cloudfoundry.org/lager/lagertest"
	"github.com/cactus/go-statsd-client/statsd"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/Nynra/pyserver-tools/pkg/logx/lagerx"
	. "github.com/Nynra/pyserver-tools/pkg/metrics/statsdx"
)

type failingClient struct {
	err error
}

func (c *failingClient) Inc(metric string, value int64, rate float32) error {
	return c.err
}

func (c *failingClient) Gauge(metric string, value int64, rate float32) error {
	return c.err
}

func (c *failingClient) TimingDuration(metric string, value time.Duration, rate float32) error {
	return c.err
}

var _ = Describe("Statter", func() {
	var testLogger *lagertest.TestLogger

	BeforeEach(func() {
		testLogger = lagertest.NewTestLogger("statsdx-test")
	})

	It("forwards metrics to the statsd client", func() {
		client, err := statsd.NewNoopClient()
		Expect(err).NotTo(HaveOccurred())

		subject := NewStatter(lagerx.NewLogger(testLogger), client)

		Expect(subject.Inc("some.counter", 1, 1.0)).To(Succeed())
		Expect(subject.Gauge("some.gauge", 42, 1.0)).To(Succeed())
		Expect(subject.TimingDuration("some.timer", time.Second, 1.0)).To(Succeed())
	})

	Context("when the statsd client fails", func() {
		var subject *Statter

		BeforeEach(func() {
			subject = NewStatter(lagerx.NewLogger(testLogger), &failingClient{
				err: errors.New("socket closed"),
			})
		})

		It("swallows the failure", func() {
			Expect(subject.Inc("some.counter", 1, 1.0)).To(Succeed())
			Expect(subject.Gauge("some.gauge", 42, 1.0)).To(Succeed())
			Expect(subject.TimingDuration("some.timer", time.Second, 1.0)).To(Succeed())
		})

		It("logs the failure with the metric name", func() {
			Expect(subject.Inc("some.counter", 1, 1.0)).To(Succeed())

			Expect(testLogger.Buffer()).To(gbytes.Say("failed-to-send-metric"))
			Expect(testLogger.Buffer()).To(gbytes.Say("some.counter"))
		})
	})
})
