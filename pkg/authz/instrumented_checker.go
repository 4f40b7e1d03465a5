package authz

import (
	"context"

	"code.cloudfoundry.org/clock"

	"github.com/Nynra/pyserver-tools/pkg/groupauth"
	"github.com/Nynra/pyserver-tools/pkg/logx"
	"github.com/Nynra/pyserver-tools/pkg/metrics"
)

const (
	MetricCheckAllowed = "groupauth.check.allowed"
	MetricCheckDenied  = "groupauth.check.denied"
	MetricCheckTiming  = "groupauth.check.timing"

	alwaysSendMetric = 1.0
)

// InstrumentedChecker wraps another checker and emits a counter per decision
// plus the evaluation duration.
type InstrumentedChecker struct {
	checker ActionChecker
	statter metrics.Statter
	clock   clock.Clock
}

func NewInstrumentedChecker(checker ActionChecker, statter metrics.Statter, c clock.Clock) *InstrumentedChecker {
	return &InstrumentedChecker{
		checker: checker,
		statter: statter,
		clock:   c,
	}
}

func (c *InstrumentedChecker) HasActionPermission(
	ctx context.Context,
	logger logx.Logger,
	user groupauth.User,
	action string,
	groups groupauth.ActionGroups,
) bool {
	start := c.clock.Now()
	allowed := c.checker.HasActionPermission(ctx, logger, user, action, groups)
	elapsed := c.clock.Since(start)

	metric := MetricCheckDenied
	if allowed {
		metric = MetricCheckAllowed
	}

	_ = c.statter.Inc(metric, 1, alwaysSendMetric)
	_ = c.statter.TimingDuration(MetricCheckTiming, elapsed, alwaysSendMetric)

	return allowed
}
