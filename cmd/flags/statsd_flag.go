package flags

import (
	"net"
	"strconv"

	"github.com/cactus/go-statsd-client/statsd"

	"github.com/Nynra/pyserver-tools/pkg/logx"
	"github.com/Nynra/pyserver-tools/pkg/metrics/statsdx"
)

// StatsDFlag is the optional StatsD target of a command. Metrics are only
// emitted when a hostname was given.
type StatsDFlag struct {
	Hostname string `long:"hostname" description:"Hostname used to connect to StatsD server"`
	Port     int    `long:"port" default:"8125" description:"Port used to connect to StatsD server"`
}

func (f StatsDFlag) Configured() bool {
	return f.Hostname != ""
}

// Connect builds a buffered statsd client and wraps it in the logging
// statter. The returned func closes the client.
func (f StatsDFlag) Connect(logger logx.Logger) (*statsdx.Statter, func() error, error) {
	addr := net.JoinHostPort(f.Hostname, strconv.Itoa(f.Port))

	client, err := statsd.NewBufferedClient(addr, "", 0, 0)
	if err != nil {
		logger.Error(failedToConnectToStatsD, err, logx.Data{
			Key:   "addr",
			Value: addr,
		})
		return nil, nil, err
	}

	return statsdx.NewStatter(logger, client), client.Close, nil
}
