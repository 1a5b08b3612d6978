package stats

import (
	"fmt"
	"io"

	"github.com/maksimkurb/fios-stats/internal/domain"
	"github.com/maksimkurb/fios-stats/internal/gateway"
	"github.com/maksimkurb/fios-stats/internal/influx"
	"github.com/maksimkurb/fios-stats/internal/log"
)

// Collector runs collection cycles against the gateway device.
type Collector struct {
	gatewayClient domain.GatewayClient
	metricWriter  domain.MetricWriter
	out           io.Writer
}

// NewCollector creates a new collector.
//
// metricWriter may be nil, which disables forwarding to the sink.
// The human-readable counter line is written to out.
func NewCollector(gatewayClient domain.GatewayClient, metricWriter domain.MetricWriter, out io.Writer) *Collector {
	return &Collector{
		gatewayClient: gatewayClient,
		metricWriter:  metricWriter,
		out:           out,
	}
}

// Collect performs one full collection cycle: login, fetch, print, forward,
// logout. Steps run strictly in this order and the first failing step aborts
// the cycle; no step is retried.
func (c *Collector) Collect(password string) error {
	session, err := c.gatewayClient.Login(password)
	if err != nil {
		return err
	}

	status, err := session.NetworkStatus()
	if err != nil {
		return err
	}

	sample := status.Sample()
	log.Debugf("Data fetched: rx=%d tx=%d errors=%d dropped=%d",
		sample.RxBits, sample.TxBits, sample.RxErrors, sample.RxDropped)

	fmt.Fprintf(c.out, "Data: rx = %d, tx = %d, errors = %d, dropped = %d\n",
		sample.RxBits, sample.TxBits, sample.RxErrors, sample.RxDropped)

	if c.metricWriter != nil {
		log.Debugf("Pushing metrics to sink")
		if err := c.metricWriter.Push(metricsFromSample(sample)); err != nil {
			return err
		}
	}

	// The session is closed even though the device would expire it on its
	// own; a failed logout still fails the cycle.
	return session.Logout()
}

// metricsFromSample maps a sample onto the forwarded series. The order is
// fixed so the sink receives a stable request body.
func metricsFromSample(sample *gateway.NetworkSample) []influx.Metric {
	// TODO: forward natEntriesUsed once the settings/system document is
	// wired into the session API.
	return []influx.Metric{
		{Name: "net_tx", Value: sample.TxBits},
		{Name: "net_rx", Value: sample.RxBits},
		{Name: "net_rx_errors", Value: sample.RxErrors},
		{Name: "net_rx_dropped", Value: sample.RxDropped},
	}
}
