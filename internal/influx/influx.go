// Package influx forwards counters to an InfluxDB-compatible endpoint using
// the line protocol.
package influx

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/maksimkurb/fios-stats/internal/errors"
)

const (
	// lineTemplate renders one integer metric in the InfluxDB line protocol.
	lineTemplate = "{{name}},host={{host}} value={{value}}i\n"

	// contentTypeJSON is the header the sink deployment has always received,
	// kept even though the body is line protocol rather than JSON.
	contentTypeJSON = "application/json;charset=UTF-8"
)

// Metric is a single named counter to emit.
type Metric struct {
	Name  string
	Value uint64
}

// HTTPClient interface for dependency injection in tests
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// BuildBody renders metrics as line protocol, one line per metric, in slice
// order.
func BuildBody(host string, metrics []Metric) string {
	t := fasttemplate.New(lineTemplate, "{{", "}}")

	var sb strings.Builder
	for _, metric := range metrics {
		sb.WriteString(t.ExecuteString(map[string]interface{}{
			"name":  metric.Name,
			"host":  host,
			"value": strconv.FormatUint(metric.Value, 10),
		}))
	}
	return sb.String()
}

// Pusher sends metrics to an InfluxDB-compatible write endpoint.
type Pusher struct {
	httpClient HTTPClient
	uri        string
	host       string
}

// NewPusher creates a pusher targeting uri. Every emitted line carries host
// as its host tag. If httpClient is nil, a default HTTP client is used.
func NewPusher(uri string, host string, httpClient HTTPClient) *Pusher {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Pusher{
		httpClient: httpClient,
		uri:        uri,
		host:       host,
	}
}

// Push submits the metrics in one request. The sink signals success with
// status 204; any other status fails the push.
func (p *Pusher) Push(metrics []Metric) error {
	body := BuildBody(p.host, metrics)

	req, err := http.NewRequest(http.MethodPost, p.uri, strings.NewReader(body))
	if err != nil {
		return errors.NewTransportError("failed to build sink request", err)
	}
	req.Header.Set("Content-Type", contentTypeJSON)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.NewTransportError("failed to push metrics to sink", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		return errors.New(errors.ErrCodeProtocol, fmt.Sprintf("sink rejected metrics with status code %d", resp.StatusCode))
	}

	return nil
}
