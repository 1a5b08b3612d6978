package domain

import (
	"github.com/maksimkurb/fios-stats/internal/gateway"
	"github.com/maksimkurb/fios-stats/internal/influx"
)

// AppDependencies is a dependency injection container that holds all application dependencies.
//
// This container provides a centralized place to manage dependencies and enables:
//   - Easy testing with mock implementations
//   - Configuration-driven dependency creation
//   - Explicit dependency management instead of global state
//
// Usage:
//
//	deps := domain.NewAppDependencies(domain.AppConfig{
//	    GatewayHost: "myfiosgateway.com",
//	})
//	client := deps.GatewayClient()
type AppDependencies struct {
	gatewayClient GatewayClient
	metricWriter  MetricWriter
}

// AppConfig holds configuration for creating application dependencies.
type AppConfig struct {
	// GatewayHost is the hostname of the gateway device.
	// If empty, defaults to the well-known device hostname.
	GatewayHost string

	// InfluxDBURI is the write endpoint of the metrics sink.
	// If empty, metric forwarding is disabled entirely.
	InfluxDBURI string
}

// NewAppDependencies creates a new dependency container with production implementations.
//
// This factory method creates real implementations of all interfaces using the
// provided configuration. The device client and the sink writer share one
// TLS-permissive HTTP client. For testing, use NewTestDependencies or inject
// mocks directly.
func NewAppDependencies(cfg AppConfig) *AppDependencies {
	host := cfg.GatewayHost
	if host == "" {
		host = gateway.DefaultHost
	}

	httpClient := gateway.NewInsecureHTTPClient()

	var metricWriter MetricWriter
	if cfg.InfluxDBURI != "" {
		metricWriter = influx.NewPusher(cfg.InfluxDBURI, host, httpClient)
	}

	return &AppDependencies{
		gatewayClient: &deviceClient{client: gateway.NewClient(host, httpClient)},
		metricWriter:  metricWriter,
	}
}

// NewDefaultDependencies creates dependencies using default configuration.
//
// This is equivalent to NewAppDependencies(AppConfig{}) and targets the
// gateway at its well-known hostname with forwarding disabled.
func NewDefaultDependencies() *AppDependencies {
	return NewAppDependencies(AppConfig{})
}

// NewTestDependencies creates a dependency container with mock implementations.
//
// This is a convenience method for testing. Provide mock implementations for
// any dependencies you want to control in your tests.
func NewTestDependencies(gatewayClient GatewayClient, metricWriter MetricWriter) *AppDependencies {
	return &AppDependencies{
		gatewayClient: gatewayClient,
		metricWriter:  metricWriter,
	}
}

// GatewayClient returns the gateway API client.
func (d *AppDependencies) GatewayClient() GatewayClient {
	return d.gatewayClient
}

// MetricWriter returns the metrics sink writer, or nil when forwarding is
// disabled.
func (d *AppDependencies) MetricWriter() MetricWriter {
	return d.metricWriter
}

// deviceClient adapts the concrete gateway client to the GatewayClient
// interface by pairing each login with its authenticated session.
type deviceClient struct {
	client *gateway.Client
}

func (d *deviceClient) Login(password string) (GatewaySession, error) {
	credential, err := d.client.Login(password)
	if err != nil {
		return nil, err
	}
	return gateway.NewAuthClient(d.client, credential), nil
}
