// Package domain defines core interfaces for dependency injection and abstraction.
//
// This package contains the fundamental interfaces that enable loose coupling between
// components and facilitate testing through dependency injection.
package domain

import (
	"github.com/maksimkurb/fios-stats/internal/gateway"
	"github.com/maksimkurb/fios-stats/internal/influx"
)

// GatewaySession is an authenticated session with the gateway device.
//
// Sessions are produced by GatewayClient.Login and remain valid until Logout;
// the device offers no refresh, so an expired session simply fails.
type GatewaySession interface {
	// NetworkStatus retrieves and validates the network counters document.
	NetworkStatus() (*gateway.NetworkStatus, error)

	// Logout ends the session on the device.
	Logout() error
}

// GatewayClient negotiates authenticated sessions with the gateway device.
//
// This interface abstracts the gateway API client, allowing for easy mocking
// in tests.
type GatewayClient interface {
	// Login performs the salted-hash login handshake and returns an
	// authenticated session.
	Login(password string) (GatewaySession, error)
}

// MetricWriter forwards collected counters to a time-series sink.
type MetricWriter interface {
	// Push submits the metrics in one request.
	Push(metrics []influx.Metric) error
}
