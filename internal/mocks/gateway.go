// Package mocks provides mock implementations for testing.
//
// This package should ONLY be imported in test files (_test.go).
// The Go toolchain will automatically exclude this package from production builds
// since it's not imported in any production code.
package mocks

import (
	"github.com/maksimkurb/fios-stats/internal/domain"
	"github.com/maksimkurb/fios-stats/internal/gateway"
)

// MockGatewayClient is a mock implementation of the GatewayClient interface.
//
// It allows tests to provide custom behavior through function fields.
// If a function field is nil, a sensible default implementation is used.
//
// Example usage:
//
//	mock := &MockGatewayClient{
//	    LoginFunc: func(password string) (domain.GatewaySession, error) {
//	        return nil, errors.New("device unreachable")
//	    },
//	}
//	session, err := mock.Login("secret")
type MockGatewayClient struct {
	// LoginFunc is called by Login if not nil
	LoginFunc func(password string) (domain.GatewaySession, error)
}

// Login authenticates against the gateway device.
//
// If LoginFunc is set, it calls that function.
// Otherwise, returns a default session with plausible counters.
func (m *MockGatewayClient) Login(password string) (domain.GatewaySession, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(password)
	}
	// Default: a session backed by the default status document
	return NewMockGatewaySession(), nil
}

// MockGatewaySession is a mock implementation of the GatewaySession interface.
//
// It allows tests to provide custom behavior through function fields.
// If a function field is nil, a sensible default implementation is used.
type MockGatewaySession struct {
	// NetworkStatusFunc is called by NetworkStatus if not nil
	NetworkStatusFunc func() (*gateway.NetworkStatus, error)

	// LogoutFunc is called by Logout if not nil
	LogoutFunc func() error
}

// NetworkStatus returns the network counters document.
//
// If NetworkStatusFunc is set, it calls that function.
// Otherwise, returns a fully populated document with non-zero traffic.
func (m *MockGatewaySession) NetworkStatus() (*gateway.NetworkStatus, error) {
	if m.NetworkStatusFunc != nil {
		return m.NetworkStatusFunc()
	}
	// Default: a document that passes schema validation
	rxErrors := uint64(0)
	rxDropped := uint64(0)
	return &gateway.NetworkStatus{
		Bandwidth: &gateway.Bandwidth{
			MinutesRx: []uint64{1250, 1100, 900},
			MinutesTx: []uint64{640, 580, 410},
		},
		RxErrors:  &rxErrors,
		RxDropped: &rxDropped,
	}, nil
}

// Logout ends the session.
//
// If LogoutFunc is set, it calls that function.
// Otherwise, succeeds silently.
func (m *MockGatewaySession) Logout() error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc()
	}
	return nil
}

// NewMockGatewayClient creates a new mock client with default behavior.
//
// This is a convenience constructor that returns a mock with sensible defaults.
// You can override individual methods by setting the function fields.
func NewMockGatewayClient() *MockGatewayClient {
	return &MockGatewayClient{}
}

// NewMockGatewayClientWithSession creates a mock client whose login always
// yields the specified session.
//
// This is a convenience constructor for tests that need to control session
// behavior.
func NewMockGatewayClientWithSession(session domain.GatewaySession) *MockGatewayClient {
	return &MockGatewayClient{
		LoginFunc: func(password string) (domain.GatewaySession, error) {
			return session, nil
		},
	}
}

// NewMockGatewaySession creates a new mock session with default behavior.
func NewMockGatewaySession() *MockGatewaySession {
	return &MockGatewaySession{}
}

// NewMockGatewaySessionWithStatus creates a mock session that returns the
// specified status document.
//
// This is a convenience constructor for tests that need to control counter
// values.
func NewMockGatewaySessionWithStatus(status *gateway.NetworkStatus) *MockGatewaySession {
	return &MockGatewaySession{
		NetworkStatusFunc: func() (*gateway.NetworkStatus, error) {
			return status, nil
		},
	}
}
