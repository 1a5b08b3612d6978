package gateway

import (
	"crypto/tls"
	"net/http"
)

const (
	// DefaultHost is the LAN hostname the gateway registers for itself.
	DefaultHost = "myfiosgateway.com"

	// contentTypeJSON is the content type the gateway firmware expects on
	// every POST, charset spelling included.
	contentTypeJSON = "application/json;charset=UTF-8"

	xsrfHeader        = "X-XSRF-TOKEN"
	xsrfCookieName    = "XSRF-TOKEN"
	sessionCookieName = "Session"

	loginEndpoint   = "login"
	logoutEndpoint  = "logout"
	networkEndpoint = "network/1"
)

// HTTPClient interface for dependency injection in tests
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewInsecureHTTPClient returns the HTTP client used for gateway traffic.
//
// The device presents a self-signed certificate, so certificate verification
// is disabled on purpose. No timeout is configured: the tool runs a single
// operator-invoked cycle and a hung call is left to the operator.
func NewInsecureHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: true,
			},
		},
	}
}
