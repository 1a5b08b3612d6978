package gateway

import (
	"fmt"
	"io"
	"net/http"

	"github.com/maksimkurb/fios-stats/internal/errors"
	"github.com/maksimkurb/fios-stats/internal/log"
)

// AuthClient performs authenticated requests against the gateway API.
//
// Every request carries the X-XSRF-TOKEN header and the Session cookie from
// the credential supplied at construction. The pair is fixed for the
// lifetime of the value and never renegotiated.
type AuthClient struct {
	httpClient    HTTPClient
	baseURL       string
	xsrfToken     string
	sessionCookie string
}

// NewAuthClient creates an authenticated client from a negotiated
// credential, reusing the transport of the client that performed the login.
func NewAuthClient(c *Client, credential *SessionCredential) *AuthClient {
	return &AuthClient{
		httpClient:    c.httpClient,
		baseURL:       c.baseURL,
		xsrfToken:     credential.XSRFToken,
		sessionCookie: fmt.Sprintf("%s=%d;", sessionCookieName, credential.SessionID),
	}
}

// Get performs an authenticated GET and returns the raw response body.
//
// The HTTP status is not interpreted here: callers that care about it
// inspect the payload themselves.
func (a *AuthClient) Get(endpoint string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, a.baseURL+endpoint, nil)
	if err != nil {
		return nil, errors.NewTransportError(fmt.Sprintf("failed to build request for %s", endpoint), err)
	}
	a.decorate(req)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewTransportError(fmt.Sprintf("failed to fetch %s", endpoint), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewTransportError("failed to read response body", err)
	}

	return body, nil
}

// Logout ends the session on the gateway. The response body is ignored.
func (a *AuthClient) Logout() error {
	log.Debugf("Logging out")
	_, err := a.Get(logoutEndpoint)
	return err
}

// decorate attaches the session header and cookie pair to a request.
func (a *AuthClient) decorate(req *http.Request) {
	req.Header.Set(xsrfHeader, a.xsrfToken)
	req.Header.Set("Cookie", a.sessionCookie)
}
