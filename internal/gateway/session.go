package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/maksimkurb/fios-stats/internal/errors"
	"github.com/maksimkurb/fios-stats/internal/hashing"
	"github.com/maksimkurb/fios-stats/internal/log"
)

// loginRequest is the body of the login POST.
type loginRequest struct {
	Password string `json:"password"`
}

// Login performs the two-step login handshake and returns the session
// credential extracted from the response cookies.
//
// The handshake fetches the challenge, derives the SHA-512 hash of the
// password with the issued salt, and submits the hash. A response status
// other than 200 is an authentication failure and the body is not read.
// A 200 response missing either session cookie is also an authentication
// failure: the gateway did not actually establish a session.
func (c *Client) Login(password string) (*SessionCredential, error) {
	log.Debugf("Fetching login challenge")
	challenge, err := c.FetchChallenge()
	if err != nil {
		return nil, err
	}

	hash := hashing.PasswordDigest(password, challenge.PasswordSalt)

	body, err := json.Marshal(loginRequest{Password: hash})
	if err != nil {
		return nil, errors.NewParseError("failed to encode login request", err)
	}

	log.Debugf("Logging in")
	req, err := http.NewRequest(http.MethodPost, c.baseURL+loginEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.NewTransportError("failed to build login request", err)
	}
	req.Header.Set("Content-Type", contentTypeJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewTransportError("failed to submit login", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(errors.ErrCodeAuth, fmt.Sprintf("login rejected with status code %d", resp.StatusCode))
	}

	return credentialFromCookies(resp.Cookies())
}

// credentialFromCookies extracts the session credential from the login
// response cookies. Cookies other than XSRF-TOKEN and Session are ignored.
func credentialFromCookies(cookies []*http.Cookie) (*SessionCredential, error) {
	credential := &SessionCredential{}
	haveToken := false
	haveSession := false

	for _, cookie := range cookies {
		switch cookie.Name {
		case xsrfCookieName:
			credential.XSRFToken = cookie.Value
			haveToken = true
		case sessionCookieName:
			id, err := strconv.ParseUint(cookie.Value, 10, 32)
			if err != nil {
				return nil, errors.NewParseError(fmt.Sprintf("failed to parse %s cookie value %q", sessionCookieName, cookie.Value), err)
			}
			credential.SessionID = uint32(id)
			haveSession = true
		}
	}

	if !haveToken {
		return nil, errors.New(errors.ErrCodeAuth, fmt.Sprintf("login response is missing the %s cookie", xsrfCookieName))
	}
	if !haveSession {
		return nil, errors.New(errors.ErrCodeAuth, fmt.Sprintf("login response is missing the %s cookie", sessionCookieName))
	}

	return credential, nil
}
