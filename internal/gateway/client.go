package gateway

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/maksimkurb/fios-stats/internal/errors"
)

// Client is the unauthenticated client for the gateway admin API.
//
// It performs the login handshake; authenticated requests go through
// AuthClient, constructed from the credential Login returns.
type Client struct {
	httpClient HTTPClient
	baseURL    string
}

// NewClient creates a client for the gateway reachable at host.
//
// The API base URL is derived as https://<host>/api/. If httpClient is nil,
// a client accepting the gateway's self-signed certificate is used.
func NewClient(host string, httpClient HTTPClient) *Client {
	return NewClientWithBaseURL("https://"+host+"/api/", httpClient)
}

// NewClientWithBaseURL creates a client with a custom API base URL.
//
// This is useful for testing with mock servers.
//
// Example:
//
//	client := gateway.NewClientWithBaseURL(server.URL+"/api/", nil)
func NewClientWithBaseURL(baseURL string, httpClient HTTPClient) *Client {
	if httpClient == nil {
		httpClient = NewInsecureHTTPClient()
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

// fetchAndDeserializeForClient is a generic helper to fetch and deserialize JSON from the API.
func fetchAndDeserializeForClient[T any](c *Client, endpoint string) (T, error) {
	var result T

	req, err := http.NewRequest(http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return result, errors.NewTransportError(fmt.Sprintf("failed to build request for %s", endpoint), err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return result, errors.NewTransportError(fmt.Sprintf("failed to fetch %s", endpoint), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return result, errors.New(errors.ErrCodeProtocol, fmt.Sprintf("unexpected status code %d for %s", resp.StatusCode, endpoint))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return result, errors.NewTransportError("failed to read response body", err)
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return result, errors.NewParseError(fmt.Sprintf("failed to unmarshal %s response", endpoint), err)
	}

	return result, nil
}

// FetchChallenge retrieves the login challenge the gateway issues before
// credentials are submitted.
func (c *Client) FetchChallenge() (*LoginChallenge, error) {
	challenge, err := fetchAndDeserializeForClient[LoginChallenge](c, loginEndpoint)
	if err != nil {
		return nil, err
	}
	return &challenge, nil
}
