package gateway

import (
	"encoding/json"

	"github.com/maksimkurb/fios-stats/internal/errors"
	"github.com/maksimkurb/fios-stats/internal/log"
	"github.com/maksimkurb/fios-stats/internal/validation"
)

// NetworkStatus retrieves the network counters document and validates it
// against the expected schema. Missing or malformed fields fail the call;
// there is no zero-fill for absent counters.
func (a *AuthClient) NetworkStatus() (*NetworkStatus, error) {
	log.Debugf("Fetching network status")
	body, err := a.Get(networkEndpoint)
	if err != nil {
		return nil, err
	}

	var status NetworkStatus
	if err := json.Unmarshal(body, &status); err != nil {
		return nil, errors.NewParseError("failed to unmarshal network status", err)
	}

	if err := validation.Struct(&status); err != nil {
		return nil, errors.NewParseError("network status is missing required fields", err)
	}

	return &status, nil
}

// Sample converts the most recent minute of counters from bytes to bits.
//
// The receiver must have passed schema validation: NetworkStatus only
// returns documents where the bandwidth slices are non-empty and the
// counter fields are present.
func (s *NetworkStatus) Sample() *NetworkSample {
	return &NetworkSample{
		RxBits:    s.Bandwidth.MinutesRx[0] * 8,
		TxBits:    s.Bandwidth.MinutesTx[0] * 8,
		RxErrors:  *s.RxErrors * 8,
		RxDropped: *s.RxDropped * 8,
	}
}
