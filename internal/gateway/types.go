package gateway

// LoginChallenge is the state the gateway issues before authentication.
//
// Only PasswordSalt drives the handshake. The remaining fields describe
// device state (setup wizard, mesh, login lockout) and are parsed but never
// acted on.
type LoginChallenge struct {
	DoSetupWizard            bool   `json:"doSetupWizard"`
	RequirePassword          bool   `json:"requirePassword"`
	PasswordSalt             string `json:"passwordSalt"`
	IsWireless               bool   `json:"isWireless"`
	Error                    uint8  `json:"error"`
	MaxUsers                 uint8  `json:"maxUsers"`
	DenyState                uint8  `json:"denyState"`
	DenyTimeout              uint8  `json:"denyTimeout"`
	MeshNetworkEnabledStatus bool   `json:"meshNetworkEnabledStatus"`
	MeshUserEnabledConfig    bool   `json:"meshUserEnabledConfig"`
}

// SessionCredential is the result of a successful login: the anti-forgery
// token and the numeric session identifier, both issued as cookies. Login
// never returns a credential with either field missing.
type SessionCredential struct {
	XSRFToken string
	SessionID uint32
}

// NetworkStatus is the slice of the network counters document the
// application consumes. Counter fields are pointers so that an absent field
// fails validation instead of silently reading as zero.
type NetworkStatus struct {
	Bandwidth *Bandwidth `json:"bandwidth" validate:"required"`
	RxErrors  *uint64    `json:"rxErrors" validate:"required"`
	RxDropped *uint64    `json:"rxDropped" validate:"required"`
}

// Bandwidth carries per-minute byte counters, most recent minute first.
type Bandwidth struct {
	MinutesRx []uint64 `json:"minutesRx" validate:"required,min=1"`
	MinutesTx []uint64 `json:"minutesTx" validate:"required,min=1"`
}

// NetworkSample is one run's worth of counters, converted to bits.
type NetworkSample struct {
	RxBits    uint64
	TxBits    uint64
	RxErrors  uint64
	RxDropped uint64
}
