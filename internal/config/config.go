// Package config holds the runtime options of the fios-stats tool.
//
// Options come from two places: command line flags (collected into Options by
// the caller) and the process environment (EnvConfig). Validation runs after
// both are populated so the tool fails before touching the network.
package config

import (
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/maksimkurb/fios-stats/internal/errors"
	"github.com/maksimkurb/fios-stats/internal/validation"
)

// Options carries the per-invocation settings of the tool.
type Options struct {
	// Password authenticates against the gateway admin API.
	Password string `json:"password" validate:"required"`

	// Host is the hostname of the gateway device.
	Host string `json:"host" validate:"required,hostname_rfc1123"`

	// InfluxDB is the write endpoint of the metrics sink.
	// Empty disables forwarding.
	InfluxDB string `json:"influxdb" validate:"omitempty,url"`

	// Verbose enables debug logging.
	Verbose bool `json:"verbose"`
}

// Validate checks the options and returns a detailed error listing every
// violated field.
func (o *Options) Validate() error {
	return validation.Struct(o)
}

// EnvConfig carries settings read from the process environment.
type EnvConfig struct {
	// LogLevel selects the minimum logging level.
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
}

// ReadEnv populates an EnvConfig from the process environment.
func ReadEnv() (*EnvConfig, error) {
	var cfg EnvConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, "failed to read environment", err)
	}
	return &cfg, nil
}
