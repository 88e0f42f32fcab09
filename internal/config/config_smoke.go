package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"dario.cat/mergo"
)

// ErrMissingSmokeAddress is returned when no API address is configured for
// the smoke client.
var ErrMissingSmokeAddress = errors.New("missing smoke client address")

// SmokeConfig holds the settings of the smoke client that exercises a running
// catalog API over HTTP.
type SmokeConfig struct {
	// Address is the base URL of the API, e.g. http://localhost:3000.
	// Env: SMOKE_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: SMOKE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

type smokeEnv struct {
	Smoke SmokeConfig `envPrefix:"SMOKE_"`
}

// GetSmokeConfig merges environment variables, flags (-a, -timeout) and
// defaults for the smoke client. Earlier sources win.
func GetSmokeConfig(args []string) (*SmokeConfig, error) {
	if err := loadDotenv(dotenvFiles...); err != nil {
		return nil, err
	}

	fromEnv, err := parseEnv[smokeEnv]()
	if err != nil {
		return nil, err
	}

	fromFlags, err := parseSmokeFlags(args)
	if err != nil {
		return nil, err
	}

	cfg := fromEnv.Smoke
	for _, src := range []SmokeConfig{*fromFlags, {RequestTimeout: 5 * time.Second}} {
		if err = mergo.Merge(&cfg, src); err != nil {
			return nil, fmt.Errorf("error merging smoke configs: %w", err)
		}
	}

	if cfg.Address == "" {
		return nil, fmt.Errorf("%w: set SMOKE_ADDRESS or -a", ErrMissingSmokeAddress)
	}
	return &cfg, nil
}

func parseSmokeFlags(args []string) (*SmokeConfig, error) {
	var cfg SmokeConfig

	fs := flag.NewFlagSet("catalog-smoke", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Address, "a", "", "API base URL")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", 0, "Request timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	return &cfg, nil
}
