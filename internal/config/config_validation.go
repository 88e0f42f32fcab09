// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The database host, user and name have no defaults and must come from one
// of the sources. Every missing variable is reported in a single error.
func (cfg *StructuredConfig) validate() error {
	var missing []string
	if cfg.Storage.DB.Host == "" {
		missing = append(missing, "DB_HOST")
	}
	if cfg.Storage.DB.User == "" {
		missing = append(missing, "DB_USER")
	}
	if cfg.Storage.DB.Name == "" {
		missing = append(missing, "DB_NAME")
	}

	var err error
	if len(missing) > 0 {
		err = fmt.Errorf("%w: %s", ErrMissingDBConfigs, strings.Join(missing, ", "))
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 || cfg.Storage.DB.Port <= 0 || cfg.Storage.DB.Port > 65535 {
		err = errors.Join(err, ErrInvalidPort)
	}

	return err
}
