// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_ENV":     "development",
		"APP_VERSION": "2.1.0",

		"SERVER_PORT":             "8080",
		"SERVER_SHUTDOWN_TIMEOUT": "5s",
		"SERVER_CORS_ORIGINS":     "http://a.test,http://b.test",

		"DB_HOST":            "db.internal",
		"DB_PORT":            "6543",
		"DB_USER":            "catalog",
		"DB_PASSWORD":        "secret",
		"DB_NAME":            "shop",
		"DB_SSL_MODE":        "require",
		"DB_MAX_OPEN_CONNS":  "25",
		"DB_CONNECT_TIMEOUT": "3s",
		"DB_STATS_INTERVAL":  "30s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg, err := parseEnv[StructuredConfig]()

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "2.1.0", cfg.App.Version)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CORSOrigins)

	assert.Equal(t, "db.internal", cfg.Storage.DB.Host)
	assert.Equal(t, 6543, cfg.Storage.DB.Port)
	assert.Equal(t, "catalog", cfg.Storage.DB.User)
	assert.Equal(t, "secret", cfg.Storage.DB.Password)
	assert.Equal(t, "shop", cfg.Storage.DB.Name)
	assert.Equal(t, "require", cfg.Storage.DB.SSLMode)
	assert.Equal(t, 25, cfg.Storage.DB.MaxOpenConns)
	assert.Equal(t, 3*time.Second, cfg.Storage.DB.ConnectTimeout)
	assert.Equal(t, 30*time.Second, cfg.Storage.DB.StatsInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"DB_HOST":     "localhost",
		"SERVER_PORT": "3001",
	}
	setEnvVars(t, envVars)

	// Act
	cfg, err := parseEnv[StructuredConfig]()

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Storage.DB.Host)
	assert.Equal(t, 3001, cfg.Server.Port)

	// Others untouched
	assert.Empty(t, cfg.Storage.DB.User)
	assert.Empty(t, cfg.Storage.DB.Name)
	assert.Zero(t, cfg.Storage.DB.Port)
	assert.Empty(t, cfg.App.Env)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg, err := parseEnv[StructuredConfig]()

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "", cfg.JSONFilePath)
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Server{}, cfg.Server)
	assert.Equal(t, Storage{}, cfg.Storage)
}

func TestParseEnv_InvalidPort(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{"DB_PORT": "not-a-port"})

	// Act
	cfg, err := parseEnv[StructuredConfig]()

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"minutes", "2m", 2 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1m30s", 90 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			setEnvVars(t, map[string]string{"SERVER_SHUTDOWN_TIMEOUT": tt.envValue})

			// Act
			cfg, err := parseEnv[StructuredConfig]()

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Server.ShutdownTimeout)
		})
	}
}

// Helpers

var configEnvKeys = []string{
	"CONFIG",

	"APP_ENV",
	"APP_VERSION",

	"SERVER_PORT",
	"SERVER_SHUTDOWN_TIMEOUT",
	"SERVER_CORS_ORIGINS",

	"DB_HOST",
	"DB_PORT",
	"DB_USER",
	"DB_PASSWORD",
	"DB_NAME",
	"DB_SSL_MODE",
	"DB_MAX_OPEN_CONNS",
	"DB_CONNECT_TIMEOUT",
	"DB_STATS_INTERVAL",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars unsets every variable read by the config package for the
// duration of the test and restores the previous values afterwards.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		if prev, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { _ = os.Setenv(k, prev) })
		}
		_ = os.Unsetenv(k)
	}
}
