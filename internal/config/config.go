// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"net/url"
	"strconv"
	"time"
)

// Environments recognised by [App.Env].
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// StructuredConfig is the top-level configuration container for the
// catalog API. It aggregates all sub-configurations and is populated by
// merging values from a .env file, environment variables, command-line
// flags, an optional JSON file and finally built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the running environment
	// and the version reported on the root endpoint.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database.
	Storage Storage

	// Server holds listening and shutdown settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Env selects error-detail verbosity and log level. Only
	// "development" exposes internal error messages to clients. Any other
	// value behaves as production.
	// Env: APP_ENV
	Env string `env:"ENV"`

	// Version is the semantic version string of the running application.
	// Exposed on the root endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// IsDevelopment reports whether the application runs in development mode.
func (a App) IsDevelopment() bool {
	return a.Env == EnvDevelopment
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection and pool settings for PostgreSQL.
type DB struct {
	// Host is the database server host name. Required.
	// Env: DB_HOST
	Host string `env:"HOST"`

	// Port is the database server port.
	// Env: DB_PORT
	Port int `env:"PORT"`

	// User is the database role used to connect. Required.
	// Env: DB_USER
	User string `env:"USER"`

	// Password is the password of User. May be empty.
	// Env: DB_PASSWORD
	Password string `env:"PASSWORD"`

	// Name is the database name. Required.
	// Env: DB_NAME
	Name string `env:"NAME"`

	// SSLMode is passed to the driver as sslmode.
	// Env: DB_SSL_MODE
	SSLMode string `env:"SSL_MODE"`

	// MaxOpenConns is the fixed size of the connection pool.
	// Env: DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`

	// ConnectTimeout bounds the initial dial and ping.
	// Env: DB_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`

	// StatsInterval is how often connection pool statistics are logged.
	// A negative value turns the pool statistics log off. Zero means unset
	// and falls back to the default.
	// Env: DB_STATS_INTERVAL
	StatsInterval time.Duration `env:"STATS_INTERVAL"`
}

// DSN renders the settings as a postgres:// connection URL understood by
// pgx. The password is omitted when empty.
func (d DB) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:   "/" + d.Name,
	}
	if d.Password != "" {
		u.User = url.UserPassword(d.User, d.Password)
	} else {
		u.User = url.User(d.User)
	}

	q := url.Values{}
	if d.SSLMode != "" {
		q.Set("sslmode", d.SSLMode)
	}
	if d.ConnectTimeout > 0 {
		q.Set("connect_timeout", strconv.Itoa(int(d.ConnectTimeout.Seconds())))
	}
	u.RawQuery = q.Encode()

	return u.String()
}

// Server holds settings for the inbound HTTP transport.
type Server struct {
	// Port is the TCP port the HTTP server listens on.
	// Env: SERVER_PORT
	Port int `env:"PORT"`

	// ShutdownTimeout bounds graceful shutdown of in-flight requests.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// CORSOrigins lists allowed origins; "*" allows any.
	// Env: SERVER_CORS_ORIGINS (comma separated)
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
}

// defaultConfig holds the values applied to every field left empty by all
// other sources.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Env:     EnvProduction,
			Version: "1.0.0",
		},
		Storage: Storage{
			DB: DB{
				Port:           5432,
				SSLMode:        "disable",
				MaxOpenConns:   10,
				ConnectTimeout: 10 * time.Second,
				StatsInterval:  time.Minute,
			},
		},
		Server: Server{
			Port:            3000,
			ShutdownTimeout: 10 * time.Second,
			CORSOrigins:     []string{"*"},
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (the first source that sets a field wins):
//  1. Environment variables (including values loaded from .env)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotenv().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
