package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-catalog-api/internal/config"
	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/migrations"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

// DB is the process-wide connection pool shared by all repositories.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectPostgres opens the pool, pings the server and bootstraps the
// schema. Any failure is returned; the caller treats it as fatal.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// parse connection settings
	connConfig, err := pgx.ParseConfig(cfg.DSN())
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error parsing database config")
		return nil, fmt.Errorf("error parsing database config: %w", err)
	}

	conn := stdlib.OpenDB(*connConfig)

	// setup connections
	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxOpenConns)

	// ping database
	pingCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}
	if err = conn.PingContext(pingCtx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "NewConnectPostgres").
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Name).
		Msg("connected to database successfully")

	db := &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}

	if err = db.Bootstrap(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

// NewDB wraps an already opened pool. Used by tests and tools that manage
// the connection themselves.
func NewDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}
}

// Bootstrap creates missing tables and logs the resulting table list.
func (db *DB) Bootstrap(ctx context.Context) error {
	if err := migrations.Bootstrap(ctx, db.DB); err != nil {
		db.logger.Err(err).Str("func", "*DB.Bootstrap").Msg("error bootstrapping schema")
		return err
	}

	tables, err := migrations.Tables(ctx, db.DB)
	if err != nil {
		db.logger.Err(err).Str("func", "*DB.Bootstrap").Msg("error listing tables")
		return err
	}
	db.logger.Info().Str("func", "*DB.Bootstrap").
		Str("tables", strings.Join(tables, ", ")).
		Msg("database schema is ready")

	return nil
}

// Close releases every pooled connection.
func (db *DB) Close() error {
	db.logger.Info().Str("func", "*DB.Close").Msg("closing database connection pool")
	return db.DB.Close()
}

func (db *DB) wrap(op string, err error) error {
	return db.errorClassificator.Wrap(op, err)
}
