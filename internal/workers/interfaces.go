// Package workers runs background jobs alongside the HTTP server.
//
// A [Worker] runs until its context is cancelled. [Workers] starts a set of
// workers together and waits for all of them to return.
package workers

import (
	"context"
	"database/sql"
)

// Worker is a background job. Run must block until ctx is done.
type Worker interface {
	Run(ctx context.Context)
}

// StatsProvider reports connection pool statistics. *sql.DB implements it.
type StatsProvider interface {
	Stats() sql.DBStats
}
