// Package server runs the HTTP transport of the catalog API.
//
// It owns the listener lifecycle: startup, signal handling, graceful
// shutdown of in-flight requests and release of the database pool.
package server
