// Package http implements the REST transport of the catalog API.
//
// It wires the chi router, decodes and bounds request bodies, calls the
// service layer and translates results and errors into the JSON envelope.
// Request tracing, access logging, panic recovery and CORS are handled here
// before requests reach the handlers.
package http
