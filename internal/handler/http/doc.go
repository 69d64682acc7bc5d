// Package http implements the REST surface of the reference API server.
//
// It exposes API key creation, per-library version lists, object fetches,
// versioned writes and deletions, the deletion log and group metadata.
// Authentication, library access, request tracing, access logging, metrics
// and compression are handled here before requests reach the service layer.
package http
