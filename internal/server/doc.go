// Package server runs the reference API server.
//
// It owns the HTTP listener lifecycle: startup, signal handling and graceful
// shutdown with a bounded drain period.
package server
