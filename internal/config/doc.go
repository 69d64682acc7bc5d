// Package config provides configuration loading, merging, and validation
// facilities for the zsync client and the reference API server.
//
// Configuration is assembled from multiple sources in the following priority
// order (a field set by an earlier source is never overridden):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for server/runtime
// configuration and [GetClientConfig] for client-specific configuration.
package config
