package adapter

import "errors"

// Sentinel errors returned by [ServerAdapter] implementations. Callers match
// them with [errors.Is]; the service layer translates them into its own
// taxonomy.
var (
	// ErrUnauthorized is returned for 401 and 403 responses: the API key is
	// missing, revoked or lacks access to the library.
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrPreconditionFailed is returned for 412: the If-Unmodified-Since-Version
	// header no longer matches the server version.
	ErrPreconditionFailed = errors.New("precondition failed")
	// ErrTransport covers network errors, timeouts, 408, 429 and 5xx.
	// Operations failing with it may be retried.
	ErrTransport = errors.New("transport failure")
	// ErrNotFound is returned for 404 on resources that may legitimately
	// disappear (a fetched object, a removed group).
	ErrNotFound = errors.New("not found")
	// ErrRejected is returned for any other 4xx response.
	ErrRejected = errors.New("request rejected")
	// ErrMalformedResponse is returned when a 2xx body or header cannot be
	// decoded.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrMalformedRequest is a programmer error: an invalid library and object
	// type combination. It is never retried.
	ErrMalformedRequest = errors.New("malformed request")
	// ErrUnsupportedDeletionTarget is returned when deleting objects of a type
	// that cannot be deleted key by key (tags, group metadata).
	ErrUnsupportedDeletionTarget = errors.New("unsupported deletion target")
)
