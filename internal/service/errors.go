package service

import "errors"

// Session-fatal errors. A sync session failing with one of these stops
// immediately and returns the partial summary.
var (
	// ErrAuthenticationFailure means the API key was rejected. It is never
	// retried.
	ErrAuthenticationFailure = errors.New("authentication failure")
	// ErrMalformedRequest is a programmer error in request construction.
	ErrMalformedRequest = errors.New("malformed request")
	// ErrLocalStore wraps failures of the local replica.
	ErrLocalStore = errors.New("local store failure")
	// ErrSessionCancelled is returned when the session context was cancelled
	// before all work completed. No version was advanced for the
	// interrupted library and object type.
	ErrSessionCancelled = errors.New("sync session cancelled")
	// ErrSyncInProgress is returned under the ignore policy while another
	// session runs for the account.
	ErrSyncInProgress = errors.New("sync already in progress")
	// ErrNotLoggedIn is returned when no API key is available.
	ErrNotLoggedIn = errors.New("not logged in")
)

// Per-object errors. They are collected in the session summary and do not
// abort the session.
var (
	ErrVersionConflict           = errors.New("version conflict")
	ErrTransportFailure          = errors.New("transport failure")
	ErrMalformedResponse         = errors.New("malformed response")
	ErrUnsupportedDeletionTarget = errors.New("unsupported deletion target")
	ErrRejected                  = errors.New("rejected by server")
)

// Errors of the reference API server.
var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrWrongPassword           = errors.New("wrong password")
	ErrTokenIsExpiredOrInvalid = errors.New("api key is expired or invalid")
	ErrLibraryNotFound         = errors.New("library not found")
	// ErrUnauthorizedAccessToDifferentUserData is returned when a key is
	// used on a library its user does not belong to.
	ErrUnauthorizedAccessToDifferentUserData = errors.New("unauthorized access to different user data")
)
