// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the authentication and library middlewares.
var (
	// ErrEmptyAPIKey is returned when neither the Zotero-API-Key nor the
	// "Authorization" header carries a key.
	ErrEmptyAPIKey = errors.New("no api key provided")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header cannot be split into a scheme and a key.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidLibraryID is returned for a library id that is not a
	// positive integer.
	ErrInvalidLibraryID = errors.New("invalid library id")

	// ErrInvalidVersion is returned for a malformed since parameter or
	// If-Unmodified-Since-Version header.
	ErrInvalidVersion = errors.New("invalid version")

	// ErrPreconditionRequired is returned for a deletion without
	// If-Unmodified-Since-Version.
	ErrPreconditionRequired = errors.New("If-Unmodified-Since-Version not provided")
)
