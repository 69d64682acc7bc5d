// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for the remote library API.
//
// Request construction is pure: the functions in requests.go turn a library,
// an object type and keys into fully described [Request] values, with every
// per-type difference taken from a single policy table. [ServerAdapter]
// executes those requests over HTTP and maps status codes to the sentinel
// errors in errors.go so that callers can use [errors.Is] (for example
// [ErrPreconditionFailed] for 412, [ErrUnauthorized] for 401/403).
package adapter

import (
	"context"

	"github.com/MKhiriev/zotero-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the remote library API.
// Implementations are responsible for serialisation, API key header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetAPIKey stores the key attached to all subsequent requests.
	SetAPIKey(key string)

	// APIKey returns the key currently held, or an empty string.
	APIKey() string

	// Login exchanges credentials for an API key. It does not store the key;
	// callers decide where it is persisted and call SetAPIKey.
	Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error)

	// ListVersions returns the key→version list of lib/typ. since == 0
	// requests the full list.
	ListVersions(ctx context.Context, lib models.Library, typ models.ObjectType, since int64) (models.RemoteVersions, error)

	// FetchObjects downloads the bodies of keys. Keys the server no longer
	// has are reported as missing, undecodable objects as malformed.
	FetchObjects(ctx context.Context, lib models.Library, typ models.ObjectType, keys []string) (models.FetchResult, error)

	// SubmitObjects pushes records with If-Unmodified-Since-Version set to
	// version. A whole-batch precondition failure returns
	// [ErrPreconditionFailed]; per-object failures are reported in the result.
	SubmitObjects(ctx context.Context, lib models.Library, typ models.ObjectType, version int64, records []models.Record) (models.SubmitResult, error)

	// SubmitDeletions deletes keys on the server with
	// If-Unmodified-Since-Version set to version. Keys of batches sent before
	// a failure are reported as confirmed.
	SubmitDeletions(ctx context.Context, lib models.Library, typ models.ObjectType, version int64, keys []string) (models.DeletionResult, error)

	// ListDeleted returns the keys deleted on the server since version.
	ListDeleted(ctx context.Context, lib models.Library, since int64) (models.RemoteDeletions, error)
}
