// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the user-facing wording of the zsync command line.
//
// Services return sentinel errors; the CLI prints the message chosen here
// and keeps the wrapped details in the log file.
package app

import (
	"errors"

	"github.com/MKhiriev/zotero-sync/internal/service"
)

const (
	// MsgNotLoggedIn is shown when no API key is stored on this device.
	MsgNotLoggedIn = "not logged in, run `zsync login` first"

	// MsgAuthenticationFailure is shown when the server refuses the
	// credentials or the stored API key.
	MsgAuthenticationFailure = "the server refused the credentials, run `zsync login` again"

	// MsgSyncInProgress is shown when another session holds the replica.
	MsgSyncInProgress = "another sync is already running for this replica"

	// MsgSessionCancelled is shown when the session was interrupted.
	MsgSessionCancelled = "sync cancelled"

	// MsgTransportFailure is shown when the server stayed unreachable after
	// all retry attempts.
	MsgTransportFailure = "the server is unreachable, try again later"

	// MsgLocalStore is shown when the local replica cannot be read or
	// written.
	MsgLocalStore = "the local replica could not be updated, see the log file"

	// MsgMalformedResponse is shown when the server answers with data the
	// client cannot decode.
	MsgMalformedResponse = "the server sent an unexpected response"

	// MsgInternalError is shown for any other failure.
	MsgInternalError = "internal error, see the log file"
)

var messages = []struct {
	err error
	msg string
}{
	{service.ErrNotLoggedIn, MsgNotLoggedIn},
	{service.ErrAuthenticationFailure, MsgAuthenticationFailure},
	{service.ErrSyncInProgress, MsgSyncInProgress},
	{service.ErrSessionCancelled, MsgSessionCancelled},
	{service.ErrTransportFailure, MsgTransportFailure},
	{service.ErrLocalStore, MsgLocalStore},
	{service.ErrMalformedResponse, MsgMalformedResponse},
}

// UserMessage returns the message printed for err.
func UserMessage(err error) string {
	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return MsgInternalError
}
