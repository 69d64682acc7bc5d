// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// RecordStatus is the synchronisation state of a local record.
type RecordStatus string

const (
	// StatusSynced means the local body equals the server body at Version.
	StatusSynced RecordStatus = "synced"
	// StatusLocallyModified means the record carries a local edit that has not
	// been accepted by the server yet. Version is the server version the edit
	// was based on (0 for objects never seen by the server).
	StatusLocallyModified RecordStatus = "locally_modified"
	// StatusPendingDeletion means the user deleted the record locally and a
	// deletion queue entry waits for server acknowledgement.
	StatusPendingDeletion RecordStatus = "pending_deletion"
)

// Record is the local copy of one remote object. Body is the opaque JSON
// object as returned by (or to be sent to) the API.
type Record struct {
	Library   Library         `json:"library"`
	Type      ObjectType      `json:"type"`
	Key       string          `json:"key"`
	Version   int64           `json:"version"`
	Status    RecordStatus    `json:"status"`
	Body      json.RawMessage `json:"body,omitempty"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// RemoteObject is a decoded object body received from the API.
type RemoteObject struct {
	Key     string
	Version int64
	Body    json.RawMessage
}

// UpsertResult reports the outcome of applying one remote object locally.
type UpsertResult struct {
	Created bool
	Changed bool
	Record  Record
}

// DeletionEntry is a locally originated deletion waiting for the server.
// Version is the library/type version known when the deletion was queued;
// it is refreshed when a conflict forces a re-download.
type DeletionEntry struct {
	Library  Library    `json:"library"`
	Type     ObjectType `json:"type"`
	Key      string     `json:"key"`
	Version  int64      `json:"version"`
	QueuedAt time.Time  `json:"queued_at"`
}

// ChangeBatch is published to local subscribers after a write batch commits.
type ChangeBatch struct {
	Library Library
	Type    ObjectType
	Added   []string
	Updated []string
	Removed []string
}

// Empty reports whether the batch carries no change at all.
func (b ChangeBatch) Empty() bool {
	return len(b.Added) == 0 && len(b.Updated) == 0 && len(b.Removed) == 0
}
