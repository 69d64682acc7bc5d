package models

import (
	"time"
)

// RemoteVersions is the key→version list returned by the API for one
// library and object type.
type RemoteVersions struct {
	// Versions maps object keys to their current remote versions.
	Versions map[string]int64 `json:"versions"`

	// Full is true when the list was requested without a "since" version and
	// therefore describes the complete remote state. Only a full list can
	// prove that a key no longer exists remotely.
	Full bool `json:"full"`

	// LastModifiedVersion is the library/type version reported by the server
	// in the Last-Modified-Version header (0 when absent).
	LastModifiedVersion int64 `json:"last_modified_version"`
}

// MaxVersion returns the highest version known from the list, including the
// Last-Modified-Version header value.
func (r RemoteVersions) MaxVersion() int64 {
	highest := r.LastModifiedVersion
	for _, v := range r.Versions {
		if v > highest {
			highest = v
		}
	}
	return highest
}

// RemoteDeletions lists keys deleted on the server since a version, per
// object type.
type RemoteDeletions struct {
	Keys                map[ObjectType][]string
	LastModifiedVersion int64
}

// SyncPlan is the outcome of comparing a remote version list with the local
// replica for one library and object type.
type SyncPlan struct {
	// Changed are the keys that must be downloaded and applied.
	Changed []string
	// Tombstones are local keys absent from a full remote list.
	Tombstones []string
}

// SubmitResult is the server answer to an object submission batch.
type SubmitResult struct {
	// Successful maps the index of each accepted object in the batch to the
	// object as stored by the server (with its new version).
	Successful map[int]RemoteObject
	// Unchanged maps indexes to keys of objects the server already had.
	Unchanged map[int]string
	// Failed maps indexes to per-object rejections.
	Failed map[int]SubmitFailure
	// LastModifiedVersion is the library/type version after the write.
	LastModifiedVersion int64
}

// SubmitFailure is a single object rejected inside an otherwise accepted
// submission batch.
type SubmitFailure struct {
	Key     string `json:"key"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// FailureKind classifies per-object failures reported in a session summary.
type FailureKind string

const (
	FailureVersionConflict   FailureKind = "version_conflict"
	FailureTransport         FailureKind = "transport_failure"
	FailureMalformedResponse FailureKind = "malformed_response"
	FailureUnsupported       FailureKind = "unsupported_deletion_target"
	FailureRejected          FailureKind = "rejected"
	FailureLocalStore        FailureKind = "local_store"
)

// ObjectFailure is one object the session could not synchronise.
type ObjectFailure struct {
	Library Library     `json:"library"`
	Type    ObjectType  `json:"type"`
	Key     string      `json:"key"`
	Kind    FailureKind `json:"kind"`
	Reason  string      `json:"reason"`
}

// SyncSummary is the result of one sync session. A session either completes
// (possibly with Failures) or aborts; in both cases the summary describes the
// work that was committed.
type SyncSummary struct {
	SessionID  string    `json:"session_id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	Libraries int `json:"libraries"`
	Created   int `json:"created"`
	Updated   int `json:"updated"`
	Removed   int `json:"removed"`
	Submitted int `json:"submitted"`

	DeletionsConfirmed   int             `json:"deletions_confirmed"`
	DeletionsUnconfirmed []DeletionEntry `json:"deletions_unconfirmed,omitempty"`

	Failures []ObjectFailure `json:"failures,omitempty"`

	// Aborted carries the fatal reason when the session stopped early.
	Aborted string `json:"aborted,omitempty"`
}

// Applied returns the number of objects whose local state changed.
func (s *SyncSummary) Applied() int {
	return s.Created + s.Updated + s.Removed
}

// Partial reports whether the session completed with failures.
func (s *SyncSummary) Partial() bool {
	return len(s.Failures) > 0 || len(s.DeletionsUnconfirmed) > 0
}

// AddFailure records a per-object failure.
func (s *SyncSummary) AddFailure(lib Library, typ ObjectType, key string, kind FailureKind, reason error) {
	msg := ""
	if reason != nil {
		msg = reason.Error()
	}
	s.Failures = append(s.Failures, ObjectFailure{
		Library: lib,
		Type:    typ,
		Key:     key,
		Kind:    kind,
		Reason:  msg,
	})
}

// FetchResult is the outcome of downloading one batch of objects.
type FetchResult struct {
	Objects []RemoteObject
	// Missing are requested keys the server did not return.
	Missing []string
	// Malformed are keys whose bodies could not be decoded.
	Malformed []string
}

// DeletionResult is the server answer to a deletion submission.
type DeletionResult struct {
	Confirmed           []string
	LastModifiedVersion int64
}

// LibraryStatus describes the local replica of one library.
type LibraryStatus struct {
	Library  LibraryInfo          `json:"library"`
	Versions map[ObjectType]int64 `json:"versions"`
	Modified int                  `json:"modified"`
}
