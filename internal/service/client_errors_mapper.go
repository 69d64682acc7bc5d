// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/zotero-sync/internal/adapter"
	"github.com/MKhiriev/zotero-sync/models"
)

// mapAdapterError translates an adapter error into the service taxonomy. The
// original error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrSessionCancelled):
		return err
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%w: %w", ErrSessionCancelled, err)
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrAuthenticationFailure, err)
	case errors.Is(err, adapter.ErrPreconditionFailed):
		return fmt.Errorf("%w: %w", ErrVersionConflict, err)
	case errors.Is(err, adapter.ErrTransport), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrTransportFailure, err)
	case errors.Is(err, adapter.ErrMalformedResponse):
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	case errors.Is(err, adapter.ErrUnsupportedDeletionTarget):
		return fmt.Errorf("%w: %w", ErrUnsupportedDeletionTarget, err)
	case errors.Is(err, adapter.ErrMalformedRequest):
		return fmt.Errorf("%w: %w", ErrMalformedRequest, err)
	case errors.Is(err, adapter.ErrRejected), errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrRejected, err)
	}

	return err
}

// isFatal reports whether err must abort the whole session.
func isFatal(err error) bool {
	return errors.Is(err, ErrAuthenticationFailure) ||
		errors.Is(err, ErrMalformedRequest) ||
		errors.Is(err, ErrLocalStore) ||
		errors.Is(err, ErrSessionCancelled)
}

// failureKind classifies a per-object error for the summary.
func failureKind(err error) models.FailureKind {
	switch {
	case errors.Is(err, ErrVersionConflict):
		return models.FailureVersionConflict
	case errors.Is(err, ErrTransportFailure):
		return models.FailureTransport
	case errors.Is(err, ErrMalformedResponse):
		return models.FailureMalformedResponse
	case errors.Is(err, ErrUnsupportedDeletionTarget):
		return models.FailureUnsupported
	case errors.Is(err, ErrLocalStore):
		return models.FailureLocalStore
	default:
		return models.FailureRejected
	}
}

func storeError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s: %w", ErrSessionCancelled, op, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrLocalStore, op, err)
}
