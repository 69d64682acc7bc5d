package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/zotero-sync/internal/logger"
	"github.com/MKhiriev/zotero-sync/internal/telemetry"
)

// SubmissionState is the state of one submission attempt.
type SubmissionState int

const (
	StatePending SubmissionState = iota
	StateAccepted
	StateVersionConflict
	StateTransportFailure
	// StateUnresolved is reached when conflicts outlast the refresh budget.
	StateUnresolved
	// StateFailed covers every other error returned by a send.
	StateFailed
)

func (s SubmissionState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateAccepted:
		return "accepted"
	case StateVersionConflict:
		return "version_conflict"
	case StateTransportFailure:
		return "transport_failure"
	case StateUnresolved:
		return "unresolved"
	default:
		return "failed"
	}
}

// conflictResolver drives a submission through precondition failures.
type conflictResolver struct {
	maxRounds int
	metrics   *telemetry.SyncMetrics
}

func newConflictResolver(maxRounds int, metrics *telemetry.SyncMetrics) *conflictResolver {
	if maxRounds < 0 {
		maxRounds = 0
	}
	return &conflictResolver{maxRounds: maxRounds, metrics: metrics}
}

// resolve runs send until it is accepted. After a version conflict, refresh
// pulls the newer remote state and send is tried again against it, at most
// maxRounds times. send is expected to retry transport failures itself.
func (c *conflictResolver) resolve(ctx context.Context, op string, send, refresh func(context.Context) error) (SubmissionState, error) {
	log := logger.FromContext(ctx)

	for round := 0; ; round++ {
		err := send(ctx)
		switch {
		case err == nil:
			return StateAccepted, nil

		case errors.Is(err, ErrVersionConflict):
			c.metrics.Conflict()
			if round >= c.maxRounds {
				return StateUnresolved, fmt.Errorf("%s: unresolved after %d refreshes: %w", op, round, err)
			}

			log.Info().
				Str("func", "conflictResolver.resolve").
				Str("op", op).
				Int("round", round+1).
				Msg("version conflict, refreshing before retry")

			if err := refresh(ctx); err != nil {
				return StateVersionConflict, err
			}

		case errors.Is(err, ErrTransportFailure):
			return StateTransportFailure, err

		default:
			return StateFailed, err
		}
	}
}
