package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/cenkalti/backoff/v5"

	"github.com/MKhiriev/zotero-sync/internal/adapter"
	"github.com/MKhiriev/zotero-sync/internal/logger"
)

// transportRetrier retries remote calls failing with a transport error.
type transportRetrier struct {
	maxAttempts uint
	newBackOff  func() backoff.BackOff
}

func newTransportRetrier(maxAttempts int) *transportRetrier {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &transportRetrier{
		maxAttempts: uint(maxAttempts),
		newBackOff:  func() backoff.BackOff { return backoff.NewExponentialBackOff() },
	}
}

// remoteCall runs fn with exponential backoff between transport failures.
//
// fn runs on a context detached from session cancellation so an in-flight
// request completes; when the session was cancelled meanwhile, the result is
// discarded and ErrSessionCancelled returned. Errors come back translated by
// mapAdapterError.
func remoteCall[T any](ctx context.Context, r *transportRetrier, op string, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	log := logger.FromContext(ctx)
	detached := context.WithoutCancel(ctx)

	attempt := func() (T, error) {
		res, err := fn(detached)
		if ctx.Err() != nil {
			return zero, backoff.Permanent(fmt.Errorf("%w: %s: %w", ErrSessionCancelled, op, ctx.Err()))
		}
		if err == nil {
			return res, nil
		}
		if errors.Is(err, adapter.ErrTransport) {
			log.Warn().Err(err).Str("func", "remoteCall").Str("op", op).Msg("transport failure, retrying")
			return zero, err
		}
		return zero, backoff.Permanent(err)
	}

	res, err := backoff.Retry(ctx, attempt,
		backoff.WithBackOff(r.newBackOff()),
		backoff.WithMaxTries(r.maxAttempts),
	)
	if err != nil {
		if ctx.Err() != nil && !errors.Is(err, ErrSessionCancelled) {
			return zero, fmt.Errorf("%w: %s: %w", ErrSessionCancelled, op, ctx.Err())
		}
		return zero, mapAdapterError(err)
	}
	return res, nil
}
