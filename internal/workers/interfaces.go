// Package workers runs the long-lived background tasks of the client.
//
// A [Worker] blocks until its context is cancelled; [Workers] runs a set of
// them together and stops all of them when one fails.
package workers

import "context"

// Worker is a background task. Run blocks until ctx is done or the task
// fails; a nil error after cancellation is a clean stop.
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a function to [Worker].
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
