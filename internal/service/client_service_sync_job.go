package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/zotero-sync/internal/logger"
	"github.com/MKhiriev/zotero-sync/models"
)

const defaultSyncInterval = 15 * time.Minute

type clientSyncJob struct {
	runner SessionRunner
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a job running sessions through runner on a
// ticker. The job is idle until Start is called.
func NewClientSyncJob(runner SessionRunner, logger *logger.Logger) ClientSyncJob {
	return &clientSyncJob{runner: runner, logger: logger}
}

// Start implements ClientSyncJob. A previously running job is stopped first.
// A non-positive interval falls back to 15 minutes.
func (j *clientSyncJob) Start(ctx context.Context, account models.Session, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx, account)
			}
		}
	}()
}

func (j *clientSyncJob) tick(ctx context.Context, account models.Session) {
	summary, err := j.runner.Run(ctx, account)
	switch {
	case err == nil:
	case errors.Is(err, ErrSyncInProgress), errors.Is(err, ErrSessionCancelled):
		j.logger.Debug().Err(err).Str("func", "clientSyncJob.tick").Msg("periodic sync skipped")
	default:
		j.logger.Err(err).
			Str("func", "clientSyncJob.tick").
			Str("session_id", summary.SessionID).
			Msg("periodic sync failed")
	}
}

// Stop implements ClientSyncJob. It blocks until the goroutine exits and is
// a no-op when the job is not running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
