// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/zotero-sync/internal/config"
	"github.com/MKhiriev/zotero-sync/internal/logger"
	"github.com/MKhiriev/zotero-sync/models"
)

// lockRetryDelay is the poll interval while waiting for another process to
// release the account lock.
const lockRetryDelay = 200 * time.Millisecond

// syncController allows one sync session per account at a time. Inside the
// process a second request joins the running session, is ignored or queues
// behind it, depending on the policy. Across processes the account database
// is guarded by a file lock.
type syncController struct {
	sync   ClientSyncService
	policy string
	lock   *flock.Flock
	logger *logger.Logger

	group singleflight.Group
	slot  chan struct{}

	mu     sync.Mutex
	cancel context.CancelFunc
	joins  map[string]*joinState
}

// joinState counts the callers sharing one joined session. The session is
// cancelled when the last of them gives up.
type joinState struct {
	waiters int
	cancel  context.CancelFunc
}

// NewSyncController returns a SessionRunner applying policy. lockPath names
// the lock file; an empty path disables the cross-process lock.
func NewSyncController(syncService ClientSyncService, policy, lockPath string, logger *logger.Logger) SessionRunner {
	c := &syncController{
		sync:   syncService,
		policy: policy,
		logger: logger,
		slot:   make(chan struct{}, 1),
		joins:  make(map[string]*joinState),
	}
	if lockPath != "" {
		c.lock = flock.New(lockPath)
	}
	return c
}

// Run implements SessionRunner.
func (c *syncController) Run(ctx context.Context, account models.Session) (models.SyncSummary, error) {
	switch c.policy {
	case config.SessionPolicyIgnore:
		select {
		case c.slot <- struct{}{}:
		default:
			return models.SyncSummary{}, ErrSyncInProgress
		}
		return c.runHeld(ctx, account, false)

	case config.SessionPolicyQueue:
		select {
		case c.slot <- struct{}{}:
		case <-ctx.Done():
			return models.SyncSummary{}, fmt.Errorf("%w: %w", ErrSessionCancelled, ctx.Err())
		}
		return c.runHeld(ctx, account, true)

	default:
		key := strconv.FormatInt(account.UserID, 10)
		c.join(key)
		ch := c.group.DoChan(key, func() (any, error) {
			flightCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
			defer cancel()
			if !c.startFlight(key, cancel) {
				return models.SyncSummary{}, fmt.Errorf("%w: every caller left", ErrSessionCancelled)
			}
			defer c.endFlight(key)

			select {
			case c.slot <- struct{}{}:
			case <-flightCtx.Done():
				return models.SyncSummary{}, fmt.Errorf("%w: %w", ErrSessionCancelled, flightCtx.Err())
			}
			return c.runHeld(flightCtx, account, true)
		})

		select {
		case res := <-ch:
			c.leave(key, false)
			summary, _ := res.Val.(models.SyncSummary)
			return summary, res.Err
		case <-ctx.Done():
			c.leave(key, true)
			return models.SyncSummary{}, fmt.Errorf("%w: %w", ErrSessionCancelled, ctx.Err())
		}
	}
}

func (c *syncController) join(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, ok := c.joins[key]
	if !ok {
		st = &joinState{}
		c.joins[key] = st
	}
	st.waiters++
}

// startFlight binds cancel to the callers of key. It reports false when they
// all left before the session started.
func (c *syncController) startFlight(key string, cancel context.CancelFunc) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, ok := c.joins[key]
	if !ok || st.waiters == 0 {
		return false
	}
	st.cancel = cancel
	return true
}

func (c *syncController) endFlight(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if st, ok := c.joins[key]; ok {
		st.cancel = nil
	}
}

// leave drops one caller of key. The last caller to give up cancels the
// shared session.
func (c *syncController) leave(key string, gaveUp bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, ok := c.joins[key]
	if !ok {
		return
	}
	st.waiters--
	if st.waiters > 0 {
		return
	}
	if gaveUp && st.cancel != nil {
		st.cancel()
	}
	delete(c.joins, key)
}

// runHeld runs a session while holding the in-process slot, which it
// releases. wait selects between waiting for and giving up on a lock held
// by another process.
func (c *syncController) runHeld(ctx context.Context, account models.Session, wait bool) (models.SyncSummary, error) {
	defer func() { <-c.slot }()

	if c.lock != nil {
		var (
			locked bool
			err    error
		)
		if wait {
			locked, err = c.lock.TryLockContext(ctx, lockRetryDelay)
		} else {
			locked, err = c.lock.TryLock()
		}
		if err != nil {
			if ctx.Err() != nil {
				return models.SyncSummary{}, fmt.Errorf("%w: %w", ErrSessionCancelled, err)
			}
			return models.SyncSummary{}, fmt.Errorf("acquire account lock: %w", err)
		}
		if !locked {
			return models.SyncSummary{}, ErrSyncInProgress
		}
		defer func() {
			if err := c.lock.Unlock(); err != nil {
				c.logger.Err(err).Str("func", "syncController.runHeld").Msg("failed to release account lock")
			}
		}()
	}

	sessCtx, cancel := context.WithCancel(ctx)
	c.mu.Lock()
	c.cancel = cancel
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.cancel = nil
		c.mu.Unlock()
		cancel()
	}()

	return c.sync.Sync(sessCtx, account)
}

// Cancel implements SessionRunner.
func (c *syncController) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
	}
}

// Wait implements SessionRunner.
func (c *syncController) Wait() {
	c.slot <- struct{}{}
	<-c.slot
}
