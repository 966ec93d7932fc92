package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/taskdeck/taskdeck/internal/adapter"
	"github.com/taskdeck/taskdeck/internal/logger"
)

type sessionCheckJob struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSessionCheckJob creates a sessionCheckJob that calls VerifySession on a
// ticker. The job is idle until Start is called.
func NewSessionCheckJob(serverAdapter adapter.ServerAdapter, log *logger.Logger) SessionCheckJob {
	return &sessionCheckJob{adapter: serverAdapter, logger: log}
}

// Start implements SessionCheckJob. It stops any previously running job, then
// launches a background goroutine that verifies the session every interval.
// If interval is zero or negative it defaults to 5 minutes. When the server
// answers unauthorized the onExpired callback fires once and the goroutine
// exits. Transient errors (network, 5xx) are logged and the ticker keeps
// running.
func (j *sessionCheckJob) Start(ctx context.Context, interval time.Duration, onExpired func()) {
	if interval <= 0 {
		interval = 5 * time.Minute
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
				err := j.adapter.VerifySession(jobCtx)
				if err == nil {
					continue
				}
				if errors.Is(err, adapter.ErrUnauthorized) {
					j.logger.Info().Msg("session rejected by server")
					if onExpired != nil {
						onExpired()
					}
					return
				}
				j.logger.Warn().Err(err).Msg("session check failed")
			}
		}
	}()
}

// Stop implements SessionCheckJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *sessionCheckJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
