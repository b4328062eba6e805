package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/content-console/internal/logger"
)

type profileRefresher interface {
	RefreshProfile(ctx context.Context) error
}

type clientProfileJob struct {
	auth   profileRefresher
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientProfileJob creates a clientProfileJob that calls
// auth.RefreshProfile on a ticker. The job is idle until Start is called.
func NewClientProfileJob(auth profileRefresher, log *logger.Logger) ClientProfileJob {
	return &clientProfileJob{auth: auth, logger: log}
}

// Start implements ClientProfileJob. It stops any previously running job,
// then launches a background goroutine that refreshes the profile every
// interval. If interval is zero or negative it defaults to 5 minutes. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *clientProfileJob) Start(ctx context.Context, interval time.Duration) {
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
				if err := j.auth.RefreshProfile(jobCtx); err != nil {
					j.logger.Warn().Err(err).Str("func", "clientProfileJob").Msg("profile refresh failed")
				}
			}
		}
	}()
}

// Stop implements ClientProfileJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running.
func (j *clientProfileJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
