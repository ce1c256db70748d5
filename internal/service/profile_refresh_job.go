package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-site-client/models"
)

// DefaultProfileRefreshInterval is used when Start gets a non-positive
// interval.
const DefaultProfileRefreshInterval = 5 * time.Minute

// profileRefresher is the part of [SessionState] the job needs.
type profileRefresher interface {
	IsAuthenticated() bool
	Refresh(ctx context.Context) models.AuthResult
}

type profileRefreshJob struct {
	state profileRefresher

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewProfileRefreshJob returns an idle job refreshing state.
func NewProfileRefreshJob(state profileRefresher) ProfileRefreshJob {
	return &profileRefreshJob{state: state}
}

func (j *profileRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultProfileRefreshInterval
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
				if j.state.IsAuthenticated() {
					_ = j.state.Refresh(jobCtx)
				}
			}
		}
	}()
}

func (j *profileRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
