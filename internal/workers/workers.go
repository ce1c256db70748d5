package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-site-client/internal/config"
	"github.com/MKhiriev/go-site-client/internal/logger"
	"github.com/MKhiriev/go-site-client/internal/service"
)

// Workers starts its workers in order and stops them in reverse order.
type Workers struct {
	workers []Worker
}

// NewClientWorkers builds the client's workers from cfg. A zero profile
// refresh interval leaves the periodic refresh out.
func NewClientWorkers(services *service.ClientServices, cfg config.ClientWorkers, log *logger.Logger) *Workers {
	var ws []Worker
	if cfg.ProfileRefreshInterval > 0 {
		ws = append(ws, NewProfileRefreshWorker(services.RefreshJob, cfg.ProfileRefreshInterval, log))
	}
	return &Workers{workers: ws}
}

func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

// profileRefreshWorker runs the profile refresh job at a fixed interval so
// an expired session is noticed while the user is idle.
type profileRefreshWorker struct {
	job      service.ProfileRefreshJob
	interval time.Duration
	logger   *logger.Logger
}

// NewProfileRefreshWorker returns a [Worker] driving job.
func NewProfileRefreshWorker(job service.ProfileRefreshJob, interval time.Duration, log *logger.Logger) Worker {
	return &profileRefreshWorker{job: job, interval: interval, logger: log}
}

func (p *profileRefreshWorker) Start(ctx context.Context) {
	p.logger.Info().
		Str("func", "profileRefreshWorker.Start").
		Dur("interval", p.interval).
		Msg("starting profile refresh")
	p.job.Start(ctx, p.interval)
}

func (p *profileRefreshWorker) Stop() {
	p.job.Stop()
	p.logger.Debug().Str("func", "profileRefreshWorker.Stop").Msg("profile refresh stopped")
}
