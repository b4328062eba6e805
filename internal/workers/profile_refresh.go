package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/content-console/internal/service"
)

type profileRefreshWorker struct {
	job      service.ClientProfileJob
	interval time.Duration
}

// NewProfileRefreshWorker runs job with the given refresh interval.
func NewProfileRefreshWorker(job service.ClientProfileJob, interval time.Duration) Worker {
	return &profileRefreshWorker{job: job, interval: interval}
}

func (w *profileRefreshWorker) Run(ctx context.Context) {
	w.job.Start(ctx, w.interval)
}

func (w *profileRefreshWorker) Stop() {
	w.job.Stop()
}
