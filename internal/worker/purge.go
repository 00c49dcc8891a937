package worker

import (
	"context"
	"time"

	"github.com/dtroode/helpdesk-auth/internal/logger"
)

// Purger deletes expired refresh tokens.
type Purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// PurgeWorker runs the purger on a fixed interval.
type PurgeWorker struct {
	purger   Purger
	interval time.Duration
	logger   *logger.Logger
}

func NewPurgeWorker(purger Purger, interval time.Duration, logger *logger.Logger) *PurgeWorker {
	return &PurgeWorker{purger: purger, interval: interval, logger: logger}
}

// Run purges once immediately and then on every tick until ctx is done.
func (w *PurgeWorker) Run(ctx context.Context) {
	if w.interval <= 0 {
		w.logger.Info("Purge worker: disabled")
		return
	}

	w.purge(ctx)

	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Purge worker: stopped")
			return
		case <-t.C:
			w.purge(ctx)
		}
	}
}

func (w *PurgeWorker) purge(ctx context.Context) {
	n, err := w.purger.PurgeExpired(ctx)
	if err != nil {
		if ctx.Err() == nil {
			w.logger.Error("Purge worker: failed to purge expired refresh tokens",
				"error", err.Error())
		}
		return
	}
	if n > 0 {
		w.logger.Info("Purge worker: purged expired refresh tokens",
			"count", n)
	}
}
