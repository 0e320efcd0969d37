package worker

import (
	"context"
	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/rs/zerolog"
	"time"
)

const defaultBatchSize = 100

type PendingExpirer interface {
	ExpireStalePending(ctx context.Context, ttl time.Duration, limit int) (int, error)
}

// PendingExpiryWorker periodically cancels bookings that stayed pending for
// longer than the TTL.
type PendingExpiryWorker struct {
	expirer   PendingExpirer
	ttl       time.Duration
	interval  time.Duration
	batchSize int
	logger    zerolog.Logger
}

func NewPendingExpiryWorker(
	expirer PendingExpirer,
	ttl time.Duration,
	interval time.Duration,
	logger zerolog.Logger,
) *PendingExpiryWorker {
	return &PendingExpiryWorker{
		expirer:   expirer,
		ttl:       ttl,
		interval:  interval,
		batchSize: defaultBatchSize,
		logger:    logger,
	}
}

func (w *PendingExpiryWorker) Enabled() bool {
	return w.ttl > 0
}

// Run blocks until ctx is done. A failed sweep is logged and retried on the
// next tick.
func (w *PendingExpiryWorker) Run(ctx context.Context) error {
	if !w.Enabled() {
		w.logger.Info().Msg("pending booking expiry disabled")
		return nil
	}

	w.logger.Info().
		Dur("ttl", w.ttl).
		Dur("interval", w.interval).
		Msg("starting pending booking expiry")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("pending booking expiry stopped")
			return nil
		case <-ticker.C:
			w.Sweep(ctx)
		}
	}
}

// Sweep expires stale bookings in batches until a batch comes back short.
func (w *PendingExpiryWorker) Sweep(ctx context.Context) int {
	ctx = log.ContextWithCorrelationID(ctx, "pending-expiry-"+time.Now().UTC().Format(time.RFC3339))

	var total int
	for ctx.Err() == nil {
		n, err := w.expirer.ExpireStalePending(ctx, w.ttl, w.batchSize)
		total += n
		if err != nil {
			log.FromContext(ctx).
				WithError(err).
				Error("Failed to expire pending bookings")
			break
		}
		if n < w.batchSize {
			break
		}
	}

	if total > 0 {
		log.FromContext(ctx).
			WithField("expired", total).
			Info("Expired pending bookings")
	}

	return total
}
