package worker_test

import (
	"context"
	"errors"
	"github.com/deepak-5656/wanderease/internal/worker"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

type expirerStub struct {
	batches []int
	err     error
	calls   int
}

func (s *expirerStub) ExpireStalePending(_ context.Context, _ time.Duration, _ int) (int, error) {
	s.calls++
	if s.calls > len(s.batches) {
		return 0, s.err
	}
	return s.batches[s.calls-1], nil
}

func TestPendingExpiryWorker_Sweep(t *testing.T) {
	t.Run("drains full batches", func(t *testing.T) {
		stub := &expirerStub{batches: []int{100, 100, 7}}
		w := worker.NewPendingExpiryWorker(stub, time.Hour, time.Minute, zerolog.Nop())

		assert.Equal(t, 207, w.Sweep(context.Background()))
		assert.Equal(t, 3, stub.calls)
	})

	t.Run("stops on error", func(t *testing.T) {
		stub := &expirerStub{batches: []int{100}, err: errors.New("db down")}
		w := worker.NewPendingExpiryWorker(stub, time.Hour, time.Minute, zerolog.Nop())

		assert.Equal(t, 100, w.Sweep(context.Background()))
		assert.Equal(t, 2, stub.calls)
	})
}

func TestPendingExpiryWorker_Run(t *testing.T) {
	t.Run("disabled without ttl", func(t *testing.T) {
		stub := &expirerStub{}
		w := worker.NewPendingExpiryWorker(stub, 0, time.Millisecond, zerolog.Nop())

		assert.False(t, w.Enabled())
		assert.NoError(t, w.Run(context.Background()))
		assert.Equal(t, 0, stub.calls)
	})

	t.Run("sweeps until cancelled", func(t *testing.T) {
		stub := &expirerStub{}
		w := worker.NewPendingExpiryWorker(stub, time.Hour, 5*time.Millisecond, zerolog.Nop())

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		assert.NoError(t, w.Run(ctx))
		assert.Greater(t, stub.calls, 0)
	})
}
