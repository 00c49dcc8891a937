package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dtroode/helpdesk-auth/internal/testutil"
)

type countingPurger struct {
	calls atomic.Int32
	err   error
}

func (p *countingPurger) PurgeExpired(context.Context) (int64, error) {
	p.calls.Add(1)
	return 1, p.err
}

func TestPurgeWorker_RunsUntilCancelled(t *testing.T) {
	p := &countingPurger{}
	w := NewPurgeWorker(p, 5*time.Millisecond, testutil.MakeNoopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return p.calls.Load() >= 3 }, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestPurgeWorker_KeepsRunningOnError(t *testing.T) {
	p := &countingPurger{err: errors.New("db down")}
	w := NewPurgeWorker(p, 5*time.Millisecond, testutil.MakeNoopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	assert.Eventually(t, func() bool { return p.calls.Load() >= 2 }, time.Second, time.Millisecond)
}

func TestPurgeWorker_Disabled(t *testing.T) {
	p := &countingPurger{}
	w := NewPurgeWorker(p, 0, testutil.MakeNoopLogger())

	w.Run(context.Background())
	assert.Zero(t, p.calls.Load())
}
