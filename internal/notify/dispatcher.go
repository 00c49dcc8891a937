package notify

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/dtroode/helpdesk-auth/internal/logger"
	"github.com/dtroode/helpdesk-auth/internal/model"
)

const defaultBufferSize = 128

type eventKind int

const (
	verificationRequested eventKind = iota
	resetRequested
	resetCompleted
)

type event struct {
	ctx   context.Context
	kind  eventKind
	user  model.User
	token string
}

var _ model.Notifier = (*Dispatcher)(nil)

// Dispatcher hands notifications to sink on a single background goroutine.
// When the buffer is full new events are dropped and counted.
type Dispatcher struct {
	sink   model.Notifier
	events chan event
	logger *logger.Logger

	dropped atomic.Uint64

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(sink model.Notifier, bufferSize int, logger *logger.Logger) *Dispatcher {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	d := &Dispatcher{
		sink:   sink,
		events: make(chan event, bufferSize),
		logger: logger,
		done:   make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *Dispatcher) EmailVerificationRequested(ctx context.Context, user model.User, token string) {
	d.enqueue(event{ctx: ctx, kind: verificationRequested, user: user, token: token})
}

func (d *Dispatcher) PasswordResetRequested(ctx context.Context, user model.User, token string) {
	d.enqueue(event{ctx: ctx, kind: resetRequested, user: user, token: token})
}

func (d *Dispatcher) PasswordResetCompleted(ctx context.Context, user model.User) {
	d.enqueue(event{ctx: ctx, kind: resetCompleted, user: user})
}

// Dropped returns how many events were discarded because the buffer was full
// or the dispatcher was closed.
func (d *Dispatcher) Dropped() uint64 {
	return d.dropped.Load()
}

// Close stops accepting events and waits until buffered ones are delivered.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		<-d.done
		return
	}
	d.closed = true
	close(d.events)
	d.mu.Unlock()

	<-d.done
}

func (d *Dispatcher) enqueue(e event) {
	// request cancellation must not cancel delivery
	e.ctx = context.WithoutCancel(e.ctx)

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.dropped.Add(1)
		return
	}
	select {
	case d.events <- e:
	default:
		d.dropped.Add(1)
		d.logger.Warn("Notifier: buffer full, notification dropped",
			"user_id", e.user.ID)
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)

	for e := range d.events {
		switch e.kind {
		case verificationRequested:
			d.sink.EmailVerificationRequested(e.ctx, e.user, e.token)
		case resetRequested:
			d.sink.PasswordResetRequested(e.ctx, e.user, e.token)
		case resetCompleted:
			d.sink.PasswordResetCompleted(e.ctx, e.user)
		}
	}
}
