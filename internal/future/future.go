// Package future provides a single-producer deferred result with attachable
// continuations.
package future

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Future is the eventual result of one computation started by Supply.
//
// Lifecycle:
//
//	f := future.Supply(ctx, fn)   // fn runs on its own goroutine
//	f.ThenAccept(print)           // runs once fn returns
//	v, err := f.Get(ctx)          // optional: block for the value
type Future[T any] struct {
	ready   chan struct{} // value set
	settled chan struct{} // queued continuations have returned

	mu    sync.Mutex
	value T
	conts []func(T)
}

// Supply starts fn on a new goroutine and returns immediately.
func Supply[T any](ctx context.Context, fn func(context.Context) T) *Future[T] {
	f := &Future[T]{ready: make(chan struct{}), settled: make(chan struct{})}
	go func() {
		v := fn(ctx)

		f.mu.Lock()
		f.value = v
		conts := f.conts
		f.conts = nil
		close(f.ready)
		f.mu.Unlock()

		defer close(f.settled)
		for _, c := range conts {
			c(v)
		}
	}()
	return f
}

// ThenAccept registers c to run with the result. If the result is already
// available, c runs on the caller's goroutine before ThenAccept returns;
// otherwise it runs on the producer goroutine. Queued continuations run in
// registration order.
func (f *Future[T]) ThenAccept(c func(T)) *Future[T] {
	f.mu.Lock()
	select {
	case <-f.ready:
		v := f.value
		f.mu.Unlock()
		c(v)
	default:
		f.conts = append(f.conts, c)
		f.mu.Unlock()
	}
	return f
}

// Done is closed once the value is set and every continuation queued before
// completion has returned.
func (f *Future[T]) Done() <-chan struct{} { return f.settled }

// Get waits for the result or for ctx to end.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.ready:
		f.mu.Lock()
		defer f.mu.Unlock()
		return f.value, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Delay returns a producer that waits d and yields v. An interrupted wait is
// logged with its stack and v is still returned.
func Delay[T any](logger *zap.Logger, d time.Duration, v T) func(context.Context) T {
	return func(ctx context.Context) T {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			logger.Warn("delay interrupted",
				zap.Duration("delay", d),
				zap.Error(context.Cause(ctx)),
				zap.StackSkip("stack", 1))
		}
		return v
	}
}

// Group tracks futures so a caller can optionally drain them before exit.
type Group struct {
	mu      sync.Mutex
	pending []<-chan struct{}
}

// Track adds a done channel (typically Future.Done) to the group.
func (g *Group) Track(done <-chan struct{}) {
	g.mu.Lock()
	g.pending = append(g.pending, done)
	g.mu.Unlock()
}

// Wait blocks until every tracked channel is closed or ctx ends.
func (g *Group) Wait(ctx context.Context) error {
	g.mu.Lock()
	pending := g.pending
	g.pending = nil
	g.mu.Unlock()

	for _, done := range pending {
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
