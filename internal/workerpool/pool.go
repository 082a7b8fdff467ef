// Package workerpool runs submitted jobs on goroutines, either on a fixed set
// of workers or on one fresh goroutine per job, with graceful shutdown,
// context-based cancellation and basic observability via atomic counters and
// structured logging.
package workerpool

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Worker describes the execution context a job runs on.
type Worker struct {
	ID   uuid.UUID
	Slot int // 0 for per-job goroutines, 1..N for fixed workers
}

func (w Worker) String() string {
	if w.Slot == 0 {
		return fmt.Sprintf("Goroutine[#%s]", w.ID.String()[:8])
	}
	return fmt.Sprintf("Worker[#%s,slot-%d]", w.ID.String()[:8], w.Slot)
}

// Job is the unit of work submitted to the pool. It receives the pool's
// context so it can respect cancellation, and the worker running it.
type Job func(ctx context.Context, w Worker) error

// Config holds pool construction parameters.
type Config struct {
	// Workers is the number of goroutines that consume jobs concurrently.
	// Zero or less starts one goroutine per submitted job instead.
	Workers int

	// QueueSize is the capacity of the internal job channel for fixed
	// workers. A value of 0 makes Submit block until a worker is free.
	QueueSize int

	// ShutdownTimeout is the maximum time Shutdown waits for in-flight jobs
	// to finish before forcefully cancelling them. Defaults to 30 s.
	ShutdownTimeout time.Duration

	// Logger receives lifecycle events. If nil, zap.NewNop() is used.
	Logger *zap.Logger
}

func (c *Config) withDefaults() Config {
	out := *c
	if out.Workers < 0 {
		out.Workers = 0
	}
	if out.ShutdownTimeout <= 0 {
		out.ShutdownTimeout = 30 * time.Second
	}
	if out.Logger == nil {
		out.Logger = zap.NewNop()
	}
	return out
}

// Metrics is a snapshot of pool counters.
type Metrics struct {
	Submitted int64 // total jobs ever enqueued
	Started   int64 // jobs a worker picked up
	Succeeded int64 // jobs that returned nil
	Failed    int64 // jobs that returned a non-nil error
	Dropped   int64 // jobs rejected after close or by a cancelled Submit
}

type counters struct {
	submitted, started, succeeded, failed, dropped atomic.Int64
}

// Pool runs jobs on goroutines.
//
// Lifecycle:
//
//	pool := workerpool.New(cfg)
//	pool.Submit(ctx, job)  // blocks only if a fixed pool's queue is full
//	pool.Close()           // stop accepting; queued jobs still run
//	pool.Shutdown()        // stop accepting, drain, cancel stragglers
type Pool struct {
	cfg    Config
	log    *zap.Logger
	jobs   chan Job       // nil in per-job mode
	wg     sync.WaitGroup // tracks live goroutines
	counts counters

	// cancelWorkers stops jobs when ShutdownTimeout elapses.
	cancelWorkers context.CancelFunc
	workerCtx     context.Context

	// mu orders Submit's closed check against close(jobs) and wg.Add.
	mu     sync.RWMutex
	closed bool

	closeOnce    sync.Once
	shutdownOnce sync.Once
	shutdownErr  error
}

// New creates a Pool. With Workers > 0 it starts that many worker goroutines
// which run until the pool is closed.
func New(cfg Config) *Pool {
	cfg = cfg.withDefaults()

	workerCtx, cancelWorkers := context.WithCancel(context.Background())

	p := &Pool{
		cfg:           cfg,
		log:           cfg.Logger.Named("pool"),
		workerCtx:     workerCtx,
		cancelWorkers: cancelWorkers,
	}

	if cfg.Workers == 0 {
		p.log.Debug("starting per-job pool", zap.Duration("shutdownTimeout", cfg.ShutdownTimeout))
		return p
	}

	p.jobs = make(chan Job, cfg.QueueSize)
	p.log.Debug("starting workers",
		zap.Int("workers", cfg.Workers),
		zap.Int("queue", cfg.QueueSize),
		zap.Duration("shutdownTimeout", cfg.ShutdownTimeout))

	for i := 1; i <= cfg.Workers; i++ {
		p.wg.Add(1)
		go p.runWorker(Worker{ID: uuid.New(), Slot: i})
	}
	return p
}

// Submit hands a job to the pool. It returns ErrPoolClosed once Close or
// Shutdown has been called. For a fixed pool with a full queue, Submit
// blocks, respecting the caller's context.
func (p *Pool) Submit(ctx context.Context, job Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		p.counts.dropped.Add(1)
		return ErrPoolClosed
	}

	p.counts.submitted.Add(1)

	if p.jobs == nil {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			p.run(Worker{ID: uuid.New()}, job)
		}()
		return nil
	}

	select {
	case p.jobs <- job:
		return nil
	case <-ctx.Done():
		p.counts.dropped.Add(1)
		return fmt.Errorf("submit cancelled: %w", ctx.Err())
	}
}

// Close stops accepting jobs and returns without waiting. Jobs already
// submitted keep running. Close is safe to call more than once.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		if p.jobs != nil {
			close(p.jobs)
		}
		p.mu.Unlock()
		p.log.Debug("closed to new jobs")
	})
}

// Wait blocks until every goroutine started by the pool has exited or ctx
// ends. Call it after Close.
func (p *Pool) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown stops the pool gracefully:
//  1. Closes the pool so no new jobs are accepted.
//  2. Waits up to ShutdownTimeout for queued and running jobs to finish.
//  3. If the timeout elapses, cancels the job context and waits for jobs to
//     return (they must respect ctx cancellation).
//
// Shutdown is safe to call more than once; later calls return the first
// call's result. It returns ErrShutdownTimeout if a forced cancellation was
// required.
func (p *Pool) Shutdown() error {
	p.shutdownOnce.Do(func() {
		p.log.Debug("shutdown initiated")
		p.Close()

		ctx, cancel := context.WithTimeout(context.Background(), p.cfg.ShutdownTimeout)
		defer cancel()

		err := p.Wait(ctx)
		if err == nil {
			p.log.Debug("shutdown complete")
			p.cancelWorkers()
			return
		}
		if !errors.Is(err, context.DeadlineExceeded) {
			p.shutdownErr = err
			return
		}

		p.log.Warn("shutdown timeout elapsed, cancelling jobs", zap.Duration("timeout", p.cfg.ShutdownTimeout))
		p.cancelWorkers()
		_ = p.Wait(context.Background())
		p.log.Debug("shutdown complete (forced)")
		p.shutdownErr = ErrShutdownTimeout
	})
	return p.shutdownErr
}

// Metrics returns a snapshot of pool counters. Each field is read atomically;
// fields are not mutually consistent while jobs are in flight.
func (p *Pool) Metrics() Metrics {
	return Metrics{
		Submitted: p.counts.submitted.Load(),
		Started:   p.counts.started.Load(),
		Succeeded: p.counts.succeeded.Load(),
		Failed:    p.counts.failed.Load(),
		Dropped:   p.counts.dropped.Load(),
	}
}

func (p *Pool) runWorker(w Worker) {
	defer p.wg.Done()
	p.log.Debug("worker started", zap.Stringer("worker", w))

	for job := range p.jobs {
		p.run(w, job)
	}

	p.log.Debug("worker exited", zap.Stringer("worker", w))
}

func (p *Pool) run(w Worker, job Job) {
	// A force-cancel may have happened while the job sat in the queue.
	if p.workerCtx.Err() != nil {
		p.log.Debug("skipping job: context already cancelled", zap.Stringer("worker", w))
		p.counts.failed.Add(1)
		return
	}

	p.counts.started.Add(1)

	if err := job(p.workerCtx, w); err != nil {
		p.counts.failed.Add(1)
		p.log.Warn("job failed", zap.Stringer("worker", w), zap.Error(err))
		return
	}
	p.counts.succeeded.Add(1)
}

// Sentinel errors returned by the pool.
var (
	ErrPoolClosed      = errors.New("worker pool is closed")
	ErrShutdownTimeout = errors.New("shutdown timeout elapsed; jobs were force-cancelled")
)
