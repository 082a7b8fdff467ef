package workerpool_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/marcodamonte/features/internal/workerpool"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// quietLogger discards output unless -v is set.
func quietLogger(t *testing.T) *zap.Logger {
	if testing.Verbose() {
		return zaptest.NewLogger(t)
	}
	return zap.NewNop()
}

// ── Concurrency limit ────────────────────────────────────────────────────────

// TestConcurrencyLimit verifies that at most N jobs run simultaneously.
func TestConcurrencyLimit(t *testing.T) {
	t.Parallel()

	const workers = 3
	const jobs = 20

	pool := workerpool.New(workerpool.Config{
		Workers:         workers,
		QueueSize:       jobs,
		ShutdownTimeout: 5 * time.Second,
		Logger:          quietLogger(t),
	})

	var (
		active    int64 // currently running jobs
		maxActive int64 // observed peak
	)

	barrier := make(chan struct{}) // hold all jobs until we release them

	for i := 0; i < jobs; i++ {
		if err := pool.Submit(context.Background(), func(ctx context.Context, _ workerpool.Worker) error {
			cur := atomic.AddInt64(&active, 1)
			for {
				prev := atomic.LoadInt64(&maxActive)
				if cur <= prev || atomic.CompareAndSwapInt64(&maxActive, prev, cur) {
					break
				}
			}
			<-barrier
			atomic.AddInt64(&active, -1)
			return nil
		}); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	time.Sleep(50 * time.Millisecond)
	close(barrier)

	if err := pool.Shutdown(); err != nil {
		t.Fatalf("shutdown: %v", err)
	}

	got := atomic.LoadInt64(&maxActive)
	if got > workers {
		t.Errorf("peak concurrency = %d; want <= %d", got, workers)
	}
	if got == 0 {
		t.Error("no jobs appear to have run")
	}
}

// ── Per-job goroutines ───────────────────────────────────────────────────────

// TestPerJobGoroutines checks that with Workers == 0 every job gets its own
// goroutine, so all of them can be in flight at once.
func TestPerJobGoroutines(t *testing.T) {
	t.Parallel()

	const total = 5

	pool := workerpool.New(workerpool.Config{Logger: quietLogger(t)})

	var (
		mu    sync.Mutex
		ids   = map[uuid.UUID]bool{}
		ready sync.WaitGroup
	)
	ready.Add(total)
	release := make(chan struct{})

	for i := 0; i < total; i++ {
		if err := pool.Submit(context.Background(), func(ctx context.Context, w workerpool.Worker) error {
			mu.Lock()
			ids[w.ID] = true
			mu.Unlock()
			ready.Done()
			<-release // only returns once all total jobs are running together
			return nil
		}); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	ready.Wait()
	close(release)

	if err := pool.Shutdown(); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	if len(ids) != total {
		t.Errorf("distinct workers = %d; want %d", len(ids), total)
	}
	if m := pool.Metrics(); m.Succeeded != total {
		t.Errorf("Succeeded = %d; want %d", m.Succeeded, total)
	}
}

// ── Close does not wait ──────────────────────────────────────────────────────

// TestCloseReturnsBeforeJobsFinish confirms Close only stops intake.
func TestCloseReturnsBeforeJobsFinish(t *testing.T) {
	t.Parallel()

	for _, workers := range []int{0, 2} {
		pool := workerpool.New(workerpool.Config{Workers: workers, QueueSize: 1, Logger: quietLogger(t)})

		release := make(chan struct{})
		var ran atomic.Bool
		_ = pool.Submit(context.Background(), func(ctx context.Context, _ workerpool.Worker) error {
			<-release
			ran.Store(true)
			return nil
		})

		pool.Close()
		if ran.Load() {
			t.Errorf("workers=%d: job finished before release", workers)
		}
		if err := pool.Submit(context.Background(), func(context.Context, workerpool.Worker) error { return nil }); !errors.Is(err, workerpool.ErrPoolClosed) {
			t.Errorf("workers=%d: Submit after Close = %v; want ErrPoolClosed", workers, err)
		}

		close(release)
		if err := pool.Wait(context.Background()); err != nil {
			t.Fatalf("wait: %v", err)
		}
		if !ran.Load() {
			t.Errorf("workers=%d: queued job did not run after Close", workers)
		}
	}
}

// ── All jobs complete ────────────────────────────────────────────────────────

func TestAllJobsProcessed(t *testing.T) {
	t.Parallel()

	const total = 50

	pool := workerpool.New(workerpool.Config{
		Workers:         5,
		QueueSize:       total,
		ShutdownTimeout: 5 * time.Second,
		Logger:          quietLogger(t),
	})

	var ran int64
	for i := 0; i < total; i++ {
		if err := pool.Submit(context.Background(), func(ctx context.Context, _ workerpool.Worker) error {
			atomic.AddInt64(&ran, 1)
			return nil
		}); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	if err := pool.Shutdown(); err != nil {
		t.Fatalf("shutdown: %v", err)
	}

	if got := atomic.LoadInt64(&ran); got != total {
		t.Errorf("ran %d jobs; want %d", got, total)
	}
}

// ── Shutdown timeout + forced cancellation ───────────────────────────────────

// TestShutdownTimeout verifies that when jobs exceed the timeout, Shutdown
// cancels them via context and returns ErrShutdownTimeout.
func TestShutdownTimeout(t *testing.T) {
	t.Parallel()

	pool := workerpool.New(workerpool.Config{
		Workers:         2,
		QueueSize:       4,
		ShutdownTimeout: 50 * time.Millisecond,
		Logger:          quietLogger(t),
	})

	var cancelled int64
	for i := 0; i < 4; i++ {
		if err := pool.Submit(context.Background(), func(ctx context.Context, _ workerpool.Worker) error {
			<-ctx.Done()
			atomic.AddInt64(&cancelled, 1)
			return ctx.Err()
		}); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	err := pool.Shutdown()
	if !errors.Is(err, workerpool.ErrShutdownTimeout) {
		t.Errorf("Shutdown() error = %v; want ErrShutdownTimeout", err)
	}
	if got := atomic.LoadInt64(&cancelled); got == 0 {
		t.Error("expected at least one job to observe context cancellation")
	}
	// Idempotent: the second call reports the same outcome.
	if err := pool.Shutdown(); !errors.Is(err, workerpool.ErrShutdownTimeout) {
		t.Errorf("second Shutdown() = %v; want ErrShutdownTimeout", err)
	}
}

// ── Metrics ──────────────────────────────────────────────────────────────────

func TestMetrics(t *testing.T) {
	t.Parallel()

	const succeedN = 7
	const failN = 3
	sentinel := errors.New("intentional")

	pool := workerpool.New(workerpool.Config{
		Workers:         4,
		QueueSize:       succeedN + failN,
		ShutdownTimeout: 5 * time.Second,
		Logger:          quietLogger(t),
	})

	for i := 0; i < succeedN; i++ {
		_ = pool.Submit(context.Background(), func(context.Context, workerpool.Worker) error { return nil })
	}
	for i := 0; i < failN; i++ {
		_ = pool.Submit(context.Background(), func(context.Context, workerpool.Worker) error { return sentinel })
	}

	if err := pool.Shutdown(); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	_ = pool.Submit(context.Background(), func(context.Context, workerpool.Worker) error { return nil })

	m := pool.Metrics()
	if m.Submitted != succeedN+failN {
		t.Errorf("Submitted = %d; want %d", m.Submitted, succeedN+failN)
	}
	if m.Succeeded != succeedN {
		t.Errorf("Succeeded = %d; want %d", m.Succeeded, succeedN)
	}
	if m.Failed != failN {
		t.Errorf("Failed = %d; want %d", m.Failed, failN)
	}
	if m.Dropped != 1 {
		t.Errorf("Dropped = %d; want 1", m.Dropped)
	}
}

// ── Submit respects caller context ───────────────────────────────────────────

func TestSubmitRespectsCallerContext(t *testing.T) {
	t.Parallel()

	pool := workerpool.New(workerpool.Config{
		Workers:         1,
		QueueSize:       0,
		ShutdownTimeout: time.Second,
		Logger:          quietLogger(t),
	})

	blocker := make(chan struct{})
	_ = pool.Submit(context.Background(), func(context.Context, workerpool.Worker) error {
		<-blocker
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := pool.Submit(ctx, func(context.Context, workerpool.Worker) error { return nil }); err == nil {
		t.Fatal("expected Submit to fail, got nil")
	}

	close(blocker)
	if err := pool.Shutdown(); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestWorkerString(t *testing.T) {
	id := uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e")

	if got := (workerpool.Worker{ID: id}).String(); got != "Goroutine[#0f8fad5b]" {
		t.Errorf("per-job String() = %q", got)
	}
	if got := (workerpool.Worker{ID: id, Slot: 2}).String(); !strings.HasSuffix(got, "slot-2]") {
		t.Errorf("fixed String() = %q", got)
	}
}
