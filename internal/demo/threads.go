package demo

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/marcodamonte/features/internal/workerpool"
)

// demoThreads hands each task to its own goroutine and returns once every
// task is submitted. Nothing waits for the tasks here: their lines may land
// anywhere in the rest of the output, or not at all if the program exits
// first. The pool's shutdown is parked in env.Pending and logs its counters
// once every task has run.
func demoThreads(ctx context.Context, env *Env) {
	pool := workerpool.New(workerpool.Config{
		Workers:         env.Cfg.Pool.Workers,
		QueueSize:       env.Cfg.Pool.Tasks,
		ShutdownTimeout: env.Cfg.Pool.ShutdownTimeout,
		Logger:          env.Log,
	})

	for i := 1; i <= env.Cfg.Pool.Tasks; i++ {
		err := pool.Submit(ctx, func(_ context.Context, w workerpool.Worker) error {
			fmt.Fprintf(env.Out, "Running task %d on %s\n", i, w)
			return nil
		})
		if err != nil {
			env.Log.Warn("task not submitted", zap.Int("task", i), zap.Error(err))
		}
	}
	pool.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := pool.Shutdown(); errors.Is(err, workerpool.ErrShutdownTimeout) {
			env.Log.Warn("threads did not drain in time", zap.Error(err))
		}
		m := pool.Metrics()
		env.Log.Debug("threads drained",
			zap.Int64("submitted", m.Submitted),
			zap.Int64("started", m.Started),
			zap.Int64("succeeded", m.Succeeded),
			zap.Int64("failed", m.Failed),
			zap.Int64("dropped", m.Dropped))
	}()
	env.Pending.Track(done)
}
