package demo

import (
	"context"
	"fmt"

	"github.com/marcodamonte/features/internal/future"
)

// asyncTask starts the delayed computation and hands back the Future.
func asyncTask(ctx context.Context, env *Env) *future.Future[string] {
	return future.Supply(ctx, future.Delay(env.Log, env.Cfg.Async.Delay, env.Cfg.Async.Result))
}

// demoFuture attaches a printing continuation and returns without waiting.
func demoFuture(ctx context.Context, env *Env) {
	f := asyncTask(ctx, env).ThenAccept(func(s string) {
		fmt.Fprintln(env.Out, s)
	})
	env.Pending.Track(f.Done())
	fmt.Fprintf(env.Out, "  task scheduled (completes in %s)\n", env.Cfg.Async.Delay)
}
