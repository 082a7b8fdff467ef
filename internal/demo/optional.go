package demo

import (
	"context"
	"fmt"

	"github.com/marcodamonte/features/internal/optional"
)

func demoOptional(_ context.Context, env *Env) {
	name, err := optional.Of("Alice").OrElseThrow()
	if err != nil {
		fmt.Fprintln(env.Out, "  unexpected:", err)
		return
	}
	fmt.Fprintln(env.Out, "Optional value:", name)

	if _, err := optional.Empty[string]().OrElseThrow(); err != nil {
		fmt.Fprintln(env.Out, "  empty OrElseThrow →", err)
	}
}
