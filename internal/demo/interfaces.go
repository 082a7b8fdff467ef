package demo

import (
	"context"
	"fmt"
	"io"
)

// greeter is the capability; baseGreeter supplies the behaviour every
// implementation gets unless it overrides Greet.
type greeter interface {
	Greet(w io.Writer)
}

type baseGreeter struct{}

func (baseGreeter) Greet(w io.Writer) {
	fmt.Fprintln(w, "This is a default method in interface")
}

// staticGreeting belongs to the package, not to any value.
func staticGreeting(w io.Writer) {
	fmt.Fprintln(w, "This is a static method in interface")
}

// plainGreeter adds nothing of its own; Greet is promoted from baseGreeter.
type plainGreeter struct {
	baseGreeter
}

func demoInterfaces(_ context.Context, env *Env) {
	staticGreeting(env.Out)

	var g greeter = plainGreeter{}
	g.Greet(env.Out)
}

// ── Marker interface ─────────────────────────────────────────────────────────
// A method-less tag can't be checked in Go (every type has the empty method
// set), so the marker carries one unexported no-op method.

type marker interface {
	marked()
}

type someType struct{}

func (someType) marked() {}

func (someType) display(w io.Writer) {
	fmt.Fprintln(w, "Marker Interface Implemented.")
}

func isMarked(v any) bool {
	_, ok := v.(marker)
	return ok
}

func demoMarker(_ context.Context, env *Env) {
	v := someType{}
	v.display(env.Out)
	fmt.Fprintln(env.Out, "  someType is marked:", isMarked(v))
	fmt.Fprintln(env.Out, "  Person is marked:  ", isMarked(Person{}))
}
