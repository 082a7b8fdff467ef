package demo

import (
	"context"
	"fmt"
	"strings"
)

// Named function types. Any func with a matching signature converts to
// them implicitly.
type (
	Function[T, R any] func(T) R
	Predicate[T any]   func(T) bool
	Consumer[T any]    func(T)
	Supplier[T any]    func() T
)

// AndThen returns a Function that applies f, then next.
func AndThen[T, R, V any](f Function[T, R], next Function[R, V]) Function[T, V] {
	return func(v T) V { return next(f(v)) }
}

func (p Predicate[T]) Negate() Predicate[T] {
	return func(v T) bool { return !p(v) }
}

func demoFunctional(_ context.Context, env *Env) {
	square := Function[int, int](func(x int) int { return x * x })
	fmt.Fprintln(env.Out, "Square of 5:", square(5))

	isNotEmpty := Predicate[string](func(s string) bool { return s != "" })
	fmt.Fprintln(env.Out, "Is string 'Hello' not empty?", isNotEmpty("Hello"))

	printUpper := Consumer[string](func(s string) { fmt.Fprintln(env.Out, strings.ToUpper(s)) })
	printUpper("hello")

	greeting := Supplier[string](func() string { return "Hello, World!" })
	fmt.Fprintln(env.Out, greeting())

	describe := AndThen(square, func(n int) string { return fmt.Sprintf("%d squared", n) })
	fmt.Fprintln(env.Out, "  composed:", describe(3))
	fmt.Fprintln(env.Out, "  negated: is '' empty?", isNotEmpty.Negate()(""))
}
