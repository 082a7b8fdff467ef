// Package optional provides a value that may or may not be present, on top
// of mo.Option with the error-returning accessors the tour needs.
package optional

import (
	"errors"
	"fmt"

	"github.com/samber/mo"
)

// ErrNoValue is returned by OrElseThrow on an empty Optional.
var ErrNoValue = errors.New("no value present")

// Optional holds zero or one value of T. The zero value is empty.
// IsPresent, Get, OrElse and the rest of mo.Option's API are promoted.
type Optional[T any] struct {
	mo.Option[T]
}

func Of[T any](v T) Optional[T] { return Optional[T]{mo.Some(v)} }

func Empty[T any]() Optional[T] { return Optional[T]{mo.None[T]()} }

// FromOption wraps an existing mo.Option.
func FromOption[T any](o mo.Option[T]) Optional[T] { return Optional[T]{o} }

// OfNullable is empty for a nil pointer and holds *p otherwise.
func OfNullable[T any](p *T) Optional[T] {
	if p == nil {
		return Empty[T]()
	}
	return Of(*p)
}

// OrElseThrow returns the value, or ErrNoValue when empty.
func (o Optional[T]) OrElseThrow() (T, error) {
	v, ok := o.Get()
	if !ok {
		return v, ErrNoValue
	}
	return v, nil
}

// IfPresent calls f with the value when there is one.
func (o Optional[T]) IfPresent(f func(T)) {
	if v, ok := o.Get(); ok {
		f(v)
	}
}

func (o Optional[T]) String() string {
	v, ok := o.Get()
	if !ok {
		return "Optional.empty"
	}
	return fmt.Sprintf("Optional[%v]", v)
}

// Map applies f to a present value. mo.Option.Map keeps the element type,
// so a type-changing map is a free function.
func Map[T, U any](o Optional[T], f func(T) U) Optional[U] {
	v, ok := o.Get()
	if !ok {
		return Empty[U]()
	}
	return Of(f(v))
}
