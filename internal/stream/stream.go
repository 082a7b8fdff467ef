// Package stream provides generic pipeline helpers over slices and maps.
//
// Every helper returns a fresh slice or map; inputs are never modified, so a
// literal passed in can be reused across calls.
package stream

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/marcodamonte/features/internal/optional"
)

// Map transforms every element of s using f.
// T → input type, U → output type (can differ).
func Map[T, U any](s []T, f func(T) U) []U {
	out := make([]U, len(s))
	for i, v := range s {
		out[i] = f(v)
	}
	return out
}

// Filter returns elements of s for which f returns true.
func Filter[T any](s []T, f func(T) bool) []T {
	out := make([]T, 0, len(s))
	for _, v := range s {
		if f(v) {
			out = append(out, v)
		}
	}
	return out
}

// Reduce folds s into a single value, applying f left-to-right.
// acc starts at init; T is element type, U is accumulator type.
func Reduce[T, U any](s []T, init U, f func(U, T) U) U {
	acc := init
	for _, v := range s {
		acc = f(acc, v)
	}
	return acc
}

// NonNil drops nil entries and dereferences the rest, keeping order.
func NonNil[T any](s []*T) []T {
	out := make([]T, 0, len(s))
	for _, p := range s {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out
}

// Peek calls f on every element and returns s unchanged (as a copy).
func Peek[T any](s []T, f func(T)) []T {
	for _, v := range s {
		f(v)
	}
	return slices.Clone(s)
}

// Skip drops the first n elements.
func Skip[T any](s []T, n int) []T {
	return lo.Drop(s, max(n, 0))
}

// Limit keeps at most the first n elements.
func Limit[T any](s []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	return slices.Clone(lo.Subset(s, 0, uint(n)))
}

// Distinct removes repeated values, keeping the first occurrence.
func Distinct[T comparable](s []T) []T { return lo.Uniq(s) }

// Sorted returns an ascending copy of s.
func Sorted[T cmp.Ordered](s []T) []T {
	out := slices.Clone(s)
	slices.Sort(out)
	return out
}

// Count reports the number of elements as a long, like a counting collector.
func Count[T any](s []T) int64 { return int64(len(s)) }

// Number is the set of element types Sum accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum adds up s. An empty input yields an empty Optional rather than 0.
func Sum[T Number](s []T) optional.Optional[T] {
	if len(s) == 0 {
		return optional.Empty[T]()
	}
	return optional.Of(lo.Sum(s))
}

// Max returns the largest element under natural ordering.
func Max[T cmp.Ordered](s []T) optional.Optional[T] {
	if len(s) == 0 {
		return optional.Empty[T]()
	}
	return optional.Of(lo.Max(s))
}

// Format renders s as "[a, b, c]".
func Format[T any](s []T) string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
