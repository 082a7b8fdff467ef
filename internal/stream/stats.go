package stream

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// Stats is a one-pass summary of an int sequence.
type Stats struct {
	Count int64
	Sum   int64
	Min   int
	Max   int
}

// Summarize computes Stats for s. An empty input reports Min as MaxInt and
// Max as MinInt, so merging with a later summary stays correct.
func Summarize(s []int) Stats {
	st := Stats{Min: math.MaxInt, Max: math.MinInt}
	for _, v := range s {
		st.Count++
		st.Sum += int64(v)
		st.Min = min(st.Min, v)
		st.Max = max(st.Max, v)
	}
	return st
}

// Average is zero for an empty summary.
func (s Stats) Average() float64 {
	if s.Count == 0 {
		return 0
	}
	return float64(s.Sum) / float64(s.Count)
}

func (s Stats) String() string {
	return fmt.Sprintf("IntSummaryStatistics{count=%d, sum=%d, min=%d, average=%f, max=%d}",
		s.Count, s.Sum, s.Min, s.Average(), s.Max)
}

// ── View[T] ───────────────────────────────────────────────────────────────────
// Read-only snapshot of a slice. Callers can read but never reach the
// backing array.

type View[T any] struct {
	items []T
}

// Freeze copies s into a View.
func Freeze[T any](s []T) View[T] {
	return View[T]{items: append([]T(nil), s...)}
}

func (v View[T]) Len() int       { return len(v.items) }
func (v View[T]) At(i int) T     { return v.items[i] }
func (v View[T]) Slice() []T     { return append([]T(nil), v.items...) }
func (v View[T]) String() string { return Format(v.items) }

// ParallelEach calls f for every element on up to limit goroutines. Visit
// order is not defined. The first error cancels ctx for the remaining calls
// and is returned.
func ParallelEach[T any](ctx context.Context, s []T, limit int, f func(context.Context, T) error) error {
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for _, v := range s {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return f(gctx, v)
		})
	}
	return g.Wait()
}
