package demo

import (
	"context"
	"fmt"

	"github.com/marcodamonte/features/internal/stream"
)

var sampleNames = []string{"Alice", "Bob", "Charlie", "Diana"}

func nameLength(s string) int { return len(s) }

func demoGrouping(_ context.Context, env *Env) {
	grouped := stream.GroupBy(sampleNames, nameLength)
	for length, names := range grouped.All() {
		fmt.Fprintf(env.Out, "%d: %s\n", length, stream.Format(names))
	}
}

func demoMapFilter(_ context.Context, env *Env) {
	m := map[int]string{1: "One", 2: "Two", 3: "Three", 4: "Four"}
	even := stream.FilterMap(m, func(k int, _ string) bool { return k%2 == 0 })
	fmt.Fprintln(env.Out, "Filtered map (even keys):", stream.FormatMap(even))
}

func intp(n int) *int { return &n }

func demoNullFilter(_ context.Context, env *Env) {
	numbers := []*int{intp(1), intp(2), nil, intp(4), intp(5)}
	doubled := stream.Map(stream.NonNil(numbers), func(n int) int { return n * 2 })
	fmt.Fprintln(env.Out, "Filtered and mapped numbers:", stream.Format(doubled))
}

func demoAdvancedStreams(ctx context.Context, env *Env) {
	numbers := []int{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	w := env.Out

	stream.Peek(numbers, func(n int) { fmt.Fprintln(w, "Peek:", n) })

	printEach := func(label string, s []int) {
		fmt.Fprintf(w, "  %s:\n", label)
		for _, n := range s {
			fmt.Fprintln(w, n)
		}
	}
	printEach("skip 5", stream.Skip(numbers, 5))
	printEach("limit 3", stream.Limit(numbers, 3))
	printEach("distinct", stream.Distinct(numbers))
	printEach("sorted", stream.Sorted(numbers))

	for _, s := range stream.Map(numbers, func(n int) string { return fmt.Sprint("Number: ", n) }) {
		fmt.Fprintln(w, s)
	}

	fmt.Fprintln(w, "Count:", stream.Count(numbers))
	stream.Sum(numbers).IfPresent(func(s int) { fmt.Fprintln(w, "Sum:", s) })
	fmt.Fprintln(w, "Summary:", stream.Summarize(numbers))

	// Elements are processed concurrently; lines are printed in encounter
	// order so the section's output stays stable.
	lines := make([]string, len(numbers))
	idx := make([]int, len(numbers))
	for i := range idx {
		idx[i] = i
	}
	if err := stream.ParallelEach(ctx, idx, 4, func(_ context.Context, i int) error {
		lines[i] = fmt.Sprint("Parallel: ", numbers[i])
		return nil
	}); err != nil {
		fmt.Fprintln(w, "  parallel:", err)
	}
	for _, l := range lines {
		if l != "" {
			fmt.Fprintln(w, l)
		}
	}

	fmt.Fprintln(w, "Collected:", stream.Freeze(numbers))
	stream.Max(numbers).IfPresent(func(m int) { fmt.Fprintln(w, "Max:", m) })
}

func demoLinkedMap(_ context.Context, env *Env) {
	m := stream.ToOrdered(sampleNames,
		nameLength,
		func(s string) string { return s },
		func(existing, _ string) string { return existing })
	fmt.Fprintln(env.Out, "Insertion-ordered map:", m)
}
