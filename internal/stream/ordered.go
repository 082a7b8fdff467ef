package stream

import (
	"cmp"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// ── Ordered[K, V] ─────────────────────────────────────────────────────────────
// Map that remembers key insertion order. Re-setting an existing key keeps
// its original position. The zero value is not usable; call NewOrdered.

type Ordered[K comparable, V any] struct {
	keys []K
	m    map[K]V
}

func NewOrdered[K comparable, V any]() *Ordered[K, V] {
	return &Ordered[K, V]{m: make(map[K]V)}
}

func (o *Ordered[K, V]) Set(k K, v V) {
	if _, ok := o.m[k]; !ok {
		o.keys = append(o.keys, k)
	}
	o.m[k] = v
}

func (o *Ordered[K, V]) Get(k K) (V, bool) {
	v, ok := o.m[k]
	return v, ok
}

func (o *Ordered[K, V]) Len() int { return len(o.keys) }

// Keys returns a copy of the keys in insertion order.
func (o *Ordered[K, V]) Keys() []K { return slices.Clone(o.keys) }

// All iterates entries in insertion order.
func (o *Ordered[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range o.keys {
			if !yield(k, o.m[k]) {
				return
			}
		}
	}
}

// String renders "{k1=v1, k2=v2}" in insertion order. Slice values render as
// "[a, b]".
func (o *Ordered[K, V]) String() string {
	parts := make([]string, 0, len(o.keys))
	for k, v := range o.All() {
		parts = append(parts, fmt.Sprintf("%v=%s", k, render(v)))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// GroupBy buckets s by key, preserving first-seen key order and element
// order within each bucket.
func GroupBy[T any, K comparable](s []T, key func(T) K) *Ordered[K, []T] {
	out := NewOrdered[K, []T]()
	for _, v := range s {
		k := key(v)
		group, _ := out.Get(k)
		out.Set(k, append(group, v))
	}
	return out
}

// ToOrdered collects s into an insertion-ordered map. When two elements share
// a key, merge(existing, incoming) decides the stored value.
func ToOrdered[T any, K comparable, V any](s []T, key func(T) K, val func(T) V, merge func(existing, incoming V) V) *Ordered[K, V] {
	out := NewOrdered[K, V]()
	for _, e := range s {
		k, v := key(e), val(e)
		if prev, ok := out.Get(k); ok {
			v = merge(prev, v)
		}
		out.Set(k, v)
	}
	return out
}

// FilterMap returns the entries of m for which keep returns true.
func FilterMap[K comparable, V any](m map[K]V, keep func(K, V) bool) map[K]V {
	return lo.PickBy(m, keep)
}

// FormatMap renders m as "{k1=v1, k2=v2}" with keys ascending, so output is
// stable across runs.
func FormatMap[K cmp.Ordered, V any](m map[K]V) string {
	parts := make([]string, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		parts = append(parts, fmt.Sprintf("%v=%s", k, render(m[k])))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func render(v any) string {
	switch x := v.(type) {
	case []string:
		return Format(x)
	case []int:
		return Format(x)
	default:
		return fmt.Sprint(v)
	}
}
