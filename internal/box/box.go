// Package box shows a generic container with producer-side and
// consumer-side operations.
//
// A producer only reads from a collection, so it accepts anything that can
// hand out a T (Valuer[T]). A consumer only writes, so it accepts anything
// that can take a T (Sink[T]), including a wider list adapted with Widen.
package box

import (
	"fmt"
	"io"

	"github.com/marcodamonte/features/internal/stream"
)

// Box holds a single mutable value.
type Box[T any] struct {
	value T
}

func New[T any](v T) *Box[T] { return &Box[T]{value: v} }

func (b *Box[T]) Value() T     { return b.value }
func (b *Box[T]) SetValue(v T) { b.value = v }

// FruitBox is a Box of fruit names.
type FruitBox struct {
	*Box[string]
}

func NewFruitBox(name string) FruitBox { return FruitBox{New(name)} }

// CarBox is a Box of car serial numbers.
type CarBox struct {
	*Box[int]
}

func NewCarBox(serial int) CarBox { return CarBox{New(serial)} }

// Valuer is the read side of a box.
type Valuer[T any] interface {
	Value() T
}

// PrintValues writes one line per box. B may be *Box[T] or any type that
// embeds it, such as FruitBox.
func PrintValues[T any, B Valuer[T]](w io.Writer, boxes []B) {
	for _, b := range boxes {
		fmt.Fprintf(w, "Box contains: %v\n", b.Value())
	}
}

// Sink is the write side of a collection.
type Sink[T any] interface {
	Add(T)
	fmt.Stringer
}

// List is an append-only collection that is its own Sink.
type List[E any] struct {
	items []E
}

func (l *List[E]) Add(v E)        { l.items = append(l.items, v) }
func (l *List[E]) Items() []E     { return append([]E(nil), l.items...) }
func (l *List[E]) String() string { return stream.Format(l.items) }

type widened[T, E any] struct {
	list *List[E]
	conv func(T) E
}

func (w widened[T, E]) Add(v T)        { w.list.Add(w.conv(v)) }
func (w widened[T, E]) String() string { return w.list.String() }

// Widen lets a List of a wider element type E accept values of T.
func Widen[T, E any](l *List[E], conv func(T) E) Sink[T] {
	return widened[T, E]{list: l, conv: conv}
}

// AsAny is the conversion for widening into a List[any].
func AsAny[T any](v T) any { return v }

// AddTo appends 100 to the sink and prints its contents.
func AddTo(w io.Writer, s Sink[int]) {
	s.Add(100)
	fmt.Fprintf(w, "Added to Box: %s\n", s)
}
