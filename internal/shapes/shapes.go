// Package shapes models a closed set of geometric variants.
//
// Shape is sealed: the unexported shape method means only the types in this
// package can satisfy it, so a type switch over Circle and Rectangle covers
// every value a caller can construct.
package shapes

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Shape is implemented by exactly Circle and Rectangle.
type Shape interface {
	shape()
}

// Circle is a shape described by its radius.
type Circle struct {
	Radius float64
}

// Rectangle is a shape described by its two side lengths.
type Rectangle struct {
	Length, Breadth float64
}

func (Circle) shape()    {}
func (Rectangle) shape() {}

func (c Circle) String() string { return fmt.Sprintf("Circle[radius=%s]", Double(c.Radius)) }

func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle[length=%s, breadth=%s]", Double(r.Length), Double(r.Breadth))
}

// Describe writes one line naming the variant and its fields.
func Describe(w io.Writer, s Shape) {
	switch v := s.(type) {
	case Circle:
		fmt.Fprintf(w, "Circle with radius: %s\n", Double(v.Radius))
	case Rectangle:
		fmt.Fprintf(w, "Rectangle with length: %s and breadth: %s\n", Double(v.Length), Double(v.Breadth))
	}
}

// Classify maps a shape to a fixed label.
func Classify(s Shape) string {
	switch s.(type) {
	case Circle:
		return "A Circle"
	case Rectangle:
		return "A Rectangle"
	default:
		return "Unknown Shape"
	}
}

// Double renders f with the shortest exact representation but always keeps
// a fractional part: 5 → "5.0", 4.25 → "4.25". Magnitudes outside
// [1e-3, 1e7) switch to scientific notation: 1e7 → "1.0E7", 1e-4 → "1.0E-4".
func Double(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if a := math.Abs(f); a != 0 && (a < 1e-3 || a >= 1e7) {
		mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'E', -1, 64), "E")
		if !strings.Contains(mant, ".") {
			mant += ".0"
		}
		e, _ := strconv.Atoi(exp)
		return mant + "E" + strconv.Itoa(e)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
