package rangeset

import (
	"fmt"
	"strings"
)

// Range is an interval over T: an ordered pair of cuts (lower, upper) with
// lower <= upper. It is empty iff lower == upper. A Range may be unbounded
// on either side (BelowAll/AboveAll) and may include or exclude either
// endpoint value independently, e.g. [1,4), (4,6], (-∞,5), [5,+∞).
//
// Range carries the Comparator[T] it was built with; combining Ranges built
// from different comparators is not meaningful and is not checked for.
type Range[T any] struct {
	lower, upper Cut[T]
	cmp          Comparator[T]
}

// IsEmpty reports whether the range represents no values at all.
func (r Range[T]) IsEmpty() bool {
	return compareCuts(r.cmp, r.lower, r.upper) == 0
}

// Lower returns the range's lower Cut.
func (r Range[T]) Lower() Cut[T] { return r.lower }

// Upper returns the range's upper Cut.
func (r Range[T]) Upper() Cut[T] { return r.upper }

// HasLowerBound reports whether the range is bounded below.
func (r Range[T]) HasLowerBound() bool { return !r.lower.IsBelowAll() }

// HasUpperBound reports whether the range is bounded above.
func (r Range[T]) HasUpperBound() bool { return !r.upper.IsAboveAll() }

// LowerEndpoint returns the lower pivot value, or (zero, false) if unbounded below.
func (r Range[T]) LowerEndpoint() (T, bool) { return r.lower.Value() }

// UpperEndpoint returns the upper pivot value, or (zero, false) if unbounded above.
func (r Range[T]) UpperEndpoint() (T, bool) { return r.upper.Value() }

// LowerBoundType reports whether the lower endpoint is included (Closed) or
// excluded (Open). Meaningless when HasLowerBound is false.
func (r Range[T]) LowerBoundType() BoundType { return r.lower.asLowerBoundType() }

// UpperBoundType reports whether the upper endpoint is included (Closed) or
// excluded (Open). Meaningless when HasUpperBound is false.
func (r Range[T]) UpperBoundType() BoundType { return r.upper.asUpperBoundType() }

// Contains reports whether x lies within the range.
func (r Range[T]) Contains(x T) bool {
	return compareCuts(r.cmp, r.lower, BelowValueCut(x)) <= 0 &&
		compareCuts(r.cmp, AboveValueCut(x), r.upper) <= 0
}

// Encloses reports whether every value in other also lies in r.
// An empty range encloses only another empty range positioned inside it.
func (r Range[T]) Encloses(other Range[T]) bool {
	return compareCuts(r.cmp, r.lower, other.lower) <= 0 &&
		compareCuts(r.cmp, other.upper, r.upper) <= 0
}

// IsConnected reports whether r and other can be joined into a single Range
// without a gap — i.e. they overlap or touch at a shared cut.
func (r Range[T]) IsConnected(other Range[T]) bool {
	return compareCuts(r.cmp, r.lower, other.upper) <= 0 &&
		compareCuts(r.cmp, other.lower, r.upper) <= 0
}

// Intersection returns r ∩ other. The second result is false if the ranges
// are not connected (in which case the intersection does not exist).
func (r Range[T]) Intersection(other Range[T]) (Range[T], bool) {
	if !r.IsConnected(other) {
		return Range[T]{}, false
	}
	return Range[T]{
		lower: maxCut(r.cmp, r.lower, other.lower),
		upper: minCut(r.cmp, r.upper, other.upper),
		cmp:   r.cmp,
	}, true
}

// Span returns the minimal Range enclosing both r and other, regardless of
// whether they are connected.
func (r Range[T]) Span(other Range[T]) Range[T] {
	return Range[T]{
		lower: minCut(r.cmp, r.lower, other.lower),
		upper: maxCut(r.cmp, r.upper, other.upper),
		cmp:   r.cmp,
	}
}

// Equal reports whether r and other represent the same interval.
func (r Range[T]) Equal(other Range[T]) bool {
	return compareCuts(r.cmp, r.lower, other.lower) == 0 &&
		compareCuts(r.cmp, r.upper, other.upper) == 0
}

// String renders the range in interval-bracket notation, e.g. "[1,4)",
// "(-∞,5]", "{}" for the empty range.
func (r Range[T]) String() string {
	if r.IsEmpty() {
		return "{}"
	}
	var b strings.Builder
	if r.HasLowerBound() {
		v, _ := r.LowerEndpoint()
		if r.LowerBoundType() == Closed {
			b.WriteByte('[')
		} else {
			b.WriteByte('(')
		}
		fmt.Fprintf(&b, "%v", v)
	} else {
		b.WriteString("(-∞")
	}
	b.WriteByte(',')
	if r.HasUpperBound() {
		v, _ := r.UpperEndpoint()
		fmt.Fprintf(&b, "%v", v)
		if r.UpperBoundType() == Closed {
			b.WriteByte(']')
		} else {
			b.WriteByte(')')
		}
	} else {
		b.WriteString("+∞)")
	}
	return b.String()
}

func minCut[T any](cmp Comparator[T], a, b Cut[T]) Cut[T] {
	if compareCuts(cmp, a, b) <= 0 {
		return a
	}
	return b
}

func maxCut[T any](cmp Comparator[T], a, b Cut[T]) Cut[T] {
	if compareCuts(cmp, a, b) >= 0 {
		return a
	}
	return b
}
