package rangeset

import (
	"iter"
	"strings"
)

// RangeSet is a finite union of disjoint, non-empty ranges over T, stored as
// its maximal coalesced form: no two stored ranges are connected (they
// neither overlap nor touch), and every value in the set lies in exactly one
// stored range. Implementations are not safe for concurrent mutation.
type RangeSet[T any] interface {
	// IsEmpty reports whether the set contains no values.
	IsEmpty() bool

	// Add inserts every value of r into the set, merging with and absorbing
	// any ranges r overlaps or touches. A no-op if r is empty. Fails with
	// ErrInvalidRange on a SubRangeSetView whose window does not enclose r.
	Add(r Range[T]) error
	// Remove deletes every value of r from the set, shrinking or splitting
	// any stored range it cuts through. A no-op if r is empty.
	Remove(r Range[T])
	// AddAll adds every range of other into the set, stopping at the first
	// range Add rejects.
	AddAll(other RangeSet[T]) error
	// RemoveAll removes every range of other from the set.
	RemoveAll(other RangeSet[T])

	// Contains reports whether value lies in some stored range.
	Contains(value T) bool
	// RangeContaining returns the stored range containing value, if any.
	RangeContaining(value T) (Range[T], bool)

	// Encloses reports whether some single stored range encloses r. An
	// empty r is always reported as enclosed.
	Encloses(r Range[T]) bool
	// EnclosesAll reports whether the set encloses every range of other.
	EnclosesAll(other RangeSet[T]) bool

	// Span returns the minimal range enclosing every stored range. Fails
	// with ErrEmptyRangeSet if the set is empty.
	Span() (Range[T], error)

	// AsRanges returns a snapshot of the stored ranges in ascending order.
	AsRanges() []Range[T]
	// Ranges returns an ordered sequence over the stored ranges. A
	// TreeRangeSet walks its index without building a slice; the complement
	// and sub-range views compute their full range slice before yielding.
	Ranges() iter.Seq[Range[T]]

	// Complement returns a live view of the values NOT in the set. Mutating
	// the complement mutates the backing set (and vice versa).
	Complement() RangeSet[T]
	// SubRangeSet returns a live view of the set restricted to window.
	// Add on the returned view fails with ErrInvalidRange if window does
	// not enclose the range being added.
	SubRangeSet(window Range[T]) (RangeSet[T], error)

	// RangesByLowerBound exposes the stored ranges as a navigable index
	// keyed by each range's lower Cut.
	RangesByLowerBound() NavigableRanges[T]
	// RangesByUpperBound exposes the stored ranges as a navigable index
	// keyed by each range's upper Cut.
	RangesByUpperBound() NavigableRanges[T]

	// Equal reports whether the set and other contain the same ranges.
	Equal(other RangeSet[T]) bool

	String() string
}

// formatRangeSet renders name and the ranges of seq as e.g.
// "TreeRangeSet{[1,4), [6,+∞)}".
func formatRangeSet[T any](name string, seq iter.Seq[Range[T]]) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('{')
	first := true
	for r := range seq {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(r.String())
	}
	b.WriteByte('}')
	return b.String()
}
