package rangeset

import "iter"

// treeRangeSet is the mutable RangeSet implementation: a finite union of
// disjoint, non-empty, maximally-coalesced ranges backed by a B-tree keyed
// on lower Cut. Not concurrent-safe for mutation; concurrent reads of a
// frozen set are fine.
type treeRangeSet[T any] struct {
	lower *rangesByLowerBound[T]
	cmp   Comparator[T]
}

// New creates an empty RangeSet ordered by cmp.
func New[T any](cmp Comparator[T]) RangeSet[T] {
	if cmp == nil {
		panic("rangeset.New: comparator must not be nil")
	}
	return &treeRangeSet[T]{lower: newRangesByLowerBound(cmp), cmp: cmp}
}

// NewOrdered creates an empty RangeSet for an Ordered element type, using
// cmp.Compare.
func NewOrdered[T Ordered]() RangeSet[T] {
	return New(CompareFunc[T]())
}

// NewFrom creates a RangeSet ordered by cmp containing the same values as
// other.
func NewFrom[T any](cmp Comparator[T], other RangeSet[T]) RangeSet[T] {
	s := New(cmp)
	s.AddAll(other)
	return s
}

func (s *treeRangeSet[T]) IsEmpty() bool { return s.lower.isEmpty() }

// Add inserts r into the set, coalescing with any ranges it overlaps or
// touches. Always succeeds; returns nil to satisfy RangeSet[T].
func (s *treeRangeSet[T]) Add(r Range[T]) error {
	if r.IsEmpty() {
		return nil
	}
	lo, hi := r.Lower(), r.Upper()
	if x, ok := s.lower.FloorEntry(lo); ok && compareCuts(s.cmp, x.Value.Upper(), lo) >= 0 {
		lo = x.Value.Lower()
	}
	if y, ok := s.lower.FloorEntry(hi); ok && compareCuts(s.cmp, y.Value.Upper(), hi) >= 0 {
		hi = y.Value.Upper()
	}
	s.lower.deleteKeysBetween(lo, hi)
	s.lower.set(Range[T]{lower: lo, upper: hi, cmp: s.cmp})
	return nil
}

// Remove deletes every value of r from the set, shrinking or splitting any
// range it cuts through.
func (s *treeRangeSet[T]) Remove(r Range[T]) {
	if r.IsEmpty() {
		return
	}
	left, hasLeft := s.lower.LowerEntry(r.Lower())
	shrinkLeft := hasLeft && compareCuts(s.cmp, left.Value.Upper(), r.Lower()) > 0

	right, hasRight := s.lower.FloorEntry(r.Upper())
	shrinkRight := hasRight && compareCuts(s.cmp, right.Value.Upper(), r.Upper()) > 0

	s.lower.deleteKeysBetween(r.Lower(), r.Upper())

	if shrinkLeft {
		s.lower.set(Range[T]{lower: left.Value.Lower(), upper: r.Lower(), cmp: s.cmp})
	}
	if shrinkRight {
		s.lower.set(Range[T]{lower: r.Upper(), upper: right.Value.Upper(), cmp: s.cmp})
	}
}

// AddAll adds every range of other into s.
func (s *treeRangeSet[T]) AddAll(other RangeSet[T]) error {
	for _, r := range other.AsRanges() {
		if err := s.Add(r); err != nil {
			return err
		}
	}
	return nil
}

// RemoveAll removes every range of other from s.
func (s *treeRangeSet[T]) RemoveAll(other RangeSet[T]) {
	for _, r := range other.AsRanges() {
		s.Remove(r)
	}
}

// Contains reports whether value lies in some stored range.
func (s *treeRangeSet[T]) Contains(value T) bool {
	_, ok := s.RangeContaining(value)
	return ok
}

// RangeContaining returns the stored range containing value, if any.
func (s *treeRangeSet[T]) RangeContaining(value T) (Range[T], bool) {
	e, ok := s.lower.FloorEntry(BelowValueCut(value))
	if !ok || !e.Value.Contains(value) {
		return Range[T]{}, false
	}
	return e.Value, true
}

// Encloses reports whether some stored range encloses q. An empty q is
// always reported as enclosed.
func (s *treeRangeSet[T]) Encloses(q Range[T]) bool {
	if q.IsEmpty() {
		return true
	}
	e, ok := s.lower.FloorEntry(q.Lower())
	return ok && e.Value.Encloses(q)
}

// EnclosesAll reports whether s encloses every range of other.
func (s *treeRangeSet[T]) EnclosesAll(other RangeSet[T]) bool {
	for _, r := range other.AsRanges() {
		if !s.Encloses(r) {
			return false
		}
	}
	return true
}

// Span returns the smallest range enclosing every stored range, failing if
// the set is empty.
func (s *treeRangeSet[T]) Span() (Range[T], error) {
	first, ok := s.lower.FirstEntry()
	if !ok {
		return Range[T]{}, ErrEmptyRangeSet
	}
	last, _ := s.lower.LastEntry()
	return Range[T]{lower: first.Value.Lower(), upper: last.Value.Upper(), cmp: s.cmp}, nil
}

// AsRanges returns a snapshot of the stored ranges in ascending order.
func (s *treeRangeSet[T]) AsRanges() []Range[T] {
	out := make([]Range[T], 0, s.lower.Len())
	for e := range s.lower.Entries() {
		out = append(out, e.Value)
	}
	return out
}

// Ranges returns an ordered, non-materializing sequence of the stored
// ranges.
func (s *treeRangeSet[T]) Ranges() iter.Seq[Range[T]] {
	return func(yield func(Range[T]) bool) {
		for e := range s.lower.Entries() {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Complement returns a live view of the gaps in s.
func (s *treeRangeSet[T]) Complement() RangeSet[T] {
	return &complementView[T]{backing: s, cmp: s.cmp}
}

// SubRangeSet returns a live view of s restricted to window. Fails only if
// window itself is malformed, which cannot happen for a Range already
// constructed successfully; kept fallible to match the view's own Add
// contract and to allow future window validation.
func (s *treeRangeSet[T]) SubRangeSet(window Range[T]) (RangeSet[T], error) {
	return &subRangeSetView[T]{backing: s, window: window, cmp: s.cmp}, nil
}

// RangesByLowerBound exposes the primary navigable index.
func (s *treeRangeSet[T]) RangesByLowerBound() NavigableRanges[T] {
	return s.lower
}

// RangesByUpperBound exposes the derived by-upper navigable index.
func (s *treeRangeSet[T]) RangesByUpperBound() NavigableRanges[T] {
	return newRangesByUpperBound(s.lower)
}

// Equal reports whether s and other contain the same ranges in the same
// order.
func (s *treeRangeSet[T]) Equal(other RangeSet[T]) bool {
	return rangeSetsEqual[T](s, other)
}

// String renders the set as its ordered ranges, e.g.
// "TreeRangeSet{[1,4), [6,+∞)}".
func (s *treeRangeSet[T]) String() string {
	return formatRangeSet("TreeRangeSet", s.Ranges())
}

func rangeSetsEqual[T any](a, b RangeSet[T]) bool {
	ar, br := a.AsRanges(), b.AsRanges()
	if len(ar) != len(br) {
		return false
	}
	for i := range ar {
		if !ar[i].Equal(br[i]) {
			return false
		}
	}
	return true
}

var _ RangeSet[int] = (*treeRangeSet[int])(nil)
