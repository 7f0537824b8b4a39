package rangeset

import (
	"fmt"
	"iter"
)

// subRangeSetView is a non-materialized live view of a backing RangeSet
// restricted to a window: only values in both the backing set and window are
// visible, and only ranges enclosed by window may be added through it.
type subRangeSetView[T any] struct {
	backing RangeSet[T]
	window  Range[T]
	cmp     Comparator[T]
}

func (s *subRangeSetView[T]) IsEmpty() bool {
	return len(s.AsRanges()) == 0
}

// Add inserts r into the backing set, failing with ErrInvalidRange if the
// window does not enclose r. This view never clips a partially-out-of-window
// range silently.
func (s *subRangeSetView[T]) Add(r Range[T]) error {
	if r.IsEmpty() {
		return nil
	}
	if !s.window.Encloses(r) {
		return fmt.Errorf("%w: window %v does not enclose %v", ErrInvalidRange, s.window, r)
	}
	return s.backing.Add(r)
}

// Remove deletes r ∩ window from the backing set.
func (s *subRangeSetView[T]) Remove(r Range[T]) {
	if clipped, ok := r.Intersection(s.window); ok {
		s.backing.Remove(clipped)
	}
}

func (s *subRangeSetView[T]) AddAll(other RangeSet[T]) error {
	for _, r := range other.AsRanges() {
		if err := s.Add(r); err != nil {
			return err
		}
	}
	return nil
}

func (s *subRangeSetView[T]) RemoveAll(other RangeSet[T]) {
	for _, r := range other.AsRanges() {
		s.Remove(r)
	}
}

func (s *subRangeSetView[T]) Contains(value T) bool {
	return s.window.Contains(value) && s.backing.Contains(value)
}

func (s *subRangeSetView[T]) RangeContaining(value T) (Range[T], bool) {
	if !s.window.Contains(value) {
		return Range[T]{}, false
	}
	r, ok := s.backing.RangeContaining(value)
	if !ok {
		return Range[T]{}, false
	}
	return r.Intersection(s.window)
}

func (s *subRangeSetView[T]) Encloses(r Range[T]) bool {
	if r.IsEmpty() {
		return true
	}
	return s.window.Encloses(r) && s.backing.Encloses(r)
}

func (s *subRangeSetView[T]) EnclosesAll(other RangeSet[T]) bool {
	for _, r := range other.AsRanges() {
		if !s.Encloses(r) {
			return false
		}
	}
	return true
}

func (s *subRangeSetView[T]) Span() (Range[T], error) {
	ranges := s.AsRanges()
	if len(ranges) == 0 {
		return Range[T]{}, ErrEmptyRangeSet
	}
	return Range[T]{lower: ranges[0].Lower(), upper: ranges[len(ranges)-1].Upper(), cmp: s.cmp}, nil
}

// AsRanges returns every backing range clipped to window, in order, dropping
// any clip that comes out empty. Per (P7), this is exactly
// { r ∩ W : r ∈ backing.asRanges(), r connected to W }.
func (s *subRangeSetView[T]) AsRanges() []Range[T] {
	if s.window.IsEmpty() {
		return nil
	}
	lb := s.backing.RangesByLowerBound()
	var out []Range[T]
	start := s.window.Lower()
	if below, ok := lb.FloorEntry(s.window.Lower()); ok && compareCuts(s.cmp, below.Value.Upper(), s.window.Lower()) > 0 {
		start = below.Key
	}
	for e := range lb.TailMap(start, true).Entries() {
		if compareCuts(s.cmp, e.Value.Lower(), s.window.Upper()) >= 0 {
			break
		}
		clipped, ok := e.Value.Intersection(s.window)
		if !ok || clipped.IsEmpty() {
			continue
		}
		out = append(out, clipped)
	}
	return out
}

func (s *subRangeSetView[T]) Ranges() iter.Seq[Range[T]] {
	return func(yield func(Range[T]) bool) {
		for _, r := range s.AsRanges() {
			if !yield(r) {
				return
			}
		}
	}
}

// Complement returns the window-restricted complement of the backing set:
// the gaps of backing, intersected with window, expressed by composing the
// backing's own complement view rather than re-deriving gap logic here.
func (s *subRangeSetView[T]) Complement() RangeSet[T] {
	return &subRangeSetView[T]{backing: s.backing.Complement(), window: s.window, cmp: s.cmp}
}

// SubRangeSet narrows the window further, intersecting it with the existing
// one. A window disjoint from the current one yields an always-empty view.
func (s *subRangeSetView[T]) SubRangeSet(window Range[T]) (RangeSet[T], error) {
	narrowed, ok := s.window.Intersection(window)
	if !ok {
		narrowed = Range[T]{lower: window.Lower(), upper: window.Lower(), cmp: s.cmp}
	}
	return &subRangeSetView[T]{backing: s.backing, window: narrowed, cmp: s.cmp}, nil
}

func (s *subRangeSetView[T]) RangesByLowerBound() NavigableRanges[T] {
	entries := make([]RangeEntry[T], 0)
	for _, r := range s.AsRanges() {
		entries = append(entries, RangeEntry[T]{Key: r.Lower(), Value: r})
	}
	return newStaticRanges(s.cmp, entries)
}

func (s *subRangeSetView[T]) RangesByUpperBound() NavigableRanges[T] {
	entries := make([]RangeEntry[T], 0)
	for _, r := range s.AsRanges() {
		entries = append(entries, RangeEntry[T]{Key: r.Upper(), Value: r})
	}
	return newStaticRanges(s.cmp, entries)
}

func (s *subRangeSetView[T]) Equal(other RangeSet[T]) bool {
	return rangeSetsEqual[T](s, other)
}

func (s *subRangeSetView[T]) String() string {
	return formatRangeSet("SubRangeSetView", s.Ranges())
}

var _ RangeSet[int] = (*subRangeSetView[int])(nil)
