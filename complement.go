package rangeset

import "iter"

// complementView is a non-materialized live view of the values NOT covered
// by a backing RangeSet: Add/Remove are swapped through to the backing set,
// and point and range queries (Contains, RangeContaining, Encloses) are
// answered by probing the backing set's own navigable index for the stored
// range immediately below and above the query point. AsRanges, Span and the
// navigable indices recompute the gaps from the backing set's ranges on
// every call.
type complementView[T any] struct {
	backing RangeSet[T]
	cmp     Comparator[T]
}

func (c *complementView[T]) IsEmpty() bool {
	return c.backing.Encloses(All(c.cmp))
}

// Add removes r from the backing set: every value added to the complement
// is a value taken away from what it complements.
func (c *complementView[T]) Add(r Range[T]) error {
	c.backing.Remove(r)
	return nil
}

// Remove adds r to the backing set.
func (c *complementView[T]) Remove(r Range[T]) {
	_ = c.backing.Add(r)
}

func (c *complementView[T]) AddAll(other RangeSet[T]) error {
	for _, r := range other.AsRanges() {
		if err := c.Add(r); err != nil {
			return err
		}
	}
	return nil
}

func (c *complementView[T]) RemoveAll(other RangeSet[T]) {
	for _, r := range other.AsRanges() {
		c.Remove(r)
	}
}

func (c *complementView[T]) Contains(value T) bool {
	return !c.backing.Contains(value)
}

// RangeContaining locates the gap enclosing value by probing the backing
// set's lower-bound index for its nearest neighbors, in O(log n).
func (c *complementView[T]) RangeContaining(value T) (Range[T], bool) {
	if c.backing.Contains(value) {
		return Range[T]{}, false
	}
	return c.gapContaining(BelowValueCut(value)), true
}

// gapContaining returns the gap that would enclose a point at cut k, without
// checking whether k actually falls inside it.
func (c *complementView[T]) gapContaining(k Cut[T]) Range[T] {
	lo := BelowAllCut[T]()
	if below, ok := c.backing.RangesByLowerBound().FloorEntry(k); ok {
		lo = below.Value.Upper()
	}
	hi := AboveAllCut[T]()
	if above, ok := c.backing.RangesByLowerBound().CeilingEntry(k); ok {
		hi = above.Value.Lower()
	}
	return Range[T]{lower: lo, upper: hi, cmp: c.cmp}
}

func (c *complementView[T]) Encloses(r Range[T]) bool {
	if r.IsEmpty() {
		return true
	}
	return c.gapContaining(r.Lower()).Encloses(r)
}

func (c *complementView[T]) EnclosesAll(other RangeSet[T]) bool {
	for _, r := range other.AsRanges() {
		if !c.Encloses(r) {
			return false
		}
	}
	return true
}

func (c *complementView[T]) Span() (Range[T], error) {
	ranges := c.AsRanges()
	if len(ranges) == 0 {
		return Range[T]{}, ErrEmptyRangeSet
	}
	return Range[T]{lower: ranges[0].Lower(), upper: ranges[len(ranges)-1].Upper(), cmp: c.cmp}, nil
}

// complementGaps computes the maximal gaps between the backing set's stored
// ranges, including the unbounded gaps at either end when the backing set
// does not already start at -∞ or end at +∞.
func complementGaps[T any](cmp Comparator[T], stored []Range[T]) []Range[T] {
	if len(stored) == 0 {
		return []Range[T]{All(cmp)}
	}
	var gaps []Range[T]
	prevUpper := BelowAllCut[T]()
	for _, r := range stored {
		if compareCuts(cmp, prevUpper, r.Lower()) < 0 {
			gaps = append(gaps, Range[T]{lower: prevUpper, upper: r.Lower(), cmp: cmp})
		}
		prevUpper = r.Upper()
	}
	if compareCuts(cmp, prevUpper, AboveAllCut[T]()) < 0 {
		gaps = append(gaps, Range[T]{lower: prevUpper, upper: AboveAllCut[T](), cmp: cmp})
	}
	return gaps
}

func (c *complementView[T]) AsRanges() []Range[T] {
	return complementGaps(c.cmp, c.backing.AsRanges())
}

func (c *complementView[T]) Ranges() iter.Seq[Range[T]] {
	return func(yield func(Range[T]) bool) {
		for _, r := range c.AsRanges() {
			if !yield(r) {
				return
			}
		}
	}
}

// Complement returns the backing set itself: the complement of a complement
// is the original set, live.
func (c *complementView[T]) Complement() RangeSet[T] {
	return c.backing
}

// SubRangeSet returns the window-restricted complement, composed from the
// backing set's own complement-then-restrict rather than re-implemented.
func (c *complementView[T]) SubRangeSet(window Range[T]) (RangeSet[T], error) {
	return &subRangeSetView[T]{backing: c, window: window, cmp: c.cmp}, nil
}

func (c *complementView[T]) RangesByLowerBound() NavigableRanges[T] {
	return newGapIndex(c.cmp, c.AsRanges())
}

func (c *complementView[T]) RangesByUpperBound() NavigableRanges[T] {
	entries := make([]RangeEntry[T], 0)
	for _, r := range c.AsRanges() {
		entries = append(entries, RangeEntry[T]{Key: r.Upper(), Value: r})
	}
	return newStaticRanges(c.cmp, entries)
}

func (c *complementView[T]) Equal(other RangeSet[T]) bool {
	return rangeSetsEqual[T](c, other)
}

func (c *complementView[T]) String() string {
	return formatRangeSet("ComplementView", c.Ranges())
}

// newGapIndex builds a NavigableRanges keyed by lower Cut over an already
// computed, already sorted slice of gap ranges. Used for the complement
// view's RangesByLowerBound: the gaps themselves are cheap to recompute from
// the backing index (O(n) in the number of stored ranges), so no persistent
// structure is kept between calls.
func newGapIndex[T any](cmp Comparator[T], gaps []Range[T]) NavigableRanges[T] {
	entries := make([]RangeEntry[T], 0, len(gaps))
	for _, r := range gaps {
		entries = append(entries, RangeEntry[T]{Key: r.Lower(), Value: r})
	}
	return newStaticRanges(cmp, entries)
}

var _ RangeSet[int] = (*complementView[int])(nil)
