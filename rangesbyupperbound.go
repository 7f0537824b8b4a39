package rangeset

import (
	"iter"
	"sort"
)

// rangesByUpperBound is the navigable view over a TreeRangeSet's storage
// re-keyed by each stored range's upper Cut. Per the disjointness invariant
// (I2), the order of stored ranges by lower Cut is identical to their order
// by upper Cut, so this is not a second tree: every lookup is answered by
// one or two probes into the primary rangesByLowerBound index.
type rangesByUpperBound[T any] struct {
	primary *rangesByLowerBound[T]
}

func newRangesByUpperBound[T any](primary *rangesByLowerBound[T]) *rangesByUpperBound[T] {
	return &rangesByUpperBound[T]{primary: primary}
}

func rekeyByUpper[T any](e RangeEntry[T]) RangeEntry[T] {
	return RangeEntry[T]{Key: e.Value.Upper(), Value: e.Value}
}

func (u *rangesByUpperBound[T]) Len() int { return u.primary.Len() }

func (u *rangesByUpperBound[T]) FirstEntry() (RangeEntry[T], bool) {
	e, ok := u.primary.FirstEntry()
	if !ok {
		return RangeEntry[T]{}, false
	}
	return rekeyByUpper(e), true
}

func (u *rangesByUpperBound[T]) LastEntry() (RangeEntry[T], bool) {
	e, ok := u.primary.LastEntry()
	if !ok {
		return RangeEntry[T]{}, false
	}
	return rekeyByUpper(e), true
}

func (u *rangesByUpperBound[T]) FloorEntry(k Cut[T]) (RangeEntry[T], bool) {
	if ok, e := u.floorOrLower(k, false); ok {
		return rekeyByUpper(e), true
	}
	return RangeEntry[T]{}, false
}

func (u *rangesByUpperBound[T]) LowerEntry(k Cut[T]) (RangeEntry[T], bool) {
	if ok, e := u.floorOrLower(k, true); ok {
		return rekeyByUpper(e), true
	}
	return RangeEntry[T]{}, false
}

// floorOrLower implements both FloorEntry (strict=false, upper<=k qualifies)
// and LowerEntry (strict=true, upper<k qualifies) in terms of the primary
// index's own FloorEntry/LowerEntry.
func (u *rangesByUpperBound[T]) floorOrLower(k Cut[T], strict bool) (bool, RangeEntry[T]) {
	candidate, ok := u.primary.FloorEntry(k)
	if !ok {
		return false, RangeEntry[T]{}
	}
	c := compareCuts(u.primary.cmp, candidate.Value.Upper(), k)
	if c < 0 || (!strict && c == 0) {
		return true, candidate
	}
	prev, ok := u.primary.LowerEntry(candidate.Key)
	return ok, prev
}

func (u *rangesByUpperBound[T]) CeilingEntry(k Cut[T]) (RangeEntry[T], bool) {
	if ok, e := u.ceilingOrHigher(k, false); ok {
		return rekeyByUpper(e), true
	}
	return RangeEntry[T]{}, false
}

func (u *rangesByUpperBound[T]) HigherEntry(k Cut[T]) (RangeEntry[T], bool) {
	if ok, e := u.ceilingOrHigher(k, true); ok {
		return rekeyByUpper(e), true
	}
	return RangeEntry[T]{}, false
}

// ceilingOrHigher implements both CeilingEntry (strict=false, upper>=k
// qualifies) and HigherEntry (strict=true, upper>k qualifies) in terms of
// the primary index's own FloorEntry/HigherEntry/FirstEntry.
func (u *rangesByUpperBound[T]) ceilingOrHigher(k Cut[T], strict bool) (bool, RangeEntry[T]) {
	candidate, ok := u.primary.FloorEntry(k)
	if !ok {
		first, ok := u.primary.FirstEntry()
		return ok, first
	}
	c := compareCuts(u.primary.cmp, candidate.Value.Upper(), k)
	if c > 0 || (!strict && c == 0) {
		return true, candidate
	}
	next, ok := u.primary.HigherEntry(candidate.Key)
	return ok, next
}

func (u *rangesByUpperBound[T]) snapshot() []RangeEntry[T] {
	entries := make([]RangeEntry[T], 0, u.primary.Len())
	for e := range u.primary.Entries() {
		entries = append(entries, rekeyByUpper(e))
	}
	return entries
}

func (u *rangesByUpperBound[T]) HeadMap(k Cut[T], inclusive bool) NavigableRanges[T] {
	all := u.snapshot()
	idx := sort.Search(len(all), func(i int) bool { return compareCuts(u.primary.cmp, all[i].Key, k) >= 0 })
	if inclusive {
		for idx < len(all) && compareCuts(u.primary.cmp, all[idx].Key, k) == 0 {
			idx++
		}
	}
	return newStaticRanges(u.primary.cmp, all[:idx])
}

func (u *rangesByUpperBound[T]) TailMap(k Cut[T], inclusive bool) NavigableRanges[T] {
	all := u.snapshot()
	idx := sort.Search(len(all), func(i int) bool { return compareCuts(u.primary.cmp, all[i].Key, k) >= 0 })
	if !inclusive {
		for idx < len(all) && compareCuts(u.primary.cmp, all[idx].Key, k) == 0 {
			idx++
		}
	}
	return newStaticRanges(u.primary.cmp, all[idx:])
}

func (u *rangesByUpperBound[T]) DescendingMap() NavigableRanges[T] {
	return newStaticRanges(u.primary.cmp, u.snapshot()).DescendingMap()
}

func (u *rangesByUpperBound[T]) Entries() iter.Seq[RangeEntry[T]] {
	return func(yield func(RangeEntry[T]) bool) {
		for e := range u.primary.Entries() {
			if !yield(rekeyByUpper(e)) {
				return
			}
		}
	}
}

// staticRanges is a frozen, sorted snapshot of entries, used for the
// results of HeadMap/TailMap on a by-upper index (and its DescendingMap)
// where rebuilding a second live B-tree just to hold a read-only slice of
// the first would contradict the "not a separate tree" design this package
// follows for RangesByUpperBound itself.
type staticRanges[T any] struct {
	entries []RangeEntry[T]
	cmp     Comparator[T]
}

func newStaticRanges[T any](cmp Comparator[T], entries []RangeEntry[T]) *staticRanges[T] {
	return &staticRanges[T]{entries: entries, cmp: cmp}
}

func (s *staticRanges[T]) Len() int { return len(s.entries) }

func (s *staticRanges[T]) FirstEntry() (RangeEntry[T], bool) {
	if len(s.entries) == 0 {
		return RangeEntry[T]{}, false
	}
	return s.entries[0], true
}

func (s *staticRanges[T]) LastEntry() (RangeEntry[T], bool) {
	if len(s.entries) == 0 {
		return RangeEntry[T]{}, false
	}
	return s.entries[len(s.entries)-1], true
}

func (s *staticRanges[T]) ceilingIndex(k Cut[T]) int {
	return sort.Search(len(s.entries), func(i int) bool { return compareCuts(s.cmp, s.entries[i].Key, k) >= 0 })
}

func (s *staticRanges[T]) FloorEntry(k Cut[T]) (RangeEntry[T], bool) {
	idx := s.ceilingIndex(k)
	if idx < len(s.entries) && compareCuts(s.cmp, s.entries[idx].Key, k) == 0 {
		return s.entries[idx], true
	}
	if idx == 0 {
		return RangeEntry[T]{}, false
	}
	return s.entries[idx-1], true
}

func (s *staticRanges[T]) CeilingEntry(k Cut[T]) (RangeEntry[T], bool) {
	idx := s.ceilingIndex(k)
	if idx >= len(s.entries) {
		return RangeEntry[T]{}, false
	}
	return s.entries[idx], true
}

func (s *staticRanges[T]) LowerEntry(k Cut[T]) (RangeEntry[T], bool) {
	idx := s.ceilingIndex(k)
	if idx == 0 {
		return RangeEntry[T]{}, false
	}
	return s.entries[idx-1], true
}

func (s *staticRanges[T]) HigherEntry(k Cut[T]) (RangeEntry[T], bool) {
	idx := s.ceilingIndex(k)
	if idx < len(s.entries) && compareCuts(s.cmp, s.entries[idx].Key, k) == 0 {
		idx++
	}
	if idx >= len(s.entries) {
		return RangeEntry[T]{}, false
	}
	return s.entries[idx], true
}

func (s *staticRanges[T]) HeadMap(k Cut[T], inclusive bool) NavigableRanges[T] {
	idx := s.ceilingIndex(k)
	if inclusive {
		for idx < len(s.entries) && compareCuts(s.cmp, s.entries[idx].Key, k) == 0 {
			idx++
		}
	}
	return newStaticRanges(s.cmp, s.entries[:idx])
}

func (s *staticRanges[T]) TailMap(k Cut[T], inclusive bool) NavigableRanges[T] {
	idx := s.ceilingIndex(k)
	if !inclusive {
		for idx < len(s.entries) && compareCuts(s.cmp, s.entries[idx].Key, k) == 0 {
			idx++
		}
	}
	return newStaticRanges(s.cmp, s.entries[idx:])
}

func (s *staticRanges[T]) DescendingMap() NavigableRanges[T] {
	return &staticDescending[T]{forward: s}
}

func (s *staticRanges[T]) Entries() iter.Seq[RangeEntry[T]] {
	return func(yield func(RangeEntry[T]) bool) {
		for _, e := range s.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// staticDescending mirrors descendingRanges but over a staticRanges snapshot.
type staticDescending[T any] struct {
	forward *staticRanges[T]
}

func (d *staticDescending[T]) Len() int { return d.forward.Len() }

func (d *staticDescending[T]) FirstEntry() (RangeEntry[T], bool) { return d.forward.LastEntry() }

func (d *staticDescending[T]) LastEntry() (RangeEntry[T], bool) { return d.forward.FirstEntry() }

func (d *staticDescending[T]) LowerEntry(k Cut[T]) (RangeEntry[T], bool) { return d.forward.LowerEntry(k) }

func (d *staticDescending[T]) FloorEntry(k Cut[T]) (RangeEntry[T], bool) { return d.forward.FloorEntry(k) }

func (d *staticDescending[T]) CeilingEntry(k Cut[T]) (RangeEntry[T], bool) {
	return d.forward.CeilingEntry(k)
}

func (d *staticDescending[T]) HigherEntry(k Cut[T]) (RangeEntry[T], bool) {
	return d.forward.HigherEntry(k)
}

func (d *staticDescending[T]) HeadMap(k Cut[T], inclusive bool) NavigableRanges[T] {
	return d.forward.HeadMap(k, inclusive)
}

func (d *staticDescending[T]) TailMap(k Cut[T], inclusive bool) NavigableRanges[T] {
	return d.forward.TailMap(k, inclusive)
}

func (d *staticDescending[T]) DescendingMap() NavigableRanges[T] { return d.forward }

func (d *staticDescending[T]) Entries() iter.Seq[RangeEntry[T]] {
	return func(yield func(RangeEntry[T]) bool) {
		entries := d.forward.entries
		for i := len(entries) - 1; i >= 0; i-- {
			if !yield(entries[i]) {
				return
			}
		}
	}
}

var (
	_ NavigableRanges[int] = (*rangesByUpperBound[int])(nil)
	_ NavigableRanges[int] = (*staticRanges[int])(nil)
	_ NavigableRanges[int] = (*staticDescending[int])(nil)
)
