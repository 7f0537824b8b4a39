package rangeset

import (
	"iter"

	"github.com/tidwall/btree"
)

// rangesByLowerBound is the primary storage for a TreeRangeSet: a B-tree of
// the set's coalesced ranges, keyed by each range's lower Cut. It is the
// authoritative store invariants I1-I5 are maintained against; every other
// navigable view in this package (RangesByUpperBound, ComplementView,
// SubRangeSetView) derives its reads from one of these.
type rangesByLowerBound[T any] struct {
	bt  *btree.BTreeG[RangeEntry[T]]
	cmp Comparator[T]
}

func newRangesByLowerBound[T any](cmp Comparator[T]) *rangesByLowerBound[T] {
	less := func(a, b RangeEntry[T]) bool { return compareCuts(cmp, a.Key, b.Key) < 0 }
	return &rangesByLowerBound[T]{bt: btree.NewBTreeG(less), cmp: cmp}
}

func (r *rangesByLowerBound[T]) Len() int { return r.bt.Len() }

func (r *rangesByLowerBound[T]) isEmpty() bool { return r.bt.Len() == 0 }

func (r *rangesByLowerBound[T]) clear() { r.bt.Clear() }

// set stores rng keyed by rng.Lower(), overwriting any existing entry at
// that key.
func (r *rangesByLowerBound[T]) set(rng Range[T]) {
	r.bt.Set(RangeEntry[T]{Key: rng.Lower(), Value: rng})
}

// deleteKey removes the entry at the given lower-cut key, if present.
func (r *rangesByLowerBound[T]) deleteKey(k Cut[T]) (Range[T], bool) {
	e, ok := r.bt.Delete(RangeEntry[T]{Key: k})
	return e.Value, ok
}

// getByKey looks up the entry with the exact lower-cut key.
func (r *rangesByLowerBound[T]) getByKey(k Cut[T]) (Range[T], bool) {
	e, ok := r.bt.Get(RangeEntry[T]{Key: k})
	return e.Value, ok
}

func (r *rangesByLowerBound[T]) FirstEntry() (RangeEntry[T], bool) {
	return r.bt.Min()
}

func (r *rangesByLowerBound[T]) LastEntry() (RangeEntry[T], bool) {
	return r.bt.Max()
}

func (r *rangesByLowerBound[T]) FloorEntry(k Cut[T]) (RangeEntry[T], bool) {
	var res RangeEntry[T]
	found := false
	r.bt.Descend(RangeEntry[T]{Key: k}, func(e RangeEntry[T]) bool {
		res = e
		found = true
		return false
	})
	return res, found
}

func (r *rangesByLowerBound[T]) CeilingEntry(k Cut[T]) (RangeEntry[T], bool) {
	var res RangeEntry[T]
	found := false
	r.bt.Ascend(RangeEntry[T]{Key: k}, func(e RangeEntry[T]) bool {
		res = e
		found = true
		return false
	})
	return res, found
}

func (r *rangesByLowerBound[T]) LowerEntry(k Cut[T]) (RangeEntry[T], bool) {
	var res RangeEntry[T]
	found := false
	r.bt.Descend(RangeEntry[T]{Key: k}, func(e RangeEntry[T]) bool {
		if compareCuts(r.cmp, e.Key, k) < 0 {
			res = e
			found = true
			return false
		}
		return true
	})
	return res, found
}

func (r *rangesByLowerBound[T]) HigherEntry(k Cut[T]) (RangeEntry[T], bool) {
	var res RangeEntry[T]
	found := false
	r.bt.Ascend(RangeEntry[T]{Key: k}, func(e RangeEntry[T]) bool {
		if compareCuts(r.cmp, e.Key, k) > 0 {
			res = e
			found = true
			return false
		}
		return true
	})
	return res, found
}

// ascendFromKey iterates entries with key >= from in ascending order,
// stopping when action returns false.
func (r *rangesByLowerBound[T]) ascendFromKey(from Cut[T], action func(RangeEntry[T]) bool) {
	r.bt.Ascend(RangeEntry[T]{Key: from}, action)
}

// deleteKeysBetween removes and returns every stored range whose lower key
// lies in [lo, hi], in ascending order. Deletion happens after the scan
// completes so the walk itself is never disturbed mid-flight.
func (r *rangesByLowerBound[T]) deleteKeysBetween(lo, hi Cut[T]) []Range[T] {
	var doomed []RangeEntry[T]
	r.bt.Ascend(RangeEntry[T]{Key: lo}, func(e RangeEntry[T]) bool {
		if compareCuts(r.cmp, e.Key, hi) > 0 {
			return false
		}
		doomed = append(doomed, e)
		return true
	})
	removed := make([]Range[T], 0, len(doomed))
	for _, e := range doomed {
		r.bt.Delete(e)
		removed = append(removed, e.Value)
	}
	return removed
}

func (r *rangesByLowerBound[T]) HeadMap(k Cut[T], inclusive bool) NavigableRanges[T] {
	out := newRangesByLowerBound[T](r.cmp)
	r.bt.Scan(func(e RangeEntry[T]) bool {
		c := compareCuts(r.cmp, e.Key, k)
		if c < 0 || (inclusive && c == 0) {
			out.bt.Set(e)
			return true
		}
		return c < 0
	})
	return out
}

func (r *rangesByLowerBound[T]) TailMap(k Cut[T], inclusive bool) NavigableRanges[T] {
	out := newRangesByLowerBound[T](r.cmp)
	r.bt.Ascend(RangeEntry[T]{Key: k}, func(e RangeEntry[T]) bool {
		c := compareCuts(r.cmp, e.Key, k)
		if c > 0 || (inclusive && c == 0) {
			out.bt.Set(e)
		}
		return true
	})
	return out
}

func (r *rangesByLowerBound[T]) DescendingMap() NavigableRanges[T] {
	return &descendingRanges[T]{forward: r}
}

func (r *rangesByLowerBound[T]) Entries() iter.Seq[RangeEntry[T]] {
	return func(yield func(RangeEntry[T]) bool) {
		r.bt.Scan(func(e RangeEntry[T]) bool { return yield(e) })
	}
}

func (r *rangesByLowerBound[T]) reverseEntries() iter.Seq[RangeEntry[T]] {
	return func(yield func(RangeEntry[T]) bool) {
		r.bt.Reverse(func(e RangeEntry[T]) bool { return yield(e) })
	}
}

// descendingRanges adapts a NavigableRanges[T] to iterate in reverse key
// order, mirroring treeMap/treeSet's Reversed()/Descend() pairing. Only
// FirstEntry/LastEntry/Entries flip meaning (first-in-descending-order is
// the forward map's last entry); Floor/Ceiling/Lower/Higher/HeadMap/TailMap
// are key-order operations and are unaffected by iteration direction, so
// they delegate straight through to the forward map.
type descendingRanges[T any] struct {
	forward *rangesByLowerBound[T]
}

func (d *descendingRanges[T]) Len() int { return d.forward.Len() }

func (d *descendingRanges[T]) FirstEntry() (RangeEntry[T], bool) { return d.forward.LastEntry() }

func (d *descendingRanges[T]) LastEntry() (RangeEntry[T], bool) { return d.forward.FirstEntry() }

func (d *descendingRanges[T]) LowerEntry(k Cut[T]) (RangeEntry[T], bool) {
	return d.forward.LowerEntry(k)
}

func (d *descendingRanges[T]) FloorEntry(k Cut[T]) (RangeEntry[T], bool) {
	return d.forward.FloorEntry(k)
}

func (d *descendingRanges[T]) CeilingEntry(k Cut[T]) (RangeEntry[T], bool) {
	return d.forward.CeilingEntry(k)
}

func (d *descendingRanges[T]) HigherEntry(k Cut[T]) (RangeEntry[T], bool) {
	return d.forward.HigherEntry(k)
}

func (d *descendingRanges[T]) HeadMap(k Cut[T], inclusive bool) NavigableRanges[T] {
	return d.forward.HeadMap(k, inclusive)
}

func (d *descendingRanges[T]) TailMap(k Cut[T], inclusive bool) NavigableRanges[T] {
	return d.forward.TailMap(k, inclusive)
}

func (d *descendingRanges[T]) DescendingMap() NavigableRanges[T] {
	return d.forward
}

func (d *descendingRanges[T]) Entries() iter.Seq[RangeEntry[T]] {
	return d.forward.reverseEntries()
}

var (
	_ NavigableRanges[int] = (*rangesByLowerBound[int])(nil)
	_ NavigableRanges[int] = (*descendingRanges[int])(nil)
)
