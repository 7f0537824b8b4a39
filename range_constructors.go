package rangeset

import "fmt"

// newRangeChecked builds a Range from two cuts, failing if lower > upper.
// lower == upper is allowed (the canonical empty range).
func newRangeChecked[T any](cmp Comparator[T], lower, upper Cut[T]) (Range[T], error) {
	if compareCuts(cmp, lower, upper) > 0 {
		return Range[T]{}, fmt.Errorf("%w: lower bound %v greater than upper bound %v", ErrInvalidRange, lower, upper)
	}
	return Range[T]{lower: lower, upper: upper, cmp: cmp}, nil
}

// Open returns the range (a, b) = {x : a < x < b}, using cmp to order T.
// Fails if a >= b: unlike the closed/half-open constructors, Open(v, v)
// is not a valid empty range (its lower cut sorts strictly after its
// upper cut) — use ClosedOpen(v, v) or OpenClosed(v, v) for the empty
// range at v.
func Open[T any](cmp Comparator[T], a, b T) (Range[T], error) {
	return newRangeChecked(cmp, AboveValueCut(a), BelowValueCut(b))
}

// OpenOrdered is Open for an Ordered element type, using cmp.Compare.
func OpenOrdered[T Ordered](a, b T) (Range[T], error) {
	return Open(CompareFunc[T](), a, b)
}

// Closed returns the range [a, b] = {x : a <= x <= b}. Fails if a > b.
func Closed[T any](cmp Comparator[T], a, b T) (Range[T], error) {
	return newRangeChecked(cmp, BelowValueCut(a), AboveValueCut(b))
}

// ClosedOrdered is Closed for an Ordered element type.
func ClosedOrdered[T Ordered](a, b T) (Range[T], error) {
	return Closed(CompareFunc[T](), a, b)
}

// OpenClosed returns the range (a, b] = {x : a < x <= b}. Fails if a > b.
// OpenClosed(v, v) is the empty range at v.
func OpenClosed[T any](cmp Comparator[T], a, b T) (Range[T], error) {
	return newRangeChecked(cmp, AboveValueCut(a), AboveValueCut(b))
}

// OpenClosedOrdered is OpenClosed for an Ordered element type.
func OpenClosedOrdered[T Ordered](a, b T) (Range[T], error) {
	return OpenClosed(CompareFunc[T](), a, b)
}

// ClosedOpen returns the range [a, b) = {x : a <= x < b}. Fails if a > b.
// ClosedOpen(v, v) is the empty range at v.
func ClosedOpen[T any](cmp Comparator[T], a, b T) (Range[T], error) {
	return newRangeChecked(cmp, BelowValueCut(a), BelowValueCut(b))
}

// ClosedOpenOrdered is ClosedOpen for an Ordered element type.
func ClosedOpenOrdered[T Ordered](a, b T) (Range[T], error) {
	return ClosedOpen(CompareFunc[T](), a, b)
}

// NewRange returns the range between a and b with the given bound types on
// each end, e.g. NewRange(cmp, 1, Closed, 4, Open) == Closed(cmp, 1, 4)
// minus its upper endpoint. Fails if a > b.
func NewRange[T any](cmp Comparator[T], a T, lowerType BoundType, b T, upperType BoundType) (Range[T], error) {
	return newRangeChecked(cmp, lowerCutFor(a, lowerType), upperCutFor(b, upperType))
}

// NewRangeOrdered is NewRange for an Ordered element type.
func NewRangeOrdered[T Ordered](a T, lowerType BoundType, b T, upperType BoundType) (Range[T], error) {
	return NewRange(CompareFunc[T](), a, lowerType, b, upperType)
}

// Singleton returns the range [v, v] containing exactly v.
func Singleton[T any](cmp Comparator[T], v T) Range[T] {
	return Range[T]{lower: BelowValueCut(v), upper: AboveValueCut(v), cmp: cmp}
}

// SingletonOrdered is Singleton for an Ordered element type.
func SingletonOrdered[T Ordered](v T) Range[T] {
	return Singleton(CompareFunc[T](), v)
}

// LessThan returns the range (-∞, v) = {x : x < v}.
func LessThan[T any](cmp Comparator[T], v T) Range[T] {
	return Range[T]{lower: BelowAllCut[T](), upper: BelowValueCut(v), cmp: cmp}
}

// LessThanOrdered is LessThan for an Ordered element type.
func LessThanOrdered[T Ordered](v T) Range[T] {
	return LessThan(CompareFunc[T](), v)
}

// AtMost returns the range (-∞, v] = {x : x <= v}.
func AtMost[T any](cmp Comparator[T], v T) Range[T] {
	return Range[T]{lower: BelowAllCut[T](), upper: AboveValueCut(v), cmp: cmp}
}

// AtMostOrdered is AtMost for an Ordered element type.
func AtMostOrdered[T Ordered](v T) Range[T] {
	return AtMost(CompareFunc[T](), v)
}

// GreaterThan returns the range (v, +∞) = {x : x > v}.
func GreaterThan[T any](cmp Comparator[T], v T) Range[T] {
	return Range[T]{lower: AboveValueCut(v), upper: AboveAllCut[T](), cmp: cmp}
}

// GreaterThanOrdered is GreaterThan for an Ordered element type.
func GreaterThanOrdered[T Ordered](v T) Range[T] {
	return GreaterThan(CompareFunc[T](), v)
}

// AtLeast returns the range [v, +∞) = {x : x >= v}.
func AtLeast[T any](cmp Comparator[T], v T) Range[T] {
	return Range[T]{lower: BelowValueCut(v), upper: AboveAllCut[T](), cmp: cmp}
}

// AtLeastOrdered is AtLeast for an Ordered element type.
func AtLeastOrdered[T Ordered](v T) Range[T] {
	return AtLeast(CompareFunc[T](), v)
}

// DownTo returns the range from v to +∞, including v iff boundType is Closed.
func DownTo[T any](cmp Comparator[T], v T, boundType BoundType) Range[T] {
	return Range[T]{lower: lowerCutFor(v, boundType), upper: AboveAllCut[T](), cmp: cmp}
}

// DownToOrdered is DownTo for an Ordered element type.
func DownToOrdered[T Ordered](v T, boundType BoundType) Range[T] {
	return DownTo(CompareFunc[T](), v, boundType)
}

// UpTo returns the range from -∞ to v, including v iff boundType is Closed.
func UpTo[T any](cmp Comparator[T], v T, boundType BoundType) Range[T] {
	return Range[T]{lower: BelowAllCut[T](), upper: upperCutFor(v, boundType), cmp: cmp}
}

// UpToOrdered is UpTo for an Ordered element type.
func UpToOrdered[T Ordered](v T, boundType BoundType) Range[T] {
	return UpTo(CompareFunc[T](), v, boundType)
}

// All returns the range (-∞, +∞) containing every value of T.
func All[T any](cmp Comparator[T]) Range[T] {
	return Range[T]{lower: BelowAllCut[T](), upper: AboveAllCut[T](), cmp: cmp}
}

// AllOrdered is All for an Ordered element type.
func AllOrdered[T Ordered]() Range[T] {
	return All(CompareFunc[T]())
}
