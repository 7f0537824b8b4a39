package rangeset

import "errors"

// ErrInvalidRange is returned when a Range is requested with lower > upper,
// or when SubRangeSetView.Add is given a range its window does not enclose.
var ErrInvalidRange = errors.New("rangeset: invalid range")

// ErrEmptyRangeSet is returned by Span on a range set that holds no ranges.
var ErrEmptyRangeSet = errors.New("rangeset: range set is empty")
