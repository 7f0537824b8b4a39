package rangeset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRange_ConstructorsRejectInvertedBounds(t *testing.T) {
	_, err := ClosedOrdered(5, 1)
	require.ErrorIs(t, err, ErrInvalidRange)

	// Open(v, v) is inverted under cut ordering (its lower cut sorts after
	// its upper cut), not an empty range — it must fail.
	_, err = OpenOrdered(5, 5)
	require.ErrorIs(t, err, ErrInvalidRange)

	r, err := ClosedOpenOrdered(5, 5)
	require.NoError(t, err)
	assert.True(t, r.IsEmpty())

	r, err = OpenClosedOrdered(5, 5)
	require.NoError(t, err)
	assert.True(t, r.IsEmpty())
}

func TestRange_SingletonContainsOnlyItsValue(t *testing.T) {
	r := SingletonOrdered(7)
	assert.True(t, r.Contains(7))
	assert.False(t, r.Contains(6))
	assert.False(t, r.Contains(8))
}

func TestRange_HalfOpenBoundaryContains(t *testing.T) {
	r, err := ClosedOpenOrdered(1, 4)
	require.NoError(t, err)
	assert.True(t, r.Contains(1))
	assert.True(t, r.Contains(3))
	assert.False(t, r.Contains(4))
}

func TestRange_UnboundedEnds(t *testing.T) {
	lt := LessThanOrdered(5)
	assert.False(t, lt.HasLowerBound())
	assert.True(t, lt.HasUpperBound())
	assert.True(t, lt.Contains(-1000))
	assert.False(t, lt.Contains(5))

	ge := AtLeastOrdered(5)
	assert.True(t, ge.HasLowerBound())
	assert.False(t, ge.HasUpperBound())
	assert.True(t, ge.Contains(1000))
	assert.True(t, ge.Contains(5))

	all := AllOrdered[int]()
	assert.True(t, all.Contains(0))
	assert.True(t, all.Contains(-999999))
}

func TestRange_Encloses(t *testing.T) {
	outer, _ := ClosedOrdered(1, 10)
	inner, _ := OpenOrdered(2, 4)
	assert.True(t, outer.Encloses(inner))
	assert.False(t, inner.Encloses(outer))
}

func TestRange_IsConnectedAndIntersection(t *testing.T) {
	a, _ := ClosedOpenOrdered(1, 4)
	b, _ := ClosedOpenOrdered(4, 6)
	assert.True(t, a.IsConnected(b), "touching half-open ranges are connected")
	touching, ok := a.Intersection(b)
	require.True(t, ok)
	assert.True(t, touching.IsEmpty(), "touching half-open ranges intersect in an empty range")

	c, _ := ClosedOrdered(3, 8)
	i, ok := a.Intersection(c)
	require.True(t, ok)
	assert.Equal(t, "[3,4)", i.String())
}

func TestRange_SpanAlwaysSucceeds(t *testing.T) {
	a, _ := ClosedOrdered(1, 2)
	b, _ := ClosedOrdered(9, 10)
	s := a.Span(b)
	assert.Equal(t, "[1,10]", s.String())
}

func TestRange_Equal(t *testing.T) {
	a, _ := ClosedOpenOrdered(1, 4)
	b, _ := NewRangeOrdered(1, Closed, 4, Open)
	assert.True(t, a.Equal(b))
}

func TestRange_String(t *testing.T) {
	r, _ := ClosedOpenOrdered(1, 4)
	assert.Equal(t, "[1,4)", r.String())

	unbounded := LessThanOrdered(5)
	assert.Equal(t, "(-∞,5)", unbounded.String())

	empty, _ := ClosedOpenOrdered(3, 3)
	assert.Equal(t, "{}", empty.String())
}
