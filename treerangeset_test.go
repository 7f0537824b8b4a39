package rangeset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ranges(t *testing.T, s RangeSet[int]) []string {
	t.Helper()
	out := make([]string, 0)
	for _, r := range s.AsRanges() {
		out = append(out, r.String())
	}
	return out
}

func TestTreeRangeSet_PanicOnNilComparator(t *testing.T) {
	defer func() {
		require.NotNil(t, recover(), "expected panic on nil comparator")
	}()
	_ = New[int](nil)
}

func TestTreeRangeSet_Scenario1_OverlappingCoalesce(t *testing.T) {
	s := NewOrdered[int]()
	r1, _ := ClosedOrdered(1, 4)
	r2, _ := OpenOrdered(2, 6)
	require.NoError(t, s.Add(r1))
	require.NoError(t, s.Add(r2))
	assert.Equal(t, []string{"[1,6)"}, ranges(t, s))
}

func TestTreeRangeSet_Scenario2_TouchingHalfOpenCoalesce(t *testing.T) {
	s := NewOrdered[int]()
	r1, _ := ClosedOrdered(1, 4)
	r2, _ := OpenOrdered(4, 6)
	require.NoError(t, s.Add(r1))
	require.NoError(t, s.Add(r2))
	assert.Equal(t, []string{"[1,6)"}, ranges(t, s))
}

func TestTreeRangeSet_Scenario3_SmallerRangeAbsorbed(t *testing.T) {
	s := NewOrdered[int]()
	r1, _ := ClosedOrdered(1, 6)
	r2, _ := OpenOrdered(2, 4)
	require.NoError(t, s.Add(r1))
	require.NoError(t, s.Add(r2))
	assert.Equal(t, []string{"[1,6]"}, ranges(t, s))
}

func TestTreeRangeSet_Scenario4_RemoveSplitsRange(t *testing.T) {
	s := NewOrdered[int]()
	whole, _ := ClosedOrdered(3, 10)
	require.NoError(t, s.Add(whole))
	gap, _ := OpenOrdered(5, 7)
	s.Remove(gap)
	assert.Equal(t, []string{"[3,5]", "[7,10]"}, ranges(t, s))

	r, ok := s.RangeContaining(5)
	require.True(t, ok)
	assert.Equal(t, "[3,5]", r.String())

	_, ok = s.RangeContaining(6)
	assert.False(t, ok)

	r, ok = s.RangeContaining(8)
	require.True(t, ok)
	assert.Equal(t, "[7,10]", r.String())
}

func TestTreeRangeSet_Scenario5_RemoveLeavesSingleton(t *testing.T) {
	s := NewOrdered[int]()
	r1, _ := ClosedOrdered(3, 5)
	require.NoError(t, s.Add(r1))
	r2, _ := ClosedOpenOrdered(3, 5)
	s.Remove(r2)
	assert.Equal(t, []string{"[5,5]"}, ranges(t, s))
	assert.True(t, s.Contains(5))
	assert.False(t, s.Contains(4))
}

func TestTreeRangeSet_AddEmptyIsNoOp(t *testing.T) {
	s := NewOrdered[int]()
	empty, _ := ClosedOpenOrdered(3, 3)
	require.NoError(t, s.Add(empty))
	assert.True(t, s.IsEmpty())
}

func TestTreeRangeSet_RemoveDisjointIsNoOp(t *testing.T) {
	s := NewOrdered[int]()
	r1, _ := ClosedOrdered(1, 4)
	require.NoError(t, s.Add(r1))
	r2, _ := ClosedOrdered(10, 20)
	s.Remove(r2)
	assert.Equal(t, []string{"[1,4]"}, ranges(t, s))
}

func TestTreeRangeSet_P2_StoredRangesNeverConnected(t *testing.T) {
	s := NewOrdered[int]()
	inputs := []struct{ lo, hi int }{{1, 4}, {10, 14}, {3, 11}, {20, 25}, {5, 21}}
	for _, in := range inputs {
		r, _ := ClosedOpenOrdered(in.lo, in.hi)
		require.NoError(t, s.Add(r))
	}
	stored := s.AsRanges()
	for i := 0; i+1 < len(stored); i++ {
		assert.False(t, stored[i].IsConnected(stored[i+1]), "adjacent stored ranges must not be connected: %v, %v", stored[i], stored[i+1])
	}
}

func TestTreeRangeSet_P4_NewFromProducesEqualSet(t *testing.T) {
	s := NewOrdered[int]()
	r1, _ := ClosedOrdered(1, 4)
	r2, _ := ClosedOrdered(10, 14)
	require.NoError(t, s.Add(r1))
	require.NoError(t, s.Add(r2))

	copy2 := NewFrom[int](CompareFunc[int](), s)
	assert.True(t, s.Equal(copy2))
}

func TestTreeRangeSet_P10_EnclosesRequiresSingleRange(t *testing.T) {
	s := NewOrdered[int]()
	r1, _ := ClosedOrdered(1, 4)
	r2, _ := ClosedOrdered(10, 14)
	require.NoError(t, s.Add(r1))
	require.NoError(t, s.Add(r2))

	q, _ := ClosedOrdered(2, 3)
	assert.True(t, s.Encloses(q))

	spanning, _ := ClosedOrdered(2, 12)
	assert.False(t, s.Encloses(spanning))
}

func TestTreeRangeSet_SpanFailsWhenEmpty(t *testing.T) {
	s := NewOrdered[int]()
	_, err := s.Span()
	require.ErrorIs(t, err, ErrEmptyRangeSet)
}

func TestTreeRangeSet_SpanEnclosesEverything(t *testing.T) {
	s := NewOrdered[int]()
	r1, _ := ClosedOrdered(1, 4)
	r2, _ := ClosedOrdered(10, 14)
	require.NoError(t, s.Add(r1))
	require.NoError(t, s.Add(r2))
	span, err := s.Span()
	require.NoError(t, err)
	assert.Equal(t, "[1,14]", span.String())
}

func TestTreeRangeSet_String(t *testing.T) {
	s := NewOrdered[int]()
	r1, _ := ClosedOpenOrdered(1, 4)
	require.NoError(t, s.Add(r1))
	assert.Equal(t, "TreeRangeSet{[1,4)}", s.String())
}
