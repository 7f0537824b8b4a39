package rangeset

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCut_OrderingAgainstSentinels(t *testing.T) {
	c := cmp.Compare[int]
	assert.Negative(t, compareCuts(c, BelowAllCut[int](), BelowValueCut(5)))
	assert.Negative(t, compareCuts(c, BelowValueCut(5), AboveAllCut[int]()))
	assert.Zero(t, compareCuts(c, BelowAllCut[int](), BelowAllCut[int]()))
	assert.Zero(t, compareCuts(c, AboveAllCut[int](), AboveAllCut[int]()))
}

func TestCut_TieBreakAtSamePivot(t *testing.T) {
	c := cmp.Compare[int]
	assert.Negative(t, compareCuts(c, BelowValueCut(5), AboveValueCut(5)))
	assert.Positive(t, compareCuts(c, AboveValueCut(5), BelowValueCut(5)))
}

func TestCut_ValueAccessor(t *testing.T) {
	v, ok := BelowValueCut(3).Value()
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = BelowAllCut[int]().Value()
	assert.False(t, ok)
	_, ok = AboveAllCut[int]().Value()
	assert.False(t, ok)
}

func TestCut_BoundTypeConversions(t *testing.T) {
	assert.Equal(t, Closed, BelowValueCut(1).asLowerBoundType())
	assert.Equal(t, Open, AboveValueCut(1).asLowerBoundType())
	assert.Equal(t, Closed, AboveValueCut(1).asUpperBoundType())
	assert.Equal(t, Open, BelowValueCut(1).asUpperBoundType())
}

func TestCut_String(t *testing.T) {
	assert.Equal(t, "(-∞)", BelowAllCut[int]().String())
	assert.Equal(t, "(+∞)", AboveAllCut[int]().String())
	assert.Contains(t, BelowValueCut(4).String(), "4")
	assert.Contains(t, AboveValueCut(4).String(), "4")
}
