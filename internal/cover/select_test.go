package cover

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChart(t *testing.T) {
	t.Parallel()

	c := NewChart([]uint64{5, 1, 1, 3}, [][]uint64{
		{1, 3},
		{3, 5, 7},
		{9},
	})
	assert.Equal(t, []uint64{1, 3, 5}, c.Minterms())
	assert.Equal(t, []int{0}, c.Row(1))
	assert.Equal(t, []int{0, 1}, c.Row(3))
	assert.Equal(t, []uint64{3, 5}, c.Covers(1))
	assert.Empty(t, c.Covers(2))
	assert.Nil(t, c.Covers(7))
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []int{0, 1}, c.Essentials())
}

func TestSelect_Uncovered(t *testing.T) {
	t.Parallel()

	c := NewChart([]uint64{1, 2}, [][]uint64{{1}})
	for _, s := range []Strategy{Direct, Exact} {
		_, err := Select(s, c)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUncovered), "%v: %v", s, err)
		assert.Contains(t, err.Error(), "2")
	}
}

func TestSelect_Empty(t *testing.T) {
	t.Parallel()

	c := NewChart(nil, nil)
	for _, s := range []Strategy{Direct, Exact} {
		sel, err := Select(s, c)
		require.NoError(t, err)
		assert.Empty(t, sel)
	}
}

func TestSelect_EssentialsOnly(t *testing.T) {
	t.Parallel()

	c := NewChart([]uint64{0, 1, 2, 3}, [][]uint64{
		{0, 1},
		{2, 3},
	})
	for _, s := range []Strategy{Direct, Exact} {
		sel, err := Select(s, c)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int{0, 1}, sel, s.String())
	}
}

func TestSelect_DirectTakesEssentialsFirst(t *testing.T) {
	t.Parallel()

	// Implicant 3 covers the most of minterm 1's row, but 0, 1 and 2 are
	// each the only cover of some minterm and leave nothing for it.
	c := NewChart([]uint64{1, 2, 3, 4, 5, 6}, [][]uint64{
		{1, 2},
		{3, 4},
		{5, 6},
		{1, 3, 5},
	})
	assert.Equal(t, []int{0, 1, 2}, c.Essentials())

	for _, s := range []Strategy{Direct, Exact} {
		sel, err := Select(s, c)
		require.NoError(t, err)
		if diff := cmp.Diff([]int{0, 1, 2}, sel); diff != "" {
			t.Errorf("%v selection mismatch (-want +got):\n%s", s, diff)
		}
	}
}

func TestSelect_DirectDropsRedundantPicks(t *testing.T) {
	t.Parallel()

	// No essentials. Minterm 1 picks implicant 2, then minterms 2 and 5
	// pick 1 and 0, which together cover everything 2 did.
	c := NewChart([]uint64{1, 2, 3, 4, 5}, [][]uint64{
		{3, 4, 5},
		{1, 2},
		{1, 3, 4},
		{1, 5},
		{1, 2, 4},
	})
	assert.Empty(t, c.Essentials())

	direct, err := Select(Direct, c)
	require.NoError(t, err)
	if diff := cmp.Diff([]int{0, 1}, direct); diff != "" {
		t.Errorf("direct selection mismatch (-want +got):\n%s", diff)
	}

	exact, err := Select(Exact, c)
	require.NoError(t, err)
	assert.Len(t, exact, 2)
	assert.True(t, c.Covered(exact))
}

func TestSelect_CyclicChart(t *testing.T) {
	t.Parallel()

	// Primes of f(A,B,C) = m(0,1,2,5,6,7): no essentials, two minimum covers.
	c := NewChart([]uint64{0, 1, 2, 5, 6, 7}, [][]uint64{
		{0, 1},
		{0, 2},
		{1, 5},
		{2, 6},
		{5, 7},
		{6, 7},
	})
	assert.Empty(t, c.Essentials())

	for _, s := range []Strategy{Direct, Exact} {
		sel, err := Select(s, c)
		require.NoError(t, err)
		assert.Len(t, sel, 3, s.String())
		assert.True(t, c.Covered(sel), s.String())
	}
}

func TestParseStrategy(t *testing.T) {
	t.Parallel()

	for _, s := range []Strategy{Direct, Exact} {
		got, err := ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	got, err := ParseStrategy("Petrick")
	require.NoError(t, err)
	assert.Equal(t, Exact, got)

	_, err = ParseStrategy("greedy")
	assert.Error(t, err)
	assert.Equal(t, "Strategy(9)", Strategy(9).String())
}
