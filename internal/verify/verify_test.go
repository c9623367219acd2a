package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pborges/qm/internal/qm"
)

func cubes(t *testing.T, ss ...string) [][]qm.Digit {
	t.Helper()
	out := make([][]qm.Digit, len(ss))
	for i, s := range ss {
		bits, err := qm.ParseBinary(s)
		require.NoError(t, err)
		out[i] = bits
	}
	return out
}

func TestCover(t *testing.T) {
	t.Parallel()

	matches := []uint64{4, 8, 10, 11, 12, 15}
	ignored := []uint64{9, 14}

	cases := []struct {
		name    string
		cubes   []string
		err     error
		witness string
	}{
		{"minimal", []string{"-100", "10--", "1-1-"}, nil, ""},
		{"with redundant prime", []string{"-100", "1--0", "10--", "1-1-"}, nil, ""},
		{"missing", []string{"-100", "10--"}, ErrMissing, "15"},
		{"extra", []string{"-100", "10--", "1-1-", "0000"}, ErrExtra, "0"},
		{"extra wide", []string{"----"}, ErrExtra, "0"},
		{"extra one", []string{"-100", "10--", "1-1-", "0011"}, ErrExtra, "3"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Cover(4, matches, ignored, cubes(t, c.cubes...))
			if c.err == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, c.err)
			assert.EqualError(t, err, c.err.Error()+": "+c.witness)
		})
	}
}

func TestCover_WitnessIsFirstAssignment(t *testing.T) {
	t.Parallel()

	// The off-set part of 1--- is 9..15; the first assignment is 1001.
	err := Cover(4, []uint64{8}, nil, cubes(t, "1---"))
	assert.EqualError(t, err, ErrExtra.Error()+": 9")

	// Wide functions still name a minterm in range.
	wide := make([]qm.Digit, 40)
	wide[0] = qm.True
	for i := 1; i < len(wide); i++ {
		wide[i] = qm.Reduced
	}
	err = Cover(len(wide), []uint64{1 << 39}, nil, [][]qm.Digit{wide})
	assert.EqualError(t, err, ErrExtra.Error()+": 549755813889")
}

func TestCover_Constant(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Cover(1, []uint64{0, 1}, nil, cubes(t, "-")))
	assert.NoError(t, Cover(3, nil, nil, nil))
	assert.ErrorIs(t, Cover(2, []uint64{1}, nil, nil), ErrMissing)
}

func TestCover_BadInput(t *testing.T) {
	t.Parallel()

	assert.Error(t, Cover(0, nil, nil, nil))
	err := Cover(3, []uint64{1}, nil, cubes(t, "01"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 digits")
}

func TestCubes(t *testing.T) {
	t.Parallel()

	e := qm.New()
	require.NoError(t, e.Reset(2, []uint64{2, 3}, nil))
	res, err := e.Resolve(nil)
	require.NoError(t, err)
	assert.Equal(t, cubes(t, "1-"), Cubes(res.Essentials))
}
