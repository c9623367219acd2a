package combin

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinomial(t *testing.T) {
	t.Parallel()

	cases := []struct {
		n, k int
		want uint64
	}{
		{0, 0, 1},
		{4, 0, 1},
		{4, 1, 4},
		{4, 2, 6},
		{4, 4, 1},
		{20, 10, 184756},
		{62, 31, 465428353255261088},
		{4, 5, 0},
		{-1, 0, 0},
		{3, -1, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Binomial(c.n, c.k), "C(%d, %d)", c.n, c.k)
	}
}

func TestBinomial_Symmetric(t *testing.T) {
	t.Parallel()
	for n := 0; n <= 40; n++ {
		for k := 0; k <= n; k++ {
			assert.Equal(t, Binomial(n, k), Binomial(n, n-k))
		}
	}
}

func TestBinomial_Saturates(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uint64(math.MaxUint64), Binomial(200, 100))
}

func TestSaturatingArithmetic(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uint64(12), MulSat(3, 4))
	assert.Equal(t, uint64(math.MaxUint64), MulSat(math.MaxUint64, 2))
	assert.Equal(t, uint64(7), AddSat(3, 4))
	assert.Equal(t, uint64(math.MaxUint64), AddSat(math.MaxUint64, 1))
}
