// Package combin provides the small amount of combinatorics needed to size
// Quine-McCluskey runs ahead of time.
package combin

import (
	"math"
	"math/bits"
)

// Binomial returns C(n, k). Out of range arguments yield 0 and results that
// do not fit in a uint64 saturate at math.MaxUint64.
func Binomial(n, k int) uint64 {
	if n < 0 || k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	// r stays exact: r * (n-i) is always divisible by i+1 after the step.
	r := uint64(1)
	for i := 0; i < k; i++ {
		hi, lo := bits.Mul64(r, uint64(n-i))
		if hi >= uint64(i+1) {
			return math.MaxUint64
		}
		r, _ = bits.Div64(hi, lo, uint64(i+1))
	}
	return r
}

// MulSat multiplies a and b, saturating at math.MaxUint64.
func MulSat(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}

// AddSat adds a and b, saturating at math.MaxUint64.
func AddSat(a, b uint64) uint64 {
	s, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return s
}
