package qm

import "github.com/pborges/qm/internal/combin"

// EstimateCompares returns the compares of a first reduction round over
// every minterm of vars variables: each group of k ones against the group of
// k+1 ones, C(vars, k) * C(vars, k+1) summed over k. The result saturates at
// math.MaxUint64.
func EstimateCompares(vars int) uint64 {
	var n uint64
	for k := 0; k < vars; k++ {
		n = combin.AddSat(n, combin.MulSat(combin.Binomial(vars, k), combin.Binomial(vars, k+1)))
	}
	return n
}
