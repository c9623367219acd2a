// Package verify checks a sum-of-products cover against the function it was
// minimized from, using binary decision diagrams.
package verify

import (
	"errors"
	"fmt"

	"github.com/dalzilio/rudd"

	"github.com/pborges/qm/internal/qm"
)

var (
	// ErrMissing reports a required minterm the cover does not include.
	ErrMissing = errors.New("verify: required minterm not covered")
	// ErrExtra reports a minterm the cover includes that is neither required
	// nor a don't-care.
	ErrExtra = errors.New("verify: cover includes an off-set minterm")
)

var errStop = errors.New("stop")

// Cubes returns the digit patterns of terms.
func Cubes(terms []*qm.Term) [][]qm.Digit {
	out := make([][]qm.Digit, len(terms))
	for i, t := range terms {
		out[i] = t.Bits()
	}
	return out
}

// Cover checks that matches ⊆ cubes ⊆ matches ∪ ignored over vars variables.
// The returned error names one offending minterm.
func Cover(vars int, matches, ignored []uint64, cubes [][]qm.Digit) error {
	if vars <= 0 || vars > qm.MaxVars {
		return fmt.Errorf("verify: vars %d not in 1..%d", vars, qm.MaxVars)
	}
	bdd, err := rudd.New(vars)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	minterm := func(m uint64) rudd.Node {
		lits := make([]rudd.Node, vars)
		for i := range lits {
			if m&(uint64(1)<<(vars-1-i)) != 0 {
				lits[i] = bdd.Ithvar(i)
			} else {
				lits[i] = bdd.NIthvar(i)
			}
		}
		return bdd.And(lits...)
	}
	sum := func(ms []uint64) rudd.Node {
		n := bdd.False()
		for _, m := range ms {
			n = bdd.Or(n, minterm(m))
		}
		return n
	}

	on := sum(matches)
	care := bdd.Or(on, sum(ignored))
	cov := bdd.False()
	for _, c := range cubes {
		if len(c) != vars {
			return fmt.Errorf("verify: cube %s has %d digits, want %d", qm.BinaryString(c), len(c), vars)
		}
		cube := bdd.True()
		for i, d := range c {
			switch d {
			case qm.True:
				cube = bdd.And(cube, bdd.Ithvar(i))
			case qm.False:
				cube = bdd.And(cube, bdd.NIthvar(i))
			}
		}
		cov = bdd.Or(cov, cube)
	}
	if msg := bdd.Error(); msg != "" {
		return fmt.Errorf("verify: bdd: %s", msg)
	}

	// witness reads the first assignment Allsat reports, don't-care
	// levels as 0. Allsat keeps walking after a callback error, so later
	// profiles are ignored.
	witness := func(n rudd.Node) uint64 {
		var (
			m     uint64
			found bool
		)
		_ = bdd.Allsat(func(prof []int) error {
			if found {
				return errStop
			}
			found = true
			for _, v := range prof {
				m <<= 1
				if v == 1 {
					m |= 1
				}
			}
			return errStop
		}, n)
		return m
	}

	if missing := bdd.And(on, bdd.Not(cov)); !bdd.Equal(missing, bdd.False()) {
		return fmt.Errorf("%w: %d", ErrMissing, witness(missing))
	}
	if extra := bdd.And(cov, bdd.Not(care)); !bdd.Equal(extra, bdd.False()) {
		return fmt.Errorf("%w: %d", ErrExtra, witness(extra))
	}
	return nil
}
