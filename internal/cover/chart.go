// Package cover selects a set of implicants covering every required
// minterm of a prime implicant chart.
package cover

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrUncovered reports a required minterm that no implicant covers.
	ErrUncovered = errors.New("cover: minterm not covered by any implicant")
	// ErrIncomplete reports that the exact search ended without a model.
	ErrIncomplete = errors.New("cover: search ended without a cover")
)

// Chart maps required minterms to the implicants covering them.
// Implicants are identified by their index in the slice given to NewChart.
type Chart struct {
	minterms []uint64
	rows     map[uint64][]int
	covers   [][]uint64
}

// NewChart builds the chart of required against implicants, where
// implicants[i] lists every minterm implicant i covers. Minterms an
// implicant covers that are not required (don't-cares) are ignored.
func NewChart(required []uint64, implicants [][]uint64) *Chart {
	c := &Chart{
		minterms: slices.Clone(required),
		rows:     make(map[uint64][]int, len(required)),
		covers:   make([][]uint64, len(implicants)),
	}
	slices.Sort(c.minterms)
	c.minterms = slices.Compact(c.minterms)
	for _, m := range c.minterms {
		c.rows[m] = nil
	}
	for i, ms := range implicants {
		for _, m := range ms {
			if _, ok := c.rows[m]; !ok {
				continue
			}
			c.rows[m] = append(c.rows[m], i)
			c.covers[i] = append(c.covers[i], m)
		}
	}
	for i := range c.covers {
		slices.Sort(c.covers[i])
	}
	return c
}

// Minterms returns the required minterms in ascending order.
func (c *Chart) Minterms() []uint64 {
	return slices.Clone(c.minterms)
}

// Row returns the implicants covering m, in index order.
func (c *Chart) Row(m uint64) []int {
	return slices.Clone(c.rows[m])
}

// Covers returns the required minterms covered by implicant i.
func (c *Chart) Covers(i int) []uint64 {
	if i < 0 || i >= len(c.covers) {
		return nil
	}
	return slices.Clone(c.covers[i])
}

// Len returns the number of implicants in the chart.
func (c *Chart) Len() int {
	return len(c.covers)
}

// Essentials returns the implicants that are the sole cover of at least one
// required minterm, in index order.
func (c *Chart) Essentials() []int {
	seen := make(map[int]bool)
	var out []int
	for _, m := range c.minterms {
		row := c.rows[m]
		if len(row) == 1 && !seen[row[0]] {
			seen[row[0]] = true
			out = append(out, row[0])
		}
	}
	slices.Sort(out)
	return out
}

// check fails on the first required minterm with an empty row.
func (c *Chart) check() error {
	for _, m := range c.minterms {
		if len(c.rows[m]) == 0 {
			return fmt.Errorf("%w: %d", ErrUncovered, m)
		}
	}
	return nil
}

// Covered reports whether the implicants in sel together cover every
// required minterm.
func (c *Chart) Covered(sel []int) bool {
	pending := make(map[uint64]bool, len(c.minterms))
	for _, m := range c.minterms {
		pending[m] = true
	}
	for _, i := range sel {
		for _, m := range c.Covers(i) {
			delete(pending, m)
		}
	}
	return len(pending) == 0
}
