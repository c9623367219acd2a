package cover

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// Strategy chooses how non-essential implicants are picked.
type Strategy int

const (
	// Direct takes the essential implicants, then walks the required
	// minterms still pending in ascending order and takes, for each, the
	// covering implicant that covers the most pending minterms (ties to the
	// lowest index). Picks that later picks made redundant are dropped. The
	// cover is irredundant but not always a minimum one.
	Direct Strategy = iota
	// Exact applies Petrick's method as a SAT problem and returns a cover
	// with the fewest implicants.
	Exact
)

func (s Strategy) String() string {
	switch s {
	case Direct:
		return "direct"
	case Exact:
		return "exact"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy is the inverse of Strategy.String.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "direct":
		return Direct, nil
	case "exact", "petrick":
		return Exact, nil
	}
	return Direct, fmt.Errorf("cover: unknown strategy %q", s)
}

// Select returns the indices of the chosen implicants in ascending order.
func Select(s Strategy, c *Chart) ([]int, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	switch s {
	case Direct:
		return selectDirect(c), nil
	case Exact:
		return selectExact(c)
	}
	return nil, fmt.Errorf("cover: unknown strategy %v", s)
}

func selectDirect(c *Chart) []int {
	pending := make(map[uint64]bool, len(c.minterms))
	for _, m := range c.minterms {
		pending[m] = true
	}
	essentials := c.Essentials()
	for _, i := range essentials {
		for _, mm := range c.covers[i] {
			delete(pending, mm)
		}
	}

	selected := slices.Clone(essentials)
	for _, m := range c.minterms {
		if !pending[m] {
			continue
		}
		best, bestCount := -1, 0
		for _, i := range c.rows[m] {
			count := 0
			for _, mm := range c.covers[i] {
				if pending[mm] {
					count++
				}
			}
			if count > bestCount {
				best, bestCount = i, count
			}
		}
		selected = append(selected, best)
		for _, mm := range c.covers[best] {
			delete(pending, mm)
		}
	}

	selected = prune(c, selected, len(essentials))
	slices.Sort(selected)
	return selected
}

// prune drops picks that the rest of the selection already covers, latest
// pick first. The first fixed entries are kept.
func prune(c *Chart, selected []int, fixed int) []int {
	for k := len(selected) - 1; k >= fixed; k-- {
		rest := slices.Delete(slices.Clone(selected), k, k+1)
		if c.Covered(rest) {
			selected = rest
		}
	}
	return selected
}

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// selectExact encodes the chart as a product of sums, one clause per
// required minterm, and raises a cardinality bound until the formula is
// satisfiable.
func selectExact(c *Chart) ([]int, error) {
	if len(c.minterms) == 0 {
		return nil, nil
	}
	circuit := logic.NewCCap(len(c.covers))
	lits := make([]z.Lit, len(c.covers))
	for i := range lits {
		lits[i] = circuit.Lit()
	}
	cs := circuit.CardSort(lits)

	g := gini.New()
	circuit.ToCnf(g)
	for _, m := range c.minterms {
		for _, i := range c.rows[m] {
			g.Add(lits[i])
		}
		g.Add(z.LitNull)
	}

	for w := 0; w <= cs.N(); w++ {
		g.Assume(cs.Leq(w))
		switch g.Solve() {
		case satisfiable:
			var selected []int
			for i, m := range lits {
				if g.Value(m) {
					selected = append(selected, i)
				}
			}
			return selected, nil
		case unsatisfiable:
			continue
		default:
			return nil, ErrIncomplete
		}
	}
	return nil, ErrIncomplete
}
