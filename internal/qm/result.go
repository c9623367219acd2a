package qm

import (
	"cmp"
	"slices"
)

// Result is the outcome of one successful run. Its terms must not be
// modified.
type Result struct {
	Vars int
	// Essentials is the selected cover, in prime order.
	Essentials []*Term
	// Primes is every prime implicant, first seen first.
	Primes []*Term
	// Compares is the number of pairwise compares the run performed.
	Compares int

	terms []*Term
}

// Terms returns every term created by the run, indexed by Term.ID.
func (r *Result) Terms() []*Term { return slices.Clone(r.terms) }

// Leaves returns the terms built directly from input minterms.
func (r *Result) Leaves() []*Term {
	var out []*Term
	for _, t := range r.terms {
		if t.Leaf() {
			out = append(out, t)
		}
	}
	return out
}

// Expression renders the selected cover. See VariableString for names.
func (r *Result) Expression(names []string) string {
	return Expression(r.Essentials, names)
}

// Parents returns the two terms t was combined from, or nils for a leaf or
// a term from another run.
func (r *Result) Parents(t *Term) (a, b *Term) {
	if t.Leaf() || !r.owns(t) {
		return nil, nil
	}
	return r.terms[t.parents[0]], r.terms[t.parents[1]]
}

// Dependencies returns every ancestor of t, depth first, first parent before
// second.
func (r *Result) Dependencies(t *Term) []*Term {
	var out []*Term
	var visit func(*Term)
	visit = func(t *Term) {
		a, b := r.Parents(t)
		if a == nil {
			return
		}
		out = append(out, a)
		visit(a)
		out = append(out, b)
		visit(b)
	}
	visit(t)
	return out
}

func (r *Result) owns(t *Term) bool {
	return t.id >= 0 && t.id < len(r.terms) && r.terms[t.id] == t
}

// Trace receives a snapshot of the candidate terms of each reduction round
// when passed to Engine.Resolve.
type Trace struct {
	Rounds [][]*Term
}

func (t *Trace) add(candidates []*Term) {
	t.Rounds = append(t.Rounds, slices.Clone(candidates))
}

// Group is a set of terms sharing the same number of True digits.
type Group struct {
	Ones  int
	Terms []*Term
}

// GroupByOnes partitions terms by Term.Ones, groups in ascending order and
// terms in input order.
func GroupByOnes(terms []*Term) []Group {
	idx := make(map[int]int)
	var groups []Group
	for _, t := range terms {
		i, ok := idx[t.ones]
		if !ok {
			i = len(groups)
			idx[t.ones] = i
			groups = append(groups, Group{Ones: t.ones})
		}
		groups[i].Terms = append(groups[i].Terms, t)
	}
	slices.SortFunc(groups, func(a, b Group) int { return cmp.Compare(a.Ones, b.Ones) })
	return groups
}
