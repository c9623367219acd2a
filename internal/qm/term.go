package qm

import (
	"fmt"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// Digit is one tri-state position of a term.
type Digit int8

const (
	False Digit = iota
	True
	// Reduced marks a position whose value does not affect coverage.
	Reduced
	// Ignored marks an unused placeholder position.
	Ignored
)

// Term is a group of equivalent minterms in tri-state form. Terms are owned
// by the engine run that created them; callers only read them.
type Term struct {
	id       int
	bits     []Digit
	ones     int
	minterms mapset.Set[uint64]
	parents  [2]int
	combined bool
}

// ID is the creation index of t within its run.
func (t *Term) ID() int { return t.id }

// Bits returns a copy of the tri-state digits, most significant variable
// first.
func (t *Term) Bits() []Digit { return slices.Clone(t.bits) }

// Ones returns the number of True digits, the term's group number.
func (t *Term) Ones() int { return t.ones }

// Minterms returns the covered minterms in ascending order.
func (t *Term) Minterms() []uint64 {
	ms := t.minterms.ToSlice()
	slices.Sort(ms)
	return ms
}

// Covers reports whether m is one of the covered minterms.
func (t *Term) Covers(m uint64) bool { return t.minterms.Contains(m) }

// Combined reports whether t was merged into a larger term. Terms that never
// were are prime implicants.
func (t *Term) Combined() bool { return t.combined }

// Leaf reports whether t was built directly from a minterm.
func (t *Term) Leaf() bool { return t.parents[0] < 0 }

func (t *Term) String() string {
	mark := "x"
	if t.combined {
		mark = "✓"
	}
	return fmt.Sprintf("Term(%d/%s/%s/%v/%s)", t.ones, VariableString(t.bits, nil), BinaryString(t.bits), t.Minterms(), mark)
}

// key packs the digits into a {value, care} pair so equal patterns compare
// equal without formatting. Valid for up to 64 positions.
type key struct {
	value uint64
	care  uint64
}

func keyOf(bits []Digit) key {
	var k key
	for _, d := range bits {
		k.value <<= 1
		k.care <<= 1
		switch d {
		case True:
			k.value |= 1
			k.care |= 1
		case False:
			k.care |= 1
		}
	}
	return k
}

// leafBits expands minterm into vars digits, most significant first.
func leafBits(vars int, minterm uint64) []Digit {
	bits := make([]Digit, vars)
	for i := range bits {
		if minterm&(uint64(1)<<(vars-1-i)) != 0 {
			bits[i] = True
		}
	}
	return bits
}

func countOnes(bits []Digit) int {
	n := 0
	for _, d := range bits {
		if d == True {
			n++
		}
	}
	return n
}

func definite(d Digit) bool { return d == False || d == True }

// Combine merges two equal-length digit sequences that differ in exactly one
// position, neither of which is Reduced, into a sequence with Reduced at that
// position. It reports false when the inputs are not combinable.
func Combine(a, b []Digit) ([]Digit, bool) {
	if len(a) != len(b) {
		return nil, false
	}
	at := -1
	for i := range a {
		if a[i] == b[i] {
			continue
		}
		if at >= 0 || !definite(a[i]) || !definite(b[i]) {
			return nil, false
		}
		at = i
	}
	if at < 0 {
		return nil, false
	}
	out := slices.Clone(a)
	out[at] = Reduced
	return out, true
}
