// Package qm minimizes boolean functions given as required and don't-care
// minterms with the Quine-McCluskey method.
package qm

import (
	"cmp"
	"fmt"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/zap"

	"github.com/pborges/qm/internal/cover"
)

const (
	// DefaultCompareThreshold bounds the pairwise compares of one run.
	DefaultCompareThreshold = 1 << 16
	// MaxVars is the widest function whose minterms fit in a uint64.
	MaxVars = 63
)

// Option configures an Engine.
type Option func(*Engine)

// WithCompareThreshold sets the maximum number of pairwise compares a run
// may perform. Negative values are treated as 0.
func WithCompareThreshold(n int) Option {
	return func(e *Engine) {
		if n < 0 {
			n = 0
		}
		e.threshold = n
	}
}

// WithCover selects the strategy used to pick implicants from the chart.
func WithCover(s cover.Strategy) Option {
	return func(e *Engine) { e.strategy = s }
}

// WithLogger sets the logger for run diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// Engine holds one minimization problem and the state of its last run.
// An Engine is not safe for concurrent use; run independent problems on
// independent engines.
type Engine struct {
	vars      int
	matches   []uint64
	ignored   []uint64
	threshold int
	strategy  cover.Strategy
	logger    *zap.Logger

	compares   int
	terms      []*Term
	primes     []*Term
	essentials []*Term
}

// New returns an unconfigured engine. Call Reset before Resolve.
func New(opts ...Option) *Engine {
	e := &Engine{
		threshold: DefaultCompareThreshold,
		strategy:  cover.Direct,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Reset configures the problem and clears all state of the previous run.
// Duplicate minterms within a list are collapsed. The compare threshold and
// cover strategy are kept.
func (e *Engine) Reset(vars int, matches, ignored []uint64) error {
	e.clear()
	e.vars, e.matches, e.ignored = 0, nil, nil
	if vars <= 0 || vars > MaxVars {
		return fmt.Errorf("%w: vars %d not in 1..%d", ErrInvalidConfig, vars, MaxVars)
	}
	limit := uint64(1) << vars
	for _, list := range [][]uint64{matches, ignored} {
		for _, m := range list {
			if m >= limit {
				return fmt.Errorf("%w: minterm %d needs more than %d vars", ErrInvalidConfig, m, vars)
			}
		}
	}
	e.vars = vars
	e.matches = normalize(matches)
	e.ignored = normalize(ignored)
	e.logger.Debug("reset",
		zap.Int("vars", vars),
		zap.Int("matches", len(e.matches)),
		zap.Int("ignored", len(e.ignored)),
		zap.Int("threshold", e.threshold))
	return nil
}

func normalize(ms []uint64) []uint64 {
	out := slices.Clone(ms)
	slices.Sort(out)
	return slices.Compact(out)
}

func (e *Engine) clear() {
	e.compares = 0
	e.terms = nil
	e.primes = nil
	e.essentials = nil
}

// Vars returns the configured variable count, or 0 before Reset.
func (e *Engine) Vars() int { return e.vars }

// Matches returns the required minterms in ascending order.
func (e *Engine) Matches() []uint64 { return slices.Clone(e.matches) }

// Ignored returns the don't-care minterms in ascending order.
func (e *Engine) Ignored() []uint64 { return slices.Clone(e.ignored) }

// Threshold returns the compare threshold.
func (e *Engine) Threshold() int { return e.threshold }

// Strategy returns the cover strategy.
func (e *Engine) Strategy() cover.Strategy { return e.strategy }

// Compares returns the compares performed by the last successful run.
func (e *Engine) Compares() int { return e.compares }

// Resolve runs the minimization. When trace is non-nil it receives the
// candidate terms of every reduction round. On error the partial state of
// the run is discarded.
func (e *Engine) Resolve(trace *Trace) (*Result, error) {
	e.clear()
	if trace != nil {
		trace.Rounds = nil
	}
	if e.vars == 0 {
		return nil, fmt.Errorf("%w: engine not configured", ErrInvalidConfig)
	}
	if len(e.matches) == 0 {
		return &Result{Vars: e.vars}, nil
	}
	res, err := e.resolve(trace)
	if err != nil {
		e.clear()
		return nil, err
	}
	return res, nil
}

func (e *Engine) resolve(trace *Trace) (*Result, error) {
	for _, m := range e.matches {
		e.leaf(m)
	}
	for _, m := range e.ignored {
		e.leaf(m)
	}

	pool, err := e.reduce(trace)
	if err != nil {
		return nil, err
	}

	seen := make(map[key]bool)
	for _, t := range pool {
		if t.combined {
			continue
		}
		k := keyOf(t.bits)
		if seen[k] {
			continue
		}
		seen[k] = true
		e.primes = append(e.primes, t)
	}

	implicants := make([][]uint64, len(e.primes))
	for i, p := range e.primes {
		implicants[i] = p.minterms.ToSlice()
	}
	selected, err := cover.Select(e.strategy, cover.NewChart(e.matches, implicants))
	if err != nil {
		return nil, err
	}
	for _, i := range selected {
		e.essentials = append(e.essentials, e.primes[i])
	}

	e.logger.Debug("resolved",
		zap.Int("terms", len(e.terms)),
		zap.Int("primes", len(e.primes)),
		zap.Int("essentials", len(e.essentials)),
		zap.Int("compares", e.compares),
		zap.Stringer("cover", e.strategy))

	return &Result{
		Vars:       e.vars,
		Essentials: slices.Clone(e.essentials),
		Primes:     slices.Clone(e.primes),
		Compares:   e.compares,
		terms:      slices.Clone(e.terms),
	}, nil
}

// reduce runs combination rounds until one produces no new term. It returns
// every candidate of every round, in round order.
func (e *Engine) reduce(trace *Trace) ([]*Term, error) {
	candidates := slices.Clone(e.terms)
	seen := make(map[key]*Term)
	var pool []*Term

	for round := 0; len(candidates) > 0; round++ {
		slices.SortStableFunc(candidates, func(a, b *Term) int { return cmp.Compare(a.ones, b.ones) })
		if trace != nil {
			trace.add(candidates)
		}
		pool = append(pool, candidates...)

		groups := GroupByOnes(candidates)
		var next []*Term
		for i := 0; i+1 < len(groups); i++ {
			ga, gb := groups[i], groups[i+1]
			if gb.Ones-ga.Ones != 1 {
				continue
			}
			for _, a := range ga.Terms {
				for _, b := range gb.Terms {
					e.compares++
					if e.compares > e.threshold {
						e.logger.Warn("compare threshold exceeded",
							zap.Int("threshold", e.threshold),
							zap.Int("round", round))
						return nil, &BudgetError{Threshold: e.threshold, Compares: e.compares}
					}
					bits, ok := Combine(a.bits, b.bits)
					if !ok {
						continue
					}
					a.combined, b.combined = true, true
					k := keyOf(bits)
					if last, ok := seen[k]; ok {
						last.minterms.Append(a.minterms.ToSlice()...)
						last.minterms.Append(b.minterms.ToSlice()...)
						continue
					}
					t := e.merge(bits, a, b)
					seen[k] = t
					next = append(next, t)
				}
			}
		}
		e.logger.Debug("round",
			zap.Int("round", round),
			zap.Int("candidates", len(candidates)),
			zap.Int("groups", len(groups)),
			zap.Int("produced", len(next)),
			zap.Int("compares", e.compares))
		candidates = next
	}
	return pool, nil
}

func (e *Engine) leaf(m uint64) *Term {
	bits := leafBits(e.vars, m)
	t := &Term{
		id:       len(e.terms),
		bits:     bits,
		ones:     countOnes(bits),
		minterms: mapset.NewThreadUnsafeSet(m),
		parents:  [2]int{-1, -1},
	}
	e.terms = append(e.terms, t)
	return t
}

func (e *Engine) merge(bits []Digit, a, b *Term) *Term {
	t := &Term{
		id:       len(e.terms),
		bits:     bits,
		ones:     countOnes(bits),
		minterms: a.minterms.Union(b.minterms),
		parents:  [2]int{a.id, b.id},
	}
	e.terms = append(e.terms, t)
	return t
}
