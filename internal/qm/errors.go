package qm

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned for a variable count or minterm outside
	// the representable range, or when Resolve runs before Reset.
	ErrInvalidConfig = errors.New("qm: invalid configuration")
	// ErrTooManyCompares is returned when a run exceeds its compare threshold.
	ErrTooManyCompares = errors.New("qm: too many compares")
)

// BudgetError aborts a run whose compare count went past the threshold.
// It matches ErrTooManyCompares with errors.Is.
type BudgetError struct {
	Threshold int
	Compares  int
}

func (e *BudgetError) Error() string {
	return fmt.Sprintf("%v: %d exceeds threshold %d", ErrTooManyCompares, e.Compares, e.Threshold)
}

func (e *BudgetError) Unwrap() error { return ErrTooManyCompares }
