package metrics

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pborges/qm/internal/cover"
	"github.com/pborges/qm/internal/qm"
)

func TestOutcome(t *testing.T) {
	t.Parallel()

	assert.Equal(t, OutcomeOK, Outcome(nil))
	assert.Equal(t, OutcomeInvalidConfig, Outcome(fmt.Errorf("%w: x", qm.ErrInvalidConfig)))
	assert.Equal(t, OutcomeTooManyCompares, Outcome(&qm.BudgetError{}))
	assert.Equal(t, OutcomeUncovered, Outcome(fmt.Errorf("%w: 3", cover.ErrUncovered)))
	assert.Equal(t, OutcomeError, Outcome(errors.New("boom")))
}

func TestRecorder(t *testing.T) {
	t.Parallel()

	r := New()
	e := qm.New()
	require.NoError(t, e.Reset(4, []uint64{4, 8, 10, 11, 12, 15}, []uint64{9, 14}))
	res, err := e.Resolve(nil)
	require.NoError(t, err)
	r.Observe(res, nil)

	e = qm.New(qm.WithCompareThreshold(0))
	require.NoError(t, e.Reset(1, []uint64{0, 1}, nil))
	res, err = e.Resolve(nil)
	r.Observe(res, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.runs.WithLabelValues(OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.runs.WithLabelValues(OutcomeTooManyCompares)))
	assert.Equal(t, 1, testutil.CollectAndCount(r.compares))

	path := filepath.Join(t.TempDir(), "qm.prom")
	require.NoError(t, r.WriteFile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `qm_runs_total{outcome="ok"} 1`)
	assert.Contains(t, string(data), "qm_compares_sum 40")
}
