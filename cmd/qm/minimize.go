package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	qmtool "github.com/pborges/qm"
	"github.com/pborges/qm/internal/config"
	"github.com/pborges/qm/internal/metrics"
	"github.com/pborges/qm/internal/pla"
	"github.com/pborges/qm/internal/qm"
	"github.com/pborges/qm/internal/verify"
)

type minimizeOptions struct {
	vars      int
	matches   []uint
	ignored   []uint
	names     []string
	threshold int
	cover     string

	output      string
	truth       string
	verify      bool
	metricsFile string
	trace       bool
}

func (c *cli) minimizeCmd() *cobra.Command {
	var o minimizeOptions
	cmd := &cobra.Command{
		Use:   "minimize",
		Short: "Minimize a boolean function given by its minterms",
		Long: `Minimize reads the problem from the config file and applies flag
overrides, then prints the prime implicants and the selected cover.`,
		Example: `  qm minimize --vars 4 --matches 4,8,10,11,12,15 --ignored 9,14
  qm minimize -c adder.yaml --cover exact -o adder.pla --verify`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := c.problem(cmd, o)
			if err != nil {
				return err
			}
			return c.minimize(cmd.OutOrStdout(), p, o)
		},
	}
	f := cmd.Flags()
	f.IntVar(&o.vars, "vars", 0, "number of input variables")
	f.UintSliceVar(&o.matches, "matches", nil, "required minterms")
	f.UintSliceVar(&o.ignored, "ignored", nil, "don't-care minterms")
	f.StringSliceVar(&o.names, "names", nil, "variable names, most significant first")
	f.IntVar(&o.threshold, "threshold", qm.DefaultCompareThreshold, "maximum pairwise compares")
	f.StringVar(&o.cover, "cover", "direct", "cover strategy: direct or exact")
	f.StringVarP(&o.output, "output", "o", "", "write the cover as a PLA file")
	f.StringVar(&o.truth, "truth", "", "write the input truth table as a PLA file")
	f.BoolVar(&o.verify, "verify", false, "check the cover against the input with BDDs")
	f.StringVar(&o.metricsFile, "metrics-file", "", "write run metrics in the Prometheus text format")
	f.BoolVar(&o.trace, "trace", false, "print the candidates of every reduction round")
	return cmd
}

// problem loads the config file and applies the flags the user set.
func (c *cli) problem(cmd *cobra.Command, o minimizeOptions) (config.Config, error) {
	p, err := config.Load(c.cfgFile)
	if err != nil {
		return p, err
	}
	f := cmd.Flags()
	if f.Changed("vars") {
		p.Vars = o.vars
	}
	if f.Changed("matches") {
		p.Matches = widen(o.matches)
	}
	if f.Changed("ignored") {
		p.Ignored = widen(o.ignored)
	}
	if f.Changed("names") {
		p.Names = o.names
	}
	if f.Changed("threshold") {
		t := o.threshold
		p.Threshold = &t
	}
	if f.Changed("cover") {
		p.Cover = o.cover
	}
	return p, nil
}

func widen(ms []uint) []uint64 {
	out := make([]uint64, len(ms))
	for i, m := range ms {
		out[i] = uint64(m)
	}
	return out
}

func (c *cli) minimize(w io.Writer, p config.Config, o minimizeOptions) error {
	opts, err := p.Options()
	if err != nil {
		return err
	}
	e := qm.New(append(opts, qm.WithLogger(c.logger))...)
	if err := e.Reset(p.Vars, p.Matches, p.Ignored); err != nil {
		return err
	}
	if est := qm.EstimateCompares(p.Vars); est > uint64(e.Threshold()) {
		c.logger.Warn("worst case compares exceed threshold",
			zap.Uint64("estimate", est),
			zap.Int("threshold", e.Threshold()))
	}

	var trace *qm.Trace
	if o.trace {
		trace = &qm.Trace{}
	}
	res, runErr := e.Resolve(trace)
	if o.metricsFile != "" {
		rec := metrics.New()
		rec.Observe(res, runErr)
		if err := rec.WriteFile(o.metricsFile); err != nil {
			return errors.Join(runErr, fmt.Errorf("failed to write metrics: %w", err))
		}
	}
	if runErr != nil {
		return runErr
	}

	if trace != nil {
		printTrace(w, trace)
	}
	printResult(w, res, p.Names)

	cubes := verify.Cubes(res.Essentials)
	if o.verify {
		if err := verify.Cover(p.Vars, e.Matches(), e.Ignored(), cubes); err != nil {
			return fmt.Errorf("cover does not match input: %w", err)
		}
		fmt.Fprintln(w, okStyle.Sprint("verified"))
	}

	generated := "generated by qm " + qmtool.Version()
	if o.output != "" {
		text := pla.MakePLA(pla.Config{
			Header: []string{generated, "F = " + expression(res, p.Names)},
			Inputs: p.Names,
		}, p.Vars, cubes)
		if err := os.WriteFile(o.output, []byte(text), 0644); err != nil {
			return err
		}
	}
	if o.truth != "" {
		text := pla.MakeTruthTable(pla.Config{
			Header: []string{generated},
			Inputs: p.Names,
		}, p.Vars, e.Matches(), e.Ignored())
		if err := os.WriteFile(o.truth, []byte(text), 0644); err != nil {
			return err
		}
	}
	return nil
}
