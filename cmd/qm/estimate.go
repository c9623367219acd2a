package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pborges/qm/internal/config"
	"github.com/pborges/qm/internal/qm"
)

func (c *cli) estimateCmd() *cobra.Command {
	var (
		vars      int
		threshold int
	)
	cmd := &cobra.Command{
		Use:   "estimate [vars]",
		Short: "Print the worst-case number of compares for a variable count",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid variable count %q", args[0])
				}
				vars = n
			} else if !cmd.Flags().Changed("vars") {
				p, err := config.Load(c.cfgFile)
				if err != nil {
					return err
				}
				vars = p.Vars
				if p.Threshold != nil && !cmd.Flags().Changed("threshold") {
					threshold = *p.Threshold
				}
			}
			if vars <= 0 || vars > qm.MaxVars {
				return fmt.Errorf("%w: vars %d not in 1..%d", qm.ErrInvalidConfig, vars, qm.MaxVars)
			}

			est := qm.EstimateCompares(vars)
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, est)
			if threshold >= 0 && est > uint64(threshold) {
				fmt.Fprintln(w, warnStyle.Sprintf("exceeds threshold %d", threshold))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&vars, "vars", 0, "number of input variables")
	cmd.Flags().IntVar(&threshold, "threshold", qm.DefaultCompareThreshold, "compare threshold to check against")
	return cmd
}
