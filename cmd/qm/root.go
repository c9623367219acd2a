package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// cli carries the state shared by every command of one invocation.
type cli struct {
	cfgFile string
	verbose bool
	logger  *zap.Logger
}

// newCLI returns a cli that logs nothing until initLogger runs.
func newCLI() *cli {
	return &cli{logger: zap.NewNop()}
}

func (c *cli) root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "qm",
		Short:         "qm - Quine-McCluskey boolean function minimizer",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !c.verbose {
				return nil
			}
			return c.initLogger()
		},
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}
	cmd.PersistentFlags().StringVarP(&c.cfgFile, "config", "c", "", "problem file (default qm.yaml)")
	cmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(c.minimizeCmd(), c.estimateCmd(), c.initCmd(), c.versionCmd())
	return cmd
}

func (c *cli) initLogger() error {
	var (
		l   *zap.Logger
		err error
	)
	if c.verbose {
		l, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		l, err = cfg.Build()
	}
	if err != nil {
		return err
	}
	c.logger = l
	return nil
}
