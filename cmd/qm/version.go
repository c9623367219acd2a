package main

import (
	"fmt"

	"github.com/spf13/cobra"

	qmtool "github.com/pborges/qm"
)

func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the qm version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), qmtool.Version())
		},
	}
}
