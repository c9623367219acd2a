package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	c := newCLI()
	if err := c.initLogger(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	os.Exit(c.execute(os.Args[1:]))
}

// execute runs the command tree and returns the exit code. The logger is
// flushed before it returns.
func (c *cli) execute(args []string) int {
	defer func() { _ = c.logger.Sync() }()

	cmd := c.root()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		c.logger.Error("qm failed", zap.Error(err))
		return 1
	}
	return 0
}
