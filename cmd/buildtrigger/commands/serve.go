package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve invocations from the Lambda runtime API",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.serve()
		},
	}
}

func (c *CLI) serve() error {
	c.start(c.handler.Handle)
	return nil
}
