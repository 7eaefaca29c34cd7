package cli

import (
	"github.com/spf13/cobra"
)

func (c *CLI) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print build information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("Build version: %s\n", c.buildInfo.BuildVersion())
			cmd.Printf("Build date: %s\n", c.buildInfo.BuildDate())
			cmd.Printf("Build commit: %s\n", c.buildInfo.BuildCommit())
		},
	}
}
