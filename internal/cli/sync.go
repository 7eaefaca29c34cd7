package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) syncCmd() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "replay deferred changes against the server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, mode, err := c.sessionAndMode(cmd.Context())
			if err != nil {
				return err
			}

			pending, err := c.services.Queue.Pending(cmd.Context())
			if err != nil {
				return err
			}
			if len(pending) == 0 {
				cmd.Println("nothing to sync")
				return nil
			}

			if list {
				for i, action := range pending {
					cmd.Printf("%3d  %-6s %s\n", i+1, action.Kind, action.Collection)
				}
				return nil
			}

			if mode.IsOffline() {
				return fmt.Errorf("client is in offline mode; switch online before syncing")
			}

			if err := c.services.Queue.Drain(cmd.Context()); err != nil {
				return fmt.Errorf("some deferred changes could not be replayed: %w", err)
			}

			cmd.Printf("replayed %d deferred change(s)\n", len(pending))
			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "list pending changes without replaying them")

	return cmd
}

func (c *CLI) loadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "refresh the local replicas from the server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := c.session(cmd.Context())
			if err != nil {
				return err
			}

			if err := c.services.Replicas.Load(cmd.Context(), sess.UserID); err != nil {
				return err
			}

			cmd.Println("replicas refreshed")
			return nil
		},
	}
}
