package cli

import (
	"github.com/spf13/cobra"
)

func (c *CLI) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "show spending statistics derived from the budgets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, mode, err := c.sessionAndMode(cmd.Context())
			if err != nil {
				return err
			}

			totals, err := c.services.Stats.CategoryTotals(cmd.Context(), sess.UserID, mode)
			if err != nil {
				return err
			}

			active, completed, err := c.services.Stats.ByCompletion(cmd.Context(), sess.UserID, mode)
			if err != nil {
				return err
			}

			if len(totals) == 0 {
				cmd.Println("no budgets")
				return nil
			}

			cmd.Println("by category:")
			for _, t := range totals {
				cmd.Printf("  %-20s %10.2f / %.2f\n", t.Category, t.AmountSpent, t.Goal)
			}
			cmd.Printf("active: %d, completed: %d\n", len(active), len(completed))
			return nil
		},
	}
}
