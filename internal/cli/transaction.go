package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-budget-sync/models"
)

func (c *CLI) transactionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"tx"},
		Short:   "manage spending records",
	}

	cmd.AddCommand(c.transactionAddCmd(), c.transactionListCmd())

	return cmd
}

func (c *CLI) transactionAddCmd() *cobra.Command {
	var (
		budgetName string
		amount     float64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "log a spending record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, mode, err := c.sessionAndMode(cmd.Context())
			if err != nil {
				return err
			}

			t, err := c.services.Transactions.Add(cmd.Context(), sess.UserID, mode, models.Transaction{
				BudgetName: budgetName,
				Amount:     amount,
			})
			if err != nil {
				return err
			}

			cmd.Printf("logged %.2f against %q (%s)\n", t.Amount, t.BudgetName, t.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&budgetName, "budget", "b", "", "budget name the amount was spent under")
	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "spent amount")
	cmd.MarkFlagRequired("budget")
	cmd.MarkFlagRequired("amount")

	return cmd
}

func (c *CLI) transactionListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list spending records",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, mode, err := c.sessionAndMode(cmd.Context())
			if err != nil {
				return err
			}

			transactions, err := c.services.Transactions.List(cmd.Context(), sess.UserID, mode)
			if err != nil {
				return err
			}

			if len(transactions) == 0 {
				cmd.Println("no transactions")
				return nil
			}
			for _, t := range transactions {
				cmd.Printf("%s  %-20s %10.2f  %s\n",
					t.Date.Format("2006-01-02 15:04"), t.BudgetName, t.Amount, t.ID)
			}
			return nil
		},
	}
}
