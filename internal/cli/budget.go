package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-budget-sync/models"
)

func (c *CLI) budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "manage budget goals",
	}

	cmd.AddCommand(
		c.budgetCreateCmd(),
		c.budgetListCmd(),
		c.budgetAddFundsCmd(),
		c.budgetDeleteCmd(),
	)

	return cmd
}

func (c *CLI) budgetCreateCmd() *cobra.Command {
	var (
		name, category, icon string
		goal                 float64
		notify               bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "create a budget goal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, mode, err := c.sessionAndMode(cmd.Context())
			if err != nil {
				return err
			}

			budget, err := c.services.Budgets.Create(cmd.Context(), sess.UserID, mode, models.Budget{
				Name:               name,
				Goal:               goal,
				Category:           category,
				Icon:               icon,
				NotifyOnCompletion: notify,
			})
			if err != nil {
				return err
			}

			cmd.Printf("created budget %q (%s)\n", budget.Name, budget.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "budget name")
	cmd.Flags().Float64VarP(&goal, "goal", "g", 0, "target amount")
	cmd.Flags().StringVar(&category, "category", "", "category label")
	cmd.Flags().StringVar(&icon, "icon", "", "icon identifier")
	cmd.Flags().BoolVar(&notify, "notify", false, "notify when the goal is reached")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("goal")

	return cmd
}

func (c *CLI) budgetListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list budget goals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, mode, err := c.sessionAndMode(cmd.Context())
			if err != nil {
				return err
			}

			budgets, err := c.services.Budgets.List(cmd.Context(), sess.UserID, mode)
			if err != nil {
				return err
			}

			if len(budgets) == 0 {
				cmd.Println("no budgets")
				return nil
			}
			for _, b := range budgets {
				state := "active"
				if b.Completed() {
					state = "completed"
				}
				cmd.Printf("%s  %-20s %10.2f / %-10.2f %-12s %s\n",
					b.ID, b.Name, b.AmountSpent, b.Goal, b.CategoryLabel(), state)
			}
			return nil
		},
	}
}

func (c *CLI) budgetAddFundsCmd() *cobra.Command {
	var amount float64

	cmd := &cobra.Command{
		Use:   "add-funds <budget-id>",
		Short: "log an amount against a budget goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, mode, err := c.sessionAndMode(cmd.Context())
			if err != nil {
				return err
			}

			budget, err := c.services.Budgets.AddFunds(cmd.Context(), sess.UserID, mode, args[0], amount)
			if err != nil {
				return err
			}

			cmd.Printf("budget %q now at %.2f of %.2f\n", budget.Name, budget.AmountSpent, budget.Goal)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "amount to add")
	cmd.MarkFlagRequired("amount")

	return cmd
}

func (c *CLI) budgetDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <budget-id>",
		Short: "delete a budget goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, mode, err := c.sessionAndMode(cmd.Context())
			if err != nil {
				return err
			}

			if err := c.services.Budgets.Delete(cmd.Context(), sess.UserID, mode, args[0]); err != nil {
				return err
			}

			cmd.Println("budget deleted")
			return nil
		},
	}
}
