package cli

import (
	"github.com/spf13/cobra"
)

func (c *CLI) notificationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notification",
		Short: "manage in-app notifications",
	}

	cmd.AddCommand(c.notificationListCmd(), c.notificationAddCmd())

	return cmd
}

func (c *CLI) notificationListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list notifications",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, mode, err := c.sessionAndMode(cmd.Context())
			if err != nil {
				return err
			}

			notifications, err := c.services.Notifications.List(cmd.Context(), sess.UserID, mode)
			if err != nil {
				return err
			}

			if len(notifications) == 0 {
				cmd.Println("no notifications")
				return nil
			}
			for _, n := range notifications {
				cmd.Printf("%s  %s\n", n.CreatedAt.Format("2006-01-02 15:04"), n.Message)
			}
			return nil
		},
	}
}

func (c *CLI) notificationAddCmd() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "create a notification",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, mode, err := c.sessionAndMode(cmd.Context())
			if err != nil {
				return err
			}

			n, err := c.services.Notifications.Notify(cmd.Context(), sess.UserID, mode, message)
			if err != nil {
				return err
			}

			cmd.Printf("notification created (%s)\n", n.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "notification text")
	cmd.MarkFlagRequired("message")

	return cmd
}
