package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-budget-sync/models"
)

func (c *CLI) registerCmd() *cobra.Command {
	var login, password, name string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "create an account on the server and store the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := c.services.Auth.Register(cmd.Context(), models.User{
				Login:    login,
				Password: password,
				Name:     name,
			})
			if err != nil {
				return err
			}

			cmd.Printf("registered as %s (user %d)\n", sess.Login, sess.UserID)
			return c.warmReplicas(cmd, sess.UserID)
		},
	}

	cmd.Flags().StringVarP(&login, "login", "l", "", "account login")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	cmd.Flags().StringVarP(&name, "name", "n", "", "display name")
	cmd.MarkFlagRequired("login")
	cmd.MarkFlagRequired("password")

	return cmd
}

func (c *CLI) loginCmd() *cobra.Command {
	var login, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "authenticate and store the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := c.services.Auth.Login(cmd.Context(), models.User{
				Login:    login,
				Password: password,
			})
			if err != nil {
				return err
			}

			cmd.Printf("logged in as %s (user %d)\n", sess.Login, sess.UserID)
			return c.warmReplicas(cmd, sess.UserID)
		},
	}

	cmd.Flags().StringVarP(&login, "login", "l", "", "account login")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	cmd.MarkFlagRequired("login")
	cmd.MarkFlagRequired("password")

	return cmd
}

func (c *CLI) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "forget the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.services.Auth.Logout(cmd.Context()); err != nil {
				return err
			}
			cmd.Println("logged out")
			return nil
		},
	}
}

// warmReplicas refreshes the online replicas after authentication. Failures
// are reported but do not fail the login: the replicas refresh on the next
// online read anyway.
func (c *CLI) warmReplicas(cmd *cobra.Command, userID int64) error {
	if err := c.services.Replicas.Load(cmd.Context(), userID); err != nil {
		cmd.PrintErrf("warning: could not refresh local replicas: %v\n", err)
	}
	return nil
}
