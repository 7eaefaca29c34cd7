package cli

import (
	"github.com/spf13/cobra"
)

func (c *CLI) themeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "show the chart theme preference",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, mode, err := c.sessionAndMode(cmd.Context())
			if err != nil {
				return err
			}

			theme, err := c.services.Preferences.ChartTheme(cmd.Context(), sess.UserID, mode)
			if err != nil {
				return err
			}

			if theme == "" {
				cmd.Println("no theme selected")
				return nil
			}
			cmd.Println(theme)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <theme>",
		Short: "select the chart theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, mode, err := c.sessionAndMode(cmd.Context())
			if err != nil {
				return err
			}

			if err := c.services.Preferences.SetChartTheme(cmd.Context(), sess.UserID, mode, args[0]); err != nil {
				return err
			}

			cmd.Printf("theme set to %s\n", args[0])
			return nil
		},
	})

	return cmd
}
