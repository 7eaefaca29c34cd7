package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-budget-sync/models"
)

func (c *CLI) modeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mode",
		Short: "show the persisted offline/online mode",
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode, err := c.services.Modes.Mode(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Println(string(mode))
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set {online|offline}",
		Short: "switch the authoritative store",
		Long: "Switch the authoritative store. Switching to offline wipes the " +
			"local replicas so the offline session starts from an empty data " +
			"set; switching to online replays nothing by itself, run " +
			"\"budget-sync sync\" to push deferred changes.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := models.ParseMode(args[0])
			if err != nil {
				return err
			}

			if err := c.services.Modes.SetMode(cmd.Context(), mode); err != nil {
				return err
			}

			cmd.Printf("mode set to %s\n", mode)
			return nil
		},
	})

	return cmd
}
