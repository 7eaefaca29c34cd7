// Package cli implements the command-line surface of the budgeting client.
//
// Every command resolves the persisted session and the offline/online mode
// flag before delegating to the client services, so the same command works
// identically in both modes.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/internal/service"
	"github.com/MKhiriev/go-budget-sync/models"
)

// CLI assembles the cobra command tree over the client services.
type CLI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	root *cobra.Command
}

// New constructs the command tree. The returned CLI is ready to Execute.
func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *CLI {
	c := &CLI{
		services:  services,
		buildInfo: buildInfo,
		logger:    logger,
	}

	root := &cobra.Command{
		Use:           "budget-sync",
		Short:         "personal budgeting client with an offline replica",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		c.registerCmd(),
		c.loginCmd(),
		c.logoutCmd(),
		c.modeCmd(),
		c.budgetCmd(),
		c.transactionCmd(),
		c.notificationCmd(),
		c.themeCmd(),
		c.statsCmd(),
		c.syncCmd(),
		c.loadCmd(),
		c.versionCmd(),
	)

	c.root = root
	return c
}

// Execute runs the command line against the assembled tree.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	c.root.SetArgs(args)
	return c.root.ExecuteContext(ctx)
}

// SetOutput redirects command output, used by tests.
func (c *CLI) SetOutput(w io.Writer) {
	c.root.SetOut(w)
	c.root.SetErr(w)
}

// session resolves the persisted session, restoring the adapter token.
// Commands operating on user data call this first.
func (c *CLI) session(ctx context.Context) (models.Session, error) {
	sess, err := c.services.Auth.Resume(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("resume session: %w", err)
	}
	return sess, nil
}

// sessionAndMode resolves both the session and the persisted mode flag.
func (c *CLI) sessionAndMode(ctx context.Context) (models.Session, models.Mode, error) {
	sess, err := c.session(ctx)
	if err != nil {
		return models.Session{}, "", err
	}

	mode, err := c.services.Modes.Mode(ctx)
	if err != nil {
		return models.Session{}, "", fmt.Errorf("resolve mode: %w", err)
	}
	return sess, mode, nil
}
