package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/hostwatch/internal/app"
	"github.com/doeshing/hostwatch/internal/application/watchdog"
)

const privilegeHint = "Try: sudo hostwatch watchdog"

func newWatchdogCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "watchdog",
		Short: "Check configured services once and restart the ones that are down",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(cmd, func(c *app.Container) error {
				if err := watchdog.RequirePrivilege(c.Privilege); err != nil {
					return fmt.Errorf("%w\n%s", err, privilegeHint)
				}
				ctx := cmd.Context()
				cfg, err := c.LoadConfig(ctx)
				if err != nil {
					return err
				}
				report := c.Watchdog(cfg).Run(ctx, cfg)
				renderWatchdogReport(cmd.OutOrStdout(), report)
				return nil
			})
		},
	}
}
