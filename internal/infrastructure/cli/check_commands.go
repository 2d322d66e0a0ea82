package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/hostwatch/internal/app"
)

func newStorageCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "storage",
		Short: "Alert when the root filesystem is above disk_threshold_percent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(cmd, func(c *app.Container) error {
				ctx := cmd.Context()
				cfg, err := c.LoadConfig(ctx)
				if err != nil {
					return err
				}
				report, err := c.Storage(cfg).Run(ctx, cfg)
				if err != nil {
					return fmt.Errorf("read disk usage: %w", err)
				}
				renderStorageReport(cmd.OutOrStdout(), report)
				return nil
			})
		},
	}
}

func newTemperatureCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "temp",
		Aliases: []string{"temperature"},
		Short:   "Alert when the CPU is above temp_threshold_celsius",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(cmd, func(c *app.Container) error {
				ctx := cmd.Context()
				cfg, err := c.LoadConfig(ctx)
				if err != nil {
					return err
				}
				report, err := c.Temperature(cfg).Run(ctx, cfg)
				if err != nil {
					return fmt.Errorf("read temperature: %w", err)
				}
				renderTemperatureReport(cmd.OutOrStdout(), report)
				return nil
			})
		},
	}
}

func newIPCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "ip",
		Short: "Send the host's current address to the operator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(cmd, func(c *app.Container) error {
				ctx := cmd.Context()
				cfg, err := c.LoadConfig(ctx)
				if err != nil {
					return err
				}
				report, err := c.IPNotify(cfg).Run(ctx, cfg)
				renderAddressReport(cmd.OutOrStdout(), report)
				return err
			})
		},
	}
}
