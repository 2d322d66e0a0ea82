package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/doeshing/hostwatch/internal/app"
	configapp "github.com/doeshing/hostwatch/internal/application/config"
)

const msgConfigurationValid = "Configuration valid"

func newConfigCommand(s *session) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect hostwatch configuration",
	}
	configCmd.AddCommand(newConfigShowCommand(s), newConfigValidateCommand(s))
	return configCmd
}

func newConfigShowCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration with secrets redacted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(cmd, func(c *app.Container) error {
				cfg, err := c.ConfigProvider.Load(cmd.Context())
				if err != nil {
					return err
				}
				data, err := yaml.Marshal(cfg.Redacted())
				if err != nil {
					return fmt.Errorf("encode config: %w", err)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "# %s\n", cfg.Path)
				_, err = out.Write(data)
				return err
			})
		},
	}
}

func newConfigValidateCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(cmd, func(c *app.Container) error {
				cfg, err := c.ConfigProvider.Load(cmd.Context())
				if err != nil {
					return err
				}
				if err := configapp.Validate(cfg); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), msgConfigurationValid)
				return nil
			})
		},
	}
}
