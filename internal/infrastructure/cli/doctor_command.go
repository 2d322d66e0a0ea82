package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/hostwatch/internal/app"
)

func newDoctorCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose environment setup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(cmd, func(c *app.Container) error {
				report, err := c.Doctor().Run(cmd.Context())

				// Display report even if there were errors
				renderHealthReport(cmd.OutOrStdout(), report)

				if err != nil {
					return fmt.Errorf("diagnostics completed with errors: %w", err)
				}
				return nil
			})
		},
	}
}
