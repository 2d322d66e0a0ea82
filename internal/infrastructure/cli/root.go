package cli

import (
	"github.com/spf13/cobra"

	"github.com/doeshing/hostwatch/internal/app"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
	// Build constructs the container once flags are parsed. Defaults to
	// app.BuildContainer.
	Build func(app.Options) *app.Container
}

// session builds the container lazily so --config and --debug are honoured.
type session struct {
	build     func(app.Options) *app.Container
	opts      app.Options
	container *app.Container
}

func (s *session) run(cmd *cobra.Command, fn func(*app.Container) error) error {
	if s.container == nil {
		opts := s.opts
		if opts.LogOutput == nil {
			opts.LogOutput = cmd.ErrOrStderr()
		}
		s.container = s.build(opts)
	}
	defer s.container.Close()
	return fn(s.container)
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(opts Options) *cobra.Command {
	s := &session{build: opts.Build}
	if s.build == nil {
		s.build = app.BuildContainer
	}

	root := &cobra.Command{
		Use:   "hostwatch",
		Short: "hostwatch - single host service watchdog",
		Long: "hostwatch restarts failed systemd services and reports host health " +
			"(services, disk, temperature, address) to a Telegram chat.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&s.opts.ConfigPath, "config", "c", "", "Path to config file (default: search $HOSTWATCH_CONFIG, ./, binary dir, /etc/hostwatch)")
	root.PersistentFlags().BoolVar(&s.opts.Verbose, "debug", opts.Verbose, "Enable verbose logging")

	root.AddCommand(newWatchdogCommand(s))
	root.AddCommand(newStorageCommand(s))
	root.AddCommand(newTemperatureCommand(s))
	root.AddCommand(newIPCommand(s))
	root.AddCommand(newDoctorCommand(s))
	root.AddCommand(newConfigCommand(s))
	root.AddCommand(newVersionCommand())
	return root
}
