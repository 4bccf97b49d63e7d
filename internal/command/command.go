package command

import (
	"context"

	commandHandler "gateway/internal/command/handler"

	"github.com/google/wire"
	"github.com/spf13/cobra"
)

var ProviderSet = wire.NewSet(NewCommand, commandHandler.NewConfigHandler, commandHandler.NewProbeHandler)

type Command struct {
	configHandler *commandHandler.ConfigHandler
	probeHandler  *commandHandler.ProbeHandler
}

// NewCommand .
func NewCommand(
	configHandler *commandHandler.ConfigHandler,
	probeHandler *commandHandler.ProbeHandler,
) *Command {
	return &Command{
		configHandler: configHandler,
		probeHandler:  probeHandler,
	}
}

func Register(rootCmd *cobra.Command, newCmd func() (*Command, func(), error)) {
	run := func(fn func(*Command) func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			command, cleanup, err := newCmd()
			if err != nil {
				return err
			}
			defer cleanup()
			if cmd.Context() == nil {
				cmd.SetContext(context.Background())
			}
			return fn(command)(cmd, args)
		}
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:          "check-config",
			Short:        "print configuration status with masked secrets",
			SilenceUsage: true,
			RunE: run(func(c *Command) func(*cobra.Command, []string) error {
				return c.configHandler.Check
			}),
		},
		&cobra.Command{
			Use:          "probe",
			Short:        "run one upstream health probe and exit",
			SilenceUsage: true,
			RunE: run(func(c *Command) func(*cobra.Command, []string) error {
				return c.probeHandler.Probe
			}),
		},
	)
}
