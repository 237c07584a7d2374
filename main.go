package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/avstrong/roombook/internal/app"
	"github.com/avstrong/roombook/internal/config"
	"github.com/avstrong/roombook/internal/logger"
)

func newRootCmd() *cobra.Command {
	var (
		configPath string
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:           "roombook",
		Short:         "In-memory hotel room reservation desk",
		Long:          "roombook tracks rooms, bookings and cancellations for one hotel through a text menu.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l := logger.New(log.New(cmd.ErrOrStderr(), "", log.LstdFlags))
			if quiet {
				l = logger.Nop()
			}

			conf, err := config.Load(configPath)
			if err != nil {
				return err //nolint:wrapcheck
			}

			return app.Run(l, conf, app.IO{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}) //nolint:wrapcheck
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file (defaults are built in)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "discard log output")

	return cmd
}

func main() {
	l := logger.New(log.New(os.Stderr, "", log.LstdFlags))

	var exitCode int

	if err := newRootCmd().Execute(); err != nil {
		l.LogErrorf("Failed to run app: %v", err.Error())

		exitCode = 1
	}

	os.Exit(exitCode)
}
