package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// options is shared by every subcommand once the root pre-run has
// merged the config file into it.
type options struct {
	configPath string
	logLevel   string

	cfg    Config
	logger *slog.Logger
}

// Execute runs the eventboard command line.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "eventboard",
		Short:        "Drive the event listing and counter pages",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			level := opts.logLevel
			if !cmd.Flags().Changed("log-level") && cfg.LogLevel != "" {
				level = cfg.LogLevel
			}
			opts.logger, err = newLogger(cmd.ErrOrStderr(), level)
			return err
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML file with default settings")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	root.AddCommand(eventsCmd(opts), counterCmd(opts), replayCmd(opts))
	return root
}
