// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/netgen/internal/config"
)

const flagSettings = "settings"

// Root returns the root command for the netgen CLI.
//
// Global flags are bound to settings keys and can also be set through
// NETGEN_* environment variables or a settings file.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "netgen",
		Short:         "Generate network deployment manifests",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.String(config.KeyLogLevel, config.LogLevelInfo, "Log level (debug, info, error)")
	flags.String(config.KeyLogFormat, config.LogFormatConsole, "Log encoding (console, json)")
	flags.String(config.KeyMetricsFile, "", "Write Prometheus metrics to this file after each run")
	flags.String(flagSettings, "", "Path to a settings file")

	cmd.AddCommand(Generate())
	cmd.AddCommand(Validate())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}

// resolveSettings merges flags, environment and the optional settings file.
func resolveSettings(cmd *cobra.Command) (*config.Settings, error) {
	v := config.NewViper()
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return nil, err
	}

	var path string
	if f := cmd.Flags().Lookup(flagSettings); f != nil {
		path = f.Value.String()
	}

	return config.LoadSettings(v, path)
}
