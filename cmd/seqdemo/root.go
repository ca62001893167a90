package main

import (
	"github.com/spf13/cobra"

	"github.com/kbukum/seqkit/config"
	"github.com/kbukum/seqkit/demo"
	"github.com/kbukum/seqkit/errors"
)

// rootOptions holds global flags for all commands.
type rootOptions struct {
	ConfigFile string
	EnvFile    string
	LogLevel   string
}

// newRootCommand creates the root command for the seqdemo CLI.
func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "seqdemo",
		Short:         "seqdemo - sequence operator demonstration",
		Long:          "Runs Map, Reduce, Where and Join over small integer sequences and prints each result.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default: search cmd/seqdemo/config.yml, ./config.yml)")
	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", "", ".env file to load before binding SEQDEMO_* variables")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "override logging.level (trace|debug|info|warn|error|disabled)")

	cmd.AddCommand(newRunCommand(opts))
	cmd.AddCommand(newSectionsCommand(opts))
	cmd.AddCommand(newVersionCommand())

	return cmd
}

// loadConfig loads the demo config honoring the global flags.
func (o *rootOptions) loadConfig() (*demo.Config, error) {
	var loaderOpts []config.LoaderOption
	if o.ConfigFile != "" {
		loaderOpts = append(loaderOpts, config.WithConfigFile(o.ConfigFile))
	}
	if o.EnvFile != "" {
		loaderOpts = append(loaderOpts, config.WithEnvFile(o.EnvFile))
	}
	cfg, err := demo.LoadConfig(loaderOpts...)
	if err != nil {
		return nil, err
	}
	if o.LogLevel != "" {
		cfg.Logging.Level = o.LogLevel
		if err := cfg.Validate(); err != nil {
			return nil, errors.InvalidConfig(demo.ServiceName, err)
		}
	}
	return cfg, nil
}
