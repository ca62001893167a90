package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kbukum/seqkit/bootstrap"
	"github.com/kbukum/seqkit/demo"
	"github.com/kbukum/seqkit/observability"
	"github.com/kbukum/seqkit/version"
)

// newRunCommand creates the run command.
func newRunCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run [section...]",
		Short: "Run the demonstration",
		Long:  "Runs every section in order, or only the named sections (still in run order).\nThe run stops at the first failing section.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			if cfg.Version == "" {
				cfg.Version = version.GetShortVersion()
				cfg.Telemetry.ServiceVersion = cfg.Version
			}
			return runDemo(cmd.Context(), cmd, cfg, args)
		},
	}
}

func runDemo(ctx context.Context, cmd *cobra.Command, cfg *demo.Config, only []string) error {
	app, err := bootstrap.NewApp(cfg)
	if err != nil {
		return err
	}

	providers, err := observability.Init(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	app.OnStop(providers.Shutdown)

	inst, err := observability.NewInstruments(providers.Meter(observability.ScopeName))
	if err != nil {
		return fmt.Errorf("creating instruments: %w", err)
	}

	runner := demo.NewRunner(cfg,
		demo.WithOutput(cmd.OutOrStdout()),
		demo.WithLogger(app.Logger.WithComponent("demo")),
		demo.WithTracer(providers.Tracer(observability.ScopeName)),
		demo.WithInstruments(inst),
	)
	return app.RunTask(ctx, func(ctx context.Context) error {
		return runner.Run(ctx, only...)
	})
}

// newSectionsCommand creates the sections command.
func newSectionsCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List the demonstration sections in run order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, s := range demo.DefaultSections(cfg) {
				fmt.Fprintf(w, "%s\t%s\n", s.Name, s.Label)
			}
			return w.Flush()
		},
	}
}

// newVersionCommand creates the version command.
func newVersionCommand() *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), version.GetShortVersion())
				return
			}
			fmt.Fprintln(cmd.OutOrStdout(), version.GetFullVersion())
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "print only the version")
	return cmd
}
