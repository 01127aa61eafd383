// Package cli implements the touchcanvas command line.
//
// Without a subcommand it opens a local drawing window. "host" additionally
// shares the canvas with viewers on the local network and "view" opens a
// read-only window onto a host.
package cli

import (
	"context"
	"os"

	"TouchCanvas/internal/config"
	"TouchCanvas/internal/state"
	"TouchCanvas/internal/ui"

	"fyne.io/fyne/v2/app"
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the command tree with ctx; cancelling ctx closes the window.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "touchcanvas",
		Short:        "Freehand drawing canvas",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), logger)
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			session := ui.NewSession(app.New(), configFromContext(ctx), newStore(ctx), loggerFromContext(ctx))
			session.Run(ctx)
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a TOML config file")

	root.AddCommand(newHostCmd())
	root.AddCommand(newViewCmd())
	return root
}

func newStore(ctx context.Context) *state.Store {
	cfg := configFromContext(ctx)
	return state.NewStore(
		state.WithLogger(loggerFromContext(ctx)),
		state.WithInitialSelection(state.Palette[cfg.Brush.Color], cfg.Brush.Size),
	)
}
