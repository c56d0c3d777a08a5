// Package cmd provides Cobra CLI commands for glyphpick.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/glyphpick/internal/cli"
	"github.com/bnema/glyphpick/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "glyphpick",
		Short: "An icon picker form field for terminal record editors",
		Long: `Glyphpick - pick, tune and persist named icons from the terminal.

An icon picker that behaves like a form field: browse and search a
catalog of named icons, adjust size, color and stroke, and store the
result as a structured value on a record.

Features:
  - Full-screen TUI editor with keyboard and mouse support
  - Debounced substring search over the bundled icon catalog
  - Settings panel for size, color, stroke width and absolute stroke
  - Values persisted as JSON fields on SQLite-backed records
  - Pipe-friendly catalog listing for scripts and launchers

Use 'glyphpick pick' to edit an icon field on a record, or explore the
subcommands for catalog queries and configuration.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "schema", "gen-docs":
				return nil
			}
			// Config inspection manages the config file itself; loading
			// the app here would create it as a side effect.
			if cmd.Parent() != nil && cmd.Parent().Name() == "config" {
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
