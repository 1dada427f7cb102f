// Package main is the entry point for the glimpse CLI application.
//
// The application follows this startup sequence:
//
// 1. Parse the command line
// 2. Initialize the logging system
// 3. Load user configuration from disk and apply flag overrides
// 4. Scan the target directory
// 5. Start the finder TUI with Bubble Tea
// 6. Print the confirmed selection, if any, on exit
package main

import (
	"fmt"
	"os"

	"glimpse/internal/config"
	"glimpse/internal/finder"
	"glimpse/internal/logging"
	"glimpse/internal/preview"
	"glimpse/internal/tui"
	"glimpse/internal/tui/styles"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	flagTheme string
	flagDebug bool
)

func main() {
	root := &cobra.Command{
		Use:   "glimpse [directory]",
		Short: "Fuzzy-find files with live syntax-highlighted previews",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return run(dir)
		},
		SilenceUsage: true,
	}
	root.Flags().StringVar(&flagTheme, "theme", "", "highlighting theme (overrides config)")
	root.Flags().BoolVar(&flagDebug, "debug", false, "write debug logs to glimpse.log")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("Error:"), err)
		os.Exit(1)
	}
}

func run(dir string) error {
	// Entry names are paths relative to the scan root, so the rest of the
	// program resolves them against the working directory.
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("cannot enter %q: %w", dir, err)
	}

	if flagDebug {
		os.Setenv("DEBUG", "1")
	}
	appLogger := logging.NewAppLogger()

	cfg, err := config.Load()
	if err != nil {
		appLogger.Error("Error loading config", "error", err)
		return err
	}
	if flagTheme != "" {
		cfg.Theme = flagTheme
	}
	appLogger.Info("Configuration loaded successfully.", "theme", cfg.Theme, "ui_scale", cfg.UIScale)

	f, err := finder.New(".")
	if err != nil {
		appLogger.Error("Error scanning directory", "dir", dir, "error", err)
		return err
	}

	previewer := preview.NewPreviewer(preview.Options{Theme: cfg.Theme}, appLogger)

	model := tui.NewModel(cfg, f, previewer, appLogger)
	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		appLogger.Error("Error starting TUI program", "error", err)
		return err
	}

	if m, ok := final.(*tui.Model); ok && m.Selected != nil {
		fmt.Println(m.Selected.DisplayName())
	}
	return nil
}
