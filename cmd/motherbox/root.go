package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vmunix/motherbox/internal/view"
)

var version = "dev"

var (
	configPath string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "motherbox",
	Short: "Terminal browser for the DC multiverse",
	Long: `motherbox - terminal browser for the DC multiverse

Browse films and series across every DC continuity, keep a
watchlist and favorites, and track what you have watched.
All interaction data stays in a local database.

Run with no arguments to open the interactive browser.`,
	RunE: runTUI,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: discovered)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("motherbox {{.Version}}\n")
}

func runTUI(cmd *cobra.Command, args []string) error {
	app, err := bootstrap()
	if err != nil {
		return err
	}
	defer app.Close()

	model := view.New(app.Catalog, app.Store, app.Photos, app.Logger, version)
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
