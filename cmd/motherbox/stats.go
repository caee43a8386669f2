package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show watchlist, favorites, and watch history counts",
	Args:  cobra.NoArgs,
	RunE:  runStatsCmd,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStatsCmd(cmd *cobra.Command, args []string) error {
	app, err := bootstrap()
	if err != nil {
		return err
	}
	defer app.Close()

	stats := app.Store.Stats()
	if jsonOutput {
		printJSON(stats)
		return nil
	}

	fmt.Printf("Watchlist:        %d\n", stats.Watchlist)
	fmt.Printf("Favorites:        %d\n", stats.Favorites)
	fmt.Printf("Watched titles:   %d\n", stats.Watched)
	fmt.Printf("Watched episodes: %d\n", stats.WatchedEpisodes)
	return nil
}
