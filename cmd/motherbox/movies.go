package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/motherbox/internal/catalog"
)

var moviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "List catalog titles",
	Long: `List catalog titles, newest first.

Examples:
  motherbox movies
  motherbox movies --universe DCEU
  motherbox movies --search "dark knight" --json`,
	Args: cobra.NoArgs,
	RunE: runMoviesCmd,
}

func init() {
	rootCmd.AddCommand(moviesCmd)
	moviesCmd.Flags().String("universe", catalog.AllUniverses, "Filter by universe")
	moviesCmd.Flags().String("search", "", "Case-insensitive title substring")
}

func runMoviesCmd(cmd *cobra.Command, args []string) error {
	universe, _ := cmd.Flags().GetString("universe")
	search, _ := cmd.Flags().GetString("search")

	app, err := bootstrap()
	if err != nil {
		return err
	}
	defer app.Close()

	movies, err := app.Catalog.List(cmd.Context(), universe, search)
	if err != nil {
		return fmt.Errorf("list titles: %w", err)
	}

	if jsonOutput {
		printJSON(movies)
		return nil
	}

	if len(movies) == 0 {
		fmt.Println("No titles found")
		return nil
	}
	printMoviesHuman(movies)
	return nil
}

func printMoviesHuman(movies []catalog.Movie) {
	fmt.Printf("%-42s │ %4s │ %5s │ %-12s │ %s\n", "TITLE", "YEAR", "STARS", "UNIVERSE", "TYPE")
	fmt.Println("───────────────────────────────────────────┼──────┼───────┼──────────────┼───────")
	for _, m := range movies {
		fmt.Printf("%-42s │ %4d │ %5.1f │ %-12s │ %s\n",
			truncate(m.Title, 42), m.Year, m.Rating, m.Universe, m.Type)
	}
	fmt.Printf("\n%d titles\n", len(movies))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}
