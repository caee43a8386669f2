package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var clearDataCmd = &cobra.Command{
	Use:   "clear-data",
	Short: "Erase the watchlist, favorites, watch history, and profile",
	Args:  cobra.NoArgs,
	RunE:  runClearDataCmd,
}

func init() {
	rootCmd.AddCommand(clearDataCmd)
	clearDataCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}

func runClearDataCmd(cmd *cobra.Command, args []string) error {
	yes, _ := cmd.Flags().GetBool("yes")
	if !yes {
		fmt.Print("Erase ALL local data? This cannot be undone. [y/N]: ")
		reader := bufio.NewReader(os.Stdin)
		input, _ := reader.ReadString('\n')
		input = strings.ToLower(strings.TrimSpace(input))
		if input != "y" && input != "yes" {
			fmt.Println("Aborted")
			return nil
		}
	}

	app, err := bootstrap()
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Store.ClearAll(); err != nil {
		return fmt.Errorf("clear data: %w", err)
	}
	fmt.Println("All local data cleared")
	return nil
}
