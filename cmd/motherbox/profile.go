package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the local profile",
	Args:  cobra.NoArgs,
	RunE:  runProfileCmd,
}

func init() {
	rootCmd.AddCommand(profileCmd)
}

func runProfileCmd(cmd *cobra.Command, args []string) error {
	app, err := bootstrap()
	if err != nil {
		return err
	}
	defer app.Close()

	p := app.Store.Profile()
	if jsonOutput {
		printJSON(p)
		return nil
	}

	fmt.Printf("Username:   %s\n", p.Username)
	fmt.Printf("Bio:        %s\n", p.Bio)
	if p.Email != "" {
		fmt.Printf("Email:      %s\n", p.Email)
	}
	fmt.Printf("Universe:   %s\n", p.FavoriteUniverse)
	if p.PhotoPath != "" {
		fmt.Printf("Photo:      %s\n", p.PhotoPath)
	}
	fmt.Printf("Joined:     %s\n", p.JoinDate.Format("Jan 2, 2006"))
	return nil
}
