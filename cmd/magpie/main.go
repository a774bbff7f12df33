package main

import (
	"os"

	"github.com/simonhull/magpie/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.ListCmd())
	rootCmd.AddCommand(commands.ShowCmd())
	rootCmd.AddCommand(commands.SearchCmd())
	rootCmd.AddCommand(commands.CategoriesCmd())
	rootCmd.AddCommand(commands.ValidateCmd())
	rootCmd.AddCommand(commands.ExportCmd())
	rootCmd.AddCommand(commands.BrowseCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
