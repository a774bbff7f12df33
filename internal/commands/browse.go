package commands

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/simonhull/magpie/internal/browse"
	"github.com/simonhull/magpie/pkg/output"
)

// BrowseCmd creates and returns the 'browse' command
func BrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog in an interactive terminal UI",
		Long: `Browse the catalog interactively: navigate the pattern list, read the
full card for each pattern, and cycle through category filters.

Keys: ↑/↓ or j/k to move, tab to cycle categories, q to quit.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				output.Error("browse needs an interactive terminal")
				os.Exit(1)
			}

			c, err := loadCatalog(cmd)
			if err != nil {
				fail(err)
			}

			if err := browse.Run(c); err != nil {
				fail(err)
			}
		},
	}

	return cmd
}
