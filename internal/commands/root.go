package commands

import (
	"github.com/spf13/cobra"

	"github.com/simonhull/magpie"
	"github.com/simonhull/magpie/pkg/output"
)

// RootCmd creates and returns the root command for the magpie CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "magpie",
		Short: "Design-pattern reference for your terminal",
		Long: `Magpie is a field guide to the classic design patterns.

It ships the 23 Gang of Four patterns as a searchable catalog:
• List patterns and filter them by category
• Show a pattern's intent, participants, and related patterns
• Search by applicability keyword or participant role
• Export the whole catalog as markdown pages

Magpie uses its built-in catalog by default. Point --catalog (or
MAGPIE_CATALOG, or 'catalog:' in magpie.yml) at your own definition set
to browse team-specific patterns instead.`,
		Version: magpie.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")
	cmd.PersistentFlags().String("catalog", "", "Path to a pattern definition set (overrides config)")

	return cmd
}
