package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/magpie/pkg/catalog"
	"github.com/simonhull/magpie/pkg/query"
)

// CategoriesCmd creates and returns the 'categories' command
func CategoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the pattern categories and their sizes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := runCategories(cmd); err != nil {
				fail(err)
			}
		},
	}

	return cmd
}

func runCategories(cmd *cobra.Command) error {
	c, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	counts := query.NewEngine(c).CountByCategory()
	w := cmd.OutOrStdout()
	for _, category := range catalog.Categories() {
		n := counts[category]
		noun := "patterns"
		if n == 1 {
			noun = "pattern"
		}
		fmt.Fprintf(w, "%-12s %d %s\n", category, n, noun)
	}

	return nil
}
