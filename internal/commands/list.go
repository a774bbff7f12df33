package commands

import (
	"github.com/spf13/cobra"

	"github.com/simonhull/magpie/pkg/catalog"
	"github.com/simonhull/magpie/pkg/query"
)

// ListCmd creates and returns the 'list' command
func ListCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the patterns in the catalog",
		Long: `List every pattern in the catalog, or just one category.

Category names are matched case-insensitively.

Examples:
  magpie list
  magpie list --category creational
  magpie list -c Behavioral`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := runList(cmd, category); err != nil {
				fail(err)
			}
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Only list patterns in this category")

	return cmd
}

func runList(cmd *cobra.Command, category string) error {
	c, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	entries := c.All()
	if category != "" {
		parsed, err := catalog.ParseCategory(category)
		if err != nil {
			return err
		}
		entries, err = query.NewEngine(c).ByCategory(parsed)
		if err != nil {
			return err
		}
	}

	printEntries(cmd.OutOrStdout(), entries)
	return nil
}
