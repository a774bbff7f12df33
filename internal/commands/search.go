package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/magpie/pkg/catalog"
	"github.com/simonhull/magpie/pkg/query"
)

// SearchCmd creates and returns the 'search' command
func SearchCmd() *cobra.Command {
	var keyword, role string

	cmd := &cobra.Command{
		Use:   "search (--keyword <term> | --role <role>)",
		Short: "Search patterns by keyword or participant role",
		Long: `Search the catalog by applicability keyword or by participant role.
Exactly one of --keyword or --role must be given. Matching is
case-insensitive and compares whole terms, so "undo" matches "Undo"
but never "undoable".

Finding nothing is a normal outcome: the command prints no rows and
exits zero.

Examples:
  magpie search --keyword undo
  magpie search --keyword "single instance"
  magpie search --role Observer`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := runSearch(cmd, keyword, role); err != nil {
				fail(err)
			}
		},
	}

	cmd.Flags().StringVarP(&keyword, "keyword", "k", "", "Applicability keyword to search for")
	cmd.Flags().StringVarP(&role, "role", "r", "", "Participant role to search for")

	return cmd
}

func runSearch(cmd *cobra.Command, keyword, role string) error {
	if (keyword == "") == (role == "") {
		return &catalog.InvalidQueryError{
			Param:      "search",
			Message:    "pass exactly one of --keyword or --role",
			Suggestion: "try 'magpie search --keyword undo'",
		}
	}

	c, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	engine := query.NewEngine(c)
	var entries []catalog.Entry
	if keyword != "" {
		entries, err = engine.ByKeyword(keyword)
	} else {
		entries, err = engine.ByParticipant(role)
	}
	if err != nil {
		return err
	}

	// The notice goes to stderr so an empty result leaves stdout empty for
	// pipelines.
	if len(entries) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "No patterns matched.")
		return nil
	}

	printEntries(cmd.OutOrStdout(), entries)
	return nil
}
