package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/magpie/pkg/catalog"
	"github.com/simonhull/magpie/pkg/output"
)

// ValidateCmd creates and returns the 'validate' command
func ValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a pattern definition set",
		Long: `Validate a definition set without loading it into any command.

Every problem in the file is reported at once, with line numbers and
suggestions, so one run is enough to fix the whole set.

Examples:
  magpie validate team-patterns.yml`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := runValidate(cmd, args[0]); err != nil {
				fail(err)
			}
		},
	}

	return cmd
}

func runValidate(cmd *cobra.Command, path string) error {
	c, err := catalog.Parse(path)
	if err != nil {
		return err
	}

	output.Success(fmt.Sprintf("%s is valid: %d patterns, definition version %s", path, c.Len(), c.Version()))
	return nil
}
