package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/magpie/internal/config"
	"github.com/simonhull/magpie/pkg/docgen"
	"github.com/simonhull/magpie/pkg/output"
)

// ExportCmd creates and returns the 'export' command
func ExportCmd() *cobra.Command {
	var dir string
	var dryRun, force bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog as markdown pages",
		Long: `Export the catalog as one markdown page per pattern plus an index.

The export refuses to overwrite existing files unless --force is given,
and --dry-run reports what would be written without touching anything.

Examples:
  magpie export
  magpie export --out docs/patterns
  magpie export --dry-run
  magpie export --force`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := runExport(cmd, dir, dryRun, force); err != nil {
				fail(err)
			}
		},
	}

	cmd.Flags().StringVarP(&dir, "out", "o", "", "Directory to write pages into (default from config)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be written without creating files")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")

	return cmd
}

func runExport(cmd *cobra.Command, dir string, dryRun, force bool) error {
	c, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	if dir == "" {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		dir = cfg.ExportDir
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	err = docgen.NewExporter().Export(ctx, c, dir, docgen.ExecuteOptions{
		DryRun: dryRun,
		Force:  force,
		Writer: cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}

	if dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), "\n✓ Dry-run complete. Run without --dry-run to write pages.")
		return nil
	}

	output.Success(fmt.Sprintf("Exported %d patterns to %s", c.Len(), dir))
	return nil
}
