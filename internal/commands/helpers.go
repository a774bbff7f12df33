package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/simonhull/magpie/internal/config"
	"github.com/simonhull/magpie/pkg/catalog"
	"github.com/simonhull/magpie/pkg/gof"
	"github.com/simonhull/magpie/pkg/output"
)

// notFoundError marks a lookup for a pattern the catalog doesn't have.
type notFoundError struct {
	name string
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("pattern not found: %s", e.name)
}

// exitCode maps an error to the process exit code: 2 for malformed query
// arguments, 1 for everything else (lookups that missed, broken definition
// sets, IO failures).
func exitCode(err error) int {
	var qerr *catalog.InvalidQueryError
	if errors.As(err, &qerr) {
		return 2
	}
	return 1
}

// fail reports err and exits with the matching code. Commands call this
// from their Run closures; the run* functions stay exit-free so tests can
// call them directly.
func fail(err error) {
	output.Error(err.Error())
	os.Exit(exitCode(err))
}

// loadCatalog resolves which definition set to use: the --catalog flag
// first, then magpie.yml or MAGPIE_CATALOG, then the built-in Gang of Four
// set.
func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	if f := cmd.Flags().Lookup("catalog"); f != nil && f.Value.String() != "" {
		path := f.Value.String()
		output.Verbose("Loading definition set from: " + path)
		return catalog.Parse(path)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg.Catalog != "" {
		output.Verbose("Loading definition set from: " + cfg.Catalog)
		return catalog.Parse(cfg.Catalog)
	}

	output.Verbose("Using built-in Gang of Four catalog")
	return gof.Catalog()
}

// printEntries writes a plain table of patterns, one per line, truncated to
// the terminal width. Plain so the output stays pipeable.
func printEntries(w io.Writer, entries []catalog.Entry) {
	if len(entries) == 0 {
		return
	}

	nameWidth := len("NAME")
	for _, e := range entries {
		if len(e.Name) > nameWidth {
			nameWidth = len(e.Name)
		}
	}

	width := output.Width(120)
	purposeWidth := width - nameWidth - 16

	fmt.Fprintf(w, "%-*s  %-10s  %s\n", nameWidth, "NAME", "CATEGORY", "PURPOSE")
	for _, e := range entries {
		fmt.Fprintf(w, "%-*s  %-10s  %s\n", nameWidth, e.Name, e.Category, truncate(e.Purpose, purposeWidth))
	}
}

// truncate shortens s to at most max runes, ending with an ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
