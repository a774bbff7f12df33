package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/simonhull/magpie/pkg/catalog"
	"github.com/simonhull/magpie/pkg/output"
)

var (
	nameStyle     = lipgloss.NewStyle().Bold(true)
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	labelStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("240"))
)

// ShowCmd creates and returns the 'show' command
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show one pattern in full",
		Long: `Show a pattern's category, intent, participants, keywords, and
related patterns. The name must match exactly, including case.

Examples:
  magpie show Observer
  magpie show "Abstract Factory"`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := runShow(cmd, args[0]); err != nil {
				fail(err)
			}
		},
	}

	return cmd
}

func runShow(cmd *cobra.Command, name string) error {
	c, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	entry, ok := c.Get(name)
	if !ok {
		return &notFoundError{name: name}
	}

	printEntry(cmd.OutOrStdout(), entry)
	return nil
}

// printEntry renders the full pattern card.
func printEntry(w io.Writer, entry catalog.Entry) {
	width := output.Width(100)
	if width > 100 {
		width = 100
	}

	fmt.Fprintf(w, "%s  %s\n",
		nameStyle.Render(entry.Name),
		categoryStyle.Render("("+entry.Category.String()+")"))

	if len(entry.AlsoKnownAs) > 0 {
		fmt.Fprintf(w, "%s %s\n",
			labelStyle.Render("Also known as:"),
			strings.Join(entry.AlsoKnownAs, ", "))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, lipgloss.NewStyle().Width(width-2).PaddingLeft(2).Render(entry.Purpose))
	fmt.Fprintln(w)

	fmt.Fprintln(w, labelStyle.Render("Participants"))
	for _, p := range entry.Participants {
		fmt.Fprintf(w, "  - %s\n", p)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Keywords:"), strings.Join(entry.Keywords, ", "))
	if len(entry.Related) > 0 {
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Related:"), strings.Join(entry.Related, ", "))
	}
}
