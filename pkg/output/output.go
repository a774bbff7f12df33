// Package output provides styled terminal output for the magpie CLI.
//
// Functions use lipgloss for styling but abstract away the details from
// callers, so commands never touch styles directly.
package output

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	verboseMode bool
)

// SetVerbose enables or disables verbose output for debugging.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// Success prints a success message with ✨ emoji and green color.
// Use this for completed operations.
//
// Example:
//
//	output.Success("Definition set is valid")
func Success(msg string) {
	fmt.Println(successStyle.Render("✨ " + msg))
}

// Error prints an error message with ❌ emoji and red color to stderr.
// Use this for failures that need user attention.
//
// Example:
//
//	output.Error("pattern not found: Monostate")
func Error(msg string) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("❌ "+msg))
}

// Info prints an informational message with ℹ️ emoji and cyan color.
// Use this for status updates or explanations.
//
// Example:
//
//	output.Info("23 patterns loaded")
func Info(msg string) {
	fmt.Println(infoStyle.Render("ℹ️  " + msg))
}

// Step prints an indented step message in gray.
// Use this for actionable next steps or sub-items.
//
// Example:
//
//	output.Step("magpie show Observer")
func Step(msg string) {
	fmt.Println(stepStyle.Render("   " + msg))
}

// Verbose prints a debug message with 🔍 emoji only if verbose mode is enabled.
// Use this for detailed debugging information.
//
// Example:
//
//	output.Verbose("Loading definition set from: ./patterns.yml")
func Verbose(msg string) {
	if verboseMode {
		fmt.Println(stepStyle.Render("🔍 " + msg))
	}
}

// Width returns the terminal width of stdout, or fallback when stdout is not
// a terminal or the size cannot be determined.
func Width(fallback int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}
