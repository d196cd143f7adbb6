// Package output provides styled terminal rendering helpers for codescout.
package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color constants for consistent styling across the CLI.
var (
	// ColorPrimary is used for headers and emphasis.
	ColorPrimary = lipgloss.Color("#64b5f6")

	// ColorError is used for error categories and fatal messages.
	ColorError = lipgloss.Color("#ef5350")

	// ColorWarning is used for lint category labels.
	ColorWarning = lipgloss.Color("#fff59d")

	// ColorMuted is used for secondary text, tree connectors, and line numbers.
	ColorMuted = lipgloss.Color("#888888")

	// ColorAccent is used for file paths and matched text.
	ColorAccent = lipgloss.Color("#81c784")
)

// Styles provides reusable lipgloss styles.
var (
	// StyleHeader is used for section headers.
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// StyleError is used for error text.
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	// StyleWarning is used for lint category labels.
	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// StyleMuted is used for de-emphasized text.
	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StylePath is used for file paths.
	StylePath = lipgloss.NewStyle().
			Foreground(ColorAccent)

	// StyleBold is used for emphasized text.
	StyleBold = lipgloss.NewStyle().
			Bold(true)
)

// noColor tracks whether color output is disabled.
var noColor bool

// Init configures color output. Styling is disabled when the flag is set or
// when stdout is not a terminal.
func Init(disableFlag bool) {
	SetNoColor(disableFlag || !isatty.IsTerminal(os.Stdout.Fd()))
}

// SetNoColor disables or enables color output globally.
// When disabled, all package-level styles are reassigned to unstyled renderers.
func SetNoColor(disabled bool) {
	noColor = disabled
	if disabled {
		plain := lipgloss.NewStyle()
		StyleHeader = plain
		StyleError = plain
		StyleWarning = plain
		StyleMuted = plain
		StylePath = plain
		StyleBold = plain
	}
}

// IsNoColor returns whether color output is currently disabled.
func IsNoColor() bool {
	return noColor
}

// Section renders a section header line.
func Section(title string) string {
	return StyleHeader.Render(title)
}
