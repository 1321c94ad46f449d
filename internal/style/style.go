// Package style centralizes terminal styling for jscom output.
// All human-facing color and emphasis goes through the styles defined
// here so the CLI degrades cleanly to plain text when stdout is not a
// terminal or NO_COLOR is set.
package style

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Color palette
var (
	colorError   = lipgloss.Color("196") // bright red
	colorWarning = lipgloss.Color("214") // orange
	colorSuccess = lipgloss.Color("76")  // green
	colorInfo    = lipgloss.Color("39")  // blue
	colorMuted   = lipgloss.Color("242") // gray
)

// Core styles used across commands.
var (
	Bold    = lipgloss.NewStyle().Bold(true)
	Dim     = lipgloss.NewStyle().Foreground(colorMuted)
	Error   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	Success = lipgloss.NewStyle().Foreground(colorSuccess)
	Warning = lipgloss.NewStyle().Foreground(colorWarning)
	Info    = lipgloss.NewStyle().Foreground(colorInfo)
	Header  = lipgloss.NewStyle().Foreground(colorInfo).Bold(true)
)

// Pre-rendered status prefixes. Assigned in init so they pick up the
// resolved color profile.
var (
	SuccessPrefix string
	WarningPrefix string
	ErrorPrefix   string
)

func init() {
	if os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(os.Stdout.Fd())) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	SuccessPrefix = Success.Render("✓")
	WarningPrefix = Warning.Render("!")
	ErrorPrefix = Error.Render("✗")
}

// PrintSuccess writes a success line to stdout.
func PrintSuccess(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", SuccessPrefix, fmt.Sprintf(format, args...))
}

// PrintWarning writes a warning line to stderr.
func PrintWarning(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n", WarningPrefix, fmt.Sprintf(format, args...))
}

// PrintError writes an error line to stderr.
func PrintError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorPrefix, fmt.Sprintf(format, args...))
}
