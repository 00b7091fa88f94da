// Package style holds the colors and icons used for terminal output: log
// lines from the pretty handler and results printed by the invoke command.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
)

// Outcome returns the icon and color for a finished invocation.
func Outcome(ok bool) (string, lipgloss.Color) {
	if ok {
		return Check, Green
	}
	return Cross, Red
}
