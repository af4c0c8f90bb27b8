package inspect

import "github.com/charmbracelet/lipgloss"

// Terminal styles for consistent output formatting.
// Lipgloss automatically degrades colors based on terminal capabilities.
var (
	// StyleHeader is used for component names and section headers.
	StyleHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleSelection is used for variant selection columns.
	StyleSelection = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	// StyleClass is used for resolved class strings.
	StyleClass = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	// StyleDim is used for pass-through properties and hints.
	StyleDim = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderStyle applies a lipgloss style to text when colors are enabled.
// When useColors is false, the text is returned unmodified.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}
