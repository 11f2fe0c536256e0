package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lokmansalikoon/Two-Sentence-Horror-Generator/internal/tui/styles"
)

// RenderHeader renders the application banner
func RenderHeader(width int) string {
	banner := styles.StyleHeader.Render(" DIRECTOR.AI ")
	tagline := styles.StyleTagline.Render(" Two sentences. One nightmare.")

	line := banner + tagline
	if width > 0 {
		return lipgloss.NewStyle().Width(width).Render(line)
	}
	return line
}
