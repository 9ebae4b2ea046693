package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var errorColor = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}

// ErrorStyle returns the style used for fatal errors on w
func ErrorStyle(w io.Writer) lipgloss.Style {
	return lipgloss.NewRenderer(w).NewStyle().
		Foreground(errorColor).
		Bold(true)
}

// RenderError formats err for display on w. When w is not a color
// terminal the message is returned without escapes.
func RenderError(w io.Writer, err error) string {
	return ErrorStyle(w).Render(fmt.Sprintf("Error: %v", err))
}
