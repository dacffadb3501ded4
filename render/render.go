// Package render styles askweb's terminal output.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder())

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	answerStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("39"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))
)

// Banner renders the startup banner.
func Banner(title string) string {
	return bannerStyle.Render(title)
}

// Heading renders a section heading.
func Heading(text string) string {
	return headingStyle.Render(text)
}

// Dim renders secondary text, like the retrieved-context preview.
func Dim(text string) string {
	return dimStyle.Render(text)
}

// Answer renders the generated answer block.
func Answer(text string) string {
	return answerStyle.Render(text)
}

// Sources renders the numbered source list.
func Sources(urls []string) string {
	if len(urls) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(headingStyle.Render("Sources"))
	b.WriteByte('\n')
	for i, url := range urls {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  [%d] %s", i+1, url)))
		b.WriteByte('\n')
	}
	return b.String()
}

// Errorf renders an error line.
func Errorf(format string, v ...any) string {
	return errorStyle.Render(fmt.Sprintf(format, v...))
}
