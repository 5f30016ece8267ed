package log

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// levelColor assigns each severity an ANSI palette color for console
// label styling. Colorization is a presentation detail only: file lines
// and colorless sinks always receive the plain label text.
var levelColor = map[Level]lipgloss.Color{
	LevelDebug:    lipgloss.Color("6"), // cyan
	LevelInfo:     lipgloss.Color("2"), // green
	LevelWarning:  lipgloss.Color("3"), // yellow
	LevelError:    lipgloss.Color("1"), // red
	LevelCritical: lipgloss.Color("9"), // bright red
}

// plainLabel renders the bracketed level label without styling.
func plainLabel(l Level) string { return "[" + l.String() + "]" }

// styledLabel returns a label renderer bound to the given sink. The
// lipgloss renderer downgrades to plain text when the sink does not
// support color, so styling never corrupts captured or piped output.
func styledLabel(w io.Writer) func(Level) string {
	renderer := lipgloss.NewRenderer(w)

	styles := make(map[Level]lipgloss.Style, 5)
	for level := range Levels() {
		style := renderer.NewStyle().Foreground(levelColor[level])
		if level == LevelCritical {
			style = style.Bold(true)
		}

		styles[level] = style
	}

	return func(l Level) string {
		return styles[l].Render(plainLabel(l))
	}
}
