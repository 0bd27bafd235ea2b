package ui

import "github.com/charmbracelet/glamour"

// renderMarkdown pretty-prints generated copy. On renderer failure
// the raw text is still shown; generation output is never lost to a
// styling problem.
func renderMarkdown(text string, theme Theme, width int) string {
	style := "light"
	if theme.IsDark {
		style = "dark"
	}
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return out
}
