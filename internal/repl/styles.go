package repl

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	colorResult = lipgloss.Color("#10B981")
	colorError  = lipgloss.Color("#EF4444")
	colorMuted  = lipgloss.Color("#6B7280")
)

// Styles decides how replies are rendered.
type Styles struct {
	Result lipgloss.Style
	Error  lipgloss.Style
	Info   lipgloss.Style
	// Plain disables styling altogether.
	Plain bool
}

func DefaultStyles() Styles {
	return Styles{
		Result: lipgloss.NewStyle().Foreground(colorResult).Bold(true),
		Error:  lipgloss.NewStyle().Foreground(colorError),
		Info:   lipgloss.NewStyle().Foreground(colorMuted).Italic(true),
	}
}

func PlainStyles() Styles {
	return Styles{Plain: true}
}

// Render returns the text of reply styled according to its kind.
func (styles Styles) Render(reply Reply) string {
	if styles.Plain {
		return reply.Text
	}
	switch {
	case reply.Err != nil:
		return styles.Error.Render(reply.Text)
	case reply.Info:
		return styles.Info.Render(reply.Text)
	}
	return styles.Result.Render(reply.Text)
}
