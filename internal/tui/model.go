// Package tui is a full-screen front end for a REPL session.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ltungv/calc/internal/repl"
)

const footer = "enter: evaluate • ↑/↓: history • esc: quit"

// Options configure the model.
type Options struct {
	Prompt string
	Banner bool
	Styles repl.Styles
	// Plain skips decorating the title, echoed input and footer.
	Plain bool
}

// Model is the bubbletea model driving a session.
type Model struct {
	session *repl.Session
	opts    Options
	input   textinput.Model

	// Transcript of echoed input and replies
	lines []string

	// Input history
	history      []string
	historyIndex int // len(history) when not navigating

	width    int
	height   int
	quitting bool
}

// New creates a model bound to session.
func New(session *repl.Session, opts Options) Model {
	input := textinput.New()
	input.Prompt = opts.Prompt
	input.Placeholder = "a = 1 + 2"
	input.Focus()

	var lines []string
	if opts.Banner {
		lines = append(lines, opts.decorate(titleStyle, repl.Banner))
	}
	return Model{
		session: session,
		opts:    opts,
		input:   input,
		lines:   lines,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		case tea.KeyUp:
			m.recall(-1)
			return m, nil
		case tea.KeyDown:
			m.recall(1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - len(m.opts.Prompt) - 1
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit hands the current input to the session
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()

	reply := m.session.Handle(line)
	if reply.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	m.lines = append(m.lines, m.opts.decorate(echoStyle, m.opts.Prompt+line))
	if reply.Text != "" {
		m.lines = append(m.lines, m.opts.Styles.Render(reply))
	}
	if strings.TrimSpace(line) != "" {
		m.history = append(m.history, line)
	}
	m.historyIndex = len(m.history)
	return m, nil
}

// recall moves through the input history by delta
func (m *Model) recall(delta int) {
	if len(m.history) == 0 {
		return
	}
	index := m.historyIndex + delta
	switch {
	case index < 0:
		index = 0
	case index >= len(m.history):
		m.historyIndex = len(m.history)
		m.input.Reset()
		return
	}
	m.historyIndex = index
	m.input.SetValue(m.history[index])
	m.input.CursorEnd()
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	lines := m.lines
	// Keep the input and footer on screen
	if room := m.height - 2; m.height > 0 && len(lines) > room {
		lines = lines[len(lines)-max(room, 0):]
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.opts.decorate(helpStyle, footer))
	return b.String()
}

// Transcript returns the echoed input and replies shown so far.
func (m Model) Transcript() []string {
	return append([]string(nil), m.lines...)
}

func (opts Options) decorate(style lipgloss.Style, text string) string {
	if opts.Plain {
		return text
	}
	return style.Render(text)
}

// Run starts the full-screen REPL and blocks until it quits.
func Run(session *repl.Session, opts Options) error {
	p := tea.NewProgram(New(session, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
