// Package labeledspinner provides a spinner with a title, subtitle and help line.
package labeledspinner

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hanaburkart/portfolio/internal/tui/style"
)

// Model displays a spinner with title, subtitle, and help text.
// The TUI shows one while the theme is still being resolved.
type Model struct {
	Spinner  spinner.Model
	Styles   style.Styles
	Title    string
	Subtitle string
	Help     string
}

// New creates a new labeled spinner with the given configuration.
func New(s spinner.Spinner, styles style.Styles, title, subtitle, help string) Model {
	sp := spinner.New()
	sp.Spinner = s
	sp.Style = styles.Accent

	return Model{
		Spinner:  sp,
		Styles:   styles,
		Title:    title,
		Subtitle: subtitle,
		Help:     help,
	}
}

// Init returns the initial command for the spinner.
func (ls Model) Init() tea.Cmd {
	return ls.Spinner.Tick
}

// Update handles spinner tick messages.
func (ls Model) Update(teaMsg tea.Msg) (Model, tea.Cmd) {
	if tickMsg, ok := teaMsg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		ls.Spinner, cmd = ls.Spinner.Update(tickMsg)

		return ls, cmd
	}

	return ls, nil
}

// View renders the labeled spinner.
func (ls Model) View() string {
	var sb strings.Builder

	sb.WriteString(ls.Spinner.View())
	sb.WriteString(" ")
	sb.WriteString(ls.Styles.Title.Render(ls.Title))
	sb.WriteString("\n\n")

	if ls.Subtitle != "" {
		sb.WriteString(ls.Styles.Muted.Render(ls.Subtitle))
		sb.WriteString("\n\n")
	}

	sb.WriteString(ls.Styles.Help.Render(ls.Help))

	return sb.String()
}
