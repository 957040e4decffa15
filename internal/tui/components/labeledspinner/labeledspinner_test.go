package labeledspinner_test

import (
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/hanaburkart/portfolio/internal/theme"
	"github.com/hanaburkart/portfolio/internal/tui/components/labeledspinner"
	"github.com/hanaburkart/portfolio/internal/tui/style"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

//nolint:gochecknoinits // recommend for CI by bubbletea folks
func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestLabeledSpinner(t *testing.T) {
	styles := style.New(nil, theme.ModePending)
	m := labeledspinner.New(spinner.Dot, styles, "Title", "Subtitle", "Help")
	t.Run("initial state", func(t *testing.T) {
		assert.Equal(t, "Title", m.Title)
		assert.Equal(t, "Subtitle", m.Subtitle)
		assert.Equal(t, "Help", m.Help)
		assert.Equal(t, spinner.Dot, m.Spinner.Spinner)
	})

	v0 := m.View()
	t.Run("view output", func(t *testing.T) {
		assert.Contains(t, v0, "Title")
		assert.Contains(t, v0, "Subtitle")
		assert.Contains(t, v0, "Help")
		assert.Contains(t, v0, spinner.Dot.Frames[0])
	})

	t.Run("check updates", func(t *testing.T) {
		m, _ = m.Update(spinner.TickMsg{})
		assert.Contains(t, m.View(), spinner.Dot.Frames[1])
		m, _ = m.Update(spinner.TickMsg{})
		assert.Contains(t, m.View(), spinner.Dot.Frames[2])
	})

	t.Run("ignores other messages", func(t *testing.T) {
		before := m.View()
		m, cmd := m.Update("noise")
		assert.Nil(t, cmd)
		assert.Equal(t, before, m.View())
	})

	t.Run("no subtitle", func(t *testing.T) {
		bare := labeledspinner.New(spinner.Line, styles, "Resolving theme", "", "q quit")
		assert.NotContains(t, bare.View(), "\n\n\n")
	})
}
