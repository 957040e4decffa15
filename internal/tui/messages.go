package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hanaburkart/portfolio/internal/theme"
	"github.com/hanaburkart/portfolio/pkg/channels"
)

// BlinkInterval is the typewriter cursor's blink period.
const BlinkInterval = 530 * time.Millisecond

// ThemeAppliedMsg reports that the controller applied a theme, for example
// after a desktop or SSH client switched between light and dark. Mode is
// the applied value; the model re-reads the controller on receipt.
type ThemeAppliedMsg struct {
	Mode theme.Mode
}

// themeResolvedMsg carries the controller's first resolution.
type themeResolvedMsg struct {
	pref theme.Preference
}

type blinkMsg struct{}

// ThemeApplier returns a controller applier that forwards each effective
// theme to events without blocking. Only the newest pending mode is kept.
func ThemeApplier(events chan theme.Mode) theme.Applier {
	return func(mode theme.Mode) {
		_ = channels.SendLatest(events, mode)
	}
}

func listenTheme(events <-chan theme.Mode) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		mode, ok := <-events
		if !ok {
			return nil
		}
		return ThemeAppliedMsg{Mode: mode}
	}
}

func resolveTheme(c *theme.Controller) tea.Cmd {
	return func() tea.Msg {
		if pref := c.Current(); pref.Effective.Resolved() {
			return themeResolvedMsg{pref: pref}
		}
		return themeResolvedMsg{pref: c.Initialize()}
	}
}

func blink() tea.Cmd {
	return tea.Tick(BlinkInterval, func(time.Time) tea.Msg {
		return blinkMsg{}
	})
}
