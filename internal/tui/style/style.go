// Package style defines lipgloss styles for the TUI.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/hanaburkart/portfolio/internal/theme"
)

// Palette holds the colors a theme is built from.
type Palette struct {
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	BadgeText  lipgloss.Color
	BadgeFill  lipgloss.Color
	Error      lipgloss.Color
}

var (
	// Light mirrors the page's default scheme.
	Light = Palette{
		Background: lipgloss.Color("#ffffff"),
		Text:       lipgloss.Color("#1e293b"),
		Muted:      lipgloss.Color("#64748b"),
		Accent:     lipgloss.Color("#2563eb"),
		Border:     lipgloss.Color("#cbd5e1"),
		BadgeText:  lipgloss.Color("#1d4ed8"),
		BadgeFill:  lipgloss.Color("#dbeafe"),
		Error:      lipgloss.Color("#dc2626"),
	}

	// Dark mirrors the page's "dark" class.
	Dark = Palette{
		Background: lipgloss.Color("#0f172a"),
		Text:       lipgloss.Color("#f1f5f9"),
		Muted:      lipgloss.Color("#94a3b8"),
		Accent:     lipgloss.Color("#60a5fa"),
		Border:     lipgloss.Color("#334155"),
		BadgeText:  lipgloss.Color("#bfdbfe"),
		BadgeFill:  lipgloss.Color("#1e3a8a"),
		Error:      lipgloss.Color("#f87171"),
	}
)

// Styles are the rendered styles for one theme on one renderer.
//
// Field names omit a "Style" suffix since they're accessed through a
// Styles value (e.g., s.Title reads better than s.TitleStyle).
type Styles struct {
	Mode theme.Mode

	// Title is used for the name and section headers.
	Title lipgloss.Style
	// Subtitle is used for secondary text such as roles.
	Subtitle lipgloss.Style
	// Text is body copy.
	Text lipgloss.Style
	// Muted is used for de-emphasized and not yet revealed text.
	Muted lipgloss.Style
	// Accent highlights the typed phrase and active nav items.
	Accent lipgloss.Style
	// Cursor is the typewriter caret.
	Cursor lipgloss.Style
	// Badge is a project tag.
	Badge lipgloss.Style
	// Card frames a project or role.
	Card lipgloss.Style
	// Header frames the top bar.
	Header lipgloss.Style
	// Key is used for highlighting keyboard keys.
	Key lipgloss.Style
	// Help is used for keyboard shortcut hints.
	Help lipgloss.Style
	// Error is used for error messages.
	Error lipgloss.Style
}

// New builds the styles for mode on renderer r. A nil renderer uses the
// default renderer. ModePending yields unstyled output: no palette is
// applied until the theme is known.
func New(r *lipgloss.Renderer, mode theme.Mode) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	switch mode {
	case theme.ModeDark:
		return build(r, mode, Dark)
	case theme.ModeLight:
		return build(r, mode, Light)
	default:
		plain := r.NewStyle()
		return Styles{
			Mode:     mode,
			Title:    plain.Bold(true),
			Subtitle: plain,
			Text:     plain,
			Muted:    plain,
			Accent:   plain,
			Cursor:   plain,
			Badge:    plain.Padding(0, 1),
			Card:     plain.Padding(0, 1),
			Header:   plain,
			Key:      plain,
			Help:     plain,
			Error:    plain,
		}
	}
}

func build(r *lipgloss.Renderer, mode theme.Mode, p Palette) Styles {
	return Styles{
		Mode: mode,
		Title: r.NewStyle().
			Bold(true).
			Foreground(p.Text),
		Subtitle: r.NewStyle().
			Foreground(p.Accent),
		Text: r.NewStyle().
			Foreground(p.Text),
		Muted: r.NewStyle().
			Foreground(p.Muted),
		Accent: r.NewStyle().
			Bold(true).
			Foreground(p.Accent),
		Cursor: r.NewStyle().
			Foreground(p.Accent),
		Badge: r.NewStyle().
			Foreground(p.BadgeText).
			Background(p.BadgeFill).
			Padding(0, 1),
		Card: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		Header: r.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(p.Border),
		Key: r.NewStyle().
			Bold(true).
			Foreground(p.Accent),
		Help: r.NewStyle().
			Foreground(p.Muted),
		Error: r.NewStyle().
			Foreground(p.Error),
	}
}

// Dimmed returns s with every text style replaced by Muted. Frames and
// padding are kept so dimmed content has the same size.
func (s Styles) Dimmed() Styles {
	d := s
	d.Title = s.Muted
	d.Subtitle = s.Muted
	d.Text = s.Muted
	d.Accent = s.Muted
	d.Cursor = s.Muted
	d.Key = s.Muted
	d.Badge = s.Muted.Padding(0, 1)
	return d
}
