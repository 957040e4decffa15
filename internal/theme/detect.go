package theme

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// System signal sources accepted by DetectSignal.
const (
	SystemAuto  = "auto"
	SystemDark  = "dark"
	SystemLight = "light"
)

// DetectSignal picks the system signal for a local terminal session.
//
// "dark" and "light" pin the signal. "auto" follows the desktop portal when
// one is reachable and otherwise uses the terminal background, probed once
// here; the probe talks to the terminal, so call this before a bubbletea
// program takes over stdin. The returned closer releases the source.
func DetectSignal(source string, logger *slog.Logger) (SystemSignal, func() error) {
	noop := func() error { return nil }

	switch strings.ToLower(strings.TrimSpace(source)) {
	case SystemDark:
		return NewValueSignal(true), noop
	case SystemLight:
		return NewValueSignal(false), noop
	}

	terminalDark := lipgloss.HasDarkBackground()

	portal, err := NewPortalSignal(terminalDark, logger)
	if err == nil {
		return portal, portal.Close
	}
	logger.Debug("Desktop portal unavailable, using terminal background",
		"error", err,
		"dark", terminalDark,
	)

	return NewValueSignal(terminalDark), noop
}
