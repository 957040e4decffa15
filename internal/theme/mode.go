// Package theme resolves the effective light/dark theme from an explicit,
// persisted override and the system's dark-mode signal.
package theme

import (
	"errors"
	"fmt"
	"strings"
)

// Mode is a resolved color theme. The zero value is ModePending.
type Mode int

const (
	// ModePending means the theme has not been resolved yet. Hosts must not
	// apply any palette while pending.
	ModePending Mode = iota
	// ModeLight is the light theme.
	ModeLight
	// ModeDark is the dark theme.
	ModeDark
)

// ErrInvalidMode is returned when a value does not name a concrete theme.
var ErrInvalidMode = errors.New("invalid theme mode")

// String returns the persisted form of the mode.
func (m Mode) String() string {
	switch m {
	case ModeLight:
		return "light"
	case ModeDark:
		return "dark"
	default:
		return "pending"
	}
}

// Resolved reports whether m is ModeLight or ModeDark.
func (m Mode) Resolved() bool {
	return m == ModeLight || m == ModeDark
}

// Opposite returns the other concrete mode. Pending stays pending.
func (m Mode) Opposite() Mode {
	switch m {
	case ModeLight:
		return ModeDark
	case ModeDark:
		return ModeLight
	default:
		return ModePending
	}
}

// FromDark maps a "prefers dark" signal to a mode.
func FromDark(dark bool) Mode {
	if dark {
		return ModeDark
	}
	return ModeLight
}

// ParseMode parses "light" or "dark".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return ModeLight, nil
	case "dark":
		return ModeDark, nil
	default:
		return ModePending, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Preference is a snapshot of the controller's state.
type Preference struct {
	// Explicit is the user's persisted override, ModePending when absent.
	Explicit Mode
	// SystemPrefersDark is the last observed system signal.
	SystemPrefersDark bool
	// Effective is Explicit when set, otherwise derived from the system signal.
	Effective Mode
}

// HasExplicit reports whether an explicit override is in effect.
func (p Preference) HasExplicit() bool {
	return p.Explicit.Resolved()
}

// Dark reports whether the effective theme is dark.
func (p Preference) Dark() bool {
	return p.Effective == ModeDark
}

func (p Preference) resolve() Preference {
	if p.HasExplicit() {
		p.Effective = p.Explicit
	} else {
		p.Effective = FromDark(p.SystemPrefersDark)
	}
	return p
}
