package theme

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/godbus/dbus/v5"
)

const (
	portalDest     = "org.freedesktop.portal.Desktop"
	portalPath     = dbus.ObjectPath("/org/freedesktop/portal/desktop")
	settingsIface  = "org.freedesktop.portal.Settings"
	settingChanged = settingsIface + ".SettingChanged"
	appearanceNS   = "org.freedesktop.appearance"
	colorSchemeKey = "color-scheme"
)

// colorScheme is the portal's org.freedesktop.appearance color-scheme value.
type colorScheme uint32

const (
	schemeNoPreference colorScheme = 0
	schemePreferDark   colorScheme = 1
	schemePreferLight  colorScheme = 2
)

func (c colorScheme) dark(fallback bool) bool {
	switch c {
	case schemePreferDark:
		return true
	case schemePreferLight:
		return false
	default:
		return fallback
	}
}

// colorSchemeFromVariant unwraps the (possibly nested) variant returned by
// Settings.Read / Settings.ReadOne / SettingChanged.
func colorSchemeFromVariant(v dbus.Variant) (colorScheme, error) {
	val := v.Value()
	for {
		inner, ok := val.(dbus.Variant)
		if !ok {
			break
		}
		val = inner.Value()
	}

	n, ok := val.(uint32)
	if !ok {
		return schemeNoPreference, fmt.Errorf("unexpected color-scheme value of type %T", val)
	}
	return colorScheme(n), nil
}

// PortalSignal follows the desktop's dark-mode setting through the XDG
// desktop portal on the D-Bus session bus.
type PortalSignal struct {
	conn     *dbus.Conn
	logger   *slog.Logger
	fallback bool
	signals  chan *dbus.Signal
	done     chan struct{}
	closed   sync.Once

	mu   sync.Mutex
	dark bool
	subs listeners
}

var _ SystemSignal = (*PortalSignal)(nil)

func portalMatch() []dbus.MatchOption {
	return []dbus.MatchOption{
		dbus.WithMatchObjectPath(portalPath),
		dbus.WithMatchInterface(settingsIface),
		dbus.WithMatchMember("SettingChanged"),
	}
}

// NewPortalSignal connects to the session bus and reads the current
// color-scheme. fallbackDark is used while the desktop reports no
// preference. Close must be called to release the bus connection.
func NewPortalSignal(fallbackDark bool, logger *slog.Logger) (*PortalSignal, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to session bus: %w", err)
	}

	p := &PortalSignal{
		conn:     conn,
		logger:   logger,
		fallback: fallbackDark,
		signals:  make(chan *dbus.Signal, 8),
		done:     make(chan struct{}),
	}

	scheme, err := p.read()
	if err != nil {
		conn.Close() //nolint:errcheck,gosec // already failing
		return nil, err
	}
	p.dark = scheme.dark(fallbackDark)

	if err := conn.AddMatchSignal(portalMatch()...); err != nil {
		conn.Close() //nolint:errcheck,gosec // already failing
		return nil, fmt.Errorf("failed to watch portal settings: %w", err)
	}
	conn.Signal(p.signals)

	go p.loop()

	logger.Debug("Following desktop portal color-scheme", "scheme", uint32(scheme), "dark", p.dark)

	return p, nil
}

func (p *PortalSignal) read() (colorScheme, error) {
	obj := p.conn.Object(portalDest, portalPath)

	call := obj.Call(settingsIface+".ReadOne", 0, appearanceNS, colorSchemeKey)
	if call.Err != nil {
		// ReadOne is portal v2; older portals only have the double-wrapping Read.
		call = obj.Call(settingsIface+".Read", 0, appearanceNS, colorSchemeKey)
	}
	if call.Err != nil {
		return schemeNoPreference, fmt.Errorf("failed to read portal color-scheme: %w", call.Err)
	}

	var v dbus.Variant
	if err := call.Store(&v); err != nil {
		return schemeNoPreference, fmt.Errorf("failed to decode portal color-scheme: %w", err)
	}
	return colorSchemeFromVariant(v)
}

func (p *PortalSignal) loop() {
	for {
		select {
		case <-p.done:
			return
		case sig, ok := <-p.signals:
			if !ok {
				return
			}
			p.handle(sig)
		}
	}
}

func (p *PortalSignal) handle(sig *dbus.Signal) {
	if sig == nil || sig.Name != settingChanged || len(sig.Body) != 3 {
		return
	}
	ns, _ := sig.Body[0].(string)
	key, _ := sig.Body[1].(string)
	if ns != appearanceNS || key != colorSchemeKey {
		return
	}
	v, ok := sig.Body[2].(dbus.Variant)
	if !ok {
		return
	}

	scheme, err := colorSchemeFromVariant(v)
	if err != nil {
		p.logger.Warn("Ignoring portal color-scheme change", "error", err)
		return
	}
	p.set(scheme.dark(p.fallback))
}

func (p *PortalSignal) set(dark bool) {
	p.mu.Lock()
	changed := p.dark != dark
	p.dark = dark
	p.mu.Unlock()

	if changed {
		p.logger.Debug("Desktop color-scheme changed", "dark", dark)
		p.subs.notify(dark)
	}
}

// PrefersDark returns the last observed desktop setting.
func (p *PortalSignal) PrefersDark() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dark
}

// Subscribe registers fn for change notifications.
func (p *PortalSignal) Subscribe(fn func(dark bool)) func() {
	return p.subs.add(fn)
}

// Close stops following the portal and releases the bus connection.
func (p *PortalSignal) Close() error {
	var err error
	p.closed.Do(func() {
		close(p.done)
		p.conn.RemoveSignal(p.signals)
		if rmErr := p.conn.RemoveMatchSignal(portalMatch()...); rmErr != nil {
			p.logger.Debug("Failed to remove portal match rule", "error", rmErr)
		}
		if cerr := p.conn.Close(); cerr != nil {
			err = fmt.Errorf("failed to close session bus: %w", cerr)
		}
	})
	return err
}
