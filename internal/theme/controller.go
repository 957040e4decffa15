package theme

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/hanaburkart/portfolio/internal/prefs"
)

// Applier applies the effective theme to a presentation surface. It is
// called after every change of the effective theme and must be idempotent.
type Applier func(Mode)

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the controller's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithApplier registers an applier.
func WithApplier(fn Applier) Option {
	return func(c *Controller) {
		if fn != nil {
			c.appliers = append(c.appliers, fn)
		}
	}
}

// Controller resolves and tracks the effective theme.
//
// The explicit override is persisted under prefs.ThemeKey. When the store
// cannot be read or written the controller keeps working from memory; no
// method returns a storage error.
type Controller struct {
	store    prefs.Store
	signal   SystemSignal
	logger   *slog.Logger
	appliers []Applier

	mu   sync.Mutex
	pref Preference
}

// NewController creates a controller. store and signal may be nil: a nil
// store behaves as unavailable, a nil signal reports "not dark" forever.
func NewController(store prefs.Store, signal SystemSignal, opts ...Option) *Controller {
	c := &Controller{
		store:  store,
		signal: signal,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Initialize resolves the theme from the persisted override, falling back
// to the system signal. Appliers are always invoked with the result.
func (c *Controller) Initialize() Preference {
	explicit := c.readExplicit()
	systemDark := c.systemDark()

	c.mu.Lock()
	c.pref = Preference{Explicit: explicit, SystemPrefersDark: systemDark}.resolve()
	pref := c.pref
	c.mu.Unlock()

	c.logger.Debug("Resolved theme",
		"effective", pref.Effective.String(),
		"explicit", pref.Explicit.String(),
		"system_dark", pref.SystemPrefersDark,
	)
	c.apply(pref.Effective)

	return pref
}

// Current returns a snapshot of the controller's state.
func (c *Controller) Current() Preference {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pref
}

// OnSystemChange records a new system signal value. The effective theme
// follows it only while no explicit override exists, in memory or in the
// store.
func (c *Controller) OnSystemChange(dark bool) {
	c.mu.Lock()
	c.pref.SystemPrefersDark = dark
	if c.pref.HasExplicit() || !c.pref.Effective.Resolved() {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	if c.storedExplicit() {
		c.logger.Debug("Ignoring system theme change, stored override present", "system_dark", dark)
		return
	}

	c.mu.Lock()
	if c.pref.HasExplicit() {
		c.mu.Unlock()
		return
	}
	prev := c.pref.Effective
	c.pref = c.pref.resolve()
	next := c.pref.Effective
	c.mu.Unlock()

	if next != prev {
		c.logger.Debug("System theme changed", "effective", next.String())
		c.apply(next)
	}
}

// Toggle flips the effective theme and persists it as the explicit
// override. A Pending controller is resolved first.
func (c *Controller) Toggle() Preference {
	if !c.Current().Effective.Resolved() {
		c.Initialize()
	}

	c.mu.Lock()
	next := c.pref.Effective.Opposite()
	c.mu.Unlock()

	pref, _ := c.Set(next) // next is always resolved here
	return pref
}

// Set makes mode the explicit override and persists it.
func (c *Controller) Set(mode Mode) (Preference, error) {
	if !mode.Resolved() {
		return c.Current(), ErrInvalidMode
	}

	c.mu.Lock()
	if !c.pref.Effective.Resolved() {
		c.pref.SystemPrefersDark = c.systemDark()
	}
	prev := c.pref.Effective
	c.pref.Explicit = mode
	c.pref = c.pref.resolve()
	pref := c.pref
	c.mu.Unlock()

	c.persist(mode)
	if pref.Effective != prev {
		c.apply(pref.Effective)
	}

	return pref, nil
}

// Clear drops the explicit override so the theme follows the system signal.
func (c *Controller) Clear() Preference {
	if c.store != nil {
		if err := c.store.Delete(prefs.ThemeKey); err != nil {
			c.logger.Warn("Failed to clear stored theme, continuing in memory", "error", err)
		}
	}

	systemDark := c.systemDark()

	c.mu.Lock()
	prev := c.pref.Effective
	c.pref.Explicit = ModePending
	c.pref.SystemPrefersDark = systemDark
	c.pref = c.pref.resolve()
	pref := c.pref
	c.mu.Unlock()

	if pref.Effective != prev {
		c.apply(pref.Effective)
	}
	return pref
}

// Watch subscribes the controller to its system signal. The returned
// release function unsubscribes and may be called more than once.
func (c *Controller) Watch() (release func()) {
	if c.signal == nil {
		return func() {}
	}
	return c.signal.Subscribe(c.OnSystemChange)
}

func (c *Controller) systemDark() bool {
	if c.signal == nil {
		return false
	}
	return c.signal.PrefersDark()
}

func (c *Controller) readExplicit() Mode {
	if c.store == nil {
		return ModePending
	}

	v, err := c.store.Get(prefs.ThemeKey)
	switch {
	case errors.Is(err, prefs.ErrNotFound):
		return ModePending
	case err != nil:
		c.logger.Warn("Theme preference unavailable, using system setting", "error", err)
		return ModePending
	}

	mode, err := ParseMode(v)
	if err != nil {
		c.logger.Warn("Ignoring invalid stored theme", "value", v)
		return ModePending
	}
	return mode
}

func (c *Controller) storedExplicit() bool {
	if c.store == nil {
		return false
	}
	v, err := c.store.Get(prefs.ThemeKey)
	if err != nil {
		return false
	}
	_, err = ParseMode(v)
	return err == nil
}

func (c *Controller) persist(mode Mode) {
	if c.store == nil {
		return
	}
	if err := c.store.Set(prefs.ThemeKey, mode.String()); err != nil {
		c.logger.Warn("Failed to persist theme, continuing in memory", "theme", mode.String(), "error", err)
	}
}

func (c *Controller) apply(mode Mode) {
	for _, fn := range c.appliers {
		fn(mode)
	}
}
