package tui

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/hanaburkart/portfolio/internal/content"
	"github.com/hanaburkart/portfolio/internal/prefs"
	"github.com/hanaburkart/portfolio/internal/theme"
	tw "github.com/hanaburkart/portfolio/internal/typewriter"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:gochecknoinits // recommend for CI by bubbletea folks
func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// outputChecker provides helpers for testing teatest output.
type outputChecker struct {
	intervl, timeout time.Duration
}

func defaultChecker() outputChecker {
	return outputChecker{
		intervl: 50 * time.Millisecond,
		timeout: 3 * time.Second,
	}
}

// checkAll waits until every substring has appeared in output read during
// this call. Unchanged lines are not repainted, so check them together.
func (o outputChecker) checkAll(t *testing.T, tm *teatest.TestModel, substrs ...string) {
	t.Helper()
	teatest.WaitFor(t, tm.Output(), func(buf []byte) bool {
		for _, substr := range substrs {
			if !bytes.Contains(buf, []byte(substr)) {
				return false
			}
		}
		return true
	},
		teatest.WithCheckInterval(o.intervl),
		teatest.WithDuration(o.timeout))
}

func fastSpeeds() tw.Speeds {
	return tw.Speeds{Typing: 5 * time.Millisecond, Deleting: 5 * time.Millisecond, Pause: 50 * time.Millisecond}
}

type fixture struct {
	store      *prefs.Memory
	signal     *theme.ValueSignal
	controller *theme.Controller
	events     chan theme.Mode
}

func newFixture(systemDark bool) fixture {
	f := fixture{
		store:  prefs.NewMemory(),
		signal: theme.NewValueSignal(systemDark),
		events: make(chan theme.Mode, 1),
	}
	f.controller = theme.NewController(f.store, f.signal, theme.WithApplier(ThemeApplier(f.events)))
	return f
}

func (f fixture) config() Config {
	return Config{
		Profile:     content.Default(),
		Controller:  f.controller,
		ThemeEvents: f.events,
		Speeds:      fastSpeeds(),
	}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// resolved returns a model past the pending state at the given size.
func resolved(t *testing.T, f fixture, width, height int) Model {
	t.Helper()
	m := New(f.config())
	m = update(t, m, tea.WindowSizeMsg{Width: width, Height: height})
	return update(t, m, themeResolvedMsg{pref: f.controller.Initialize()})
}

func TestModelPendingShowsSpinner(t *testing.T) {
	f := newFixture(false)
	m := New(f.config())

	assert.Equal(t, theme.ModePending, m.Mode())
	assert.Contains(t, m.View(), "Resolving theme")

	// Navigation and theme keys wait for the theme.
	m = update(t, m, keyPress("t"))
	assert.Equal(t, theme.ModePending, m.Mode())
	_, err := f.store.Get(prefs.ThemeKey)
	assert.ErrorIs(t, err, prefs.ErrNotFound)
}

func TestModelResolvesTheme(t *testing.T) {
	f := newFixture(true)
	m := resolved(t, f, 100, 30)

	assert.Equal(t, theme.ModeDark, m.Mode())
	view := m.View()
	assert.Contains(t, view, "Hana Burkart")
	assert.Contains(t, view, "[a] About")
	assert.Contains(t, view, "[t] dark")
	assert.NotContains(t, view, "Resolving theme")
}

func TestModelToggleTheme(t *testing.T) {
	f := newFixture(false)
	m := resolved(t, f, 100, 30)
	require.Equal(t, theme.ModeLight, m.Mode())

	m = update(t, m, keyPress("t"))
	assert.Equal(t, theme.ModeDark, m.Mode())
	stored, err := f.store.Get(prefs.ThemeKey)
	require.NoError(t, err)
	assert.Equal(t, "dark", stored)

	// The applier's event for the first toggle arrives after a second one.
	m = update(t, m, keyPress("t"))
	m = update(t, m, ThemeAppliedMsg{Mode: theme.ModeDark})
	assert.Equal(t, theme.ModeLight, m.Mode())
}

func TestModelFollowsSystemEvents(t *testing.T) {
	f := newFixture(false)
	m := resolved(t, f, 100, 30)
	release := f.controller.Watch()
	defer release()

	f.signal.Set(true)
	mode := <-f.events
	m = update(t, m, ThemeAppliedMsg{Mode: mode})

	assert.Equal(t, theme.ModeDark, m.Mode())
}

func TestModelNavigation(t *testing.T) {
	f := newFixture(false)
	m := resolved(t, f, 100, 20)

	assert.Equal(t, SectionHome, m.Section())
	assert.True(t, m.Revealed(SectionHome))
	assert.False(t, m.Revealed(SectionContact))

	m = update(t, m, keyPress("p"))
	assert.Equal(t, SectionProjects, m.Section())
	assert.True(t, m.Revealed(SectionProjects))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, SectionProjects, m.Section())

	m = update(t, m, keyPress("g"))
	assert.True(t, m.Revealed(SectionContact))
	assert.Contains(t, m.View(), "Get In Touch")

	// Revealed sections stay revealed after scrolling away.
	m = update(t, m, keyPress("a"))
	assert.Equal(t, SectionAbout, m.Section())
	assert.True(t, m.Revealed(SectionContact))
}

func TestModelScrollReveals(t *testing.T) {
	f := newFixture(false)
	m := resolved(t, f, 100, 12)
	require.False(t, m.Revealed(SectionLeadership))

	for range 200 {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}

	for sec := SectionHome; sec < sectionCount; sec++ {
		assert.True(t, m.Revealed(sec), sec.String())
	}
}

func TestModelMobileMenu(t *testing.T) {
	f := newFixture(false)
	m := resolved(t, f, 60, 30)

	view := m.View()
	assert.Contains(t, view, "[m] menu")
	assert.NotContains(t, view, "[a] About")

	m = update(t, m, keyPress("m"))
	assert.True(t, m.MenuOpen())
	assert.Contains(t, m.View(), "[l] Leadership")

	m = update(t, m, keyPress("l"))
	assert.False(t, m.MenuOpen())
	assert.True(t, m.Revealed(SectionLeadership))

	// Growing past the breakpoint closes the menu.
	m = update(t, m, keyPress("m"))
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})
	assert.False(t, m.MenuOpen())
}

func TestModelMenuKeyOnlyWhenNarrow(t *testing.T) {
	f := newFixture(false)
	m := resolved(t, f, 100, 30)

	m = update(t, m, keyPress("m"))
	assert.False(t, m.MenuOpen())
}

func TestModelTypewriterTicks(t *testing.T) {
	f := newFixture(false)
	m := resolved(t, f, 100, 30)

	cmd := m.typer.Init()
	for range 3 {
		next, c := m.Update(cmd())
		m = next.(Model) //nolint:forcetypeassert // Model.Update returns Model
		cmd = c
	}

	assert.Equal(t, "Mac", m.Typing())
	assert.Contains(t, m.View(), "I'm exploring Mac")
}

func TestModelBlink(t *testing.T) {
	f := newFixture(false)
	m := resolved(t, f, 100, 30)
	require.True(t, m.cursorOn)

	m = update(t, m, blinkMsg{})
	assert.False(t, m.cursorOn)
	m = update(t, m, blinkMsg{})
	assert.True(t, m.cursorOn)
}

func TestModelQuit(t *testing.T) {
	f := newFixture(false)
	cancelled := false
	cfg := f.config()
	cfg.Cancel = func() { cancelled = true }

	m := New(cfg)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, cancelled)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, next.(Model).typer.Running()) //nolint:forcetypeassert // Model.Update returns Model
}

func TestProgramEndToEnd(t *testing.T) {
	f := newFixture(false)
	release := f.controller.Watch()
	defer release()

	tm := teatest.NewTestModel(t, New(f.config()), teatest.WithInitialTermSize(100, 40))
	checker := defaultChecker()

	checker.checkAll(t, tm, "Hana Burkart", "[t] light", "I'm exploring Mach")

	tm.Send(keyPress("t"))
	checker.checkAll(t, tm, "[t] dark")

	// An explicit choice wins over the system signal.
	f.signal.Set(false)
	f.signal.Set(true)

	tm.Send(keyPress("q"))
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))

	final, ok := tm.FinalModel(t).(Model)
	require.True(t, ok)
	assert.Equal(t, theme.ModeDark, final.Mode())

	stored, err := f.store.Get(prefs.ThemeKey)
	require.NoError(t, err)
	assert.Equal(t, "dark", stored)
}

func TestProgramFollowsSystem(t *testing.T) {
	f := newFixture(false)
	release := f.controller.Watch()
	defer release()

	tm := teatest.NewTestModel(t, New(f.config()), teatest.WithInitialTermSize(100, 40))
	checker := defaultChecker()

	checker.checkAll(t, tm, "[t] light")
	f.signal.Set(true)
	checker.checkAll(t, tm, "[t] dark")

	tm.Send(keyPress("q"))
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))

	_, err := f.store.Get(prefs.ThemeKey)
	assert.ErrorIs(t, err, prefs.ErrNotFound)
}
