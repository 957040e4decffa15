// Package tui renders the portfolio in a terminal.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hanaburkart/portfolio/internal/content"
	"github.com/hanaburkart/portfolio/internal/theme"
	"github.com/hanaburkart/portfolio/internal/tui/components/labeledspinner"
	"github.com/hanaburkart/portfolio/internal/tui/components/typewriter"
	"github.com/hanaburkart/portfolio/internal/tui/style"
	tw "github.com/hanaburkart/portfolio/internal/typewriter"
	"github.com/hanaburkart/portfolio/pkg/uictl"
)

// MobileWidth is the width below which the nav collapses into a menu.
const MobileWidth = 80

// Config holds what the TUI needs from its host.
type Config struct {
	Profile content.Profile
	// Controller resolves the theme. A nil controller follows nothing and
	// starts light.
	Controller *theme.Controller
	// Renderer builds styles for the host's output. Nil uses the default
	// renderer.
	Renderer *lipgloss.Renderer
	// ThemeEvents delivers modes applied by the controller outside the
	// program's own key handling. See ThemeApplier.
	ThemeEvents <-chan theme.Mode
	// Speeds overrides the typewriter speeds when non-zero.
	Speeds tw.Speeds
	// Cancel is called when the user quits.
	Cancel context.CancelFunc
}

// Model is the portfolio TUI.
type Model struct {
	config     Config
	controller *theme.Controller
	themeKnob  uictl.Knob
	keys       KeyMap
	help       help.Model
	spinner    labeledspinner.Model
	typer      typewriter.Model
	viewport   viewport.Model

	mode     theme.Mode
	styles   style.Styles
	cursorOn bool
	menuOpen bool
	width    int
	height   int

	blocks   []string
	offsets  [sectionCount]int
	revealed [sectionCount]bool
}

// New creates the TUI model.
func New(config Config) Model {
	controller := config.Controller
	if controller == nil {
		controller = theme.NewController(nil, nil)
	}

	speeds := config.Speeds
	if speeds == (tw.Speeds{}) {
		speeds = tw.DefaultSpeeds()
	}

	pending := style.New(config.Renderer, theme.ModePending)

	m := Model{
		config:     config,
		controller: controller,
		themeKnob:  theme.Knob(controller),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		spinner:    labeledspinner.New(spinner.Dot, pending, "Resolving theme", config.Profile.Name, "q quit"),
		typer:      typewriter.New(config.Profile.Phrases, speeds),
		viewport:   viewport.New(80, 20),
		mode:       theme.ModePending,
		styles:     pending,
		cursorOn:   true,
		width:      80,
		height:     24,
	}
	m.revealed[SectionHome] = true
	m.layout()

	return m
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Init(),
		resolveTheme(m.controller),
		listenTheme(m.config.ThemeEvents),
		m.typer.Init(),
		blink(),
	)
}

// Update handles all messages.
func (m Model) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := teaMsg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.width >= MobileWidth {
			m.menuOpen = false
		}
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case themeResolvedMsg:
		m.setMode(msg.pref.Effective)
		return m, nil

	case ThemeAppliedMsg:
		// The controller is the source of truth; events may arrive stale.
		m.setMode(m.controller.Current().Effective)
		return m, listenTheme(m.config.ThemeEvents)

	case typewriter.TickMsg:
		var cmd tea.Cmd
		m.typer, cmd = m.typer.Update(msg)
		m.refreshHome()
		return m, cmd

	case blinkMsg:
		if !m.typer.Running() {
			return m, nil
		}
		m.cursorOn = !m.cursorOn
		m.refreshHome()
		return m, blink()

	case spinner.TickMsg:
		if m.mode.Resolved() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(teaMsg)
	m.reveal()
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit), key.Matches(msg, m.keys.Quit):
		m.typer = m.typer.Stop()
		if m.config.Cancel != nil {
			m.config.Cancel()
		}
		return m, tea.Quit

	case !m.mode.Resolved():
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		m.themeKnob.Toggle()
		m.setMode(m.controller.Current().Effective)

	case key.Matches(msg, m.keys.Menu):
		m.menuOpen = !m.menuOpen
		m.layout()

	case key.Matches(msg, m.keys.About):
		m.goTo(SectionAbout)
	case key.Matches(msg, m.keys.Projects), key.Matches(msg, m.keys.ViewWork):
		m.goTo(SectionProjects)
	case key.Matches(msg, m.keys.Leadership):
		m.goTo(SectionLeadership)
	case key.Matches(msg, m.keys.Contact), key.Matches(msg, m.keys.GetInTouch):
		m.goTo(SectionContact)

	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.reveal()
		return m, cmd
	}

	return m, nil
}

// View renders the current UI.
func (m Model) View() string {
	if !m.mode.Resolved() {
		return m.spinner.View()
	}

	parts := []string{m.headerView()}
	if menu := m.menuView(); menu != "" {
		parts = append(parts, menu)
	}
	parts = append(parts, m.viewport.View(), m.helpView())

	return strings.Join(parts, "\n")
}

// Mode returns the theme the UI is rendered with.
func (m Model) Mode() theme.Mode {
	return m.mode
}

// Section returns the section at the top of the viewport.
func (m Model) Section() Section {
	current := SectionHome
	for sec := SectionHome; sec < sectionCount; sec++ {
		if m.offsets[sec] <= m.viewport.YOffset {
			current = sec
		}
	}
	return current
}

// Revealed reports whether sec has been scrolled into view.
func (m Model) Revealed(sec Section) bool {
	if sec < 0 || sec >= sectionCount {
		return false
	}
	return m.revealed[sec]
}

// MenuOpen reports whether the collapsed nav menu is showing.
func (m Model) MenuOpen() bool {
	return m.menuOpen
}

// Typing returns the typewriter's visible text.
func (m Model) Typing() string {
	return m.typer.View()
}

func (m Model) mobile() bool {
	return m.width < MobileWidth
}

func (m *Model) setMode(mode theme.Mode) {
	if !mode.Resolved() || mode == m.mode {
		return
	}
	m.mode = mode
	m.styles = style.New(m.config.Renderer, mode)

	m.help.Styles.ShortKey = m.styles.Key
	m.help.Styles.ShortDesc = m.styles.Help
	m.help.Styles.ShortSeparator = m.styles.Help
	m.help.Styles.FullKey = m.styles.Key
	m.help.Styles.FullDesc = m.styles.Help
	m.help.Styles.FullSeparator = m.styles.Help

	m.layout()
}

func (m *Model) goTo(sec Section) {
	m.menuOpen = false
	m.layout()
	m.viewport.SetYOffset(m.offsets[sec])
	m.reveal()
}

// layout sizes the viewport around the header, menu and help line and
// re-renders the content.
func (m *Model) layout() {
	m.keys.Menu.SetEnabled(m.mobile())
	m.help.Width = m.width

	chrome := lipgloss.Height(m.headerView()) + lipgloss.Height(m.helpView())
	if menu := m.menuView(); menu != "" {
		chrome += lipgloss.Height(menu)
	}

	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-chrome, 3)

	m.renderBlocks()
	m.reveal()
}

func (m *Model) renderBlocks() {
	width := contentWidth(m.width)
	p := m.config.Profile

	blocks := make([]string, sectionCount)
	blocks[SectionHome] = renderHome(p, m.sectionStyles(SectionHome), m.hero(), width)
	blocks[SectionAbout] = renderAbout(p, m.sectionStyles(SectionAbout), width)
	blocks[SectionProjects] = renderProjects(p, m.sectionStyles(SectionProjects), width)
	blocks[SectionLeadership] = renderLeadership(p, m.sectionStyles(SectionLeadership), width)
	blocks[SectionContact] = renderContact(p, m.sectionStyles(SectionContact))

	m.blocks = blocks
	m.compose()
}

func (m *Model) refreshHome() {
	if len(m.blocks) == 0 {
		m.renderBlocks()
		return
	}
	blocks := make([]string, len(m.blocks))
	copy(blocks, m.blocks)
	blocks[SectionHome] = renderHome(m.config.Profile, m.sectionStyles(SectionHome), m.hero(), contentWidth(m.width))
	m.blocks = blocks
	m.compose()
}

// compose joins the blocks into the viewport and records where each
// section starts.
func (m *Model) compose() {
	line := 0
	for sec, block := range m.blocks {
		m.offsets[sec] = line
		line += lipgloss.Height(block) + 1
	}
	m.viewport.SetContent(strings.Join(m.blocks, "\n\n"))
}

// reveal marks every section intersecting the viewport as revealed. A
// newly revealed section is re-rendered with full styles.
func (m *Model) reveal() {
	top := m.viewport.YOffset
	bottom := top + m.viewport.Height
	total := m.viewport.TotalLineCount()

	changed := false
	for sec := SectionHome; sec < sectionCount; sec++ {
		end := total
		if sec+1 < sectionCount {
			end = m.offsets[sec+1]
		}
		if !m.revealed[sec] && m.offsets[sec] < bottom && end > top {
			m.revealed[sec] = true
			changed = true
		}
	}

	if changed {
		m.renderBlocks()
	}
}

func (m Model) sectionStyles(sec Section) style.Styles {
	if m.revealed[sec] {
		return m.styles
	}
	return m.styles.Dimmed()
}

func (m Model) hero() hero {
	return hero{typed: m.typer.View(), cursorOn: m.cursorOn}
}

func (m Model) themeIndicator() string {
	label := "light"
	if m.mode == theme.ModeDark {
		label = "dark"
	}
	return m.styles.Key.Render("[t]") + " " + m.styles.Help.Render(label)
}

func (m Model) navItem(k key.Binding, sec Section) string {
	label := m.styles.Text
	if m.Section() == sec {
		label = m.styles.Accent
	}
	return m.styles.Key.Render("["+k.Help().Key+"]") + " " + label.Render(sec.String())
}

func (m Model) navItems() []string {
	return []string{
		m.navItem(m.keys.About, SectionAbout),
		m.navItem(m.keys.Projects, SectionProjects),
		m.navItem(m.keys.Leadership, SectionLeadership),
		m.navItem(m.keys.Contact, SectionContact),
	}
}

func (m Model) headerView() string {
	left := m.styles.Title.Render(m.config.Profile.Name)

	var right string
	if m.mobile() {
		right = m.styles.Key.Render("[m]") + " " + m.styles.Help.Render("menu") + "  " + m.themeIndicator()
	} else {
		right = strings.Join(append(m.navItems(), m.themeIndicator()), "  ")
	}

	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return m.styles.Header.Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) menuView() string {
	if !m.mobile() || !m.menuOpen {
		return ""
	}
	return strings.Join(m.navItems(), "\n")
}

func (m Model) helpView() string {
	return m.help.View(m.keys)
}
