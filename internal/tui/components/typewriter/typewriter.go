// Package typewriter is a bubbletea component that types and deletes a
// list of phrases.
package typewriter

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	tw "github.com/hanaburkart/portfolio/internal/typewriter"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickMsg advances a typewriter by one step.
type TickMsg struct {
	// ID of the typewriter the message belongs to.
	ID  int
	tag int
}

// Model is the typewriter state. Each pending tick carries the model's id
// and tag; Stop bumps the tag so a tick already in flight is ignored.
type Model struct {
	id      int
	tag     int
	engine  tw.Engine
	valid   bool
	running bool
}

// New creates a running typewriter. With no phrases the model is inert:
// it renders nothing and never ticks.
func New(phrases []string, speeds tw.Speeds) Model {
	engine, err := tw.NewEngine(phrases, speeds)

	return Model{
		id:      nextID(),
		engine:  engine,
		valid:   err == nil,
		running: err == nil,
	}
}

// ID returns the typewriter's unique id.
func (m Model) ID() int {
	return m.id
}

// Init schedules the first step.
func (m Model) Init() tea.Cmd {
	if !m.running {
		return nil
	}
	return m.tick(m.engine.FirstDelay())
}

// Update steps the engine on its own ticks and reschedules.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	tick, ok := msg.(TickMsg)
	if !ok {
		return m, nil
	}

	if !m.running || tick.ID != m.id || tick.tag != m.tag {
		return m, nil
	}

	delay := m.engine.Step()
	return m, m.tick(delay)
}

// View renders the visible prefix of the current phrase.
func (m Model) View() string {
	if !m.valid {
		return ""
	}
	return m.engine.Display()
}

// Start resumes a stopped typewriter from where it left off.
func (m Model) Start() (Model, tea.Cmd) {
	if !m.valid || m.running {
		return m, nil
	}
	m.running = true
	m.tag++
	return m, m.tick(m.engine.FirstDelay())
}

// Stop halts the typewriter. Any pending tick is dropped on arrival.
func (m Model) Stop() Model {
	if m.running {
		m.running = false
		m.tag++
	}
	return m
}

// Running reports whether ticks are being scheduled.
func (m Model) Running() bool {
	return m.running
}

// PhraseIndex returns the index of the phrase being typed.
func (m Model) PhraseIndex() int {
	return m.engine.PhraseIndex()
}

// Phase returns the engine's current phase.
func (m Model) Phase() tw.Phase {
	return m.engine.Phase()
}

func (m Model) tick(d time.Duration) tea.Cmd {
	id, tag := m.id, m.tag
	return tea.Tick(d, func(time.Time) tea.Msg {
		return TickMsg{ID: id, tag: tag}
	})
}
