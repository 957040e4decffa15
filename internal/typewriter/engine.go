// Package typewriter cycles through phrases, typing and deleting them one
// character at a time.
//
// Engine is the pure state machine; Runner drives it with a single
// time.Timer for hosts that are not bubbletea programs.
package typewriter

import (
	"errors"
	"strings"
	"time"

	"github.com/rivo/uniseg"
)

// ErrNoPhrases is returned when an engine is built without phrases.
var ErrNoPhrases = errors.New("typewriter needs at least one phrase")

// Phase is the engine's animation direction.
type Phase int

const (
	// PhaseTyping appends characters until the phrase is complete.
	PhaseTyping Phase = iota
	// PhasePaused holds the complete phrase before deleting starts.
	PhasePaused
	// PhaseDeleting removes characters until the text is empty.
	PhaseDeleting
)

func (p Phase) String() string {
	switch p {
	case PhaseTyping:
		return "typing"
	case PhasePaused:
		return "paused"
	case PhaseDeleting:
		return "deleting"
	default:
		return "unknown"
	}
}

// Speeds are the delays between steps.
type Speeds struct {
	Typing   time.Duration
	Deleting time.Duration
	Pause    time.Duration
}

// DefaultSpeeds returns 100ms per typed character, 50ms per deleted
// character and a 2s pause on the complete phrase.
func DefaultSpeeds() Speeds {
	return Speeds{
		Typing:   100 * time.Millisecond,
		Deleting: 50 * time.Millisecond,
		Pause:    2 * time.Second,
	}
}

// Engine is the typewriter state machine. The zero value is not usable;
// build one with NewEngine. Engines are not safe for concurrent use.
type Engine struct {
	phrases [][]string // grapheme clusters per phrase
	speeds  Speeds
	index   int
	shown   int
	phase   Phase
}

// NewEngine creates an engine positioned before the first character of
// the first phrase.
func NewEngine(phrases []string, speeds Speeds) (Engine, error) {
	if len(phrases) == 0 {
		return Engine{}, ErrNoPhrases
	}

	split := make([][]string, len(phrases))
	for i, p := range phrases {
		split[i] = graphemes(p)
	}

	return Engine{phrases: split, speeds: speeds}, nil
}

func graphemes(s string) []string {
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// FirstDelay is the delay before the first Step.
func (e *Engine) FirstDelay() time.Duration {
	return e.speeds.Typing
}

// Step performs one transition and returns the delay until the next one.
func (e *Engine) Step() time.Duration {
	full := len(e.phrases[e.index])

	switch e.phase {
	case PhaseTyping:
		if e.shown < full {
			e.shown++
		}
		if e.shown < full {
			return e.speeds.Typing
		}
		e.phase = PhasePaused
		return e.speeds.Pause

	case PhasePaused:
		e.phase = PhaseDeleting
		return e.speeds.Deleting

	case PhaseDeleting:
		if e.shown > 0 {
			e.shown--
			return e.speeds.Deleting
		}
		e.index = (e.index + 1) % len(e.phrases)
		e.phase = PhaseTyping
		return e.speeds.Typing
	}

	return e.speeds.Typing
}

// Display returns the text to render: a prefix of the current phrase.
func (e *Engine) Display() string {
	if len(e.phrases) == 0 {
		return ""
	}
	return strings.Join(e.phrases[e.index][:e.shown], "")
}

// Phrase returns the current phrase in full.
func (e *Engine) Phrase() string {
	if len(e.phrases) == 0 {
		return ""
	}
	return strings.Join(e.phrases[e.index], "")
}

// PhraseIndex returns the index of the current phrase.
func (e *Engine) PhraseIndex() int {
	return e.index
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Deleting reports whether the engine is removing characters.
func (e *Engine) Deleting() bool {
	return e.phase == PhaseDeleting
}

// Frame is one snapshot of the animation.
type Frame struct {
	Text        string        `json:"text"`
	PhraseIndex int           `json:"phrase_index"`
	Delay       time.Duration `json:"-"`
	DelayMS     int64         `json:"delay_ms"`
}

// Frames steps a fresh engine through n full cycles over all phrases and
// returns the snapshot after each step with the delay that follows it.
func Frames(phrases []string, speeds Speeds, cycles int) ([]Frame, error) {
	e, err := NewEngine(phrases, speeds)
	if err != nil {
		return nil, err
	}

	var frames []Frame
	for c := 0; c < cycles; c++ {
		for range phrases {
			for {
				delay := e.Step()
				frames = append(frames, Frame{
					Text:        e.Display(),
					PhraseIndex: e.PhraseIndex(),
					Delay:       delay,
					DelayMS:     delay.Milliseconds(),
				})
				// The advance step ends a typewriter cycle.
				if e.Phase() == PhaseTyping && e.shown == 0 {
					break
				}
			}
		}
	}
	return frames, nil
}
