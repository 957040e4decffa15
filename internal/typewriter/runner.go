package typewriter

import (
	"sync"
	"time"
)

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithSpeeds overrides DefaultSpeeds.
func WithSpeeds(s Speeds) RunnerOption {
	return func(r *Runner) {
		r.speeds = s
	}
}

// WithOnChange registers a callback invoked with the display text after
// every step. It runs on the timer goroutine, outside the runner's lock.
func WithOnChange(fn func(text string)) RunnerOption {
	return func(r *Runner) {
		r.onChange = fn
	}
}

// Runner drives an Engine with exactly one pending timer at a time. Each
// step replaces the timer; Stop cancels it.
type Runner struct {
	speeds   Speeds
	onChange func(string)

	mu      sync.Mutex
	engine  *Engine
	timer   *time.Timer
	gen     uint64
	stopped bool
}

// Start begins cycling through phrases. With no phrases the returned
// runner is inert: Display is empty and nothing is scheduled.
func Start(phrases []string, opts ...RunnerOption) *Runner {
	r := &Runner{speeds: DefaultSpeeds()}
	for _, opt := range opts {
		opt(r)
	}

	engine, err := NewEngine(phrases, r.speeds)
	if err != nil {
		r.stopped = true
		return r
	}
	r.engine = &engine

	r.mu.Lock()
	r.schedule(engine.FirstDelay())
	r.mu.Unlock()

	return r
}

// schedule arms the next step. Callers hold r.mu.
func (r *Runner) schedule(d time.Duration) {
	r.gen++
	gen := r.gen
	r.timer = time.AfterFunc(d, func() { r.fire(gen) })
}

func (r *Runner) fire(gen uint64) {
	r.mu.Lock()
	// A timer that lost the race with Stop (or a newer schedule) is stale.
	if r.stopped || gen != r.gen {
		r.mu.Unlock()
		return
	}
	delay := r.engine.Step()
	text := r.engine.Display()
	r.schedule(delay)
	r.mu.Unlock()

	if r.onChange != nil {
		r.onChange(text)
	}
}

// Stop cancels the pending step. It is safe to call at any time and more
// than once; no step runs after Stop returns.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopped = true
	r.gen++
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

// Stopped reports whether Stop was called or the runner is inert.
func (r *Runner) Stopped() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stopped
}

// Display returns the text to render right now.
func (r *Runner) Display() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.engine == nil {
		return ""
	}
	return r.engine.Display()
}

// PhraseIndex returns the index of the phrase being animated.
func (r *Runner) PhraseIndex() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.engine == nil {
		return 0
	}
	return r.engine.PhraseIndex()
}

// Phase returns the engine's current phase.
func (r *Runner) Phase() Phase {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.engine == nil {
		return PhaseTyping
	}
	return r.engine.Phase()
}
