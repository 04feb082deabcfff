package focus

import (
	"sync"
	"time"
)

// State is the animator's lifecycle state.
type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Option customizes an Animator.
type Option func(*Animator)

// WithClock replaces the system clock. Tests use it to drive time by hand.
func WithClock(c Clock) Option {
	return func(a *Animator) {
		a.clock = c
	}
}

// WithOnAdvance registers an observer called after every timer-driven
// advance with the new active index. It runs on the timer's goroutine,
// outside the animator's lock, and must not block.
func WithOnAdvance(fn func(index int)) Option {
	return func(a *Animator) {
		a.onAdvance = fn
	}
}

// Animator owns the word sequence, the active index and the cycle timer.
// The zero value is not usable; construct with New.
type Animator struct {
	cfg    Config
	words  []string
	period time.Duration

	clock     Clock
	onAdvance func(int)

	mu    sync.Mutex
	index int
	state State
	timer Timer
	// gen is bumped on every Start and Stop so a callback that was already
	// in flight when the timer was cancelled becomes a no-op.
	gen uint64
}

// New validates cfg and returns an idle animator focused on the first word.
func New(cfg Config, opts ...Option) (*Animator, error) {
	words, err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	a := &Animator{
		cfg:    cfg,
		words:  words,
		period: cfg.Period(),
		clock:  SystemClock{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Start begins cycling. Calling Start while running does nothing.
func (a *Animator) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state == Running {
		return
	}
	a.state = Running
	a.gen++
	a.schedule(a.gen)
}

// schedule arms the next tick. Caller holds a.mu.
func (a *Animator) schedule(gen uint64) {
	a.timer = a.clock.AfterFunc(a.period, func() {
		a.tick(gen)
	})
}

func (a *Animator) tick(gen uint64) {
	a.mu.Lock()
	if a.state != Running || gen != a.gen {
		a.mu.Unlock()
		return
	}
	a.advanceLocked()
	index := a.index
	a.schedule(gen)
	observer := a.onAdvance
	a.mu.Unlock()

	if observer != nil {
		observer(index)
	}
}

// Stop cancels the timer. It is safe to call at any time, any number of
// times; once it returns no further advance happens until Start.
func (a *Animator) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state == Idle {
		return
	}
	a.state = Idle
	a.gen++
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}

// Close stops the animator. Hosts call it when tearing the view down.
func (a *Animator) Close() error {
	a.Stop()
	return nil
}

// Advance moves the focus to the next word, wrapping to the first.
func (a *Animator) Advance() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.advanceLocked()
}

func (a *Animator) advanceLocked() {
	a.index = (a.index + 1) % len(a.words)
}

// CurrentIndex returns the active word index.
func (a *Animator) CurrentIndex() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.index
}

// State returns Idle or Running.
func (a *Animator) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Running reports whether the cycle timer is armed.
func (a *Animator) Running() bool {
	return a.State() == Running
}

// Words returns a copy of the word sequence.
func (a *Animator) Words() []string {
	out := make([]string, len(a.words))
	copy(out, a.words)
	return out
}

// Len returns the number of words.
func (a *Animator) Len() int {
	return len(a.words)
}

// Period returns the interval between advances.
func (a *Animator) Period() time.Duration {
	return a.period
}

// Config returns the configuration the animator was built with.
func (a *Animator) Config() Config {
	return a.cfg
}

// Blur returns the blur radius for the word at index: zero for the active
// word, the configured intensity for the rest.
func (a *Animator) Blur(index int) float64 {
	if index == a.CurrentIndex() {
		return 0
	}
	return a.cfg.BlurIntensity
}
