package focus

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func newTestAnimator(t *testing.T, cfg Config, opts ...Option) (*Animator, *manualClock) {
	t.Helper()
	clock := &manualClock{}
	a, err := New(cfg, append([]Option{WithClock(clock)}, opts...)...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return a, clock
}

func TestNewDefaults(t *testing.T) {
	a, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	words := a.Words()
	want := []string{"Admin", "Logistik", "Analis", "Accounting"}
	if len(words) != len(want) {
		t.Fatalf("Words() = %v, want %v", words, want)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("Words()[%d] = %q, want %q", i, words[i], want[i])
		}
	}
	if a.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex() = %d, want 0", a.CurrentIndex())
	}
	if a.State() != Idle {
		t.Errorf("State() = %v, want idle", a.State())
	}
	if a.Period() != 1400*time.Millisecond {
		t.Errorf("Period() = %v, want 1.4s", a.Period())
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Config)
		field string
	}{
		{"empty sentence", func(c *Config) { c.Sentence = "" }, "sentence"},
		{"blank sentence", func(c *Config) { c.Sentence = "   " }, "sentence"},
		{"zero transition", func(c *Config) { c.TransitionDuration = 0 }, "transition"},
		{"negative transition", func(c *Config) { c.TransitionDuration = -time.Second }, "transition"},
		{"negative pause", func(c *Config) { c.PauseBetweenCycles = -time.Millisecond }, "pause"},
		{"negative blur", func(c *Config) { c.BlurIntensity = -1 }, "blur"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.edit(&cfg)

			a, err := New(cfg)
			if a != nil {
				t.Errorf("New() returned an animator for invalid config")
			}
			if !errors.Is(err, ErrConfig) {
				t.Fatalf("New() error = %v, want ErrConfig", err)
			}
			var cerr *ConfigError
			if !errors.As(err, &cerr) {
				t.Fatalf("error %T is not *ConfigError", err)
			}
			if cerr.Field != tt.field {
				t.Errorf("Field = %q, want %q", cerr.Field, tt.field)
			}
		})
	}
}

func TestZeroPauseIsValid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PauseBetweenCycles = 0
	if _, err := New(cfg); err != nil {
		t.Errorf("New() with zero pause error = %v", err)
	}
}

func TestSplitWords(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{" ", 0},
		{"one", 1},
		{"A BB CCC", 3},
		{" padded  words ", 2},
	}
	for _, tt := range tests {
		if got := SplitWords(tt.in); len(got) != tt.want {
			t.Errorf("SplitWords(%q) = %v, want %d words", tt.in, got, tt.want)
		}
	}
}

func TestAdvanceWraps(t *testing.T) {
	sentences := []string{"solo", "A BB", "A BB CCC", DefaultSentence}
	for _, s := range sentences {
		cfg := DefaultConfig()
		cfg.Sentence = s
		a, _ := newTestAnimator(t, cfg)
		n := a.Len()

		for k := 1; k <= 3*n+1; k++ {
			a.Advance()
			if got := a.CurrentIndex(); got != k%n {
				t.Fatalf("%q: after %d advances index = %d, want %d", s, k, got, k%n)
			}
		}
	}
}

func TestAdvanceSingleWordFixedPoint(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sentence = "Accounting"
	a, _ := newTestAnimator(t, cfg)

	for i := 0; i < 5; i++ {
		a.Advance()
		if a.CurrentIndex() != 0 {
			t.Fatalf("CurrentIndex() = %d, want 0", a.CurrentIndex())
		}
	}
}

func TestStartAdvancesOncePerPeriod(t *testing.T) {
	cfg := DefaultConfig()
	a, clock := newTestAnimator(t, cfg)
	a.Start()

	clock.Advance(a.Period() - time.Millisecond)
	if a.CurrentIndex() != 0 {
		t.Fatalf("advanced before a full period: index = %d", a.CurrentIndex())
	}
	clock.Advance(time.Millisecond)
	if a.CurrentIndex() != 1 {
		t.Fatalf("index after one period = %d, want 1", a.CurrentIndex())
	}
}

func TestStartIsIdempotent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sentence = "a b c d e f g h i j k l"
	a, clock := newTestAnimator(t, cfg)

	a.Start()
	a.Start()
	if clock.Pending() != 1 {
		t.Fatalf("Pending() = %d after double Start, want 1", clock.Pending())
	}

	clock.Advance(5 * a.Period())
	if a.CurrentIndex() != 5 {
		t.Errorf("index after 5 periods = %d, want 5", a.CurrentIndex())
	}
	if clock.Pending() != 1 {
		t.Errorf("Pending() = %d while running, want 1", clock.Pending())
	}
}

func TestStopFreezesIndex(t *testing.T) {
	cfg := DefaultConfig()
	a, clock := newTestAnimator(t, cfg)

	a.Start()
	clock.Advance(2 * a.Period())
	a.Stop()
	frozen := a.CurrentIndex()

	clock.Advance(10 * a.Period())
	if a.CurrentIndex() != frozen {
		t.Errorf("index moved after Stop: %d -> %d", frozen, a.CurrentIndex())
	}
	if clock.Pending() != 0 {
		t.Errorf("Pending() = %d after Stop, want 0", clock.Pending())
	}
	if a.Running() {
		t.Error("Running() = true after Stop")
	}
}

func TestStopAndCloseAreIdempotent(t *testing.T) {
	a, _ := newTestAnimator(t, DefaultConfig())

	a.Stop()
	a.Stop()
	if err := a.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	a.Start()
	if err := a.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := a.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if a.Running() {
		t.Error("Running() = true after Close")
	}
}

func TestRestartAfterStop(t *testing.T) {
	a, clock := newTestAnimator(t, DefaultConfig())

	a.Start()
	clock.Advance(a.Period())
	a.Stop()
	a.Start()
	clock.Advance(a.Period())

	if a.CurrentIndex() != 2 {
		t.Errorf("index = %d, want 2", a.CurrentIndex())
	}
	if clock.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", clock.Pending())
	}
}

// A callback that the runtime already dequeued when Stop ran must not move
// the index.
func TestInFlightCallbackAfterStop(t *testing.T) {
	var fired func()
	clock := clockFunc(func(d time.Duration, f func()) Timer {
		fired = f
		return stubTimer{}
	})
	a, err := New(DefaultConfig(), WithClock(clock))
	if err != nil {
		t.Fatal(err)
	}

	a.Start()
	a.Stop()
	fired()

	if a.CurrentIndex() != 0 {
		t.Errorf("stale callback advanced index to %d", a.CurrentIndex())
	}

	a.Start()
	stale := fired
	a.Stop()
	a.Start()
	stale()
	if a.CurrentIndex() != 0 {
		t.Errorf("callback from an earlier run advanced index to %d", a.CurrentIndex())
	}
}

func TestOnAdvanceObserver(t *testing.T) {
	var got []int
	cfg := DefaultConfig()
	cfg.Sentence = "A BB CCC"
	a, clock := newTestAnimator(t, cfg, WithOnAdvance(func(i int) {
		got = append(got, i)
	}))

	a.Start()
	clock.Advance(4 * a.Period())
	a.Advance() // manual advances are not observed

	want := []int{1, 2, 0, 1}
	if len(got) != len(want) {
		t.Fatalf("observed %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("observed[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestEndToEndCycle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sentence = "A BB CCC"
	cfg.TransitionDuration = 100 * time.Millisecond
	cfg.PauseBetweenCycles = 0
	a, clock := newTestAnimator(t, cfg)

	a.Start()
	clock.Advance(3 * 100 * time.Millisecond)
	if a.CurrentIndex() != 0 {
		t.Fatalf("index after 3 periods = %d, want 0", a.CurrentIndex())
	}

	clock.Advance(100 * time.Millisecond)
	a.Stop()
	if a.CurrentIndex() != 1 {
		t.Fatalf("index after 4 periods = %d, want 1", a.CurrentIndex())
	}
	clock.Advance(time.Second)
	if a.CurrentIndex() != 1 {
		t.Errorf("index moved after Stop: %d", a.CurrentIndex())
	}
}

func TestSystemClockStops(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sentence = "A BB CCC"
	cfg.TransitionDuration = 5 * time.Millisecond
	cfg.PauseBetweenCycles = 0

	var mu sync.Mutex
	ticks := 0
	a, err := New(cfg, WithOnAdvance(func(int) {
		mu.Lock()
		ticks++
		mu.Unlock()
	}))
	if err != nil {
		t.Fatal(err)
	}

	a.Start()
	time.Sleep(40 * time.Millisecond)
	a.Stop()
	frozen := a.CurrentIndex()

	mu.Lock()
	observed := ticks
	mu.Unlock()
	if observed == 0 {
		t.Fatal("no ticks observed while running")
	}

	time.Sleep(40 * time.Millisecond)
	if a.CurrentIndex() != frozen {
		t.Errorf("index moved after Stop: %d -> %d", frozen, a.CurrentIndex())
	}
}

func TestBlur(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BlurIntensity = 7
	a, _ := newTestAnimator(t, cfg)
	a.Advance()

	for i := 0; i < a.Len(); i++ {
		want := 7.0
		if i == 1 {
			want = 0
		}
		if got := a.Blur(i); got != want {
			t.Errorf("Blur(%d) = %v, want %v", i, got, want)
		}
	}
}

type clockFunc func(time.Duration, func()) Timer

func (f clockFunc) AfterFunc(d time.Duration, fn func()) Timer { return f(d, fn) }

type stubTimer struct{}

func (stubTimer) Stop() bool { return true }
