// Package focus implements the word-focus animation: a sentence split into
// words, a repeating timer that moves the focus from one word to the next,
// and the geometry a host needs to draw a frame around the focused word.
//
// The animator never draws. Hosts read CurrentIndex, ask MeasureHighlight
// for the frame position and render blur and frame themselves.
package focus

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Default settings, matching the tagline animation on the landing page.
const (
	DefaultSentence           = "Admin Logistik Analis Accounting"
	DefaultBlurIntensity      = 5.0
	DefaultBorderColor        = "cyan"
	DefaultGlowColor          = "rgba(0,255,255,.5)"
	DefaultTransitionDuration = 400 * time.Millisecond
	DefaultPauseBetweenCycles = time.Second
)

// ErrConfig is matched by every *ConfigError.
var ErrConfig = errors.New("invalid focus configuration")

// ConfigError reports an invalid construction parameter.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("focus: %s: %s", e.Field, e.Reason)
}

// Is reports whether target is ErrConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// Config holds the animator's construction parameters.
type Config struct {
	Sentence      string
	BlurIntensity float64 // blur radius, in pixels or host units, for unfocused words

	// Cosmetic; passed through to the host untouched.
	BorderColor string
	GlowColor   string

	TransitionDuration time.Duration
	PauseBetweenCycles time.Duration
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Sentence:           DefaultSentence,
		BlurIntensity:      DefaultBlurIntensity,
		BorderColor:        DefaultBorderColor,
		GlowColor:          DefaultGlowColor,
		TransitionDuration: DefaultTransitionDuration,
		PauseBetweenCycles: DefaultPauseBetweenCycles,
	}
}

// Period is the interval between two advances.
func (c Config) Period() time.Duration {
	return c.TransitionDuration + c.PauseBetweenCycles
}

// Validate checks c and returns its word sequence.
func (c Config) Validate() ([]string, error) {
	words := SplitWords(c.Sentence)
	if len(words) == 0 {
		return nil, &ConfigError{Field: "sentence", Reason: "must contain at least one word"}
	}
	if c.TransitionDuration <= 0 {
		return nil, &ConfigError{Field: "transition", Reason: fmt.Sprintf("must be positive, got %s", c.TransitionDuration)}
	}
	if c.PauseBetweenCycles < 0 {
		return nil, &ConfigError{Field: "pause", Reason: fmt.Sprintf("must not be negative, got %s", c.PauseBetweenCycles)}
	}
	if c.BlurIntensity < 0 {
		return nil, &ConfigError{Field: "blur", Reason: fmt.Sprintf("must not be negative, got %g", c.BlurIntensity)}
	}
	return words, nil
}

// SplitWords splits a sentence on single spaces. Empty fragments left by
// repeated or surrounding spaces are dropped, so a blank sentence yields no
// words.
func SplitWords(sentence string) []string {
	var words []string
	for _, w := range strings.Split(sentence, " ") {
		if strings.TrimSpace(w) == "" {
			continue
		}
		words = append(words, w)
	}
	return words
}
