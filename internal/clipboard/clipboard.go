// Package clipboard provides cross-platform clipboard support.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no clipboard backend (pbcopy, xclip,
// xsel, wl-copy, clip.exe) can be found.
var ErrUnavailable = errors.New("clipboard unavailable")

// Writer copies text somewhere. The TUI takes one so tests can capture
// copies without touching the system clipboard.
type Writer interface {
	Write(text string) error
}

// System is the system clipboard.
type System struct{}

// Write copies text to the system clipboard.
func (System) Write(text string) error {
	return Write(text)
}

// Write copies text to the system clipboard.
func Write(text string) error {
	if !Available() {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}

// Available checks if clipboard functionality is available.
func Available() bool {
	return !clipboard.Unsupported
}
