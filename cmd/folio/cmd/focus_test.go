package cmd

import (
	"testing"
	"time"

	"github.com/krisnawm/folio/internal/focus"
	"github.com/spf13/cobra"
)

func TestApplyFocusFlags(t *testing.T) {
	base := focus.DefaultConfig()
	tests := []struct {
		name string
		args []string
		want func(focus.Config) focus.Config
	}{
		{"no overrides", nil, func(c focus.Config) focus.Config { return c }},
		{"joined sentence", []string{"Go", "Rust", "Zig"}, func(c focus.Config) focus.Config {
			c.Sentence = "Go Rust Zig"
			return c
		}},
		{"transition", []string{"--transition", "250ms"}, func(c focus.Config) focus.Config {
			c.TransitionDuration = 250 * time.Millisecond
			return c
		}},
		{"zero pause", []string{"--pause", "0"}, func(c focus.Config) focus.Config {
			c.PauseBetweenCycles = 0
			return c
		}},
		{"blur", []string{"--blur", "8"}, func(c focus.Config) focus.Config {
			c.BlurIntensity = 8
			return c
		}},
		{"all", []string{"Hello world", "--transition", "1s", "--pause", "2s", "--blur", "1.5"}, func(c focus.Config) focus.Config {
			c.Sentence = "Hello world"
			c.TransitionDuration = time.Second
			c.PauseBetweenCycles = 2 * time.Second
			c.BlurIntensity = 1.5
			return c
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{Use: "focus"}
			addFocusFlags(cmd)
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatalf("ParseFlags(%v) error = %v", tt.args, err)
			}

			got, err := applyFocusFlags(cmd, cmd.Flags().Args(), base)
			if err != nil {
				t.Fatalf("applyFocusFlags() error = %v", err)
			}
			if want := tt.want(base); got != want {
				t.Errorf("config = %+v, want %+v", got, want)
			}
		})
	}
}
