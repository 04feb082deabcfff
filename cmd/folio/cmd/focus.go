package cmd

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/krisnawm/folio/internal/focus"
	"github.com/krisnawm/folio/internal/tui"
	"github.com/spf13/cobra"
)

var focusCmd = &cobra.Command{
	Use:   "focus [sentence]",
	Short: "Run only the word-focus animation",
	Long: `Run the word-focus animation on its own, centred in the terminal.

Without a sentence the tagline from the content file is used.

Controls:
  space   Pause or resume
  t       Toggle theme
  q       Quit`,
	Example: `  folio focus
  folio focus "Go Rust Zig" --transition 250ms --pause 0
  folio focus --blur 8`,
	RunE: runFocus,
}

func init() {
	rootCmd.AddCommand(focusCmd)
	addFocusFlags(focusCmd)
}

func addFocusFlags(cmd *cobra.Command) {
	cmd.Flags().Duration("transition", 0, "duration of one focus change (e.g. 400ms)")
	cmd.Flags().Duration("pause", 0, "dwell time between focus changes")
	cmd.Flags().Float64("blur", 0, "blur applied to words out of focus")
}

// applyFocusFlags overrides fc with the sentence arguments and any flag the
// user set explicitly.
func applyFocusFlags(cmd *cobra.Command, args []string, fc focus.Config) (focus.Config, error) {
	if len(args) > 0 {
		fc.Sentence = strings.Join(args, " ")
	}
	flags := cmd.Flags()
	var err error
	if flags.Changed("transition") {
		if fc.TransitionDuration, err = flags.GetDuration("transition"); err != nil {
			return fc, err
		}
	}
	if flags.Changed("pause") {
		if fc.PauseBetweenCycles, err = flags.GetDuration("pause"); err != nil {
			return fc, err
		}
	}
	if flags.Changed("blur") {
		if fc.BlurIntensity, err = flags.GetFloat64("blur"); err != nil {
			return fc, err
		}
	}
	return fc, nil
}

func runFocus(cmd *cobra.Command, args []string) error {
	portfolio, err := loadPortfolio()
	if err != nil {
		return err
	}

	fc, err := applyFocusFlags(cmd, args, cfg.FocusConfig(portfolio.Tagline))
	if err != nil {
		return err
	}

	view, err := tui.NewFocusView(fc, cfg.Dark(), func(dark bool) (string, string) {
		themed := cfg.ThemedFocus(fc, dark)
		return themed.BorderColor, themed.GlowColor
	})
	if err != nil {
		return err
	}
	defer view.Close()

	p := tea.NewProgram(view, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
