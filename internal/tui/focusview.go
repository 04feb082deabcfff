package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/krisnawm/folio/internal/focus"
	"github.com/krisnawm/folio/internal/log"
	"github.com/krisnawm/folio/internal/tui/components"
	"github.com/krisnawm/folio/internal/tui/theme"
)

type focusKeyMap struct {
	Pause key.Binding
	Theme key.Binding
	Quit  key.Binding
}

func (k focusKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Theme, k.Quit}
}

func (k focusKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// FocusView shows only the word-focus animation, centred on screen.
type FocusView struct {
	focus     components.TrueFocus
	highlight func(dark bool) (border, glow string)
	dark      bool
	styles    Styles
	keys      focusKeyMap
	help      help.Model

	width  int
	height int
}

// NewFocusView builds the standalone animation view.
func NewFocusView(cfg focus.Config, dark bool, highlight func(dark bool) (border, glow string), opts ...focus.Option) (FocusView, error) {
	palette := theme.For(dark)
	tf, err := components.NewTrueFocus(cfg, palette, opts...)
	if err != nil {
		return FocusView{}, fmt.Errorf("word focus: %w", err)
	}
	m := FocusView{
		focus:     tf,
		highlight: highlight,
		dark:      dark,
		styles:    NewStyles(palette),
		keys: focusKeyMap{
			Pause: key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "pause/resume")),
			Theme: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle theme")),
			Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		},
		help: help.New(),
	}
	m.applyHighlight()
	return m, nil
}

// Init starts the animation.
func (m FocusView) Init() tea.Cmd {
	return m.focus.Start()
}

// Close stops the animation.
func (m FocusView) Close() error {
	return m.focus.Close()
}

// Update handles messages
func (m FocusView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.focus.Place(m.origin())
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			if err := m.focus.Close(); err != nil {
				log.Error("closing word focus", "err", err)
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.togglePause()
			return m, nil
		case key.Matches(msg, m.keys.Theme):
			m.dark = !m.dark
			palette := theme.For(m.dark)
			m.styles = NewStyles(palette)
			m.focus.SetPalette(palette)
			m.applyHighlight()
			return m, nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.focus, cmd = m.focus.Update(msg)
	return m, cmd
}

// togglePause stops or restarts the animator. The pending listener keeps
// waiting across a pause, so resuming needs no new command.
func (m FocusView) togglePause() {
	anim := m.focus.Animator()
	if anim.Running() {
		anim.Stop()
		log.Debug("focus paused", "index", anim.CurrentIndex())
		return
	}
	anim.Start()
	log.Debug("focus resumed", "index", anim.CurrentIndex())
}

func (m *FocusView) applyHighlight() {
	if m.highlight == nil {
		return
	}
	p := m.styles.Palette
	border, glow := m.highlight(m.dark)
	m.focus.SetHighlightColors(p.ParseOr(border, p.Accent), p.ParseOr(glow, p.Background))
}

// origin is the top-left cell that centres the component.
func (m FocusView) origin() (int, int) {
	x := max((m.width-m.focus.Width())/2, 0)
	y := max((m.height-1-components.TrueFocusHeight)/2, 0) // last row is help
	return x, y
}

// Focus returns the word-focus component.
func (m FocusView) Focus() components.TrueFocus { return m.focus }

// View renders the UI
func (m FocusView) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	body := lipgloss.Place(m.width, max(m.height-1, components.TrueFocusHeight), lipgloss.Center, lipgloss.Center, m.focus.View())
	return body + "\n" + m.help.View(m.keys)
}
