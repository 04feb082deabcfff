// Package components provides shared UI components for the TUI.
package components

import (
	"math"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/krisnawm/folio/internal/focus"
	"github.com/krisnawm/folio/internal/log"
	"github.com/krisnawm/folio/internal/tui/theme"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// FrameInterval is the redraw interval while a focus transition runs.
const FrameInterval = 33 * time.Millisecond

// TrueFocusHeight is the number of rows the component renders.
const TrueFocusHeight = 3

var lastFocusID int
var focusIDMu sync.Mutex

func nextFocusID() int {
	focusIDMu.Lock()
	defer focusIDMu.Unlock()
	lastFocusID++
	return lastFocusID
}

// FocusAdvancedMsg is delivered when the animator moves to the next word.
type FocusAdvancedMsg struct {
	id    int
	Index int
}

// focusFrameMsg drives the cross-fade between two words.
type focusFrameMsg struct {
	id  int
	tag int
}

// TrueFocus renders a sentence with one word in focus and a frame around
// it. Words out of focus are faded toward the background; the frame slides
// to the next word on every advance.
type TrueFocus struct {
	id      int
	anim    *focus.Animator
	words   []string
	widths  []int
	offsets []int // column of each word inside the row
	width   int

	palette theme.Palette
	border  colorful.Color
	glow    colorful.Color
	blur    float64

	// Layout is unknown until the host places the component.
	placed  bool
	originX int
	originY int

	tracker  focus.Tracker
	from     focus.HighlightBox // frame position when the transition began
	active   int
	previous int
	progress float64
	frameTag int // drops frames of a transition that was superseded

	events    chan int
	done      chan struct{}
	closeOnce *sync.Once
}

// NewTrueFocus builds the component and its animator. The animator is idle
// until Start.
func NewTrueFocus(cfg focus.Config, palette theme.Palette, opts ...focus.Option) (TrueFocus, error) {
	events := make(chan int, 1)
	notify := func(i int) {
		select {
		case events <- i:
		default:
			// The host has not caught up; it reads CurrentIndex on receipt.
		}
	}

	anim, err := focus.New(cfg, append(opts, focus.WithOnAdvance(notify))...)
	if err != nil {
		return TrueFocus{}, err
	}

	m := TrueFocus{
		id:        nextFocusID(),
		anim:      anim,
		words:     anim.Words(),
		blur:      cfg.BlurIntensity,
		progress:  1,
		events:    events,
		done:      make(chan struct{}),
		closeOnce: &sync.Once{},
	}
	m.layoutWords()
	m.SetPalette(palette)
	return m, nil
}

func (m *TrueFocus) layoutWords() {
	m.widths = make([]int, len(m.words))
	m.offsets = make([]int, len(m.words))
	col := 0
	for i, w := range m.words {
		m.widths[i] = runewidth.StringWidth(w)
		m.offsets[i] = col + 1 // one cell of margin on each side
		col += m.widths[i] + 2
	}
	m.width = col
}

// SetPalette switches theme colours; highlight colours are re-parsed so
// translucent ones are composited over the new background.
func (m *TrueFocus) SetPalette(p theme.Palette) {
	m.palette = p
	cfg := m.anim.Config()

	var err error
	if m.border, err = p.Parse(cfg.BorderColor); err != nil {
		log.Logger("focus").Warn("border colour not understood, using accent", "colour", cfg.BorderColor, "err", err)
		m.border = p.Accent
	}
	if m.glow, err = p.Parse(cfg.GlowColor); err != nil {
		log.Logger("focus").Warn("glow colour not understood, using background", "colour", cfg.GlowColor, "err", err)
		m.glow = p.Background
	}
}

// SetHighlightColors replaces the border and glow colours.
func (m *TrueFocus) SetHighlightColors(border, glow colorful.Color) {
	m.border = border
	m.glow = glow
}

// Place tells the component where its top-left cell is on screen and
// measures the frame for the current word.
func (m *TrueFocus) Place(x, y int) {
	m.placed = true
	m.originX = x
	m.originY = y
	m.measure()
}

// Start starts the animator and returns the command that listens for its
// advances.
func (m TrueFocus) Start() tea.Cmd {
	m.anim.Start()
	log.Logger("focus").Debug("animator started", "words", len(m.words), "period", m.anim.Period())
	return m.listen()
}

// Close stops the animator and releases the listener. Safe to call twice.
func (m TrueFocus) Close() error {
	m.closeOnce.Do(func() {
		close(m.done)
		log.Logger("focus").Debug("animator stopped")
	})
	return m.anim.Close()
}

func (m TrueFocus) listen() tea.Cmd {
	id, events, done := m.id, m.events, m.done
	return func() tea.Msg {
		select {
		case i := <-events:
			return FocusAdvancedMsg{id: id, Index: i}
		case <-done:
			return nil
		}
	}
}

func (m TrueFocus) nextFrame() tea.Cmd {
	id, tag := m.id, m.frameTag
	return tea.Tick(FrameInterval, func(time.Time) tea.Msg {
		return focusFrameMsg{id: id, tag: tag}
	})
}

// Update handles advance and frame messages addressed to this component.
func (m TrueFocus) Update(msg tea.Msg) (TrueFocus, tea.Cmd) {
	switch msg := msg.(type) {
	case FocusAdvancedMsg:
		if msg.id != m.id {
			return m, nil
		}
		if m.anim.CurrentIndex() == m.active {
			// One-word sentence or a coalesced full wrap: the focus did not move.
			return m, m.listen()
		}
		m.from = m.Box()
		m.previous = m.active
		m.active = m.anim.CurrentIndex()
		m.progress = 0
		m.frameTag++
		m.measure()
		log.Logger("focus").Debug("advanced", "index", m.active, "word", m.words[m.active])
		return m, tea.Batch(m.listen(), m.nextFrame())

	case focusFrameMsg:
		if msg.id != m.id || msg.tag != m.frameTag || m.progress >= 1 {
			return m, nil
		}
		step := float64(FrameInterval) / float64(m.anim.Config().TransitionDuration)
		m.progress = math.Min(1, m.progress+step)
		if m.progress < 1 {
			return m, m.nextFrame()
		}
		return m, nil
	}
	return m, nil
}

// wordRect returns the absolute bounds of word i, or nil before placement.
func (m TrueFocus) wordRect(i int) *focus.Rect {
	if !m.placed || i < 0 || i >= len(m.words) {
		return nil
	}
	return &focus.Rect{
		Left:   float64(m.originX + m.offsets[i]),
		Top:    float64(m.originY + 1),
		Width:  float64(m.widths[i]),
		Height: 1,
	}
}

func (m TrueFocus) containerRect() *focus.Rect {
	if !m.placed {
		return nil
	}
	return &focus.Rect{
		Left:   float64(m.originX),
		Top:    float64(m.originY),
		Width:  float64(m.width),
		Height: TrueFocusHeight,
	}
}

func (m *TrueFocus) measure() {
	if !m.tracker.Track(m.wordRect(m.active), m.containerRect()) {
		log.Logger("focus").Debug("measurement unavailable, keeping previous frame", "index", m.active)
		return
	}
	if !m.from.IsZero() {
		return
	}
	// First measurement: appear in place instead of sliding in from the origin.
	m.from = m.tracker.Box()
}

// Box is the frame rectangle currently drawn, relative to the component.
func (m TrueFocus) Box() focus.HighlightBox {
	return m.from.Lerp(m.tracker.Box(), easeOut(m.progress))
}

// Active returns the focused word index.
func (m TrueFocus) Active() int { return m.active }

// Progress returns the transition progress in [0, 1].
func (m TrueFocus) Progress() float64 { return m.progress }

// Width returns the rendered width in cells.
func (m TrueFocus) Width() int { return m.width }

// Animator exposes the underlying animator.
func (m TrueFocus) Animator() *focus.Animator { return m.anim }

func easeOut(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// fade returns how far word i is faded toward the background.
func (m TrueFocus) fade(i int) float64 {
	full := theme.BlurAmount(m.blur)
	switch i {
	case m.active:
		return full * (1 - m.progress)
	case m.previous:
		return full * m.progress
	}
	return full
}

// View renders three rows: the top of the frame, the words, and the bottom
// of the frame.
func (m TrueFocus) View() string {
	borderStyle := lipgloss.NewStyle().Foreground(theme.Color(m.border))

	var mid strings.Builder
	box := m.Box()
	left := int(math.Round(box.X)) - 1
	right := int(math.Round(box.X+box.Width))
	settled := m.progress >= 1 && m.tracker.Measured()

	col := 0
	for i, w := range m.words {
		style := lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Color(m.palette.Fade(m.palette.Text, m.fade(i))))
		if i == m.active && settled {
			style = style.Background(theme.Color(m.glow))
		}

		mid.WriteString(m.marginCell(col, left, right, settled, borderStyle))
		mid.WriteString(style.Render(w))
		col += 1 + m.widths[i]
		mid.WriteString(m.marginCell(col, left, right, settled, borderStyle))
		col++
	}

	if !m.tracker.Measured() {
		blank := strings.Repeat(" ", m.width)
		return lipgloss.JoinVertical(lipgloss.Left, blank, mid.String(), blank)
	}

	top := frameRow(m.width, left, right, "╭", "─", "╮")
	bottom := frameRow(m.width, left, right, "╰", "─", "╯")
	return lipgloss.JoinVertical(lipgloss.Left,
		colorFrame(top, left, right, borderStyle),
		mid.String(),
		colorFrame(bottom, left, right, borderStyle),
	)
}

func (m TrueFocus) marginCell(col, left, right int, settled bool, style lipgloss.Style) string {
	if settled && (col == left || col == right) {
		return style.Render("│")
	}
	return " "
}

// frameRow draws one horizontal edge of the frame between columns left and
// right, clipped to width.
func frameRow(width, left, right int, start, fill, end string) []string {
	cells := make([]string, width)
	for c := range cells {
		switch {
		case c == left:
			cells[c] = start
		case c == right:
			cells[c] = end
		case c > left && c < right:
			cells[c] = fill
		default:
			cells[c] = " "
		}
	}
	return cells
}

func colorFrame(cells []string, left, right int, style lipgloss.Style) string {
	if left < 0 {
		left = 0
	}
	if right >= len(cells) {
		right = len(cells) - 1
	}
	if left > right {
		return strings.Join(cells, "")
	}
	return strings.Join(cells[:left], "") +
		style.Render(strings.Join(cells[left:right+1], "")) +
		strings.Join(cells[right+1:], "")
}
