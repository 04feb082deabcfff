package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/krisnawm/folio/internal/clipboard"
	"github.com/krisnawm/folio/internal/content"
	"github.com/krisnawm/folio/internal/focus"
	"github.com/krisnawm/folio/internal/log"
	"github.com/krisnawm/folio/internal/tui/bigchar"
	"github.com/krisnawm/folio/internal/tui/components"
	"github.com/krisnawm/folio/internal/tui/theme"
)

// statusTimeout is how long copy feedback stays on the status line.
const statusTimeout = 2 * time.Second

// Options configures the App.
type Options struct {
	Portfolio *content.Portfolio
	Focus     focus.Config
	Dark      bool

	// Highlight returns the border and glow colours for a theme. When nil
	// the colours in Focus are used for both themes.
	Highlight func(dark bool) (border, glow string)

	Clipboard    clipboard.Writer  // defaults to the system clipboard
	Title        *bigchar.Renderer // nil draws the name as plain text
	FocusOptions []focus.Option
}

type copiedMsg struct {
	label string
	err   error
}

type clearStatusMsg struct{}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// App is the portfolio page.
type App struct {
	portfolio *content.Portfolio
	links     []content.Link
	highlight func(dark bool) (border, glow string)
	clip      clipboard.Writer
	title     *bigchar.Renderer

	dark   bool
	styles Styles
	keys   keyMap
	help   help.Model

	focus    components.TrueFocus
	viewport viewport.Model
	page     page
	selected int

	status    string
	statusErr bool
	showHelp  bool

	width  int
	height int
	ready  bool
}

// NewApp builds the page. The focus animator does not run until Init.
func NewApp(opts Options) (App, error) {
	if opts.Portfolio == nil {
		opts.Portfolio = content.Default()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.System{}
	}

	palette := theme.For(opts.Dark)
	tf, err := components.NewTrueFocus(opts.Focus, palette, opts.FocusOptions...)
	if err != nil {
		return App{}, fmt.Errorf("word focus: %w", err)
	}

	m := App{
		portfolio: opts.Portfolio,
		links:     opts.Portfolio.ContactLinks(),
		highlight: opts.Highlight,
		clip:      opts.Clipboard,
		title:     opts.Title,
		dark:      opts.Dark,
		styles:    NewStyles(palette),
		keys:      defaultKeyMap(),
		help:      help.New(),
		focus:     tf,
	}
	m.applyHighlight()
	return m, nil
}

// Init starts the word-focus animation.
func (m App) Init() tea.Cmd {
	return m.focus.Start()
}

// Close stops the animation. The program calls it after Run returns.
func (m App) Close() error {
	return m.focus.Close()
}

// Update handles messages
func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case copiedMsg:
		if msg.err != nil {
			log.Warn("copy failed", "link", msg.label, "err", msg.err)
			m.status = "Copy failed: " + msg.err.Error()
			m.statusErr = true
		} else {
			log.Info("link copied", "link", msg.label)
			m.status = "Copied " + msg.label
			m.statusErr = false
		}
		return m, clearStatusAfter(statusTimeout)

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.focus, cmd = m.focus.Update(msg)
	m.refresh()
	return m, cmd
}

func (m App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help overlay - any key closes it
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if err := m.focus.Close(); err != nil {
			log.Error("closing word focus", "err", err)
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		m.setDark(!m.dark)
		return m, nil

	case key.Matches(msg, m.keys.NextLink):
		m.selectLink(m.selected + 1)
		return m, nil

	case key.Matches(msg, m.keys.PrevLink):
		m.selectLink(m.selected - 1)
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		return m, m.copySelected()

	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		return m, nil
	}

	for i, b := range m.keys.Sections {
		if key.Matches(msg, b) {
			m.JumpTo(content.Sections[i])
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *App) resize(width, height int) {
	m.width = width
	m.height = height
	vpHeight := max(height-1, 1) // last row is the status line

	if !m.ready {
		m.viewport = viewport.New(width, vpHeight)
		m.viewport.KeyMap.Up = m.keys.Up
		m.viewport.KeyMap.Down = m.keys.Down
		m.viewport.KeyMap.PageUp = m.keys.PageUp
		m.viewport.KeyMap.PageDown = m.keys.PageDown
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = vpHeight
	}
	m.help.Width = width

	// Render once for the layout, then again with the frame measured.
	m.refresh()
	m.focus.Place(m.page.focusX, m.page.focusY)
	m.refresh()
	log.Debug("layout", "width", width, "height", height, "focus_x", m.page.focusX, "focus_y", m.page.focusY)
}

// refresh re-renders the page into the viewport, keeping the scroll offset.
func (m *App) refresh() {
	if !m.ready {
		return
	}
	m.page = renderPage(pageInput{
		portfolio:  m.portfolio,
		styles:     m.styles,
		title:      m.title,
		width:      m.width,
		focusView:  m.focus.View(),
		focusWidth: m.focus.Width(),
		links:      m.links,
		selected:   m.selected,
	})
	offset := m.viewport.YOffset
	m.viewport.SetContent(m.page.content)
	m.viewport.SetYOffset(offset)
}

func (m *App) setDark(dark bool) {
	m.dark = dark
	palette := theme.For(dark)
	m.styles = NewStyles(palette)
	m.focus.SetPalette(palette)
	m.applyHighlight()
	m.refresh()
	log.Debug("theme changed", "dark", dark)
}

func (m *App) applyHighlight() {
	if m.highlight == nil {
		return
	}
	p := m.styles.Palette
	border, glow := m.highlight(m.dark)
	m.focus.SetHighlightColors(p.ParseOr(border, p.Accent), p.ParseOr(glow, p.Background))
}

func (m *App) selectLink(i int) {
	n := len(m.links)
	if n == 0 {
		return
	}
	m.selected = ((i % n) + n) % n
	m.refresh()

	// Keep the selected line of the contact list on screen.
	line := m.page.linkLines[m.selected]
	switch {
	case line < m.viewport.YOffset:
		m.viewport.SetYOffset(line)
	case line >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}

func (m App) copySelected() tea.Cmd {
	if len(m.links) == 0 {
		return nil
	}
	l := m.links[m.selected]
	clip := m.clip
	return func() tea.Msg {
		return copiedMsg{label: l.Label, err: clip.Write(l.URL)}
	}
}

// JumpTo scrolls the page so section s is at the top.
func (m *App) JumpTo(s content.Section) {
	if !m.ready || int(s) < 0 || int(s) >= len(m.page.anchors) {
		return
	}
	m.viewport.SetYOffset(m.page.anchors[s])
}

// Dark reports whether the dark theme is active.
func (m App) Dark() bool { return m.dark }

// Selected returns the selected link.
func (m App) Selected() (content.Link, bool) {
	if len(m.links) == 0 {
		return content.Link{}, false
	}
	return m.links[m.selected], true
}

// Focus returns the word-focus header.
func (m App) Focus() components.TrueFocus { return m.focus }

// View renders the UI
func (m App) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.viewport.View() + "\n" + m.statusLine()
}

func (m App) statusLine() string {
	switch {
	case m.status != "" && m.statusErr:
		return m.styles.Error.Render(m.status)
	case m.status != "":
		return m.styles.Copied.Render(m.status)
	}
	return m.help.View(m.keys)
}

func (m App) renderHelp() string {
	full := m.help
	full.ShowAll = true

	title := m.styles.CardTitle.Render(m.portfolio.Name)
	body := title + "\n\n" + full.View(m.keys) + "\n\n" +
		m.styles.Help.Italic(true).Render("Press any key to close")

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.styles.HelpBox.Render(body))
}
