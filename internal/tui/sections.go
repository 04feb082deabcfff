package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/krisnawm/folio/internal/content"
	"github.com/krisnawm/folio/internal/tui/bigchar"
	"github.com/mattn/go-runewidth"
)

const (
	maxPageWidth = 88
	titleRows    = 4
	twoColumnMin = 64 // narrowest page that still fits two skill cards per row
)

// page is the rendered portfolio plus the positions the app needs to
// navigate it.
type page struct {
	content string
	anchors []int // first line of each section, in content.Sections order

	focusX int // top-left cell of the word-focus header
	focusY int

	linkLines []int // line of each selectable link
}

// pageInput is everything the page is rendered from.
type pageInput struct {
	portfolio *content.Portfolio
	styles    Styles
	title     *bigchar.Renderer // nil renders the name as plain bold text
	width     int

	focusView  string
	focusWidth int

	links    []content.Link
	selected int
}

type pageBuilder struct {
	lines  []string
	margin string
}

func (b *pageBuilder) add(block string) {
	for _, l := range strings.Split(block, "\n") {
		b.lines = append(b.lines, b.margin+l)
	}
}

func (b *pageBuilder) blank() {
	b.lines = append(b.lines, "")
}

func (b *pageBuilder) line() int {
	return len(b.lines)
}

func renderPage(in pageInput) page {
	width := min(in.width-4, maxPageWidth)
	if width < 20 {
		width = 20
	}
	margin := max((in.width-width)/2, 0)

	b := &pageBuilder{margin: strings.Repeat(" ", margin)}
	pg := page{anchors: make([]int, len(content.Sections))}
	s := in.styles
	p := in.portfolio

	// Hero
	pg.anchors[content.SectionHero] = b.line()
	b.blank()
	b.add(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderTitle(in, width)))
	b.blank()

	pad := max((width-in.focusWidth)/2, 0)
	pg.focusX = margin + pad
	pg.focusY = b.line()
	b.add(indent(in.focusView, pad))
	b.blank()

	if p.Quote != "" {
		b.add(s.Quote.Width(width).Render(wordWrap(p.Quote, width-8)))
		b.blank()
	}
	if len(p.Links) > 0 {
		b.add(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderLinkRow(s, p.Links, in.selected)))
		b.blank()
	}

	// About
	b.add(s.Divider.Render(strings.Repeat("─", width)))
	pg.anchors[content.SectionAbout] = b.line()
	b.add(s.SectionTitle.Render("About Me"))
	if p.About != "" {
		b.add(s.Body.Render(wordWrap(p.About, width)))
	}
	b.blank()

	// Skills
	b.add(s.Divider.Render(strings.Repeat("─", width)))
	pg.anchors[content.SectionSkills] = b.line()
	b.add(s.SectionTitle.Render("Skills & Tools"))
	b.add(renderSkills(s, p.Skills, width))
	b.blank()

	// Projects
	b.add(s.Divider.Render(strings.Repeat("─", width)))
	pg.anchors[content.SectionProjects] = b.line()
	b.add(s.SectionTitle.Render("Projects"))
	for _, pr := range p.Projects {
		b.add(renderProject(s, pr, width))
	}
	b.blank()

	// Contact
	b.add(s.Divider.Render(strings.Repeat("─", width)))
	pg.anchors[content.SectionContact] = b.line()
	b.add(s.SectionTitle.Render("Contact"))
	if p.Contact.Intro != "" {
		b.add(s.Body.Render(wordWrap(p.Contact.Intro, width)))
		b.blank()
	}
	pg.linkLines = make([]int, len(in.links))
	for i, l := range in.links {
		pg.linkLines[i] = b.line()
		b.add(renderLinkLine(s, l, i == in.selected))
	}
	b.blank()
	b.add(s.Footer.Width(width).Render("© " + p.Name))

	pg.content = strings.Join(b.lines, "\n")
	return pg
}

func renderTitle(in pageInput, width int) string {
	name := in.portfolio.Name
	if in.title != nil {
		if art := in.title.Render(name, titleRows, width); art != "" {
			return in.styles.Title.Render(art)
		}
	}
	return in.styles.Title.Render(strings.ToUpper(name))
}

// renderLinkRow draws the hero links on one line. Hero links come first in
// the selectable list, so index i of links is selectable index i.
func renderLinkRow(s Styles, links []content.Link, selected int) string {
	parts := make([]string, len(links))
	for i, l := range links {
		style := s.Link
		if i == selected {
			style = s.LinkSelected
		}
		parts[i] = style.Render(l.Label)
	}
	return strings.Join(parts, s.Divider.Render("·"))
}

func renderLinkLine(s Styles, l content.Link, selected bool) string {
	marker := "  "
	style := s.Link
	if selected {
		marker = s.LinkSelected.UnsetPadding().UnsetUnderline().Render("›") + " "
		style = s.LinkSelected
	}
	return marker + style.Render(l.Label) + " " + s.URL.Render(l.URL)
}

func renderSkills(s Styles, skills []content.Skill, width int) string {
	cols := 1
	if width >= twoColumnMin {
		cols = 2
	}
	// Card width excludes the border, which adds one cell on each side.
	cardWidth := (width-(cols-1))/cols - 2

	cards := make([]string, len(skills))
	for i, sk := range skills {
		body := s.CardTitle.Render(sk.Name)
		if sk.Description != "" {
			body += "\n" + s.Body.Render(wordWrap(sk.Description, cardWidth-2))
		}
		cards[i] = s.Card.Width(cardWidth).Render(body)
	}

	var rows []string
	for i := 0; i < len(cards); i += cols {
		row := cards[i]
		for j := i + 1; j < i+cols && j < len(cards); j++ {
			row = lipgloss.JoinHorizontal(lipgloss.Top, row, " ", cards[j])
		}
		rows = append(rows, row)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderProject(s Styles, pr content.Project, width int) string {
	inner := width - 4
	parts := []string{s.CardTitle.Render(pr.Title)}
	if pr.Summary != "" {
		parts = append(parts, s.Body.Render(wordWrap(pr.Summary, inner)))
	}
	for _, a := range pr.Analyses {
		parts = append(parts, "", s.Label.Render(a.Title))
		if a.Summary != "" {
			parts = append(parts, s.Body.Render(wordWrap(a.Summary, inner)))
		}
	}
	if pr.Link != nil {
		parts = append(parts, "", s.Link.UnsetPadding().Render("↗ "+pr.Link.Label), s.URL.Render(pr.Link.URL))
	}
	return s.Card.Width(width - 2).Render(strings.Join(parts, "\n"))
}

func indent(block string, n int) string {
	if n <= 0 {
		return block
	}
	pad := strings.Repeat(" ", n)
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}

func wordWrap(s string, width int) string {
	if width <= 0 {
		width = 60
	}
	var lines []string
	var currentLine strings.Builder
	currentWidth := 0

	for _, word := range strings.Fields(s) {
		wordWidth := runewidth.StringWidth(word)
		if currentWidth+wordWidth+1 > width && currentWidth > 0 {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
			currentWidth = 0
		}
		if currentWidth > 0 {
			currentLine.WriteString(" ")
			currentWidth++
		}
		currentLine.WriteString(word)
		currentWidth += wordWidth
	}
	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}
	return strings.Join(lines, "\n")
}
