// Package content loads the text shown on the portfolio page.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Section identifies a block of the page, in display order.
type Section int

const (
	SectionHero Section = iota
	SectionAbout
	SectionSkills
	SectionProjects
	SectionContact
)

// Sections lists every section in page order.
var Sections = []Section{SectionHero, SectionAbout, SectionSkills, SectionProjects, SectionContact}

func (s Section) String() string {
	switch s {
	case SectionHero:
		return "Hero"
	case SectionAbout:
		return "About"
	case SectionSkills:
		return "Skills"
	case SectionProjects:
		return "Projects"
	case SectionContact:
		return "Contact"
	}
	return fmt.Sprintf("Section(%d)", int(s))
}

// Link is a labelled URL.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Skill is one entry of the skills grid.
type Skill struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Analysis is a sub-entry of a project (e.g. one chart write-up).
type Analysis struct {
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
}

// Project is a card in the projects section.
type Project struct {
	Title    string     `yaml:"title"`
	Summary  string     `yaml:"summary,omitempty"`
	Link     *Link      `yaml:"link,omitempty"`
	Analyses []Analysis `yaml:"analyses,omitempty"`
}

// Contact holds the contact section.
type Contact struct {
	Intro    string `yaml:"intro"`
	WhatsApp *Link  `yaml:"whatsapp,omitempty"`
	Email    *Link  `yaml:"email,omitempty"`
}

// Portfolio is the whole page.
type Portfolio struct {
	Name     string    `yaml:"name"`
	Tagline  string    `yaml:"tagline"` // animated by the word-focus header
	Quote    string    `yaml:"quote,omitempty"`
	About    string    `yaml:"about,omitempty"`
	Skills   []Skill   `yaml:"skills,omitempty"`
	Projects []Project `yaml:"projects,omitempty"`
	Contact  Contact   `yaml:"contact"`
	Links    []Link    `yaml:"links,omitempty"`
}

// Default returns the built-in portfolio.
func Default() *Portfolio {
	p, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("content: built-in portfolio is invalid: %v", err))
	}
	return p
}

// DefaultYAML returns the raw built-in document, used as the init template.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}

// Load reads a portfolio from a YAML file.
func Load(path string) (*Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content file: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates a portfolio document.
func Parse(data []byte) (*Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing content: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks that the portfolio has something to show.
func (p *Portfolio) Validate() error {
	var errs []error
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if !p.hasContent() {
		errs = append(errs, errors.New("at least one section needs content"))
	}
	for i, s := range p.Skills {
		if strings.TrimSpace(s.Name) == "" {
			errs = append(errs, fmt.Errorf("skills[%d]: name is required", i))
		}
	}
	for i, pr := range p.Projects {
		if strings.TrimSpace(pr.Title) == "" {
			errs = append(errs, fmt.Errorf("projects[%d]: title is required", i))
		}
		if pr.Link != nil && pr.Link.URL == "" {
			errs = append(errs, fmt.Errorf("projects[%d]: link url is required", i))
		}
	}
	for i, l := range p.Links {
		if l.Label == "" || l.URL == "" {
			errs = append(errs, fmt.Errorf("links[%d]: label and url are required", i))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid content: %w", errors.Join(errs...))
	}
	return nil
}

// hasContent reports whether any section beyond the name has text to show.
func (p *Portfolio) hasContent() bool {
	for _, s := range []string{p.Tagline, p.Quote, p.About, p.Contact.Intro} {
		if strings.TrimSpace(s) != "" {
			return true
		}
	}
	return len(p.Skills) > 0 || len(p.Projects) > 0 || len(p.Links) > 0 ||
		p.Contact.WhatsApp != nil || p.Contact.Email != nil
}

// Marshal encodes the portfolio as YAML.
func (p *Portfolio) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshaling content: %w", err)
	}
	return out, nil
}

// ContactLinks returns every link a visitor can act on: the hero links
// followed by the contact section's WhatsApp and email entries.
func (p *Portfolio) ContactLinks() []Link {
	links := append([]Link(nil), p.Links...)
	if p.Contact.WhatsApp != nil {
		links = append(links, Link{Label: "WhatsApp " + p.Contact.WhatsApp.Label, URL: p.Contact.WhatsApp.URL})
	}
	if p.Contact.Email != nil {
		links = append(links, Link{Label: "Email " + p.Contact.Email.Label, URL: p.Contact.Email.URL})
	}
	return links
}
