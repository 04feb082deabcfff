package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	p := Default()

	if p.Name != "Krisna Wahyu Mauludin" {
		t.Errorf("Name = %q", p.Name)
	}
	if p.Tagline != "Admin Logistik Analis Accounting" {
		t.Errorf("Tagline = %q", p.Tagline)
	}
	if len(p.Skills) != 6 {
		t.Errorf("len(Skills) = %d, want 6", len(p.Skills))
	}
	if len(p.Projects) != 2 {
		t.Fatalf("len(Projects) = %d, want 2", len(p.Projects))
	}
	if len(p.Projects[1].Analyses) != 2 {
		t.Errorf("len(Analyses) = %d, want 2", len(p.Projects[1].Analyses))
	}
	if p.Contact.Email == nil || p.Contact.Email.URL != "mailto:Kress2735@gmail.com" {
		t.Errorf("Contact.Email = %+v", p.Contact.Email)
	}
}

func TestContactLinks(t *testing.T) {
	links := Default().ContactLinks()
	if len(links) != 6 {
		t.Fatalf("len(ContactLinks()) = %d, want 6", len(links))
	}
	if links[0].Label != "TradingView" {
		t.Errorf("first link = %q, want TradingView", links[0].Label)
	}
	if !strings.HasPrefix(links[4].Label, "WhatsApp") {
		t.Errorf("links[4] = %q, want WhatsApp entry", links[4].Label)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"missing name", "tagline: x\n", "name is required"},
		{"name only", "name: Jane\n", "at least one section needs content"},
		{"blank sections", "name: Jane\ntagline: \"  \"\nabout: \"\"\n", "at least one section needs content"},
		{"skill without name", "name: a\nskills:\n  - description: d\n", "skills[0]"},
		{"link without url", "name: a\nlinks:\n  - label: x\n", "links[0]"},
		{"project link without url", "name: a\nprojects:\n  - title: p\n    link: {label: x}\n", "projects[0]: link"},
		{"bad yaml", "name: [", "parsing content"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("Parse() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	doc := "name: Jane\ntagline: Go Rust Zig\nlinks:\n  - label: Site\n    url: https://example.com\n"
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.Name != "Jane" || p.Tagline != "Go Rust Zig" {
		t.Errorf("Load() = %+v", p)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing file succeeded")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	out, err := Default().Marshal()
	if err != nil {
		t.Fatal(err)
	}
	p, err := Parse(out)
	if err != nil {
		t.Fatalf("re-parsing marshaled content: %v", err)
	}
	if p.Name != Default().Name {
		t.Errorf("Name = %q after round trip", p.Name)
	}
}

func TestSectionString(t *testing.T) {
	want := []string{"Hero", "About", "Skills", "Projects", "Contact"}
	for i, s := range Sections {
		if s.String() != want[i] {
			t.Errorf("Sections[%d] = %q, want %q", i, s, want[i])
		}
	}
}
