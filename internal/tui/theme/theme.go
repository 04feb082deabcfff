// Package theme holds the light and dark palettes and colour helpers for
// the terminal UI.
package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette is the set of colours a theme provides.
type Palette struct {
	Dark       bool
	Background colorful.Color
	Text       colorful.Color // headings and focused words
	SubText    colorful.Color // body copy
	Accent     colorful.Color // links, selection
	Secondary  colorful.Color // section titles
	Muted      colorful.Color // help, separators
	Border     colorful.Color
}

// Light mirrors the page's light gradient (blue-100 through white).
var Light = Palette{
	Background: mustHex("#eff6ff"),
	Text:       mustHex("#1f2937"),
	SubText:    mustHex("#374151"),
	Accent:     mustHex("#2563eb"),
	Secondary:  mustHex("#0e7490"),
	Muted:      mustHex("#6b7280"),
	Border:     mustHex("#cbd5e1"),
}

// Dark mirrors the page's dark gradient (gray-900 through black).
var Dark = Palette{
	Dark:       true,
	Background: mustHex("#111827"),
	Text:       mustHex("#f1faee"),
	SubText:    mustHex("#d1d5db"),
	Accent:     mustHex("#ffe66d"),
	Secondary:  mustHex("#4ecdc4"),
	Muted:      mustHex("#666666"),
	Border:     mustHex("#3d5a80"),
}

// For returns the palette for the dark flag.
func For(dark bool) Palette {
	if dark {
		return Dark
	}
	return Light
}

// Color converts c for lipgloss.
func Color(c colorful.Color) lipgloss.Color {
	return lipgloss.Color(c.Clamped().Hex())
}

// Fade moves c toward the background by amount in [0, 1]. It stands in for
// a blur filter: the stronger the blur, the closer the text gets to the
// page colour.
func (p Palette) Fade(c colorful.Color, amount float64) colorful.Color {
	switch {
	case amount <= 0:
		return c
	case amount > 1:
		amount = 1
	}
	return c.BlendRgb(p.Background, amount)
}

// BlurAmount maps a blur radius to a fade amount. Radius 10 and above fade
// text to the strongest level that is still legible.
func BlurAmount(radius float64) float64 {
	const maxFade = 0.85
	if radius <= 0 {
		return 0
	}
	a := radius / 10 * maxFade
	if a > maxFade {
		a = maxFade
	}
	return a
}

var named = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#008000",
	"lime":    "#00ff00",
	"blue":    "#0000ff",
	"cyan":    "#00ffff",
	"aqua":    "#00ffff",
	"magenta": "#ff00ff",
	"fuchsia": "#ff00ff",
	"yellow":  "#ffff00",
	"orange":  "#ffa500",
	"purple":  "#800080",
	"pink":    "#ffc0cb",
	"teal":    "#008080",
	"navy":    "#000080",
	"gray":    "#808080",
	"grey":    "#808080",
	"silver":  "#c0c0c0",
}

// Parse reads a CSS-style colour: a name, #rgb, #rrggbb, rgb(r,g,b) or
// rgba(r,g,b,a). Translucent colours are composited over the palette
// background.
func (p Palette) Parse(s string) (colorful.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if hex, ok := named[s]; ok {
		s = hex
	}

	switch {
	case strings.HasPrefix(s, "#"):
		if len(s) == 4 {
			s = "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("invalid colour %q: %w", s, err)
		}
		return c, nil
	case strings.HasPrefix(s, "rgba(") || strings.HasPrefix(s, "rgb("):
		return p.parseRGBA(s)
	}
	return colorful.Color{}, fmt.Errorf("unknown colour %q", s)
}

func (p Palette) parseRGBA(s string) (colorful.Color, error) {
	open := strings.IndexByte(s, '(')
	if !strings.HasSuffix(s, ")") {
		return colorful.Color{}, fmt.Errorf("invalid colour %q", s)
	}
	parts := strings.Split(s[open+1:len(s)-1], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return colorful.Color{}, fmt.Errorf("invalid colour %q: want 3 or 4 components", s)
	}

	var rgb [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return colorful.Color{}, fmt.Errorf("invalid colour %q: component %d", s, i)
		}
		rgb[i] = float64(v) / 255
	}
	c := colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]}

	if len(parts) == 4 {
		alpha, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || alpha < 0 || alpha > 1 {
			return colorful.Color{}, fmt.Errorf("invalid colour %q: alpha", s)
		}
		c = p.Background.BlendRgb(c, alpha)
	}
	return c, nil
}

// ParseOr parses s and falls back to def when s is not a colour.
func (p Palette) ParseOr(s string, def colorful.Color) colorful.Color {
	c, err := p.Parse(s)
	if err != nil {
		return def
	}
	return c
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
