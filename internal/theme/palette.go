// Package theme resolves the demo colours for the current light or dark
// background and caches them until the theme changes.
package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Swatch names used by the demos.
const (
	Blue   = "blue"
	Green  = "green"
	Orange = "orange"
	Purple = "purple"
	Red    = "red"
	Accent = "accent"
	Text   = "text"
	Muted  = "muted"
	Faint  = "faint"
)

var swatches = map[string]lipgloss.AdaptiveColor{
	Blue:   {Light: "#2563EB", Dark: "#60A5FA"},
	Green:  {Light: "#16A34A", Dark: "#4ADE80"},
	Orange: {Light: "#EA580C", Dark: "#FF8C00"},
	Purple: {Light: "#7C3AED", Dark: "#A78BFA"},
	Red:    {Light: "#A00000", Dark: "#FF8080"},
	Accent: {Light: "#FF5F1F", Dark: "#FF8C00"},
	Text:   {Light: "#333333", Dark: "#FFFFFF"},
	Muted:  {Light: "#555555", Dark: "#BBBBBB"},
	Faint:  {Light: "#999999", Dark: "#666666"},
}

const fallback = lipgloss.Color("#000000")

// Palette hands out resolved colours. It is not safe for concurrent use;
// the ui goroutine owns it.
type Palette struct {
	dark   bool
	cache  map[string]lipgloss.Color
	misses int
}

// New returns a palette for the given background.
func New(dark bool) *Palette {
	return &Palette{dark: dark}
}

// Detect queries the terminal background.
func Detect() *Palette {
	return New(lipgloss.HasDarkBackground())
}

// Dark reports whether the dark variants are in use.
func (p *Palette) Dark() bool { return p.dark }

// Name is "dark" or "light".
func (p *Palette) Name() string {
	if p.dark {
		return "dark"
	}
	return "light"
}

// Toggle flips the background and drops the cache.
func (p *Palette) Toggle() {
	p.dark = !p.dark
	p.Invalidate()
}

// Invalidate drops every resolved colour; the next lookup re-reads the
// swatch table.
func (p *Palette) Invalidate() {
	p.cache = nil
}

// Color resolves a swatch. Unknown names resolve to black.
func (p *Palette) Color(name string) lipgloss.Color {
	if c, ok := p.cache[name]; ok {
		return c
	}
	if p.cache == nil {
		p.read()
	}
	if c, ok := p.cache[name]; ok {
		return c
	}
	return fallback
}

func (p *Palette) read() {
	p.misses++
	p.cache = make(map[string]lipgloss.Color, len(swatches))
	for name, sw := range swatches {
		if p.dark {
			p.cache[name] = lipgloss.Color(sw.Dark)
		} else {
			p.cache[name] = lipgloss.Color(sw.Light)
		}
	}
}

// Style is a foreground style in the named colour.
func (p *Palette) Style(name string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Color(name))
}
