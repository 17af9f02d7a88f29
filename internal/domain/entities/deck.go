package entities

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Deck represents a complete parsed presentation: the ordered slides plus
// the metadata the render and serve layers need.
type Deck struct {
	// Title is the display title, derived from the source file name
	Title string `json:"title"`

	// SourcePath is the absolute path of the root deck file
	SourcePath string `json:"sourcePath,omitempty"`

	// Slides contains all slides in document order
	Slides []Slide `json:"slides"`
}

// SlideCount returns the total number of slides
func (d *Deck) SlideCount() int {
	return len(d.Slides)
}

// SlideByIndex returns a slide by its index (0-based)
func (d *Deck) SlideByIndex(index int) (*Slide, error) {
	if index < 0 || index >= len(d.Slides) {
		return nil, fmt.Errorf("slide index %d out of range (0-%d)", index, len(d.Slides)-1)
	}
	return &d.Slides[index], nil
}

// Validate ensures every slide in the deck is well formed
func (d *Deck) Validate() error {
	for i := range d.Slides {
		if err := d.Slides[i].Validate(); err != nil {
			return fmt.Errorf("slide %d validation failed: %w", i+1, err)
		}
	}
	return nil
}

// GlobalBackground returns the last global_background block in the deck,
// or the empty string when none is present. Later directives win.
func (d *Deck) GlobalBackground() string {
	bg := ""
	for _, s := range d.Slides {
		for _, b := range s.Blocks {
			if g, ok := b.(GlobalBackgroundBlock); ok {
				bg = g.Content
			}
		}
	}
	return bg
}

// Stylesheets returns every custom_css payload in document order.
func (d *Deck) Stylesheets() []string {
	var sheets []string
	for _, s := range d.Slides {
		for _, b := range s.Blocks {
			if c, ok := b.(CustomCSSBlock); ok {
				sheets = append(sheets, c.Content)
			}
		}
	}
	return sheets
}

// TitleFromPath derives a human-readable deck title from a file name,
// e.g. "intro-to-go.md" becomes "Intro To Go".
func TitleFromPath(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	if strings.TrimSpace(base) == "" {
		return "Untitled"
	}
	return cases.Title(language.English).String(base)
}
