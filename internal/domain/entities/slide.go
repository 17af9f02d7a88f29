package entities

import "errors"

// Slide represents a single slide in a deck
type Slide struct {
	// ID is a unique identifier for the slide
	ID string `json:"id,omitempty"`

	// Index is the slide position in the deck (0-based)
	Index int `json:"index"`

	// Blocks contains the slide's typed content in document order
	Blocks []Block `json:"blocks"`
}

// Validate ensures the slide is well formed
func (s *Slide) Validate() error {
	if len(s.Blocks) == 0 {
		return errors.New("slide must have at least one block")
	}
	if s.Index < 0 {
		return errors.New("slide index must be non-negative")
	}
	for _, b := range s.Blocks {
		if b.Type() == BlockTypeSeparator {
			return errors.New("separator blocks must not survive partitioning")
		}
	}
	return nil
}

// IsEmpty reports whether the slide carries no blocks. Empty slides exist
// only transiently between separators and are discarded before a deck is
// returned.
func (s *Slide) IsEmpty() bool {
	return len(s.Blocks) == 0
}

// HasErrors reports whether any block on the slide is a diagnostic.
func (s *Slide) HasErrors() bool {
	for _, b := range s.Blocks {
		if b.Type() == BlockTypeError {
			return true
		}
	}
	return false
}
