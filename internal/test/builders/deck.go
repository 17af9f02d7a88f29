package builders

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/fredcamaral/declaim/internal/domain/entities"
)

// DeckBuilder helps build Deck entities for testing
type DeckBuilder struct {
	deck *entities.Deck
}

// NewDeckBuilder creates a new deck builder with sensible defaults
func NewDeckBuilder() *DeckBuilder {
	return &DeckBuilder{
		deck: &entities.Deck{
			Title:      "Test Deck",
			SourcePath: "/tmp/test-deck.md",
		},
	}
}

// WithTitle sets the deck title
func (b *DeckBuilder) WithTitle(title string) *DeckBuilder {
	b.deck.Title = title
	return b
}

// WithSourcePath sets the deck source path
func (b *DeckBuilder) WithSourcePath(path string) *DeckBuilder {
	b.deck.SourcePath = path
	return b
}

// WithSlide appends a slide built from the given blocks
func (b *DeckBuilder) WithSlide(blocks ...entities.Block) *DeckBuilder {
	b.deck.Slides = append(b.deck.Slides, entities.Slide{
		ID:     uuid.NewString(),
		Index:  len(b.deck.Slides),
		Blocks: blocks,
	})
	return b
}

// WithSlideCount appends n slides each holding one html block
func (b *DeckBuilder) WithSlideCount(n int) *DeckBuilder {
	for i := 0; i < n; i++ {
		b.WithSlide(entities.HTMLBlock{Content: "<p>Slide " + strconv.Itoa(len(b.deck.Slides)+1) + "</p>"})
	}
	return b
}

// Build returns the constructed deck
func (b *DeckBuilder) Build() *entities.Deck {
	return b.deck
}
