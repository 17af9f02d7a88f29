package services

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/fredcamaral/declaim/internal/domain/entities"
	"github.com/fredcamaral/declaim/internal/domain/ports"
)

// DeckService implements the parse pipeline: load the root file, segment
// it, classify each segment, and partition the flattened blocks into
// slides. Only a failure to load the root file short-circuits; every
// deeper failure becomes an error block in place, so the rest of the
// document still parses.
type DeckService struct {
	loader    ports.TextLoader
	converter ports.MarkdownConverter
	config    entities.ParserConfig
}

// NewDeckService creates a new deck parsing service
func NewDeckService(loader ports.TextLoader, converter ports.MarkdownConverter, config entities.ParserConfig) *DeckService {
	return &DeckService{
		loader:    loader,
		converter: converter,
		config:    config,
	}
}

// Parse loads and parses the deck rooted at path. A root file that cannot
// be read yields a degenerate one-slide deck carrying the loader's message
// as a single error block.
func (s *DeckService) Parse(ctx context.Context, path string) (*entities.Deck, error) {
	if path == "" {
		return nil, errors.New("deck path cannot be empty")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	deck := &entities.Deck{
		Title:      entities.TitleFromPath(abs),
		SourcePath: abs,
	}

	text, err := s.loader.Load(ctx, abs)
	if err != nil {
		deck.Slides = []entities.Slide{
			{Blocks: []entities.Block{entities.ErrorBlock{Content: err.Error()}}},
		}
		finalize(deck)
		return deck, nil
	}

	var blocks []entities.Block
	for _, seg := range segmentText(text) {
		blocks = append(blocks, s.classify(ctx, seg, s.config.MaxIncludeDepth)...)
	}

	deck.Slides = partition(blocks)
	finalize(deck)
	return deck, nil
}

// finalize assigns slide identities and positions after partitioning.
func finalize(deck *entities.Deck) {
	for i := range deck.Slides {
		deck.Slides[i].ID = uuid.NewString()
		deck.Slides[i].Index = i
	}
}
