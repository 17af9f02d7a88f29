package ports

import (
	"context"

	"github.com/fredcamaral/declaim/internal/domain/entities"
)

// DeckRenderer renders a parsed deck into a standalone HTML page
type DeckRenderer interface {
	RenderDeck(ctx context.Context, deck *entities.Deck) ([]byte, error)
}
