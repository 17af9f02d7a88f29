package ports

import (
	"context"

	"github.com/fredcamaral/declaim/internal/domain/entities"
)

// DeckParser is the top-level parse operation: load a root deck file and
// produce the ordered slides. Failures below the root load are embedded in
// the deck as error blocks rather than returned.
type DeckParser interface {
	Parse(ctx context.Context, path string) (*entities.Deck, error)
}

// ConfigLoader loads application configuration from global and local
// sources.
type ConfigLoader interface {
	LoadGlobal(ctx context.Context) (*entities.Config, error)
	LoadLocal(ctx context.Context, dir string) (*entities.Config, error)
}
