package ports

import (
	"context"
	"errors"
)

// ErrNotFound signals that a requested file does not exist or cannot be
// read. The classifier treats every loader failure uniformly as not-found.
var ErrNotFound = errors.New("file not found")

// TextLoader abstracts reading deck source files. Paths handed to a loader
// are already resolved to absolute form.
type TextLoader interface {
	Load(ctx context.Context, path string) (string, error)
}
