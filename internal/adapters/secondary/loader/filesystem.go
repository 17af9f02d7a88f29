package loader

import (
	"context"
	"fmt"
	"os"

	"github.com/fredcamaral/declaim/internal/domain/ports"
)

// FileSystemLoader implements the TextLoader interface over the real
// filesystem. Any read failure is reported as not-found; the classifier
// does not distinguish loader failures further.
type FileSystemLoader struct{}

// NewFileSystemLoader creates a new filesystem-backed text loader
func NewFileSystemLoader() *FileSystemLoader {
	return &FileSystemLoader{}
}

// Load reads the file at path and returns its contents as text.
func (l *FileSystemLoader) Load(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// #nosec G304 - paths come from deck directives authored by the user running the tool
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ports.ErrNotFound, path)
	}

	return string(data), nil
}
