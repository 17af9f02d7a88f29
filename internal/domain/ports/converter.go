package ports

import (
	"context"
	"strings"
)

// MarkdownConverter renders a markdown string to HTML. A conversion
// failure is reported as a *ConvertError carrying the converter's
// human-readable messages.
type MarkdownConverter interface {
	Convert(ctx context.Context, markdown string) (string, error)
}

// ConvertError aggregates the messages a converter produced while
// rejecting its input.
type ConvertError struct {
	Messages []string
}

// Error implements the error interface
func (e *ConvertError) Error() string {
	return strings.Join(e.Messages, "\n")
}
