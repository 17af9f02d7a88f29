package converter

import (
	"bytes"
	"context"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/fredcamaral/declaim/internal/domain/ports"
)

// GoldmarkConverter implements the MarkdownConverter interface using
// Goldmark, with optional bluemonday sanitization of the rendered HTML.
type GoldmarkConverter struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewGoldmarkConverter creates a new Goldmark-based markdown converter.
// When sanitize is true, rendered HTML is run through a UGC sanitization
// policy before being returned.
func NewGoldmarkConverter(sanitize bool) *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,           // GitHub Flavored Markdown
			extension.Typographer,   // Smart punctuation
			extension.Table,         // Tables
			extension.Strikethrough, // ~~strikethrough~~
			extension.TaskList,      // - [ ] task lists
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(), // Allow raw HTML; sanitization is a separate pass
		),
	)

	c := &GoldmarkConverter{md: md}
	if sanitize {
		c.policy = bluemonday.UGCPolicy()
	}
	return c
}

// Convert renders a markdown string to HTML. Rejected input is reported
// as a *ports.ConvertError carrying the converter's messages.
func (c *GoldmarkConverter) Convert(ctx context.Context, markdown string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := c.md.Convert([]byte(markdown), &buf); err != nil {
		return "", &ports.ConvertError{Messages: []string{err.Error()}}
	}

	out := buf.String()
	if c.policy != nil {
		out = c.policy.Sanitize(out)
	}
	return out, nil
}
