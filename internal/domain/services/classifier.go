package services

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/fredcamaral/declaim/internal/domain/entities"
	"github.com/fredcamaral/declaim/internal/domain/ports"
)

// classify maps one segment to its typed blocks. Every case yields exactly
// one block except include expansion, which splices in the classified
// blocks of the included file. depth is the remaining include nesting
// budget.
func (s *DeckService) classify(ctx context.Context, seg Segment, depth int) []entities.Block {
	switch seg.Kind {
	case SegmentSeparator:
		return []entities.Block{entities.SeparatorBlock{}}
	case SegmentProse:
		return []entities.Block{s.classifyProse(ctx, seg.Text)}
	case SegmentDirective:
		return s.classifyDirective(ctx, seg.Text, depth)
	default:
		return []entities.Block{entities.ErrorBlock{Content: "unknown segment"}}
	}
}

// classifyProse runs a prose segment through the markdown converter.
func (s *DeckService) classifyProse(ctx context.Context, text string) entities.Block {
	html, err := s.converter.Convert(ctx, text)
	if err != nil {
		var ce *ports.ConvertError
		if errors.As(err, &ce) {
			return entities.ErrorBlock{Content: strings.Join(ce.Messages, "\n")}
		}
		return entities.ErrorBlock{Content: err.Error()}
	}
	return entities.HTMLBlock{Content: html}
}

// classifyDirective dispatches one directive line on its command name.
func (s *DeckService) classifyDirective(ctx context.Context, line string, depth int) []entities.Block {
	fields := strings.Fields(strings.TrimPrefix(line, "!"))
	name := fields[0]
	args := fields[1:]

	switch name {
	case "code":
		return []entities.Block{s.classifyCode(ctx, args)}
	case "include":
		return s.classifyInclude(ctx, strings.Join(args, " "), depth)
	case "header":
		return []entities.Block{entities.HeaderBlock{Content: strings.Join(args, " ")}}
	case "footer":
		return []entities.Block{entities.FooterBlock{Content: strings.Join(args, " ")}}
	case "comment":
		return []entities.Block{entities.CommentBlock{Content: strings.Join(args, " ")}}
	case "custom_css":
		return []entities.Block{entities.CustomCSSBlock{Content: args[0]}}
	case "global_background":
		return []entities.Block{entities.GlobalBackgroundBlock{Content: args[0]}}
	case "slide_background":
		return []entities.Block{entities.SlideBackgroundBlock{Content: args[0]}}
	case "slide_classes":
		return []entities.Block{entities.SlideClassesBlock{Classes: args}}
	default:
		return []entities.Block{entities.ErrorBlock{
			Content: "wrong command !" + name + " " + strings.Join(args, " "),
		}}
	}
}

// classifyCode handles the !code arity table: one token means file only,
// with language and runner falling back to the configured defaults; three
// tokens is the explicit form.
func (s *DeckService) classifyCode(ctx context.Context, tokens []string) entities.Block {
	var lang, runner string
	switch len(tokens) {
	case 1:
		lang, runner = s.config.DefaultLanguage, s.config.DefaultRunner
	case 3:
		lang, runner = tokens[1], tokens[2]
	default:
		return entities.ErrorBlock{Content: "invalid code parameters " + strings.Join(tokens, " ")}
	}

	path := resolvePath(tokens[0])
	content, err := s.loader.Load(ctx, path)
	if err != nil {
		return entities.ErrorBlock{Content: "Code file not found: " + path}
	}

	return entities.CodeBlock{
		Content:  content,
		Filename: path,
		Language: lang,
		Runner:   runner,
	}
}

// classifyInclude loads the referenced file and splices its classified
// blocks in place. Nesting beyond the configured depth fails closed with
// an error block instead of recursing further.
func (s *DeckService) classifyInclude(ctx context.Context, arg string, depth int) []entities.Block {
	path := resolvePath(arg)

	if depth <= 0 {
		return []entities.Block{entities.ErrorBlock{
			Content: "Include depth exceeded: " + path,
		}}
	}

	text, err := s.loader.Load(ctx, path)
	if err != nil {
		return []entities.Block{entities.ErrorBlock{
			Content: "Included file not found: " + path,
		}}
	}

	var blocks []entities.Block
	for _, seg := range segmentText(text) {
		blocks = append(blocks, s.classify(ctx, seg, depth-1)...)
	}
	return blocks
}

// resolvePath turns a raw directive argument into the absolute path handed
// to the loader: trim, split on whitespace, take the first token. A path
// containing spaces is truncated at the first one; that is deliberate and
// matches the directive grammar.
func resolvePath(raw string) string {
	token := raw
	if fields := strings.Fields(strings.TrimSpace(raw)); len(fields) > 0 {
		token = fields[0]
	}
	abs, err := filepath.Abs(token)
	if err != nil {
		return token
	}
	return abs
}
