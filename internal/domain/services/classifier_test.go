package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fredcamaral/declaim/internal/domain/entities"
	"github.com/fredcamaral/declaim/internal/domain/ports"
)

func newTestService(loader *MockTextLoader, converter *MockMarkdownConverter) *DeckService {
	return NewDeckService(loader, converter, testConfig())
}

func directive(line string) Segment {
	return Segment{Kind: SegmentDirective, Text: line}
}

func TestClassify_Separator(t *testing.T) {
	svc := newTestService(new(MockTextLoader), new(MockMarkdownConverter))

	blocks := svc.classify(context.Background(), Segment{Kind: SegmentSeparator}, 64)
	require.Len(t, blocks, 1)
	assert.Equal(t, entities.SeparatorBlock{}, blocks[0])
}

func TestClassify_Prose(t *testing.T) {
	ctx := context.Background()

	t.Run("converter success becomes html block", func(t *testing.T) {
		converter := new(MockMarkdownConverter)
		converter.On("Convert", mock.Anything, "# Hello").Return("<h1>Hello</h1>", nil)
		svc := newTestService(new(MockTextLoader), converter)

		blocks := svc.classify(ctx, Segment{Kind: SegmentProse, Text: "# Hello"}, 64)
		require.Len(t, blocks, 1)
		assert.Equal(t, entities.HTMLBlock{Content: "<h1>Hello</h1>"}, blocks[0])
	})

	t.Run("converter failure embeds joined messages", func(t *testing.T) {
		converter := new(MockMarkdownConverter)
		converter.On("Convert", mock.Anything, "broken").Return("", &ports.ConvertError{
			Messages: []string{"first problem", "second problem"},
		})
		svc := newTestService(new(MockTextLoader), converter)

		blocks := svc.classify(ctx, Segment{Kind: SegmentProse, Text: "broken"}, 64)
		require.Len(t, blocks, 1)
		assert.Equal(t, entities.ErrorBlock{Content: "first problem\nsecond problem"}, blocks[0])
	})
}

func TestClassify_TextDirectives(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(new(MockTextLoader), new(MockMarkdownConverter))

	t.Run("header footer and comment join all tokens", func(t *testing.T) {
		tests := []struct {
			line string
			want entities.Block
		}{
			{"!header My Deck Title", entities.HeaderBlock{Content: "My Deck Title"}},
			{"!footer page one of  many", entities.FooterBlock{Content: "page one of many"}},
			{"!comment todo tighten this slide", entities.CommentBlock{Content: "todo tighten this slide"}},
		}
		for _, tt := range tests {
			blocks := svc.classify(ctx, directive(tt.line), 64)
			require.Len(t, blocks, 1)
			assert.Equal(t, tt.want, blocks[0])
		}
	})

	t.Run("single-argument directives ignore extra tokens", func(t *testing.T) {
		tests := []struct {
			line string
			want entities.Block
		}{
			{"!custom_css deck.css ignored.css", entities.CustomCSSBlock{Content: "deck.css"}},
			{"!slide_background navy extra", entities.SlideBackgroundBlock{Content: "navy"}},
			{"!global_background linen more stuff", entities.GlobalBackgroundBlock{Content: "linen"}},
		}
		for _, tt := range tests {
			blocks := svc.classify(ctx, directive(tt.line), 64)
			require.Len(t, blocks, 1)
			assert.Equal(t, tt.want, blocks[0])
		}
	})

	t.Run("slide_classes keeps the full token list", func(t *testing.T) {
		blocks := svc.classify(ctx, directive("!slide_classes dark centered wide"), 64)
		require.Len(t, blocks, 1)
		assert.Equal(t, entities.SlideClassesBlock{Classes: []string{"dark", "centered", "wide"}}, blocks[0])
	})

	t.Run("unrecognized command becomes error block", func(t *testing.T) {
		blocks := svc.classify(ctx, directive("!shout very loud"), 64)
		require.Len(t, blocks, 1)
		assert.Equal(t, entities.ErrorBlock{Content: "wrong command !shout very loud"}, blocks[0])
	})
}

func TestClassify_Code(t *testing.T) {
	ctx := context.Background()

	t.Run("single token uses configured defaults", func(t *testing.T) {
		loader := new(MockTextLoader)
		loader.On("Load", mock.Anything, abs(t, "a.py")).Return("print('hi')", nil)
		svc := newTestService(loader, new(MockMarkdownConverter))

		blocks := svc.classify(ctx, directive("!code a.py"), 64)
		require.Len(t, blocks, 1)
		assert.Equal(t, entities.CodeBlock{
			Content:  "print('hi')",
			Filename: abs(t, "a.py"),
			Language: "bash",
			Runner:   "bash",
		}, blocks[0])
	})

	t.Run("three tokens use explicit language and runner", func(t *testing.T) {
		loader := new(MockTextLoader)
		loader.On("Load", mock.Anything, abs(t, "a.py")).Return("print('hi')", nil)
		svc := newTestService(loader, new(MockMarkdownConverter))

		blocks := svc.classify(ctx, directive("!code a.py python python3"), 64)
		require.Len(t, blocks, 1)
		assert.Equal(t, entities.CodeBlock{
			Content:  "print('hi')",
			Filename: abs(t, "a.py"),
			Language: "python",
			Runner:   "python3",
		}, blocks[0])
	})

	t.Run("two tokens is an arity error", func(t *testing.T) {
		svc := newTestService(new(MockTextLoader), new(MockMarkdownConverter))

		blocks := svc.classify(ctx, directive("!code a.py python"), 64)
		require.Len(t, blocks, 1)
		assert.Equal(t, entities.ErrorBlock{Content: "invalid code parameters a.py python"}, blocks[0])
	})

	t.Run("missing file becomes error block", func(t *testing.T) {
		loader := new(MockTextLoader)
		loader.On("Load", mock.Anything, abs(t, "gone.py")).Return("", ports.ErrNotFound)
		svc := newTestService(loader, new(MockMarkdownConverter))

		blocks := svc.classify(ctx, directive("!code gone.py"), 64)
		require.Len(t, blocks, 1)
		assert.Equal(t, entities.ErrorBlock{Content: "Code file not found: " + abs(t, "gone.py")}, blocks[0])
	})
}

func TestClassify_Include(t *testing.T) {
	ctx := context.Background()

	t.Run("splices included blocks in place", func(t *testing.T) {
		loader := new(MockTextLoader)
		converter := new(MockMarkdownConverter)
		loader.On("Load", mock.Anything, abs(t, "extra.md")).Return("!header Included\nSome prose", nil)
		converter.On("Convert", mock.Anything, "Some prose").Return("<p>Some prose</p>", nil)
		svc := newTestService(loader, converter)

		blocks := svc.classify(ctx, directive("!include extra.md"), 64)
		require.Len(t, blocks, 2)
		assert.Equal(t, entities.HeaderBlock{Content: "Included"}, blocks[0])
		assert.Equal(t, entities.HTMLBlock{Content: "<p>Some prose</p>"}, blocks[1])
	})

	t.Run("separators inside includes are recognized", func(t *testing.T) {
		loader := new(MockTextLoader)
		converter := new(MockMarkdownConverter)
		loader.On("Load", mock.Anything, abs(t, "extra.md")).Return("a\n---\nb", nil)
		converter.On("Convert", mock.Anything, "a").Return("<p>a</p>", nil)
		converter.On("Convert", mock.Anything, "b").Return("<p>b</p>", nil)
		svc := newTestService(loader, converter)

		blocks := svc.classify(ctx, directive("!include extra.md"), 64)
		require.Len(t, blocks, 3)
		assert.Equal(t, entities.BlockTypeSeparator, blocks[1].Type())
	})

	t.Run("missing include becomes error block in place", func(t *testing.T) {
		loader := new(MockTextLoader)
		loader.On("Load", mock.Anything, abs(t, "gone.md")).Return("", ports.ErrNotFound)
		svc := newTestService(loader, new(MockMarkdownConverter))

		blocks := svc.classify(ctx, directive("!include gone.md"), 64)
		require.Len(t, blocks, 1)
		assert.Equal(t, entities.ErrorBlock{Content: "Included file not found: " + abs(t, "gone.md")}, blocks[0])
	})

	t.Run("path with spaces is truncated at the first token", func(t *testing.T) {
		loader := new(MockTextLoader)
		loader.On("Load", mock.Anything, abs(t, "my")).Return("", ports.ErrNotFound)
		svc := newTestService(loader, new(MockMarkdownConverter))

		blocks := svc.classify(ctx, directive("!include my deck.md"), 64)
		require.Len(t, blocks, 1)
		assert.Equal(t, entities.ErrorBlock{Content: "Included file not found: " + abs(t, "my")}, blocks[0])
		loader.AssertExpectations(t)
	})

	t.Run("cyclic includes terminate at the depth bound", func(t *testing.T) {
		loader := new(MockTextLoader)
		loader.On("Load", mock.Anything, abs(t, "a.md")).Return("!include b.md", nil)
		loader.On("Load", mock.Anything, abs(t, "b.md")).Return("!include a.md", nil)
		svc := NewDeckService(loader, new(MockMarkdownConverter), entities.ParserConfig{
			DefaultLanguage: "bash",
			DefaultRunner:   "bash",
			MaxIncludeDepth: 3,
		})

		blocks := svc.classify(context.Background(), directive("!include a.md"), 3)
		require.Len(t, blocks, 1)
		assert.Equal(t, entities.BlockTypeError, blocks[0].Type())
		assert.Contains(t, blocks[0].(entities.ErrorBlock).Content, "Include depth exceeded")
	})

	t.Run("sibling content survives a broken include", func(t *testing.T) {
		loader := new(MockTextLoader)
		converter := new(MockMarkdownConverter)
		loader.On("Load", mock.Anything, abs(t, "deck.md")).Return("before\n!include gone.md\nafter", nil)
		loader.On("Load", mock.Anything, abs(t, "gone.md")).Return("", ports.ErrNotFound)
		converter.On("Convert", mock.Anything, "before").Return("<p>before</p>", nil)
		converter.On("Convert", mock.Anything, "after").Return("<p>after</p>", nil)

		deck, err := newTestService(loader, converter).Parse(ctx, "deck.md")
		require.NoError(t, err)

		require.Len(t, deck.Slides, 1)
		require.Len(t, deck.Slides[0].Blocks, 3)
		assert.Equal(t, entities.HTMLBlock{Content: "<p>before</p>"}, deck.Slides[0].Blocks[0])
		assert.Equal(t, entities.ErrorBlock{Content: "Included file not found: " + abs(t, "gone.md")}, deck.Slides[0].Blocks[1])
		assert.Equal(t, entities.HTMLBlock{Content: "<p>after</p>"}, deck.Slides[0].Blocks[2])
	})
}
