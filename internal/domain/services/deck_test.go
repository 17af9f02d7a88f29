package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fredcamaral/declaim/internal/domain/entities"
	"github.com/fredcamaral/declaim/internal/domain/ports"
)

// Mock implementations
type MockTextLoader struct {
	mock.Mock
}

func (m *MockTextLoader) Load(ctx context.Context, path string) (string, error) {
	args := m.Called(ctx, path)
	return args.String(0), args.Error(1)
}

type MockMarkdownConverter struct {
	mock.Mock
}

func (m *MockMarkdownConverter) Convert(ctx context.Context, markdown string) (string, error) {
	args := m.Called(ctx, markdown)
	return args.String(0), args.Error(1)
}

func testConfig() entities.ParserConfig {
	return entities.ParserConfig{
		DefaultLanguage: "bash",
		DefaultRunner:   "bash",
		MaxIncludeDepth: 64,
	}
}

func abs(t *testing.T, path string) string {
	t.Helper()
	out, err := filepath.Abs(path)
	require.NoError(t, err)
	return out
}

func TestDeckService_Parse(t *testing.T) {
	ctx := context.Background()

	t.Run("plain prose yields one slide with one html block", func(t *testing.T) {
		loader := new(MockTextLoader)
		converter := new(MockMarkdownConverter)
		loader.On("Load", mock.Anything, abs(t, "deck.md")).Return("Just some\nplain text", nil)
		converter.On("Convert", mock.Anything, "Just some\nplain text").Return("<p>rendered</p>", nil)

		deck, err := NewDeckService(loader, converter, testConfig()).Parse(ctx, "deck.md")
		require.NoError(t, err)

		require.Len(t, deck.Slides, 1)
		require.Len(t, deck.Slides[0].Blocks, 1)
		assert.Equal(t, entities.HTMLBlock{Content: "<p>rendered</p>"}, deck.Slides[0].Blocks[0])
		loader.AssertExpectations(t)
		converter.AssertExpectations(t)
	})

	t.Run("only separator lines yield zero slides", func(t *testing.T) {
		loader := new(MockTextLoader)
		converter := new(MockMarkdownConverter)
		loader.On("Load", mock.Anything, mock.Anything).Return("---\n---\n---\n", nil)

		deck, err := NewDeckService(loader, converter, testConfig()).Parse(ctx, "deck.md")
		require.NoError(t, err)
		assert.Empty(t, deck.Slides)
	})

	t.Run("document with directives and separators", func(t *testing.T) {
		loader := new(MockTextLoader)
		converter := new(MockMarkdownConverter)
		loader.On("Load", mock.Anything, abs(t, "deck.md")).Return("Intro\n---\n!header Title\nBody\n---\nEnd", nil)
		converter.On("Convert", mock.Anything, "Intro").Return("<p>Intro</p>", nil)
		converter.On("Convert", mock.Anything, "Body").Return("<p>Body</p>", nil)
		converter.On("Convert", mock.Anything, "End").Return("<p>End</p>", nil)

		deck, err := NewDeckService(loader, converter, testConfig()).Parse(ctx, "deck.md")
		require.NoError(t, err)

		require.Len(t, deck.Slides, 3)

		require.Len(t, deck.Slides[0].Blocks, 1)
		assert.Equal(t, entities.HTMLBlock{Content: "<p>Intro</p>"}, deck.Slides[0].Blocks[0])

		require.Len(t, deck.Slides[1].Blocks, 2)
		assert.Equal(t, entities.HeaderBlock{Content: "Title"}, deck.Slides[1].Blocks[0])
		assert.Equal(t, entities.HTMLBlock{Content: "<p>Body</p>"}, deck.Slides[1].Blocks[1])

		require.Len(t, deck.Slides[2].Blocks, 1)
		assert.Equal(t, entities.HTMLBlock{Content: "<p>End</p>"}, deck.Slides[2].Blocks[0])
	})

	t.Run("missing root file yields single error slide", func(t *testing.T) {
		loader := new(MockTextLoader)
		converter := new(MockMarkdownConverter)
		loader.On("Load", mock.Anything, abs(t, "missing.md")).Return("", ports.ErrNotFound)

		deck, err := NewDeckService(loader, converter, testConfig()).Parse(ctx, "missing.md")
		require.NoError(t, err)

		require.Len(t, deck.Slides, 1)
		require.Len(t, deck.Slides[0].Blocks, 1)
		assert.Equal(t, entities.ErrorBlock{Content: ports.ErrNotFound.Error()}, deck.Slides[0].Blocks[0])
	})

	t.Run("empty path is rejected", func(t *testing.T) {
		svc := NewDeckService(new(MockTextLoader), new(MockMarkdownConverter), testConfig())
		_, err := svc.Parse(ctx, "")
		assert.Error(t, err)
	})

	t.Run("slides get identities and positions", func(t *testing.T) {
		loader := new(MockTextLoader)
		converter := new(MockMarkdownConverter)
		loader.On("Load", mock.Anything, mock.Anything).Return("a\n---\nb", nil)
		converter.On("Convert", mock.Anything, mock.Anything).Return("<p>x</p>", nil)

		deck, err := NewDeckService(loader, converter, testConfig()).Parse(ctx, "deck.md")
		require.NoError(t, err)

		require.Len(t, deck.Slides, 2)
		for i, slide := range deck.Slides {
			assert.Equal(t, i, slide.Index)
			assert.NotEmpty(t, slide.ID)
		}
		assert.NotEqual(t, deck.Slides[0].ID, deck.Slides[1].ID)
	})

	t.Run("deck metadata reflects source path", func(t *testing.T) {
		loader := new(MockTextLoader)
		converter := new(MockMarkdownConverter)
		loader.On("Load", mock.Anything, mock.Anything).Return("hello", nil)
		converter.On("Convert", mock.Anything, mock.Anything).Return("<p>hello</p>", nil)

		deck, err := NewDeckService(loader, converter, testConfig()).Parse(ctx, "intro-to-go.md")
		require.NoError(t, err)

		assert.Equal(t, abs(t, "intro-to-go.md"), deck.SourcePath)
		assert.Equal(t, "Intro To Go", deck.Title)
	})
}
