package converter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoldmarkConverter_Convert(t *testing.T) {
	ctx := context.Background()

	t.Run("renders basic markdown", func(t *testing.T) {
		c := NewGoldmarkConverter(false)

		out, err := c.Convert(ctx, "# Title\n\nSome **bold** text")
		require.NoError(t, err)
		assert.Contains(t, out, "<h1 id=\"title\">Title</h1>")
		assert.Contains(t, out, "<strong>bold</strong>")
	})

	t.Run("renders GFM tables", func(t *testing.T) {
		c := NewGoldmarkConverter(false)

		out, err := c.Convert(ctx, "| a | b |\n|---|---|\n| 1 | 2 |")
		require.NoError(t, err)
		assert.Contains(t, out, "<table>")
	})

	t.Run("keeps raw HTML without sanitization", func(t *testing.T) {
		c := NewGoldmarkConverter(false)

		out, err := c.Convert(ctx, `before <script>alert(1)</script> after`)
		require.NoError(t, err)
		assert.Contains(t, out, "<script>")
	})

	t.Run("strips unsafe HTML when sanitizing", func(t *testing.T) {
		c := NewGoldmarkConverter(true)

		out, err := c.Convert(ctx, `before <script>alert(1)</script> after`)
		require.NoError(t, err)
		assert.NotContains(t, out, "<script>")
		assert.Contains(t, out, "before")
	})

	t.Run("empty input renders to empty output", func(t *testing.T) {
		c := NewGoldmarkConverter(false)

		out, err := c.Convert(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("cancelled context aborts conversion", func(t *testing.T) {
		c := NewGoldmarkConverter(false)
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.Convert(cancelled, "# Title")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
