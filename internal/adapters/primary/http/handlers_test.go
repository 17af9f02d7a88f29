package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredcamaral/declaim/internal/adapters/secondary/renderer"
	"github.com/fredcamaral/declaim/internal/domain/entities"
	"github.com/fredcamaral/declaim/internal/test/builders"
)

// stubRenderer returns a canned page or error
type stubRenderer struct {
	page []byte
	err  error
}

func (r *stubRenderer) RenderDeck(ctx context.Context, deck *entities.Deck) ([]byte, error) {
	return r.page, r.err
}

func testServerConfig() *entities.ServerConfig {
	return &entities.ServerConfig{Host: "localhost", Port: 0}
}

func newTestServer(rend *stubRenderer) (*Server, *mux.Router) {
	s := NewServer(rend, testServerConfig())
	router := mux.NewRouter()
	s.registerRoutes(router)
	return s, router
}

func TestHandleDeckPage(t *testing.T) {
	t.Run("serves rendered page with live reload script", func(t *testing.T) {
		s, router := newTestServer(&stubRenderer{page: []byte("<html><body><p>deck</p></body></html>")})
		s.SetDeck(builders.NewDeckBuilder().WithSlideCount(1).Build())

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, rec.Body.String(), "<p>deck</p>")
		assert.Contains(t, rec.Body.String(), "new WebSocket")
	})

	t.Run("no deck yields 503", func(t *testing.T) {
		_, router := newTestServer(&stubRenderer{page: []byte("x")})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("renderer failure yields 500", func(t *testing.T) {
		s, router := newTestServer(&stubRenderer{err: errors.New("template exploded")})
		s.SetDeck(builders.NewDeckBuilder().WithSlideCount(1).Build())

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestHandleDeckJSON(t *testing.T) {
	t.Run("serves deck view", func(t *testing.T) {
		s, router := newTestServer(&stubRenderer{})
		s.SetDeck(builders.NewDeckBuilder().
			WithTitle("Demo").
			WithSlide(entities.HeaderBlock{Content: "Top"}, entities.HTMLBlock{Content: "<p>x</p>"}).
			Build())

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/deck", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var view renderer.DeckView
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
		assert.Equal(t, "Demo", view.Title)
		require.Len(t, view.Slides, 1)
		assert.Equal(t, "header", view.Slides[0].Blocks[0].Type)
	})

	t.Run("no deck yields 503", func(t *testing.T) {
		_, router := newTestServer(&stubRenderer{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/deck", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestHandleHealth(t *testing.T) {
	_, router := newTestServer(&stubRenderer{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestInjectLiveReload(t *testing.T) {
	t.Run("splices before closing body tag", func(t *testing.T) {
		out := injectLiveReload([]byte("<body><p>x</p></body>"))
		assert.Contains(t, string(out), "new WebSocket")
		assert.Contains(t, string(out), "</body>")
	})

	t.Run("appends when no closing tag", func(t *testing.T) {
		out := injectLiveReload([]byte("<p>x</p>"))
		assert.Contains(t, string(out), "new WebSocket")
	})
}
