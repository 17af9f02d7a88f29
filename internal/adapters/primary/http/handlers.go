package http

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/fredcamaral/declaim/internal/adapters/secondary/renderer"
)

// liveReloadScript reconnects and reloads the page when the server
// broadcasts a change.
const liveReloadScript = `<script>
(function () {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  function connect() {
    var ws = new WebSocket(proto + location.host + "/ws");
    ws.onmessage = function (ev) {
      var msg = JSON.parse(ev.data);
      if (msg.type === "reload") { location.reload(); }
    };
    ws.onclose = function () { setTimeout(connect, 1000); };
  }
  connect();
})();
</script>
</body>`

// handleDeckPage serves the rendered deck with the live-reload script
// injected.
func (s *Server) handleDeckPage(w http.ResponseWriter, r *http.Request) {
	deck := s.Deck()
	if deck == nil {
		http.Error(w, "no deck loaded", http.StatusServiceUnavailable)
		return
	}

	page, err := s.renderer.RenderDeck(r.Context(), deck)
	if err != nil {
		s.logger.Error("rendering deck: %v", err)
		http.Error(w, "failed to render deck", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	page = injectLiveReload(page)
	if _, err := w.Write(page); err != nil {
		s.logger.Error("writing deck page: %v", err)
	}
}

// handleDeckJSON serves the deck block structure as JSON
func (s *Server) handleDeckJSON(w http.ResponseWriter, r *http.Request) {
	deck := s.Deck()
	if deck == nil {
		http.Error(w, "no deck loaded", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(renderer.NewDeckView(deck)); err != nil {
		s.logger.Error("encoding deck: %v", err)
	}
}

// handleHealth reports server liveness
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// injectLiveReload splices the reload script in before the closing body
// tag; pages without one get the script appended.
func injectLiveReload(page []byte) []byte {
	closing := []byte("</body>")
	idx := bytes.LastIndex(page, closing)
	if idx < 0 {
		return append(page, []byte(liveReloadScript)...)
	}
	out := make([]byte, 0, len(page)+len(liveReloadScript))
	out = append(out, page[:idx]...)
	out = append(out, []byte(liveReloadScript)...)
	out = append(out, page[idx+len(closing):]...)
	return out
}
