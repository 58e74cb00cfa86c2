package server

import (
	_ "embed"
	"net/http"
	"strings"
)

//go:embed web/index.html
var indexHTML []byte

// handleIndex serves the embedded single-page UI. Any non-API GET falls
// through to the entry document so client-side routes survive a reload.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}
