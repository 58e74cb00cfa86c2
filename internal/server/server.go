package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/iksnae/cursor-chat-viewer/internal"
)

// DefaultPort is used when neither the flag nor the PORT variable is set.
const DefaultPort = 3456

// Server serves the chat-history API and the embedded UI. It holds no state
// beyond the storage locations: every request re-reads the filesystem so the
// view always reflects what the IDE has written.
type Server struct {
	paths internal.StoragePaths
	mux   *http.ServeMux
}

// New creates a Server over the given storage paths.
func New(paths internal.StoragePaths) *Server {
	s := &Server{
		paths: paths,
		mux:   http.NewServeMux(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/api/workspaces", s.handleWorkspaces)
	s.mux.HandleFunc("/api/workspaces/", s.handleWorkspaceByID)
	s.mux.HandleFunc("/api/dates", s.handleDates)
	s.mux.HandleFunc("/api/composers", s.handleComposers)
	s.mux.HandleFunc("/api/composers/", s.handleComposerBubbles)
	s.mux.HandleFunc("/api/search", s.handleSearch)
	s.mux.HandleFunc("/", s.handleIndex)
}

// Handler returns the full handler chain.
func (s *Server) Handler() http.Handler {
	return recoverMiddleware(s.mux)
}

// ListenAndServe blocks serving HTTP on the given port.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	internal.LogInfo("Serving chat history on http://localhost:%d", port)
	return http.ListenAndServe(addr, s.Handler())
}

// ResolvePort picks the port: explicit flag value, then the PORT environment
// variable, then the default.
func ResolvePort(flagPort int) int {
	if flagPort > 0 {
		return flagPort
	}
	if env := os.Getenv("PORT"); env != "" {
		if port, err := strconv.Atoi(env); err == nil && port > 0 {
			return port
		}
		internal.LogWarn("Ignoring invalid PORT value %q", env)
	}
	return DefaultPort
}

// recoverMiddleware converts a handler panic into a logged 500 JSON response
// instead of tearing down the process.
func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				internal.LogError("panic serving %s: %v", r.URL.Path, rec)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		internal.LogError("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
