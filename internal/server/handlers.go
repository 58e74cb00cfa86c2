package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/iksnae/cursor-chat-viewer/internal"
)

func (s *Server) handleWorkspaces(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	days := internal.DefaultListDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			days = parsed
		}
	}

	workspaces := internal.ListWorkspaces(s.paths.WorkspaceStorage, days)
	writeJSON(w, http.StatusOK, internal.Summarize(workspaces))
}

func (s *Server) handleWorkspaceByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/workspaces/"), "/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	// Long lookback so older but still-listed workspaces resolve.
	workspaces := internal.ListWorkspaces(s.paths.WorkspaceStorage, internal.DetailLookbackDays)
	ws, ok := internal.FindWorkspace(workspaces, id)
	if !ok {
		writeError(w, http.StatusNotFound, (&internal.NotFoundError{Kind: "workspace", ID: id}).Error())
		return
	}

	detail, err := internal.BuildDetail(ws, r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleDates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	workspaces := internal.ListWorkspaces(s.paths.WorkspaceStorage, internal.DefaultListDays)
	writeJSON(w, http.StatusOK, internal.BuildDateGroups(workspaces))
}

func (s *Server) handleComposers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	workspaces := internal.ListWorkspaces(s.paths.WorkspaceStorage, internal.DefaultListDays)
	flat, err := internal.FlattenComposers(workspaces, r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, flat)
}

func (s *Server) handleComposerBubbles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/composers/")
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] != "bubbles" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	bubbles := internal.ReadBubbles(s.paths.GlobalStorageDBPath(), parts[0])
	if bubbles == nil {
		bubbles = []internal.Bubble{}
	}
	writeJSON(w, http.StatusOK, bubbles)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	workspaces := internal.ListWorkspaces(s.paths.WorkspaceStorage, internal.DefaultListDays)
	writeJSON(w, http.StatusOK, internal.SearchPrompts(workspaces, r.URL.Query().Get("q")))
}
