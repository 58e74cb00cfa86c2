package internal

import (
	"os"
	"path/filepath"
	"sort"
	"time"
)

// ListWorkspaces scans the workspaceStorage root and returns every workspace
// whose database was modified within the last daysBack days and which holds
// at least one prompt or composer, ordered most-recently-modified first.
//
// A directory whose database is missing, locked or unreadable is silently
// skipped: the IDE owns these files and contention is routine.
func ListWorkspaces(root string, daysBack int) []*Workspace {
	entries, err := os.ReadDir(root)
	if err != nil {
		LogDebug("workspace scan: %v", err)
		return nil
	}

	cutoff := time.Now().AddDate(0, 0, -daysBack)

	var workspaces []*Workspace
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		workspaceDir := filepath.Join(root, entry.Name())
		dbPath := filepath.Join(workspaceDir, "state.vscdb")
		info, err := os.Stat(dbPath)
		if err != nil {
			continue
		}
		modified := info.ModTime()
		if modified.Before(cutoff) {
			continue
		}

		prompts := ReadPrompts(dbPath)
		composers := ReadComposers(dbPath)
		if len(prompts) == 0 && len(composers) == 0 {
			continue
		}

		workspaces = append(workspaces, &Workspace{
			ID:          entry.Name(),
			Folder:      ReadFolder(workspaceDir, dbPath),
			Modified:    modified,
			PromptCount: len(prompts),
			Prompts:     prompts,
			Composers:   composers,
		})
	}

	sort.Slice(workspaces, func(i, j int) bool {
		return workspaces[i].Modified.After(workspaces[j].Modified)
	})
	return workspaces
}

// FindWorkspace returns the workspace with the given identifier.
func FindWorkspace(workspaces []*Workspace, id string) (*Workspace, bool) {
	for _, ws := range workspaces {
		if ws.ID == id {
			return ws, true
		}
	}
	return nil, false
}
