package internal

import (
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Storage keys inside a per-workspace state.vscdb ItemTable.
const (
	promptsKey  = "aiService.prompts"
	composerKey = "composer.composerData"
)

const folderFallbackLimit = 100

// ReadFolder resolves the project folder for one workspace. It prefers the
// workspace.json descriptor next to the database, then falls back to any
// folder-ish ItemTable key. Every failure degrades to "" since the folder is
// purely cosmetic.
func ReadFolder(workspaceDir, dbPath string) string {
	if folder := readFolderDescriptor(workspaceDir); folder != "" {
		return folder
	}

	db, err := OpenDatabase(dbPath)
	if err != nil {
		LogDebug("folder lookup: %v", err)
		return ""
	}
	defer db.Close()

	value, err := QueryItemLike(db, "%folder%")
	if err != nil || value == "" {
		return ""
	}

	var decoded interface{}
	if err := json.Unmarshal([]byte(value), &decoded); err == nil {
		switch v := decoded.(type) {
		case string:
			return fileURIToPath(v)
		case map[string]interface{}:
			if uri, ok := v["uri"].(string); ok {
				return fileURIToPath(uri)
			}
		}
	}

	// Raw value as a last resort, truncated.
	if len(value) > folderFallbackLimit {
		return value[:folderFallbackLimit]
	}
	return value
}

func readFolderDescriptor(workspaceDir string) string {
	data, err := os.ReadFile(filepath.Join(workspaceDir, "workspace.json"))
	if err != nil {
		return ""
	}
	var descriptor struct {
		Folder string `json:"folder"`
	}
	if err := json.Unmarshal(data, &descriptor); err != nil {
		return ""
	}
	return fileURIToPath(descriptor.Folder)
}

// fileURIToPath converts a file:// URI to a filesystem path, best effort.
func fileURIToPath(uri string) string {
	path, ok := strings.CutPrefix(uri, "file://")
	if !ok {
		return uri
	}
	if decoded, err := url.PathUnescape(path); err == nil {
		return decoded
	}
	return path
}

// ReadPrompts extracts the legacy prompt list from one workspace database.
// Any failure (missing file, lock held by the IDE, corrupt JSON, non-array
// shape) yields an empty slice.
func ReadPrompts(dbPath string) []Prompt {
	db, err := OpenDatabase(dbPath)
	if err != nil {
		LogDebug("read prompts: %v", err)
		return nil
	}
	defer db.Close()

	value, err := QueryItemValue(db, promptsKey)
	if err != nil || value == "" {
		return nil
	}

	var prompts []Prompt
	if err := json.Unmarshal([]byte(value), &prompts); err != nil {
		LogDebug("read prompts: %v", &ParseError{Source: "workspace", Key: promptsKey, Err: err})
		return nil
	}
	return prompts
}

// ReadComposers extracts conversation metadata from one workspace database.
// Composer records are validated individually; a malformed record is dropped
// without affecting its siblings. Any whole-value failure yields an empty
// slice.
func ReadComposers(dbPath string) []Composer {
	db, err := OpenDatabase(dbPath)
	if err != nil {
		LogDebug("read composers: %v", err)
		return nil
	}
	defer db.Close()

	value, err := QueryItemValue(db, composerKey)
	if err != nil || value == "" {
		return nil
	}

	var data struct {
		AllComposers []json.RawMessage `json:"allComposers"`
	}
	if err := json.Unmarshal([]byte(value), &data); err != nil {
		LogDebug("read composers: %v", &ParseError{Source: "workspace", Key: composerKey, Err: err})
		return nil
	}

	composers := make([]Composer, 0, len(data.AllComposers))
	for _, raw := range data.AllComposers {
		if composer, ok := ParseComposer(raw); ok {
			composers = append(composers, composer)
		}
	}
	return composers
}
