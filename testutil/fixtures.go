package testutil

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

// CreateWorkspaceDB creates a state.vscdb fixture with an ItemTable and
// returns its path.
func CreateWorkspaceDB(t *testing.T, workspaceDir string) string {
	t.Helper()
	if err := os.MkdirAll(workspaceDir, 0755); err != nil {
		t.Fatalf("Failed to create workspace directory: %v", err)
	}

	dbPath := filepath.Join(workspaceDir, "state.vscdb")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS ItemTable (
		key TEXT PRIMARY KEY,
		value TEXT
	)`
	if _, err := db.Exec(createTableSQL); err != nil {
		t.Fatalf("Failed to create ItemTable: %v", err)
	}

	return dbPath
}

// InsertItem inserts or replaces one ItemTable row in a workspace database.
func InsertItem(t *testing.T, dbPath, key, value string) {
	t.Helper()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	if _, err := db.Exec("INSERT OR REPLACE INTO ItemTable (key, value) VALUES (?, ?)", key, value); err != nil {
		t.Fatalf("Failed to insert item: %v", err)
	}
}

// InsertPrompts stores a prompt list under aiService.prompts.
func InsertPrompts(t *testing.T, dbPath string, prompts []map[string]interface{}) {
	t.Helper()
	data, err := json.Marshal(prompts)
	if err != nil {
		t.Fatalf("Failed to marshal prompts: %v", err)
	}
	InsertItem(t, dbPath, "aiService.prompts", string(data))
}

// InsertComposers stores composer records under composer.composerData.
func InsertComposers(t *testing.T, dbPath string, composers []map[string]interface{}) {
	t.Helper()
	data, err := json.Marshal(map[string]interface{}{"allComposers": composers})
	if err != nil {
		t.Fatalf("Failed to marshal composers: %v", err)
	}
	InsertItem(t, dbPath, "composer.composerData", string(data))
}

// CreateGlobalDB creates a globalStorage state.vscdb fixture with a
// cursorDiskKV table and returns its path.
func CreateGlobalDB(t *testing.T, basePath string) string {
	t.Helper()
	globalDir := filepath.Join(basePath, "globalStorage")
	if err := os.MkdirAll(globalDir, 0755); err != nil {
		t.Fatalf("Failed to create globalStorage directory: %v", err)
	}

	dbPath := filepath.Join(globalDir, "state.vscdb")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS cursorDiskKV (
		key TEXT PRIMARY KEY,
		value TEXT
	)`
	if _, err := db.Exec(createTableSQL); err != nil {
		t.Fatalf("Failed to create cursorDiskKV: %v", err)
	}

	return dbPath
}

// InsertKV inserts one cursorDiskKV row into the global database.
func InsertKV(t *testing.T, dbPath, key, value string) {
	t.Helper()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	if _, err := db.Exec("INSERT OR REPLACE INTO cursorDiskKV (key, value) VALUES (?, ?)", key, value); err != nil {
		t.Fatalf("Failed to insert kv row: %v", err)
	}
}

// InsertBubble stores one bubble row for a conversation.
func InsertBubble(t *testing.T, dbPath, composerID, bubbleID string, bubble map[string]interface{}) {
	t.Helper()
	data, err := json.Marshal(bubble)
	if err != nil {
		t.Fatalf("Failed to marshal bubble: %v", err)
	}
	InsertKV(t, dbPath, "bubbleId:"+composerID+":"+bubbleID, string(data))
}

// CreateWorkspaceFixture creates one populated workspace under
// basePath/workspaceStorage and returns its directory.
func CreateWorkspaceFixture(t *testing.T, basePath, workspaceID, folderURI string) string {
	t.Helper()
	workspaceDir := filepath.Join(basePath, "workspaceStorage", workspaceID)
	dbPath := CreateWorkspaceDB(t, workspaceDir)

	if folderURI != "" {
		descriptor, _ := json.Marshal(map[string]interface{}{"folder": folderURI})
		if err := os.WriteFile(filepath.Join(workspaceDir, "workspace.json"), descriptor, 0644); err != nil {
			t.Fatalf("Failed to write workspace.json: %v", err)
		}
	}

	InsertPrompts(t, dbPath, []map[string]interface{}{
		{"text": "Hello world", "commandType": 4, "createdAt": time.Now().UnixMilli()},
	})
	InsertComposers(t, dbPath, []map[string]interface{}{
		{
			"composerId":    "composer-" + workspaceID,
			"name":          "Test Conversation",
			"createdAt":     time.Now().UnixMilli(),
			"lastUpdatedAt": time.Now().UnixMilli(),
			"unifiedMode":   "agent",
		},
	})

	return workspaceDir
}

// CreateStorageFixture builds a full mock Cursor User directory with one
// populated workspace and a global database holding two bubbles for its
// conversation. Returns the base path.
func CreateStorageFixture(t *testing.T) string {
	t.Helper()
	basePath := t.TempDir()

	CreateWorkspaceFixture(t, basePath, "workspace-hash-123", "file:///path/to/project")

	globalDB := CreateGlobalDB(t, basePath)
	now := time.Now().UnixMilli()
	InsertBubble(t, globalDB, "composer-workspace-hash-123", "bubble1", map[string]interface{}{
		"type": 1, "text": "How do I sort a slice?", "createdAt": now - 1000,
	})
	InsertBubble(t, globalDB, "composer-workspace-hash-123", "bubble2", map[string]interface{}{
		"type": 2, "text": "Use sort.Slice with a less function.", "createdAt": now,
	})

	return basePath
}
