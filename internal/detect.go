package internal

import (
	"os"
	"path/filepath"
	"runtime"
)

// StoragePaths holds the resolved locations of Cursor's on-disk state.
type StoragePaths struct {
	BasePath         string // Cursor User directory
	WorkspaceStorage string // workspaceStorage directory, one subdir per workspace
	GlobalStorage    string // globalStorage directory
}

// DetectStoragePaths computes the Cursor storage locations for the current
// operating system. It never checks that the paths exist; callers treat a
// missing path the same as an empty store.
func DetectStoragePaths() StoragePaths {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}

	var basePath string
	switch runtime.GOOS {
	case "windows":
		basePath = filepath.Join(home, "AppData", "Roaming", "Cursor", "User")
	case "darwin":
		basePath = filepath.Join(home, "Library", "Application Support", "Cursor", "User")
	default:
		basePath = filepath.Join(home, ".config", "Cursor", "User")
	}

	return storagePathsFor(basePath)
}

// ResolveStoragePaths returns paths rooted at an explicit base directory when
// one is given, falling back to OS detection otherwise.
func ResolveStoragePaths(override string) StoragePaths {
	if override == "" {
		return DetectStoragePaths()
	}
	return storagePathsFor(override)
}

func storagePathsFor(basePath string) StoragePaths {
	return StoragePaths{
		BasePath:         basePath,
		WorkspaceStorage: filepath.Join(basePath, "workspaceStorage"),
		GlobalStorage:    filepath.Join(basePath, "globalStorage"),
	}
}

// GlobalStorageDBPath returns the path to the global state.vscdb file.
func (sp StoragePaths) GlobalStorageDBPath() string {
	return filepath.Join(sp.GlobalStorage, "state.vscdb")
}

// WorkspaceDBPath returns the state.vscdb path for one workspace directory.
func (sp StoragePaths) WorkspaceDBPath(workspaceID string) string {
	return filepath.Join(sp.WorkspaceStorage, workspaceID, "state.vscdb")
}

// GlobalStorageExists reports whether the global database file is present.
func (sp StoragePaths) GlobalStorageExists() bool {
	_, err := os.Stat(sp.GlobalStorageDBPath())
	return err == nil
}
