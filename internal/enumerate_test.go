package internal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/iksnae/cursor-chat-viewer/testutil"
)

func TestListWorkspaces(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "workspaceStorage")

	testutil.CreateWorkspaceFixture(t, base, "ws-new", "file:///home/user/new")
	testutil.CreateWorkspaceFixture(t, base, "ws-newer", "")

	// Make the modification order deterministic.
	now := time.Now()
	if err := os.Chtimes(filepath.Join(root, "ws-new", "state.vscdb"), now.Add(-time.Hour), now.Add(-time.Hour)); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	workspaces := ListWorkspaces(root, 7)
	if len(workspaces) != 2 {
		t.Fatalf("ListWorkspaces() returned %d workspaces, want 2", len(workspaces))
	}
	if workspaces[0].ID != "ws-newer" || workspaces[1].ID != "ws-new" {
		t.Errorf("order = [%s, %s], want most recent first", workspaces[0].ID, workspaces[1].ID)
	}
	if workspaces[1].Folder != "/home/user/new" {
		t.Errorf("Folder = %q", workspaces[1].Folder)
	}
	if workspaces[0].PromptCount != 1 {
		t.Errorf("PromptCount = %d, want 1", workspaces[0].PromptCount)
	}
}

func TestListWorkspaces_ExcludesEmpty(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "workspaceStorage")

	// Database exists but holds neither prompts nor composers.
	testutil.CreateWorkspaceDB(t, filepath.Join(root, "ws-empty"))
	testutil.CreateWorkspaceFixture(t, base, "ws-full", "")

	workspaces := ListWorkspaces(root, 7)
	if len(workspaces) != 1 {
		t.Fatalf("ListWorkspaces() returned %d workspaces, want 1", len(workspaces))
	}
	if workspaces[0].ID != "ws-full" {
		t.Errorf("kept %q, want ws-full", workspaces[0].ID)
	}
}

func TestListWorkspaces_CutoffExcludesOld(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "workspaceStorage")

	testutil.CreateWorkspaceFixture(t, base, "ws-old", "")
	old := time.Now().AddDate(0, 0, -30)
	if err := os.Chtimes(filepath.Join(root, "ws-old", "state.vscdb"), old, old); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	if got := ListWorkspaces(root, 7); len(got) != 0 {
		t.Errorf("ListWorkspaces() = %d workspaces, want 0", len(got))
	}
	if got := ListWorkspaces(root, 60); len(got) != 1 {
		t.Errorf("ListWorkspaces() with wide window = %d workspaces, want 1", len(got))
	}
}

func TestListWorkspaces_SkipsDirsWithoutDB(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "workspaceStorage")

	if err := os.MkdirAll(filepath.Join(root, "ws-no-db"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	testutil.CreateWorkspaceFixture(t, base, "ws-with-db", "")

	workspaces := ListWorkspaces(root, 7)
	if len(workspaces) != 1 || workspaces[0].ID != "ws-with-db" {
		t.Errorf("ListWorkspaces() = %v", workspaces)
	}
}

func TestListWorkspaces_MissingRoot(t *testing.T) {
	if got := ListWorkspaces(filepath.Join(t.TempDir(), "nope"), 7); got != nil {
		t.Errorf("ListWorkspaces() = %v, want nil", got)
	}
}

func TestFindWorkspace(t *testing.T) {
	workspaces := []*Workspace{
		CreateTestWorkspace("a", "", time.Now(), nil, []Composer{CreateTestComposer("c1", "x")}),
		CreateTestWorkspace("b", "", time.Now(), nil, []Composer{CreateTestComposer("c2", "y")}),
	}

	if ws, ok := FindWorkspace(workspaces, "b"); !ok || ws.ID != "b" {
		t.Errorf("FindWorkspace(b) = %v, %v", ws, ok)
	}
	if _, ok := FindWorkspace(workspaces, "missing"); ok {
		t.Error("FindWorkspace(missing) should not match")
	}
}
