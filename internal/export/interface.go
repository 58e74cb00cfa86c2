package export

import (
	"fmt"
	"io"
	"time"

	"github.com/iksnae/cursor-chat-viewer/internal"
)

// Archive is a snapshot of chat history assembled for export.
type Archive struct {
	ExportedAt time.Time         `json:"exportedAt" yaml:"exportedAt"`
	Workspaces []WorkspaceExport `json:"workspaces" yaml:"workspaces"`
}

// WorkspaceExport is one workspace with its conversations resolved.
type WorkspaceExport struct {
	ID            string               `json:"id" yaml:"id"`
	Folder        string               `json:"folder,omitempty" yaml:"folder,omitempty"`
	Modified      time.Time            `json:"modified" yaml:"modified"`
	Prompts       []internal.Prompt    `json:"prompts,omitempty" yaml:"prompts,omitempty"`
	Conversations []ConversationExport `json:"conversations,omitempty" yaml:"conversations,omitempty"`
}

// ConversationExport is one composer with its messages attached.
type ConversationExport struct {
	Composer internal.Composer `json:"composer" yaml:"composer"`
	Bubbles  []internal.Bubble `json:"bubbles,omitempty" yaml:"bubbles,omitempty"`
}

// Exporter defines the interface for all export formats
type Exporter interface {
	Export(archive *Archive, w io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	case "yaml":
		return &YAMLExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: md, json, yaml)", format)
	}
}

// BuildArchive resolves bubbles for every composer in the given workspaces
// against the global database.
func BuildArchive(workspaces []*internal.Workspace, globalDBPath string) *Archive {
	archive := &Archive{ExportedAt: time.Now()}
	for _, ws := range workspaces {
		wsExport := WorkspaceExport{
			ID:       ws.ID,
			Folder:   ws.Folder,
			Modified: ws.Modified,
			Prompts:  ws.Prompts,
		}
		for _, composer := range ws.Composers {
			wsExport.Conversations = append(wsExport.Conversations, ConversationExport{
				Composer: composer,
				Bubbles:  internal.ReadBubbles(globalDBPath, composer.ComposerID),
			})
		}
		archive.Workspaces = append(archive.Workspaces, wsExport)
	}
	return archive
}
