package export

import (
	"fmt"
	"io"
	"strings"
)

// MarkdownExporter writes an archive as a markdown document
type MarkdownExporter struct{}

// Export writes the archive to w in markdown format
func (e *MarkdownExporter) Export(archive *Archive, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# Cursor Chat History\n\n")
	_, _ = fmt.Fprintf(w, "Exported on: %s\n\n", archive.ExportedAt.Format("2006-01-02 15:04"))

	for _, ws := range archive.Workspaces {
		title := ws.Folder
		if title == "" {
			title = ws.ID
		}
		_, _ = fmt.Fprintf(w, "## %s\n\n", title)
		_, _ = fmt.Fprintf(w, "**Last modified:** %s\n\n", ws.Modified.Format("2006-01-02 15:04"))

		for _, prompt := range ws.Prompts {
			_, _ = fmt.Fprintf(w, "### %s\n\n", prompt.CommandTypeLabel())
			_, _ = fmt.Fprintf(w, "```\n%s\n```\n\n", prompt.Text)
		}

		for _, conv := range ws.Conversations {
			_, _ = fmt.Fprintf(w, "### %s (%s)\n\n", conv.Composer.Name, conv.Composer.Mode)
			_, _ = fmt.Fprintf(w, "**Last updated:** %s\n\n", conv.Composer.LastUpdated().Format("2006-01-02 15:04"))

			for _, bubble := range conv.Bubbles {
				_, _ = fmt.Fprintf(w, "**%s:**\n\n%s\n\n", bubble.ActorLabel(), escapeMarkdown(bubble.Text))
			}
		}

		_, _ = fmt.Fprintf(w, "---\n\n")
	}

	return nil
}

// escapeMarkdown escapes emphasis markers outside fenced code blocks
func escapeMarkdown(text string) string {
	lines := strings.Split(text, "\n")
	var result []string
	inCodeBlock := false

	for _, line := range lines {
		if strings.HasPrefix(line, "```") {
			inCodeBlock = !inCodeBlock
			result = append(result, line)
		} else if inCodeBlock {
			result = append(result, line)
		} else {
			line = strings.ReplaceAll(line, "**", "\\*\\*")
			line = strings.ReplaceAll(line, "__", "\\_\\_")
			result = append(result, line)
		}
	}

	return strings.Join(result, "\n")
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
