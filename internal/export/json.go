package export

import (
	"encoding/json"
	"io"
)

// JSONExporter writes an archive as pretty-printed JSON
type JSONExporter struct{}

// Export writes the archive to w in JSON format
func (e *JSONExporter) Export(archive *Archive, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(archive)
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
