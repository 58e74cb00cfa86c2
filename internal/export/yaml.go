package export

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLExporter writes an archive as YAML
type YAMLExporter struct{}

// Export writes the archive to w in YAML format
func (e *YAMLExporter) Export(archive *Archive, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(archive)
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
