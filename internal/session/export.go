package session

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Export writes the full annotation snapshot to path as indented JSON,
// keyed by record index. HTML escaping is disabled so RTL and other
// non-ASCII content is written verbatim. The file is overwritten in
// full; a failed write leaves the in-memory session untouched.
func (s *Session) Export(path string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.Annotations); err != nil {
		return fmt.Errorf("failed to encode annotations: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// ImportAnnotations reads a previous export back into an annotation
// map, letting an analyst resume from an exported session.
func ImportAnnotations(path string) (map[int]Annotation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read export: %w", err)
	}

	annotations := make(map[int]Annotation)
	if err := json.Unmarshal(data, &annotations); err != nil {
		return nil, fmt.Errorf("failed to parse export: %w", err)
	}
	return annotations, nil
}
