package report

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSON marshals the manifest with stable indentation and writes it
// to path.
func (m *Manifest) WriteJSON(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("report: marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("report: write %s: %w", path, err)
	}
	return nil
}

// ReadJSON loads a manifest previously written by WriteJSON — used by
// `vjdetect stats` and `vjdetect validate`.
func ReadJSON(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("report: read %s: %w", path, err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("report: unmarshal %s: %w", path, err)
	}
	return &m, nil
}
