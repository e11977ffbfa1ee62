// Package render — JSON renderer.
// Writes the roster as a pretty-printed top-level array of records.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/rosterpipe/core"
)

// JSONRenderer produces the roster JSON document.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the roster. An empty roster renders as [].
func (r *JSONRenderer) Render(roster []core.Legislator, meta core.RosterMetadata) ([]byte, error) {
	if roster == nil {
		roster = []core.Legislator{}
	}

	data, err := json.MarshalIndent(roster, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
