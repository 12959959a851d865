// Package render — JSON renderer.
// Emits one department's courses as structured JSON, with each attribute
// carrying its native type rather than the flat-file encoding.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/johnny-y-wang/fireroad-server/core"
)

// departmentJSON is the JSON document for one department.
type departmentJSON struct {
	Department string           `json:"department"`
	Courses    []map[string]any `json:"courses"`
}

// JSONRenderer produces structured JSON output.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the department's courses with native attribute values.
func (r *JSONRenderer) Render(department string, courses []core.Course) ([]byte, error) {
	doc := departmentJSON{
		Department: department,
		Courses:    make([]map[string]any, 0, len(courses)),
	}
	for _, course := range courses {
		attrs := make(map[string]any, len(course))
		for key, value := range course {
			attrs[string(key)] = value.Native()
		}
		doc.Courses = append(doc.Courses, attrs)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
