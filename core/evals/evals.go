// Package evals merges precomputed subject evaluation metrics into parsed
// courses. The data is an optional collaborator: a JSON file mapping
// subject identifiers to averaged ratings and hours.
package evals

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/johnny-y-wang/fireroad-server/core"
)

// Metrics holds the evaluation figures for one subject.
type Metrics struct {
	Rating          float64 `json:"rating"`
	InClassHours    float64 `json:"in_class_hours"`
	OutOfClassHours float64 `json:"out_of_class_hours"`
	Enrollment      float64 `json:"enrollment"`
}

// Load reads a metrics file keyed by subject identifier.
func Load(path string) (map[string]Metrics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading evaluations: %w", err)
	}
	var metrics map[string]Metrics
	if err := json.Unmarshal(data, &metrics); err != nil {
		return nil, fmt.Errorf("parsing evaluations: %w", err)
	}
	return metrics, nil
}

// Merge writes the metrics for each course that has an entry, matched by
// subject identifier. Courses without an entry are left untouched.
func Merge(courses []core.Course, metrics map[string]Metrics) {
	for _, course := range courses {
		id, ok := course.String(core.SubjectID)
		if !ok {
			continue
		}
		m, ok := metrics[id]
		if !ok {
			continue
		}
		course.SetFloat(core.AverageRating, m.Rating)
		course.SetFloat(core.AverageInClassHours, m.InClassHours)
		course.SetFloat(core.AverageOutOfClassHours, m.OutOfClassHours)
		course.SetFloat(core.Enrollment, m.Enrollment)
	}
}
