// Package output writes parsed courses to flat files. The field encoding
// is a bit-exact contract with downstream consumers: strings are quoted
// with inner quotes and newlines literalized, booleans are single-letter
// markers, floats are fixed to two decimals, lists join with commas, and
// grouped lists join inner with commas and outer with semicolons.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/johnny-y-wang/fireroad-server/core"
)

// AllAttributes is the full projection written to department files and
// the combined courses file. The order is the column order.
var AllAttributes = []core.AttributeKey{
	core.SubjectID, core.Title, core.SubjectLevel, core.Description,
	core.LectureUnits, core.LabUnits, core.PreparationUnits, core.TotalUnits,
	core.IsVariableUnits, core.PDFOption, core.HasFinal,
	core.OfferedFall, core.OfferedIAP, core.OfferedSpring, core.OfferedSummer,
	core.Prerequisites, core.Corequisites,
	core.Schedule, core.QuarterInformation, core.NotOfferedYear,
	core.HassRequirement, core.CommunicationRequirement, core.GIR,
	core.MeetsWithSubjects, core.JointSubjects, core.EquivalentSubjects,
	core.Instructors, core.Notes, core.SubjectURL,
	core.AverageRating, core.AverageInClassHours, core.AverageOutOfClassHours,
	core.Enrollment,
}

// CondensedAttributes is the reduced projection for the condensed splits.
var CondensedAttributes = []core.AttributeKey{
	core.SubjectID, core.Title, core.TotalUnits,
	core.OfferedFall, core.OfferedIAP, core.OfferedSpring, core.OfferedSummer,
	core.HassRequirement, core.CommunicationRequirement, core.GIR,
	core.Instructors, core.AverageRating, core.AverageInClassHours,
	core.AverageOutOfClassHours, core.Enrollment,
}

// Writer writes course files into a single output directory.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given directory, creating it if
// needed. An empty dir defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &Writer{OutputDir: outputDir}, nil
}

// WriteCourses writes one file: a header row naming the projection,
// then one encoded row per course.
func (w *Writer) WriteCourses(name string, courses []core.Course, projection []core.AttributeKey) (string, error) {
	lines := make([]string, 0, len(courses)+1)

	header := make([]string, len(projection))
	for i, key := range projection {
		header[i] = string(key)
	}
	lines = append(lines, strings.Join(header, ","))

	for _, course := range courses {
		fields := make([]string, len(projection))
		for i, key := range projection {
			fields[i] = FieldValue(course, key)
		}
		lines = append(lines, strings.Join(fields, ","))
	}

	path := filepath.Join(w.OutputDir, name)
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// WriteRaw writes renderer output (Markdown, JSON, PDF) alongside the
// course files.
func (w *Writer) WriteRaw(name string, data []byte) (string, error) {
	path := filepath.Join(w.OutputDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// FieldValue encodes one attribute per the fixed per-type rule. An absent
// attribute encodes as the empty field.
func FieldValue(course core.Course, key core.AttributeKey) string {
	v, ok := course[key]
	if !ok {
		return ""
	}
	switch v.Kind {
	case core.KindString:
		escaped := strings.ReplaceAll(v.Str, `"`, "'")
		escaped = strings.ReplaceAll(escaped, "\n", `\n`)
		return `"` + escaped + `"`
	case core.KindBool:
		if v.Bool {
			return "Y"
		}
		return "N"
	case core.KindInt:
		return strconv.Itoa(v.Int)
	case core.KindFloat:
		return strconv.FormatFloat(v.Float, 'f', 2, 64)
	case core.KindList:
		return `"` + strings.Join(v.List, ",") + `"`
	case core.KindGroups:
		inner := make([]string, len(v.Groups))
		for i, group := range v.Groups {
			inner[i] = strings.Join(group, ",")
		}
		return `"` + strings.Join(inner, ";") + `"`
	default:
		return ""
	}
}

// SplitEven divides courses into n contiguous slices of near-equal size,
// for the condensed catalog files.
func SplitEven(courses []core.Course, n int) [][]core.Course {
	if n <= 0 {
		return nil
	}
	parts := make([][]core.Course, 0, n)
	for i := 0; i < n; i++ {
		lower := i * len(courses) / n
		upper := (i + 1) * len(courses) / n
		parts = append(parts, courses[lower:upper])
	}
	return parts
}
