// Package render provides optional per-department output renderers that
// sit beside the canonical flat-file writer. This file implements the
// Markdown renderer: a human-readable listing of one department's parsed
// courses.
package render

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/johnny-y-wang/fireroad-server/core"
)

// MarkdownRenderer writes one department's courses as a Markdown listing.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render builds the Markdown document for one department.
func (r *MarkdownRenderer) Render(department string, courses []core.Course) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "# Course %s\n", department)

	for _, course := range courses {
		id, _ := course.String(core.SubjectID)
		title, _ := course.String(core.Title)
		fmt.Fprintf(&b, "\n## %s\n", strings.TrimSpace(id+" "+title))

		if line := metaLine(course); line != "" {
			fmt.Fprintf(&b, "\n_%s_\n", line)
		}
		if prereqs, ok := course.String(core.Prerequisites); ok {
			fmt.Fprintf(&b, "\nPrereq: %s\n", prereqs)
		}
		if description, ok := course.String(core.Description); ok {
			fmt.Fprintf(&b, "\n%s\n", flattenMarkup(description))
		}
		if notes, ok := course.String(core.Notes); ok {
			for _, note := range strings.Split(notes, "\n") {
				fmt.Fprintf(&b, "\n> %s\n", note)
			}
		}
	}

	return []byte(b.String()), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

// metaLine summarizes units, level and offered terms on one line.
func metaLine(course core.Course) string {
	var parts []string
	if total, ok := course.Int(core.TotalUnits); ok {
		lecture, _ := course.Int(core.LectureUnits)
		lab, _ := course.Int(core.LabUnits)
		preparation, _ := course.Int(core.PreparationUnits)
		parts = append(parts, fmt.Sprintf("%d units (%d-%d-%d)", total, lecture, lab, preparation))
	}
	if level, ok := course.String(core.SubjectLevel); ok {
		parts = append(parts, level)
	}
	var terms []string
	for _, t := range []struct {
		key  core.AttributeKey
		name string
	}{
		{core.OfferedFall, "Fall"},
		{core.OfferedIAP, "IAP"},
		{core.OfferedSpring, "Spring"},
		{core.OfferedSummer, "Summer"},
	} {
		if offered, _ := course.Bool(t.key); offered {
			terms = append(terms, t.name)
		}
	}
	if len(terms) > 0 {
		parts = append(parts, strings.Join(terms, ", "))
	}
	return strings.Join(parts, " · ")
}

// flattenMarkup converts any residual inline HTML in scraped text (nested
// emphasis survives extraction) into Markdown.
func flattenMarkup(text string) string {
	if !strings.Contains(text, "<") {
		return text
	}
	markdown, err := htmltomarkdown.ConvertString(text)
	if err != nil {
		return text
	}
	return strings.TrimSpace(markdown)
}
