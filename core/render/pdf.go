// Package render — PDF renderer.
// Produces a printable department catalog using gofpdf: a heading per
// course, a small metadata line, then the description as body text.
package render

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/johnny-y-wang/fireroad-server/core"
)

// PDFRenderer renders one department's courses as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

var tagRegex = regexp.MustCompile(`<[^>]+>`)

// Render converts the department's courses into PDF bytes.
func (r *PDFRenderer) Render(department string, courses []core.Course) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 8, "Course "+department, "", "L", false)
	pdf.Ln(4)

	for _, course := range courses {
		id, _ := course.String(core.SubjectID)
		title, _ := course.String(core.Title)

		pdf.SetFont("Helvetica", "B", 13)
		pdf.MultiCell(0, 6, strings.TrimSpace(id+" "+title), "", "L", false)

		if line := metaLine(course); line != "" {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.SetTextColor(100, 100, 100)
			pdf.MultiCell(0, 5, line, "", "L", false)
			pdf.SetTextColor(0, 0, 0)
		}

		if prereqs, ok := course.String(core.Prerequisites); ok {
			pdf.SetFont("Helvetica", "", 9)
			pdf.MultiCell(0, 5, "Prereq: "+prereqs, "", "L", false)
		}

		if description, ok := course.String(core.Description); ok {
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, stripTags(description), "", "L", false)
		}

		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// stripTags removes residual inline HTML for plain-text rendering.
func stripTags(text string) string {
	return strings.TrimSpace(tagRegex.ReplaceAllString(text, ""))
}
