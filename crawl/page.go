package crawl

import (
	"strings"

	"github.com/johnny-y-wang/fireroad-server/core"
	"github.com/johnny-y-wang/fireroad-server/core/classify"
	"github.com/johnny-y-wang/fireroad-server/core/extract"
	"github.com/johnny-y-wang/fireroad-server/core/segment"
)

// ParsePage runs one retrieved department page through segmentation,
// extraction, classification and autofill, returning its courses in
// document order.
func ParsePage(pageHTML, pageURL string) ([]core.Course, error) {
	regions, err := segment.Segment(pageHTML)
	if err != nil {
		return nil, err
	}

	var courses []core.Course
	var pending []string

	for _, region := range regions {
		if len(region.Roots) == 0 {
			pending = append(pending, region.ID)
			continue
		}

		items := extract.Items(region.Roots)
		course := core.NewCourse(strings.ReplaceAll(region.ID, "[J]", ""))
		course.SetString(core.SubjectURL, pageURL+"#"+region.ID)
		classify.Classify(items, course)
		courses = append(courses, course)

		// Empty regions borrow everything but the schedule from the next
		// classified neighbor, e.g. sequential subject numbers advertised
		// on one listing.
		courses = append(courses, Autofill(course, pending)...)
		pending = nil
	}

	return courses, nil
}

// Autofill clones the source course for each placeholder identifier,
// overriding the subject identifier and dropping the schedule.
func Autofill(source core.Course, ids []string) []core.Course {
	clones := make([]core.Course, 0, len(ids))
	for _, id := range ids {
		clone := source.Clone()
		clone.SetString(core.SubjectID, id)
		clone.Delete(core.Schedule)
		clones = append(clones, clone)
	}
	return clones
}
