package crawl

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/johnny-y-wang/fireroad-server/core"
	"github.com/johnny-y-wang/fireroad-server/core/evals"
	"github.com/johnny-y-wang/fireroad-server/core/fetch"
	"github.com/johnny-y-wang/fireroad-server/core/output"
	"github.com/johnny-y-wang/fireroad-server/core/segment"
)

// condensedSplitCount is the number of condensed catalog slices.
const condensedSplitCount = 4

// Aggregator crawls the department address space, parses each page, and
// delegates file output to the writer. Departments are independent and
// processed in parallel; only the summary is shared mutable state.
type Aggregator struct {
	Fetcher     core.Fetcher
	Writer      *output.Writer
	BaseURL     string
	Departments []string               // defaults to DepartmentCodes
	Evaluations map[string]evals.Metrics // optional
	Renderers   []core.Renderer        // optional extra formats
	Workers     int                    // defaults to 1
	Progress    func(fraction float64, message string)
}

// Summary reports what one run produced.
type Summary struct {
	Courses              int
	Pages                int
	MissingPages         int
	SegmentationFailures []string
}

// Run parses every department and writes the per-department, combined and
// condensed course files. Segmentation failures are collected in the
// summary rather than aborting the run; committed results from other
// pages are never discarded.
func (a *Aggregator) Run(ctx context.Context) (Summary, error) {
	departments := a.Departments
	if len(departments) == 0 {
		departments = DepartmentCodes
	}
	workers := a.Workers
	if workers <= 0 {
		workers = 1
	}

	results := make([][]core.Course, len(departments))
	var mu sync.Mutex
	var summary Summary
	var done int

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				department := departments[i]
				courses, stats, err := a.parseDepartment(ctx, department)
				if err != nil {
					// Cancellation: leave committed departments intact.
					continue
				}
				results[i] = courses

				if _, err := a.Writer.WriteCourses(department+".txt", courses, output.AllAttributes); err != nil {
					log.Printf("crawl: %v", err)
				}
				a.renderDepartment(department, courses)

				mu.Lock()
				summary.Courses += len(courses)
				summary.Pages += stats.pages
				summary.MissingPages += stats.missing
				summary.SegmentationFailures = append(summary.SegmentationFailures, stats.segmentationFailures...)
				done++
				if a.Progress != nil {
					a.Progress(float64(done)/float64(len(departments)), fmt.Sprintf("Parsed course %s (%d of %d)", department, done, len(departments)))
				}
				mu.Unlock()
			}
		}()
	}
	for i := range departments {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return summary, err
	}

	var all []core.Course
	for _, courses := range results {
		all = append(all, courses...)
	}

	for i, part := range output.SplitEven(all, condensedSplitCount) {
		name := fmt.Sprintf("condensed_%d.txt", i)
		if _, err := a.Writer.WriteCourses(name, part, output.CondensedAttributes); err != nil {
			return summary, err
		}
	}
	if _, err := a.Writer.WriteCourses("courses.txt", all, output.AllAttributes); err != nil {
		return summary, err
	}

	return summary, nil
}

type departmentStats struct {
	pages                int
	missing              int
	segmentationFailures []string
}

// parseDepartment walks the suffix pages for one department. After the
// first page with courses, a suffix page is only fetched if the first
// page's raw source links to it.
func (a *Aggregator) parseDepartment(ctx context.Context, department string) ([]core.Course, departmentStats, error) {
	var courses []core.Course
	var stats departmentStats
	var originalHTML string

	for _, letter := range pageSuffixAlphabet {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}

		page := pageName(department + string(letter))
		if originalHTML != "" && !strings.Contains(originalHTML, page) {
			continue
		}

		result, err := a.Fetcher.Fetch(ctx, a.BaseURL+page)
		if errors.Is(err, fetch.ErrNotFound) {
			stats.missing++
			continue
		}
		if err != nil {
			log.Printf("crawl: fetching %s: %v", page, err)
			continue
		}

		pageCourses, err := ParsePage(result.HTML, result.URL)
		if errors.Is(err, segment.ErrNoListings) {
			stats.segmentationFailures = append(stats.segmentationFailures, result.URL)
			continue
		}
		if err != nil {
			log.Printf("crawl: parsing %s: %v", page, err)
			continue
		}

		// Suffix pages can advertise subjects from other departments;
		// keep only this department's.
		var kept []core.Course
		for _, course := range pageCourses {
			if id, ok := course.String(core.SubjectID); ok && strings.Contains(id, department) {
				kept = append(kept, course)
			}
		}
		if len(kept) == 0 {
			continue
		}

		courses = append(courses, kept...)
		stats.pages++
		if originalHTML == "" {
			originalHTML = result.HTML
		}
	}

	if a.Evaluations != nil {
		evals.Merge(courses, a.Evaluations)
	}
	return courses, stats, nil
}

func (a *Aggregator) renderDepartment(department string, courses []core.Course) {
	for _, renderer := range a.Renderers {
		data, err := renderer.Render(department, courses)
		if err != nil {
			log.Printf("crawl: rendering %s%s: %v", department, renderer.Extension(), err)
			continue
		}
		if _, err := a.Writer.WriteRaw(department+renderer.Extension(), data); err != nil {
			log.Printf("crawl: %v", err)
		}
	}
}
