// Package segment splits one department page into per-subject regions.
// The registrar's markup mixes two boundary conventions: named anchor
// elements, and h3 headings that open a subject without any anchor. The
// segmenter scans the listings container's children in document order and
// partitions them into regions at those boundaries.
package segment

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/johnny-y-wang/fireroad-server/core"
	"github.com/johnny-y-wang/fireroad-server/core/extract"
)

// listingsSelector locates the container holding every subject listing on
// a department page. If it matches nothing on a retrieved page, the
// registrar's markup contract has changed.
const listingsSelector = "#contentleft table table td"

// ErrNoListings reports a successfully retrieved page with no subject
// listings container. This is distinct from a missing page: it means the
// segmentation heuristics need maintenance.
var ErrNoListings = errors.New("no subject listings container")

// subjectHeadingRegex matches a subject identifier at the start of a
// heading, e.g. "6.042 Mathematics for Computer Science".
var subjectHeadingRegex = regexp.MustCompile(`^([A-Z0-9.-]+)\s+`)

var headingTags = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// Segment parses a department page and returns its subject regions in
// document order.
func Segment(pageHTML string) ([]core.SubjectRegion, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}
	container := doc.Find(listingsSelector).First()
	if container.Length() == 0 {
		return nil, ErrNoListings
	}
	return RegionsFrom(container.Nodes[0]), nil
}

// RegionsFrom scans the direct children of the listings container. A named
// anchor starts an empty region; a heading whose leading identifier
// differs from the most recently opened region starts a region seeded with
// the heading itself. Everything else belongs to the open region; content
// before the first boundary is discarded. Empty regions are retained as
// placeholders for autofill.
func RegionsFrom(container *html.Node) []core.SubjectRegion {
	var regions []core.SubjectRegion

	for child := container.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode {
			continue
		}

		if child.Data == "a" {
			if name := extract.Attr(child, "name"); name != "" {
				regions = append(regions, core.SubjectRegion{ID: name})
				continue
			}
		}

		if headingTags[child.Data] {
			match := subjectHeadingRegex.FindStringSubmatch(extract.Text(child))
			if match != nil && (len(regions) == 0 || match[1] != regions[len(regions)-1].ID) {
				regions = append(regions, core.SubjectRegion{
					ID:    match[1],
					Roots: []*html.Node{child},
				})
				continue
			}
		}

		if len(regions) > 0 {
			last := &regions[len(regions)-1]
			last.Roots = append(last.Roots, child)
		}
	}

	return regions
}
