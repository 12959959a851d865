// Package extract flattens a subject region's markup subtrees into an
// ordered list of candidate info items. Two complementary strategies run
// over the same roots: a structural walk that understands images, anchors
// and text containers, and a flat-text fallback that recovers lines the
// markup nesting hides from the walk. Items are sorted ascending by
// length so the classifier sees short, specific strings first and long
// prose (descriptions, notes) last.
package extract

import (
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/johnny-y-wang/fireroad-server/core"
)

// Items returns the ordered candidate list for one region's roots.
func Items(roots []*html.Node) []core.InfoItem {
	var items []string

	// Structural walk. An anchor carrying a "name" attribute is a
	// segmentation boundary reached early: nothing beneath or beyond it
	// is course content.
	for _, root := range roots {
		res := walk(root)
		if res.stopped && len(items) > 0 {
			break
		}
		items = append(items, res.items...)
		if res.stopped {
			break
		}
	}

	// Flat-text fallback over the same roots, including trailing text
	// that sits between elements.
	var flat strings.Builder
	for _, root := range roots {
		flat.WriteString(Text(root))
		flat.WriteString(tailText(root))
	}
	for _, line := range strings.Split(flat.String(), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			items = append(items, trimmed)
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return normalizedLen(items[i]) < normalizedLen(items[j])
	})

	out := make([]core.InfoItem, len(items))
	for i, item := range items {
		out[i] = core.InfoItem(item)
	}
	return out
}

// walkResult is the outcome of visiting one subtree: the items found, and
// whether a segmentation boundary was hit (which short-circuits the rest
// of the region).
type walkResult struct {
	items   []string
	stopped bool
}

func walk(n *html.Node) walkResult {
	if n.Type != html.ElementNode {
		return walkResult{}
	}

	switch n.Data {
	case "img":
		if title := Attr(n, "title"); title != "" {
			return walkResult{items: []string{title}}
		}
		return walkResult{}

	case "a":
		if _, ok := lookupAttr(n, "name"); ok {
			return walkResult{stopped: true}
		}
		if text := strings.TrimSpace(Text(n)); text != "" {
			return walkResult{items: []string{text}}
		}
		return walkResult{}

	case "span":
		// Keep the inner markup intact: tables of schedule and unit
		// segments are sometimes wrapped in nested emphasis.
		if inner := innerHTML(n); inner != "" {
			return walkResult{items: []string{inner}}
		}
		return walkResult{}

	default:
		var items []string
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			res := walk(c)
			items = append(items, res.items...)
			if res.stopped {
				return walkResult{items: items, stopped: true}
			}
		}
		return walkResult{items: items}
	}
}

// Text renders the flat text of a subtree, with <br> elements becoming
// line breaks so the fallback can split on them.
func Text(n *html.Node) string {
	var b strings.Builder
	appendText(&b, n)
	return b.String()
}

func appendText(b *strings.Builder, n *html.Node) {
	switch {
	case n.Type == html.TextNode:
		b.WriteString(n.Data)
	case n.Type == html.ElementNode && n.Data == "br":
		b.WriteString("\n")
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			appendText(b, c)
		}
	}
}

// tailText collects the text nodes that directly follow an element, up to
// its next element sibling.
func tailText(n *html.Node) string {
	var b strings.Builder
	for s := n.NextSibling; s != nil && s.Type != html.ElementNode; s = s.NextSibling {
		if s.Type == html.TextNode {
			b.WriteString(s.Data)
		}
	}
	return b.String()
}

// innerHTML serializes a node's children, preserving nested tags.
func innerHTML(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return Text(n)
		}
	}
	return b.String()
}

// Attr returns the value of the named attribute, or "" if absent.
func Attr(n *html.Node, name string) string {
	val, _ := lookupAttr(n, name)
	return val
}

func lookupAttr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func normalizedLen(s string) int {
	return len(s) - strings.Count(s, "\n")
}
