// Package prereq parses prerequisite and corequisite text into a boolean
// expression over subject identifiers. The grammar is the registrar's
// prose convention: commas, semicolons and "and" conjoin requirements,
// "or" offers alternatives, and parentheses group.
package prereq

import "strings"

// Expr is a boolean requirement expression. The canonical String form
// joins conjuncts with ", " and alternatives with "/", parenthesizing
// nested groups of the opposite connective.
type Expr interface {
	String() string
}

// Subject is a single requirement leaf: a subject identifier or a free
// phrase like "permission of instructor".
type Subject string

func (s Subject) String() string { return string(s) }

// And requires every child expression.
type And []Expr

func (a And) String() string {
	parts := make([]string, len(a))
	for i, child := range a {
		parts[i] = wrapIf(child, isOr(child))
	}
	return strings.Join(parts, ", ")
}

// Or requires at least one child expression.
type Or []Expr

func (o Or) String() string {
	parts := make([]string, len(o))
	for i, child := range o {
		parts[i] = wrapIf(child, isAnd(child))
	}
	return strings.Join(parts, "/")
}

// Parse converts raw requirement text into an expression. It returns nil
// for empty text or an explicit "none".
func Parse(raw string) Expr {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, ".")
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return nil
	}
	return parseExpr(s)
}

func parseExpr(s string) Expr {
	s = trimGroup(strings.TrimSpace(s))

	if parts := splitTop(s, []string{";", ",", " and "}); len(parts) > 1 {
		children := make(And, 0, len(parts))
		for _, p := range parts {
			if child := parseExpr(p); child != nil {
				children = append(children, child)
			}
		}
		return collapse(children)
	}

	if parts := splitTop(s, []string{" or "}); len(parts) > 1 {
		children := make(Or, 0, len(parts))
		for _, p := range parts {
			if child := parseExpr(p); child != nil {
				children = append(children, child)
			}
		}
		if len(children) == 1 {
			return children[0]
		}
		return children
	}

	if s == "" {
		return nil
	}
	return Subject(s)
}

// splitTop splits s on any of the separators, ignoring separators nested
// inside parentheses. Matching is case-insensitive so "And"/"OR" in prose
// still split.
func splitTop(s string, seps []string) []string {
	lower := strings.ToLower(s)
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
			continue
		case ')':
			if depth > 0 {
				depth--
			}
			continue
		}
		if depth > 0 {
			continue
		}
		for _, sep := range seps {
			if strings.HasPrefix(lower[i:], sep) {
				if p := strings.TrimSpace(s[start:i]); p != "" {
					parts = append(parts, p)
				}
				i += len(sep) - 1
				start = i + 1
				break
			}
		}
	}
	if p := strings.TrimSpace(s[start:]); p != "" {
		parts = append(parts, p)
	}
	return parts
}

// trimGroup removes one pair of parentheses wrapping the whole string,
// leaving annotations like "Physics I (GIR)" alone.
func trimGroup(s string) string {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return s
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 && i != len(s)-1 {
				return s
			}
		}
	}
	return strings.TrimSpace(s[1 : len(s)-1])
}

func collapse(children And) Expr {
	switch len(children) {
	case 0:
		return nil
	case 1:
		return children[0]
	default:
		return children
	}
}

func wrapIf(e Expr, wrap bool) string {
	if wrap {
		return "(" + e.String() + ")"
	}
	return e.String()
}

func isOr(e Expr) bool {
	_, ok := e.(Or)
	return ok
}

func isAnd(e Expr) bool {
	_, ok := e.(And)
	return ok
}
