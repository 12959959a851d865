// Package schedule parses compact registrar meeting-time codes such as
// "MW9.30 (10-250)" or "TR EVE (7-9)" into structured sessions. The parser
// never fails hard: a token the grammar does not recognize is passed
// through verbatim as quarter information.
package schedule

import (
	"regexp"
	"strings"
)

// SessionKind labels the role of one meeting group. The registrar does not
// tag groups explicitly, so the kind is inferred from position among the
// repeated groups for one subject.
type SessionKind string

const (
	Lecture    SessionKind = "Lecture"
	Recitation SessionKind = "Recitation"
	Lab        SessionKind = "Lab"
	Design     SessionKind = "Design"
)

var positionalKinds = []SessionKind{Lecture, Recitation, Lab, Design}

// Session is one structured meeting entry.
type Session struct {
	Days     string // weekday letters, e.g. "MW"
	Period   string // numeric period/slot code, e.g. "9.30" or "7-9"
	Location string // room code from a parenthesized qualifier, may be empty
	Kind     SessionKind
	Evening  bool
}

var (
	// A meeting group is a weekday-letter run followed by either an
	// evening marker with a parenthesized period, or a bare period code.
	sessionRegex = regexp.MustCompile(`([MTWRF]+)\s*(?:EVE\s*\(\s*([0-9][0-9A-Z.:\-]*)\s*\)|([0-9][0-9.:\-]*))`)

	// Room numbers and building names, e.g. "( 1-123 )" or "(10-250)".
	locationRegex = regexp.MustCompile(`\(\s*([A-Z0-9][A-Z0-9,\s-]*)\s*\)`)

	// Partial-term qualifiers such as "(begins Oct 21)".
	quarterInfoRegex = regexp.MustCompile(`(?i)\(?(begins|ends)\s+(.+?)(\.|\))`)

	// Labels, alternative separators and placeholders that carry no
	// meeting-time information.
	ignoreRegex = regexp.MustCompile(`(?i)\b(lecture|recitation|lab|design)\s*:|\bTBA\b|\bor\b`)
)

// Parse converts one trimmed schedule token into sessions plus a
// quarter-information string. A malformed token yields no sessions and the
// original text passed through as quarter information.
func Parse(token string) ([]Session, string) {
	original := strings.TrimSpace(token)
	if original == "" {
		return nil, ""
	}

	quarterInfo := ""
	working := strings.ReplaceAll(original, "\n", "")

	// Pull out partial-term qualifiers before matching meeting groups.
	if m := quarterInfoRegex.FindStringSubmatch(working); m != nil {
		flag := "0"
		if strings.EqualFold(m[1], "begins") {
			flag = "1"
		}
		quarterInfo = flag + "," + strings.TrimSpace(strings.ToLower(m[2]))
		working = quarterInfoRegex.ReplaceAllString(working, "")
	}
	working = ignoreRegex.ReplaceAllString(working, "")

	matches := sessionRegex.FindAllStringSubmatchIndex(working, -1)
	if len(matches) == 0 {
		return nil, original
	}

	covered := make([]bool, len(working))
	var sessions []Session
	for i, m := range matches {
		markCovered(covered, m[0], m[1])

		s := Session{
			Days: working[m[2]:m[3]],
			Kind: kindForPosition(i),
		}
		if m[4] >= 0 {
			s.Evening = true
			s.Period = working[m[4]:m[5]]
		} else {
			s.Period = working[m[6]:m[7]]
		}

		// A room qualifier, if any, sits between this group and the next.
		searchEnd := len(working)
		if i+1 < len(matches) {
			searchEnd = matches[i+1][0]
		}
		if loc := locationRegex.FindStringSubmatchIndex(working[m[1]:searchEnd]); loc != nil {
			candidate := working[m[1]+loc[2] : m[1]+loc[3]]
			if !strings.Contains(candidate, "PM") {
				s.Location = strings.TrimSpace(candidate)
				markCovered(covered, m[1]+loc[0], m[1]+loc[1])
			}
		}

		sessions = append(sessions, s)
	}

	// Whatever the grammar did not consume is quarter information.
	if leftover := uncovered(working, covered); leftover != "" {
		if quarterInfo != "" {
			quarterInfo += " " + leftover
		} else {
			quarterInfo = leftover
		}
	}
	return sessions, quarterInfo
}

// Groups encodes sessions as grouped string lists for the output writer:
// one inner list per session, [kind, location/days/eveningFlag/period].
func Groups(sessions []Session) [][]string {
	groups := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		eve := "0"
		if s.Evening {
			eve = "1"
		}
		groups = append(groups, []string{
			string(s.Kind),
			s.Location + "/" + s.Days + "/" + eve + "/" + s.Period,
		})
	}
	return groups
}

func kindForPosition(i int) SessionKind {
	if i < len(positionalKinds) {
		return positionalKinds[i]
	}
	return Lab
}

func markCovered(covered []bool, start, end int) {
	for i := start; i < end && i < len(covered); i++ {
		covered[i] = true
	}
}

func uncovered(s string, covered []bool) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if !covered[i] {
			b.WriteByte(s[i])
		}
	}
	return strings.Trim(b.String(), " \t\n,;.()/-")
}
