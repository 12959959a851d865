// Package classify maps extracted info items onto typed course
// attributes. Classification is an ordered cascade of mutually exclusive
// rules per item — first match wins — followed by an unconditional
// catch-all that keeps the longest unclassified item as the description.
// The cascade order matters: lexically distinctive items (prereqs,
// schedules, URLs) must be captured before the generic length-based
// heuristics get a chance to misread them as prose.
package classify

import (
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/johnny-y-wang/fireroad-server/core"
	"github.com/johnny-y-wang/fireroad-server/core/prereq"
	"github.com/johnny-y-wang/fireroad-server/core/schedule"
)

// Result is the outcome of testing one rule against one item. Definite
// marks an item that can no longer be a description candidate; Match
// classifies the item but leaves the catch-all open.
type Result int

const (
	NoMatch Result = iota
	Match
	Definite
)

// Rule is one (predicate, action) pair in the cascade. Rules are exported
// as a list so their priority is independently testable.
type Rule struct {
	Name  string
	Apply func(item string, attrs core.Course) Result
}

// Rules is the cascade, in priority order.
var Rules = []Rule{
	{"prereq", classifyPrereq},
	{"coreq", classifyCoreq},
	{"url", classifyURL},
	{"schedule", classifySchedule},
	{"title", classifyTitle},
	{"level", classifyLevel},
	{"notes", classifyNotes},
	{"cross-listing", classifyCrossListings},
	{"not-offered", classifyNotOffered},
	{"variable-units", classifyVariableUnits},
	{"units", classifyUnits},
	{"hass", classifyHass},
	{"hass-combined", classifyCombinedHass},
	{"ci", classifyCI},
	{"gir", classifyGIR},
	{"instructors", classifyInstructors},
	{"offered-terms", classifyOfferedTerms},
}

// Classify applies the cascade to each item in order, mutating attrs.
// The map must already carry the subject identifier.
func Classify(items []core.InfoItem, attrs core.Course) core.Course {
	for _, item := range items {
		processItem(string(item), attrs)
	}
	return attrs
}

func processItem(item string, attrs core.Course) {
	result := NoMatch
	for _, rule := range Rules {
		if result = rule.Apply(item, attrs); result != NoMatch {
			break
		}
	}

	// Catch-all: because items arrive length-ascending, keeping any
	// longer eligible item leaves the longest one as the description.
	if result != Definite && len(item) > 30 {
		if current, ok := attrs.String(core.Description); !ok || len(current) < len(item) {
			attrs.SetString(core.Description, strings.TrimSpace(item))
		}
	}
}

func classifyPrereq(item string, attrs core.Course) Result {
	idx := strings.Index(strings.ToLower(item), prereqPrefix)
	if idx < 0 {
		return NoMatch
	}
	if expr := prereq.Parse(item[idx+len(prereqPrefix):]); expr != nil {
		attrs.SetString(core.Prerequisites, expr.String())
	}
	return Definite
}

func classifyCoreq(item string, attrs core.Course) Result {
	idx := strings.Index(strings.ToLower(item), coreqPrefix)
	if idx < 0 {
		return NoMatch
	}
	if expr := prereq.Parse(item[idx+len(coreqPrefix):]); expr != nil {
		attrs.SetString(core.Corequisites, expr.String())
	}
	return Definite
}

func classifyURL(item string, attrs core.Course) Result {
	if !strings.Contains(strings.ToLower(item), urlPrefix) {
		return NoMatch
	}
	// The course URL is derived from the page address, not scraped.
	return Definite
}

// scheduleHintRegex spots a meeting-time token: weekday letters, an
// optional evening marker, and a period code.
var scheduleHintRegex = regexp.MustCompile(`[MTWRF]+(\s*EVE\s*\()?\d+\)?`)

func classifySchedule(item string, attrs core.Course) Result {
	if !scheduleHintRegex.MatchString(item) {
		return NoMatch
	}

	trimmed := item
	if strings.Contains(trimmed, finalFlag) {
		attrs.SetBool(core.HasFinal, true)
		trimmed = strings.ReplaceAll(trimmed, finalFlag, "")
	}

	sessions, quarterInfo := schedule.Parse(strings.ReplaceAll(strings.TrimSpace(trimmed), "\n", ""))
	if len(sessions) > 0 {
		attrs.SetGroups(core.Schedule, schedule.Groups(sessions))
	}
	if quarterInfo != "" {
		attrs.SetString(core.QuarterInformation, quarterInfo)
	}
	return Definite
}

// subjectIDListRegex matches a run of subject identifiers such as
// "6.042[J], 18.062" at the start of a title item.
var subjectIDListRegex = regexp.MustCompile(`([A-Z0-9.-]+(,\s)?)+`)

func classifyTitle(item string, attrs core.Course) Result {
	id, ok := attrs.String(core.SubjectID)
	if !ok || len(item) > 125 {
		return NoMatch
	}

	titleRegex := regexp.MustCompile(regexp.QuoteMeta(id) + `(` + regexp.QuoteMeta(jointClass) + `)?\s+`)
	if !titleRegex.MatchString(item) {
		return NoMatch
	}

	end, ok := subjectIDListEnd(item)
	if !ok {
		return NoMatch
	}
	title := strings.TrimSpace(strings.ReplaceAll(item[end:], jointClass, ""))
	attrs.SetString(core.Title, title)
	return Definite
}

// subjectIDListEnd finds where the leading identifier list stops. A match
// immediately followed by a colon is a label ("Lecture:"), not a subject
// list.
func subjectIDListEnd(item string) (int, bool) {
	for _, loc := range subjectIDListRegex.FindAllStringIndex(item, -1) {
		if loc[1] >= len(item) || item[loc[1]] != ':' {
			return loc[1], true
		}
	}
	return 0, false
}

func classifyLevel(item string, attrs core.Course) Result {
	lower := strings.ToLower(item)
	// The length guard keeps the keyword from matching inside longer
	// descriptive text.
	if strings.Contains(lower, undergrad) && abs(len(item)-len(undergrad)) < 10 {
		attrs.SetString(core.SubjectLevel, undergradValue)
		return Definite
	}
	if strings.Contains(lower, graduate) && abs(len(item)-len(graduate)) < 10 {
		attrs.SetString(core.SubjectLevel, graduateValue)
		return Definite
	}
	return NoMatch
}

func classifyNotes(item string, attrs core.Course) Result {
	description, _ := attrs.String(core.Description)
	if len(item) <= 75 || len(description) <= len(item) {
		return NoMatch
	}
	attrs.AppendLine(core.Notes, strings.TrimSpace(item))
	return Match
}

var crossListingPrefixes = []string{meetsWithPrefix, equivalentSubjPrefix, jointSubjPrefix}

func classifyCrossListings(item string, attrs core.Course) Result {
	matches := findCrossListingPrefixes(item)
	if len(matches) == 0 {
		return NoMatch
	}

	for i, m := range matches {
		// A leading fragment before the first prefix means the prefix is
		// embedded mid-sentence; skip it.
		if i == 0 && m.start > crossListingNoiseOffset {
			continue
		}

		end := len(item)
		if i+1 < len(matches) {
			end = matches[i+1].start
		}
		if close := strings.IndexByte(item[m.end:end], ')'); close >= 0 {
			end = m.end + close
		}

		var contents []string
		for _, comp := range strings.Split(item[m.end:end], ",") {
			if trimmed := strings.TrimSpace(comp); trimmed != "" {
				contents = append(contents, trimmed)
			}
		}

		switch m.prefix {
		case meetsWithPrefix:
			attrs.SetList(core.MeetsWithSubjects, contents)
		case equivalentSubjPrefix:
			attrs.SetList(core.EquivalentSubjects, contents)
		case jointSubjPrefix:
			attrs.SetList(core.JointSubjects, contents)
		default:
			log.Printf("classify: unrecognized cross-listing prefix %q", m.prefix)
		}
	}
	return Match
}

type prefixMatch struct {
	start, end int
	prefix     string
}

func findCrossListingPrefixes(item string) []prefixMatch {
	lower := strings.ToLower(item)
	var matches []prefixMatch
	for i := 0; i < len(lower); {
		best, bestPrefix := -1, ""
		for _, p := range crossListingPrefixes {
			if idx := strings.Index(lower[i:], p); idx >= 0 && (best < 0 || i+idx < best) {
				best, bestPrefix = i+idx, p
			}
		}
		if best < 0 {
			break
		}
		matches = append(matches, prefixMatch{best, best + len(bestPrefix), bestPrefix})
		i = best + len(bestPrefix)
	}
	return matches
}

func classifyNotOffered(item string, attrs core.Course) Result {
	idx := strings.Index(strings.ToLower(item), notOfferedPrefix)
	if idx < 0 {
		return NoMatch
	}
	attrs.SetString(core.NotOfferedYear, strings.TrimSpace(item[idx+len(notOfferedPrefix):]))
	return Match
}

func classifyVariableUnits(item string, attrs core.Course) Result {
	if !strings.Contains(strings.ToLower(item), unitsArrangedPrefix) {
		return NoMatch
	}
	attrs.SetBool(core.IsVariableUnits, true)
	return Match
}

func classifyUnits(item string, attrs core.Course) Result {
	if !strings.Contains(strings.ToLower(item), unitsPrefix) {
		return NoMatch
	}

	working := item
	if strings.Contains(working, pdfString) {
		attrs.SetBool(core.PDFOption, true)
		working = strings.ReplaceAll(working, pdfString, "")
	} else {
		attrs.SetBool(core.PDFOption, false)
	}

	idx := strings.Index(strings.ToLower(working), unitsPrefix)
	unitsString := strings.TrimSpace(working[idx+len(unitsPrefix):])

	// The triple is the last whitespace-separated token, e.g. "3-0-9".
	fields := strings.Fields(unitsString)
	if len(fields) == 0 {
		return Match
	}
	comps := strings.Split(strings.Trim(fields[len(fields)-1], "()"), "-")
	if len(comps) < 3 {
		// Fewer than three numeric components leaves the unit fields unset.
		return Match
	}

	values := make([]int, 3)
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(comps[i]))
		if err != nil {
			return Match
		}
		values[i] = n
	}
	attrs.SetInt(core.LectureUnits, values[0])
	attrs.SetInt(core.LabUnits, values[1])
	attrs.SetInt(core.PreparationUnits, values[2])
	attrs.SetInt(core.TotalUnits, values[0]+values[1]+values[2])
	return Match
}

func classifyHass(item string, attrs core.Course) Result {
	lower := strings.ToLower(item)
	for _, code := range []string{hassH, hassA, hassS} {
		if strings.Contains(lower, code) {
			attrs.SetString(core.HassRequirement, abbreviation(item))
			return Match
		}
	}
	return NoMatch
}

func classifyCombinedHass(item string, attrs core.Course) Result {
	if !strings.Contains(item, "+") || len(item) >= 50 {
		return NoMatch
	}
	lower := strings.ToLower(item)
	found := false
	for _, code := range []string{hassHBasic, hassABasic, hassSBasic} {
		if strings.Contains(lower, code) {
			found = true
			break
		}
	}
	if !found {
		return NoMatch
	}

	comps := strings.Split(item, "+")
	codes := make([]string, len(comps))
	for i, comp := range comps {
		codes[i] = abbreviation(comp)
	}
	attrs.SetString(core.HassRequirement, strings.Join(codes, ","))
	return Match
}

func classifyCI(item string, attrs core.Course) Result {
	lower := strings.ToLower(item)
	if !strings.Contains(lower, ciH) && !strings.Contains(lower, ciHW) {
		return NoMatch
	}
	attrs.SetString(core.CommunicationRequirement, abbreviation(item))
	return Match
}

func classifyGIR(item string, attrs core.Course) Result {
	code, ok := girRequirements[strings.TrimSpace(item)]
	if !ok {
		return NoMatch
	}
	attrs.SetString(core.GIR, code)
	return Match
}

// instructorRegex matches name forms like "J. Smith" at a word boundary.
var instructorRegex = regexp.MustCompile(`(^|[^A-Za-z0-9])[A-Z]\. \w+`)

func classifyInstructors(item string, attrs core.Course) Result {
	if !instructorRegex.MatchString(item) {
		return NoMatch
	}

	entry := strings.ReplaceAll(strings.TrimSpace(item), "\n", "")
	existing, ok := attrs.String(core.Instructors)
	if ok && (strings.Contains(strings.ToLower(existing), fall) || strings.Contains(strings.ToLower(entry), spring)) {
		// Keep per-term instructor lists on separate lines.
		attrs.AppendLine(core.Instructors, entry)
	} else if existing != entry {
		attrs.SetString(core.Instructors, entry)
	}
	return Match
}

// classifyOfferedTerms evaluates each term keyword independently: a
// multi-term string like "Fall, Spring" sets every matching flag.
func classifyOfferedTerms(item string, attrs core.Course) Result {
	lower := strings.ToLower(item)
	result := NoMatch
	for keyword, key := range map[string]core.AttributeKey{
		fall:   core.OfferedFall,
		iap:    core.OfferedIAP,
		spring: core.OfferedSpring,
		summer: core.OfferedSummer,
	} {
		if strings.Contains(lower, keyword) {
			attrs.SetBool(key, true)
			result = Match
		}
	}
	return result
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
