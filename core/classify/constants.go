package classify

import "strings"

// Keyword vocabulary for the registrar's catalog conventions. All prefix
// matching is done against the lowercased item.
const (
	jointClass = "[J]"

	prereqPrefix = "prereq:"
	coreqPrefix  = "coreq:"
	urlPrefix    = "http://student.mit.edu"

	finalFlag = "+final"

	undergrad      = "undergrad"
	undergradValue = "U"
	graduate       = "graduate"
	graduateValue  = "G"

	meetsWithPrefix      = "meets with "
	equivalentSubjPrefix = "credit cannot also be received for "
	jointSubjPrefix      = "same subject as "

	notOfferedPrefix    = "not offered academic year "
	unitsArrangedPrefix = "units arranged"
	unitsPrefix         = "units"
	pdfString           = "[P/D/F]"

	hassH      = "hass humanities"
	hassA      = "hass arts"
	hassS      = "hass social sciences"
	hassHBasic = "humanities"
	hassABasic = "arts"
	hassSBasic = "social sciences"

	ciH  = "communication intensive hass"
	ciHW = "communication intensive writing"

	fall   = "fall"
	iap    = "iap"
	spring = "spring"
	summer = "summer"
)

// crossListingNoiseOffset guards against a stray cross-listing prefix
// embedded mid-sentence: the first match is skipped if it starts deeper
// than this into the item. Tunable, not load-bearing.
const crossListingNoiseOffset = 3

// abbreviations maps the long requirement phrasings to their stored codes.
var abbreviations = map[string]string{
	"hass humanities":                 "HASS-H",
	"hass arts":                       "HASS-A",
	"hass social sciences":            "HASS-S",
	"hass elective":                   "HASS-E",
	"humanities":                      "HASS-H",
	"arts":                            "HASS-A",
	"social sciences":                 "HASS-S",
	"communication intensive hass":    "CI-H",
	"communication intensive writing": "CI-HW",
}

// abbreviation normalizes a requirement phrase to its code, returning the
// trimmed input when the phrase is not in the vocabulary.
func abbreviation(s string) string {
	trimmed := strings.TrimSpace(s)
	if code, ok := abbreviations[strings.ToLower(trimmed)]; ok {
		return code
	}
	return trimmed
}

// girRequirements is the fixed vocabulary of General Institute
// Requirements and their stored codes. Items must match exactly after
// trimming.
var girRequirements = map[string]string{
	"Physics I (GIR)":             "PHY1",
	"Physics II (GIR)":            "PHY2",
	"Calculus I (GIR)":            "CAL1",
	"Calculus II (GIR)":           "CAL2",
	"Chemistry (GIR)":             "CHEM",
	"Biology (GIR)":               "BIOL",
	"1/2 Rest Elec in Sci & Tech": "RST2",
	"Rest Elec in Sci & Tech":     "REST",
	"Institute Lab":               "LAB",
	"Partial Lab":                 "LAB2",
}
