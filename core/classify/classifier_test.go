package classify

import (
	"reflect"
	"testing"

	"github.com/johnny-y-wang/fireroad-server/core"
)

func classifyOne(t *testing.T, id, item string) core.Course {
	t.Helper()
	attrs := core.NewCourse(id)
	processItem(item, attrs)
	return attrs
}

func TestPrereqRule(t *testing.T) {
	attrs := classifyOne(t, "6.002", "Prereq: 6.001 and 18.03")
	if got, _ := attrs.String(core.Prerequisites); got != "6.001, 18.03" {
		t.Errorf("prerequisites = %q", got)
	}
}

func TestPrereqNoneLeavesAttributeUnset(t *testing.T) {
	attrs := classifyOne(t, "6.002", "Prereq: None")
	if attrs.Has(core.Prerequisites) {
		t.Error("expected no prerequisites for None")
	}
}

func TestCoreqRule(t *testing.T) {
	attrs := classifyOne(t, "8.02", "Coreq: 18.02 or 18.022")
	if got, _ := attrs.String(core.Corequisites); got != "18.02/18.022" {
		t.Errorf("corequisites = %q", got)
	}
}

func TestURLItemIsConsumed(t *testing.T) {
	item := "See http://student.mit.edu/catalog/m6a.html for the full description of this class"
	attrs := classifyOne(t, "6.002", item)
	// The rule is Definite, so even a long URL line cannot become the
	// description.
	if attrs.Has(core.Description) {
		t.Error("URL item must not become the description")
	}
}

func TestScheduleRule(t *testing.T) {
	attrs := classifyOne(t, "6.042", "Lecture: MW9.30 (26-100) +final")
	if final, _ := attrs.Bool(core.HasFinal); !final {
		t.Error("expected the final-exam flag to be set")
	}
	if !attrs.Has(core.Schedule) {
		t.Fatal("expected a schedule attribute")
	}
	groups := attrs[core.Schedule].Groups
	want := [][]string{{"Lecture", "26-100/MW/0/9.30"}}
	if !reflect.DeepEqual(groups, want) {
		t.Errorf("schedule = %v, want %v", groups, want)
	}
}

func TestScheduleQuarterInformation(t *testing.T) {
	attrs := classifyOne(t, "2.671", "Lecture: TR1 (begins Oct 21)")
	if got, _ := attrs.String(core.QuarterInformation); got != "1,oct 21" {
		t.Errorf("quarter information = %q", got)
	}
}

func TestTitleRule(t *testing.T) {
	attrs := classifyOne(t, "6.042", "6.042[J] Mathematics for Computer Science")
	if got, _ := attrs.String(core.Title); got != "Mathematics for Computer Science" {
		t.Errorf("title = %q", got)
	}
}

func TestTitleRequiresOwnIdentifier(t *testing.T) {
	attrs := classifyOne(t, "6.042", "18.062 Some Other Subject")
	if attrs.Has(core.Title) {
		t.Error("title must not match a different subject's heading")
	}
}

func TestLevelRule(t *testing.T) {
	if got, _ := classifyOne(t, "6.042", "Undergrad").String(core.SubjectLevel); got != "U" {
		t.Errorf("level = %q, want U", got)
	}
	if got, _ := classifyOne(t, "6.839", "Graduate").String(core.SubjectLevel); got != "G" {
		t.Errorf("level = %q, want G", got)
	}
}

func TestLevelKeywordInsideProseIsIgnored(t *testing.T) {
	attrs := classifyOne(t, "6.042", "Open to undergraduate students with permission of the instructor only")
	if attrs.Has(core.SubjectLevel) {
		t.Error("level keyword inside long prose must not classify")
	}
}

func TestUnitsRule(t *testing.T) {
	tests := []struct {
		item    string
		lecture int
		lab     int
		prep    int
		total   int
	}{
		{"Units: 6-4-2", 6, 4, 2, 12},
		{"12 units (3-0-9)", 3, 0, 9, 12},
	}
	for _, tt := range tests {
		attrs := classifyOne(t, "6.042", tt.item)
		checks := []struct {
			key  core.AttributeKey
			want int
		}{
			{core.LectureUnits, tt.lecture},
			{core.LabUnits, tt.lab},
			{core.PreparationUnits, tt.prep},
			{core.TotalUnits, tt.total},
		}
		for _, c := range checks {
			got, ok := attrs.Int(c.key)
			if !ok || got != c.want {
				t.Errorf("%q: %s = %d (present %v), want %d", tt.item, c.key, got, ok, c.want)
			}
		}
	}
}

func TestUnitsRuleTooFewComponents(t *testing.T) {
	attrs := classifyOne(t, "6.042", "Units: 3-9")
	for _, key := range []core.AttributeKey{core.LectureUnits, core.LabUnits, core.PreparationUnits, core.TotalUnits} {
		if attrs.Has(key) {
			t.Errorf("%s must stay unset for a two-component triple", key)
		}
	}
}

func TestUnitsRulePDFOption(t *testing.T) {
	attrs := classifyOne(t, "6.839", "Units: 3-0-9 [P/D/F]")
	if pdf, _ := attrs.Bool(core.PDFOption); !pdf {
		t.Error("expected the P/D/F flag to be set")
	}
	if total, _ := attrs.Int(core.TotalUnits); total != 12 {
		t.Errorf("total units = %d", total)
	}
}

func TestVariableUnitsRule(t *testing.T) {
	attrs := classifyOne(t, "6.UAR", "Units arranged")
	if v, _ := attrs.Bool(core.IsVariableUnits); !v {
		t.Error("expected variable-units flag")
	}
}

func TestNotOfferedRule(t *testing.T) {
	attrs := classifyOne(t, "6.042", "Not offered academic year 2024-2025")
	if got, _ := attrs.String(core.NotOfferedYear); got != "2024-2025" {
		t.Errorf("not-offered year = %q", got)
	}
}

func TestCrossListingRule(t *testing.T) {
	attrs := classifyOne(t, "6.042", "Meets with 6.042[J], 18.062")
	got, _ := attrs.List(core.MeetsWithSubjects)
	want := []string{"6.042[J]", "18.062"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("meets-with = %v, want %v", got, want)
	}
}

func TestCrossListingMultiplePrefixes(t *testing.T) {
	attrs := classifyOne(t, "18.062", "Same subject as 6.042[J]) (Credit cannot also be received for 6.0002)")
	joint, _ := attrs.List(core.JointSubjects)
	if !reflect.DeepEqual(joint, []string{"6.042[J]"}) {
		t.Errorf("joint subjects = %v", joint)
	}
	equiv, _ := attrs.List(core.EquivalentSubjects)
	if !reflect.DeepEqual(equiv, []string{"6.0002"}) {
		t.Errorf("equivalent subjects = %v", equiv)
	}
}

func TestCrossListingEmbeddedPrefixSkipped(t *testing.T) {
	attrs := classifyOne(t, "6.042", "Enrollment limited; this class meets with 18.062 in the spring")
	if attrs.Has(core.MeetsWithSubjects) {
		t.Error("an embedded prefix must not produce a cross-listing")
	}
}

func TestHassRule(t *testing.T) {
	attrs := classifyOne(t, "21L.001", "HASS Humanities")
	if got, _ := attrs.String(core.HassRequirement); got != "HASS-H" {
		t.Errorf("hass = %q", got)
	}
}

func TestCombinedHassRule(t *testing.T) {
	attrs := classifyOne(t, "21M.030", "Humanities + Arts")
	if got, _ := attrs.String(core.HassRequirement); got != "HASS-H,HASS-A" {
		t.Errorf("combined hass = %q", got)
	}
}

func TestCIRule(t *testing.T) {
	attrs := classifyOne(t, "21W.022", "Communication Intensive Writing")
	if got, _ := attrs.String(core.CommunicationRequirement); got != "CI-HW" {
		t.Errorf("ci = %q", got)
	}
}

func TestGIRRule(t *testing.T) {
	attrs := classifyOne(t, "8.01", "Physics I (GIR)")
	if got, _ := attrs.String(core.GIR); got != "PHY1" {
		t.Errorf("gir = %q", got)
	}
}

func TestInstructorsRule(t *testing.T) {
	attrs := classifyOne(t, "6.042", "A. Moitra")
	if got, _ := attrs.String(core.Instructors); got != "A. Moitra" {
		t.Errorf("instructors = %q", got)
	}
}

func TestInstructorsPerTermLines(t *testing.T) {
	attrs := core.NewCourse("6.042")
	processItem("Fall: A. Moitra", attrs)
	processItem("Spring: Z. Abel", attrs)
	if got, _ := attrs.String(core.Instructors); got != "Fall: A. Moitra\nSpring: Z. Abel" {
		t.Errorf("instructors = %q", got)
	}
}

func TestOfferedTermsMultiTerm(t *testing.T) {
	attrs := classifyOne(t, "6.042", "Fall, Spring")
	for _, key := range []core.AttributeKey{core.OfferedFall, core.OfferedSpring} {
		if v, ok := attrs.Bool(key); !ok || !v {
			t.Errorf("expected %s to be set", key)
		}
	}
	for _, key := range []core.AttributeKey{core.OfferedIAP, core.OfferedSummer} {
		if attrs.Has(key) {
			t.Errorf("%s must stay absent", key)
		}
	}
}

func TestDescriptionCatchAllKeepsLongest(t *testing.T) {
	attrs := core.NewCourse("6.042")
	processItem("A somewhat long descriptive sentence here", attrs)
	processItem("An even longer descriptive sentence about the subject matter covered", attrs)
	if got, _ := attrs.String(core.Description); got != "An even longer descriptive sentence about the subject matter covered" {
		t.Errorf("description = %q", got)
	}
}

func TestDefiniteRuleBlocksDescription(t *testing.T) {
	attrs := classifyOne(t, "8.01", "Prereq: Physics I (GIR) and Calculus II (GIR)")
	if attrs.Has(core.Description) {
		t.Error("a definite item must not become the description")
	}
}

func TestNotesRule(t *testing.T) {
	attrs := core.NewCourse("6.042")
	description := "Elementary discrete mathematics for computer science and engineering, with emphasis on mathematical definitions and proofs as well as applicable methods."
	attrs.SetString(core.Description, description)
	note := "Enrollment may be limited; preference is given to students for whom the subject is a degree requirement."
	processItem(note, attrs)
	if got, _ := attrs.String(core.Notes); got != note {
		t.Errorf("notes = %q", got)
	}
	if got, _ := attrs.String(core.Description); got != description {
		t.Error("notes item must not displace the longer description")
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	items := []core.InfoItem{
		"Undergrad",
		"Fall, Spring",
		"Prereq: 6.001",
		"Units: 3-0-9 [P/D/F]",
		"6.042[J] Mathematics for Computer Science",
		"A. Moitra",
		"Elementary discrete mathematics for computer science and engineering students.",
	}
	attrs := Classify(items, core.NewCourse("6.042"))
	once := attrs.Clone()
	Classify(items, attrs)
	if !reflect.DeepEqual(once, attrs) {
		t.Errorf("second pass changed attributes:\n first %v\nsecond %v", once, attrs)
	}
}
