package core

// AttributeKey identifies one semantic field of a course. The set of keys
// is closed; the string value doubles as the column header in written files.
type AttributeKey string

// String-valued attributes.
const (
	SubjectID                AttributeKey = "Subject Id"
	Title                    AttributeKey = "Subject Title"
	Description              AttributeKey = "Subject Description"
	Notes                    AttributeKey = "Notes"
	SubjectLevel             AttributeKey = "Subject Level"
	Instructors              AttributeKey = "Instructors"
	Prerequisites            AttributeKey = "Prerequisites"
	Corequisites             AttributeKey = "Corequisites"
	QuarterInformation       AttributeKey = "Quarter Information"
	NotOfferedYear           AttributeKey = "Not Offered Year"
	HassRequirement          AttributeKey = "Hass Attribute"
	CommunicationRequirement AttributeKey = "Communication Requirement"
	GIR                      AttributeKey = "Gir Attribute"
	SubjectURL               AttributeKey = "URL"
)

// Boolean attributes. Absence means "not observed on the page"; only
// HasFinal, IsVariableUnits and PDFOption are initialized to false.
const (
	OfferedFall     AttributeKey = "Is Offered Fall Term"
	OfferedIAP      AttributeKey = "Is Offered Iap"
	OfferedSpring   AttributeKey = "Is Offered Spring Term"
	OfferedSummer   AttributeKey = "Is Offered Summer Term"
	IsVariableUnits AttributeKey = "Is Variable Units"
	PDFOption       AttributeKey = "PDF Option"
	HasFinal        AttributeKey = "Has Final"
)

// Integer attributes (the units triple plus its sum).
const (
	LectureUnits     AttributeKey = "Lecture Units"
	LabUnits         AttributeKey = "Lab Units"
	PreparationUnits AttributeKey = "Preparation Units"
	TotalUnits       AttributeKey = "Total Units"
)

// Float attributes, merged from the evaluation-data collaborator.
const (
	AverageRating          AttributeKey = "Rating"
	AverageInClassHours    AttributeKey = "In-Class Hours"
	AverageOutOfClassHours AttributeKey = "Out-of-Class Hours"
	Enrollment             AttributeKey = "Enrollment"
)

// List attributes (cross-listing subject lists, in source order).
const (
	MeetsWithSubjects  AttributeKey = "Meets With Subjects"
	JointSubjects      AttributeKey = "Joint Subjects"
	EquivalentSubjects AttributeKey = "Equivalent Subjects"
)

// Schedule is the only grouped-list attribute: one inner list per session
// kind, encoded by the schedule package.
const Schedule AttributeKey = "Schedule"

// Kind discriminates the variants of a Value.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindInt
	KindFloat
	KindList
	KindGroups
)

// Value is a tagged variant holding one attribute's typed value.
type Value struct {
	Kind   Kind
	Str    string
	Bool   bool
	Int    int
	Float  float64
	List   []string
	Groups [][]string
}

// Native returns the Go value carried by the variant.
func (v Value) Native() any {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindBool:
		return v.Bool
	case KindInt:
		return v.Int
	case KindFloat:
		return v.Float
	case KindList:
		return v.List
	case KindGroups:
		return v.Groups
	default:
		return nil
	}
}

// Course is the attribute map for one catalog subject. A key that is
// missing was not observed on the page.
type Course map[AttributeKey]Value

// NewCourse seeds a course with its subject identifier and the boolean
// attributes that default to false rather than absent.
func NewCourse(subjectID string) Course {
	c := Course{}
	c.SetString(SubjectID, subjectID)
	c.SetBool(HasFinal, false)
	c.SetBool(IsVariableUnits, false)
	c.SetBool(PDFOption, false)
	return c
}

func (c Course) SetString(key AttributeKey, s string) {
	c[key] = Value{Kind: KindString, Str: s}
}

func (c Course) SetBool(key AttributeKey, b bool) {
	c[key] = Value{Kind: KindBool, Bool: b}
}

func (c Course) SetInt(key AttributeKey, n int) {
	c[key] = Value{Kind: KindInt, Int: n}
}

func (c Course) SetFloat(key AttributeKey, f float64) {
	c[key] = Value{Kind: KindFloat, Float: f}
}

func (c Course) SetList(key AttributeKey, list []string) {
	c[key] = Value{Kind: KindList, List: list}
}

func (c Course) SetGroups(key AttributeKey, groups [][]string) {
	c[key] = Value{Kind: KindGroups, Groups: groups}
}

// String returns the string value for key and whether it is present.
func (c Course) String(key AttributeKey) (string, bool) {
	v, ok := c[key]
	if !ok || v.Kind != KindString {
		return "", false
	}
	return v.Str, true
}

// Bool returns the boolean value for key and whether it is present.
func (c Course) Bool(key AttributeKey) (bool, bool) {
	v, ok := c[key]
	if !ok || v.Kind != KindBool {
		return false, false
	}
	return v.Bool, true
}

// Int returns the integer value for key and whether it is present.
func (c Course) Int(key AttributeKey) (int, bool) {
	v, ok := c[key]
	if !ok || v.Kind != KindInt {
		return 0, false
	}
	return v.Int, true
}

// List returns the list value for key and whether it is present.
func (c Course) List(key AttributeKey) ([]string, bool) {
	v, ok := c[key]
	if !ok || v.Kind != KindList {
		return nil, false
	}
	return v.List, true
}

// Has reports whether key has been set.
func (c Course) Has(key AttributeKey) bool {
	_, ok := c[key]
	return ok
}

// Delete removes key from the course.
func (c Course) Delete(key AttributeKey) {
	delete(c, key)
}

// AppendLine adds a line to a newline-joined string attribute. A line that
// is already present is not appended again, so additive attributes stay
// stable when the same items are classified twice.
func (c Course) AppendLine(key AttributeKey, line string) {
	existing, ok := c.String(key)
	if !ok {
		c.SetString(key, line)
		return
	}
	if containsLine(existing, line) {
		return
	}
	c.SetString(key, existing+"\n"+line)
}

// ContainsLine reports whether line is one of the newline-joined entries
// of the given string attribute.
func (c Course) ContainsLine(key AttributeKey, line string) bool {
	existing, ok := c.String(key)
	return ok && containsLine(existing, line)
}

func containsLine(joined, line string) bool {
	start := 0
	for i := 0; i <= len(joined); i++ {
		if i == len(joined) || joined[i] == '\n' {
			if joined[start:i] == line {
				return true
			}
			start = i + 1
		}
	}
	return false
}

// Clone returns a deep copy of the course, so autofilled neighbors can be
// mutated without sharing list values.
func (c Course) Clone() Course {
	out := make(Course, len(c))
	for key, v := range c {
		if v.List != nil {
			v.List = append([]string(nil), v.List...)
		}
		if v.Groups != nil {
			groups := make([][]string, len(v.Groups))
			for i, g := range v.Groups {
				groups[i] = append([]string(nil), g...)
			}
			v.Groups = groups
		}
		out[key] = v
	}
	return out
}
