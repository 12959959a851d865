package core

import (
	"reflect"
	"testing"
)

func TestNewCourseDefaults(t *testing.T) {
	c := NewCourse("6.042")
	if id, _ := c.String(SubjectID); id != "6.042" {
		t.Errorf("subject id = %q", id)
	}
	for _, key := range []AttributeKey{HasFinal, IsVariableUnits, PDFOption} {
		v, ok := c.Bool(key)
		if !ok || v {
			t.Errorf("%s should default to present-false, got %v present %v", key, v, ok)
		}
	}
	// Term flags are absent until observed, not false.
	for _, key := range []AttributeKey{OfferedFall, OfferedIAP, OfferedSpring, OfferedSummer} {
		if c.Has(key) {
			t.Errorf("%s should start absent", key)
		}
	}
}

func TestTypedGettersRejectWrongKind(t *testing.T) {
	c := Course{}
	c.SetInt(TotalUnits, 12)
	if _, ok := c.String(TotalUnits); ok {
		t.Error("String must not read an integer attribute")
	}
	if n, ok := c.Int(TotalUnits); !ok || n != 12 {
		t.Errorf("Int = %d present %v", n, ok)
	}
}

func TestAppendLineDeduplicates(t *testing.T) {
	c := Course{}
	c.AppendLine(Notes, "first note")
	c.AppendLine(Notes, "second note")
	c.AppendLine(Notes, "first note")
	if got, _ := c.String(Notes); got != "first note\nsecond note" {
		t.Errorf("notes = %q", got)
	}
	if !c.ContainsLine(Notes, "second note") {
		t.Error("expected second note to be present")
	}
	if c.ContainsLine(Notes, "second") {
		t.Error("ContainsLine must match whole lines only")
	}
}

func TestCloneIsDeep(t *testing.T) {
	c := NewCourse("6.042")
	c.SetList(MeetsWithSubjects, []string{"18.062"})
	c.SetGroups(Schedule, [][]string{{"Lecture", "26-100/MW/0/9.30"}})

	clone := c.Clone()
	if !reflect.DeepEqual(c, clone) {
		t.Fatal("clone differs from original")
	}

	clone.SetString(SubjectID, "6.0421")
	clone[MeetsWithSubjects].List[0] = "changed"
	clone[Schedule].Groups[0][0] = "changed"

	if id, _ := c.String(SubjectID); id != "6.042" {
		t.Error("mutating the clone changed the original identifier")
	}
	if list, _ := c.List(MeetsWithSubjects); list[0] != "18.062" {
		t.Error("list values are shared with the clone")
	}
	if c[Schedule].Groups[0][0] != "Lecture" {
		t.Error("grouped values are shared with the clone")
	}
}

func TestValueNative(t *testing.T) {
	tests := []struct {
		value Value
		want  any
	}{
		{Value{Kind: KindString, Str: "x"}, "x"},
		{Value{Kind: KindBool, Bool: true}, true},
		{Value{Kind: KindInt, Int: 12}, 12},
		{Value{Kind: KindFloat, Float: 6.3}, 6.3},
		{Value{Kind: KindList, List: []string{"a"}}, []string{"a"}},
		{Value{Kind: KindGroups, Groups: [][]string{{"a"}}}, [][]string{{"a"}}},
	}
	for _, tt := range tests {
		if got := tt.value.Native(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Native(%+v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
