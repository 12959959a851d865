package prereq

import "testing"

func TestParseSingleSubject(t *testing.T) {
	expr := Parse("6.001")
	if expr == nil {
		t.Fatal("expected an expression")
	}
	if expr.String() != "6.001" {
		t.Errorf("expected 6.001, got %q", expr.String())
	}
	if _, ok := expr.(Subject); !ok {
		t.Errorf("expected a Subject leaf, got %T", expr)
	}
}

func TestParseNone(t *testing.T) {
	for _, raw := range []string{"", "  ", "None", "none."} {
		if expr := Parse(raw); expr != nil {
			t.Errorf("Parse(%q): expected nil, got %q", raw, expr.String())
		}
	}
}

func TestParseConjunction(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"6.001 and 6.002", "6.001, 6.002"},
		{"6.001, 6.002", "6.001, 6.002"},
		{"6.001; 6.002", "6.001, 6.002"},
		{"Physics I (GIR), 18.03", "Physics I (GIR), 18.03"},
	}
	for _, tt := range tests {
		expr := Parse(tt.raw)
		if expr == nil {
			t.Fatalf("Parse(%q): expected an expression", tt.raw)
		}
		if expr.String() != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.raw, expr.String(), tt.want)
		}
		if _, ok := expr.(And); !ok {
			t.Errorf("Parse(%q): expected And, got %T", tt.raw, expr)
		}
	}
}

func TestParseAlternatives(t *testing.T) {
	expr := Parse("6.002 or 6.003")
	if expr == nil || expr.String() != "6.002/6.003" {
		t.Fatalf("unexpected expression: %v", expr)
	}
	if _, ok := expr.(Or); !ok {
		t.Errorf("expected Or, got %T", expr)
	}
}

func TestParseGrouping(t *testing.T) {
	expr := Parse("6.001 and (6.002 or 6.003)")
	if expr == nil {
		t.Fatal("expected an expression")
	}
	if got := expr.String(); got != "6.001, (6.002/6.003)" {
		t.Errorf("got %q", got)
	}
}

func TestParseAnnotatedLeafKeepsParens(t *testing.T) {
	expr := Parse("Physics I (GIR)")
	if expr == nil {
		t.Fatal("expected an expression")
	}
	if _, ok := expr.(Subject); !ok {
		t.Fatalf("expected a Subject leaf, got %T", expr)
	}
	if expr.String() != "Physics I (GIR)" {
		t.Errorf("got %q", expr.String())
	}
}

func TestParseCaseInsensitiveConnectives(t *testing.T) {
	expr := Parse("6.001 AND 6.002 Or 6.003")
	if expr == nil {
		t.Fatal("expected an expression")
	}
	// "and" splits first, so the "or" stays within the second conjunct.
	if got := expr.String(); got != "6.001, (6.002/6.003)" {
		t.Errorf("got %q", got)
	}
}
