package ruralurban

import "testing"

func TestAnyKnownOr(t *testing.T) {

	for _, tc := range []struct {
		vals []Tristate
		want Tristate
	}{
		{[]Tristate{Unknown, Unknown}, Unknown},
		{[]Tristate{No, Unknown}, No},
		{[]Tristate{Unknown, No}, No},
		{[]Tristate{Yes, Unknown}, Yes},
		{[]Tristate{Unknown, Yes}, Yes},
		{[]Tristate{No, No}, No},
		{[]Tristate{No, Yes}, Yes},
		{[]Tristate{}, Unknown},
		{[]Tristate{Unknown, Unknown, Unknown, No}, No},
	} {
		if got := anyKnownOr(tc.vals...); got != tc.want {
			t.Errorf("anyKnownOr(%v) = %v, want %v", tc.vals, got, tc.want)
		}
	}
}

func TestEvidenceRule(t *testing.T) {

	for _, tc := range []struct {
		vals []Tristate
		want Tristate
	}{
		// Two or more unknowns give up regardless of the third value.
		{[]Tristate{Unknown, Unknown, No}, Unknown},
		{[]Tristate{Unknown, Unknown, Yes}, Unknown},
		{[]Tristate{Unknown, Unknown, Unknown}, Unknown},
		{[]Tristate{Unknown, No, Unknown}, Unknown},

		{[]Tristate{Yes, No, No}, Yes},
		{[]Tristate{No, No, No}, No},
		{[]Tristate{No, No, Unknown}, No},
		{[]Tristate{Yes, Unknown, No}, Yes},
		{[]Tristate{Yes, Yes, Yes}, Yes},
	} {
		if got := evidenceRule(tc.vals...); got != tc.want {
			t.Errorf("evidenceRule(%v) = %v, want %v", tc.vals, got, tc.want)
		}
	}
}

// The two rules must not be conflated: with two unknowns and one
// known "no", the OR concludes No while the evidence rule stays
// Unknown.
func TestRulesDiffer(t *testing.T) {

	vals := []Tristate{Unknown, Unknown, No}
	if got := anyKnownOr(vals...); got != No {
		t.Errorf("anyKnownOr(%v) = %v, want no", vals, got)
	}
	if got := evidenceRule(vals...); got != Unknown {
		t.Errorf("evidenceRule(%v) = %v, want unknown", vals, got)
	}
}
