package ruralurban

import "testing"

func TestCodeTableDecode(t *testing.T) {

	for _, tc := range []struct {
		it   Item
		want Tristate
	}{
		{Item{Code: 1}, Yes},
		{Item{Code: 5}, No},
		{Item{Code: 8}, Unknown},  // don't know
		{Item{Code: 9}, Unknown},  // refused
		{Item{Code: 97}, Unknown}, // undocumented code
		{Item{Missing: true}, Unknown},
	} {
		if got := workTable.Decode(tc.it); got != tc.want {
			t.Errorf("Decode(%+v) = %v, want %v", tc.it, got, tc.want)
		}
	}
}

func TestParentalCareIndicator(t *testing.T) {

	miss := Item{Missing: true}

	for _, tc := range []struct {
		basic  Item
		chores Item
		want   Tristate
	}{
		{Item{Code: 1}, Item{Code: 5}, Yes},
		{Item{Code: 5}, Item{Code: 1}, Yes},
		{Item{Code: 5}, Item{Code: 5}, No},
		{Item{Code: 5}, miss, No},
		{Item{Code: 1}, miss, Yes},
		{miss, miss, Unknown},
		{Item{Code: 8}, miss, Unknown},
	} {
		r := &Respondent{ParentBasic: tc.basic, ParentChores: tc.chores}
		if got := r.ParentalCareIndicator(); got != tc.want {
			t.Errorf("ParentalCareIndicator(%+v, %+v) = %v, want %v",
				tc.basic, tc.chores, got, tc.want)
		}
	}
}

func TestSpouseHelperReport(t *testing.T) {

	miss := Item{Missing: true}

	for _, tc := range []struct {
		slots []Item
		want  Tristate
	}{
		// Spouse code in any slot wins.
		{[]Item{{Code: 2}, miss, miss}, Yes},
		{[]Item{miss, {Code: 3}, {Code: 2}}, Yes},
		// Known non-spouse helpers only.
		{[]Item{{Code: 3}, miss, miss}, No},
		{[]Item{{Code: 3}, {Code: 7}, miss}, No},
		// Every slot blank.
		{[]Item{miss, miss, miss}, Unknown},
		{nil, Unknown},
	} {
		r := &Respondent{Helpers: tc.slots}
		if got := r.SpouseHelperReport(); got != tc.want {
			t.Errorf("SpouseHelperReport(%v) = %v, want %v", tc.slots, got, tc.want)
		}
	}
}

func TestCaregiverIndicator(t *testing.T) {

	miss := Item{Missing: true}

	// Spousal yes alone is enough.
	r := &Respondent{
		SpousalCaregiver: Yes,
		GrandchildCare:   Item{Code: 5},
		ParentBasic:      miss,
		ParentChores:     miss,
	}
	if got := r.CaregiverIndicator(); got != Yes {
		t.Errorf("CaregiverIndicator = %v, want yes", got)
	}

	// Spousal no, grandchild no, parental unknown: one unknown only,
	// so the evidence rule concludes No.
	r = &Respondent{
		SpousalCaregiver: No,
		GrandchildCare:   Item{Code: 5},
		ParentBasic:      miss,
		ParentChores:     miss,
	}
	if got := r.CaregiverIndicator(); got != No {
		t.Errorf("CaregiverIndicator = %v, want no", got)
	}

	// Spousal no with both remaining inputs unknown stays Unknown:
	// a single known "no" cannot rule caregiving out.
	r = &Respondent{
		SpousalCaregiver: No,
		GrandchildCare:   miss,
		ParentBasic:      miss,
		ParentChores:     miss,
	}
	if got := r.CaregiverIndicator(); got != Unknown {
		t.Errorf("CaregiverIndicator = %v, want unknown", got)
	}
}

func TestMultiActivityIndicator(t *testing.T) {

	miss := Item{Missing: true}

	// Work yes, volunteer no, caregiver unknown.
	r := &Respondent{
		WorkStatus:     Item{Code: 1},
		Volunteer:      Item{Code: 5},
		GrandchildCare: miss,
		ParentBasic:    miss,
		ParentChores:   miss,
	}
	if got := r.MultiActivityIndicator(); got != Yes {
		t.Errorf("MultiActivityIndicator = %v, want yes", got)
	}

	// Work no with the rest unknown: insufficient evidence.
	r = &Respondent{
		WorkStatus:     Item{Code: 5},
		Volunteer:      miss,
		GrandchildCare: miss,
		ParentBasic:    miss,
		ParentChores:   miss,
	}
	if got := r.MultiActivityIndicator(); got != Unknown {
		t.Errorf("MultiActivityIndicator = %v, want unknown", got)
	}
}

// A freshly joined record must read Unknown everywhere, never No.
func TestZeroValueIndicators(t *testing.T) {

	r := Join(Fragments{Demographic: []DemographicRecord{{
		ID: RespondentID{Household: 1, Person: 1},
	}}})[0]

	for _, a := range Activities {
		if got := r.Indicator(a); got != Unknown {
			t.Errorf("Indicator(%v) on empty record = %v, want unknown", a, got)
		}
	}
}
