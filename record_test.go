package ruralurban

import "testing"

func TestJoinPreservesBase(t *testing.T) {

	id1 := RespondentID{Household: 1, Person: 1}
	id2 := RespondentID{Household: 2, Person: 1}

	fr := Fragments{
		Demographic: []DemographicRecord{
			{ID: id1, Age: Item{Code: 70}},
			{ID: id2, Age: Item{Code: 66}},
		},
		// Only the first respondent has geography and volunteering rows.
		Geography: []GeographyRecord{
			{ID: id1, Urbanicity: Item{Code: 2}, Region: Item{Code: 3}, Division: Item{Code: 5}},
		},
		Volunteering: []VolunteeringRecord{
			{ID: id1, Volunteer: Item{Code: 1}},
		},
	}

	pop := Join(fr)
	if len(pop) != 2 {
		t.Fatalf("population = %d, want 2 (left join must not drop rows)", len(pop))
	}

	if pop[0].Region.Missing || pop[0].Region.Code != 3 {
		t.Errorf("matched geography not joined: %+v", pop[0].Region)
	}
	if !pop[1].Region.Missing {
		t.Errorf("unmatched geography must join as missing, got %+v", pop[1].Region)
	}
	if !pop[1].Volunteer.Missing {
		t.Errorf("unmatched volunteering must join as missing")
	}
	if pop[1].Helpers != nil {
		t.Errorf("unmatched caregiving must leave helper slots nil")
	}

	// Field-level missing, not record-level: the demographic fields
	// are still present.
	if pop[1].Age.Missing || pop[1].Age.Code != 66 {
		t.Errorf("demographic fields lost in join: %+v", pop[1].Age)
	}
}

func TestRespondentIDValid(t *testing.T) {

	for _, tc := range []struct {
		id   RespondentID
		want bool
	}{
		{RespondentID{}, false},
		{RespondentID{Household: 5}, false},
		{RespondentID{Person: 2}, false},
		{RespondentID{Household: 5, Person: 2}, true},
	} {
		if got := tc.id.Valid(); got != tc.want {
			t.Errorf("Valid(%+v) = %v, want %v", tc.id, got, tc.want)
		}
	}
}
