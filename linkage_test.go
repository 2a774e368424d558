package ruralurban

import (
	"testing"

	"go.uber.org/zap"
)

func TestBuildCaregiverLinkage(t *testing.T) {

	spouseSlot := []Item{{Code: 2}, {Missing: true}}
	otherSlot := []Item{{Code: 3}}

	pop := []*Respondent{
		// Names a spouse, valid cross-reference.
		{
			ID:       RespondentID{Household: 10, Person: 1},
			SpouseID: RespondentID{Household: 10, Person: 2},
			Helpers:  spouseSlot,
		},
		// Names a spouse, missing cross-reference: unresolved.
		{
			ID:      RespondentID{Household: 11, Person: 1},
			Helpers: spouseSlot,
		},
		// Names a spouse, zero person number: unresolved.
		{
			ID:       RespondentID{Household: 12, Person: 1},
			SpouseID: RespondentID{Household: 12},
			Helpers:  spouseSlot,
		},
		// Non-spouse helper: not a report.
		{
			ID:       RespondentID{Household: 13, Person: 1},
			SpouseID: RespondentID{Household: 13, Person: 2},
			Helpers:  otherSlot,
		},
		// No helper data at all.
		{
			ID:       RespondentID{Household: 14, Person: 1},
			SpouseID: RespondentID{Household: 14, Person: 2},
		},
	}

	cl := BuildCaregiverLinkage(pop, zap.NewNop())

	if len(cl.Caregivers) != 1 {
		t.Fatalf("linkage size = %d, want 1", len(cl.Caregivers))
	}
	if !cl.Caregivers[RespondentID{Household: 10, Person: 2}] {
		t.Errorf("spouse of 10/1 missing from linkage")
	}
	if cl.Unresolved != 2 {
		t.Errorf("unresolved = %d, want 2", cl.Unresolved)
	}
}

func TestApplyCaregiverLinkage(t *testing.T) {

	caregiver := &Respondent{ID: RespondentID{Household: 10, Person: 2}}
	other := &Respondent{ID: RespondentID{Household: 20, Person: 1}}
	pop := []*Respondent{caregiver, other}

	cl := CaregiverLinkage{Caregivers: map[RespondentID]bool{caregiver.ID: true}}

	// With caregiving items loaded, absence from the map is No.
	ApplyCaregiverLinkage(pop, cl, true)
	if caregiver.SpousalCaregiver != Yes {
		t.Errorf("linked respondent = %v, want yes", caregiver.SpousalCaregiver)
	}
	if other.SpousalCaregiver != No {
		t.Errorf("unlinked respondent = %v, want no", other.SpousalCaregiver)
	}

	// Without the fragment there is no evidence either way.
	ApplyCaregiverLinkage(pop, CaregiverLinkage{Caregivers: map[RespondentID]bool{}}, false)
	if caregiver.SpousalCaregiver != Unknown || other.SpousalCaregiver != Unknown {
		t.Errorf("absent fragment must leave flags unknown")
	}
}
