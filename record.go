package ruralurban

// A RespondentID identifies one survey respondent: the household
// identifier plus the person number within the household.
type RespondentID struct {
	Household uint64
	Person    uint64
}

// Valid reports whether the identifier can refer to a respondent.
// The zero value cannot, and neither can an id with a zero household
// or person number.
func (id RespondentID) Valid() bool {
	return id.Household != 0 && id.Person != 0
}

// A Respondent is the joined record for one survey respondent across
// all input fragments.  It is immutable once joined, except for the
// spousal-caregiver flag filled in by the linkage stage.
type Respondent struct {
	ID RespondentID

	// Demographic/work fragment.
	Age        Item
	InWave     Item
	WorkStatus Item
	SpouseID   RespondentID

	// Nursing-home/residence fragment.
	Residence Item

	// Geography fragment.
	Urbanicity Item
	Region     Item
	Division   Item

	// Volunteering fragment.
	Volunteer Item

	// Caregiving-items fragment.  Helpers holds the ADL/IADL helper
	// relationship codes, one per helper slot; nil when the fragment
	// has no row for this respondent.
	Helpers        []Item
	GrandchildCare Item
	ParentBasic    Item
	ParentChores   Item

	// Filled by ApplyCaregiverLinkage.  Unknown until then.
	SpousalCaregiver Tristate
}

// Fragment records, one type per input source.  The demographic
// fragment is the join base; the others are left-joined onto it.

type DemographicRecord struct {
	ID         RespondentID
	Age        Item
	InWave     Item
	WorkStatus Item
	SpouseID   RespondentID
}

type ResidenceRecord struct {
	ID        RespondentID
	Residence Item
}

type GeographyRecord struct {
	ID         RespondentID
	Urbanicity Item
	Region     Item
	Division   Item
}

type VolunteeringRecord struct {
	ID        RespondentID
	Volunteer Item
}

type CaregivingRecord struct {
	ID             RespondentID
	Helpers        []Item
	GrandchildCare Item
	ParentBasic    Item
	ParentChores   Item
}

// Fragments holds the per-source record sets for one analysis run.
// A nil fragment is treated as absent: its fields join as missing
// items on every respondent.
type Fragments struct {
	Demographic  []DemographicRecord
	Residence    []ResidenceRecord
	Geography    []GeographyRecord
	Volunteering []VolunteeringRecord
	Caregiving   []CaregivingRecord
}

// Join left-joins the four secondary fragments onto the demographic
// base.  Every demographic record yields exactly one Respondent;
// fragments with no row for a respondent contribute field-level
// missing values, never dropped rows.  Output order follows the
// demographic fragment.
func Join(fr Fragments) []*Respondent {

	res := make(map[RespondentID]ResidenceRecord, len(fr.Residence))
	for _, x := range fr.Residence {
		res[x.ID] = x
	}
	geo := make(map[RespondentID]GeographyRecord, len(fr.Geography))
	for _, x := range fr.Geography {
		geo[x.ID] = x
	}
	vol := make(map[RespondentID]VolunteeringRecord, len(fr.Volunteering))
	for _, x := range fr.Volunteering {
		vol[x.ID] = x
	}
	cg := make(map[RespondentID]CaregivingRecord, len(fr.Caregiving))
	for _, x := range fr.Caregiving {
		cg[x.ID] = x
	}

	miss := Item{Missing: true}

	pop := make([]*Respondent, 0, len(fr.Demographic))
	for _, d := range fr.Demographic {
		r := &Respondent{
			ID:             d.ID,
			Age:            d.Age,
			InWave:         d.InWave,
			WorkStatus:     d.WorkStatus,
			SpouseID:       d.SpouseID,
			Residence:      miss,
			Urbanicity:     miss,
			Region:         miss,
			Division:       miss,
			Volunteer:      miss,
			GrandchildCare: miss,
			ParentBasic:    miss,
			ParentChores:   miss,
		}
		if x, ok := res[d.ID]; ok {
			r.Residence = x.Residence
		}
		if x, ok := geo[d.ID]; ok {
			r.Urbanicity = x.Urbanicity
			r.Region = x.Region
			r.Division = x.Division
		}
		if x, ok := vol[d.ID]; ok {
			r.Volunteer = x.Volunteer
		}
		if x, ok := cg[d.ID]; ok {
			r.Helpers = x.Helpers
			r.GrandchildCare = x.GrandchildCare
			r.ParentBasic = x.ParentBasic
			r.ParentChores = x.ParentChores
		}
		pop = append(pop, r)
	}

	return pop
}
