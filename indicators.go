package ruralurban

// Activity enumerates the derived productive-activity indicators.
type Activity int

const (
	Work Activity = iota
	Volunteering
	SpousalCare
	ParentalCare
	GrandchildCareActivity
	Caregiving
	MultiActivity
)

// Activities lists every indicator in output order.
var Activities = []Activity{
	Work, Volunteering, SpousalCare, ParentalCare,
	GrandchildCareActivity, Caregiving, MultiActivity,
}

func (a Activity) String() string {
	switch a {
	case Work:
		return "work"
	case Volunteering:
		return "volunteer"
	case SpousalCare:
		return "spousal_care"
	case ParentalCare:
		return "parental_care"
	case GrandchildCareActivity:
		return "grandchild_care"
	case Caregiving:
		return "caregiver"
	case MultiActivity:
		return "multi_activity"
	}
	return "invalid"
}

// WorkIndicator reports whether the respondent works for pay.
func (r *Respondent) WorkIndicator() Tristate {
	return workTable.Decode(r.WorkStatus)
}

// VolunteerIndicator reports whether the respondent did volunteer
// work in the reference period.
func (r *Respondent) VolunteerIndicator() Tristate {
	return volunteerTable.Decode(r.Volunteer)
}

// GrandchildCareIndicator reports whether the respondent cared for
// grandchildren.
func (r *Respondent) GrandchildCareIndicator() Tristate {
	return grandchildTable.Decode(r.GrandchildCare)
}

// ParentalCareIndicator combines the two parental-help sub-items
// (help with basic personal needs, help with chores and errands)
// with the known-OR rule.
func (r *Respondent) ParentalCareIndicator() Tristate {
	return anyKnownOr(
		parentItemTable.Decode(r.ParentBasic),
		parentItemTable.Decode(r.ParentChores),
	)
}

// SpouseHelperReport classifies the respondent's own helper slots:
// Yes if any ADL/IADL helper slot names a spouse or partner, No if
// at least one slot is known and none names a spouse, Unknown when
// every slot is blank.  This is the reporting side of the spousal
// linkage; the caregiver flag itself lands on the spouse's record,
// not the reporter's.
func (r *Respondent) SpouseHelperReport() Tristate {

	vals := make([]Tristate, len(r.Helpers))
	for i, h := range r.Helpers {
		vals[i] = helperIsSpouse(h)
	}
	return anyKnownOr(vals...)
}

// CaregiverIndicator combines the spousal, parental and grandchild
// caregiving indicators with the evidence rule.
func (r *Respondent) CaregiverIndicator() Tristate {
	return evidenceRule(
		r.SpousalCaregiver,
		r.ParentalCareIndicator(),
		r.GrandchildCareIndicator(),
	)
}

// MultiActivityIndicator combines work, volunteering and caregiving
// with the evidence rule.
func (r *Respondent) MultiActivityIndicator() Tristate {
	return evidenceRule(
		r.WorkIndicator(),
		r.VolunteerIndicator(),
		r.CaregiverIndicator(),
	)
}

// Indicator returns the respondent's value for the given activity.
func (r *Respondent) Indicator(a Activity) Tristate {
	switch a {
	case Work:
		return r.WorkIndicator()
	case Volunteering:
		return r.VolunteerIndicator()
	case SpousalCare:
		return r.SpousalCaregiver
	case ParentalCare:
		return r.ParentalCareIndicator()
	case GrandchildCareActivity:
		return r.GrandchildCareIndicator()
	case Caregiving:
		return r.CaregiverIndicator()
	case MultiActivity:
		return r.MultiActivityIndicator()
	}
	return Unknown
}
