package ruralurban

import "go.uber.org/zap"

// A CaregiverLinkage maps a spouse's identifier to the fact that the
// spouse provides ADL/IADL care, built from respondents who named a
// spouse or partner among their helpers.  The caregiving item is
// answered on the care recipient's questionnaire, so the caregiver's
// own record is only reachable through the recipient's
// cross-reference identifier.
type CaregiverLinkage struct {
	Caregivers map[RespondentID]bool

	// Unresolved counts reporters who named a spousal helper but
	// carry no valid spouse identifier.  Those caregivers cannot be
	// attributed to any record; the count is a documented
	// undercount, not a silent drop.
	Unresolved int
}

// BuildCaregiverLinkage scans the full joined population, before any
// cohort filtering, and collects spousal-caregiver flags keyed by
// spouse identifier.  Out-of-cohort reporters may still name
// in-cohort spouses.
func BuildCaregiverLinkage(pop []*Respondent, lg *zap.Logger) CaregiverLinkage {

	cl := CaregiverLinkage{Caregivers: make(map[RespondentID]bool)}

	for _, r := range pop {
		if r.SpouseHelperReport() != Yes {
			continue
		}
		if !r.SpouseID.Valid() {
			cl.Unresolved++
			continue
		}
		cl.Caregivers[r.SpouseID] = true
	}

	if cl.Unresolved > 0 {
		lg.Warn("spousal caregivers without a resolvable spouse identifier",
			zap.Int("unresolved", cl.Unresolved),
			zap.Int("linked", len(cl.Caregivers)))
	}

	return cl
}

// ApplyCaregiverLinkage writes the spousal-caregiver flag onto each
// respondent's record.  When the caregiving-items fragment was loaded
// for the run, a respondent named by no reporter is No; when the
// fragment is absent entirely there is no evidence in either
// direction and every flag stays Unknown.
func ApplyCaregiverLinkage(pop []*Respondent, cl CaregiverLinkage, itemsPresent bool) {

	for _, r := range pop {
		switch {
		case cl.Caregivers[r.ID]:
			r.SpousalCaregiver = Yes
		case itemsPresent:
			r.SpousalCaregiver = No
		default:
			r.SpousalCaregiver = Unknown
		}
	}
}
