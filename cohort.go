package ruralurban

// AgeThreshold is the minimum age for cohort membership.
const AgeThreshold = 65

// InCohort reports whether the respondent belongs to the study
// population: interviewed in the wave, community-dwelling, and at
// least AgeThreshold years old.  A missing value on any criterion
// fails that criterion.  Cohort exclusion is a hard drop from all
// downstream aggregation, not an unknown classification.
func (r *Respondent) InCohort() bool {

	if r.InWave.Missing || r.InWave.Code != inWaveCode {
		return false
	}
	if r.Residence.Missing || !communityCodes[r.Residence.Code] {
		return false
	}
	if r.Age.Missing || r.Age.Code < AgeThreshold {
		return false
	}

	return true
}

// FilterCohort returns the respondents in the study population,
// preserving input order.  The length of the result is the published
// cohort size for the run.
func FilterCohort(pop []*Respondent) []*Respondent {

	var cohort []*Respondent
	for _, r := range pop {
		if r.InCohort() {
			cohort = append(cohort, r)
		}
	}

	return cohort
}
