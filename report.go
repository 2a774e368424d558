package ruralurban

// A RunReport carries the reproducibility counts for one analysis
// run: the published population and cohort sizes, and every
// non-fatal condition that affected the output.
type RunReport struct {

	// Respondents in the joined population, before filtering.
	PopulationSize int

	// Respondents in the analysis cohort.
	CohortSize int

	// Spousal-caregiver reports dropped from the linkage for lack
	// of a valid spouse identifier.
	UnresolvedLinkages int

	// Geography cells omitted from the comparison output.
	Insufficient []InsufficientCell
}
