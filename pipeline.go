package ruralurban

import "go.uber.org/zap"

// A Result is the complete output of one analysis run at one
// geography level.
type Result struct {
	Cohort      []*Respondent
	Strata      []StratumCell
	Comparisons []ComparisonResult
	Report      RunReport
}

// Run executes the full pipeline at one geography level: join the
// fragments, build and apply the spousal-caregiver linkage over the
// full population, filter to the cohort, aggregate every activity by
// stratum, and compare rural against urban within each geography
// value.  Each stage consumes the previous stage's output; nothing
// is shared or mutated across stages except the linkage flag.
func Run(fr Fragments, level GeoLevel, lg *zap.Logger) *Result {

	pop := Join(fr)

	cl := BuildCaregiverLinkage(pop, lg)
	ApplyCaregiverLinkage(pop, cl, len(fr.Caregiving) > 0)

	cohort := FilterCohort(pop)
	lg.Info("cohort filtered",
		zap.Int("population", len(pop)),
		zap.Int("cohort", len(cohort)),
		zap.String("level", level.String()))

	strata := AggregateAll(cohort, level)
	comparisons, insufficient := CompareStrata(strata)
	if len(insufficient) > 0 {
		lg.Info("comparison cells omitted for insufficient data",
			zap.Int("cells", len(insufficient)))
	}

	return &Result{
		Cohort:      cohort,
		Strata:      strata,
		Comparisons: comparisons,
		Report: RunReport{
			PopulationSize:     len(pop),
			CohortSize:         len(cohort),
			UnresolvedLinkages: cl.Unresolved,
			Insufficient:       insufficient,
		},
	}
}
