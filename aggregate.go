package ruralurban

import "sort"

// GeoLevel selects the geography partition used for stratification.
type GeoLevel int

const (
	ByRegion GeoLevel = iota
	ByDivision
)

func (g GeoLevel) String() string {
	if g == ByDivision {
		return "division"
	}
	return "region"
}

// geoLabel returns the respondent's label under the partition, and
// whether the underlying code is known and in the code table.
func (r *Respondent) geoLabel(level GeoLevel) (string, bool) {

	it, names := r.Region, regionNames
	if level == ByDivision {
		it, names = r.Division, divisionNames
	}
	if it.Missing {
		return "", false
	}
	name, ok := names[it.Code]
	return name, ok
}

// ruralLabel returns the respondent's rural/urban stratum flag, and
// whether the urbanicity code is known and in the code table.
func (r *Respondent) ruralLabel() (string, bool) {

	if r.Urbanicity.Missing {
		return "", false
	}
	name, ok := ruralNames[r.Urbanicity.Code]
	return name, ok
}

// A StratumCell is the aggregate for one (geography value,
// rural/urban flag, activity) cell.  Total counts only respondents
// with a known indicator value; unknowns are excluded from numerator
// and denominator alike, so the denominator is the locally observed
// population and differs across indicators.
type StratumCell struct {
	Level    GeoLevel
	Geo      string
	Rural    string
	Activity Activity
	Positive int
	Total    int
}

// Proportion is the within-stratum positive share.
func (c StratumCell) Proportion() float64 {
	return float64(c.Positive) / float64(c.Total)
}

// Aggregate builds the stratified table for one activity at one
// geography level.  Respondents with an unknown indicator value,
// missing geography, or missing rural/urban flag are dropped from
// this table only; they remain in the cohort and in other tables.
// Cells are sorted by geography then rurality, so output is
// deterministic.
func Aggregate(cohort []*Respondent, level GeoLevel, act Activity) []StratumCell {

	type key struct {
		geo   string
		rural string
	}
	cells := make(map[key]*StratumCell)

	for _, r := range cohort {
		v := r.Indicator(act)
		if !v.Known() {
			continue
		}
		geo, ok := r.geoLabel(level)
		if !ok {
			continue
		}
		rural, ok := r.ruralLabel()
		if !ok {
			continue
		}

		k := key{geo, rural}
		c := cells[k]
		if c == nil {
			c = &StratumCell{Level: level, Geo: geo, Rural: rural, Activity: act}
			cells[k] = c
		}
		c.Total++
		if v == Yes {
			c.Positive++
		}
	}

	out := make([]StratumCell, 0, len(cells))
	for _, c := range cells {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Geo != out[j].Geo {
			return out[i].Geo < out[j].Geo
		}
		return out[i].Rural < out[j].Rural
	})

	return out
}

// AggregateAll builds the stratified tables for every activity at
// the given geography level, in Activities order.
func AggregateAll(cohort []*Respondent, level GeoLevel) []StratumCell {

	var out []StratumCell
	for _, a := range Activities {
		out = append(out, Aggregate(cohort, level, a)...)
	}
	return out
}
