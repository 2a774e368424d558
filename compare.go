package ruralurban

import (
	"fmt"
	"sort"
)

// A ComparisonResult holds the rural-versus-urban proportion test
// for one geography value and activity.
type ComparisonResult struct {
	Level    GeoLevel
	Geo      string
	Activity Activity

	RuralPositive int
	RuralTotal    int
	UrbanPositive int
	UrbanTotal    int

	RuralProp float64
	UrbanProp float64
	P         float64
}

// An InsufficientCell marks a geography value and activity where the
// rural/urban comparison could not be run because one stratum had no
// observations.
type InsufficientCell struct {
	Level    GeoLevel
	Geo      string
	Activity Activity
}

func (c InsufficientCell) String() string {
	return fmt.Sprintf("%s/%s/%s", c.Level, c.Geo, c.Activity)
}

// CompareStrata runs the rural-versus-urban proportion test for
// every (geography value, activity) pair appearing in the cell
// table.  Pairs missing either stratum are returned as
// insufficient-cell markers instead of results.  Each cell is tested
// independently; no multiple-comparison correction is applied across
// geography values.
func CompareStrata(cells []StratumCell) ([]ComparisonResult, []InsufficientCell) {

	type key struct {
		level GeoLevel
		act   Activity
		geo   string
	}
	type pair struct {
		rural *StratumCell
		urban *StratumCell
	}

	pairs := make(map[key]*pair)
	var order []key
	for i := range cells {
		c := &cells[i]
		k := key{c.Level, c.Activity, c.Geo}
		pr := pairs[k]
		if pr == nil {
			pr = &pair{}
			pairs[k] = pr
			order = append(order, k)
		}
		if c.Rural == RuralLabel {
			pr.rural = c
		} else {
			pr.urban = c
		}
	}

	sort.Slice(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if a.level != b.level {
			return a.level < b.level
		}
		if a.act != b.act {
			return a.act < b.act
		}
		return a.geo < b.geo
	})

	var results []ComparisonResult
	var insufficient []InsufficientCell
	for _, k := range order {
		pr := pairs[k]
		var rx, rn, ux, un int
		if pr.rural != nil {
			rx, rn = pr.rural.Positive, pr.rural.Total
		}
		if pr.urban != nil {
			ux, un = pr.urban.Positive, pr.urban.Total
		}

		p, pr1, pr2, err := TwoProportionTest(rx, rn, ux, un)
		if err != nil {
			insufficient = append(insufficient, InsufficientCell{
				Level: k.level, Geo: k.geo, Activity: k.act,
			})
			continue
		}

		results = append(results, ComparisonResult{
			Level:         k.level,
			Geo:           k.geo,
			Activity:      k.act,
			RuralPositive: rx,
			RuralTotal:    rn,
			UrbanPositive: ux,
			UrbanTotal:    un,
			RuralProp:     pr1,
			UrbanProp:     pr2,
			P:             p,
		})
	}

	return results, insufficient
}
