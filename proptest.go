package ruralurban

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// TwoProportionTest runs the two-sample proportion z-test with
// continuity correction on counts (x1 of n1) versus (x2 of n2).  It
// returns the two-sided p-value and the two point estimates.  A zero
// total in either sample is ErrInsufficientStratum.
func TwoProportionTest(x1, n1, x2, n2 int) (p, p1, p2 float64, err error) {

	if n1 == 0 || n2 == 0 {
		return 0, 0, 0, ErrInsufficientStratum
	}

	p1 = float64(x1) / float64(n1)
	p2 = float64(x2) / float64(n2)

	pooled := float64(x1+x2) / float64(n1+n2)
	invn := 1/float64(n1) + 1/float64(n2)
	se := math.Sqrt(pooled * (1 - pooled) * invn)
	if se == 0 {
		// Both samples all-positive or all-negative: the two
		// proportions are equal and there is nothing to test.
		return 1, p1, p2, nil
	}

	// Continuity-corrected absolute difference; the correction can
	// overshoot a small difference, in which case z is 0.
	d := math.Abs(p1-p2) - 0.5*invn
	if d < 0 {
		d = 0
	}
	z := d / se

	p = 2 * stdNormal.Survival(z)
	if p > 1 {
		p = 1
	}
	return p, p1, p2, nil
}
