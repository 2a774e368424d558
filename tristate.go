package ruralurban

// A Tristate is the value of one derived indicator for one
// respondent: the activity is present, absent, or cannot be
// determined from the available items.  The zero value is Unknown so
// that an indicator never reads as "no" before it has been derived.
type Tristate int8

const (
	Unknown Tristate = iota
	Yes
	No
)

func (t Tristate) String() string {
	switch t {
	case Yes:
		return "yes"
	case No:
		return "no"
	default:
		return "unknown"
	}
}

// Known reports whether t carries evidence in either direction.
func (t Tristate) Known() bool {
	return t == Yes || t == No
}

// anyKnownOr combines sub-indicators with an OR that requires at
// least one known input before concluding "no".  The result is Yes if
// any input is Yes, No if no input is Yes and at least one input is
// known, and Unknown only when every input is Unknown.
func anyKnownOr(vals ...Tristate) Tristate {

	known := false
	for _, v := range vals {
		switch v {
		case Yes:
			return Yes
		case No:
			known = true
		}
	}
	if known {
		return No
	}
	return Unknown
}

// unknownEvidenceLimit is the number of unknown sub-indicators at
// which the evidence rule gives up.  The analysis fixes this at 2 for
// its three-item composites; it is a constant, not scaled with the
// number of inputs.
const unknownEvidenceLimit = 2

// evidenceRule combines sub-indicators at the activity level.  With
// unknownEvidenceLimit or more unknown inputs the result is Unknown
// regardless of the remaining values, since too little is known to
// rule the activity out.  Otherwise the result is Yes if any input is
// Yes, and No if not.  This differs from anyKnownOr: two unknowns and
// one "no" is Unknown here, not No.
func evidenceRule(vals ...Tristate) Tristate {

	var nyes, nunk int
	for _, v := range vals {
		switch v {
		case Yes:
			nyes++
		case Unknown:
			nunk++
		}
	}

	if nunk >= unknownEvidenceLimit {
		return Unknown
	}
	if nyes >= 1 {
		return Yes
	}
	return No
}
