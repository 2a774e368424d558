package ruralurban

// An Item is one raw questionnaire response: the numeric survey code
// and a missing-value indicator, one cell of a column with its
// missing mask.
type Item struct {
	Code    float64
	Missing bool
}

// A CodeTable maps the raw codes of one questionnaire item to
// indicator values.  Codes absent from the table decode to Unknown;
// "don't know" and "refused" codes are simply left out of the table,
// never enumerated as "no".
type CodeTable map[float64]Tristate

// Decode maps one raw item value through the table.
func (ct CodeTable) Decode(it Item) Tristate {
	if it.Missing {
		return Unknown
	}
	v, ok := ct[it.Code]
	if !ok {
		return Unknown
	}
	return v
}

// Raw item coding follows the HRS/AHEAD convention: 1 = yes, 5 = no,
// 8 = don't know, 9 = refused.
var (
	workTable       = CodeTable{1: Yes, 5: No}
	volunteerTable  = CodeTable{1: Yes, 5: No}
	grandchildTable = CodeTable{1: Yes, 5: No}
	parentItemTable = CodeTable{1: Yes, 5: No}
)

// helperSpouseCode is the helper relationship code identifying a
// spouse or partner in the ADL/IADL helper slots.
const helperSpouseCode = 2

// helperIsSpouse classifies one helper slot.  A blank slot is
// Unknown; any known non-spouse relationship code is No.
func helperIsSpouse(it Item) Tristate {
	if it.Missing {
		return Unknown
	}
	if it.Code == helperSpouseCode {
		return Yes
	}
	return No
}

// inWaveCode marks a respondent interviewed in the analysis wave.
const inWaveCode = 1

// communityCodes is the set of residence-status codes counted as
// community-dwelling.  Nursing home and other institutional codes
// are outside the cohort.
var communityCodes = map[float64]bool{1: true}

// Labels for the rural/urban stratum flag.
const (
	RuralLabel = "Rural"
	UrbanLabel = "Urban"
)

// ruralNames maps urbanicity codes to the stratum flag.  Codes
// outside the map leave the respondent without a stratum.
var ruralNames = map[float64]string{
	1: UrbanLabel,
	2: RuralLabel,
}

// regionNames maps census region codes to labels.
var regionNames = map[float64]string{
	1: "Northeast",
	2: "Midwest",
	3: "South",
	4: "West",
}

// divisionNames maps census division codes to labels.
var divisionNames = map[float64]string{
	1: "New England",
	2: "Middle Atlantic",
	3: "East North Central",
	4: "West North Central",
	5: "South Atlantic",
	6: "East South Central",
	7: "West South Central",
	8: "Mountain",
	9: "Pacific",
}
