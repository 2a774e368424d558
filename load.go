package ruralurban

import (
	"fmt"
	"os"
	"strings"

	"github.com/kshedden/datareader"
)

// OpenStatFile reads an entire survey extract in Stata dta, SAS7BDAT,
// or CSV format and returns its columns.  The format is chosen from
// the file extension.
func OpenStatFile(fname string) ([]*datareader.Series, error) {

	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fl := strings.ToLower(fname)
	switch {
	case strings.HasSuffix(fl, ".sas7bdat"):
		sas, err := datareader.NewSAS7BDATReader(f)
		if err != nil {
			return nil, err
		}
		sas.TrimStrings = true
		return sas.Read(-1)
	case strings.HasSuffix(fl, ".dta"):
		stata, err := datareader.NewStataReader(f)
		if err != nil {
			return nil, err
		}
		return stata.Read(-1)
	case strings.HasSuffix(fl, ".csv"):
		return datareader.NewCSVReader(f).Read(-1)
	}

	return nil, fmt.Errorf("%s: unrecognized survey file format", fname)
}

// A frame wraps the Series array read from one input file, for
// column extraction by name.
type frame struct {
	name   string
	series []*datareader.Series
}

// column returns the named column as float64 data with its missing
// mask.  String columns are coerced to numeric with unparseable
// values missing.  An absent column is the fatal MissingFieldError.
func (f *frame) column(name string) ([]float64, []bool, error) {

	for _, s := range f.series {
		if s.Name != name {
			continue
		}
		s = s.ForceNumeric().UpcastNumeric()
		x, miss, err := s.AsFloat64Slice()
		if err != nil {
			return nil, nil, fmt.Errorf("fragment %s: column %s: %v", f.name, name, err)
		}
		return x, miss, nil
	}

	return nil, nil, &MissingFieldError{Fragment: f.name, Column: name}
}

// itemAt builds one Item from a column and its missing mask.  A nil
// mask means no missing values.
func itemAt(x []float64, miss []bool, i int) Item {
	if miss != nil && miss[i] {
		return Item{Missing: true}
	}
	return Item{Code: x[i]}
}

// idAt builds a RespondentID from the household and person-number
// columns.  A missing or non-positive component yields an invalid
// identifier.
func idAt(hh []float64, hhm []bool, pn []float64, pnm []bool, i int) RespondentID {
	if (hhm != nil && hhm[i]) || (pnm != nil && pnm[i]) {
		return RespondentID{}
	}
	if hh[i] <= 0 || pn[i] <= 0 {
		return RespondentID{}
	}
	return RespondentID{Household: uint64(hh[i]), Person: uint64(pn[i])}
}

// DemographicColumns names the columns of the demographic/work
// fragment.  The spouse cross-reference is the spouse's person
// number within the same household; zero or missing means no
// resolvable spouse.
type DemographicColumns struct {
	Household    string
	Person       string
	Age          string
	InWave       string
	WorkStatus   string
	SpousePerson string
}

// DefaultDemographicColumns returns the AHEAD-style column names.
func DefaultDemographicColumns() DemographicColumns {
	return DemographicColumns{
		Household:    "HHID",
		Person:       "PN",
		Age:          "AGE",
		InWave:       "INWAVE",
		WorkStatus:   "WORKPAY",
		SpousePerson: "SPPN",
	}
}

// LoadDemographic extracts the demographic/work fragment from the
// columns of one input file.  Rows without a valid respondent
// identifier are skipped.
func LoadDemographic(series []*datareader.Series, cols DemographicColumns) ([]DemographicRecord, error) {

	f := &frame{name: "demographic", series: series}

	hh, hhm, err := f.column(cols.Household)
	if err != nil {
		return nil, err
	}
	pn, pnm, err := f.column(cols.Person)
	if err != nil {
		return nil, err
	}
	age, agem, err := f.column(cols.Age)
	if err != nil {
		return nil, err
	}
	iw, iwm, err := f.column(cols.InWave)
	if err != nil {
		return nil, err
	}
	wk, wkm, err := f.column(cols.WorkStatus)
	if err != nil {
		return nil, err
	}
	sp, spm, err := f.column(cols.SpousePerson)
	if err != nil {
		return nil, err
	}

	recs := make([]DemographicRecord, 0, len(hh))
	for i := range hh {
		id := idAt(hh, hhm, pn, pnm, i)
		if !id.Valid() {
			continue
		}
		rec := DemographicRecord{
			ID:         id,
			Age:        itemAt(age, agem, i),
			InWave:     itemAt(iw, iwm, i),
			WorkStatus: itemAt(wk, wkm, i),
		}
		spn := itemAt(sp, spm, i)
		if !spn.Missing && spn.Code > 0 {
			rec.SpouseID = RespondentID{Household: id.Household, Person: uint64(spn.Code)}
		}
		recs = append(recs, rec)
	}

	return recs, nil
}

// ResidenceColumns names the columns of the nursing-home/residence
// fragment.
type ResidenceColumns struct {
	Household string
	Person    string
	Residence string
}

// DefaultResidenceColumns returns the AHEAD-style column names.
func DefaultResidenceColumns() ResidenceColumns {
	return ResidenceColumns{Household: "HHID", Person: "PN", Residence: "NURSHM"}
}

// LoadResidence extracts the residence fragment.
func LoadResidence(series []*datareader.Series, cols ResidenceColumns) ([]ResidenceRecord, error) {

	f := &frame{name: "residence", series: series}

	hh, hhm, err := f.column(cols.Household)
	if err != nil {
		return nil, err
	}
	pn, pnm, err := f.column(cols.Person)
	if err != nil {
		return nil, err
	}
	rs, rsm, err := f.column(cols.Residence)
	if err != nil {
		return nil, err
	}

	recs := make([]ResidenceRecord, 0, len(hh))
	for i := range hh {
		id := idAt(hh, hhm, pn, pnm, i)
		if !id.Valid() {
			continue
		}
		recs = append(recs, ResidenceRecord{ID: id, Residence: itemAt(rs, rsm, i)})
	}

	return recs, nil
}

// GeographyColumns names the columns of the geography fragment.
type GeographyColumns struct {
	Household  string
	Person     string
	Urbanicity string
	Region     string
	Division   string
}

// DefaultGeographyColumns returns the AHEAD-style column names.
func DefaultGeographyColumns() GeographyColumns {
	return GeographyColumns{
		Household:  "HHID",
		Person:     "PN",
		Urbanicity: "URBRUR",
		Region:     "CENREG",
		Division:   "CENDIV",
	}
}

// LoadGeography extracts the geography fragment.
func LoadGeography(series []*datareader.Series, cols GeographyColumns) ([]GeographyRecord, error) {

	f := &frame{name: "geography", series: series}

	hh, hhm, err := f.column(cols.Household)
	if err != nil {
		return nil, err
	}
	pn, pnm, err := f.column(cols.Person)
	if err != nil {
		return nil, err
	}
	ur, urm, err := f.column(cols.Urbanicity)
	if err != nil {
		return nil, err
	}
	rg, rgm, err := f.column(cols.Region)
	if err != nil {
		return nil, err
	}
	dv, dvm, err := f.column(cols.Division)
	if err != nil {
		return nil, err
	}

	recs := make([]GeographyRecord, 0, len(hh))
	for i := range hh {
		id := idAt(hh, hhm, pn, pnm, i)
		if !id.Valid() {
			continue
		}
		recs = append(recs, GeographyRecord{
			ID:         id,
			Urbanicity: itemAt(ur, urm, i),
			Region:     itemAt(rg, rgm, i),
			Division:   itemAt(dv, dvm, i),
		})
	}

	return recs, nil
}

// VolunteeringColumns names the columns of the volunteering fragment.
type VolunteeringColumns struct {
	Household string
	Person    string
	Volunteer string
}

// DefaultVolunteeringColumns returns the AHEAD-style column names.
func DefaultVolunteeringColumns() VolunteeringColumns {
	return VolunteeringColumns{Household: "HHID", Person: "PN", Volunteer: "VOLUNT"}
}

// LoadVolunteering extracts the volunteering fragment.
func LoadVolunteering(series []*datareader.Series, cols VolunteeringColumns) ([]VolunteeringRecord, error) {

	f := &frame{name: "volunteering", series: series}

	hh, hhm, err := f.column(cols.Household)
	if err != nil {
		return nil, err
	}
	pn, pnm, err := f.column(cols.Person)
	if err != nil {
		return nil, err
	}
	vl, vlm, err := f.column(cols.Volunteer)
	if err != nil {
		return nil, err
	}

	recs := make([]VolunteeringRecord, 0, len(hh))
	for i := range hh {
		id := idAt(hh, hhm, pn, pnm, i)
		if !id.Valid() {
			continue
		}
		recs = append(recs, VolunteeringRecord{ID: id, Volunteer: itemAt(vl, vlm, i)})
	}

	return recs, nil
}

// CaregivingColumns names the columns of the caregiving-items
// fragment.  Helpers lists the repeated ADL/IADL helper relationship
// columns, one per helper slot.
type CaregivingColumns struct {
	Household      string
	Person         string
	Helpers        []string
	GrandchildCare string
	ParentBasic    string
	ParentChores   string
}

// DefaultCaregivingColumns returns the AHEAD-style column names.
func DefaultCaregivingColumns() CaregivingColumns {
	return CaregivingColumns{
		Household: "HHID",
		Person:    "PN",
		Helpers: []string{
			"ADLHLP1", "ADLHLP2", "ADLHLP3",
			"IADLHLP1", "IADLHLP2", "IADLHLP3",
		},
		GrandchildCare: "GRDCARE",
		ParentBasic:    "PARBASIC",
		ParentChores:   "PARCHORE",
	}
}

// LoadCaregiving extracts the caregiving-items fragment.
func LoadCaregiving(series []*datareader.Series, cols CaregivingColumns) ([]CaregivingRecord, error) {

	f := &frame{name: "caregiving", series: series}

	hh, hhm, err := f.column(cols.Household)
	if err != nil {
		return nil, err
	}
	pn, pnm, err := f.column(cols.Person)
	if err != nil {
		return nil, err
	}

	type col struct {
		x    []float64
		miss []bool
	}
	helpers := make([]col, len(cols.Helpers))
	for j, name := range cols.Helpers {
		x, m, err := f.column(name)
		if err != nil {
			return nil, err
		}
		helpers[j] = col{x, m}
	}

	gc, gcm, err := f.column(cols.GrandchildCare)
	if err != nil {
		return nil, err
	}
	pb, pbm, err := f.column(cols.ParentBasic)
	if err != nil {
		return nil, err
	}
	pc, pcm, err := f.column(cols.ParentChores)
	if err != nil {
		return nil, err
	}

	recs := make([]CaregivingRecord, 0, len(hh))
	for i := range hh {
		id := idAt(hh, hhm, pn, pnm, i)
		if !id.Valid() {
			continue
		}
		slots := make([]Item, len(helpers))
		for j, h := range helpers {
			slots[j] = itemAt(h.x, h.miss, i)
		}
		recs = append(recs, CaregivingRecord{
			ID:             id,
			Helpers:        slots,
			GrandchildCare: itemAt(gc, gcm, i),
			ParentBasic:    itemAt(pb, pbm, i),
			ParentChores:   itemAt(pc, pcm, i),
		})
	}

	return recs, nil
}
