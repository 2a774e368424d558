package main

// ruralurban runs the productive-activity analysis: it loads the
// survey fragment files (Stata dta, SAS7BDAT, or CSV), derives the
// activity indicators, and writes per-stratum tables and rural/urban
// proportion comparisons to CSV (and optionally parquet) files in
// the output directory.

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path"

	"go.uber.org/zap"

	"github.com/kshedden/datareader"

	ruralurban "github.com/suncpeter/poster-gsa2022-ruralurban"
)

func loadSeries(fname string) []*datareader.Series {

	series, err := ruralurban.OpenStatFile(fname)
	if err != nil {
		io.WriteString(os.Stderr, fmt.Sprintf("%s: %v\n", fname, err))
		os.Exit(1)
	}
	return series
}

func main() {

	demog := flag.String("demog", "", "Path to the demographic/work fragment (required)")
	residence := flag.String("residence", "", "Path to the nursing-home/residence fragment")
	geography := flag.String("geography", "", "Path to the geography fragment")
	volunteering := flag.String("volunteering", "", "Path to the volunteering fragment")
	caregiving := flag.String("caregiving", "", "Path to the caregiving-items fragment")
	level := flag.String("level", "region", "Geography partition: region, division, or both")
	outdir := flag.String("outdir", ".", "Directory where output tables are written")
	writeParquet := flag.Bool("parquet", false, "Also write the stratum table as parquet")
	flag.Parse()

	if *demog == "" {
		io.WriteString(os.Stderr, "'demog' is a required argument\n")
		os.Exit(1)
	}
	if _, err := os.Stat(*outdir); os.IsNotExist(err) {
		io.WriteString(os.Stderr, fmt.Sprintf("Directory '%s' does not exist, exiting.\n", *outdir))
		os.Exit(1)
	}

	var levels []ruralurban.GeoLevel
	switch *level {
	case "region":
		levels = []ruralurban.GeoLevel{ruralurban.ByRegion}
	case "division":
		levels = []ruralurban.GeoLevel{ruralurban.ByDivision}
	case "both":
		levels = []ruralurban.GeoLevel{ruralurban.ByRegion, ruralurban.ByDivision}
	default:
		io.WriteString(os.Stderr, "'level' must be region, division, or both\n")
		os.Exit(1)
	}

	lg, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer lg.Sync()

	var fr ruralurban.Fragments

	fr.Demographic, err = ruralurban.LoadDemographic(loadSeries(*demog), ruralurban.DefaultDemographicColumns())
	if err != nil {
		lg.Fatal("demographic fragment", zap.Error(err))
	}
	if *residence != "" {
		fr.Residence, err = ruralurban.LoadResidence(loadSeries(*residence), ruralurban.DefaultResidenceColumns())
		if err != nil {
			lg.Fatal("residence fragment", zap.Error(err))
		}
	}
	if *geography != "" {
		fr.Geography, err = ruralurban.LoadGeography(loadSeries(*geography), ruralurban.DefaultGeographyColumns())
		if err != nil {
			lg.Fatal("geography fragment", zap.Error(err))
		}
	}
	if *volunteering != "" {
		fr.Volunteering, err = ruralurban.LoadVolunteering(loadSeries(*volunteering), ruralurban.DefaultVolunteeringColumns())
		if err != nil {
			lg.Fatal("volunteering fragment", zap.Error(err))
		}
	}
	if *caregiving != "" {
		fr.Caregiving, err = ruralurban.LoadCaregiving(loadSeries(*caregiving), ruralurban.DefaultCaregivingColumns())
		if err != nil {
			lg.Fatal("caregiving fragment", zap.Error(err))
		}
	}

	var strata []ruralurban.StratumCell
	var comparisons []ruralurban.ComparisonResult
	var insufficient []ruralurban.InsufficientCell

	for _, lv := range levels {
		result := ruralurban.Run(fr, lv, lg)
		strata = append(strata, result.Strata...)
		comparisons = append(comparisons, result.Comparisons...)
		insufficient = append(insufficient, result.Report.Insufficient...)

		lg.Info("run report",
			zap.String("level", lv.String()),
			zap.Int("population", result.Report.PopulationSize),
			zap.Int("cohort", result.Report.CohortSize),
			zap.Int("unresolved_linkages", result.Report.UnresolvedLinkages),
			zap.Int("insufficient_cells", len(result.Report.Insufficient)))
	}

	if err := writeStrataCSV(path.Join(*outdir, "strata.csv"), strata); err != nil {
		lg.Fatal("writing stratum table", zap.Error(err))
	}
	if err := writeComparisonsCSV(path.Join(*outdir, "comparisons.csv"), comparisons, insufficient); err != nil {
		lg.Fatal("writing comparison table", zap.Error(err))
	}
	if *writeParquet {
		if err := writeStrataParquet(path.Join(*outdir, "strata.parquet"), strata); err != nil {
			lg.Fatal("writing parquet stratum table", zap.Error(err))
		}
	}
}
