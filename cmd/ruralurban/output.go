package main

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	ruralurban "github.com/suncpeter/poster-gsa2022-ruralurban"
)

// writeStrataCSV writes the per-stratum indicator table.
func writeStrataCSV(fname string, cells []ruralurban.StratumCell) error {

	fid, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer fid.Close()

	w := csv.NewWriter(fid)

	hdr := []string{"level", "geo", "rural", "activity", "positive", "total", "proportion"}
	if err := w.Write(hdr); err != nil {
		return err
	}

	for _, c := range cells {
		row := []string{
			c.Level.String(),
			c.Geo,
			c.Rural,
			c.Activity.String(),
			fmt.Sprintf("%d", c.Positive),
			fmt.Sprintf("%d", c.Total),
			fmt.Sprintf("%.6f", c.Proportion()),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// writeComparisonsCSV writes the rural/urban comparison table.
// Geography cells that could not be tested appear with the
// "insufficient" status and empty estimates, so the omission is
// explicit in the output.
func writeComparisonsCSV(fname string, results []ruralurban.ComparisonResult,
	insufficient []ruralurban.InsufficientCell) error {

	fid, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer fid.Close()

	w := csv.NewWriter(fid)

	hdr := []string{"level", "geo", "activity", "status",
		"rural_positive", "rural_total", "urban_positive", "urban_total",
		"rural_prop", "urban_prop", "p_value"}
	if err := w.Write(hdr); err != nil {
		return err
	}

	for _, r := range results {
		row := []string{
			r.Level.String(),
			r.Geo,
			r.Activity.String(),
			"ok",
			fmt.Sprintf("%d", r.RuralPositive),
			fmt.Sprintf("%d", r.RuralTotal),
			fmt.Sprintf("%d", r.UrbanPositive),
			fmt.Sprintf("%d", r.UrbanTotal),
			fmt.Sprintf("%.6f", r.RuralProp),
			fmt.Sprintf("%.6f", r.UrbanProp),
			fmt.Sprintf("%.6f", r.P),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	for _, c := range insufficient {
		row := []string{
			c.Level.String(), c.Geo, c.Activity.String(), "insufficient",
			"", "", "", "", "", "", "",
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// strataRow is the parquet row layout for the stratum table.
type strataRow struct {
	Level      string  `parquet:"name=level,type=BYTE_ARRAY"`
	Geo        string  `parquet:"name=geo,type=BYTE_ARRAY"`
	Rural      string  `parquet:"name=rural,type=BYTE_ARRAY"`
	Activity   string  `parquet:"name=activity,type=BYTE_ARRAY"`
	Positive   int64   `parquet:"name=positive,type=INT64"`
	Total      int64   `parquet:"name=total,type=INT64"`
	Proportion float64 `parquet:"name=proportion,type=DOUBLE"`
}

// writeStrataParquet writes the stratum table as a parquet file.
func writeStrataParquet(fname string, cells []ruralurban.StratumCell) error {

	fw, err := local.NewLocalFileWriter(fname)
	if err != nil {
		return err
	}

	pw, err := writer.NewParquetWriter(fw, new(strataRow), 4)
	if err != nil {
		return err
	}
	pw.RowGroupSize = 128 * 1024 * 1024
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, c := range cells {
		rec := strataRow{
			Level:      c.Level.String(),
			Geo:        c.Geo,
			Rural:      c.Rural,
			Activity:   c.Activity.String(),
			Positive:   int64(c.Positive),
			Total:      int64(c.Total),
			Proportion: c.Proportion(),
		}
		if err := pw.Write(rec); err != nil {
			return err
		}
	}

	if err := pw.WriteStop(); err != nil {
		return err
	}
	return fw.Close()
}
