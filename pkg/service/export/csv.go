package export

import (
	"encoding/csv"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/ecorisk-lab/climatevar/pkg/domain/model"
	"github.com/ecorisk-lab/climatevar/pkg/service/report"
	"github.com/m-mizutani/goerr/v2"
)

const (
	// FileName is the name offered to the browser for the download
	FileName = "risk_projection.csv"
	// ContentType is the MIME type of the export
	ContentType = "text/csv"
)

var ErrMalformedCSV = goerr.New("malformed projection CSV")

// WriteCSV serializes the projection with a header row and raw, unformatted numbers
func WriteCSV(w io.Writer, result *model.ProjectionResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(report.Columns()); err != nil {
		return goerr.Wrap(err, "failed to write CSV header")
	}

	for _, row := range result.Rows {
		record := []string{
			strconv.Itoa(row.Year),
			FormatRaw(row.HazardMultiplier),
			FormatRaw(row.ValueAtRisk),
		}
		if err := cw.Write(record); err != nil {
			return goerr.Wrap(err, "failed to write CSV row", goerr.V("year", row.Year))
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return goerr.Wrap(err, "failed to flush CSV")
	}
	return nil
}

// ReadCSV parses data produced by WriteCSV
func ReadCSV(r io.Reader) (*model.ProjectionResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(report.Columns())

	header, err := cr.Read()
	if err != nil {
		return nil, goerr.Wrap(ErrMalformedCSV, "failed to read CSV header", goerr.V("cause", err.Error()))
	}
	for i, col := range report.Columns() {
		if header[i] != col {
			return nil, goerr.Wrap(ErrMalformedCSV, "unexpected CSV header", goerr.V("index", i), goerr.V("got", header[i]), goerr.V("want", col))
		}
	}

	result := &model.ProjectionResult{}
	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(ErrMalformedCSV, "failed to read CSV row", goerr.V("line", line), goerr.V("cause", err.Error()))
		}

		year, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, goerr.Wrap(ErrMalformedCSV, "invalid year", goerr.V("line", line), goerr.V("value", record[0]))
		}
		multiplier, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, goerr.Wrap(ErrMalformedCSV, "invalid hazard multiplier", goerr.V("line", line), goerr.V("value", record[1]))
		}
		valueAtRisk, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, goerr.Wrap(ErrMalformedCSV, "invalid value at risk", goerr.V("line", line), goerr.V("value", record[2]))
		}

		result.Rows = append(result.Rows, model.ProjectionRow{
			Year:             year,
			HazardMultiplier: multiplier,
			ValueAtRisk:      valueAtRisk,
		})
	}

	return result, nil
}

// FormatRaw writes a float the way a dataframe CSV dump does: shortest
// round-trip digits, a trailing ".0" for integral values and exponent form
// outside [1e-4, 1e16).
func FormatRaw(v float64) string {
	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
