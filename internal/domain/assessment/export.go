package assessment

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ExportFilename is the download name of the CSV document.
const ExportFilename = "cvd_results.csv"

// WriteCSV writes the risk estimates as a metric,value document with values
// to one decimal place. The lifetime row is present only when the horizon is
// defined.
func WriteCSV(w io.Writer, res *Result) error {
	if res == nil || res.Risk == nil {
		return fmt.Errorf("assessment result is required")
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"metric", "value"}); err != nil {
		return fmt.Errorf("results csv: write header: %w", err)
	}

	rows := [][]string{
		{"5yr", fmt.Sprintf("%.1f", res.Risk.FiveYear)},
		{"10yr", fmt.Sprintf("%.1f", res.Risk.TenYear)},
	}
	if res.Risk.Lifetime != nil {
		rows = append(rows, []string{"lifetime", fmt.Sprintf("%.1f", *res.Risk.Lifetime)})
	}

	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("results csv: write record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
