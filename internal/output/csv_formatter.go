package output

import (
	"bytes"
	"encoding/csv"
)

// CSVFormatter writes the tabular section of a report as CSV with a header row.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *Report) ([]byte, error) {
	table, err := report.Table()
	if err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(table.Header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(table.Rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
