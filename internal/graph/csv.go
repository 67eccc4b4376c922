package graph

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"cognigraph/internal/util"
)

var requiredColumns = []string{"x_name", "x_type", "relation", "y_name", "y_type"}

type columnMap map[string]int

func mapHeader(header []string) (columnMap, error) {
	cols := make(columnMap, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, req := range requiredColumns {
		if _, ok := cols[req]; !ok {
			return nil, fmt.Errorf("%w: missing required column %q", util.ErrUnreadableInput, req)
		}
	}
	return cols, nil
}

func (c columnMap) get(record []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}

func (c columnMap) row(record []string, line int) Row {
	return Row{
		Line:       line,
		XName:      c.get(record, "x_name"),
		XType:      c.get(record, "x_type"),
		Relation:   c.get(record, "relation"),
		YName:      c.get(record, "y_name"),
		YType:      c.get(record, "y_type"),
		SourceType: c.get(record, "source_type"),
		SourceLink: c.get(record, "source_link"),
		SourceDate: c.get(record, "source_date"),
	}
}

// ReadCSV parses comma-delimited UTF-8 triples with a header row. Only
// structural problems error out; per-row data quality is Ingest's business.
func ReadCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty file", util.ErrUnreadableInput)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrUnreadableInput, err)
	}
	cols, err := mapHeader(header)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, 64)
	line := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", util.ErrUnreadableInput, err)
		}
		line++
		rows = append(rows, cols.row(record, line))
	}
	return rows, nil
}

func ReadCSVFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}
