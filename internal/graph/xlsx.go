package graph

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"cognigraph/internal/util"
)

// ReadXLSX reads triples from the first sheet of an Excel workbook, with the
// same header contract as ReadCSV. Curation teams tend to hand the dataset
// around as spreadsheets, so this path gets the same treatment as CSV.
func ReadXLSX(r io.Reader) ([]Row, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrUnreadableInput, err)
	}
	defer wb.Close()
	return rowsFromWorkbook(wb)
}

func ReadXLSXFile(path string) ([]Row, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrUnreadableInput, err)
	}
	defer wb.Close()
	return rowsFromWorkbook(wb)
}

func rowsFromWorkbook(wb *excelize.File) ([]Row, error) {
	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", util.ErrUnreadableInput)
	}
	records, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrUnreadableInput, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty sheet", util.ErrUnreadableInput)
	}
	cols, err := mapHeader(records[0])
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(records)-1)
	for i, record := range records[1:] {
		rows = append(rows, cols.row(record, i+1))
	}
	return rows, nil
}
