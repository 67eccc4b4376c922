package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cognigraph/internal/evidence"
	"cognigraph/internal/graph"
	"cognigraph/internal/util"
)

// RowsFromFile reads raw triples from a dataset file, dispatching on
// extension. CSV is the canonical interchange format; XLSX is accepted
// because that is how curated datasets usually arrive, and BibTeX exports
// go through the evidence extractor.
func RowsFromFile(path string) ([]graph.Row, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return graph.ReadCSVFile(path)
	case ".xlsx":
		return graph.ReadXLSXFile(path)
	case ".bib":
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read bibtex: %w", err)
		}
		return evidence.ExtractRows(string(raw)), nil
	default:
		return nil, fmt.Errorf("%w: unsupported dataset extension %q", util.ErrUnreadableInput, filepath.Ext(path))
	}
}

// LoadFile reads, ingests and publishes a dataset file. A structural read
// failure leaves the previously published snapshot untouched.
func (p *Publisher) LoadFile(path string) (*Snapshot, error) {
	rows, err := RowsFromFile(path)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return p.Publish(rows, util.SHA256Hex(raw)), nil
}
