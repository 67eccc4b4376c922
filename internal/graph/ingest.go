package graph

import (
	"fmt"
	"time"
)

// Row is one raw tabular record as read from CSV/XLSX or a store, before any
// validation. Line carries the 1-based data-row position for the report.
type Row struct {
	Line       int    `json:"line"`
	XName      string `json:"x_name"`
	XType      string `json:"x_type"`
	Relation   string `json:"relation"`
	YName      string `json:"y_name"`
	YType      string `json:"y_type"`
	SourceType string `json:"source_type"`
	SourceLink string `json:"source_link"`
	SourceDate string `json:"source_date"`
}

const dateLayout = "2006-01-02"

// Ingest validates, cleans, defaults and deduplicates raw rows and builds the
// graph index. Data-quality problems never abort the run: bad rows are
// rejected into the report, suspicious rows are flagged and kept. The only
// hard failures live upstream, in the readers that produce []Row.
func Ingest(rows []Row) (*Index, *Report) {
	report := &Report{Rejected: []RowIssue{}, Flagged: []RowIssue{}}
	ordered := make([]Triple, 0, len(rows))
	byKey := make(map[string]int, len(rows))

	for _, raw := range rows {
		row := normalizeRow(raw)
		if row.blank() {
			continue
		}
		if reason, ok := missingRequired(row); !ok {
			report.reject(raw.Line, reason)
			continue
		}

		t := Triple{
			SubjectType: NodeType(row.XType),
			SubjectName: row.XName,
			Relation:    Relation(row.Relation),
			ObjectType:  NodeType(row.YType),
			ObjectName:  row.YName,
			SourceType:  row.SourceType,
			SourceLink:  row.SourceLink,
		}
		if t.SourceType == "" {
			t.SourceType = DefaultSourceType
		}
		if !t.Relation.Recognized() {
			report.flag(raw.Line, fmt.Sprintf("unvalidated relation %q", row.Relation))
		}
		if row.SourceDate == "" {
			report.flag(raw.Line, "missing source_date")
		} else if parsed, err := time.Parse(dateLayout, row.SourceDate); err != nil {
			report.flag(raw.Line, fmt.Sprintf("unparseable source_date %q", row.SourceDate))
		} else {
			t.SourceDate = parsed
		}

		key := t.IdentityKey()
		if at, dup := byKey[key]; dup {
			report.Deduplicated++
			// Most recent valid source date wins; ties and unknown dates keep
			// the earlier occurrence. Position in input order is preserved.
			if !t.SourceDate.IsZero() && t.SourceDate.After(ordered[at].SourceDate) {
				ordered[at] = t
			}
			continue
		}
		byKey[key] = len(ordered)
		ordered = append(ordered, t)
	}

	report.Accepted = len(ordered)
	return NewIndex(ordered), report
}

func missingRequired(row Row) (string, bool) {
	switch {
	case row.XType == "":
		return "missing required field x_type", false
	case row.XName == "":
		return "missing required field x_name", false
	case row.Relation == "":
		return "missing required field relation", false
	case row.YType == "":
		return "missing required field y_type", false
	case row.YName == "":
		return "missing required field y_name", false
	}
	return "", true
}
