package graph

// RowIssue records one data-quality finding for a single input row. Line is
// the 1-based position in the raw input, header excluded.
type RowIssue struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// Report is the per-ingestion validation report. Rejected rows never reach
// the index; flagged rows do, with their defect noted.
type Report struct {
	Accepted     int        `json:"accepted"`
	Deduplicated int        `json:"deduplicated"`
	Rejected     []RowIssue `json:"rejected"`
	Flagged      []RowIssue `json:"flagged"`
}

func (r *Report) reject(line int, reason string) {
	r.Rejected = append(r.Rejected, RowIssue{Line: line, Reason: reason})
}

func (r *Report) flag(line int, reason string) {
	r.Flagged = append(r.Flagged, RowIssue{Line: line, Reason: reason})
}

func (r *Report) Clean() bool {
	return len(r.Rejected) == 0 && len(r.Flagged) == 0
}
