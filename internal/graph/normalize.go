package graph

import "strings"

// cleanField trims surrounding whitespace and strips control characters that
// some spreadsheet exports leak into cells (NUL, vertical tabs and friends).
func cleanField(s string) string {
	if s == "" {
		return s
	}
	s = strings.ReplaceAll(s, "\x00", "")
	r := make([]rune, 0, len(s))
	for _, ch := range s {
		if ch == '\n' || ch == '\r' || ch == '\t' {
			r = append(r, ' ')
			continue
		}
		if ch < 0x20 {
			continue
		}
		r = append(r, ch)
	}
	return strings.TrimSpace(string(r))
}

func normalizeRow(row Row) Row {
	row.XType = cleanField(row.XType)
	row.XName = cleanField(row.XName)
	row.Relation = strings.ToUpper(cleanField(row.Relation))
	row.YType = cleanField(row.YType)
	row.YName = cleanField(row.YName)
	row.SourceType = cleanField(row.SourceType)
	row.SourceLink = cleanField(row.SourceLink)
	row.SourceDate = cleanField(row.SourceDate)
	return row
}

func (row Row) blank() bool {
	return row.XType == "" && row.XName == "" && row.Relation == "" &&
		row.YType == "" && row.YName == "" && row.SourceType == "" &&
		row.SourceLink == "" && row.SourceDate == ""
}
