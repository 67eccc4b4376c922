package clinical

import "strings"

// NotReported is the explicit marker for a matrix cell with no backing data.
// It is distinct from an empty string so callers can tell "no data" from
// "data states nothing".
const NotReported = "not reported"

type Cell struct {
	Value    string `json:"value"`
	Reported bool   `json:"reported"`
}

func (c Cell) String() string {
	if !c.Reported {
		return NotReported
	}
	return c.Value
}

type MatrixRow struct {
	Label string `json:"label"`
	Cells []Cell `json:"cells"`
}

// Matrix is the side-by-side comparison: one column per profile, one row per
// attribute. Column order is input order; no sorting by evidence quality.
type Matrix struct {
	Columns []string    `json:"columns"`
	Rows    []MatrixRow `json:"rows"`
}

var matrixRowLabels = []string{
	"Evidence Level",
	"Effectiveness",
	"Dosage",
	"Duration",
	"Population",
	"Side Effects",
	"Monitoring",
}

// Compare builds the attribute matrix for the given profiles.
func Compare(profiles []TreatmentProfile) Matrix {
	m := Matrix{
		Columns: make([]string, 0, len(profiles)),
		Rows:    make([]MatrixRow, 0, len(matrixRowLabels)),
	}
	for _, p := range profiles {
		m.Columns = append(m.Columns, p.Name)
	}
	for _, label := range matrixRowLabels {
		row := MatrixRow{Label: label, Cells: make([]Cell, 0, len(profiles))}
		for _, p := range profiles {
			row.Cells = append(row.Cells, cellFor(p, label))
		}
		m.Rows = append(m.Rows, row)
	}
	return m
}

func cellFor(p TreatmentProfile, label string) Cell {
	switch label {
	case "Evidence Level":
		return textCell(p.EvidenceLevel)
	case "Effectiveness":
		return textCell(p.Effectiveness)
	case "Dosage":
		return textCell(p.Dosage)
	case "Duration":
		return textCell(p.Duration)
	case "Population":
		return textCell(p.Population)
	case "Side Effects":
		var all []string
		for _, d := range p.Drugs {
			all = append(all, d.SideEffects...)
		}
		return listCell(all)
	case "Monitoring":
		return listCell(p.Monitoring)
	}
	return Cell{}
}

func textCell(v string) Cell {
	if v == "" {
		return Cell{}
	}
	return Cell{Value: v, Reported: true}
}

func listCell(vs []string) Cell {
	if len(vs) == 0 {
		return Cell{}
	}
	return Cell{Value: strings.Join(vs, "; "), Reported: true}
}
