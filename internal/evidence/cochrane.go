// Package evidence turns Cochrane Library BibTeX exports into ingestable
// triple rows. Extraction is heuristic by design: it reads the authors'
// conclusions out of each abstract and classifies every drug/disease pair it
// finds there. The rows carry an out-of-vocabulary relation, so ingestion
// flags them for curation instead of trusting them silently.
package evidence

import (
	"fmt"
	"regexp"
	"strings"

	"cognigraph/internal/graph"
)

const (
	RelationSupport    = "SUPPORT"
	RelationAgainst    = "AGAINST"
	RelationNonRelated = "NON_RELATED"

	sourceType = "Cochrane Review"
)

var (
	conclusionPat = regexp.MustCompile(`(?i)Authors['’]?\s*conclusions?:?\s*([^.]+(?:\.[^.]+)*)`)
	drugPat       = regexp.MustCompile(`\b[A-Z][a-z]+(?:id|ine|ol|il|ate|ant|ene)\b`)
	diseasePat    = regexp.MustCompile(`(?i)Alzheimer['’]s disease|dementia|MCI|cognitive impairment`)

	supportWords = []string{"effective", "improvement", "beneficial", "positive"}
	againstWords = []string{"no effect", "not effective", "no difference"}
)

// Review is one parsed BibTeX entry.
type Review struct {
	Key      string
	Title    string
	Abstract string
	Year     string
	URL      string
}

// ExtractRows parses a BibTeX export and emits one row per drug/disease pair
// found in each review's conclusions.
func ExtractRows(bib string) []graph.Row {
	rows := make([]graph.Row, 0)
	line := 0
	for _, rev := range ParseBibTeX(bib) {
		for _, rel := range classifyRelations(rev.Abstract) {
			line++
			rows = append(rows, graph.Row{
				Line:       line,
				XName:      rel.drug,
				XType:      string(graph.NodeDrug),
				Relation:   rel.relation,
				YName:      rel.disease,
				YType:      string(graph.NodeDisease),
				SourceType: sourceType,
				SourceLink: rev.URL,
				SourceDate: yearDate(rev.Year),
			})
		}
	}
	return rows
}

type drugDisease struct {
	drug, relation, disease string
}

func classifyRelations(abstract string) []drugDisease {
	m := conclusionPat.FindStringSubmatch(abstract)
	if m == nil {
		return nil
	}
	conclusion := strings.ToLower(m[1])

	relation := RelationNonRelated
	if containsAny(conclusion, supportWords) {
		relation = RelationSupport
	} else if containsAny(conclusion, againstWords) {
		relation = RelationAgainst
	}

	drugs := uniqueMatches(drugPat.FindAllString(abstract, -1))
	diseases := uniqueMatches(diseasePat.FindAllString(abstract, -1))

	out := make([]drugDisease, 0, len(drugs)*len(diseases))
	for _, drug := range drugs {
		for _, disease := range diseases {
			out = append(out, drugDisease{drug: drug, relation: relation, disease: disease})
		}
	}
	return out
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func uniqueMatches(matches []string) []string {
	seen := make(map[string]bool, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}

func yearDate(year string) string {
	year = strings.TrimSpace(year)
	if len(year) != 4 {
		return ""
	}
	return fmt.Sprintf("%s-01-01", year)
}
