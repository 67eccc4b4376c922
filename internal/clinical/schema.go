package clinical

import (
	"sort"

	"cognigraph/internal/graph"
)

// SchemaPattern is one distinct (subject type, relation, object type) shape
// with its instance count.
type SchemaPattern struct {
	SubjectType string `json:"subject_type"`
	Relation    string `json:"relation"`
	ObjectType  string `json:"object_type"`
	Count       int    `json:"count"`
}

type SchemaSummary struct {
	Triples       int             `json:"triples"`
	Nodes         int             `json:"nodes"`
	NodeTypes     int             `json:"node_types"`
	RelationTypes int             `json:"relation_types"`
	Patterns      []SchemaPattern `json:"patterns"`
}

// SummarizeSchema computes the dataset's shape statistics: counts plus every
// edge pattern, sorted by subject type, relation, object type.
func SummarizeSchema(ix *graph.Index) SchemaSummary {
	nodeTypes := make(map[graph.NodeType]bool)
	relations := make(map[graph.Relation]bool)
	patterns := make(map[SchemaPattern]int)
	for _, t := range ix.Triples() {
		nodeTypes[t.SubjectType] = true
		nodeTypes[t.ObjectType] = true
		relations[t.Relation] = true
		key := SchemaPattern{
			SubjectType: string(t.SubjectType),
			Relation:    string(t.Relation),
			ObjectType:  string(t.ObjectType),
		}
		patterns[key]++
	}

	out := SchemaSummary{
		Triples:       ix.TripleCount(),
		Nodes:         ix.NodeCount(),
		NodeTypes:     len(nodeTypes),
		RelationTypes: len(relations),
		Patterns:      make([]SchemaPattern, 0, len(patterns)),
	}
	for p, n := range patterns {
		p.Count = n
		out.Patterns = append(out.Patterns, p)
	}
	sort.Slice(out.Patterns, func(i, j int) bool {
		a, b := out.Patterns[i], out.Patterns[j]
		if a.SubjectType != b.SubjectType {
			return a.SubjectType < b.SubjectType
		}
		if a.Relation != b.Relation {
			return a.Relation < b.Relation
		}
		return a.ObjectType < b.ObjectType
	})
	return out
}
