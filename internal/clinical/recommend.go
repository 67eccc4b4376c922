package clinical

import (
	"fmt"
	"time"

	"cognigraph/internal/graph"
	"cognigraph/internal/util"
)

// RecommendationKind selects which recommendation edge to follow from the
// anchor node.
type RecommendationKind string

const (
	KindFirstLine     RecommendationKind = "first_line" // stage -> FIRST_LINE_TREATMENT
	KindAllTreatments RecommendationKind = "all"        // disease -> HAS_TREATMENT
	KindTherapy       RecommendationKind = "therapy"    // stage -> RECOMMENDED_THERAPY
)

func (k RecommendationKind) relation() (graph.Relation, error) {
	switch k {
	case KindFirstLine:
		return graph.RelFirstLineTreatment, nil
	case KindAllTreatments:
		return graph.RelHasTreatment, nil
	case KindTherapy:
		return graph.RelRecommendedTherapy, nil
	default:
		return "", fmt.Errorf("unknown recommendation kind %q", string(k))
	}
}

// Provenance carries the source facts of the triple that produced a value.
type Provenance struct {
	SourceType string    `json:"source_type"`
	SourceLink string    `json:"source_link,omitempty"`
	SourceDate time.Time `json:"source_date,omitempty"`
}

// SourcedItem is a value-like node name plus where the edge to it came from.
type SourcedItem struct {
	Name   string     `json:"name"`
	Source Provenance `json:"source"`
}

func sourcedItem(e graph.Edge) SourcedItem {
	return SourcedItem{Name: e.Node.Name, Source: provenance(e.Triple)}
}

func provenance(t graph.Triple) Provenance {
	return Provenance{SourceType: t.SourceType, SourceLink: t.SourceLink, SourceDate: t.SourceDate}
}

// DrugProfile is the drug-level slice of a treatment profile: the drug plus
// its side-effect and contraindication facts.
type DrugProfile struct {
	Name              string   `json:"name"`
	SideEffects       []string `json:"side_effects,omitempty"`
	Contraindications []string `json:"contraindications,omitempty"`
}

// TreatmentProfile is the enriched view of one Treatment or Therapy node.
// Profiles are partial by design; a field the source data never covers stays
// empty.
type TreatmentProfile struct {
	Node          graph.Node    `json:"node"`
	Name          string        `json:"name"`
	Drugs         []DrugProfile `json:"drugs,omitempty"`
	Dosage        string        `json:"dosage,omitempty"`
	Duration      string        `json:"duration,omitempty"`
	Effectiveness string        `json:"effectiveness,omitempty"`
	Population    string        `json:"population,omitempty"`
	EvidenceLevel string        `json:"evidence_level,omitempty"`
	Monitoring    []string      `json:"monitoring,omitempty"`
	Source        Provenance    `json:"source"`
}

// Recommend derives the treatment/therapy profiles reachable from the anchor
// via the relation the kind selects. Order follows the anchor's edge order;
// ranking by evidence is deliberately not this function's job. An existing
// anchor with no matching edges yields an empty slice, not an error.
func Recommend(ix *graph.Index, anchor graph.Node, kind RecommendationKind) ([]TreatmentProfile, error) {
	rel, err := kind.relation()
	if err != nil {
		return nil, err
	}
	if anchor.Name == "" {
		return nil, util.ErrInvalidQuery
	}
	if !ix.HasNode(anchor) {
		return nil, util.ErrAnchorNotFound
	}
	edges, err := ix.Neighbors(anchor, rel)
	if err != nil {
		return nil, err
	}
	profiles := make([]TreatmentProfile, 0, len(edges))
	for _, e := range edges {
		profiles = append(profiles, buildProfile(ix, e))
	}
	return profiles, nil
}

// Profile enriches a single Treatment/Therapy node without an anchor, for
// callers that already hold the node (comparison, drug lookup).
func Profile(ix *graph.Index, node graph.Node) (TreatmentProfile, error) {
	if node.Name == "" {
		return TreatmentProfile{}, util.ErrInvalidQuery
	}
	if !ix.HasNode(node) {
		return TreatmentProfile{}, util.ErrAnchorNotFound
	}
	return buildProfile(ix, graph.Edge{Node: node}), nil
}

func buildProfile(ix *graph.Index, e graph.Edge) TreatmentProfile {
	node := e.Node
	p := TreatmentProfile{
		Node:          node,
		Name:          node.Name,
		Dosage:        firstTarget(ix, node, graph.RelHasDosage),
		Duration:      firstTarget(ix, node, graph.RelHasDuration),
		Effectiveness: firstTarget(ix, node, graph.RelHasEffectiveness),
		Population:    firstTarget(ix, node, graph.RelForPopulation),
		EvidenceLevel: firstTarget(ix, node, graph.RelEvidenceLevel),
		Monitoring:    allTargets(ix, node, graph.RelMonitoringRequired),
		Source:        provenance(e.Triple),
	}
	drugEdges, _ := ix.Neighbors(node, graph.RelUsesDrug)
	for _, de := range drugEdges {
		p.Drugs = append(p.Drugs, DrugProfile{
			Name:              de.Node.Name,
			SideEffects:       allTargets(ix, de.Node, graph.RelHasSideEffect),
			Contraindications: allTargets(ix, de.Node, graph.RelContraindication),
		})
	}
	return p
}

func firstTarget(ix *graph.Index, n graph.Node, rel graph.Relation) string {
	edges, err := ix.Neighbors(n, rel)
	if err != nil || len(edges) == 0 {
		return ""
	}
	return edges[0].Node.Name
}

func allTargets(ix *graph.Index, n graph.Node, rel graph.Relation) []string {
	edges, err := ix.Neighbors(n, rel)
	if err != nil || len(edges) == 0 {
		return nil
	}
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.Node.Name)
	}
	return out
}
