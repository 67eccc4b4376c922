package clinical

import (
	"cognigraph/internal/graph"
	"cognigraph/internal/util"
)

// DrugSafety is the drug-centric safety view: which treatments use the drug
// (reverse USES_DRUG traversal) plus its dosage, side-effect and
// contraindication facts.
type DrugSafety struct {
	Drug              graph.Node `json:"drug"`
	UsedIn            []string   `json:"used_in,omitempty"`
	Dosage            string     `json:"dosage,omitempty"`
	SideEffects       []string   `json:"side_effects,omitempty"`
	Contraindications []string   `json:"contraindications,omitempty"`
}

func DrugLookup(ix *graph.Index, name string) (DrugSafety, error) {
	drug := graph.Node{Type: graph.NodeDrug, Name: name}
	if name == "" {
		return DrugSafety{}, util.ErrInvalidQuery
	}
	if !ix.HasNode(drug) {
		return DrugSafety{}, util.ErrAnchorNotFound
	}

	ds := DrugSafety{
		Drug:              drug,
		Dosage:            firstTarget(ix, drug, graph.RelHasDosage),
		SideEffects:       allTargets(ix, drug, graph.RelHasSideEffect),
		Contraindications: allTargets(ix, drug, graph.RelContraindication),
	}
	incoming, err := ix.ReverseNeighbors(drug, graph.RelUsesDrug)
	if err != nil {
		return DrugSafety{}, err
	}
	for _, e := range incoming {
		ds.UsedIn = append(ds.UsedIn, e.Node.Name)
	}
	return ds, nil
}
