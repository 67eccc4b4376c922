package clinical

import (
	"errors"
	"testing"

	"cognigraph/internal/util"
)

func TestDrugLookupReverseTraversal(t *testing.T) {
	ix := fixtureIndex(t)
	ds, err := DrugLookup(ix, "Donepezil")
	if err != nil {
		t.Fatalf("drug lookup: %v", err)
	}
	if len(ds.UsedIn) != 1 || ds.UsedIn[0] != "Donepezil Treatment (NICE)" {
		t.Fatalf("unexpected used-in list: %+v", ds.UsedIn)
	}
	if len(ds.SideEffects) != 2 || ds.SideEffects[0] != "Nausea" {
		t.Fatalf("unexpected side effects: %+v", ds.SideEffects)
	}
	if len(ds.Contraindications) != 2 {
		t.Fatalf("unexpected contraindications: %+v", ds.Contraindications)
	}
}

func TestDrugLookupErrors(t *testing.T) {
	ix := fixtureIndex(t)
	if _, err := DrugLookup(ix, "Aducanumab"); !errors.Is(err, util.ErrAnchorNotFound) {
		t.Fatalf("expected ErrAnchorNotFound, got %v", err)
	}
	if _, err := DrugLookup(ix, ""); !errors.Is(err, util.ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}
