package clinical

import (
	"errors"
	"testing"

	"cognigraph/internal/graph"
	"cognigraph/internal/util"
)

func TestRecommendFirstLineFromStage(t *testing.T) {
	ix := fixtureIndex(t)
	mild := graph.Node{Type: graph.NodeStage, Name: "Mild (MMSE 21-26)"}

	profiles, err := Recommend(ix, mild, KindFirstLine)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if len(profiles) != 3 {
		t.Fatalf("expected 3 first-line treatments, got %d", len(profiles))
	}
	want := []string{"Donepezil Treatment (NICE)", "Rivastigmine Treatment (NICE)", "Galantamine Treatment (NICE)"}
	for i, name := range want {
		if profiles[i].Name != name {
			t.Fatalf("profile %d: got %q want %q", i, profiles[i].Name, name)
		}
		if profiles[i].EvidenceLevel != "Level A (NICE)" {
			t.Fatalf("profile %q missing evidence enrichment: %+v", name, profiles[i])
		}
	}

	donepezil := profiles[0]
	if donepezil.Dosage != "5mg daily titrated to 10mg" || donepezil.Effectiveness != "Modest cognitive improvement" {
		t.Fatalf("incomplete enrichment: %+v", donepezil)
	}
	if len(donepezil.Drugs) != 1 || donepezil.Drugs[0].Name != "Donepezil" {
		t.Fatalf("expected drug expansion, got %+v", donepezil.Drugs)
	}
	if len(donepezil.Drugs[0].Contraindications) != 2 {
		t.Fatalf("expected 2 contraindications, got %+v", donepezil.Drugs[0])
	}
	if donepezil.Source.SourceType != "NICE Guideline" {
		t.Fatalf("expected provenance from the recommending edge, got %+v", donepezil.Source)
	}
}

func TestRecommendAllTreatmentsFromDisease(t *testing.T) {
	ix := fixtureIndex(t)
	profiles, err := Recommend(ix, graph.Node{Type: graph.NodeDisease, Name: "Alzheimer's Disease"}, KindAllTreatments)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if len(profiles) != 2 || profiles[1].Name != "Memantine Treatment (NICE)" {
		t.Fatalf("unexpected HAS_TREATMENT profiles: %+v", profiles)
	}
}

func TestRecommendTherapyEnrichesTherapyNodes(t *testing.T) {
	ix := fixtureIndex(t)
	profiles, err := Recommend(ix, graph.Node{Type: graph.NodeStage, Name: "Mild (MMSE 21-26)"}, KindTherapy)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if len(profiles) != 1 || profiles[0].Name != "Cognitive Stimulation Therapy" {
		t.Fatalf("unexpected therapies: %+v", profiles)
	}
	if profiles[0].Effectiveness != "Improved cognition and quality of life" {
		t.Fatalf("therapy enrichment missing: %+v", profiles[0])
	}
	if len(profiles[0].Drugs) != 0 {
		t.Fatalf("therapy should carry no drugs: %+v", profiles[0].Drugs)
	}
}

func TestRecommendAnchorErrors(t *testing.T) {
	ix := fixtureIndex(t)
	if _, err := Recommend(ix, graph.Node{Type: graph.NodeStage, Name: "Terminal"}, KindFirstLine); !errors.Is(err, util.ErrAnchorNotFound) {
		t.Fatalf("expected ErrAnchorNotFound, got %v", err)
	}
	if _, err := Recommend(ix, graph.Node{Type: graph.NodeStage}, KindFirstLine); !errors.Is(err, util.ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
	if _, err := Recommend(ix, graph.Node{Type: graph.NodeStage, Name: "Mild (MMSE 21-26)"}, RecommendationKind("ranked")); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestRecommendExistingAnchorWithoutEdgesIsEmpty(t *testing.T) {
	ix := fixtureIndex(t)
	profiles, err := Recommend(ix, graph.Node{Type: graph.NodeStage, Name: "Severe (MMSE <10)"}, KindFirstLine)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if len(profiles) != 0 {
		t.Fatalf("expected empty result for anchor with no edges, got %+v", profiles)
	}
}
