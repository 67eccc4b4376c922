package clinical

import (
	"testing"

	"cognigraph/internal/graph"
)

func mildProfiles(t *testing.T) []TreatmentProfile {
	t.Helper()
	ix := fixtureIndex(t)
	profiles, err := Recommend(ix, graph.Node{Type: graph.NodeStage, Name: "Mild (MMSE 21-26)"}, KindFirstLine)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	return profiles
}

func TestAssessSafetyContraindicated(t *testing.T) {
	profiles := mildProfiles(t)
	out := AssessSafety(profiles, []string{"severe cardiac arrhythmia"})
	if len(out) != len(profiles) {
		t.Fatalf("assessment must cover every profile, got %d of %d", len(out), len(profiles))
	}
	if out[0].Status != SafetyContraindicated {
		t.Fatalf("Donepezil should be contraindicated, got %q", out[0].Status)
	}
	if len(out[0].Reasons) != 1 {
		t.Fatalf("expected one reason, got %+v", out[0].Reasons)
	}
	if r := out[0].Reasons[0]; r.Drug != "Donepezil" || r.Condition != "Severe cardiac arrhythmia" {
		t.Fatalf("reason should name the drug and carry the graph's casing, got %+v", r)
	}
}

func TestAssessSafetyReportsAllMatches(t *testing.T) {
	profiles := mildProfiles(t)
	out := AssessSafety(profiles, []string{"Severe cardiac arrhythmia", "Active peptic ulcer"})
	if len(out[0].Reasons) != 2 {
		t.Fatalf("expected both contraindications reported, got %+v", out[0].Reasons)
	}
}

func TestAssessSafetySharedContraindicationReportedPerDrug(t *testing.T) {
	p := TreatmentProfile{
		Name: "Combination Treatment",
		Drugs: []DrugProfile{
			{Name: "Donepezil", Contraindications: []string{"Severe bradycardia"}},
			{Name: "Rivastigmine", Contraindications: []string{"Severe bradycardia"}},
		},
	}
	out := AssessSafety([]TreatmentProfile{p}, []string{"severe bradycardia"})
	if len(out[0].Reasons) != 2 {
		t.Fatalf("same condition via two drugs must yield one reason per drug, got %+v", out[0].Reasons)
	}
	if out[0].Reasons[0].Drug != "Donepezil" || out[0].Reasons[1].Drug != "Rivastigmine" {
		t.Fatalf("reasons should follow drug order, got %+v", out[0].Reasons)
	}
}

func TestAssessSafetyUnknownWhenNoContraindicationData(t *testing.T) {
	// Rivastigmine's drug carries no contraindication rows in the fixture.
	profiles := mildProfiles(t)
	out := AssessSafety(profiles, []string{"Asthma"})
	if out[1].Status != SafetyUnknown {
		t.Fatalf("expected unknown for drug without contraindication data, got %q", out[1].Status)
	}
	if out[0].Status != SafetyClear {
		t.Fatalf("non-matching condition against known data should be clear, got %q", out[0].Status)
	}
}

func TestAssessSafetyNoConditionsIsClear(t *testing.T) {
	for _, a := range AssessSafety(mildProfiles(t), nil) {
		if a.Status != SafetyClear {
			t.Fatalf("no conditions given, expected clear, got %q for %q", a.Status, a.Profile.Name)
		}
	}
}

func TestAssessSafetyNeverDropsProfiles(t *testing.T) {
	profiles := mildProfiles(t)
	out := AssessSafety(profiles, []string{"Severe cardiac arrhythmia"})
	for i := range profiles {
		if out[i].Profile.Name != profiles[i].Name {
			t.Fatalf("profile order must be preserved: %q vs %q", out[i].Profile.Name, profiles[i].Name)
		}
	}
}
