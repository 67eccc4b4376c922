package clinical

import (
	"testing"

	"cognigraph/internal/graph"
)

func fixtureRows() []graph.Row {
	r := func(line int, xName, xType, rel, yName, yType string) graph.Row {
		return graph.Row{Line: line, XName: xName, XType: xType, Relation: rel, YName: yName, YType: yType, SourceType: "NICE Guideline", SourceDate: "2018-06-20"}
	}
	return []graph.Row{
		r(1, "Alzheimer's Disease", "Disease", "HAS_STAGE", "Mild (MMSE 21-26)", "Stage"),
		r(2, "Alzheimer's Disease", "Disease", "HAS_STAGE", "Moderate (MMSE 10-20)", "Stage"),
		r(3, "Alzheimer's Disease", "Disease", "HAS_STAGE", "Severe (MMSE <10)", "Stage"),
		r(4, "Mild (MMSE 21-26)", "Stage", "HAS_SYMPTOM", "Short-term memory lapses", "Symptom"),
		r(5, "Mild (MMSE 21-26)", "Stage", "FIRST_LINE_TREATMENT", "Donepezil Treatment (NICE)", "Treatment"),
		r(6, "Mild (MMSE 21-26)", "Stage", "FIRST_LINE_TREATMENT", "Rivastigmine Treatment (NICE)", "Treatment"),
		r(7, "Mild (MMSE 21-26)", "Stage", "FIRST_LINE_TREATMENT", "Galantamine Treatment (NICE)", "Treatment"),
		r(8, "Alzheimer's Disease", "Disease", "HAS_TREATMENT", "Donepezil Treatment (NICE)", "Treatment"),
		r(9, "Alzheimer's Disease", "Disease", "HAS_TREATMENT", "Memantine Treatment (NICE)", "Treatment"),
		r(10, "Donepezil Treatment (NICE)", "Treatment", "USES_DRUG", "Donepezil", "Drug"),
		r(11, "Rivastigmine Treatment (NICE)", "Treatment", "USES_DRUG", "Rivastigmine", "Drug"),
		r(12, "Galantamine Treatment (NICE)", "Treatment", "USES_DRUG", "Galantamine", "Drug"),
		r(13, "Donepezil Treatment (NICE)", "Treatment", "HAS_DOSAGE", "5mg daily titrated to 10mg", "Dosage"),
		r(14, "Donepezil Treatment (NICE)", "Treatment", "HAS_EFFECTIVENESS", "Modest cognitive improvement", "Effectiveness"),
		r(15, "Donepezil Treatment (NICE)", "Treatment", "EVIDENCE_LEVEL", "Level A (NICE)", "Evidence"),
		r(16, "Rivastigmine Treatment (NICE)", "Treatment", "EVIDENCE_LEVEL", "Level A (NICE)", "Evidence"),
		r(17, "Galantamine Treatment (NICE)", "Treatment", "EVIDENCE_LEVEL", "Level A (NICE)", "Evidence"),
		r(18, "Donepezil Treatment (NICE)", "Treatment", "MONITORING_REQUIRED", "MMSE reassessment every 6 months", "Monitoring"),
		r(19, "Donepezil", "Drug", "HAS_SIDE_EFFECT", "Nausea", "SideEffect"),
		r(20, "Donepezil", "Drug", "HAS_SIDE_EFFECT", "Insomnia", "SideEffect"),
		r(21, "Donepezil", "Drug", "CONTRAINDICATION", "Severe cardiac arrhythmia", "Condition"),
		r(22, "Donepezil", "Drug", "CONTRAINDICATION", "Active peptic ulcer", "Condition"),
		r(23, "Mild (MMSE 21-26)", "Stage", "RECOMMENDED_THERAPY", "Cognitive Stimulation Therapy", "Therapy"),
		r(24, "Cognitive Stimulation Therapy", "Therapy", "HAS_EFFECTIVENESS", "Improved cognition and quality of life", "Effectiveness"),
		r(25, "Donepezil Treatment (NICE)", "Treatment", "STOP_TREATMENT_CONDITION", "Severe bradycardia", "Condition"),
		r(26, "Alzheimer's Disease", "Disease", "FOLLOW_UP_SCHEDULE", "Structured review every 6 months", "Monitoring"),
	}
}

func fixtureIndex(t *testing.T) *graph.Index {
	t.Helper()
	return mustIngest(t, fixtureRows())
}

func mustIngest(t *testing.T, rows []graph.Row) *graph.Index {
	t.Helper()
	ix, report := graph.Ingest(rows)
	if !report.Clean() {
		t.Fatalf("fixture dataset should be clean: %+v", report)
	}
	return ix
}
