package clinical

import (
	"errors"
	"testing"

	"cognigraph/internal/graph"
	"cognigraph/internal/util"
)

func TestStageForScoreCoverage(t *testing.T) {
	ix := fixtureIndex(t)
	cases := map[int]string{
		25: "Mild (MMSE 21-26)",
		21: "Mild (MMSE 21-26)",
		15: "Moderate (MMSE 10-20)",
		10: "Moderate (MMSE 10-20)",
		5:  "Severe (MMSE <10)",
		0:  "Severe (MMSE <10)",
	}
	for score, want := range cases {
		res, err := StageForScore(ix, score)
		if err != nil {
			t.Fatalf("score %d: %v", score, err)
		}
		if res.Stage.Name != want {
			t.Fatalf("score %d: got %q want %q", score, res.Stage.Name, want)
		}
	}
}

func TestStageForScoreOutOfRange(t *testing.T) {
	ix := fixtureIndex(t)
	for _, score := range []int{-1, 31, 100} {
		if _, err := StageForScore(ix, score); !errors.Is(err, util.ErrOutOfRange) {
			t.Fatalf("score %d: expected ErrOutOfRange, got %v", score, err)
		}
	}
}

func TestStageForScoreGapInCoverage(t *testing.T) {
	// Scores 27-30 fall between "Mild (MMSE 21-26)" and nothing.
	ix := fixtureIndex(t)
	if _, err := StageForScore(ix, 28); !errors.Is(err, util.ErrNoStageDefined) {
		t.Fatalf("expected ErrNoStageDefined for uncovered score, got %v", err)
	}
}

func TestStageForScoreOverlapFlagsAmbiguity(t *testing.T) {
	ix, _ := graph.Ingest([]graph.Row{
		{Line: 1, XName: "Alzheimer's Disease", XType: "Disease", Relation: "HAS_STAGE", YName: "Mild (MMSE 20-26)", YType: "Stage"},
		{Line: 2, XName: "Alzheimer's Disease", XType: "Disease", Relation: "HAS_STAGE", YName: "Moderate (MMSE 10-20)", YType: "Stage"},
	})
	res, err := StageForScore(ix, 20)
	if err != nil {
		t.Fatalf("overlap must not error: %v", err)
	}
	if res.Stage.Name != "Mild (MMSE 20-26)" {
		t.Fatalf("expected first matching stage in edge order, got %q", res.Stage.Name)
	}
	if len(res.Flags) != 1 {
		t.Fatalf("expected one ambiguity flag, got %+v", res.Flags)
	}
}

func TestStageForScoreUnparseableBoundsExcludedNotFatal(t *testing.T) {
	ix, _ := graph.Ingest([]graph.Row{
		{Line: 1, XName: "Alzheimer's Disease", XType: "Disease", Relation: "HAS_STAGE", YName: "Prodromal", YType: "Stage"},
		{Line: 2, XName: "Alzheimer's Disease", XType: "Disease", Relation: "HAS_STAGE", YName: "Mild (MMSE 21-26)", YType: "Stage"},
	})
	res, err := StageForScore(ix, 25)
	if err != nil {
		t.Fatalf("stage for score: %v", err)
	}
	if res.Stage.Name != "Mild (MMSE 21-26)" {
		t.Fatalf("got %q", res.Stage.Name)
	}
	if len(res.Flags) != 1 {
		t.Fatalf("expected a data-quality flag for unparseable stage, got %+v", res.Flags)
	}
}

func TestParseStageBounds(t *testing.T) {
	cases := []struct {
		name   string
		lo, hi int
		ok     bool
	}{
		{"Mild (MMSE 21-26)", 21, 26, true},
		{"Moderate (MMSE 10-20)", 10, 20, true},
		{"Severe (MMSE <10)", 0, 9, true},
		{"Questionable (MMSE >26)", 27, 30, true},
		{"Normal (MMSE >=27)", 27, 30, true},
		{"Advanced (MMSE <=9)", 0, 9, true},
		{"Prodromal", 0, 0, false},
	}
	for _, c := range cases {
		lo, hi, ok := parseStageBounds(c.name)
		if ok != c.ok || (ok && (lo != c.lo || hi != c.hi)) {
			t.Fatalf("%q: got (%d,%d,%v) want (%d,%d,%v)", c.name, lo, hi, ok, c.lo, c.hi, c.ok)
		}
	}
}

func TestStageSymptoms(t *testing.T) {
	ix := fixtureIndex(t)
	items, err := StageSymptoms(ix, graph.Node{Type: graph.NodeStage, Name: "Mild (MMSE 21-26)"})
	if err != nil {
		t.Fatalf("stage symptoms: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Short-term memory lapses" {
		t.Fatalf("unexpected symptoms: %+v", items)
	}
	if items[0].Source.SourceType != "NICE Guideline" {
		t.Fatalf("expected provenance on symptom, got %+v", items[0].Source)
	}
}
