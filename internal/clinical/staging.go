package clinical

import (
	"fmt"
	"regexp"
	"strconv"

	"cognigraph/internal/graph"
	"cognigraph/internal/util"
)

const (
	MinMMSE = 0
	MaxMMSE = 30
)

// StageResult is the resolved stage for a score plus any data-quality flags
// gathered on the way. Flags mean "best-effort answer, curation needed", not
// failure.
type StageResult struct {
	Stage graph.Node `json:"stage"`
	Flags []string   `json:"flags,omitempty"`
}

type stageRange struct {
	node   graph.Node
	lo, hi int
}

var (
	rangePat = regexp.MustCompile(`MMSE\s*(\d+)\s*[-–]\s*(\d+)`)
	ltPat    = regexp.MustCompile(`MMSE\s*(<=?)\s*(\d+)`)
	gtPat    = regexp.MustCompile(`MMSE\s*(>=?)\s*(\d+)`)
)

// parseStageBounds extracts the closed MMSE interval a stage node declares in
// its name, e.g. "Mild (MMSE 21-26)" or "Severe (MMSE <10)". Bound parsing is
// defensive: a name with no usable range simply does not participate.
func parseStageBounds(name string) (lo, hi int, ok bool) {
	if m := rangePat.FindStringSubmatch(name); m != nil {
		lo, _ = strconv.Atoi(m[1])
		hi, _ = strconv.Atoi(m[2])
		return lo, hi, lo <= hi
	}
	if m := ltPat.FindStringSubmatch(name); m != nil {
		n, _ := strconv.Atoi(m[2])
		if m[1] == "<" {
			n--
		}
		return MinMMSE, n, n >= MinMMSE
	}
	if m := gtPat.FindStringSubmatch(name); m != nil {
		n, _ := strconv.Atoi(m[2])
		if m[1] == ">" {
			n++
		}
		return n, MaxMMSE, n <= MaxMMSE
	}
	return 0, 0, false
}

// StageForScore maps an MMSE score to the disease stage whose declared range
// contains it, reading HAS_STAGE edges off the Disease nodes in edge order.
// Overlapping ranges resolve to the first match and flag the ambiguity.
func StageForScore(ix *graph.Index, score int) (StageResult, error) {
	if score < MinMMSE || score > MaxMMSE {
		return StageResult{}, util.ErrOutOfRange
	}

	var res StageResult
	ranges := make([]stageRange, 0, 4)
	seen := make(map[string]bool)
	for _, disease := range ix.NodesOfType(graph.NodeDisease) {
		edges, err := ix.Neighbors(disease, graph.RelHasStage)
		if err != nil {
			return StageResult{}, err
		}
		for _, e := range edges {
			if seen[e.Node.Key()] {
				continue
			}
			seen[e.Node.Key()] = true
			lo, hi, ok := parseStageBounds(e.Node.Name)
			if !ok {
				res.Flags = append(res.Flags, fmt.Sprintf("stage %q has no parseable MMSE range", e.Node.Name))
				continue
			}
			ranges = append(ranges, stageRange{node: e.Node, lo: lo, hi: hi})
		}
	}

	matched := false
	for _, r := range ranges {
		if score < r.lo || score > r.hi {
			continue
		}
		if !matched {
			res.Stage = r.node
			matched = true
			continue
		}
		res.Flags = append(res.Flags, fmt.Sprintf("stage ranges overlap at score %d: kept %q, also matched %q", score, res.Stage.Name, r.node.Name))
	}
	if !matched {
		return StageResult{}, util.ErrNoStageDefined
	}
	return res, nil
}

// StageSymptoms lists the HAS_SYMPTOM targets of a stage with provenance,
// in edge order.
func StageSymptoms(ix *graph.Index, stage graph.Node) ([]SourcedItem, error) {
	edges, err := ix.Neighbors(stage, graph.RelHasSymptom)
	if err != nil {
		return nil, err
	}
	items := make([]SourcedItem, 0, len(edges))
	for _, e := range edges {
		items = append(items, sourcedItem(e))
	}
	return items, nil
}
