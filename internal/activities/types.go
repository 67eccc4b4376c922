package activities

import "cognigraph/internal/graph"

type LoadDatasetRowsInput struct {
	Path string `json:"path"`
}

type LoadDatasetRowsOutput struct {
	Rows []graph.Row `json:"rows"`
}

type IngestDatasetInput struct {
	Rows []graph.Row `json:"rows"`
}

type IngestDatasetOutput struct {
	Triples []graph.Triple `json:"triples"`
	Report  *graph.Report  `json:"report"`
}

type ReplaceTriplesInput struct {
	Version string         `json:"version"`
	Triples []graph.Triple `json:"triples"`
}

type MirrorToNeo4jInput struct {
	Version string         `json:"version"`
	Triples []graph.Triple `json:"triples"`
}

type MirrorToNeo4jOutput struct {
	Mirrored bool `json:"mirrored"`
}

type WriteReportArtifactInput struct {
	Version string        `json:"version"`
	Report  *graph.Report `json:"report"`
}
