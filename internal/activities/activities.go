package activities

import (
	"context"
	"path/filepath"

	"cognigraph/internal/config"
	"cognigraph/internal/dataset"
	"cognigraph/internal/graph"
	"cognigraph/internal/storage"
	"cognigraph/internal/util"
)

type Activities struct {
	cfg     config.Config
	triples *storage.TripleRepo
	neo     *storage.Neo4jStore
}

func New(cfg config.Config, db *storage.DB, neo *storage.Neo4jStore) *Activities {
	var repo *storage.TripleRepo
	if db != nil {
		repo = storage.NewTripleRepo(db)
	}
	return &Activities{cfg: cfg, triples: repo, neo: neo}
}

func (a *Activities) LoadDatasetRowsActivity(ctx context.Context, in LoadDatasetRowsInput) (LoadDatasetRowsOutput, error) {
	_ = ctx
	rows, err := dataset.RowsFromFile(in.Path)
	if err != nil {
		return LoadDatasetRowsOutput{}, err
	}
	return LoadDatasetRowsOutput{Rows: rows}, nil
}

func (a *Activities) IngestDatasetActivity(ctx context.Context, in IngestDatasetInput) (IngestDatasetOutput, error) {
	_ = ctx
	ix, report := graph.Ingest(in.Rows)
	return IngestDatasetOutput{Triples: ix.Triples(), Report: report}, nil
}

func (a *Activities) ReplaceTriplesActivity(ctx context.Context, in ReplaceTriplesInput) error {
	if a.triples == nil {
		return nil
	}
	return a.triples.ReplaceTriples(ctx, in.Version, in.Triples)
}

func (a *Activities) MirrorToNeo4jActivity(ctx context.Context, in MirrorToNeo4jInput) (MirrorToNeo4jOutput, error) {
	if a.neo == nil {
		return MirrorToNeo4jOutput{Mirrored: false}, nil
	}
	if err := a.neo.Replace(ctx, in.Version, in.Triples); err != nil {
		return MirrorToNeo4jOutput{}, err
	}
	return MirrorToNeo4jOutput{Mirrored: true}, nil
}

func (a *Activities) WriteReportArtifactActivity(ctx context.Context, in WriteReportArtifactInput) error {
	_ = ctx
	outPath := filepath.Join(a.cfg.DataOutRoot, in.Version, "validation_report.json")
	return util.WriteJSONAtomic(outPath, in.Report)
}
