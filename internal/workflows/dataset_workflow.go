package workflows

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"cognigraph/internal/activities"
)

type DatasetPersistInput struct {
	Version string `json:"version"`
	Path    string `json:"path"`
}

type DatasetPersistProgress struct {
	Version  string `json:"version"`
	Step     string `json:"step"`
	Accepted int    `json:"accepted"`
	Rejected int    `json:"rejected"`
	Flagged  int    `json:"flagged"`
	Mirrored bool   `json:"mirrored"`
}

const QueryGetDatasetPersistProgress = "GetDatasetPersistProgress"

// DatasetPersistWorkflow runs the durable half of a reload: read the saved
// dataset file, validate it, replace the Postgres copy wholesale, mirror to
// Neo4j when configured, and write the validation-report artifact. The
// in-memory publish already happened in the API process; this pipeline only
// makes the epoch durable.
func DatasetPersistWorkflow(ctx workflow.Context, input DatasetPersistInput) (string, error) {
	progress := DatasetPersistProgress{Version: input.Version, Step: "loading"}
	if err := workflow.SetQueryHandler(ctx, QueryGetDatasetPersistProgress, func() (DatasetPersistProgress, error) { return progress, nil }); err != nil {
		return "", err
	}
	ao := workflow.ActivityOptions{
		StartToCloseTimeout: 5 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2,
			MaximumInterval:    20 * time.Second,
			MaximumAttempts:    3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, ao)

	var loaded activities.LoadDatasetRowsOutput
	if err := workflow.ExecuteActivity(ctx, "LoadDatasetRowsActivity", activities.LoadDatasetRowsInput{Path: input.Path}).Get(ctx, &loaded); err != nil {
		return "failed", err
	}

	progress.Step = "ingesting"
	var ingested activities.IngestDatasetOutput
	if err := workflow.ExecuteActivity(ctx, "IngestDatasetActivity", activities.IngestDatasetInput{Rows: loaded.Rows}).Get(ctx, &ingested); err != nil {
		return "failed", err
	}
	progress.Accepted = ingested.Report.Accepted
	progress.Rejected = len(ingested.Report.Rejected)
	progress.Flagged = len(ingested.Report.Flagged)

	progress.Step = "persisting"
	if err := workflow.ExecuteActivity(ctx, "ReplaceTriplesActivity", activities.ReplaceTriplesInput{Version: input.Version, Triples: ingested.Triples}).Get(ctx, nil); err != nil {
		return "failed", err
	}

	progress.Step = "mirroring"
	var mirrored activities.MirrorToNeo4jOutput
	if err := workflow.ExecuteActivity(ctx, "MirrorToNeo4jActivity", activities.MirrorToNeo4jInput{Version: input.Version, Triples: ingested.Triples}).Get(ctx, &mirrored); err != nil {
		return "failed", err
	}
	progress.Mirrored = mirrored.Mirrored

	progress.Step = "reporting"
	if err := workflow.ExecuteActivity(ctx, "WriteReportArtifactActivity", activities.WriteReportArtifactInput{Version: input.Version, Report: ingested.Report}).Get(ctx, nil); err != nil {
		return "failed", err
	}

	progress.Step = "done"
	return "persisted", nil
}
