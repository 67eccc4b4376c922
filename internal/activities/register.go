package activities

import "go.temporal.io/sdk/worker"

func Register(w worker.Worker, a *Activities) {
	w.RegisterActivity(a.LoadDatasetRowsActivity)
	w.RegisterActivity(a.IngestDatasetActivity)
	w.RegisterActivity(a.ReplaceTriplesActivity)
	w.RegisterActivity(a.MirrorToNeo4jActivity)
	w.RegisterActivity(a.WriteReportArtifactActivity)
}
