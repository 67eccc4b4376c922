package clinical

import "cognigraph/internal/graph"

// MonitoringPlan aggregates the graph-wide follow-up knowledge: what to
// monitor during treatment, when to stop, and on what schedule to re-assess.
type MonitoringPlan struct {
	Required       []SourcedItem `json:"required"`
	StopConditions []SourcedItem `json:"stop_conditions"`
	FollowUp       []SourcedItem `json:"follow_up"`
}

// MonitoringOverview walks every triple once and buckets the monitoring
// relations, deduplicating targets by name in first-appearance order.
func MonitoringOverview(ix *graph.Index) MonitoringPlan {
	plan := MonitoringPlan{
		Required:       []SourcedItem{},
		StopConditions: []SourcedItem{},
		FollowUp:       []SourcedItem{},
	}
	seen := make(map[string]bool)
	for _, t := range ix.Triples() {
		var bucket *[]SourcedItem
		switch t.Relation {
		case graph.RelMonitoringRequired:
			bucket = &plan.Required
		case graph.RelStopTreatmentCondition:
			bucket = &plan.StopConditions
		case graph.RelFollowUpSchedule:
			bucket = &plan.FollowUp
		default:
			continue
		}
		key := string(t.Relation) + "|" + t.ObjectName
		if seen[key] {
			continue
		}
		seen[key] = true
		*bucket = append(*bucket, SourcedItem{Name: t.ObjectName, Source: provenance(t)})
	}
	return plan
}
