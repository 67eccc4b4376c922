package graph

import "time"

type NodeType string

const (
	NodeDisease       NodeType = "Disease"
	NodeStage         NodeType = "Stage"
	NodeSymptom       NodeType = "Symptom"
	NodeTreatment     NodeType = "Treatment"
	NodeDrug          NodeType = "Drug"
	NodeDosage        NodeType = "Dosage"
	NodeDuration      NodeType = "Duration"
	NodeEvidence      NodeType = "Evidence"
	NodeEffectiveness NodeType = "Effectiveness"
	NodePopulation    NodeType = "Population"
	NodeSideEffect    NodeType = "SideEffect"
	NodeTherapy       NodeType = "Therapy"
	NodeCondition     NodeType = "Condition"
	NodeMonitoring    NodeType = "Monitoring"
)

// Relation is a directed edge label. The constants below are the recognized
// vocabulary, but the type deliberately admits any raw string so that new
// relation labels arriving in source data survive ingestion (flagged, not
// dropped).
type Relation string

const (
	RelHasStage               Relation = "HAS_STAGE"
	RelHasSymptom             Relation = "HAS_SYMPTOM"
	RelFirstLineTreatment     Relation = "FIRST_LINE_TREATMENT"
	RelHasTreatment           Relation = "HAS_TREATMENT"
	RelEvidenceLevel          Relation = "EVIDENCE_LEVEL"
	RelUsesDrug               Relation = "USES_DRUG"
	RelHasDosage              Relation = "HAS_DOSAGE"
	RelHasDuration            Relation = "HAS_DURATION"
	RelHasEffectiveness       Relation = "HAS_EFFECTIVENESS"
	RelForPopulation          Relation = "FOR_POPULATION"
	RelHasSideEffect          Relation = "HAS_SIDE_EFFECT"
	RelRecommendedTherapy     Relation = "RECOMMENDED_THERAPY"
	RelContraindication       Relation = "CONTRAINDICATION"
	RelMonitoringRequired     Relation = "MONITORING_REQUIRED"
	RelStopTreatmentCondition Relation = "STOP_TREATMENT_CONDITION"
	RelFollowUpSchedule       Relation = "FOLLOW_UP_SCHEDULE"
)

func (r Relation) Recognized() bool {
	switch r {
	case RelHasStage, RelHasSymptom, RelFirstLineTreatment, RelHasTreatment,
		RelEvidenceLevel, RelUsesDrug, RelHasDosage, RelHasDuration,
		RelHasEffectiveness, RelForPopulation, RelHasSideEffect,
		RelRecommendedTherapy, RelContraindication, RelMonitoringRequired,
		RelStopTreatmentCondition, RelFollowUpSchedule:
		return true
	default:
		return false
	}
}

// Node identity is the (type, name) pair; there is no surrogate id.
type Node struct {
	Type NodeType `json:"type"`
	Name string   `json:"name"`
}

func (n Node) Key() string {
	return string(n.Type) + "|" + n.Name
}

// Triple is one directed, typed edge with provenance. Immutable once it has
// passed validation.
type Triple struct {
	SubjectType NodeType  `json:"subject_type"`
	SubjectName string    `json:"subject_name"`
	Relation    Relation  `json:"relation"`
	ObjectType  NodeType  `json:"object_type"`
	ObjectName  string    `json:"object_name"`
	SourceType  string    `json:"source_type"`
	SourceLink  string    `json:"source_link"`
	SourceDate  time.Time `json:"source_date"` // zero value means unknown date
}

func (t Triple) Subject() Node { return Node{Type: t.SubjectType, Name: t.SubjectName} }
func (t Triple) Object() Node  { return Node{Type: t.ObjectType, Name: t.ObjectName} }

// IdentityKey is the 5-tuple dedup key; provenance never participates.
func (t Triple) IdentityKey() string {
	return string(t.SubjectType) + "|" + t.SubjectName + "|" + string(t.Relation) + "|" + string(t.ObjectType) + "|" + t.ObjectName
}

const DefaultSourceType = "Unknown"
