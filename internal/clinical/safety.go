package clinical

import "strings"

type SafetyStatus string

const (
	SafetyClear           SafetyStatus = "clear"
	SafetyContraindicated SafetyStatus = "contraindicated"
	SafetyUnknown         SafetyStatus = "unknown"
)

// SafetyReason is one contraindication hit, attributed to the drug that
// carries it. A profile with several drugs sharing a contraindication reports
// one reason per drug, so callers can see which component triggered it.
type SafetyReason struct {
	Drug      string `json:"drug"`
	Condition string `json:"condition"`
}

// SafetyAssessment annotates one profile. Nothing is ever removed here;
// exclusion policy belongs to the caller.
type SafetyAssessment struct {
	Profile TreatmentProfile `json:"profile"`
	Status  SafetyStatus     `json:"status"`
	Reasons []SafetyReason   `json:"reasons,omitempty"`
}

// AssessSafety checks every drug of every profile against the patient's
// conditions (case-insensitive exact match) and reports every match, not just
// the first. A profile whose drugs carry no contraindication data at all is
// Unknown when conditions were given, because absence of data is not proof of
// safety.
func AssessSafety(profiles []TreatmentProfile, conditions []string) []SafetyAssessment {
	out := make([]SafetyAssessment, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, assessOne(p, conditions))
	}
	return out
}

func assessOne(p TreatmentProfile, conditions []string) SafetyAssessment {
	a := SafetyAssessment{Profile: p, Status: SafetyClear}
	hasData := false
	seen := make(map[string]bool)
	for _, d := range p.Drugs {
		if len(d.Contraindications) > 0 {
			hasData = true
		}
		for _, contra := range d.Contraindications {
			for _, cond := range conditions {
				if !strings.EqualFold(strings.TrimSpace(contra), strings.TrimSpace(cond)) {
					continue
				}
				key := d.Name + "|" + strings.ToLower(contra)
				if !seen[key] {
					seen[key] = true
					a.Reasons = append(a.Reasons, SafetyReason{Drug: d.Name, Condition: contra})
				}
			}
		}
	}
	switch {
	case len(a.Reasons) > 0:
		a.Status = SafetyContraindicated
	case !hasData && len(conditions) > 0:
		a.Status = SafetyUnknown
	}
	return a
}
