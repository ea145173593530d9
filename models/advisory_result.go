package models

// AdvisoryStatus is the irrigation verdict. The value is the display label.
type AdvisoryStatus string

const (
	StatusUnknown         AdvisoryStatus = "Unknown"
	StatusNeedsIrrigation AdvisoryStatus = "Needs Irrigation"
	StatusOK              AdvisoryStatus = "OK"
)

// Visual treatments a display maps a status onto.
const (
	TreatmentAlert    = "alert"
	TreatmentPositive = "positive"
	TreatmentNeutral  = "neutral"
)

// AdvisoryResult is produced fresh on every evaluation and never stored.
type AdvisoryResult struct {
	Status AdvisoryStatus `json:"status"`
	Reason string         `json:"reason"`
}

// Treatment maps the status onto its visual treatment.
func (s AdvisoryStatus) Treatment() string {
	switch s {
	case StatusNeedsIrrigation:
		return TreatmentAlert
	case StatusOK:
		return TreatmentPositive
	default:
		return TreatmentNeutral
	}
}
