package model

// Feature identifies which form produced a webhook submission.
type Feature string

const (
	FeatureSolarPlanning Feature = "solar_planning"
	FeatureEnergySelling Feature = "energy_selling"
)

// Advice is the fixed response contract of the advisory webhook.
type Advice struct {
	Analysis       string `json:"analysis"`
	Recommendation string `json:"recommendation"`
}

// Empty reports whether neither field carries text.
func (a Advice) Empty() bool {
	return a.Analysis == "" && a.Recommendation == ""
}
