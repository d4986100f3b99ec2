package model

// OutcomeMetric is a quantitative program-impact indicator with a target.
type OutcomeMetric struct {
	ID                string
	GrantID           string
	Name              string
	TargetValue       float64
	CurrentValue      float64
	MeasurementPeriod string
	Unit              string
}

// OutcomeStatus classifies how an outcome metric tracks against its target.
type OutcomeStatus string

const (
	OutcomeOnTrack        OutcomeStatus = "On Track"
	OutcomeNeedsAttention OutcomeStatus = "Needs Attention"
	OutcomeAtRisk         OutcomeStatus = "At Risk"
)

// OutcomePerformance is the scored view of one outcome metric.
type OutcomePerformance struct {
	GrantID      string
	GrantName    string
	MetricName   string
	TargetValue  float64
	CurrentValue float64
	Achievement  float64 // percentage, rounded to 2 decimals
	Unit         string
	Status       OutcomeStatus
}
