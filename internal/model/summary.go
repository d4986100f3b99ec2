package model

import "time"

// GrantSummary is the per-grant financial rollup.
type GrantSummary struct {
	GrantID         string
	GrantName       string
	Funder          string
	TotalAmount     float64
	StartDate       time.Time
	EndDate         time.Time
	Status          GrantStatus
	TotalSpent      float64
	RemainingBudget float64
	SpentPercent    float64 // rounded to 2 decimals; 0 when TotalAmount is 0
	DaysRemaining   int     // signed; negative once the grant window has passed
}

// PortfolioStats holds the top-level aggregate across all grants.
type PortfolioStats struct {
	TotalGrants      int
	ActiveGrants     int
	TotalFunding     float64
	TotalSpent       float64
	RemainingBudget  float64
	UtilizationPct   float64
	AlertCount       int
	MetricsOnTrack   int
	MetricsTotal     int
	AvgAchievement   float64
	ParticipantCount int
}

// CategorySpend is the budget-vs-actual view for one category of one grant.
type CategorySpend struct {
	GrantID      string
	GrantName    string
	Category     string
	Budgeted     float64
	Spent        float64
	Remaining    float64
	SpentPercent float64
}

// MonthlySpend is total expense volume for one grant in one calendar month.
type MonthlySpend struct {
	Month     time.Time // first day of the month
	GrantID   string
	GrantName string
	Total     float64
}

// DeliverableProgress is the compliance view of one deliverable, including
// how late it is (overdue now, or completed past its due date).
type DeliverableProgress struct {
	GrantID   string
	GrantName string
	Name      string
	DueDate   time.Time
	Status    DeliverableStatus
	DaysLate  int
}

// ReportTimelineEntry is one funder report on the submission schedule,
// joined with its grant's name.
type ReportTimelineEntry struct {
	GrantID        string
	GrantName      string
	Type           string
	DueDate        time.Time
	SubmissionDate *time.Time
	Status         ReportStatus
}

// DemographicCount is a participant count for one demographic bucket.
type DemographicCount struct {
	Demographic string
	AgeGroup    string
	Count       int
}
