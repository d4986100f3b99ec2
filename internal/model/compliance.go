package model

import "time"

// DeliverableStatus is the completion state of a deliverable.
type DeliverableStatus string

const (
	DeliverableNotStarted DeliverableStatus = "Not Started"
	DeliverableInProgress DeliverableStatus = "In Progress"
	DeliverableCompleted  DeliverableStatus = "Completed"
	DeliverableOverdue    DeliverableStatus = "Overdue"
	DeliverableLate       DeliverableStatus = "Late"
)

// Deliverable is a discrete obligation a grantee must complete by a due date.
type Deliverable struct {
	ID             string
	GrantID        string
	Name           string
	DueDate        time.Time
	Status         DeliverableStatus
	CompletionDate *time.Time
	Notes          string
}

// ReportStatus is the submission state of a grant report.
type ReportStatus string

const (
	ReportNotStarted ReportStatus = "Not Started"
	ReportInProgress ReportStatus = "In Progress"
	ReportSubmitted  ReportStatus = "Submitted"
	ReportOverdue    ReportStatus = "Overdue"
)

// Report is a scheduled funder report for a grant.
type Report struct {
	ID             string
	GrantID        string
	Type           string
	DueDate        time.Time
	SubmissionDate *time.Time
	Status         ReportStatus
	SubmittedBy    string
}

// AlertType tags the source predicate that produced a compliance alert.
type AlertType string

const (
	AlertOverdueReport      AlertType = "Overdue Report"
	AlertOverdueDeliverable AlertType = "Overdue Deliverable"
	AlertBudgetOverspent    AlertType = "Budget Overspent"
)

// Alert is one flagged compliance condition. The severity field that applies
// depends on Type: DaysOverdue for the two time-based alerts, PercentOver for
// budget overruns. The unused field is zero.
type Alert struct {
	Type        AlertType
	GrantID     string
	ItemName    string
	DaysOverdue int
	PercentOver float64
}

// Severity returns the numeric severity proxy used to order mixed alert
// lists. Days and percent share one scale here for sorting only; consumers
// must switch on Type to interpret the value.
func (a Alert) Severity() float64 {
	if a.Type == AlertBudgetOverspent {
		return a.PercentOver
	}
	return float64(a.DaysOverdue)
}
