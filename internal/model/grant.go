// Package model defines domain types for grantwatch grants and compliance data.
package model

import "time"

// GrantStatus is the lifecycle state of a grant.
type GrantStatus string

const (
	GrantActive    GrantStatus = "Active"
	GrantCompleted GrantStatus = "Completed"
)

// Grant represents a single funding award with its budget window.
type Grant struct {
	ID                 string
	Name               string
	Funder             string
	FunderType         string
	TotalAmount        float64
	StartDate          time.Time
	EndDate            time.Time
	Status             GrantStatus
	Officer            string
	Purpose            string
	ReportingFrequency string
}

// BudgetCategory is a sub-allocation of a grant's total budget.
// SpentAmount is the rolled-up total of the category's expense ledger.
type BudgetCategory struct {
	ID             string
	GrantID        string
	Name           string
	BudgetedAmount float64
	SpentAmount    float64
}

// Overspent reports whether spending has exceeded the category budget.
func (c BudgetCategory) Overspent() bool {
	return c.SpentAmount > c.BudgetedAmount
}

// Expense is one entry in a grant's append-only spending ledger.
type Expense struct {
	ID          string
	GrantID     string
	CategoryID  string
	Date        time.Time
	Vendor      string
	Description string
	Amount      float64
	ApprovedBy  string
}
