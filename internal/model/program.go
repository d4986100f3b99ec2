package model

import "time"

// ParticipantStatus is the enrollment state of a program participant.
type ParticipantStatus string

const (
	ParticipantActive    ParticipantStatus = "Active"
	ParticipantCompleted ParticipantStatus = "Completed"
	ParticipantDropped   ParticipantStatus = "Dropped"
)

// Participant is one enrolled program participant, kept for aggregate
// demographic reporting only.
type Participant struct {
	ID             string
	GrantID        string
	EnrollmentDate time.Time
	AgeGroup       string
	Demographic    string
	Status         ParticipantStatus
	CompletionDate *time.Time
}

// StaffAllocation records a staff member's time charged to a grant.
type StaffAllocation struct {
	ID               string
	GrantID          string
	StaffName        string
	Role             string
	FTEPercent       float64
	SalaryAllocation float64
}
