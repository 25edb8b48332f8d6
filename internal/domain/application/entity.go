package application

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusApplied   Status = "applied"
	StatusViewed    Status = "viewed"
	StatusInterview Status = "interview"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
)

// Valid reports whether s is one of the recognised statuses. Transitions
// between them are not ordered.
func (s Status) Valid() bool {
	switch s {
	case StatusApplied, StatusViewed, StatusInterview, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}

type Application struct {
	ID          uuid.UUID
	JobID       uuid.UUID
	CandidateID uuid.UUID
	Status      Status
	CoverLetter string
	CVCustomURL string
	Active      bool
	AppliedAt   time.Time
	UpdatedAt   time.Time

	// JobCompanyID is the company owning JobID, loaded with the row so
	// ownership checks need no extra lookup.
	JobCompanyID uuid.UUID
}
