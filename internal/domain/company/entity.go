package company

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

type Company struct {
	ID                      uuid.UUID
	UserID                  uuid.UUID
	Name                    string
	TaxCode                 string
	Description             string
	Address                 string
	Status                  Status
	VerificationDocumentURL string
	Images                  []Image
	Active                  bool
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

func (c Company) Approved() bool {
	return c.Status == StatusApproved
}

type Image struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	URL       string
}
