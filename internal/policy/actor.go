package policy

import (
	"jobboard/internal/domain/candidate"
	"jobboard/internal/domain/company"
	"jobboard/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated identity of a request together with the
// role-specific records it owns. It is resolved once per request; Company is
// set only for employers that registered one, Candidate only for candidates
// that created a profile.
type Actor struct {
	User      user.User
	Company   *company.Company
	Candidate *candidate.Profile
}

func (a Actor) ID() uuid.UUID {
	return a.User.ID
}

func (a Actor) Authenticated() bool {
	return a.User.ID != uuid.Nil
}

func (a Actor) CompanyID() uuid.UUID {
	if a.Company == nil {
		return uuid.Nil
	}
	return a.Company.ID
}

func IsEmployer(a Actor) bool {
	return a.Authenticated() && a.User.Role == user.RoleEmployer
}

func IsCandidate(a Actor) bool {
	return a.Authenticated() && a.User.Role == user.RoleCandidate
}

// OwnsCompany reports whether the actor is the employer owning companyID.
func OwnsCompany(a Actor, companyID uuid.UUID) bool {
	return IsEmployer(a) && a.Company != nil && companyID != uuid.Nil && a.Company.ID == companyID
}
