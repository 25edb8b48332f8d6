package usecase

import (
	"context"
	"errors"

	"jobboard/internal/domain/user"
	"jobboard/internal/policy"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

type ActorResolver interface {
	Resolve(ctx context.Context, userID uuid.UUID) (policy.Actor, error)
}

// Actors loads the user behind a token together with the company or
// candidate profile its role owns.
type Actors struct {
	users      user.Repository
	companies  repository.CompanyRepository
	candidates repository.CandidateProfileRepository
}

func NewActorResolver(users user.Repository, companies repository.CompanyRepository, candidates repository.CandidateProfileRepository) *Actors {
	return &Actors{users: users, companies: companies, candidates: candidates}
}

func (r *Actors) Resolve(ctx context.Context, userID uuid.UUID) (policy.Actor, error) {
	u, err := r.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return policy.Actor{}, ErrNotFound
		}
		return policy.Actor{}, internal(err)
	}
	if !u.IsActive {
		return policy.Actor{}, ErrNotFound
	}
	u.PasswordHash = ""
	actor := policy.Actor{User: u}

	switch {
	case policy.IsEmployer(actor):
		c, err := r.companies.GetByUserID(ctx, u.ID)
		if err == nil {
			actor.Company = &c
		} else if !errors.Is(err, repository.ErrNotFound) {
			return policy.Actor{}, internal(err)
		}
	case policy.IsCandidate(actor):
		p, err := r.candidates.GetByUserID(ctx, u.ID)
		if err == nil {
			actor.Candidate = &p
		} else if !errors.Is(err, repository.ErrNotFound) {
			return policy.Actor{}, internal(err)
		}
	}
	return actor, nil
}
