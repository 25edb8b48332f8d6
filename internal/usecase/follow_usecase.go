package usecase

import (
	"context"
	"errors"
	"time"

	"jobboard/internal/domain/follow"
	"jobboard/internal/domain/user"
	"jobboard/internal/pkg/validation"
	"jobboard/internal/policy"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

type FollowUsecase interface {
	Follow(ctx context.Context, actor policy.Actor, companyID uuid.UUID) (follow.Follow, error)
	Unfollow(ctx context.Context, actor policy.Actor, followID uuid.UUID) error
	FollowStatus(ctx context.Context, actor policy.Actor, companyID uuid.UUID) (bool, error)
	ListFollowers(ctx context.Context, actor policy.Actor, companyID uuid.UUID) ([]user.User, error)
	ListMyFollows(ctx context.Context, actor policy.Actor) ([]repository.FollowedCompany, error)
}

type Follows struct {
	follows   repository.FollowRepository
	companies repository.CompanyRepository
	gate      *policy.Gate
	now       func() time.Time
}

func NewFollowUsecase(follows repository.FollowRepository, companies repository.CompanyRepository, gate *policy.Gate) *Follows {
	return &Follows{follows: follows, companies: companies, gate: gate, now: time.Now}
}

func (u *Follows) Follow(ctx context.Context, actor policy.Actor, companyID uuid.UUID) (follow.Follow, error) {
	if err := authorize(ctx, u.gate, actor, policy.ActionCreate, policy.ResourceFollow, nil); err != nil {
		return follow.Follow{}, err
	}
	if companyID == uuid.Nil {
		return follow.Follow{}, validation.Field("company_id", "required")
	}
	if _, err := u.companies.GetByID(ctx, companyID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return follow.Follow{}, ErrNotFound
		}
		return follow.Follow{}, internal(err)
	}

	exists, err := u.follows.Exists(ctx, actor.ID(), companyID)
	if err != nil {
		return follow.Follow{}, internal(err)
	}
	if exists {
		return follow.Follow{}, ErrConflict
	}

	f := follow.Follow{
		ID:          uuid.New(),
		CandidateID: actor.ID(),
		CompanyID:   companyID,
		Active:      true,
		CreatedAt:   u.now().UTC(),
	}
	if err := u.follows.Create(ctx, f); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return follow.Follow{}, ErrConflict
		case errors.Is(err, repository.ErrReference):
			return follow.Follow{}, ErrNotFound
		default:
			return follow.Follow{}, internal(err)
		}
	}
	return f, nil
}

// Unfollow hard-deletes the follow. A follow that is missing, inactive or
// owned by someone else is reported as missing and left untouched.
func (u *Follows) Unfollow(ctx context.Context, actor policy.Actor, followID uuid.UUID) error {
	f, err := u.follows.GetByID(ctx, followID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return internal(err)
	}
	if err := authorize(ctx, u.gate, actor, policy.ActionDelete, policy.ResourceFollow, &f); err != nil {
		if errors.Is(err, ErrForbidden) {
			return ErrNotFound
		}
		return err
	}
	if err := u.follows.Delete(ctx, f.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return internal(err)
	}
	return nil
}

func (u *Follows) FollowStatus(ctx context.Context, actor policy.Actor, companyID uuid.UUID) (bool, error) {
	if err := authorize(ctx, u.gate, actor, policy.ActionView, policy.ResourceFollow, nil); err != nil {
		return false, err
	}
	ok, err := u.follows.Exists(ctx, actor.ID(), companyID)
	if err != nil {
		return false, internal(err)
	}
	return ok, nil
}

// ListFollowers returns the candidates following companyID. Only the
// employer owning the company may call it.
func (u *Follows) ListFollowers(ctx context.Context, actor policy.Actor, companyID uuid.UUID) ([]user.User, error) {
	if companyID == uuid.Nil {
		companyID = actor.CompanyID()
	}
	if companyID == uuid.Nil {
		return nil, ErrForbidden
	}
	c, err := u.companies.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, internal(err)
	}
	if err := authorize(ctx, u.gate, actor, policy.ActionListFollowers, policy.ResourceCompany, &c); err != nil {
		return nil, err
	}
	users, err := u.follows.ListFollowers(ctx, companyID)
	if err != nil {
		return nil, internal(err)
	}
	return users, nil
}

func (u *Follows) ListMyFollows(ctx context.Context, actor policy.Actor) ([]repository.FollowedCompany, error) {
	if err := authorize(ctx, u.gate, actor, policy.ActionList, policy.ResourceFollow, nil); err != nil {
		return nil, err
	}
	items, err := u.follows.ListByCandidate(ctx, actor.ID())
	if err != nil {
		return nil, internal(err)
	}
	return items, nil
}
