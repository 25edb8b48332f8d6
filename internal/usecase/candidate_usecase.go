package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"jobboard/internal/domain/candidate"
	"jobboard/internal/pkg/validation"
	"jobboard/internal/policy"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

type CandidateUsecase interface {
	GetMyProfile(ctx context.Context, actor policy.Actor) (candidate.Profile, error)
	CreateMyProfile(ctx context.Context, actor policy.Actor, in CandidateProfileInput) (candidate.Profile, error)
	UpdateMyProfile(ctx context.Context, actor policy.Actor, in CandidateProfileInput) (candidate.Profile, error)
}

// CandidateProfileInput holds optional fields; nil leaves a field unchanged
// on update and empty on create.
type CandidateProfileInput struct {
	CVURL                   *string
	Skills                  *string
	Experience              *string
	Education               *string
	VerificationDocumentURL *string
}

type Candidates struct {
	profiles repository.CandidateProfileRepository
	gate     *policy.Gate
	now      func() time.Time
}

func NewCandidateUsecase(profiles repository.CandidateProfileRepository, gate *policy.Gate) *Candidates {
	return &Candidates{profiles: profiles, gate: gate, now: time.Now}
}

func (u *Candidates) GetMyProfile(ctx context.Context, actor policy.Actor) (candidate.Profile, error) {
	if err := authorize(ctx, u.gate, actor, policy.ActionView, policy.ResourceCandidateProfile, nil); err != nil {
		return candidate.Profile{}, err
	}
	p, err := u.profiles.GetByUserID(ctx, actor.ID())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return candidate.Profile{}, ErrNotFound
		}
		return candidate.Profile{}, internal(err)
	}
	return p, nil
}

func (u *Candidates) CreateMyProfile(ctx context.Context, actor policy.Actor, in CandidateProfileInput) (candidate.Profile, error) {
	if err := authorize(ctx, u.gate, actor, policy.ActionCreate, policy.ResourceCandidateProfile, nil); err != nil {
		return candidate.Profile{}, err
	}
	if actor.Candidate != nil {
		return candidate.Profile{}, ErrConflict
	}
	if err := validateProfileInput(in); err != nil {
		return candidate.Profile{}, err
	}

	now := u.now().UTC()
	p := candidate.Profile{
		ID:        uuid.New(),
		UserID:    actor.ID(),
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyProfileInput(&p, in)
	if err := u.profiles.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return candidate.Profile{}, ErrConflict
		}
		return candidate.Profile{}, internal(err)
	}
	return p, nil
}

func (u *Candidates) UpdateMyProfile(ctx context.Context, actor policy.Actor, in CandidateProfileInput) (candidate.Profile, error) {
	if err := authorize(ctx, u.gate, actor, policy.ActionUpdate, policy.ResourceCandidateProfile, nil); err != nil {
		return candidate.Profile{}, err
	}
	if err := validateProfileInput(in); err != nil {
		return candidate.Profile{}, err
	}
	p, err := u.profiles.GetByUserID(ctx, actor.ID())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return candidate.Profile{}, ErrNotFound
		}
		return candidate.Profile{}, internal(err)
	}
	applyProfileInput(&p, in)
	p.UpdatedAt = u.now().UTC()
	if err := u.profiles.Update(ctx, p); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return candidate.Profile{}, ErrNotFound
		}
		return candidate.Profile{}, internal(err)
	}
	return p, nil
}

func validateProfileInput(in CandidateProfileInput) error {
	v := validation.Violations{}
	if in.CVURL != nil {
		validation.MaxLen("cv_url", *in.CVURL, 500, v)
	}
	if in.VerificationDocumentURL != nil {
		validation.MaxLen("verification_document_url", *in.VerificationDocumentURL, 500, v)
	}
	return v.Err()
}

func applyProfileInput(p *candidate.Profile, in CandidateProfileInput) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&p.CVURL, in.CVURL)
	set(&p.Skills, in.Skills)
	set(&p.Experience, in.Experience)
	set(&p.Education, in.Education)
	set(&p.VerificationDocumentURL, in.VerificationDocumentURL)
}
