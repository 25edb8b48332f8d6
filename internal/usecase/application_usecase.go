package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"jobboard/internal/domain/application"
	"jobboard/internal/pkg/validation"
	"jobboard/internal/policy"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

type ApplicationUsecase interface {
	Apply(ctx context.Context, actor policy.Actor, in ApplyInput) (application.Application, error)
	ListApplications(ctx context.Context, actor policy.Actor) ([]application.Application, error)
	GetApplication(ctx context.Context, actor policy.Actor, id uuid.UUID) (application.Application, error)
	UpdateApplication(ctx context.Context, actor policy.Actor, id uuid.UUID, in UpdateApplicationInput) (application.Application, error)
	WithdrawApplication(ctx context.Context, actor policy.Actor, id uuid.UUID) error
}

type ApplyInput struct {
	JobID       uuid.UUID
	CoverLetter string
	CVCustomURL string
}

// UpdateApplicationInput is a partial update. Status is reserved for the
// employer owning the job; the text fields for the applying candidate.
type UpdateApplicationInput struct {
	Status      *string
	CoverLetter *string
	CVCustomURL *string
}

type Applications struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
	gate         *policy.Gate
	now          func() time.Time
}

func NewApplicationUsecase(applications repository.ApplicationRepository, jobs repository.JobRepository, gate *policy.Gate) *Applications {
	return &Applications{applications: applications, jobs: jobs, gate: gate, now: time.Now}
}

func (u *Applications) Apply(ctx context.Context, actor policy.Actor, in ApplyInput) (application.Application, error) {
	if err := authorize(ctx, u.gate, actor, policy.ActionCreate, policy.ResourceApplication, nil); err != nil {
		return application.Application{}, err
	}

	v := validation.Violations{}
	if in.JobID == uuid.Nil {
		v.Add("job_id", "required")
	}
	validation.MaxLen("cover_letter", in.CoverLetter, 5000, v)
	validation.MaxLen("cv_custom_url", in.CVCustomURL, 2048, v)
	if err := v.Err(); err != nil {
		return application.Application{}, err
	}

	d, err := u.jobs.GetActiveDetail(ctx, in.JobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return application.Application{}, ErrNotFound
		}
		return application.Application{}, internal(err)
	}

	exists, err := u.applications.Exists(ctx, in.JobID, actor.ID())
	if err != nil {
		return application.Application{}, internal(err)
	}
	if exists {
		return application.Application{}, ErrConflict
	}

	now := u.now().UTC()
	a := application.Application{
		ID:           uuid.New(),
		JobID:        in.JobID,
		CandidateID:  actor.ID(),
		Status:       application.StatusApplied,
		CoverLetter:  strings.TrimSpace(in.CoverLetter),
		CVCustomURL:  strings.TrimSpace(in.CVCustomURL),
		Active:       true,
		AppliedAt:    now,
		UpdatedAt:    now,
		JobCompanyID: d.Job.CompanyID,
	}
	if err := u.applications.Create(ctx, a); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return application.Application{}, ErrConflict
		case errors.Is(err, repository.ErrReference):
			return application.Application{}, ErrNotFound
		default:
			return application.Application{}, internal(err)
		}
	}
	return a, nil
}

// ListApplications returns every application on the employer's jobs, or the
// candidate's own applications.
func (u *Applications) ListApplications(ctx context.Context, actor policy.Actor) ([]application.Application, error) {
	if err := authorize(ctx, u.gate, actor, policy.ActionList, policy.ResourceApplication, nil); err != nil {
		return nil, err
	}

	var (
		items []application.Application
		err   error
	)
	switch {
	case policy.IsEmployer(actor):
		if actor.Company == nil {
			return []application.Application{}, nil
		}
		items, err = u.applications.ListByCompany(ctx, actor.Company.ID)
	default:
		items, err = u.applications.ListByCandidate(ctx, actor.ID())
	}
	if err != nil {
		return nil, internal(err)
	}
	return items, nil
}

func (u *Applications) GetApplication(ctx context.Context, actor policy.Actor, id uuid.UUID) (application.Application, error) {
	a, err := u.load(ctx, id)
	if err != nil {
		return application.Application{}, err
	}
	if err := authorize(ctx, u.gate, actor, policy.ActionView, policy.ResourceApplication, &a); err != nil {
		if errors.Is(err, ErrForbidden) {
			return application.Application{}, ErrNotFound
		}
		return application.Application{}, err
	}
	return a, nil
}

func (u *Applications) UpdateApplication(ctx context.Context, actor policy.Actor, id uuid.UUID, in UpdateApplicationInput) (application.Application, error) {
	if in.Status == nil && in.CoverLetter == nil && in.CVCustomURL == nil {
		return application.Application{}, validation.Field("body", "empty_update")
	}

	a, err := u.load(ctx, id)
	if err != nil {
		return application.Application{}, err
	}

	if in.Status != nil {
		if err := authorize(ctx, u.gate, actor, policy.ActionUpdateStatus, policy.ResourceApplication, &a); err != nil {
			return application.Application{}, err
		}
	}
	if in.CoverLetter != nil || in.CVCustomURL != nil {
		if err := authorize(ctx, u.gate, actor, policy.ActionUpdate, policy.ResourceApplication, &a); err != nil {
			return application.Application{}, err
		}
	}

	if in.Status != nil {
		status := application.Status(strings.ToLower(strings.TrimSpace(*in.Status)))
		if !status.Valid() {
			return application.Application{}, validation.Field("status", "invalid_choice")
		}
		if err := u.applications.UpdateStatus(ctx, a.ID, status); err != nil {
			return application.Application{}, u.writeErr(err)
		}
		a.Status = status
	}

	if in.CoverLetter != nil || in.CVCustomURL != nil {
		coverLetter, cv := a.CoverLetter, a.CVCustomURL
		if in.CoverLetter != nil {
			coverLetter = strings.TrimSpace(*in.CoverLetter)
		}
		if in.CVCustomURL != nil {
			cv = strings.TrimSpace(*in.CVCustomURL)
		}
		v := validation.Violations{}
		validation.MaxLen("cover_letter", coverLetter, 5000, v)
		validation.MaxLen("cv_custom_url", cv, 2048, v)
		if err := v.Err(); err != nil {
			return application.Application{}, err
		}
		if err := u.applications.UpdateContent(ctx, a.ID, coverLetter, cv); err != nil {
			return application.Application{}, u.writeErr(err)
		}
		a.CoverLetter, a.CVCustomURL = coverLetter, cv
	}

	a.UpdatedAt = u.now().UTC()
	return a, nil
}

// WithdrawApplication deletes the candidate's own application. Applications
// the actor does not own are reported as missing.
func (u *Applications) WithdrawApplication(ctx context.Context, actor policy.Actor, id uuid.UUID) error {
	a, err := u.load(ctx, id)
	if err != nil {
		return err
	}
	if err := authorize(ctx, u.gate, actor, policy.ActionDelete, policy.ResourceApplication, &a); err != nil {
		if errors.Is(err, ErrForbidden) {
			return ErrNotFound
		}
		return err
	}
	if err := u.applications.Delete(ctx, a.ID); err != nil {
		return u.writeErr(err)
	}
	return nil
}

func (u *Applications) load(ctx context.Context, id uuid.UUID) (application.Application, error) {
	a, err := u.applications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return application.Application{}, ErrNotFound
		}
		return application.Application{}, internal(err)
	}
	return a, nil
}

func (u *Applications) writeErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return internal(err)
}
