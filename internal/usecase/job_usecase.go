package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"jobboard/internal/domain/application"
	"jobboard/internal/domain/company"
	"jobboard/internal/domain/job"
	"jobboard/internal/domain/user"
	"jobboard/internal/notify"
	"jobboard/internal/pkg/validation"
	"jobboard/internal/policy"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

type JobUsecase interface {
	CreateJob(ctx context.Context, actor policy.Actor, in CreateJobInput) (repository.JobDetail, error)
	ListJobs(ctx context.Context, params JobListParams) (JobPage, error)
	GetJob(ctx context.Context, actor policy.Actor, id uuid.UUID) (JobView, error)
	ListJobApplications(ctx context.Context, actor policy.Actor, jobID uuid.UUID) ([]application.Application, error)
}

// JobPostedNotifier fans a new job out to the followers of its company.
type JobPostedNotifier interface {
	JobPosted(ctx context.Context, c company.Company, j job.Job, followers []user.User) notify.Report
}

type CreateJobInput struct {
	IndustryID   uuid.UUID
	Title        string
	Description  string
	Requirements string
	Welfare      string
	JobType      string
	SalaryType   string
	SalaryFrom   float64
	SalaryTo     float64
	WorkingHours string
	Location     string
	Latitude     *float64
	Longitude    *float64
	Deadline     *time.Time
	IsFeatured   bool
}

type JobView struct {
	Detail     repository.JobDetail
	HasApplied bool
}

type Jobs struct {
	jobs         repository.JobRepository
	industries   repository.IndustryRepository
	follows      repository.FollowRepository
	applications repository.ApplicationRepository
	notifier     JobPostedNotifier
	cache        SearchCache
	gate         *policy.Gate
	logger       *log.Logger
	now          func() time.Time
}

type JobsDeps struct {
	Jobs         repository.JobRepository
	Industries   repository.IndustryRepository
	Follows      repository.FollowRepository
	Applications repository.ApplicationRepository
	Notifier     JobPostedNotifier
	Cache        SearchCache
	Gate         *policy.Gate
	Logger       *log.Logger
}

func NewJobUsecase(d JobsDeps) *Jobs {
	logger := d.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Jobs{
		jobs:         d.Jobs,
		industries:   d.Industries,
		follows:      d.Follows,
		applications: d.Applications,
		notifier:     d.Notifier,
		cache:        d.Cache,
		gate:         d.Gate,
		logger:       logger,
		now:          time.Now,
	}
}

// CreateJob persists a job for the actor's approved company, drops cached
// listings, then notifies the company's followers. Notification failures
// never fail the call.
func (u *Jobs) CreateJob(ctx context.Context, actor policy.Actor, in CreateJobInput) (repository.JobDetail, error) {
	if err := authorize(ctx, u.gate, actor, policy.ActionCreate, policy.ResourceJob, nil); err != nil {
		return repository.JobDetail{}, err
	}
	c := *actor.Company

	now := u.now().UTC()
	v := validateJobInput(in, now)

	var industry job.Industry
	if in.IndustryID != uuid.Nil {
		var err error
		industry, err = u.industries.GetByID(ctx, in.IndustryID)
		if err != nil {
			if !errors.Is(err, repository.ErrNotFound) {
				return repository.JobDetail{}, internal(err)
			}
			v.Add("industry_id", "not_found")
		}
	}
	if err := v.Err(); err != nil {
		return repository.JobDetail{}, err
	}

	j := job.Job{
		ID:           uuid.New(),
		CompanyID:    c.ID,
		IndustryID:   industry.ID,
		Title:        strings.TrimSpace(in.Title),
		Description:  strings.TrimSpace(in.Description),
		Requirements: strings.TrimSpace(in.Requirements),
		Welfare:      strings.TrimSpace(in.Welfare),
		JobType:      job.Type(in.JobType),
		SalaryType:   job.SalaryType(in.SalaryType),
		SalaryFrom:   in.SalaryFrom,
		SalaryTo:     in.SalaryTo,
		WorkingHours: strings.TrimSpace(in.WorkingHours),
		Location:     strings.TrimSpace(in.Location),
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		Deadline:     in.Deadline,
		IsFeatured:   in.IsFeatured,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.jobs.Create(ctx, j); err != nil {
		if errors.Is(err, repository.ErrReference) {
			return repository.JobDetail{}, validation.Field("industry_id", "not_found")
		}
		return repository.JobDetail{}, internal(err)
	}
	u.logger.Printf("[Jobs] created job_id=%s company_id=%s", j.ID, c.ID)

	u.invalidateListings(ctx)
	u.fanOut(ctx, c, j)

	return repository.JobDetail{Job: j, Company: c, Industry: industry}, nil
}

func (u *Jobs) fanOut(ctx context.Context, c company.Company, j job.Job) {
	if u.notifier == nil || u.follows == nil {
		return
	}
	followers, err := u.follows.ListFollowers(ctx, c.ID)
	if err != nil {
		u.logger.Printf("[Jobs] load followers failed job_id=%s company_id=%s err=%v", j.ID, c.ID, err)
		return
	}
	u.notifier.JobPosted(ctx, c, j, followers)
}

func validateJobInput(in CreateJobInput, now time.Time) validation.Violations {
	v := validation.Violations{}
	validation.Required("title", in.Title, v)
	validation.MaxLen("title", in.Title, 255, v)
	validation.Required("description", in.Description, v)
	validation.Required("requirements", in.Requirements, v)
	validation.Required("location", in.Location, v)
	validation.MaxLen("location", in.Location, 255, v)
	validation.MaxLen("working_hours", in.WorkingHours, 100, v)
	if in.IndustryID == uuid.Nil {
		v.Add("industry_id", "required")
	}
	validation.OneOf("job_type", job.Type(in.JobType).Valid(), v)
	validation.OneOf("salary_type", job.SalaryType(in.SalaryType).Valid(), v)
	validation.NonNegativeFloat("salary_from", in.SalaryFrom, v)
	validation.NonNegativeFloat("salary_to", in.SalaryTo, v)
	if in.SalaryFrom > in.SalaryTo {
		v.Add("salary_to", "must_be_gte_salary_from")
	}
	if in.Latitude != nil {
		validation.RangeFloat("latitude", *in.Latitude, -90, 90, v)
	}
	if in.Longitude != nil {
		validation.RangeFloat("longitude", *in.Longitude, -180, 180, v)
	}
	if in.Deadline != nil {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if in.Deadline.UTC().Before(today) {
			v.Add("deadline", "must_not_be_in_past")
		}
	}
	return v
}

// GetJob returns an active job. For candidates HasApplied tells whether they
// already applied.
func (u *Jobs) GetJob(ctx context.Context, actor policy.Actor, id uuid.UUID) (JobView, error) {
	d, err := u.jobs.GetActiveDetail(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return JobView{}, ErrNotFound
		}
		return JobView{}, internal(err)
	}

	view := JobView{Detail: d}
	if policy.IsCandidate(actor) {
		applied, err := u.applications.Exists(ctx, id, actor.ID())
		if err != nil {
			return JobView{}, internal(err)
		}
		view.HasApplied = applied
	}
	return view, nil
}

func (u *Jobs) ListJobApplications(ctx context.Context, actor policy.Actor, jobID uuid.UUID) ([]application.Application, error) {
	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, internal(err)
	}
	if err := authorize(ctx, u.gate, actor, policy.ActionListApplications, policy.ResourceJob, &j); err != nil {
		return nil, err
	}
	items, err := u.applications.ListByJob(ctx, jobID)
	if err != nil {
		return nil, internal(err)
	}
	return items, nil
}
