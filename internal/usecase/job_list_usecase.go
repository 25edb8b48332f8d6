package usecase

import (
	"context"
	"strings"
	"time"

	"jobboard/internal/domain/job"
	"jobboard/internal/pkg/validation"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

type JobListParams struct {
	Query      string
	IndustryID uuid.UUID
	SalaryFrom *float64
	SalaryTo   *float64
	JobType    string
	Location   string
	CompanyID  uuid.UUID
	Limit      int
	Offset     int
}

type JobPage struct {
	Items  []repository.JobDetail
	Total  int
	Limit  int
	Offset int
}

const (
	defaultJobListLimit = 20
	maxJobListLimit     = 50
	jobListLockTTL      = 10 * time.Second
)

// ListJobs returns active jobs matching params. Pages are cached by filter;
// concurrent misses on the same filter wait briefly for the first loader.
func (u *Jobs) ListJobs(ctx context.Context, params JobListParams) (JobPage, error) {
	params.Query = strings.TrimSpace(params.Query)
	params.Location = strings.TrimSpace(params.Location)
	params.JobType = strings.TrimSpace(params.JobType)

	v := validation.Violations{}
	if params.Limit == 0 {
		params.Limit = defaultJobListLimit
	}
	validation.RangeInt("limit", params.Limit, 1, maxJobListLimit, v)
	if params.Offset < 0 {
		v.Add("offset", "must_not_be_negative")
	}
	if params.JobType != "" {
		validation.OneOf("job_type", job.Type(params.JobType).Valid(), v)
	}
	if params.SalaryFrom != nil {
		validation.NonNegativeFloat("salary_from", *params.SalaryFrom, v)
	}
	if params.SalaryTo != nil {
		validation.NonNegativeFloat("salary_to", *params.SalaryTo, v)
	}
	if err := v.Err(); err != nil {
		return JobPage{}, err
	}

	cacheKey := JobListCacheKey(params)
	lockKey := JobListLockKey(cacheKey)

	var cached JobPage
	if u.cacheGet(ctx, cacheKey, &cached) {
		return cached, nil
	}

	lockAcquired := false
	if u.cache != nil {
		ok, err := u.cache.SetIfNotExists(ctx, lockKey, "1", jobListLockTTL)
		switch {
		case err == nil && ok:
			lockAcquired = true
		case err == nil && !ok:
			jitter := time.Duration(time.Now().UnixNano()%201) * time.Millisecond
			select {
			case <-ctx.Done():
				return JobPage{}, ctx.Err()
			case <-time.After(300*time.Millisecond + jitter):
			}
			if u.cacheGet(ctx, cacheKey, &cached) {
				return cached, nil
			}
			u.logger.Printf("[Jobs] lock wait fallback key=%s", lockKey)
		}
	}

	items, total, err := u.jobs.List(ctx, repository.JobFilter{
		Query:      params.Query,
		IndustryID: params.IndustryID,
		SalaryFrom: params.SalaryFrom,
		SalaryTo:   params.SalaryTo,
		JobType:    job.Type(params.JobType),
		Location:   params.Location,
		CompanyID:  params.CompanyID,
		Limit:      params.Limit,
		Offset:     params.Offset,
	})
	if err != nil {
		return JobPage{}, internal(err)
	}

	page := JobPage{Items: items, Total: total, Limit: params.Limit, Offset: params.Offset}
	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, page, 0); err == nil {
			u.logger.Printf("[Jobs] cache set key=%s", cacheKey)
		}
		if lockAcquired {
			_ = u.cache.Delete(ctx, lockKey)
		}
	}
	return page, nil
}

func (u *Jobs) cacheGet(ctx context.Context, key string, out *JobPage) bool {
	if u.cache == nil {
		return false
	}
	hit, err := u.cache.GetJSON(ctx, key, out)
	if err == nil && hit {
		u.logger.Printf("[Jobs] cache hit key=%s", key)
		return true
	}
	return false
}

func (u *Jobs) invalidateListings(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.DeleteByPattern(ctx, JobListCachePattern); err != nil {
		u.logger.Printf("[Jobs] cache invalidation failed pattern=%s err=%v", JobListCachePattern, err)
	}
}
