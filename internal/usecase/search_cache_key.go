package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	jobListCachePrefix  = "jobs:list:"
	jobListLockPrefix   = "jobs:lock:"
	JobListCachePattern = jobListCachePrefix + "*"
)

type jobListCacheKeyInput struct {
	Query      string `json:"q"`
	IndustryID string `json:"industry_id"`
	SalaryFrom string `json:"salary_from"`
	SalaryTo   string `json:"salary_to"`
	JobType    string `json:"job_type"`
	Location   string `json:"location"`
	CompanyID  string `json:"company_id"`
	Limit      int    `json:"limit"`
	Offset     int    `json:"offset"`
}

// foldSearchText matches how the store compares free text: ILIKE ignores
// case but not inner whitespace, so only case is folded here.
func foldSearchText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func optionalFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func optionalID(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}

// JobListCacheKey hashes the filter so that only filters selecting the same
// rows share one entry.
func JobListCacheKey(params JobListParams) string {
	in := jobListCacheKeyInput{
		Query:      foldSearchText(params.Query),
		IndustryID: optionalID(params.IndustryID),
		SalaryFrom: optionalFloat(params.SalaryFrom),
		SalaryTo:   optionalFloat(params.SalaryTo),
		JobType:    strings.TrimSpace(params.JobType),
		Location:   foldSearchText(params.Location),
		CompanyID:  optionalID(params.CompanyID),
		Limit:      params.Limit,
		Offset:     params.Offset,
	}
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return jobListCachePrefix + hex.EncodeToString(sum[:])
}

func JobListLockKey(cacheKey string) string {
	return jobListLockPrefix + strings.TrimPrefix(cacheKey, jobListCachePrefix)
}
