package dto

import (
	"time"

	"jobboard/internal/repository"
	"jobboard/internal/usecase"

	"github.com/google/uuid"
)

type JobCompanyResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
}

type JobResponse struct {
	ID           uuid.UUID          `json:"id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Requirements string             `json:"requirements"`
	Welfare      string             `json:"welfare"`
	JobType      string             `json:"job_type"`
	SalaryType   string             `json:"salary_type"`
	SalaryFrom   float64            `json:"salary_from"`
	SalaryTo     float64            `json:"salary_to"`
	WorkingHours string             `json:"working_hours"`
	Location     string             `json:"location"`
	Latitude     *float64           `json:"latitude"`
	Longitude    *float64           `json:"longitude"`
	Deadline     *time.Time         `json:"deadline"`
	IsFeatured   bool               `json:"is_featured"`
	CreatedAt    time.Time          `json:"created_at"`
	Company      JobCompanyResponse `json:"company"`
	Industry     IndustryResponse   `json:"industry"`
	HasApplied   *bool              `json:"has_applied,omitempty"`
}

func NewJobResponse(d repository.JobDetail) JobResponse {
	j := d.Job
	return JobResponse{
		ID:           j.ID,
		Title:        j.Title,
		Description:  j.Description,
		Requirements: j.Requirements,
		Welfare:      j.Welfare,
		JobType:      string(j.JobType),
		SalaryType:   string(j.SalaryType),
		SalaryFrom:   j.SalaryFrom,
		SalaryTo:     j.SalaryTo,
		WorkingHours: j.WorkingHours,
		Location:     j.Location,
		Latitude:     j.Latitude,
		Longitude:    j.Longitude,
		Deadline:     j.Deadline,
		IsFeatured:   j.IsFeatured,
		CreatedAt:    j.CreatedAt,
		Company:      JobCompanyResponse{ID: d.Company.ID, Name: d.Company.Name, Address: d.Company.Address},
		Industry:     IndustryResponse{ID: d.Industry.ID, Name: d.Industry.Name},
	}
}

func NewJobViewResponse(v usecase.JobView, withApplied bool) JobResponse {
	out := NewJobResponse(v.Detail)
	if withApplied {
		applied := v.HasApplied
		out.HasApplied = &applied
	}
	return out
}

type JobPageResponse struct {
	Items  []JobResponse `json:"items"`
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

func NewJobPageResponse(p usecase.JobPage) JobPageResponse {
	items := make([]JobResponse, 0, len(p.Items))
	for _, d := range p.Items {
		items = append(items, NewJobResponse(d))
	}
	return JobPageResponse{Items: items, Total: p.Total, Limit: p.Limit, Offset: p.Offset}
}
