package job

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypePartTime  Type = "part_time"
	TypeFullTime  Type = "full_time"
	TypeFreelance Type = "freelance"
)

func (t Type) Valid() bool {
	switch t {
	case TypePartTime, TypeFullTime, TypeFreelance:
		return true
	default:
		return false
	}
}

type SalaryType string

const (
	SalaryHourly  SalaryType = "hourly"
	SalaryDaily   SalaryType = "daily"
	SalaryMonthly SalaryType = "monthly"
	SalaryProject SalaryType = "project"
)

func (s SalaryType) Valid() bool {
	switch s {
	case SalaryHourly, SalaryDaily, SalaryMonthly, SalaryProject:
		return true
	default:
		return false
	}
}

type Industry struct {
	ID     uuid.UUID
	Name   string
	Active bool
}

type Job struct {
	ID           uuid.UUID
	CompanyID    uuid.UUID
	IndustryID   uuid.UUID
	Title        string
	Description  string
	Requirements string
	Welfare      string
	JobType      Type
	SalaryType   SalaryType
	SalaryFrom   float64
	SalaryTo     float64
	WorkingHours string
	Location     string
	Latitude     *float64
	Longitude    *float64
	Deadline     *time.Time
	IsFeatured   bool
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
