package handler

import (
	"time"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/policy"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobsHandler struct {
	uc usecase.JobUsecase
}

type createJobRequest struct {
	IndustryID   uuid.UUID `json:"industry_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	Welfare      string    `json:"welfare"`
	JobType      string    `json:"job_type"`
	SalaryType   string    `json:"salary_type"`
	SalaryFrom   float64   `json:"salary_from"`
	SalaryTo     float64   `json:"salary_to"`
	WorkingHours string    `json:"working_hours"`
	Location     string    `json:"location"`
	Latitude     *float64  `json:"latitude"`
	Longitude    *float64  `json:"longitude"`
	Deadline     string    `json:"deadline"`
	IsFeatured   bool      `json:"is_featured"`
}

func NewJobsHandler(uc usecase.JobUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.HandleListJobs)
	r.Post("/", middleware.RequireActor, h.HandleCreateJob)
	r.Get("/:id", h.HandleGetJob)
	r.Get("/:id/applications", middleware.RequireActor, h.HandleListApplications)
}

func (h *JobsHandler) HandleListJobs(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil {
		return err
	}
	offset, err := parseQueryIntStrict(c, "offset", 0)
	if err != nil {
		return err
	}
	industryID, err := parseUUIDQuery(c, "industry_id")
	if err != nil {
		return err
	}
	companyID, err := parseUUIDQuery(c, "company_id")
	if err != nil {
		return err
	}
	salaryFrom, err := parseQueryFloat(c, "salary_from")
	if err != nil {
		return err
	}
	salaryTo, err := parseQueryFloat(c, "salary_to")
	if err != nil {
		return err
	}

	page, err := h.uc.ListJobs(c.Context(), usecase.JobListParams{
		Query:      c.Query("q"),
		IndustryID: industryID,
		SalaryFrom: salaryFrom,
		SalaryTo:   salaryTo,
		JobType:    c.Query("job_type"),
		Location:   c.Query("location"),
		CompanyID:  companyID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobPageResponse(page))
}

func (h *JobsHandler) HandleGetJob(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	actor := middleware.Actor(c)
	view, err := h.uc.GetJob(c.Context(), actor, id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobViewResponse(view, policy.IsCandidate(actor)))
}

func (h *JobsHandler) HandleCreateJob(c fiber.Ctx) error {
	var req createJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	in := usecase.CreateJobInput{
		IndustryID:   req.IndustryID,
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Welfare:      req.Welfare,
		JobType:      req.JobType,
		SalaryType:   req.SalaryType,
		SalaryFrom:   req.SalaryFrom,
		SalaryTo:     req.SalaryTo,
		WorkingHours: req.WorkingHours,
		Location:     req.Location,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		IsFeatured:   req.IsFeatured,
	}
	if req.Deadline != "" {
		d, err := parseDeadline(req.Deadline)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", map[string]string{"deadline": "invalid_date"}, err)
		}
		in.Deadline = &d
	}

	d, err := h.uc.CreateJob(c.Context(), middleware.Actor(c), in)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewJobResponse(d))
}

func (h *JobsHandler) HandleListApplications(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	items, err := h.uc.ListJobApplications(c.Context(), middleware.Actor(c), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationResponses(items))
}

// parseDeadline accepts a calendar date or a full RFC 3339 timestamp.
func parseDeadline(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
