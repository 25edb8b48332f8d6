package handler

import (
	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

type applyRequest struct {
	JobID       uuid.UUID `json:"job_id"`
	CoverLetter string    `json:"cover_letter"`
	CVCustomURL string    `json:"cv_custom_url"`
}

type updateApplicationRequest struct {
	Status      *string `json:"status"`
	CoverLetter *string `json:"cover_letter"`
	CVCustomURL *string `json:"cv_custom_url"`
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/", h.Apply)
	r.Get("/:id", h.Get)
	r.Patch("/:id", h.Update)
	r.Delete("/:id", h.Withdraw)
}

func (h *ApplicationHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListApplications(c.Context(), middleware.Actor(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationResponses(items))
}

func (h *ApplicationHandler) Apply(c fiber.Ctx) error {
	var req applyRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}
	a, err := h.uc.Apply(c.Context(), middleware.Actor(c), usecase.ApplyInput{
		JobID:       req.JobID,
		CoverLetter: req.CoverLetter,
		CVCustomURL: req.CVCustomURL,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewApplicationResponse(a))
}

func (h *ApplicationHandler) Get(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	a, err := h.uc.GetApplication(c.Context(), middleware.Actor(c), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationResponse(a))
}

func (h *ApplicationHandler) Update(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req updateApplicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}
	a, err := h.uc.UpdateApplication(c.Context(), middleware.Actor(c), id, usecase.UpdateApplicationInput{
		Status:      req.Status,
		CoverLetter: req.CoverLetter,
		CVCustomURL: req.CVCustomURL,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationResponse(a))
}

func (h *ApplicationHandler) Withdraw(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.WithdrawApplication(c.Context(), middleware.Actor(c), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
