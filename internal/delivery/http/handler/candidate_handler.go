package handler

import (
	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CandidateHandler struct {
	uc usecase.CandidateUsecase
}

type candidateProfileRequest struct {
	CVURL                   *string `json:"cv_url"`
	Skills                  *string `json:"skills"`
	Experience              *string `json:"experience"`
	Education               *string `json:"education"`
	VerificationDocumentURL *string `json:"verification_document_url"`
}

func (r candidateProfileRequest) input() usecase.CandidateProfileInput {
	return usecase.CandidateProfileInput{
		CVURL:                   r.CVURL,
		Skills:                  r.Skills,
		Experience:              r.Experience,
		Education:               r.Education,
		VerificationDocumentURL: r.VerificationDocumentURL,
	}
}

func NewCandidateHandler(uc usecase.CandidateUsecase) *CandidateHandler {
	return &CandidateHandler{uc: uc}
}

func (h *CandidateHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me", h.GetMine)
	r.Post("/me", h.CreateMine)
	r.Put("/me", h.UpdateMine)
}

func (h *CandidateHandler) GetMine(c fiber.Ctx) error {
	p, err := h.uc.GetMyProfile(c.Context(), middleware.Actor(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCandidateProfileResponse(p))
}

func (h *CandidateHandler) CreateMine(c fiber.Ctx) error {
	var req candidateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}
	p, err := h.uc.CreateMyProfile(c.Context(), middleware.Actor(c), req.input())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewCandidateProfileResponse(p))
}

func (h *CandidateHandler) UpdateMine(c fiber.Ctx) error {
	var req candidateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}
	p, err := h.uc.UpdateMyProfile(c.Context(), middleware.Actor(c), req.input())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCandidateProfileResponse(p))
}
