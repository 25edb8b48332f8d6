package handler

import (
	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type IndustryHandler struct {
	uc usecase.IndustryUsecase
}

func NewIndustryHandler(uc usecase.IndustryUsecase) *IndustryHandler {
	return &IndustryHandler{uc: uc}
}

func (h *IndustryHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.List)
}

func (h *IndustryHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListIndustries(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewIndustryResponses(items))
}
