package handler

import (
	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type FollowHandler struct {
	uc usecase.FollowUsecase
}

type followRequest struct {
	CompanyID uuid.UUID `json:"company_id"`
}

func NewFollowHandler(uc usecase.FollowUsecase) *FollowHandler {
	return &FollowHandler{uc: uc}
}

func (h *FollowHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.ListMine)
	r.Post("/", h.Follow)
	r.Get("/followers", h.Followers)
	r.Get("/status/:company_id", h.Status)
	r.Delete("/:id", h.Unfollow)
}

func (h *FollowHandler) ListMine(c fiber.Ctx) error {
	items, err := h.uc.ListMyFollows(c.Context(), middleware.Actor(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewFollowedCompanyResponses(items))
}

func (h *FollowHandler) Follow(c fiber.Ctx) error {
	var req followRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}
	f, err := h.uc.Follow(c.Context(), middleware.Actor(c), req.CompanyID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewFollowResponse(f))
}

func (h *FollowHandler) Unfollow(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Unfollow(c.Context(), middleware.Actor(c), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *FollowHandler) Status(c fiber.Ctx) error {
	companyID, err := parseUUIDParam(c, "company_id")
	if err != nil {
		return err
	}
	following, err := h.uc.FollowStatus(c.Context(), middleware.Actor(c), companyID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"is_following": following})
}

// Followers lists the followers of company_id, or of the caller's own
// company when the query is absent.
func (h *FollowHandler) Followers(c fiber.Ctx) error {
	companyID, err := parseUUIDQuery(c, "company_id")
	if err != nil {
		return err
	}
	users, err := h.uc.ListFollowers(c.Context(), middleware.Actor(c), companyID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewFollowerResponses(users))
}
