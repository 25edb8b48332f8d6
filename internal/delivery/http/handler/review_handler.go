package handler

import (
	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	uc usecase.ReviewUsecase
}

type createReviewRequest struct {
	CompanyID uuid.UUID  `json:"company_id"`
	Content   string     `json:"content"`
	Rating    *int       `json:"rating"`
	ParentID  *uuid.UUID `json:"parent_id"`
}

type replyRequest struct {
	Content string `json:"content"`
	Rating  *int   `json:"rating"`
}

func NewReviewHandler(uc usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

func (h *ReviewHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Post("/:id/reply", h.Reply)
}

func (h *ReviewHandler) List(c fiber.Ctx) error {
	companyID, err := parseUUIDQuery(c, "company_id")
	if err != nil {
		return err
	}
	limit, offset, err := pagination(c, 20, 100)
	if err != nil {
		return err
	}

	var filter *uuid.UUID
	if companyID != uuid.Nil {
		filter = &companyID
	}
	items, err := h.uc.ListReviews(c.Context(), filter, limit, offset)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewReviewResponses(items))
}

func (h *ReviewHandler) Create(c fiber.Ctx) error {
	var req createReviewRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}
	rv, err := h.uc.CreateReview(c.Context(), middleware.Actor(c), usecase.CreateReviewInput{
		CompanyID: req.CompanyID,
		Content:   req.Content,
		Rating:    req.Rating,
		ParentID:  req.ParentID,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewReviewResponse(rv))
}

func (h *ReviewHandler) Reply(c fiber.Ctx) error {
	parentID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req replyRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}
	rv, err := h.uc.Reply(c.Context(), middleware.Actor(c), parentID, usecase.ReplyInput{
		Content: req.Content,
		Rating:  req.Rating,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewReviewResponse(rv))
}
