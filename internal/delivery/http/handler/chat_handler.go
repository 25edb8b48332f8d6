package handler

import (
	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ChatHandler struct {
	uc usecase.ChatUsecase
}

type openRoomRequest struct {
	JobID       *uuid.UUID `json:"job_id"`
	CandidateID *uuid.UUID `json:"candidate_id"`
}

type postMessageRequest struct {
	Content string `json:"content"`
}

func NewChatHandler(uc usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

func (h *ChatHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.ListRooms)
	r.Post("/", h.OpenRoom)
	r.Get("/:id/messages", h.ListMessages)
	r.Post("/:id/messages", h.PostMessage)
}

func (h *ChatHandler) ListRooms(c fiber.Ctx) error {
	rooms, err := h.uc.ListRooms(c.Context(), middleware.Actor(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewChatRoomResponses(rooms))
}

// OpenRoom answers 201 when a room was created and 200 when the existing
// room for the same participants was returned.
func (h *ChatHandler) OpenRoom(c fiber.Ctx) error {
	var req openRoomRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}
	room, created, err := h.uc.OpenRoom(c.Context(), middleware.Actor(c), usecase.OpenRoomInput{
		JobID:       req.JobID,
		CandidateID: req.CandidateID,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	if created {
		return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewChatRoomResponse(room))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewChatRoomResponse(room))
}

func (h *ChatHandler) ListMessages(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	limit, offset, err := pagination(c, 50, 200)
	if err != nil {
		return err
	}
	msgs, err := h.uc.ListMessages(c.Context(), middleware.Actor(c), id, limit, offset)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewChatMessageResponses(msgs))
}

func (h *ChatHandler) PostMessage(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req postMessageRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}
	m, err := h.uc.PostMessage(c.Context(), middleware.Actor(c), id, req.Content)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewChatMessageResponse(m))
}
