package handler

import (
	"errors"
	"strconv"

	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/response"
	"jobboard/internal/policy"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// mapUsecaseError translates workflow errors into HTTP errors. Validation
// failures carry the per-field reasons as data.
func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var ve *usecase.ValidationError
	switch {
	case errors.As(err, &ve):
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", ve.Fields, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
	case errors.Is(err, usecase.ErrConflict):
		return middleware.NewAppError(fiber.StatusConflict, "Conflict", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func badRequest(err error) error {
	return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
}

func requireActor(c fiber.Ctx) (policy.Actor, error) {
	a := middleware.Actor(c)
	if !a.Authenticated() {
		return a, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return a, nil
}

func parseUUIDParam(c fiber.Ctx, key string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(key))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+key, map[string]string{key: "invalid_uuid"}, err)
	}
	return id, nil
}

func parseUUIDQuery(c fiber.Ctx, key string) (uuid.UUID, error) {
	raw := c.Query(key)
	if raw == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+key, map[string]string{key: "invalid_uuid"}, err)
	}
	return id, nil
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+key, map[string]string{key: "invalid_integer"}, err)
	}
	return v, nil
}

func parseQueryFloat(c fiber.Ctx, key string) (*float64, error) {
	s := c.Query(key)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+key, map[string]string{key: "invalid_number"}, err)
	}
	return &v, nil
}

// pagination reads limit and offset, clamping limit to [1, maxLimit].
func pagination(c fiber.Ctx, defaultLimit, maxLimit int) (int, int, error) {
	limit, err := parseQueryIntStrict(c, "limit", defaultLimit)
	if err != nil {
		return 0, 0, err
	}
	offset, err := parseQueryIntStrict(c, "offset", 0)
	if err != nil {
		return 0, 0, err
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset, nil
}
