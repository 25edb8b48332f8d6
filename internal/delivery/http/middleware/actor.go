package middleware

import (
	"errors"

	"jobboard/internal/policy"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const CtxActorKey = "actor"

type ActorMiddleware struct {
	resolver usecase.ActorResolver
}

func NewActorMiddleware(resolver usecase.ActorResolver) *ActorMiddleware {
	return &ActorMiddleware{resolver: resolver}
}

// Middleware loads the authenticated user with the company or candidate
// profile its role owns. Anonymous requests get the zero Actor.
func (m *ActorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		userID, ok := c.Locals(CtxUserIDKey).(uuid.UUID)
		if !ok || userID == uuid.Nil {
			c.Locals(CtxActorKey, policy.Actor{})
			return c.Next()
		}

		actor, err := m.resolver.Resolve(c.Context(), userID)
		if err != nil {
			if errors.Is(err, usecase.ErrNotFound) {
				return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
			}
			return NewAppError(fiber.StatusInternalServerError, "", nil, err)
		}
		c.Locals(CtxActorKey, actor)
		return c.Next()
	}
}

// Actor returns the actor stored by ActorMiddleware, or the zero Actor.
func Actor(c fiber.Ctx) policy.Actor {
	a, _ := c.Locals(CtxActorKey).(policy.Actor)
	return a
}

// RequireActor rejects anonymous requests. It runs after ActorMiddleware.
func RequireActor(c fiber.Ctx) error {
	if !Actor(c).Authenticated() {
		return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return c.Next()
}
