package v1

import (
	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Auth          *middleware.AuthMiddleware
	Actor         *middleware.ActorMiddleware
	AuthH         *handler.AuthHandler
	Users         *handler.UserHandler
	Industries    *handler.IndustryHandler
	Companies     *handler.CompanyHandler
	Jobs          *handler.JobsHandler
	Candidates    *handler.CandidateHandler
	Applications  *handler.ApplicationHandler
	Follows       *handler.FollowHandler
	Reviews       *handler.ReviewHandler
	Notifications *handler.NotificationHandler
	Chats         *handler.ChatHandler
}

// Register mounts the /api/v1 routes. Every group outside /auth and
// /industries resolves the caller, and bearer groups also reject
// anonymous callers. /auth stays untouched so /auth/refresh can carry a
// refresh token as bearer.
func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.AuthH != nil {
		h.AuthH.RegisterRoutes(r.Group("/auth"))
	}
	if h.Industries != nil {
		h.Industries.RegisterRoutes(r.Group("/industries"))
	}

	resolve := func(prefix string) fiber.Router {
		return r.Group(prefix, h.Auth.Optional(), h.Actor.Middleware())
	}
	bearer := func(prefix string) fiber.Router {
		return r.Group(prefix, h.Auth.Optional(), h.Actor.Middleware(), middleware.RequireActor)
	}

	if h.Companies != nil {
		h.Companies.RegisterRoutes(resolve("/companies"))
	}
	if h.Jobs != nil {
		h.Jobs.RegisterRoutes(resolve("/jobs"))
	}
	if h.Users != nil {
		h.Users.RegisterRoutes(bearer("/users"))
	}
	if h.Candidates != nil {
		h.Candidates.RegisterRoutes(bearer("/candidates"))
	}
	if h.Applications != nil {
		h.Applications.RegisterRoutes(bearer("/applications"))
	}
	if h.Follows != nil {
		h.Follows.RegisterRoutes(bearer("/follows"))
	}
	if h.Reviews != nil {
		h.Reviews.RegisterRoutes(bearer("/reviews"))
	}
	if h.Notifications != nil {
		h.Notifications.RegisterRoutes(bearer("/notifications"))
	}
	if h.Chats != nil {
		h.Chats.RegisterRoutes(bearer("/chatrooms"))
	}
}
