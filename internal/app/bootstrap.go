package app

import (
	"fmt"
	"strings"

	"jobboard/internal/config"
	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/delivery/http/routes"
	v1 "jobboard/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// New builds the HTTP application on top of an assembled container.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	health := handler.NewHealthHandler(c.DB, c.Cache)
	api := v1.Handlers{
		Auth:          middleware.NewAuthMiddleware(c.JWT),
		Actor:         middleware.NewActorMiddleware(c.Actors),
		AuthH:         handler.NewAuthHandler(c.Auth),
		Users:         handler.NewUserHandler(c.Users),
		Industries:    handler.NewIndustryHandler(c.Industries),
		Companies:     handler.NewCompanyHandler(c.Companies, c.Reviews),
		Jobs:          handler.NewJobsHandler(c.Jobs),
		Candidates:    handler.NewCandidateHandler(c.Candidates),
		Applications:  handler.NewApplicationHandler(c.Applications),
		Follows:       handler.NewFollowHandler(c.Follows),
		Reviews:       handler.NewReviewHandler(c.Reviews),
		Notifications: handler.NewNotificationHandler(c.Notifications),
		Chats:         handler.NewChatHandler(c.Chats),
	}
	routes.NewRegistry(health, api).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
