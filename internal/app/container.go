package app

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"jobboard/internal/config"
	"jobboard/internal/database"
	dbpostgres "jobboard/internal/database/postgres"
	"jobboard/internal/database/seeder"
	"jobboard/internal/infrastructure/cache"
	"jobboard/internal/infrastructure/mail"
	"jobboard/internal/infrastructure/persistence/postgres"
	"jobboard/internal/notify"
	"jobboard/internal/pkg/jwt"
	"jobboard/internal/policy"
	"jobboard/internal/repository"
	"jobboard/internal/usecase"
)

// Container owns the process-wide dependencies: the pool, the cache, the
// mailer and every usecase built on top of them.
type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Cache  *cache.Redis
	JWT    jwt.Service
	Gate   *policy.Gate

	Actors        *usecase.Actors
	Auth          *usecase.Auth
	Users         *usecase.User
	Industries    *usecase.Industries
	Companies     *usecase.Companies
	Candidates    *usecase.Candidates
	Jobs          *usecase.Jobs
	Applications  *usecase.Applications
	Follows       *usecase.Follows
	Reviews       *usecase.Reviews
	Notifications *usecase.Notifications
	Chats         *usecase.Chats

	closers []func() error
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags|log.Lmicroseconds)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	c := &Container{Config: cfg, Logger: logger, DB: db}
	c.closers = append(c.closers, db.Close)

	// User statements are prepared up front, so the schema must exist first.
	if err := Migrate(ctx, cfg, logger, db); err != nil {
		_ = c.Close()
		return nil, err
	}
	if err := (seeder.Runner{Seeders: seeder.Defaults(), Logger: logger}).Run(ctx, db); err != nil {
		_ = c.Close()
		return nil, err
	}

	users, err := postgres.NewUserRepository(ctx, db)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.closers = append(c.closers, users.Close)

	mailer, err := mail.New(cfg.Mail, logger)
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	c.Cache = cache.NewRedis(cfg.Redis, logger)
	c.closers = append(c.closers, c.Cache.Close)

	c.JWT = jwt.NewHMACService(cfg.App.AppName, cfg.JWT)

	companies := repository.NewPostgresCompanyRepository(db)
	profiles := repository.NewPostgresCandidateProfileRepository(db)
	industries := repository.NewPostgresIndustryRepository(db)
	jobs := repository.NewPostgresJobRepository(db)
	applications := repository.NewPostgresApplicationRepository(db)
	follows := repository.NewPostgresFollowRepository(db)
	reviews := repository.NewPostgresReviewRepository(db)
	notifications := repository.NewPostgresNotificationRepository(db)
	chats := repository.NewPostgresChatRepository(db)

	c.Gate = policy.NewDefaultGate(applications)

	dispatcher := notify.NewDispatcher(notifications, mailer, notify.Options{
		Workers:    cfg.Mail.Workers,
		RatePerSec: cfg.Mail.RatePerSec,
	}, logger)

	c.Actors = usecase.NewActorResolver(users, companies, profiles)
	c.Auth = usecase.NewAuthUsecase(users, c.JWT)
	c.Users = usecase.NewUserUsecase(users)
	c.Industries = usecase.NewIndustryUsecase(industries)
	c.Companies = usecase.NewCompanyUsecase(companies, c.Gate)
	c.Candidates = usecase.NewCandidateUsecase(profiles, c.Gate)
	c.Jobs = usecase.NewJobUsecase(usecase.JobsDeps{
		Jobs:         jobs,
		Industries:   industries,
		Follows:      follows,
		Applications: applications,
		Notifier:     dispatcher,
		Cache:        c.Cache,
		Gate:         c.Gate,
		Logger:       logger,
	})
	c.Applications = usecase.NewApplicationUsecase(applications, jobs, c.Gate)
	c.Follows = usecase.NewFollowUsecase(follows, companies, c.Gate)
	c.Reviews = usecase.NewReviewUsecase(reviews, companies, c.Gate)
	c.Notifications = usecase.NewNotificationUsecase(notifications, c.Gate)
	c.Chats = usecase.NewChatUsecase(chats, jobs, companies, users, c.Gate)

	return c, nil
}

// Close releases resources in reverse order of acquisition.
func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}
