package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"codequest/internal/config"
	"codequest/internal/database"
	"codequest/internal/database/migration"
	dbpostgres "codequest/internal/database/postgres"
	v1 "codequest/internal/delivery/http/routes/v1"
	"codequest/internal/domain/challenge"
	"codequest/internal/domain/hackathon"
	"codequest/internal/domain/resource"
	"codequest/internal/domain/user"
	"codequest/internal/infrastructure/cache"
	"codequest/internal/infrastructure/openrouter"
	"codequest/internal/infrastructure/persistence/memory"
	pgpersist "codequest/internal/infrastructure/persistence/postgres"
	"codequest/internal/pkg/jwt"
	"codequest/internal/usecase"
	"codequest/internal/ws"
)

// Container wires the storage, cache, extractor and websocket hub once at
// startup. Every handler gets its dependencies from here; nothing reaches
// for globals.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis
	Hub   *ws.Hub

	JWT       jwt.Service
	Extractor usecase.SkillExtractor

	Users        user.Repository
	Challenges   challenge.Repository
	Attempts     challenge.AttemptRepository
	Resources    resource.Repository
	Progress     resource.ProgressRepository
	Hackathons   hackathon.Repository
	Participants hackathon.ParticipantRepository
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger}

	c.JWT = jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	c.Cache = cache.NewRedis(logger)
	c.Extractor = openrouter.NewClient(cfg.OpenRouter, logger)

	c.Hub = ws.NewHub(logger)
	go c.Hub.Run()
	ws.SetDefaultHub(c.Hub)

	if err := c.initStorage(); err != nil {
		return nil, err
	}

	return c, nil
}

// initStorage picks the user store per STORAGE_DRIVER. Challenge, resource
// and hackathon catalogs are in-memory and seeded at startup regardless of
// driver.
func (c *Container) initStorage() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch c.Config.Storage.Driver {
	case config.StorageDriverPostgres:
		db, err := dbpostgres.Connect(ctx, c.Config.Storage.Database)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		if err := migration.Run(ctx, db.SQLDB()); err != nil {
			_ = db.Close()
			return fmt.Errorf("run migrations: %w", err)
		}
		c.DB = db
		c.Users = pgpersist.NewUserRepository(db)
	default:
		c.Users = memory.NewUserStore()
	}

	challenges := memory.NewChallengeStore()
	resources := memory.NewResourceStore()
	hackathons := memory.NewHackathonStore()
	if err := memory.Seed(ctx, challenges, resources, hackathons); err != nil {
		return fmt.Errorf("seed catalogs: %w", err)
	}

	c.Challenges = challenges
	c.Attempts = memory.NewAttemptStore()
	c.Resources = resources
	c.Progress = memory.NewProgressStore()
	c.Hackathons = hackathons
	c.Participants = memory.NewParticipantStore()

	return nil
}

// RouteDeps exposes the wired dependencies in the shape the v1 routes want.
func (c *Container) RouteDeps() v1.Deps {
	return v1.Deps{
		Config:       c.Config,
		Logger:       c.Logger,
		JWT:          c.JWT,
		Extractor:    c.Extractor,
		Cache:        c.Cache,
		Hub:          c.Hub,
		Users:        c.Users,
		Challenges:   c.Challenges,
		Attempts:     c.Attempts,
		Resources:    c.Resources,
		Progress:     c.Progress,
		Hackathons:   c.Hackathons,
		Participants: c.Participants,
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
