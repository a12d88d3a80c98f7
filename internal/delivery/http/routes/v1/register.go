package v1

import (
	"log"

	"codequest/internal/config"
	"codequest/internal/delivery/http/handler"
	"codequest/internal/delivery/http/middleware"
	"codequest/internal/domain/challenge"
	"codequest/internal/domain/hackathon"
	"codequest/internal/domain/resource"
	"codequest/internal/domain/user"
	"codequest/internal/pkg/jwt"
	"codequest/internal/usecase"
	"codequest/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Deps carries everything the v1 API needs, wired once by the app container.
type Deps struct {
	Config config.Config
	Logger *log.Logger

	JWT       jwt.Service
	Extractor usecase.SkillExtractor
	Cache     usecase.LeaderboardCache
	Hub       *ws.Hub

	Users        user.Repository
	Challenges   challenge.Repository
	Attempts     challenge.AttemptRepository
	Resources    resource.Repository
	Progress     resource.ProgressRepository
	Hackathons   hackathon.Repository
	Participants hackathon.ParticipantRepository
}

func Register(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	authMw := middleware.NewAuthMiddleware(deps.JWT)

	authUC := usecase.NewAuthUsecase(deps.Users, deps.JWT, deps.Cache)
	profileUC := usecase.NewProfileUsecase(deps.Users, deps.Extractor, deps.Cache, deps.Logger)
	userUC := usecase.NewUserUsecase(deps.Users, deps.Cache)
	challengeUC := usecase.NewChallengeUsecase(deps.Challenges, deps.Attempts)
	resourceUC := usecase.NewResourceUsecase(deps.Resources, deps.Progress)
	hackathonUC := usecase.NewHackathonUsecase(deps.Hackathons, deps.Participants)
	leaderboardUC := usecase.NewLeaderboardUsecase(deps.Users, deps.Cache, deps.Logger)

	authHandler := handler.NewAuthHandler(authUC)
	profileHandler := handler.NewProfileHandler(profileUC)
	userHandler := handler.NewUserHandler(userUC)
	challengeHandler := handler.NewChallengeHandler(challengeUC)
	resourceHandler := handler.NewResourceHandler(resourceUC)
	hackathonHandler := handler.NewHackathonHandler(hackathonUC)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboardUC)
	wsHandler := ws.NewHandler(deps.Hub, deps.Logger)

	authHandler.RegisterRoutes(r.Group("/auth"))
	r.Get("/ws/leaderboard", wsHandler.HandleLeaderboardWS)

	protected := r.Group("", authMw.Middleware())

	profileHandler.RegisterRoutes(protected.Group("/profile"))
	userHandler.RegisterRoutes(protected.Group("/users"))
	challengeHandler.RegisterRoutes(protected.Group("/challenges"))
	challengeHandler.RegisterAttemptRoutes(protected.Group("/users/me/challenges"))
	resourceHandler.RegisterRoutes(protected.Group("/resources"))
	resourceHandler.RegisterProgressRoutes(protected.Group("/users/me/progress"))
	hackathonHandler.RegisterRoutes(protected.Group("/hackathons"))
	hackathonHandler.RegisterUserRoutes(protected.Group("/users/me/hackathons"))
	protected.Get("/leaderboard", leaderboardHandler.Handle)
}
