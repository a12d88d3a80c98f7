package handler

import (
	"codequest/internal/delivery/http/dto"
	"codequest/internal/delivery/http/middleware"
	"codequest/internal/pkg/response"
	"codequest/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type LeaderboardHandler struct {
	uc usecase.LeaderboardUsecase
}

func NewLeaderboardHandler(uc usecase.LeaderboardUsecase) *LeaderboardHandler {
	return &LeaderboardHandler{uc: uc}
}

func (h *LeaderboardHandler) Handle(c fiber.Ctx) error {
	users, err := h.uc.Leaderboard(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.NewUserResponse(u))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
