package handler

import (
	"codequest/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	appName string
}

func NewHealthHandler(appName string) *HealthHandler {
	return &HealthHandler{appName: appName}
}

func (h *HealthHandler) Handle(c fiber.Ctx) error {
	data := map[string]any{
		"service": h.appName,
		"status":  "ok",
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
