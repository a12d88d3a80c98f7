package handler

import (
	"errors"

	"codequest/internal/delivery/http/dto"
	"codequest/internal/delivery/http/middleware"
	"codequest/internal/pkg/response"
	"codequest/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type HackathonHandler struct {
	uc usecase.HackathonUsecase
}

type joinHackathonRequest struct {
	ProjectName        string `json:"project_name"`
	ProjectDescription string `json:"project_description"`
	RepositoryURL      string `json:"repository_url"`
}

func NewHackathonHandler(uc usecase.HackathonUsecase) *HackathonHandler {
	return &HackathonHandler{uc: uc}
}

func (h *HackathonHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/:id", h.Get)
	r.Get("/:id/participants", h.ListParticipants)
	r.Post("/:id/participants", h.Join)
}

// RegisterUserRoutes mounts the caller-scoped hackathon endpoints.
func (h *HackathonHandler) RegisterUserRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.ListMine)
}

func (h *HackathonHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListHackathons(c.Context())
	if err != nil {
		return mapHackathonUsecaseError(err)
	}

	out := make([]dto.HackathonResponse, 0, len(items))
	for _, hk := range items {
		out = append(out, dto.NewHackathonResponse(hk))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *HackathonHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid hackathon id", nil, err)
	}

	hk, err := h.uc.GetHackathon(c.Context(), id)
	if err != nil {
		return mapHackathonUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewHackathonResponse(hk))
}

func (h *HackathonHandler) ListParticipants(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid hackathon id", nil, err)
	}

	items, err := h.uc.ListParticipants(c.Context(), id)
	if err != nil {
		return mapHackathonUsecaseError(err)
	}

	out := make([]dto.ParticipantResponse, 0, len(items))
	for _, p := range items {
		out = append(out, dto.NewParticipantResponse(p))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *HackathonHandler) ListMine(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.ListUserHackathons(c.Context(), userID)
	if err != nil {
		return mapHackathonUsecaseError(err)
	}

	out := make([]dto.ParticipantResponse, 0, len(items))
	for _, p := range items {
		out = append(out, dto.NewParticipantResponse(p))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *HackathonHandler) Join(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid hackathon id", nil, err)
	}

	var req joinHackathonRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.uc.Join(c.Context(), userID, id, usecase.JoinHackathonInput{
		ProjectName:        req.ProjectName,
		ProjectDescription: req.ProjectDescription,
		RepositoryURL:      req.RepositoryURL,
	})
	if err != nil {
		return mapHackathonUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewParticipantResponse(p))
}

func mapHackathonUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrHackathonNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Hackathon not found", nil, err)
	case errors.Is(err, usecase.ErrAlreadyJoined):
		return middleware.NewAppError(fiber.StatusConflict, "Already joined this hackathon", nil, err)
	case errors.Is(err, usecase.ErrHackathonFull):
		return middleware.NewAppError(fiber.StatusConflict, "Hackathon is full", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
