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

type ChallengeHandler struct {
	uc usecase.ChallengeUsecase
}

type startAttemptRequest struct {
	ChallengeID string `json:"challenge_id"`
	Status      string `json:"status"`
	Solution    string `json:"solution"`
}

type updateAttemptRequest struct {
	Status   *string `json:"status"`
	Solution *string `json:"solution"`
}

func NewChallengeHandler(uc usecase.ChallengeUsecase) *ChallengeHandler {
	return &ChallengeHandler{uc: uc}
}

func (h *ChallengeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/:id", h.Get)
}

// RegisterAttemptRoutes mounts the caller-scoped attempt endpoints.
func (h *ChallengeHandler) RegisterAttemptRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.ListAttempts)
	r.Post("/", h.StartAttempt)
	r.Put("/:id", h.UpdateAttempt)
}

func (h *ChallengeHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListChallenges(c.Context())
	if err != nil {
		return mapChallengeUsecaseError(err)
	}

	out := make([]dto.ChallengeResponse, 0, len(items))
	for _, ch := range items {
		out = append(out, dto.NewChallengeResponse(ch))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *ChallengeHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid challenge id", nil, err)
	}

	ch, err := h.uc.GetChallenge(c.Context(), id)
	if err != nil {
		return mapChallengeUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewChallengeResponse(ch))
}

func (h *ChallengeHandler) ListAttempts(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.ListAttempts(c.Context(), userID)
	if err != nil {
		return mapChallengeUsecaseError(err)
	}

	out := make([]dto.AttemptResponse, 0, len(items))
	for _, a := range items {
		out = append(out, dto.NewAttemptResponse(a))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *ChallengeHandler) StartAttempt(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req startAttemptRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	challengeID, err := uuid.Parse(req.ChallengeID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid challenge id", nil, err)
	}

	a, err := h.uc.StartAttempt(c.Context(), userID, usecase.StartAttemptInput{
		ChallengeID: challengeID,
		Status:      req.Status,
		Solution:    req.Solution,
	})
	if err != nil {
		return mapChallengeUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewAttemptResponse(a))
}

func (h *ChallengeHandler) UpdateAttempt(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	attemptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid attempt id", nil, err)
	}

	var req updateAttemptRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	a, err := h.uc.UpdateAttempt(c.Context(), userID, attemptID, usecase.UpdateAttemptInput{
		Status:   req.Status,
		Solution: req.Solution,
	})
	if err != nil {
		return mapChallengeUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAttemptResponse(a))
}

func mapChallengeUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrChallengeNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Challenge not found", nil, err)
	case errors.Is(err, usecase.ErrAttemptNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Attempt not found", nil, err)
	case errors.Is(err, usecase.ErrAttemptExists):
		return middleware.NewAppError(fiber.StatusConflict, "Attempt already exists", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
