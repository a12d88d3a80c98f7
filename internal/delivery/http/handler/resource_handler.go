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

type ResourceHandler struct {
	uc usecase.ResourceUsecase
}

type startProgressRequest struct {
	ResourceID string `json:"resource_id"`
	Percent    int    `json:"percent"`
	Status     string `json:"status"`
}

type updateProgressRequest struct {
	Percent *int    `json:"percent"`
	Status  *string `json:"status"`
}

func NewResourceHandler(uc usecase.ResourceUsecase) *ResourceHandler {
	return &ResourceHandler{uc: uc}
}

func (h *ResourceHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/:id", h.Get)
}

// RegisterProgressRoutes mounts the caller-scoped progress endpoints.
func (h *ResourceHandler) RegisterProgressRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.ListProgress)
	r.Post("/", h.StartProgress)
	r.Put("/:id", h.UpdateProgress)
}

func (h *ResourceHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListResources(c.Context())
	if err != nil {
		return mapResourceUsecaseError(err)
	}

	out := make([]dto.ResourceResponse, 0, len(items))
	for _, res := range items {
		out = append(out, dto.NewResourceResponse(res))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *ResourceHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid resource id", nil, err)
	}

	res, err := h.uc.GetResource(c.Context(), id)
	if err != nil {
		return mapResourceUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewResourceResponse(res))
}

func (h *ResourceHandler) ListProgress(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.ListProgress(c.Context(), userID)
	if err != nil {
		return mapResourceUsecaseError(err)
	}

	out := make([]dto.ProgressResponse, 0, len(items))
	for _, p := range items {
		out = append(out, dto.NewProgressResponse(p))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *ResourceHandler) StartProgress(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req startProgressRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	resourceID, err := uuid.Parse(req.ResourceID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid resource id", nil, err)
	}

	p, err := h.uc.StartProgress(c.Context(), userID, usecase.StartProgressInput{
		ResourceID: resourceID,
		Percent:    req.Percent,
		Status:     req.Status,
	})
	if err != nil {
		return mapResourceUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewProgressResponse(p))
}

func (h *ResourceHandler) UpdateProgress(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	progressID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid progress id", nil, err)
	}

	var req updateProgressRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.uc.UpdateProgress(c.Context(), userID, progressID, usecase.UpdateProgressInput{
		Percent: req.Percent,
		Status:  req.Status,
	})
	if err != nil {
		return mapResourceUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProgressResponse(p))
}

func mapResourceUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrResourceNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Learning resource not found", nil, err)
	case errors.Is(err, usecase.ErrProgressNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Progress record not found", nil, err)
	case errors.Is(err, usecase.ErrProgressExists):
		return middleware.NewAppError(fiber.StatusConflict, "Progress record already exists", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
