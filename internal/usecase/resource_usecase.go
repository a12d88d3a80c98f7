package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"codequest/internal/domain/resource"
)

var (
	ErrResourceNotFound = errors.New("learning resource not found")
	ErrProgressNotFound = errors.New("progress record not found")
	ErrProgressExists   = errors.New("progress record already exists")
)

type StartProgressInput struct {
	ResourceID uuid.UUID
	Percent    int
	Status     string
}

type UpdateProgressInput struct {
	Percent *int
	Status  *string
}

type ResourceUsecase interface {
	ListResources(ctx context.Context) ([]resource.LearningResource, error)
	GetResource(ctx context.Context, id uuid.UUID) (resource.LearningResource, error)
	ListProgress(ctx context.Context, userID uuid.UUID) ([]resource.Progress, error)
	StartProgress(ctx context.Context, userID uuid.UUID, in StartProgressInput) (resource.Progress, error)
	UpdateProgress(ctx context.Context, userID, progressID uuid.UUID, in UpdateProgressInput) (resource.Progress, error)
}

type Resources struct {
	resources resource.Repository
	progress  resource.ProgressRepository
	now       func() time.Time
}

func NewResourceUsecase(resources resource.Repository, progress resource.ProgressRepository) *Resources {
	return &Resources{resources: resources, progress: progress, now: time.Now}
}

func (r *Resources) ListResources(ctx context.Context) ([]resource.LearningResource, error) {
	out, err := r.resources.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (r *Resources) GetResource(ctx context.Context, id uuid.UUID) (resource.LearningResource, error) {
	res, err := r.resources.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			return resource.LearningResource{}, ErrResourceNotFound
		}
		return resource.LearningResource{}, ErrInternal
	}
	return res, nil
}

func (r *Resources) ListProgress(ctx context.Context, userID uuid.UUID) ([]resource.Progress, error) {
	out, err := r.progress.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (r *Resources) StartProgress(ctx context.Context, userID uuid.UUID, in StartProgressInput) (resource.Progress, error) {
	if in.ResourceID == uuid.Nil {
		return resource.Progress{}, ErrInvalidInput
	}
	if in.Percent < 0 || in.Percent > 100 {
		return resource.Progress{}, ErrInvalidInput
	}
	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = resource.StatusInProgress
	}
	if !resource.ValidStatus(status) {
		return resource.Progress{}, ErrInvalidInput
	}

	if _, err := r.resources.GetByID(ctx, in.ResourceID); err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			return resource.Progress{}, ErrResourceNotFound
		}
		return resource.Progress{}, ErrInternal
	}

	if _, err := r.progress.GetByUserAndResource(ctx, userID, in.ResourceID); err == nil {
		return resource.Progress{}, ErrProgressExists
	} else if !errors.Is(err, resource.ErrProgressNotFound) {
		return resource.Progress{}, ErrInternal
	}

	now := r.now().UTC()
	p := resource.Progress{
		ID:         uuid.New(),
		UserID:     userID,
		ResourceID: in.ResourceID,
		Percent:    in.Percent,
		Status:     status,
		StartedAt:  &now,
		CreatedAt:  now,
	}
	if status == resource.StatusCompleted {
		p.CompletedAt = &now
	}

	if err := r.progress.Create(ctx, p); err != nil {
		return resource.Progress{}, ErrInternal
	}
	return p, nil
}

func (r *Resources) UpdateProgress(ctx context.Context, userID, progressID uuid.UUID, in UpdateProgressInput) (resource.Progress, error) {
	p, err := r.progress.GetByID(ctx, progressID)
	if err != nil {
		if errors.Is(err, resource.ErrProgressNotFound) {
			return resource.Progress{}, ErrProgressNotFound
		}
		return resource.Progress{}, ErrInternal
	}
	if p.UserID != userID {
		return resource.Progress{}, ErrForbidden
	}

	if in.Percent != nil {
		if *in.Percent < 0 || *in.Percent > 100 {
			return resource.Progress{}, ErrInvalidInput
		}
		p.Percent = *in.Percent
	}
	if in.Status != nil {
		status := strings.TrimSpace(*in.Status)
		if !resource.ValidStatus(status) {
			return resource.Progress{}, ErrInvalidInput
		}
		if status == resource.StatusCompleted && p.Status != resource.StatusCompleted {
			now := r.now().UTC()
			p.CompletedAt = &now
		}
		p.Status = status
	}

	if err := r.progress.Update(ctx, p); err != nil {
		return resource.Progress{}, ErrInternal
	}
	return p, nil
}

var _ ResourceUsecase = (*Resources)(nil)
