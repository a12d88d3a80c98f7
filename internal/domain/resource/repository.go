package resource

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound         = errors.New("learning resource not found")
	ErrProgressNotFound = errors.New("progress record not found")
)

type Repository interface {
	List(ctx context.Context) ([]LearningResource, error)
	GetByID(ctx context.Context, id uuid.UUID) (LearningResource, error)
	Create(ctx context.Context, r LearningResource) error
}

type ProgressRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Progress, error)
	GetByID(ctx context.Context, id uuid.UUID) (Progress, error)
	GetByUserAndResource(ctx context.Context, userID, resourceID uuid.UUID) (Progress, error)
	Create(ctx context.Context, p Progress) error
	Update(ctx context.Context, p Progress) error
}
