package challenge

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("challenge not found")
	ErrAttemptNotFound = errors.New("challenge attempt not found")
)

type Repository interface {
	List(ctx context.Context) ([]Challenge, error)
	GetByID(ctx context.Context, id uuid.UUID) (Challenge, error)
	Create(ctx context.Context, c Challenge) error
}

type AttemptRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Attempt, error)
	GetByID(ctx context.Context, id uuid.UUID) (Attempt, error)
	GetByUserAndChallenge(ctx context.Context, userID, challengeID uuid.UUID) (Attempt, error)
	Create(ctx context.Context, a Attempt) error
	Update(ctx context.Context, a Attempt) error
}
