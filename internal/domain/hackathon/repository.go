package hackathon

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("hackathon not found")
	ErrAlreadyJoined = errors.New("already joined hackathon")
	ErrHackathonFull = errors.New("hackathon is full")
)

type Repository interface {
	List(ctx context.Context) ([]Hackathon, error)
	GetByID(ctx context.Context, id uuid.UUID) (Hackathon, error)
	Create(ctx context.Context, h Hackathon) error
}

type ParticipantRepository interface {
	ListByHackathon(ctx context.Context, hackathonID uuid.UUID) ([]Participant, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Participant, error)
	GetByUserAndHackathon(ctx context.Context, userID, hackathonID uuid.UUID) (Participant, error)
	Create(ctx context.Context, p Participant) error
}
