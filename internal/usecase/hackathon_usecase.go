package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"codequest/internal/domain/hackathon"
)

var (
	ErrHackathonNotFound = errors.New("hackathon not found")
	ErrAlreadyJoined     = errors.New("already joined hackathon")
	ErrHackathonFull     = errors.New("hackathon is full")
)

type JoinHackathonInput struct {
	ProjectName        string
	ProjectDescription string
	RepositoryURL      string
}

type HackathonUsecase interface {
	ListHackathons(ctx context.Context) ([]hackathon.Hackathon, error)
	GetHackathon(ctx context.Context, id uuid.UUID) (hackathon.Hackathon, error)
	ListParticipants(ctx context.Context, hackathonID uuid.UUID) ([]hackathon.Participant, error)
	ListUserHackathons(ctx context.Context, userID uuid.UUID) ([]hackathon.Participant, error)
	Join(ctx context.Context, userID, hackathonID uuid.UUID, in JoinHackathonInput) (hackathon.Participant, error)
}

type Hackathons struct {
	hackathons   hackathon.Repository
	participants hackathon.ParticipantRepository
	now          func() time.Time
}

func NewHackathonUsecase(hackathons hackathon.Repository, participants hackathon.ParticipantRepository) *Hackathons {
	return &Hackathons{hackathons: hackathons, participants: participants, now: time.Now}
}

func (h *Hackathons) ListHackathons(ctx context.Context) ([]hackathon.Hackathon, error) {
	out, err := h.hackathons.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (h *Hackathons) GetHackathon(ctx context.Context, id uuid.UUID) (hackathon.Hackathon, error) {
	hk, err := h.hackathons.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, hackathon.ErrNotFound) {
			return hackathon.Hackathon{}, ErrHackathonNotFound
		}
		return hackathon.Hackathon{}, ErrInternal
	}
	return hk, nil
}

func (h *Hackathons) ListParticipants(ctx context.Context, hackathonID uuid.UUID) ([]hackathon.Participant, error) {
	if _, err := h.hackathons.GetByID(ctx, hackathonID); err != nil {
		if errors.Is(err, hackathon.ErrNotFound) {
			return nil, ErrHackathonNotFound
		}
		return nil, ErrInternal
	}

	out, err := h.participants.ListByHackathon(ctx, hackathonID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (h *Hackathons) ListUserHackathons(ctx context.Context, userID uuid.UUID) ([]hackathon.Participant, error) {
	out, err := h.participants.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (h *Hackathons) Join(ctx context.Context, userID, hackathonID uuid.UUID, in JoinHackathonInput) (hackathon.Participant, error) {
	hk, err := h.hackathons.GetByID(ctx, hackathonID)
	if err != nil {
		if errors.Is(err, hackathon.ErrNotFound) {
			return hackathon.Participant{}, ErrHackathonNotFound
		}
		return hackathon.Participant{}, ErrInternal
	}

	if _, err := h.participants.GetByUserAndHackathon(ctx, userID, hackathonID); err == nil {
		return hackathon.Participant{}, ErrAlreadyJoined
	} else if !errors.Is(err, hackathon.ErrNotFound) {
		return hackathon.Participant{}, ErrInternal
	}

	if hk.MaxParticipants > 0 {
		existing, err := h.participants.ListByHackathon(ctx, hackathonID)
		if err != nil {
			return hackathon.Participant{}, ErrInternal
		}
		if len(existing) >= hk.MaxParticipants {
			return hackathon.Participant{}, ErrHackathonFull
		}
	}

	p := hackathon.Participant{
		ID:                 uuid.New(),
		UserID:             userID,
		HackathonID:        hackathonID,
		ProjectName:        strings.TrimSpace(in.ProjectName),
		ProjectDescription: strings.TrimSpace(in.ProjectDescription),
		RepositoryURL:      strings.TrimSpace(in.RepositoryURL),
		JoinedAt:           h.now().UTC(),
	}

	if err := h.participants.Create(ctx, p); err != nil {
		return hackathon.Participant{}, ErrInternal
	}
	return p, nil
}

var _ HackathonUsecase = (*Hackathons)(nil)
