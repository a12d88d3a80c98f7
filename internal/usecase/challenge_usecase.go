package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"codequest/internal/domain/challenge"
)

var (
	ErrChallengeNotFound = errors.New("challenge not found")
	ErrAttemptNotFound   = errors.New("attempt not found")
	ErrAttemptExists     = errors.New("attempt already exists")
	ErrForbidden         = errors.New("forbidden")
)

type StartAttemptInput struct {
	ChallengeID uuid.UUID
	Status      string
	Solution    string
}

type UpdateAttemptInput struct {
	Status   *string
	Solution *string
}

type ChallengeUsecase interface {
	ListChallenges(ctx context.Context) ([]challenge.Challenge, error)
	GetChallenge(ctx context.Context, id uuid.UUID) (challenge.Challenge, error)
	ListAttempts(ctx context.Context, userID uuid.UUID) ([]challenge.Attempt, error)
	StartAttempt(ctx context.Context, userID uuid.UUID, in StartAttemptInput) (challenge.Attempt, error)
	UpdateAttempt(ctx context.Context, userID, attemptID uuid.UUID, in UpdateAttemptInput) (challenge.Attempt, error)
}

type Challenges struct {
	challenges challenge.Repository
	attempts   challenge.AttemptRepository
	now        func() time.Time
}

func NewChallengeUsecase(challenges challenge.Repository, attempts challenge.AttemptRepository) *Challenges {
	return &Challenges{challenges: challenges, attempts: attempts, now: time.Now}
}

func (c *Challenges) ListChallenges(ctx context.Context) ([]challenge.Challenge, error) {
	out, err := c.challenges.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (c *Challenges) GetChallenge(ctx context.Context, id uuid.UUID) (challenge.Challenge, error) {
	ch, err := c.challenges.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, challenge.ErrNotFound) {
			return challenge.Challenge{}, ErrChallengeNotFound
		}
		return challenge.Challenge{}, ErrInternal
	}
	return ch, nil
}

func (c *Challenges) ListAttempts(ctx context.Context, userID uuid.UUID) ([]challenge.Attempt, error) {
	out, err := c.attempts.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (c *Challenges) StartAttempt(ctx context.Context, userID uuid.UUID, in StartAttemptInput) (challenge.Attempt, error) {
	if in.ChallengeID == uuid.Nil {
		return challenge.Attempt{}, ErrInvalidInput
	}
	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = challenge.StatusInProgress
	}
	if !challenge.ValidStatus(status) {
		return challenge.Attempt{}, ErrInvalidInput
	}

	if _, err := c.challenges.GetByID(ctx, in.ChallengeID); err != nil {
		if errors.Is(err, challenge.ErrNotFound) {
			return challenge.Attempt{}, ErrChallengeNotFound
		}
		return challenge.Attempt{}, ErrInternal
	}

	if _, err := c.attempts.GetByUserAndChallenge(ctx, userID, in.ChallengeID); err == nil {
		return challenge.Attempt{}, ErrAttemptExists
	} else if !errors.Is(err, challenge.ErrAttemptNotFound) {
		return challenge.Attempt{}, ErrInternal
	}

	now := c.now().UTC()
	a := challenge.Attempt{
		ID:          uuid.New(),
		UserID:      userID,
		ChallengeID: in.ChallengeID,
		Status:      status,
		Solution:    in.Solution,
		CreatedAt:   now,
	}
	if status == challenge.StatusCompleted {
		a.CompletedAt = &now
	}

	if err := c.attempts.Create(ctx, a); err != nil {
		return challenge.Attempt{}, ErrInternal
	}
	return a, nil
}

func (c *Challenges) UpdateAttempt(ctx context.Context, userID, attemptID uuid.UUID, in UpdateAttemptInput) (challenge.Attempt, error) {
	a, err := c.attempts.GetByID(ctx, attemptID)
	if err != nil {
		if errors.Is(err, challenge.ErrAttemptNotFound) {
			return challenge.Attempt{}, ErrAttemptNotFound
		}
		return challenge.Attempt{}, ErrInternal
	}
	if a.UserID != userID {
		return challenge.Attempt{}, ErrForbidden
	}

	if in.Status != nil {
		status := strings.TrimSpace(*in.Status)
		if !challenge.ValidStatus(status) {
			return challenge.Attempt{}, ErrInvalidInput
		}
		if status == challenge.StatusCompleted && a.Status != challenge.StatusCompleted {
			now := c.now().UTC()
			a.CompletedAt = &now
		}
		a.Status = status
	}
	if in.Solution != nil {
		a.Solution = *in.Solution
	}

	if err := c.attempts.Update(ctx, a); err != nil {
		return challenge.Attempt{}, ErrInternal
	}
	return a, nil
}

var _ ChallengeUsecase = (*Challenges)(nil)
