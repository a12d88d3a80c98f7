package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"codequest/internal/domain/challenge"
	"codequest/internal/infrastructure/persistence/memory"
)

func seedChallenge(t *testing.T, store *memory.ChallengeStore) challenge.Challenge {
	t.Helper()
	ch := challenge.Challenge{
		ID:        uuid.New(),
		Title:     "Two Sum",
		CreatedAt: time.Now().UTC(),
	}
	if err := store.Create(context.Background(), ch); err != nil {
		t.Fatalf("seed challenge: %v", err)
	}
	return ch
}

func TestChallenges_StartAttempt(t *testing.T) {
	store := memory.NewChallengeStore()
	uc := NewChallengeUsecase(store, memory.NewAttemptStore())
	ch := seedChallenge(t, store)
	userID := uuid.New()

	a, err := uc.StartAttempt(context.Background(), userID, StartAttemptInput{ChallengeID: ch.ID})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if a.Status != challenge.StatusInProgress {
		t.Fatalf("expected default status, got %q", a.Status)
	}
	if a.CompletedAt != nil {
		t.Fatal("CompletedAt set on a fresh attempt")
	}

	if _, err := uc.StartAttempt(context.Background(), userID, StartAttemptInput{ChallengeID: ch.ID}); !errors.Is(err, ErrAttemptExists) {
		t.Fatalf("expected ErrAttemptExists, got %v", err)
	}
}

func TestChallenges_StartAttempt_UnknownChallenge(t *testing.T) {
	uc := NewChallengeUsecase(memory.NewChallengeStore(), memory.NewAttemptStore())

	if _, err := uc.StartAttempt(context.Background(), uuid.New(), StartAttemptInput{ChallengeID: uuid.New()}); !errors.Is(err, ErrChallengeNotFound) {
		t.Fatalf("expected ErrChallengeNotFound, got %v", err)
	}
}

func TestChallenges_StartAttempt_InvalidStatus(t *testing.T) {
	store := memory.NewChallengeStore()
	uc := NewChallengeUsecase(store, memory.NewAttemptStore())
	ch := seedChallenge(t, store)

	if _, err := uc.StartAttempt(context.Background(), uuid.New(), StartAttemptInput{ChallengeID: ch.ID, Status: "Winning"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestChallenges_UpdateAttempt(t *testing.T) {
	store := memory.NewChallengeStore()
	uc := NewChallengeUsecase(store, memory.NewAttemptStore())
	ch := seedChallenge(t, store)
	userID := uuid.New()

	a, err := uc.StartAttempt(context.Background(), userID, StartAttemptInput{ChallengeID: ch.ID})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	completed := challenge.StatusCompleted
	solution := "func twoSum(nums []int, target int) []int { return nil }"
	updated, err := uc.UpdateAttempt(context.Background(), userID, a.ID, UpdateAttemptInput{Status: &completed, Solution: &solution})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != challenge.StatusCompleted {
		t.Fatalf("status not updated: %q", updated.Status)
	}
	if updated.CompletedAt == nil {
		t.Fatal("CompletedAt not stamped on completion")
	}
	if updated.Solution != solution {
		t.Fatalf("solution not updated: %q", updated.Solution)
	}
}

func TestChallenges_UpdateAttempt_WrongUser(t *testing.T) {
	store := memory.NewChallengeStore()
	uc := NewChallengeUsecase(store, memory.NewAttemptStore())
	ch := seedChallenge(t, store)

	a, err := uc.StartAttempt(context.Background(), uuid.New(), StartAttemptInput{ChallengeID: ch.ID})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	status := challenge.StatusCompleted
	if _, err := uc.UpdateAttempt(context.Background(), uuid.New(), a.ID, UpdateAttemptInput{Status: &status}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestChallenges_UpdateAttempt_Missing(t *testing.T) {
	uc := NewChallengeUsecase(memory.NewChallengeStore(), memory.NewAttemptStore())

	status := challenge.StatusCompleted
	if _, err := uc.UpdateAttempt(context.Background(), uuid.New(), uuid.New(), UpdateAttemptInput{Status: &status}); !errors.Is(err, ErrAttemptNotFound) {
		t.Fatalf("expected ErrAttemptNotFound, got %v", err)
	}
}
