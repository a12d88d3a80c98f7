package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"codequest/internal/domain/challenge"
)

type ChallengeStore struct {
	mu    sync.RWMutex
	items map[uuid.UUID]challenge.Challenge
}

func NewChallengeStore() *ChallengeStore {
	return &ChallengeStore{items: make(map[uuid.UUID]challenge.Challenge)}
}

func (s *ChallengeStore) List(_ context.Context) ([]challenge.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]challenge.Challenge, 0, len(s.items))
	for _, c := range s.items {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *ChallengeStore) GetByID(_ context.Context, id uuid.UUID) (challenge.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.items[id]
	if !ok {
		return challenge.Challenge{}, challenge.ErrNotFound
	}
	return c, nil
}

func (s *ChallengeStore) Create(_ context.Context, c challenge.Challenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[c.ID] = c
	return nil
}

type AttemptStore struct {
	mu    sync.RWMutex
	items map[uuid.UUID]challenge.Attempt
}

func NewAttemptStore() *AttemptStore {
	return &AttemptStore{items: make(map[uuid.UUID]challenge.Attempt)}
}

func (s *AttemptStore) ListByUser(_ context.Context, userID uuid.UUID) ([]challenge.Attempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]challenge.Attempt, 0)
	for _, a := range s.items {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *AttemptStore) GetByID(_ context.Context, id uuid.UUID) (challenge.Attempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.items[id]
	if !ok {
		return challenge.Attempt{}, challenge.ErrAttemptNotFound
	}
	return a, nil
}

func (s *AttemptStore) GetByUserAndChallenge(_ context.Context, userID, challengeID uuid.UUID) (challenge.Attempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.items {
		if a.UserID == userID && a.ChallengeID == challengeID {
			return a, nil
		}
	}
	return challenge.Attempt{}, challenge.ErrAttemptNotFound
}

func (s *AttemptStore) Create(_ context.Context, a challenge.Attempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[a.ID] = a
	return nil
}

func (s *AttemptStore) Update(_ context.Context, a challenge.Attempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[a.ID]; !ok {
		return challenge.ErrAttemptNotFound
	}
	s.items[a.ID] = a
	return nil
}

var (
	_ challenge.Repository        = (*ChallengeStore)(nil)
	_ challenge.AttemptRepository = (*AttemptStore)(nil)
)
