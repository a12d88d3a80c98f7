package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"codequest/internal/domain/user"
)

// UserStore keeps user records in memory, addressable by id and by email.
// Both keys are updated under one lock, so readers never observe the two
// indexes disagreeing.
type UserStore struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]user.User
	emailID map[string]uuid.UUID
}

func NewUserStore() *UserStore {
	return &UserStore{
		byID:    make(map[uuid.UUID]user.User),
		emailID: make(map[string]uuid.UUID),
	}
}

func (s *UserStore) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return cloneUser(u), nil
}

func (s *UserStore) GetByEmail(_ context.Context, email string) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.emailID[normalizeEmail(email)]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	u, ok := s.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return cloneUser(u), nil
}

func (s *UserStore) Put(_ context.Context, u user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.byID[u.ID]; ok {
		prevEmail := normalizeEmail(prev.Email)
		if prevEmail != normalizeEmail(u.Email) {
			delete(s.emailID, prevEmail)
		}
	}

	u.Email = normalizeEmail(u.Email)
	s.byID[u.ID] = cloneUser(u)
	s.emailID[u.Email] = u.ID
	return nil
}

func (s *UserStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return nil
	}
	delete(s.byID, id)
	delete(s.emailID, normalizeEmail(u.Email))
	return nil
}

func (s *UserStore) List(_ context.Context) ([]user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]user.User, 0, len(s.byID))
	for _, u := range s.byID {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

// cloneUser copies the skills slice so callers cannot mutate stored state.
func cloneUser(u user.User) user.User {
	if len(u.Skills) > 0 {
		u.Skills = append(u.Skills[:0:0], u.Skills...)
	}
	return u
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var _ user.Repository = (*UserStore)(nil)
