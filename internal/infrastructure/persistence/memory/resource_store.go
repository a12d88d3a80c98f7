package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"codequest/internal/domain/resource"
)

type ResourceStore struct {
	mu    sync.RWMutex
	items map[uuid.UUID]resource.LearningResource
}

func NewResourceStore() *ResourceStore {
	return &ResourceStore{items: make(map[uuid.UUID]resource.LearningResource)}
}

func (s *ResourceStore) List(_ context.Context) ([]resource.LearningResource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]resource.LearningResource, 0, len(s.items))
	for _, r := range s.items {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *ResourceStore) GetByID(_ context.Context, id uuid.UUID) (resource.LearningResource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.items[id]
	if !ok {
		return resource.LearningResource{}, resource.ErrNotFound
	}
	return r, nil
}

func (s *ResourceStore) Create(_ context.Context, r resource.LearningResource) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[r.ID] = r
	return nil
}

type ProgressStore struct {
	mu    sync.RWMutex
	items map[uuid.UUID]resource.Progress
}

func NewProgressStore() *ProgressStore {
	return &ProgressStore{items: make(map[uuid.UUID]resource.Progress)}
}

func (s *ProgressStore) ListByUser(_ context.Context, userID uuid.UUID) ([]resource.Progress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]resource.Progress, 0)
	for _, p := range s.items {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *ProgressStore) GetByID(_ context.Context, id uuid.UUID) (resource.Progress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.items[id]
	if !ok {
		return resource.Progress{}, resource.ErrProgressNotFound
	}
	return p, nil
}

func (s *ProgressStore) GetByUserAndResource(_ context.Context, userID, resourceID uuid.UUID) (resource.Progress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.items {
		if p.UserID == userID && p.ResourceID == resourceID {
			return p, nil
		}
	}
	return resource.Progress{}, resource.ErrProgressNotFound
}

func (s *ProgressStore) Create(_ context.Context, p resource.Progress) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[p.ID] = p
	return nil
}

func (s *ProgressStore) Update(_ context.Context, p resource.Progress) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[p.ID]; !ok {
		return resource.ErrProgressNotFound
	}
	s.items[p.ID] = p
	return nil
}

var (
	_ resource.Repository         = (*ResourceStore)(nil)
	_ resource.ProgressRepository = (*ProgressStore)(nil)
)
