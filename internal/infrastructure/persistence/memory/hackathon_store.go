package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"codequest/internal/domain/hackathon"
)

type HackathonStore struct {
	mu    sync.RWMutex
	items map[uuid.UUID]hackathon.Hackathon
}

func NewHackathonStore() *HackathonStore {
	return &HackathonStore{items: make(map[uuid.UUID]hackathon.Hackathon)}
}

func (s *HackathonStore) List(_ context.Context) ([]hackathon.Hackathon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]hackathon.Hackathon, 0, len(s.items))
	for _, h := range s.items {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

func (s *HackathonStore) GetByID(_ context.Context, id uuid.UUID) (hackathon.Hackathon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.items[id]
	if !ok {
		return hackathon.Hackathon{}, hackathon.ErrNotFound
	}
	return h, nil
}

func (s *HackathonStore) Create(_ context.Context, h hackathon.Hackathon) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[h.ID] = h
	return nil
}

type ParticipantStore struct {
	mu    sync.RWMutex
	items map[uuid.UUID]hackathon.Participant
}

func NewParticipantStore() *ParticipantStore {
	return &ParticipantStore{items: make(map[uuid.UUID]hackathon.Participant)}
}

func (s *ParticipantStore) ListByHackathon(_ context.Context, hackathonID uuid.UUID) ([]hackathon.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]hackathon.Participant, 0)
	for _, p := range s.items {
		if p.HackathonID == hackathonID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].JoinedAt.Before(out[j].JoinedAt) })
	return out, nil
}

func (s *ParticipantStore) ListByUser(_ context.Context, userID uuid.UUID) ([]hackathon.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]hackathon.Participant, 0)
	for _, p := range s.items {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].JoinedAt.Before(out[j].JoinedAt) })
	return out, nil
}

func (s *ParticipantStore) GetByUserAndHackathon(_ context.Context, userID, hackathonID uuid.UUID) (hackathon.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.items {
		if p.UserID == userID && p.HackathonID == hackathonID {
			return p, nil
		}
	}
	return hackathon.Participant{}, hackathon.ErrNotFound
}

func (s *ParticipantStore) Create(_ context.Context, p hackathon.Participant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[p.ID] = p
	return nil
}

var (
	_ hackathon.Repository            = (*HackathonStore)(nil)
	_ hackathon.ParticipantRepository = (*ParticipantStore)(nil)
)
