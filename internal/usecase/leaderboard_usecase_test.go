package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"codequest/internal/domain/user"
)

type mockCache struct {
	data    map[string][]byte
	sets    int
	deletes int
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string][]byte)}
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = b
	m.sets++
	return nil
}

func (m *mockCache) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	m.deletes++
	return nil
}

func TestLeaderboard_SortsByXPAndSanitizes(t *testing.T) {
	users := []user.User{
		{ID: uuid.New(), Username: "low", XP: 10, PasswordHash: "hash"},
		{ID: uuid.New(), Username: "high", XP: 300, PasswordHash: "hash"},
		{ID: uuid.New(), Username: "mid", XP: 40, PasswordHash: "hash"},
	}
	uc := NewLeaderboardUsecase(newMockUserRepo(users...), nil, nil)

	out, err := uc.Leaderboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 users, got %d", len(out))
	}
	if out[0].Username != "high" || out[1].Username != "mid" || out[2].Username != "low" {
		t.Fatalf("wrong order: %s %s %s", out[0].Username, out[1].Username, out[2].Username)
	}
	for _, u := range out {
		if u.PasswordHash != "" {
			t.Fatal("password hash leaked into leaderboard")
		}
	}
}

func TestLeaderboard_TruncatesToLimit(t *testing.T) {
	var users []user.User
	for i := 0; i < leaderboardLimit+10; i++ {
		users = append(users, user.User{ID: uuid.New(), Username: fmt.Sprintf("u%d", i), XP: i})
	}
	uc := NewLeaderboardUsecase(newMockUserRepo(users...), nil, nil)

	out, err := uc.Leaderboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != leaderboardLimit {
		t.Fatalf("expected %d users, got %d", leaderboardLimit, len(out))
	}
	if out[0].XP != leaderboardLimit+9 {
		t.Fatalf("expected highest XP first, got %d", out[0].XP)
	}
}

func TestLeaderboard_ServesFromCache(t *testing.T) {
	repo := newMockUserRepo(user.User{ID: uuid.New(), Username: "fresh", XP: 1})
	cache := newMockCache()
	uc := NewLeaderboardUsecase(repo, cache, nil)

	if _, err := uc.Leaderboard(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected 1 cache write, got %d", cache.sets)
	}

	// A store change is invisible until the cache entry goes away.
	stale := user.User{ID: uuid.New(), Username: "later", XP: 999}
	if err := repo.Put(context.Background(), stale); err != nil {
		t.Fatalf("put: %v", err)
	}

	out, err := uc.Leaderboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 || out[0].Username != "fresh" {
		t.Fatalf("expected cached result, got %+v", out)
	}

	if err := cache.Delete(context.Background(), leaderboardCacheKey); err != nil {
		t.Fatalf("delete: %v", err)
	}
	out, err = uc.Leaderboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 2 || out[0].Username != "later" {
		t.Fatalf("expected refreshed result, got %+v", out)
	}
}
