package usecase

import (
	"context"
	"log"
	"sort"
	"time"

	"codequest/internal/domain/user"
)

const (
	leaderboardCacheKey = "leaderboard:top"
	leaderboardCacheTTL = 30 * time.Second
	leaderboardLimit    = 50
)

// LeaderboardCache is the subset of the cache the usecases need. A nil
// implementation simply disables caching.
type LeaderboardCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type LeaderboardUsecase interface {
	Leaderboard(ctx context.Context) ([]user.User, error)
}

type Leaderboard struct {
	users  user.Repository
	cache  LeaderboardCache
	logger *log.Logger
}

func NewLeaderboardUsecase(users user.Repository, cache LeaderboardCache, logger *log.Logger) *Leaderboard {
	return &Leaderboard{users: users, cache: cache, logger: logger}
}

// Leaderboard returns the top users by XP, sanitized. Results are served
// from cache when fresh; a cache failure falls through to the store.
func (l *Leaderboard) Leaderboard(ctx context.Context) ([]user.User, error) {
	if l.cache != nil {
		var cached []user.User
		if ok, err := l.cache.GetJSON(ctx, leaderboardCacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	all, err := l.users.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].XP > all[j].XP })
	if len(all) > leaderboardLimit {
		all = all[:leaderboardLimit]
	}

	out := make([]user.User, 0, len(all))
	for _, u := range all {
		out = append(out, u.Sanitized())
	}

	if l.cache != nil {
		if err := l.cache.SetJSON(ctx, leaderboardCacheKey, out, leaderboardCacheTTL); err != nil && l.logger != nil {
			l.logger.Printf("[Leaderboard] cache write failed: %v", err)
		}
	}

	return out, nil
}

var _ LeaderboardUsecase = (*Leaderboard)(nil)
