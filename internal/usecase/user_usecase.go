package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"codequest/internal/domain/user"
	"codequest/internal/ws"
)

type UpdateMeInput struct {
	Username *string
	Name     *string
	Level    *int
	XP       *int
}

type UserUsecase interface {
	UpdateMe(ctx context.Context, userID uuid.UUID, in UpdateMeInput) (user.User, error)
}

type Users struct {
	users user.Repository
	cache LeaderboardCache
	now   func() time.Time
}

func NewUserUsecase(users user.Repository, cache LeaderboardCache) *Users {
	return &Users{users: users, cache: cache, now: time.Now}
}

// UpdateMe applies the non-nil fields. Level and XP updates invalidate the
// leaderboard cache and push a live update to connected clients.
func (u *Users) UpdateMe(ctx context.Context, userID uuid.UUID, in UpdateMeInput) (user.User, error) {
	if in.Username == nil && in.Name == nil && in.Level == nil && in.XP == nil {
		return user.User{}, ErrInvalidInput
	}

	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, ErrInternal
	}

	if in.Username != nil {
		username := strings.TrimSpace(*in.Username)
		if username == "" {
			return user.User{}, ErrInvalidInput
		}
		usr.Username = username
	}
	if in.Name != nil {
		usr.Name = strings.TrimSpace(*in.Name)
	}

	standingChanged := false
	if in.Level != nil {
		if *in.Level < 1 {
			return user.User{}, ErrInvalidInput
		}
		standingChanged = standingChanged || usr.Level != *in.Level
		usr.Level = *in.Level
	}
	if in.XP != nil {
		if *in.XP < 0 {
			return user.User{}, ErrInvalidInput
		}
		standingChanged = standingChanged || usr.XP != *in.XP
		usr.XP = *in.XP
	}

	usr.UpdatedAt = u.now().UTC()

	if err := u.users.Put(ctx, usr); err != nil {
		return user.User{}, ErrInternal
	}

	if standingChanged {
		if u.cache != nil {
			_ = u.cache.Delete(ctx, leaderboardCacheKey)
		}
		ws.NotifyLeaderboardUpdated(usr.Username)
	}

	return usr.Sanitized(), nil
}

var _ UserUsecase = (*Users)(nil)
