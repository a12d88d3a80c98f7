package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"codequest/internal/domain/skill"
	"codequest/internal/domain/user"
	"codequest/internal/ws"
)

// SkillExtractor derives typed skills from a free-text bio. An error means
// the whole extraction attempt failed; a nil error with an empty slice means
// the service ran and found nothing (or is not configured).
type SkillExtractor interface {
	Extract(ctx context.Context, bio string) ([]skill.Skill, error)
}

type ProfileResult struct {
	User            user.User
	ExtractedSkills []skill.Skill
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (user.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, bio string) (ProfileResult, error)
}

type Profile struct {
	users     user.Repository
	extractor SkillExtractor
	cache     LeaderboardCache
	logger    *log.Logger
	now       func() time.Time
}

func NewProfileUsecase(users user.Repository, extractor SkillExtractor, cache LeaderboardCache, logger *log.Logger) *Profile {
	return &Profile{
		users:     users,
		extractor: extractor,
		cache:     cache,
		logger:    logger,
		now:       time.Now,
	}
}

func (p *Profile) GetProfile(ctx context.Context, userID uuid.UUID) (user.User, error) {
	usr, err := p.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, ErrInternal
	}
	return usr.Sanitized(), nil
}

// UpdateProfile overwrites the bio and replaces the skill list with whatever
// the extractor returns, even when that is empty. Extraction failure never
// fails the update: every failure reason collapses to an empty skill list and
// the bio is still saved.
func (p *Profile) UpdateProfile(ctx context.Context, userID uuid.UUID, bio string) (ProfileResult, error) {
	bio = strings.TrimSpace(bio)
	if bio == "" {
		return ProfileResult{}, ErrInvalidInput
	}

	usr, err := p.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ProfileResult{}, user.ErrNotFound
		}
		return ProfileResult{}, ErrInternal
	}

	extracted, err := p.extractor.Extract(ctx, bio)
	if err != nil {
		if p.logger != nil {
			p.logger.Printf("[Profile] skill extraction degraded user=%s: %v", userID, err)
		}
		extracted = []skill.Skill{}
	}
	if extracted == nil {
		extracted = []skill.Skill{}
	}

	usr.Bio = bio
	usr.Skills = extracted
	usr.UpdatedAt = p.now().UTC()

	if err := p.users.Put(ctx, usr); err != nil {
		return ProfileResult{}, ErrInternal
	}

	if p.cache != nil {
		_ = p.cache.Delete(ctx, leaderboardCacheKey)
	}
	ws.NotifyLeaderboardUpdated(usr.Username)

	return ProfileResult{User: usr.Sanitized(), ExtractedSkills: extracted}, nil
}

var _ ProfileUsecase = (*Profile)(nil)
