package user

import (
	"time"

	"github.com/google/uuid"

	"codequest/internal/domain/skill"
)

type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	Name         string
	PasswordHash string
	Bio          string
	Skills       []skill.Skill
	Level        int
	XP           int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Sanitized returns a copy safe to cross the API boundary.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}
