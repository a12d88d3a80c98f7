package dto

import (
	"time"

	"github.com/google/uuid"

	"codequest/internal/domain/skill"
	"codequest/internal/domain/user"
)

type UserResponse struct {
	ID        uuid.UUID     `json:"id"`
	Username  string        `json:"username"`
	Email     string        `json:"email"`
	Name      string        `json:"name"`
	Bio       string        `json:"bio"`
	Skills    []skill.Skill `json:"skills"`
	Level     int           `json:"level"`
	XP        int           `json:"xp"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func NewUserResponse(u user.User) UserResponse {
	skills := u.Skills
	if skills == nil {
		skills = []skill.Skill{}
	}
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Name:      u.Name,
		Bio:       u.Bio,
		Skills:    skills,
		Level:     u.Level,
		XP:        u.XP,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
