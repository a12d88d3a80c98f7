package resource

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusNotStarted = "Not Started"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

type LearningResource struct {
	ID          uuid.UUID
	Title       string
	Description string
	Duration    string
	Category    string
	Content     string
	Difficulty  string
	CreatedAt   time.Time
}

// Progress tracks one user's advancement through a resource. Percent is
// 0-100.
type Progress struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	ResourceID  uuid.UUID
	Percent     int
	Status      string
	StartedAt   *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
}

func ValidStatus(s string) bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}
