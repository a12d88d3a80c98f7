package challenge

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusNotStarted = "Not Started"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

type Challenge struct {
	ID               uuid.UUID
	Title            string
	Description      string
	Difficulty       string
	Category         string
	ProblemStatement string
	Examples         []string
	TestCases        []string
	StarterCode      string
	CreatedAt        time.Time
}

// Attempt is one user's work on a challenge.
type Attempt struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	ChallengeID uuid.UUID
	Status      string
	Solution    string
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
