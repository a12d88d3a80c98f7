package hackathon

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusUpcoming  = "Upcoming"
	StatusLive      = "Live"
	StatusCompleted = "Completed"
)

type Hackathon struct {
	ID              uuid.UUID
	Title           string
	Description     string
	Status          string
	StartDate       time.Time
	EndDate         time.Time
	PrizePool       string
	MaxParticipants int
	CreatedAt       time.Time
}

type Participant struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	HackathonID        uuid.UUID
	ProjectName        string
	ProjectDescription string
	RepositoryURL      string
	Rank               int
	Score              int
	JoinedAt           time.Time
	SubmittedAt        *time.Time
}
