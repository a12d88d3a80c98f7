package dto

import (
	"time"

	"github.com/google/uuid"

	"codequest/internal/domain/hackathon"
)

type HackathonResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Status          string    `json:"status"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	PrizePool       string    `json:"prize_pool"`
	MaxParticipants int       `json:"max_participants"`
	CreatedAt       time.Time `json:"created_at"`
}

type ParticipantResponse struct {
	ID                 uuid.UUID  `json:"id"`
	UserID             uuid.UUID  `json:"user_id"`
	HackathonID        uuid.UUID  `json:"hackathon_id"`
	ProjectName        string     `json:"project_name"`
	ProjectDescription string     `json:"project_description"`
	RepositoryURL      string     `json:"repository_url"`
	Rank               int        `json:"rank"`
	Score              int        `json:"score"`
	JoinedAt           time.Time  `json:"joined_at"`
	SubmittedAt        *time.Time `json:"submitted_at"`
}

func NewHackathonResponse(h hackathon.Hackathon) HackathonResponse {
	return HackathonResponse{
		ID:              h.ID,
		Title:           h.Title,
		Description:     h.Description,
		Status:          h.Status,
		StartDate:       h.StartDate,
		EndDate:         h.EndDate,
		PrizePool:       h.PrizePool,
		MaxParticipants: h.MaxParticipants,
		CreatedAt:       h.CreatedAt,
	}
}

func NewParticipantResponse(p hackathon.Participant) ParticipantResponse {
	return ParticipantResponse{
		ID:                 p.ID,
		UserID:             p.UserID,
		HackathonID:        p.HackathonID,
		ProjectName:        p.ProjectName,
		ProjectDescription: p.ProjectDescription,
		RepositoryURL:      p.RepositoryURL,
		Rank:               p.Rank,
		Score:              p.Score,
		JoinedAt:           p.JoinedAt,
		SubmittedAt:        p.SubmittedAt,
	}
}
