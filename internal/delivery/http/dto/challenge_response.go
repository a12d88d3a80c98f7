package dto

import (
	"time"

	"github.com/google/uuid"

	"codequest/internal/domain/challenge"
)

type ChallengeResponse struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Difficulty       string    `json:"difficulty"`
	Category         string    `json:"category"`
	ProblemStatement string    `json:"problem_statement"`
	Examples         []string  `json:"examples"`
	TestCases        []string  `json:"test_cases"`
	StarterCode      string    `json:"starter_code"`
	CreatedAt        time.Time `json:"created_at"`
}

type AttemptResponse struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	ChallengeID uuid.UUID  `json:"challenge_id"`
	Status      string     `json:"status"`
	Solution    string     `json:"solution"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

func NewChallengeResponse(ch challenge.Challenge) ChallengeResponse {
	return ChallengeResponse{
		ID:               ch.ID,
		Title:            ch.Title,
		Description:      ch.Description,
		Difficulty:       ch.Difficulty,
		Category:         ch.Category,
		ProblemStatement: ch.ProblemStatement,
		Examples:         ch.Examples,
		TestCases:        ch.TestCases,
		StarterCode:      ch.StarterCode,
		CreatedAt:        ch.CreatedAt,
	}
}

func NewAttemptResponse(a challenge.Attempt) AttemptResponse {
	return AttemptResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		ChallengeID: a.ChallengeID,
		Status:      a.Status,
		Solution:    a.Solution,
		CompletedAt: a.CompletedAt,
		CreatedAt:   a.CreatedAt,
	}
}
