package dto

import (
	"time"

	"github.com/google/uuid"

	"codequest/internal/domain/resource"
)

type ResourceResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    string    `json:"duration"`
	Category    string    `json:"category"`
	Content     string    `json:"content"`
	Difficulty  string    `json:"difficulty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ProgressResponse struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	ResourceID  uuid.UUID  `json:"resource_id"`
	Percent     int        `json:"percent"`
	Status      string     `json:"status"`
	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

func NewResourceResponse(r resource.LearningResource) ResourceResponse {
	return ResourceResponse{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Duration:    r.Duration,
		Category:    r.Category,
		Content:     r.Content,
		Difficulty:  r.Difficulty,
		CreatedAt:   r.CreatedAt,
	}
}

func NewProgressResponse(p resource.Progress) ProgressResponse {
	return ProgressResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		ResourceID:  p.ResourceID,
		Percent:     p.Percent,
		Status:      p.Status,
		StartedAt:   p.StartedAt,
		CompletedAt: p.CompletedAt,
		CreatedAt:   p.CreatedAt,
	}
}
