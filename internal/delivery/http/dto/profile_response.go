package dto

import "codequest/internal/domain/skill"

// ProfileUpdateResponse carries the stored profile plus whatever skills the
// extractor produced for this request, which may be fewer than what ended up
// on the user if candidates were dropped.
type ProfileUpdateResponse struct {
	User            UserResponse  `json:"user"`
	ExtractedSkills []skill.Skill `json:"extracted_skills"`
}
