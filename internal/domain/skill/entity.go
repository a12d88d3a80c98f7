package skill

import (
	"errors"
	"fmt"
	"strings"
)

// Skill is one extracted user competency. A Skill is only ever persisted
// with all three fields present and non-empty.
type Skill struct {
	Name     string `json:"name"`
	Level    string `json:"level"`
	Category string `json:"category"`
}

const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
	LevelExpert       = "Expert"
)

var Levels = []string{
	LevelBeginner,
	LevelIntermediate,
	LevelAdvanced,
	LevelExpert,
}

var Categories = []string{
	"Programming Language",
	"Frontend Framework",
	"Backend Technology",
	"Database",
	"DevOps",
	"Mobile Development",
	"Data Science",
	"AI/ML",
	"Cloud Platform",
	"Tool/Software",
}

var (
	ErrMissingName     = errors.New("missing skill name")
	ErrMissingLevel    = errors.New("missing skill level")
	ErrMissingCategory = errors.New("missing skill category")
)

// Candidate is an unvalidated skill as emitted by the extraction service.
type Candidate struct {
	Name     string `json:"name"`
	Level    string `json:"level"`
	Category string `json:"category"`
}

// Filter decides whether a candidate becomes a Skill. A non-nil error is the
// rejection reason for that single candidate; it never fails the batch.
type Filter func(Candidate) (Skill, error)

// RequireFields accepts any candidate whose three fields are present and
// non-empty. Enum values are not checked here; the extraction service is
// prompted with the allowed sets and unknown values pass through.
func RequireFields(c Candidate) (Skill, error) {
	name := strings.TrimSpace(c.Name)
	level := strings.TrimSpace(c.Level)
	category := strings.TrimSpace(c.Category)

	if name == "" {
		return Skill{}, ErrMissingName
	}
	if level == "" {
		return Skill{}, ErrMissingLevel
	}
	if category == "" {
		return Skill{}, ErrMissingCategory
	}

	return Skill{Name: name, Level: level, Category: category}, nil
}

// RequireKnownEnums is the strict variant of RequireFields: level and
// category must be members of the fixed enumerations.
func RequireKnownEnums(c Candidate) (Skill, error) {
	s, err := RequireFields(c)
	if err != nil {
		return Skill{}, err
	}
	if !contains(Levels, s.Level) {
		return Skill{}, fmt.Errorf("unknown skill level %q", s.Level)
	}
	if !contains(Categories, s.Category) {
		return Skill{}, fmt.Errorf("unknown skill category %q", s.Category)
	}
	return s, nil
}

// FilterCandidates applies f to each candidate in order, keeping accepted
// skills and dropping rejected ones. Rejections are reported through onDrop
// (may be nil) so callers can log without changing the outcome.
func FilterCandidates(cands []Candidate, f Filter, onDrop func(Candidate, error)) []Skill {
	if f == nil {
		f = RequireFields
	}

	out := make([]Skill, 0, len(cands))
	for _, c := range cands {
		s, err := f(c)
		if err != nil {
			if onDrop != nil {
				onDrop(c, err)
			}
			continue
		}
		out = append(out, s)
	}
	return out
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
