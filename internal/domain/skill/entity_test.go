package skill

import (
	"errors"
	"testing"
)

func TestRequireFields(t *testing.T) {
	s, err := RequireFields(Candidate{Name: " Go ", Level: "Advanced", Category: "Programming Language"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Name != "Go" {
		t.Fatalf("expected trimmed name, got %q", s.Name)
	}

	if _, err := RequireFields(Candidate{Level: "Advanced", Category: "Database"}); !errors.Is(err, ErrMissingName) {
		t.Fatalf("expected ErrMissingName, got %v", err)
	}
	if _, err := RequireFields(Candidate{Name: "Go", Category: "Database"}); !errors.Is(err, ErrMissingLevel) {
		t.Fatalf("expected ErrMissingLevel, got %v", err)
	}
	if _, err := RequireFields(Candidate{Name: "Go", Level: "Advanced"}); !errors.Is(err, ErrMissingCategory) {
		t.Fatalf("expected ErrMissingCategory, got %v", err)
	}
}

func TestRequireFields_UnknownEnumsPass(t *testing.T) {
	s, err := RequireFields(Candidate{Name: "Go", Level: "Wizard", Category: "Sorcery"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Level != "Wizard" || s.Category != "Sorcery" {
		t.Fatalf("unexpected skill: %+v", s)
	}
}

func TestRequireKnownEnums(t *testing.T) {
	if _, err := RequireKnownEnums(Candidate{Name: "Go", Level: "Wizard", Category: "Database"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
	if _, err := RequireKnownEnums(Candidate{Name: "Go", Level: "Advanced", Category: "Sorcery"}); err == nil {
		t.Fatal("expected error for unknown category")
	}
	if _, err := RequireKnownEnums(Candidate{Name: "Go", Level: "Advanced", Category: "Programming Language"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestFilterCandidates(t *testing.T) {
	cands := []Candidate{
		{Name: "Go", Level: "Advanced", Category: "Programming Language"},
		{Name: "", Level: "Beginner", Category: "Database"},
		{Name: "React", Level: "", Category: "Frontend Framework"},
		{Name: "Docker", Level: "Intermediate", Category: "DevOps"},
	}

	var dropped []Candidate
	out := FilterCandidates(cands, nil, func(c Candidate, err error) {
		if err == nil {
			t.Fatal("onDrop called without error")
		}
		dropped = append(dropped, c)
	})

	if len(out) != 2 {
		t.Fatalf("expected 2 kept, got %d", len(out))
	}
	if out[0].Name != "Go" || out[1].Name != "Docker" {
		t.Fatalf("unexpected order: %+v", out)
	}
	if len(dropped) != 2 {
		t.Fatalf("expected 2 dropped, got %d", len(dropped))
	}
}

func TestFilterCandidates_Empty(t *testing.T) {
	out := FilterCandidates(nil, nil, nil)
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", out)
	}
}
