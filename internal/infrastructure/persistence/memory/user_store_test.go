package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"codequest/internal/domain/skill"
	"codequest/internal/domain/user"
)

func TestUserStore_PutAndGet(t *testing.T) {
	s := NewUserStore()
	ctx := context.Background()

	u := user.User{
		ID:       uuid.New(),
		Username: "ada",
		Email:    "Ada@Example.com",
		Skills:   []skill.Skill{{Name: "Go", Level: "Advanced", Category: "Programming Language"}},
		Level:    1,
	}
	if err := s.Put(ctx, u); err != nil {
		t.Fatalf("put: %v", err)
	}

	byID, err := s.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	byEmail, err := s.GetByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if byID.ID != byEmail.ID || byID.Username != byEmail.Username {
		t.Fatalf("indexes disagree: %+v vs %+v", byID, byEmail)
	}
	if len(byID.Skills) != 1 || byID.Skills[0].Name != "Go" {
		t.Fatalf("unexpected skills: %+v", byID.Skills)
	}
}

func TestUserStore_GetMissing(t *testing.T) {
	s := NewUserStore()
	ctx := context.Background()

	if _, err := s.GetByID(ctx, uuid.New()); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.GetByEmail(ctx, "nobody@example.com"); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserStore_EmailChangeDropsStaleKey(t *testing.T) {
	s := NewUserStore()
	ctx := context.Background()

	u := user.User{ID: uuid.New(), Email: "old@example.com"}
	if err := s.Put(ctx, u); err != nil {
		t.Fatalf("put: %v", err)
	}

	u.Email = "new@example.com"
	if err := s.Put(ctx, u); err != nil {
		t.Fatalf("put: %v", err)
	}

	if _, err := s.GetByEmail(ctx, "old@example.com"); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("stale email key still resolves: %v", err)
	}
	got, err := s.GetByEmail(ctx, "new@example.com")
	if err != nil {
		t.Fatalf("get by new email: %v", err)
	}
	if got.ID != u.ID {
		t.Fatalf("expected %s, got %s", u.ID, got.ID)
	}
}

func TestUserStore_DeleteRemovesBothKeys(t *testing.T) {
	s := NewUserStore()
	ctx := context.Background()

	u := user.User{ID: uuid.New(), Email: "ada@example.com"}
	if err := s.Put(ctx, u); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Delete(ctx, u.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := s.GetByID(ctx, u.ID); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("id key survived delete: %v", err)
	}
	if _, err := s.GetByEmail(ctx, u.Email); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("email key survived delete: %v", err)
	}
}

func TestUserStore_StoredCopyIsolated(t *testing.T) {
	s := NewUserStore()
	ctx := context.Background()

	u := user.User{
		ID:     uuid.New(),
		Email:  "ada@example.com",
		Skills: []skill.Skill{{Name: "Go", Level: "Advanced", Category: "Programming Language"}},
	}
	if err := s.Put(ctx, u); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := s.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	got.Skills[0].Name = "mutated"

	again, err := s.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if again.Skills[0].Name != "Go" {
		t.Fatalf("stored skills mutated through returned copy: %+v", again.Skills)
	}
}
