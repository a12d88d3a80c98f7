package auth

import (
	"context"
	"errors"
	"testing"

	"codequest/internal/infrastructure/persistence/memory"
)

func TestRegister(t *testing.T) {
	svc := NewService(memory.NewUserStore())

	u, err := svc.Register(context.Background(), RegisterInput{
		Username: "ada",
		Email:    "Ada@Example.com",
		Password: "correct-horse",
		Name:     "Ada Lovelace",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Email != "ada@example.com" {
		t.Fatalf("email not normalized: %q", u.Email)
	}
	if u.Level != 1 || u.XP != 0 {
		t.Fatalf("wrong starting stats: level=%d xp=%d", u.Level, u.XP)
	}
	if u.Skills == nil || len(u.Skills) != 0 {
		t.Fatalf("expected empty skills, got %#v", u.Skills)
	}
	if u.PasswordHash != "" {
		t.Fatal("password hash leaked from Register")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := NewService(memory.NewUserStore())
	in := RegisterInput{Username: "ada", Email: "ada@example.com", Password: "correct-horse"}

	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	in.Username = "ada2"
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestRegister_Invalid(t *testing.T) {
	svc := NewService(memory.NewUserStore())

	cases := []RegisterInput{
		{Username: "", Email: "a@b.com", Password: "correct-horse"},
		{Username: "ada", Email: "", Password: "correct-horse"},
		{Username: "ada", Email: "a@b.com", Password: "short"},
	}
	for i, in := range cases {
		if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestLogin(t *testing.T) {
	svc := NewService(memory.NewUserStore())
	if _, err := svc.Register(context.Background(), RegisterInput{
		Username: "ada", Email: "ada@example.com", Password: "correct-horse",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	u, err := svc.Login(context.Background(), LoginInput{Email: "ADA@example.com", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Username != "ada" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if u.PasswordHash != "" {
		t.Fatal("password hash leaked from Login")
	}

	if _, err := svc.Login(context.Background(), LoginInput{Email: "ada@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "correct-horse"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
