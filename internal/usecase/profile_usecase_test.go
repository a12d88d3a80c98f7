package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"codequest/internal/domain/skill"
	"codequest/internal/domain/user"
)

type mockUserRepo struct {
	users  map[uuid.UUID]user.User
	getErr error
	putErr error
	puts   []user.User
}

func newMockUserRepo(users ...user.User) *mockUserRepo {
	m := &mockUserRepo{users: make(map[uuid.UUID]user.User)}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if m.getErr != nil {
		return user.User{}, m.getErr
	}
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) Put(_ context.Context, u user.User) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.users[u.ID] = u
	m.puts = append(m.puts, u)
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) List(_ context.Context) ([]user.User, error) {
	out := make([]user.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

type mockExtractor struct {
	skills []skill.Skill
	err    error
	calls  int
}

func (m *mockExtractor) Extract(context.Context, string) ([]skill.Skill, error) {
	m.calls++
	return m.skills, m.err
}

func fixedNow() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func TestProfile_UpdateProfile_Success(t *testing.T) {
	u := user.User{
		ID:           uuid.New(),
		Username:     "ada",
		Email:        "ada@example.com",
		PasswordHash: "hash",
		Skills:       []skill.Skill{{Name: "COBOL", Level: "Expert", Category: "Programming Language"}},
	}
	repo := newMockUserRepo(u)
	extracted := []skill.Skill{{Name: "Go", Level: "Advanced", Category: "Programming Language"}}
	uc := NewProfileUsecase(repo, &mockExtractor{skills: extracted}, nil, nil)
	uc.now = fixedNow

	res, err := uc.UpdateProfile(context.Background(), u.ID, "  I write Go services  ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.User.Bio != "I write Go services" {
		t.Fatalf("bio not trimmed and stored: %q", res.User.Bio)
	}
	if len(res.User.Skills) != 1 || res.User.Skills[0].Name != "Go" {
		t.Fatalf("skills not replaced: %+v", res.User.Skills)
	}
	if len(res.ExtractedSkills) != 1 {
		t.Fatalf("expected extracted skills in result: %+v", res.ExtractedSkills)
	}
	if res.User.PasswordHash != "" {
		t.Fatal("password hash leaked through result")
	}
	if !res.User.UpdatedAt.Equal(fixedNow()) {
		t.Fatalf("UpdatedAt not set: %v", res.User.UpdatedAt)
	}

	stored := repo.users[u.ID]
	if stored.PasswordHash != "hash" {
		t.Fatal("stored record lost its password hash")
	}
	if len(stored.Skills) != 1 || stored.Skills[0].Name != "Go" {
		t.Fatalf("stored skills not replaced: %+v", stored.Skills)
	}
}

func TestProfile_UpdateProfile_EmptyBio(t *testing.T) {
	repo := newMockUserRepo()
	ext := &mockExtractor{}
	uc := NewProfileUsecase(repo, ext, nil, nil)

	for _, bio := range []string{"", "   ", "\n\t"} {
		if _, err := uc.UpdateProfile(context.Background(), uuid.New(), bio); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("bio %q: expected ErrInvalidInput, got %v", bio, err)
		}
	}
	if ext.calls != 0 {
		t.Fatalf("extractor called %d times for invalid input", ext.calls)
	}
}

func TestProfile_UpdateProfile_UnknownUser(t *testing.T) {
	uc := NewProfileUsecase(newMockUserRepo(), &mockExtractor{}, nil, nil)

	if _, err := uc.UpdateProfile(context.Background(), uuid.New(), "bio"); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected user.ErrNotFound, got %v", err)
	}
}

func TestProfile_UpdateProfile_ExtractionFailureDegrades(t *testing.T) {
	u := user.User{
		ID:     uuid.New(),
		Skills: []skill.Skill{{Name: "COBOL", Level: "Expert", Category: "Programming Language"}},
	}
	repo := newMockUserRepo(u)
	uc := NewProfileUsecase(repo, &mockExtractor{err: errors.New("upstream down")}, nil, nil)

	res, err := uc.UpdateProfile(context.Background(), u.ID, "new bio")
	if err != nil {
		t.Fatalf("extraction failure must not fail the update: %v", err)
	}
	if res.User.Bio != "new bio" {
		t.Fatalf("bio not saved: %q", res.User.Bio)
	}
	if res.ExtractedSkills == nil || len(res.ExtractedSkills) != 0 {
		t.Fatalf("expected empty extracted skills, got %#v", res.ExtractedSkills)
	}
	if len(repo.users[u.ID].Skills) != 0 {
		t.Fatalf("old skills survived a degraded extraction: %+v", repo.users[u.ID].Skills)
	}
}

func TestProfile_UpdateProfile_EmptyExtractionReplacesSkills(t *testing.T) {
	u := user.User{
		ID:     uuid.New(),
		Skills: []skill.Skill{{Name: "COBOL", Level: "Expert", Category: "Programming Language"}},
	}
	repo := newMockUserRepo(u)
	uc := NewProfileUsecase(repo, &mockExtractor{skills: []skill.Skill{}}, nil, nil)

	res, err := uc.UpdateProfile(context.Background(), u.ID, "bio without skills")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.User.Skills) != 0 {
		t.Fatalf("expected wholesale replacement with empty list, got %+v", res.User.Skills)
	}
}

func TestProfile_UpdateProfile_StoreFailure(t *testing.T) {
	u := user.User{ID: uuid.New()}
	repo := newMockUserRepo(u)
	repo.putErr = errors.New("disk on fire")
	uc := NewProfileUsecase(repo, &mockExtractor{}, nil, nil)

	if _, err := uc.UpdateProfile(context.Background(), u.ID, "bio"); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestProfile_GetProfile(t *testing.T) {
	u := user.User{ID: uuid.New(), Username: "ada", PasswordHash: "hash"}
	uc := NewProfileUsecase(newMockUserRepo(u), &mockExtractor{}, nil, nil)

	got, err := uc.GetProfile(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.PasswordHash != "" {
		t.Fatal("password hash leaked")
	}
	if got.Username != "ada" {
		t.Fatalf("unexpected user: %+v", got)
	}

	if _, err := uc.GetProfile(context.Background(), uuid.New()); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected user.ErrNotFound, got %v", err)
	}
}
