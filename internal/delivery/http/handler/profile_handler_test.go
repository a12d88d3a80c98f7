package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"codequest/internal/delivery/http/middleware"
	"codequest/internal/domain/skill"
	"codequest/internal/domain/user"
	"codequest/internal/pkg/response"
	"codequest/internal/usecase"
)

type mockProfileUC struct {
	getUser   user.User
	getErr    error
	updateRes usecase.ProfileResult
	updateErr error
	gotBio    string
}

func (m *mockProfileUC) GetProfile(context.Context, uuid.UUID) (user.User, error) {
	return m.getUser, m.getErr
}

func (m *mockProfileUC) UpdateProfile(_ context.Context, _ uuid.UUID, bio string) (usecase.ProfileResult, error) {
	m.gotBio = bio
	return m.updateRes, m.updateErr
}

func newProfileTestApp(uc usecase.ProfileUsecase, userID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	app.Use(func(c fiber.Ctx) error {
		c.Locals(middleware.CtxUserIDKey, userID)
		return c.Next()
	})
	NewProfileHandler(uc).RegisterRoutes(app.Group("/profile"))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, response.SemanticResponse) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	var env response.SemanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return resp, env
}

func TestProfileHandler_UpdateProfile_OK(t *testing.T) {
	userID := uuid.New()
	extracted := []skill.Skill{{Name: "Go", Level: "Advanced", Category: "Programming Language"}}
	uc := &mockProfileUC{updateRes: usecase.ProfileResult{
		User:            user.User{ID: userID, Username: "ada", Bio: "I write Go", Skills: extracted},
		ExtractedSkills: extracted,
	}}
	app := newProfileTestApp(uc, userID)

	resp, env := doJSON(t, app, http.MethodPost, "/profile/update", `{"bio":"I write Go"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if uc.gotBio != "I write Go" {
		t.Fatalf("bio not passed through: %q", uc.gotBio)
	}

	data, ok := env.Data.(map[string]any)
	if !ok {
		t.Fatalf("unexpected data shape: %#v", env.Data)
	}
	if _, ok := data["user"]; !ok {
		t.Fatal("response missing user")
	}
	skills, ok := data["extracted_skills"].([]any)
	if !ok || len(skills) != 1 {
		t.Fatalf("response missing extracted_skills: %#v", data["extracted_skills"])
	}
}

func TestProfileHandler_UpdateProfile_MissingBio(t *testing.T) {
	uc := &mockProfileUC{updateErr: usecase.ErrInvalidInput}
	app := newProfileTestApp(uc, uuid.New())

	resp, env := doJSON(t, app, http.MethodPost, "/profile/update", `{}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if env.Message != "Bio is required" {
		t.Fatalf("unexpected message: %q", env.Message)
	}
}

func TestProfileHandler_UpdateProfile_UnknownUser(t *testing.T) {
	uc := &mockProfileUC{updateErr: user.ErrNotFound}
	app := newProfileTestApp(uc, uuid.New())

	resp, _ := doJSON(t, app, http.MethodPost, "/profile/update", `{"bio":"hi"}`)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestProfileHandler_UpdateProfile_InternalErrorHidesDetail(t *testing.T) {
	uc := &mockProfileUC{updateErr: errors.New("pg: connection refused")}
	app := newProfileTestApp(uc, uuid.New())

	resp, env := doJSON(t, app, http.MethodPost, "/profile/update", `{"bio":"hi"}`)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	if strings.Contains(env.Message, "connection refused") {
		t.Fatalf("internal detail leaked: %q", env.Message)
	}
}

func TestProfileHandler_GetProfile(t *testing.T) {
	userID := uuid.New()
	uc := &mockProfileUC{getUser: user.User{ID: userID, Username: "ada"}}
	app := newProfileTestApp(uc, userID)

	resp, env := doJSON(t, app, http.MethodGet, "/profile", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	data, ok := env.Data.(map[string]any)
	if !ok || data["username"] != "ada" {
		t.Fatalf("unexpected data: %#v", env.Data)
	}
}
