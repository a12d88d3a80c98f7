package openrouter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"codequest/internal/config"
)

func completionServer(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); !strings.HasPrefix(got, "Bearer ") {
			t.Errorf("missing bearer auth, got %q", got)
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.MaxTokens != 1000 {
			t.Errorf("expected max_tokens 1000, got %d", req.MaxTokens)
		}

		w.WriteHeader(status)
		resp := map[string]any{
			"choices": []map[string]any{{"message": map[string]any{"content": content}}},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func newTestClient(url string) *Client {
	return NewClient(config.OpenRouterConfig{
		APIKey:  "test-key",
		BaseURL: url,
		Model:   "test-model",
		Timeout: 2 * time.Second,
	}, nil)
}

func TestExtract_ValidSkills(t *testing.T) {
	srv := completionServer(t, http.StatusOK, `[{"name":"Go","level":"Advanced","category":"Programming Language"}]`)
	defer srv.Close()

	skills, err := newTestClient(srv.URL).Extract(context.Background(), "I write Go services")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(skills) != 1 || skills[0].Name != "Go" {
		t.Fatalf("unexpected skills: %+v", skills)
	}
}

func TestExtract_MalformedCandidatesDropped(t *testing.T) {
	srv := completionServer(t, http.StatusOK, `[{"name":"Go","level":"Advanced","category":"Programming Language"},{"name":"React","level":"","category":"Frontend Framework"},{"level":"Beginner","category":"Database"}]`)
	defer srv.Close()

	skills, err := newTestClient(srv.URL).Extract(context.Background(), "bio")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(skills) != 1 || skills[0].Name != "Go" {
		t.Fatalf("expected only the complete candidate, got %+v", skills)
	}
}

func TestExtract_ContentNotArray(t *testing.T) {
	srv := completionServer(t, http.StatusOK, `Sure! Here are the skills: Go, React.`)
	defer srv.Close()

	if _, err := newTestClient(srv.URL).Extract(context.Background(), "bio"); err == nil {
		t.Fatal("expected error for non-JSON content")
	}
}

func TestExtract_EmptyContent(t *testing.T) {
	srv := completionServer(t, http.StatusOK, "")
	defer srv.Close()

	if _, err := newTestClient(srv.URL).Extract(context.Background(), "bio"); !errors.Is(err, ErrNoContent) {
		t.Fatalf("expected ErrNoContent, got %v", err)
	}
}

func TestExtract_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).Extract(context.Background(), "bio"); !errors.Is(err, ErrNoContent) {
		t.Fatalf("expected ErrNoContent, got %v", err)
	}
}

func TestExtract_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).Extract(context.Background(), "bio"); err == nil {
		t.Fatal("expected error for non-2xx status")
	}
}

func TestExtract_NoAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("request made without API key configured")
	}))
	defer srv.Close()

	c := NewClient(config.OpenRouterConfig{BaseURL: srv.URL}, nil)
	skills, err := c.Extract(context.Background(), "bio")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if skills == nil || len(skills) != 0 {
		t.Fatalf("expected empty slice, got %#v", skills)
	}
}

func TestExtract_PromptEmbedsBio(t *testing.T) {
	var prompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if len(req.Messages) == 1 {
			prompt = req.Messages[0].Content
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]any{"content": "[]"}}},
		})
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).Extract(context.Background(), "ten years of Rust"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(prompt, "ten years of Rust") {
		t.Fatalf("prompt does not embed bio: %q", prompt)
	}
}
