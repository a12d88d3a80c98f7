package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"codequest/internal/config"
	"codequest/internal/domain/skill"
)

// Client calls a chat-completion endpoint to turn a free-text bio into skill
// candidates. One request per call, no retries, no streaming. With no API key
// configured Extract degrades to an empty result instead of failing, so
// profile updates keep working when the feature is unavailable.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
	logger  *log.Logger
	filter  skill.Filter
}

var (
	ErrNoContent = errors.New("no content in completion response")
)

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func NewClient(cfg config.OpenRouterConfig, logger *log.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &Client{
		apiKey:  strings.TrimSpace(cfg.APIKey),
		baseURL: strings.TrimSpace(cfg.BaseURL),
		model:   strings.TrimSpace(cfg.Model),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
		filter:  skill.RequireFields,
	}
}

// WithFilter replaces the candidate filter. The default accepts any candidate
// with all three fields present; pass skill.RequireKnownEnums to also reject
// values outside the fixed enumerations.
func (c *Client) WithFilter(f skill.Filter) *Client {
	if f != nil {
		c.filter = f
	}
	return c
}

// Extract sends the bio to the completion service and returns the validated
// skills in the order the service emitted them. A non-nil error means the
// whole attempt failed; callers decide what to do with that (the profile
// pipeline maps it to an empty list).
func (c *Client) Extract(ctx context.Context, bio string) ([]skill.Skill, error) {
	if c.apiKey == "" {
		return []skill.Skill{}, nil
	}

	body := chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: buildPrompt(bio)}},
		MaxTokens:   1000,
		Temperature: 0.3,
	}
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("completion request failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(rb)))
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode completion response: %w", err)
	}
	if len(out.Choices) == 0 {
		return nil, ErrNoContent
	}
	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return nil, ErrNoContent
	}

	var candidates []skill.Candidate
	if err := json.Unmarshal([]byte(content), &candidates); err != nil {
		return nil, fmt.Errorf("completion is not a skill array: %w", err)
	}

	skills := skill.FilterCandidates(candidates, c.filter, func(cand skill.Candidate, reason error) {
		if c.logger != nil {
			c.logger.Printf("[Extractor] dropped candidate name=%q: %v", cand.Name, reason)
		}
	})
	return skills, nil
}

func buildPrompt(bio string) string {
	var sb strings.Builder
	sb.WriteString(`You are a professional skill extraction AI. Analyze the following user bio and extract relevant programming and technical skills. Return ONLY a JSON array of skill objects with this exact format:

[
  {"name": "JavaScript", "level": "Intermediate", "category": "Programming Language"},
  {"name": "React", "level": "Advanced", "category": "Frontend Framework"},
  {"name": "Node.js", "level": "Beginner", "category": "Backend Technology"}
]

Categories should be one of: `)
	sb.WriteString(quoteJoin(skill.Categories))
	sb.WriteString("\n\nLevels should be: ")
	sb.WriteString(quoteJoin(skill.Levels))
	sb.WriteString("\n\nBio to analyze:\n\"")
	sb.WriteString(bio)
	sb.WriteString("\"\n\nReturn only the JSON array, no other text.")
	return sb.String()
}

func quoteJoin(vals []string) string {
	quoted := make([]string, len(vals))
	for i, v := range vals {
		quoted[i] = `"` + v + `"`
	}
	return strings.Join(quoted, ", ")
}
