// Package generation requests workout plans from an OpenAI compatible
// chat-completions endpoint.
package generation

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultModel = openai.GPT3Dot5Turbo

	Persona = "You are a certified personal trainer and fitness expert. Create detailed, safe, and effective workout plans."

	maxTokens   = 1500
	temperature = 0.7
)

var (
	ErrMissingAPIKey = errors.New("no api key configured")
	ErrNoChoices     = errors.New("response has no choices")
)

// Error is returned for every failed generation. Its message is the one shown
// to users; the cause is kept for logs.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return "failed to generate workout"
}

func (e *Error) Unwrap() error {
	return e.Err
}

type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithBaseURL points the client at another OpenAI compatible API, e.g.
// "http://localhost:11434/v1". Empty values are ignored.
func WithBaseURL(raw string) Option {
	return func(c *Client) {
		if raw != "" {
			c.baseURL = raw
		}
	}
}

func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// New builds a client. An empty apiKey is accepted here and reported by
// RequestWorkout so callers can still build prompts without a key.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		model:      DefaultModel,
		httpClient: &http.Client{Timeout: 2 * time.Minute},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) Model() string {
	return c.model
}

// RequestWorkout sends one chat-completions request and returns the text of
// the first choice. There is no retry.
func (c *Client) RequestWorkout(ctx context.Context, prompt string) (string, error) {
	logger := log.WithFields(log.Fields{
		"request_id": uuid.NewString(),
		"model":      c.model,
	})

	if c.apiKey == "" {
		logger.Warn("generation requested without api key")
		return "", &Error{Err: ErrMissingAPIKey}
	}

	cfg := openai.DefaultConfig(c.apiKey)
	if c.baseURL != "" {
		cfg.BaseURL = c.baseURL
	}
	cfg.HTTPClient = c.httpClient
	api := openai.NewClientWithConfig(cfg)

	start := time.Now()
	resp, err := api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: Persona},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			logger = logger.WithField("status", apiErr.HTTPStatusCode)
		}
		logger.WithError(err).Error("chat completion failed")
		return "", &Error{Err: err}
	}

	if len(resp.Choices) == 0 {
		logger.Error("chat completion returned no choices")
		return "", &Error{Err: ErrNoChoices}
	}

	logger.WithFields(log.Fields{
		"duration_ms":       time.Since(start).Milliseconds(),
		"completion_tokens": resp.Usage.CompletionTokens,
	}).Info("workout generated")

	return resp.Choices[0].Message.Content, nil
}
