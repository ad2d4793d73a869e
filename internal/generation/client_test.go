package generation_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/misterclayt0n/fitlog/internal/generation"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float32 `json:"temperature"`
}

func newServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func newClient(srv *httptest.Server, opts ...generation.Option) *generation.Client {
	opts = append([]generation.Option{
		generation.WithBaseURL(srv.URL + "/v1"),
		generation.WithHTTPClient(srv.Client()),
	}, opts...)
	return generation.New("test-key", opts...)
}

func TestRequestWorkout(t *testing.T) {
	var got chatRequest
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "gpt-3.5-turbo",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Warm-up: 5 min jog"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
		}`))
	})

	text, err := newClient(srv).RequestWorkout(context.Background(), "Generate a workout")
	require.NoError(t, err)
	assert.Equal(t, "Warm-up: 5 min jog", text)

	assert.Equal(t, generation.DefaultModel, got.Model)
	assert.Equal(t, 1500, got.MaxTokens)
	assert.InDelta(t, 0.7, got.Temperature, 0.0001)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, generation.Persona, got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, "Generate a workout", got.Messages[1].Content)
}

func TestRequestWorkout_CustomModel(t *testing.T) {
	var model string
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		model = req.Model
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "ok"}}]}`))
	})

	client := newClient(srv, generation.WithModel("gpt-4o-mini"))
	_, err := client.RequestWorkout(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", model)
	assert.Equal(t, "gpt-4o-mini", client.Model())
}

func TestRequestWorkout_MissingKey(t *testing.T) {
	var calls atomic.Int32
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	client := generation.New("", generation.WithBaseURL(srv.URL+"/v1"), generation.WithHTTPClient(srv.Client()))
	_, err := client.RequestWorkout(context.Background(), "p")

	var genErr *generation.Error
	require.ErrorAs(t, err, &genErr)
	assert.ErrorIs(t, err, generation.ErrMissingAPIKey)
	assert.Equal(t, "failed to generate workout", err.Error())
	assert.Zero(t, calls.Load())
}

func TestRequestWorkout_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{
			name:   "unauthorized",
			status: http.StatusUnauthorized,
			body:   `{"error": {"message": "Incorrect API key provided", "type": "invalid_request_error"}}`,
		},
		{
			name:   "server error",
			status: http.StatusInternalServerError,
			body:   `internal error`,
		},
		{
			name:   "unparseable body",
			status: http.StatusOK,
			body:   `not json`,
		},
		{
			name:    "no choices",
			status:  http.StatusOK,
			body:    `{"choices": []}`,
			wantErr: generation.ErrNoChoices,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			text, err := newClient(srv).RequestWorkout(context.Background(), "p")
			assert.Empty(t, text)

			var genErr *generation.Error
			require.ErrorAs(t, err, &genErr)
			assert.Equal(t, "failed to generate workout", err.Error())
			require.Error(t, errors.Unwrap(err))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
