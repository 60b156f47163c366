package prompt

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lapak/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(t *testing.T, baseURL string) *httpPromptGenerator {
	t.Helper()
	cfg := &config.Config{
		Prompt: &config.PromptConfig{BaseURL: baseURL, Timeout: 5 * time.Second},
	}
	gen, err := NewHTTPPromptGenerator(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return gen.(*httpPromptGenerator)
}

func TestHTTPPromptGenerator_GenerateSystemPrompt_Success(t *testing.T) {
	profileID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/prompts/generate", r.URL.Path)

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, profileID.String(), req.BusinessProfileID)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"system_prompt":"Kamu adalah asisten toko."}}`))
	}))
	defer server.Close()

	gen := newTestGenerator(t, server.URL)
	promptText, err := gen.GenerateSystemPrompt(context.Background(), profileID)
	require.NoError(t, err)
	assert.Equal(t, "Kamu adalah asisten toko.", promptText)
}

func TestHTTPPromptGenerator_GenerateSystemPrompt_EmptyPrompt(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"system_prompt":""}}`))
	}))
	defer server.Close()

	gen := newTestGenerator(t, server.URL)
	_, err := gen.GenerateSystemPrompt(context.Background(), uuid.New())
	assert.Error(t, err)
}

func TestHTTPPromptGenerator_GenerateSystemPrompt_DeadlinePropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server notices the client disconnect and
		// cancels the request context; otherwise Close deadlocks.
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer server.Close()

	gen := newTestGenerator(t, server.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := gen.GenerateSystemPrompt(ctx, uuid.New())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
