// Package prompt talks to the external service that synthesizes chatbot
// system prompts from a profile's completed knowledge entries.
package prompt

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"lapak/config"
	"lapak/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultClientTimeout = 5 * time.Minute

// httpPromptGenerator implements PromptGenerator against the prompt
// service's HTTP API.
type httpPromptGenerator struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPPromptGenerator is the constructor for httpPromptGenerator.
func NewHTTPPromptGenerator(cfg *config.Config, logger *slog.Logger) (service.PromptGenerator, error) {
	if cfg.Prompt == nil || cfg.Prompt.BaseURL == "" {
		return nil, errors.New("prompt base URL is not configured")
	}

	timeout := defaultClientTimeout
	if cfg.Prompt.Timeout > 0 {
		timeout = cfg.Prompt.Timeout
	}

	return &httpPromptGenerator{
		baseURL: cfg.Prompt.BaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

type generateRequest struct {
	BusinessProfileID string `json:"business_profile_id"`
}

type generateEnvelope struct {
	Success bool `json:"success"`
	Data    *struct {
		SystemPrompt string `json:"system_prompt"`
	} `json:"data,omitempty"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// GenerateSystemPrompt returns the synthesized instruction text.
func (g *httpPromptGenerator) GenerateSystemPrompt(ctx context.Context, businessProfileID uuid.UUID) (string, error) {
	body, err := json.Marshal(generateRequest{BusinessProfileID: businessProfileID.String()})
	if err != nil {
		return "", errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/prompts/generate", bytes.NewReader(body))
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		// Unwrap url.Error so callers can match context.DeadlineExceeded.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}

		return "", errors.Wrap(err, "prompt service request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", errors.Wrap(err, "failed to read prompt service response")
	}

	var envelope generateEnvelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return "", errors.Wrapf(err, "prompt service returned malformed response (status %d)", resp.StatusCode)
	}

	if !envelope.Success || resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if envelope.Error != nil {
			return "", errors.Errorf("prompt generation failed: %s (%s)", envelope.Error.Message, envelope.Error.Code)
		}

		return "", errors.Errorf("prompt service returned status %d", resp.StatusCode)
	}
	if envelope.Data == nil || envelope.Data.SystemPrompt == "" {
		return "", errors.New("prompt service returned an empty prompt")
	}

	g.logger.Debug("system prompt generated",
		slog.String("business_profile_id", businessProfileID.String()),
		slog.Int("prompt_chars", len(envelope.Data.SystemPrompt)),
	)

	return envelope.Data.SystemPrompt, nil
}
