package handler

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lapak/internal/domain/entity"
	domainerrors "lapak/internal/domain/errors"
	"lapak/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubOnboarding implements usecase.OnboardingUsecase with overridable
// function fields so handler tests can script single operations.
type stubOnboarding struct {
	status            func(ctx context.Context, userID uuid.UUID) (*entity.OnboardingStatus, error)
	completeKnowledge func(ctx context.Context, userID uuid.UUID, drafts usecase.KnowledgeDrafts, onProgress usecase.ProgressFunc) (*entity.OnboardingStatus, *usecase.IngestionReport, error)
}

func (s *stubOnboarding) Status(ctx context.Context, userID uuid.UUID) (*entity.OnboardingStatus, error) {
	return s.status(ctx, userID)
}

func (s *stubOnboarding) NavigateTo(context.Context, uuid.UUID, entity.Step) (*entity.OnboardingStatus, error) {
	return nil, nil
}

func (s *stubOnboarding) Back(context.Context, uuid.UUID) (*entity.OnboardingStatus, error) {
	return nil, nil
}

func (s *stubOnboarding) CompleteBusinessProfile(context.Context, uuid.UUID, usecase.BusinessProfileInput) (*entity.OnboardingStatus, error) {
	return nil, nil
}

func (s *stubOnboarding) CompleteKnowledgeStep(ctx context.Context, userID uuid.UUID, drafts usecase.KnowledgeDrafts, onProgress usecase.ProgressFunc) (*entity.OnboardingStatus, *usecase.IngestionReport, error) {
	return s.completeKnowledge(ctx, userID, drafts, onProgress)
}

func (s *stubOnboarding) CompleteFeatureSelection(context.Context, uuid.UUID, usecase.FeatureSelection) (*entity.OnboardingStatus, error) {
	return nil, nil
}

func (s *stubOnboarding) CompleteChannelConnect(context.Context, uuid.UUID) (*entity.OnboardingStatus, error) {
	return nil, nil
}

func (s *stubOnboarding) ChannelPairingCode(context.Context, uuid.UUID) ([]byte, error) {
	return nil, nil
}

func (s *stubOnboarding) FeatureOptions(context.Context, uuid.UUID) ([]entity.FeatureOption, error) {
	return nil, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newEchoContext(t *testing.T, method, target string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestOnboardingHandler_Status_RequiresAuth(t *testing.T) {
	h := NewOnboardingHandler(&stubOnboarding{}, discardLogger())
	c, rec := newEchoContext(t, http.MethodGet, "/onboarding/status", nil)

	require.NoError(t, h.Status(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOnboardingHandler_CompleteKnowledgeStep_StreamsProgress(t *testing.T) {
	userID := uuid.New()
	status := &entity.OnboardingStatus{
		UserID:         userID,
		CurrentStep:    entity.StepFeatures,
		CompletedSteps: []entity.Step{entity.StepBusinessProfile, entity.StepKnowledgeBase},
	}
	report := &usecase.IngestionReport{TotalEntries: 2, Processed: 2}

	uc := &stubOnboarding{
		completeKnowledge: func(_ context.Context, gotUserID uuid.UUID, drafts usecase.KnowledgeDrafts, onProgress usecase.ProgressFunc) (*entity.OnboardingStatus, *usecase.IngestionReport, error) {
			assert.Equal(t, userID, gotUserID)
			assert.Empty(t, drafts.Text)
			onProgress(usecase.Progress{Label: "menu.pdf", Percent: 50})
			onProgress(usecase.Progress{Label: "system-prompt", Percent: 100})

			return status, report, nil
		},
	}
	h := NewOnboardingHandler(uc, discardLogger())

	c, rec := newEchoContext(t, http.MethodPost, "/onboarding/steps/knowledge", strings.NewReader(`{}`))
	c.Set("userID", userID)

	require.NoError(t, h.CompleteKnowledgeStep(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/x-ndjson", rec.Header().Get(echo.HeaderContentType))

	var events []progressEvent
	scanner := bufio.NewScanner(rec.Body)
	for scanner.Scan() {
		var ev progressEvent
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &ev))
		events = append(events, ev)
	}
	require.Len(t, events, 3)
	assert.Equal(t, "progress", events[0].Type)
	assert.Equal(t, "menu.pdf", events[0].Label)
	assert.Equal(t, "progress", events[1].Type)
	assert.InDelta(t, 100, events[1].Percent, 0.01)
	assert.Equal(t, "result", events[2].Type)
	assert.NotNil(t, events[2].Status)
	assert.NotNil(t, events[2].Report)
}

func TestOnboardingHandler_CompleteKnowledgeStep_ErrorEndsStream(t *testing.T) {
	userID := uuid.New()
	uc := &stubOnboarding{
		completeKnowledge: func(context.Context, uuid.UUID, usecase.KnowledgeDrafts, usecase.ProgressFunc) (*entity.OnboardingStatus, *usecase.IngestionReport, error) {
			return nil, nil, domainerrors.ErrEmptyKnowledgeBase
		},
	}
	h := NewOnboardingHandler(uc, discardLogger())

	c, rec := newEchoContext(t, http.MethodPost, "/onboarding/steps/knowledge", strings.NewReader(`{}`))
	c.Set("userID", userID)

	require.NoError(t, h.CompleteKnowledgeStep(c))

	var ev progressEvent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ev))
	assert.Equal(t, "error", ev.Type)
	assert.Equal(t, "EMPTY_KNOWLEDGE_BASE", ev.Code)
	assert.NotEmpty(t, ev.Message)
}

func TestOnboardingHandler_Status_ReturnsView(t *testing.T) {
	userID := uuid.New()
	uc := &stubOnboarding{
		status: func(_ context.Context, gotUserID uuid.UUID) (*entity.OnboardingStatus, error) {
			assert.Equal(t, userID, gotUserID)

			return &entity.OnboardingStatus{UserID: userID, CurrentStep: entity.StepKnowledgeBase}, nil
		},
	}
	h := NewOnboardingHandler(uc, discardLogger())

	c, rec := newEchoContext(t, http.MethodGet, "/onboarding/status", nil)
	c.Set("userID", userID)

	require.NoError(t, h.Status(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			CurrentStep      int    `json:"current_step"`
			CurrentStepLabel string `json:"current_step_label"`
			TotalSteps       int    `json:"total_steps"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, int(entity.StepKnowledgeBase), envelope.Data.CurrentStep)
	assert.Equal(t, entity.StepKnowledgeBase.Label(), envelope.Data.CurrentStepLabel)
	assert.Equal(t, entity.StepCount, envelope.Data.TotalSteps)
}
