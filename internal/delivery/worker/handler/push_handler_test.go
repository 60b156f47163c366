package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lapak/config"
	"lapak/internal/domain/constants"
	"lapak/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNotifier struct {
	topic string
	title string
	body  string
	data  map[string]string
	err   error
	calls int
}

func (s *stubNotifier) SendToTopic(_ context.Context, topic, title, body string, data map[string]string) error {
	s.calls++
	s.topic = topic
	s.title = title
	s.body = body
	s.data = data

	return s.err
}

func newPushTestHandler(notifier service.NotificationService) *PushHandler {
	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvDevelop

	return NewPushHandler(PushHandlerParams{
		Config:          cfg,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationSvc: notifier,
	})
}

func pushRequest(t *testing.T, event *service.OnboardingCompletedEvent) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	eventData, err := json.Marshal(event)
	require.NoError(t, err)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	pushMsg.Message.MessageID = "msg-1"
	pushMsg.Subscription = "projects/test/subscriptions/onboarding-sub"
	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPushHandler_HandlePush_SendsTopicNotification(t *testing.T) {
	notifier := &stubNotifier{}
	h := newPushTestHandler(notifier)

	profileID := uuid.New()
	event := &service.OnboardingCompletedEvent{
		UserID:            uuid.New().String(),
		BusinessProfileID: profileID.String(),
		BusinessName:      "Warung Bu Sari",
		CompletedAt:       time.Now().UTC(),
	}

	c, rec := pushRequest(t, event)
	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, notifier.calls)
	assert.Equal(t, constants.OnboardingCompletedTopic, notifier.topic)
	assert.Contains(t, notifier.body, "Warung Bu Sari")
	assert.Equal(t, profileID.String(), notifier.data["business_profile_id"])
}

func TestPushHandler_HandlePush_RetryableOnNotifierFailure(t *testing.T) {
	notifier := &stubNotifier{err: errors.New("fcm unavailable")}
	h := newPushTestHandler(notifier)

	event := &service.OnboardingCompletedEvent{
		UserID:            uuid.New().String(),
		BusinessProfileID: uuid.New().String(),
		BusinessName:      "Warung Bu Sari",
		CompletedAt:       time.Now().UTC(),
	}

	c, rec := pushRequest(t, event)
	require.NoError(t, h.HandlePush(c))

	// 503 asks Pub/Sub to redeliver the message.
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_BadEventIsNotRetried(t *testing.T) {
	notifier := &stubNotifier{}
	h := newPushTestHandler(notifier)

	event := &service.OnboardingCompletedEvent{
		UserID:            uuid.New().String(),
		BusinessProfileID: "not-a-uuid",
		BusinessName:      "Warung Bu Sari",
	}

	c, rec := pushRequest(t, event)
	require.NoError(t, h.HandlePush(c))

	// Malformed events are acknowledged so Pub/Sub stops redelivering them.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, notifier.calls)
}

func TestPushHandler_HandlePush_RejectsInvalidBase64(t *testing.T) {
	h := newPushTestHandler(&stubNotifier{})

	var pushMsg PubSubMessage
	pushMsg.Message.Data = "not base64!!"
	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
