package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fieldtrack/config"
	deliverycontext "fieldtrack/internal/delivery/context"
	"fieldtrack/internal/domain/constants"
	domainerrors "fieldtrack/internal/domain/errors"
	"fieldtrack/internal/domain/service"
	"fieldtrack/internal/infra/pubsub"
	mockUsecase "fieldtrack/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func createTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockSessionUsecase, *mockUsecase.MockComplianceUsecase) {
	sessionUC := mockUsecase.NewMockSessionUsecase(t)
	complianceUC := mockUsecase.NewMockComplianceUsecase(t)

	if cfg == nil {
		cfg = &config.Config{}
	}

	h := NewPushHandler(PushHandlerParams{
		Config:       cfg,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		SessionUC:    sessionUC,
		ComplianceUC: complianceUC,
	})

	return h, sessionUC, complianceUC
}

func pushBody(t *testing.T, event *service.VisitEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/test/subscriptions/visit-events"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func push(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func completedEvent(userID uuid.UUID, sessionID string) *service.VisitEvent {
	return &service.VisitEvent{
		Type:       service.EventVisitCompleted,
		EventID:    uuid.NewString(),
		UserID:     userID.String(),
		VisitID:    uuid.NewString(),
		SessionID:  sessionID,
		OccurredAt: time.Date(2024, 3, 7, 11, 0, 0, 0, time.UTC),
	}
}

func TestHandlePush_VisitCompletedRecomputesNamedSession(t *testing.T) {
	h, sessionUC, complianceUC := createTestPushHandler(t, nil)
	userID, sessionID := uuid.New(), uuid.New()

	var seenRequestID string
	sessionUC.EXPECT().RecomputeMetrics(mock.Anything, sessionID).
		Run(func(ctx context.Context, _ uuid.UUID) {
			seenRequestID = deliverycontext.GetRequestIDFromContext(ctx)
		}).
		Return(nil, nil)
	complianceUC.EXPECT().Invalidate(mock.Anything, userID).Return()

	rec := push(h, pushBody(t, completedEvent(userID, sessionID.String()), map[string]string{"request_id": "req-from-attrs"}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-from-attrs", seenRequestID)
}

func TestHandlePush_VisitCompletedWithoutSession(t *testing.T) {
	h, sessionUC, complianceUC := createTestPushHandler(t, nil)
	userID := uuid.New()

	sessionUC.EXPECT().RecomputeOpenSession(mock.Anything, userID).Return(nil)
	complianceUC.EXPECT().Invalidate(mock.Anything, userID).Return()

	rec := push(h, pushBody(t, completedEvent(userID, ""), nil), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_FailureClassification(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "transient database error is retried", err: errors.New("connection refused"), wantStatus: http.StatusServiceUnavailable},
		{name: "missing session is acknowledged", err: domainerrors.ErrSessionNotFound, wantStatus: http.StatusOK},
		{name: "cancelled session is acknowledged", err: domainerrors.ErrInvalidStateTransition.WithDetails("cancelled"), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, sessionUC, _ := createTestPushHandler(t, nil)
			userID, sessionID := uuid.New(), uuid.New()

			sessionUC.EXPECT().RecomputeMetrics(mock.Anything, sessionID).Return(nil, tt.err)

			rec := push(h, pushBody(t, completedEvent(userID, sessionID.String()), nil), nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandlePush_EventsWithoutMetricEffect(t *testing.T) {
	for _, eventType := range []service.VisitEventType{service.EventVisitCancelled, service.EventSessionEnded} {
		t.Run(string(eventType), func(t *testing.T) {
			h, _, _ := createTestPushHandler(t, nil)
			event := completedEvent(uuid.New(), uuid.NewString())
			event.Type = eventType

			rec := push(h, pushBody(t, event, nil), nil)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestHandlePush_MalformedMessages(t *testing.T) {
	h, _, _ := createTestPushHandler(t, nil)

	rec := push(h, `{"message":{"data":"%%%not-base64"}}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = push(h, `{"message":{"data":"`+base64.StdEncoding.EncodeToString([]byte("{"))+`"}}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// A well-formed envelope with an unusable payload is acknowledged, not retried.
	event := completedEvent(uuid.New(), "")
	event.UserID = "nobody"
	rec = push(h, pushBody(t, event, nil), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestExtractRequestID_Priority(t *testing.T) {
	h, _, _ := createTestPushHandler(t, nil)
	ctx := deliverycontext.WithRequestID(context.Background(), "from-header")

	var msg pubsub.PushMessage
	event := &service.VisitEvent{RequestID: "from-event"}

	assert.Equal(t, "from-event", h.extractRequestID(ctx, &msg, event))

	msg.Message.Attributes = map[string]string{"request_id": "from-attrs"}
	assert.Equal(t, "from-attrs", h.extractRequestID(ctx, &msg, event))

	assert.Equal(t, "from-header", h.extractRequestID(ctx, &pubsub.PushMessage{}, &service.VisitEvent{}))

	_, err := uuid.Parse(h.extractRequestID(context.Background(), &pubsub.PushMessage{}, &service.VisitEvent{}))
	assert.NoError(t, err)
}

func TestHandlePush_VerifiesGoogleToken(t *testing.T) {
	cfg := &config.Config{
		PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle},
		Worker: &config.WorkerConfig{PushAudience: "https://worker.example.com/push"},
	}
	cfg.Env.Env = constants.EnvProduction

	tests := []struct {
		name       string
		header     string
		payload    *idtoken.Payload
		validErr   error
		wantStatus int
	}{
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "rejected token", header: "Bearer bad", validErr: errors.New("invalid signature"), wantStatus: http.StatusUnauthorized},
		{name: "foreign issuer", header: "Bearer tok", payload: &idtoken.Payload{Issuer: "https://evil.example.com"}, wantStatus: http.StatusUnauthorized},
		{
			name:       "unverified email",
			header:     "Bearer tok",
			payload:    &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": false}},
			wantStatus: http.StatusUnauthorized,
		},
		{name: "google token", header: "Bearer tok", payload: &idtoken.Payload{Issuer: "accounts.google.com"}, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, _ := createTestPushHandler(t, cfg)
			require.True(t, h.verifyPushAuth)

			h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, "https://worker.example.com/push", audience)

				return tt.payload, tt.validErr
			}

			header := http.Header{}
			if tt.header != "" {
				header.Set(echo.HeaderAuthorization, tt.header)
			}
			event := completedEvent(uuid.New(), "")
			event.Type = service.EventSessionEnded

			rec := push(h, pushBody(t, event, nil), header)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestNewPushHandler_SkipsVerificationInDevelopment(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvDevelop

	h, _, _ := createTestPushHandler(t, cfg)

	assert.False(t, h.verifyPushAuth)
}
