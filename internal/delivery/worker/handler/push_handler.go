package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"fieldtrack/config"
	deliverycontext "fieldtrack/internal/delivery/context"
	"fieldtrack/internal/domain/constants"
	domainerrors "fieldtrack/internal/domain/errors"
	"fieldtrack/internal/domain/service"
	"fieldtrack/internal/infra/metrics"
	"fieldtrack/internal/infra/pubsub"
	"fieldtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const (
	outcomeOK      = "ok"
	outcomeRetry   = "retry"
	outcomeDropped = "dropped"
)

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// tokenValidator checks a Google-signed OIDC token for the given audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler consumes visit events pushed by Pub/Sub and refreshes session metrics
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	validateToken  tokenValidator
	logger         *slog.Logger
	sessionUC      usecase.SessionUsecase
	complianceUC   usecase.ComplianceUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config       *config.Config
	Logger       *slog.Logger
	SessionUC    usecase.SessionUsecase
	ComplianceUC usecase.ComplianceUsecase
}

// NewPushHandler creates a new Pub/Sub push handler.
// OIDC verification is on for the google provider outside development.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var audience string
	if params.Config.Worker != nil {
		audience = params.Config.Worker.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       audience,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		sessionUC:      params.SessionUC,
		complianceUC:   params.ComplianceUC,
	}
}

// HandlePush acknowledges with 200 unless the failure is transient, in which case
// 503 makes Pub/Sub redeliver. Malformed messages are acknowledged so they are not retried forever.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))
		metrics.RecordPushMessage(outcomeDropped)

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := decodeEvent(&pushMsg)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode visit event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)
		metrics.RecordPushMessage(outcomeDropped)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, event)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("event_id", event.EventID),
		slog.String("event_type", string(event.Type)),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.processEvent(ctx, event); err != nil {
		retry := isRetryableError(err)
		reqLogger.Error("[Worker] Failed to process visit event",
			slog.Any("error", err),
			slog.Bool("retryable", retry),
		)
		if retry {
			metrics.RecordPushMessage(outcomeRetry)

			return c.NoContent(http.StatusServiceUnavailable)
		}
		metrics.RecordPushMessage(outcomeDropped)

		return c.NoContent(http.StatusOK)
	}

	metrics.RecordPushMessage(outcomeOK)
	reqLogger.Debug("[Worker] Visit event processed")

	return c.NoContent(http.StatusOK)
}

func decodeEvent(pushMsg *pubsub.PushMessage) (*service.VisitEvent, error) {
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.VisitEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "unmarshal visit event")
	}

	return &event, nil
}

// extractRequestID prefers message attributes, then the event payload, then the
// X-Request-Id of the push request, and finally mints a new ID.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.VisitEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func (h *PushHandler) processEvent(ctx context.Context, event *service.VisitEvent) error {
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return errors.Wrap(err, "parse user_id")
	}

	switch event.Type {
	case service.EventVisitCompleted:
		if err := h.recompute(ctx, userID, event.SessionID); err != nil {
			return err
		}
		h.complianceUC.Invalidate(ctx, userID)

		return nil
	case service.EventVisitCancelled, service.EventSessionEnded:
		// Cancelled visits never count and ended sessions were computed synchronously.
		return nil
	default:
		return errors.Errorf("unknown event type %q", event.Type)
	}
}

// recompute refreshes the session named by the event, or the user's open session when none is named.
func (h *PushHandler) recompute(ctx context.Context, userID uuid.UUID, rawSessionID string) error {
	if rawSessionID == "" {
		if err := h.sessionUC.RecomputeOpenSession(ctx, userID); err != nil {
			return classify(err)
		}

		return nil
	}

	sessionID, err := uuid.Parse(rawSessionID)
	if err != nil {
		return errors.Wrap(err, "parse session_id")
	}

	if _, err := h.sessionUC.RecomputeMetrics(ctx, sessionID); err != nil {
		return classify(err)
	}

	return nil
}

// classify keeps permanent domain outcomes acknowledged and retries everything else.
func classify(err error) error {
	if errors.Is(err, domainerrors.ErrSessionNotFound) || errors.Is(err, domainerrors.ErrInvalidStateTransition) {
		return err
	}

	return newRetryableError(err)
}

// verifyPubSubToken verifies the OIDC token Google attaches to authenticated push requests.
// The configured audience wins; otherwise the audience is the URL of this endpoint.
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || token == "" {
		return errors.New("invalid authorization header format")
	}

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
