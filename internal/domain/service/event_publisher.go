package service

import (
	"context"
	"time"

	"fieldtrack/internal/domain/entity"
)

// VisitEventType names the lifecycle change carried by a VisitEvent.
type VisitEventType string

const (
	EventVisitCompleted VisitEventType = "visit.completed"
	EventVisitCancelled VisitEventType = "visit.cancelled"
	EventSessionEnded   VisitEventType = "session.ended"
)

// VisitEvent is published after a visit or session state change and consumed by the metrics worker
// and the form-engine collaborator.
type VisitEvent struct {
	Type       VisitEventType      `json:"type"`
	EventID    string              `json:"event_id"`
	RequestID  string              `json:"request_id,omitempty"` // For distributed tracing
	UserID     string              `json:"user_id"`
	VisitID    string              `json:"visit_id,omitempty"`
	PDVID      string              `json:"pdv_id,omitempty"`
	SessionID  string              `json:"session_id,omitempty"`
	OccurredAt time.Time           `json:"occurred_at"`
	Answers    []entity.FormAnswer `json:"answers,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishVisitEvent publishes a lifecycle event for async processing
	PublishVisitEvent(ctx context.Context, event *VisitEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
