package usecase

import (
	"context"
	"time"

	"fieldtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckInInput identifies the PDV either by id or by the scanned label, plus the device position.
type CheckInInput struct {
	PDVID          *uuid.UUID `json:"pdv_id,omitempty" validate:"required_without=QRData"`
	QRData         string     `json:"qr_data,omitempty" validate:"required_without=PDVID"`
	Latitude       float64    `json:"latitude"`
	Longitude      float64    `json:"longitude"`
	Accuracy       *float64   `json:"accuracy,omitempty" validate:"omitempty,gte=0"`
	IsMockLocation bool       `json:"is_mock_location"`
}

// CheckOutInput carries what the agent reports when leaving.
type CheckOutInput struct {
	Notes          *string             `json:"notes,omitempty" validate:"omitempty,max=2000"`
	AttachmentsRef *string             `json:"attachments_ref,omitempty" validate:"omitempty,max=512"`
	Answers        []entity.FormAnswer `json:"answers,omitempty"`
}

// CancelVisitInput carries the optional cancellation reason.
type CancelVisitInput struct {
	Reason string `json:"reason" validate:"max=500"`
}

// VisitUsecase drives the check-in/check-out lifecycle
type VisitUsecase interface {
	CheckIn(ctx context.Context, userID uuid.UUID, input *CheckInInput) (*entity.Visit, error)
	CheckOut(ctx context.Context, userID, visitID uuid.UUID, input *CheckOutInput) (*entity.Visit, error)
	Cancel(ctx context.Context, userID, visitID uuid.UUID, reason string) (*entity.Visit, error)

	GetVisit(ctx context.Context, actor Actor, visitID uuid.UUID) (*entity.Visit, error)
	// GetActiveVisit returns the user's in-progress visit or VisitNotFound.
	GetActiveVisit(ctx context.Context, userID uuid.UUID) (*entity.Visit, error)
	ListVisits(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.Visit, error)
}
