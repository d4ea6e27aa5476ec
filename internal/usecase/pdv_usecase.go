package usecase

import (
	"context"

	"github.com/google/uuid"
)

// PDVUsecase serves supervisor tooling around points of sale
type PDVUsecase interface {
	// Label renders the printable check-in QR label of an active PDV as PNG.
	Label(ctx context.Context, pdvID uuid.UUID) ([]byte, error)
}
