package impl

import (
	"context"
	"log/slog"

	deliverycontext "fieldtrack/internal/delivery/context"
	domainerrors "fieldtrack/internal/domain/errors"
	"fieldtrack/internal/domain/repository"
	"fieldtrack/internal/domain/service"
	"fieldtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PDVServiceParams holds dependencies for PDVService, injected by Fx.
type PDVServiceParams struct {
	fx.In

	HierarchyRepo repository.HierarchyRepository
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

type pdvService struct {
	hierarchyRepo repository.HierarchyRepository
	qrCodeService service.QRCodeService
	logger        *slog.Logger
}

func NewPDVService(params PDVServiceParams) usecase.PDVUsecase {
	return &pdvService{
		hierarchyRepo: params.HierarchyRepo,
		qrCodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

func (srv *pdvService) Label(ctx context.Context, pdvID uuid.UUID) ([]byte, error) {
	pdv, err := srv.hierarchyRepo.FindPDVByID(ctx, pdvID)
	if errors.Is(err, repository.ErrPDVNotFound) {
		return nil, domainerrors.ErrPDVNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find pdv")
	}
	// Inactive PDVs cannot be checked into, so a label would only mislead.
	if !pdv.IsActive {
		return nil, domainerrors.ErrPDVNotFound.WithDetails("pdv is inactive")
	}

	png, err := srv.qrCodeService.GeneratePDVLabel(pdv.Code)
	if err != nil {
		return nil, errors.Wrap(err, "generate pdv label")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).DebugContext(ctx, "Rendered PDV label",
		slog.String("pdv_id", pdvID.String()),
		slog.String("pdv_code", pdv.Code),
	)

	return png, nil
}
