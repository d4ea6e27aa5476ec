package worker

import (
	"context"
	"log/slog"
	"time"

	"fieldtrack/config"
	"fieldtrack/internal/delivery"
	deliverycontext "fieldtrack/internal/delivery/context"
	"fieldtrack/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// SweeperParams holds dependencies for the stale-metrics sweeper
type SweeperParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	SessionUC usecase.SessionUsecase
}

// staleSweeper periodically recomputes sessions whose metrics were marked stale
// and whose push event was lost or failed.
type staleSweeper struct {
	interval  time.Duration
	batchSize int
	logger    *slog.Logger
	sessionUC usecase.SessionUsecase
	stopCh    chan struct{}
}

func NewStaleSweeper(params SweeperParams) delivery.Delivery {
	s := &staleSweeper{
		interval:  params.Cfg.Worker.SweepInterval,
		batchSize: params.Cfg.Worker.SweepBatchSize,
		logger:    params.Logger,
		sessionUC: params.SessionUC,
		stopCh:    make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			close(s.stopCh)

			return nil
		},
	})

	return s
}

// Serve blocks until ctx is done or the app stops. A zero interval disables the sweep.
func (s *staleSweeper) Serve(ctx context.Context) error {
	if s.interval <= 0 {
		s.logger.Info("Stale metrics sweep disabled")

		return nil
	}

	s.logger.Info("Starting stale metrics sweep",
		slog.Duration("interval", s.interval),
		slog.Int("batch_size", s.batchSize),
	)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stopCh:
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *staleSweeper) sweep(ctx context.Context) {
	runID := uuid.New().String()
	logger := s.logger.With(slog.String("request_id", runID))
	ctx = deliverycontext.WithRequestID(ctx, runID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	done, err := s.sessionUC.RecomputeStale(ctx, s.batchSize)
	if err != nil {
		logger.Error("Stale metrics sweep failed", slog.Int("recomputed", done), slog.Any("error", err))

		return
	}
	if done > 0 {
		logger.Info("Stale metrics sweep finished", slog.Int("recomputed", done))
	}
}
