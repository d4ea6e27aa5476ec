package worker

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"fieldtrack/config"
	mockUsecase "fieldtrack/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/fx/fxtest"
)

func newTestSweeper(t *testing.T, interval time.Duration) (*staleSweeper, *mockUsecase.MockSessionUsecase, *fxtest.Lifecycle) {
	sessionUC := mockUsecase.NewMockSessionUsecase(t)
	lc := fxtest.NewLifecycle(t)

	cfg := &config.Config{Worker: &config.WorkerConfig{SweepInterval: interval, SweepBatchSize: 25}}

	s := NewStaleSweeper(SweeperParams{
		Lc:        lc,
		Cfg:       cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		SessionUC: sessionUC,
	}).(*staleSweeper)

	return s, sessionUC, lc
}

func TestStaleSweeper_Disabled(t *testing.T) {
	s, _, _ := newTestSweeper(t, 0)

	assert.NoError(t, s.Serve(context.Background()))
}

func TestStaleSweeper_RecomputesUntilStopped(t *testing.T) {
	s, sessionUC, lc := newTestSweeper(t, 5*time.Millisecond)
	lc.RequireStart()

	var calls atomic.Int32
	sessionUC.EXPECT().RecomputeStale(mock.Anything, 25).
		RunAndReturn(func(context.Context, int) (int, error) {
			// Failures are logged and the loop keeps going.
			if calls.Add(1) == 1 {
				return 0, errors.New("database unavailable")
			}

			return 2, nil
		})

	done := make(chan error, 1)
	go func() { done <- s.Serve(context.Background()) }()

	assert.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	lc.RequireStop()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestStaleSweeper_StopsOnContextCancel(t *testing.T) {
	s, _, _ := newTestSweeper(t, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("sweeper ignored context cancellation")
	}
}
