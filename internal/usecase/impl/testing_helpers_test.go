package impl

import (
	"io"
	"log/slog"
	"time"

	"fieldtrack/config"
)

var fixedNow = time.Date(2024, 3, 4, 15, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func testConfig() *config.Config {
	return &config.Config{
		Tracking: &config.TrackingConfig{
			MaxPlausibleSpeedKmh:        120,
			MaxAccuracyMeters:           50,
			DefaultGeofenceRadiusMeters: 50,
			MaxBatchSize:                3,
		},
		Compliance: &config.ComplianceConfig{Timezone: "UTC"},
	}
}

func floatPtr(v float64) *float64 { return &v }

func stringPtr(v string) *string { return &v }

// metersPerDegreeLat is the length of one degree of latitude at the service's Earth radius.
const metersPerDegreeLat = 6371000.0 * 3.141592653589793 / 180
