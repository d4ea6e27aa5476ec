package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
			"brokers": []any{},
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	cfg.applyDefaults()

	assert.Equal(t, 120.0, cfg.Tracking.MaxPlausibleSpeedKmh)
	assert.Equal(t, 50.0, cfg.Tracking.MaxAccuracyMeters)
	assert.Equal(t, 50.0, cfg.Tracking.DefaultGeofenceRadiusMeters)
	assert.Equal(t, "UTC", cfg.Compliance.Timezone)
	assert.Equal(t, 100, cfg.Worker.SweepBatchSize)
	assert.Equal(t, 256, cfg.QRCode.Size)
	require.NotNil(t, cfg.PubSub)
	assert.Empty(t, cfg.PubSub.Provider)

	loc, err := cfg.ComplianceLocation()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Tracking:   &TrackingConfig{MaxPlausibleSpeedKmh: 80, MaxAccuracyMeters: 30},
		Compliance: &ComplianceConfig{Timezone: "America/Lima"},
	}

	cfg.applyDefaults()

	assert.Equal(t, 80.0, cfg.Tracking.MaxPlausibleSpeedKmh)
	assert.Equal(t, 30.0, cfg.Tracking.MaxAccuracyMeters)

	loc, err := cfg.ComplianceLocation()
	require.NoError(t, err)
	assert.Equal(t, "America/Lima", loc.String())
}

func TestComplianceLocation_UnknownZone(t *testing.T) {
	cfg := &Config{Compliance: &ComplianceConfig{Timezone: "Mars/Olympus"}}

	_, err := cfg.ComplianceLocation()
	assert.Error(t, err)
}
