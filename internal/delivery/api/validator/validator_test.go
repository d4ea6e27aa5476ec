package validator

import (
	"testing"

	domainerrors "fieldtrack/internal/domain/errors"
	"fieldtrack/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ReturnsValidationFailedWithFields(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.LocationBatchInput{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "Samples failed required")
}

func TestValidate_CheckInNeedsPDVOrQR(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.CheckInInput{Latitude: 1, Longitude: 1})
	require.Error(t, err)

	assert.NoError(t, v.Validate(&usecase.CheckInInput{QRData: `{"pdv_code":"A1","type":"pdv_checkin"}`}))
}

func TestValidate_NestedSampleBounds(t *testing.T) {
	v := New()
	battery := 120.0

	err := v.Validate(&usecase.LocationBatchInput{
		Samples: []*usecase.LocationSampleInput{{BatteryPct: &battery}},
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "BatteryPct failed lte=100")
	assert.Contains(t, appErr.Details(), "RecordedAt failed required")
}
