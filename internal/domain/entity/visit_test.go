package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheckInValid_TruthTable(t *testing.T) {
	assert.True(t, CheckInValid(true, false))
	assert.False(t, CheckInValid(true, true))
	assert.False(t, CheckInValid(false, false))
	assert.False(t, CheckInValid(false, true))
}

func TestDurationMinutesBetween(t *testing.T) {
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DurationMinutesBetween(base, base))
	assert.Equal(t, 30, DurationMinutesBetween(base, base.Add(30*time.Minute)))
	assert.Equal(t, 1, DurationMinutesBetween(base, base.Add(90*time.Second)))
	assert.Equal(t, 0, DurationMinutesBetween(base, base.Add(29*time.Second)))
	assert.Equal(t, 45, DurationMinutesBetween(base, base.Add(45*time.Minute+10*time.Second)))
}

func TestVisitTransitions(t *testing.T) {
	checkIn := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("complete from in progress", func(t *testing.T) {
		v := &Visit{Status: VisitInProgress, CheckInAt: checkIn}
		notes := "ok"

		assert.True(t, v.Complete(checkIn.Add(20*time.Minute), &notes, nil))
		assert.Equal(t, VisitCompleted, v.Status)
		assert.NotNil(t, v.CheckOutAt)
		assert.Equal(t, 20, *v.DurationMinutes)
		assert.Equal(t, &notes, v.Notes)
	})

	t.Run("terminal states have no exits", func(t *testing.T) {
		for _, status := range []VisitStatus{VisitCompleted, VisitCancelled} {
			v := &Visit{Status: status, CheckInAt: checkIn}
			assert.False(t, v.Complete(checkIn.Add(time.Minute), nil, nil))
			assert.False(t, v.Cancel(checkIn.Add(time.Minute), "late"))
			assert.Equal(t, status, v.Status)
			assert.True(t, status.IsTerminal())
		}
	})

	t.Run("cancel leaves duration unset", func(t *testing.T) {
		v := &Visit{Status: VisitInProgress, CheckInAt: checkIn}

		assert.True(t, v.Cancel(checkIn.Add(time.Minute), "wrong store"))
		assert.Equal(t, VisitCancelled, v.Status)
		assert.Nil(t, v.DurationMinutes)
		assert.Nil(t, v.CheckOutAt)
		assert.Equal(t, "wrong store", *v.CancelReason)
	})
}

func TestValidCoordinate(t *testing.T) {
	assert.True(t, ValidCoordinate(90, 180))
	assert.True(t, ValidCoordinate(-90, -180))
	assert.False(t, ValidCoordinate(90.0001, 0))
	assert.False(t, ValidCoordinate(0, -180.5))
}
