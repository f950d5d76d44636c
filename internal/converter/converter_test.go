package converter

import (
	"testing"
	"time"

	"go-medical-booking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleToResponse_NormalisesClock(t *testing.T) {
	paidStart, paidEnd := "09:00:00", "12:00:00"
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	resp := ScheduleToResponse(&entity.RecurringSchedule{
		ID:            3,
		DayOfWeek:     1,
		StartTime:     "09:00:00",
		EndTime:       "17:00",
		PaidStartTime: &paidStart,
		PaidEndTime:   &paidEnd,
		EffectiveFrom: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EffectiveTo:   &to,
	})

	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "17:00", resp.EndTime)
	require.NotNil(t, resp.PaidStartTime)
	assert.Equal(t, "09:00", *resp.PaidStartTime)
	assert.Equal(t, "2024-01-01", resp.EffectiveFrom)
	require.NotNil(t, resp.EffectiveTo)
	assert.Equal(t, "2024-12-31", *resp.EffectiveTo)
}

func TestBlackoutToResponse(t *testing.T) {
	assert.False(t, BlackoutToResponse(nil).Blackout)

	resp := BlackoutToResponse(&entity.ScheduleException{
		ID:            9,
		ExceptionType: entity.ExceptionTypeVacation,
		DateFrom:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		DateTo:        time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	})
	assert.True(t, resp.Blackout)
	require.NotNil(t, resp.Type)
	assert.Equal(t, "VACATION", *resp.Type)
	assert.Nil(t, resp.Reason)
	assert.Equal(t, "2024-03-10", *resp.DateTo)
}

func TestStatusHistoryToResponse_CreationEntry(t *testing.T) {
	resp := StatusHistoryToResponse(&entity.StatusHistory{
		AppointmentID: uuid.New(),
		NewStatus:     entity.AppointmentStatusWaiting,
	})
	assert.Nil(t, resp.OldStatus)
	assert.Equal(t, "WAITING", resp.NewStatus)
}
