package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitionTable_NilAllowsEverything(t *testing.T) {
	var table TransitionTable
	for _, from := range AllAppointmentStatuses {
		for _, to := range AllAppointmentStatuses {
			assert.True(t, table.Allows(from, to), "%s -> %s", from, to)
		}
	}
}

func TestTransitionTable_Default(t *testing.T) {
	table := DefaultTransitionTable()

	assert.True(t, table.Allows(AppointmentStatusWaiting, AppointmentStatusInProgress))
	assert.True(t, table.Allows(AppointmentStatusWaiting, AppointmentStatusCancelled))
	assert.True(t, table.Allows(AppointmentStatusInProgress, AppointmentStatusCompleted))
	assert.False(t, table.Allows(AppointmentStatusCompleted, AppointmentStatusWaiting))
	assert.False(t, table.Allows(AppointmentStatusCancelled, AppointmentStatusWaiting))
	assert.False(t, table.Allows(AppointmentStatusWaiting, AppointmentStatusCompleted))
	assert.NoError(t, table.Validate())
}

func TestTransitionTable_ValidateUnknown(t *testing.T) {
	table := TransitionTable{"BOOKED": {AppointmentStatusCompleted}}
	assert.Error(t, table.Validate())

	table = TransitionTable{AppointmentStatusWaiting: {"DONE"}}
	assert.Error(t, table.Validate())
}

func TestAppointmentStatus_OccupiesWorkload(t *testing.T) {
	assert.True(t, AppointmentStatusWaiting.OccupiesWorkload())
	assert.True(t, AppointmentStatusInProgress.OccupiesWorkload())
	assert.True(t, AppointmentStatusCompleted.OccupiesWorkload())
	assert.False(t, AppointmentStatusNoShow.OccupiesWorkload())
	assert.False(t, AppointmentStatusCancelled.OccupiesWorkload())
	assert.False(t, AppointmentStatusRescheduled.OccupiesWorkload())
}
