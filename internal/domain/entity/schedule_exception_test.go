package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScheduleException_Covers(t *testing.T) {
	e := ScheduleException{
		ExceptionType: ExceptionTypeVacation,
		DateFrom:      date(2024, 3, 1),
		DateTo:        date(2024, 3, 10),
	}

	assert.True(t, e.Covers(date(2024, 3, 1)))
	assert.True(t, e.Covers(datetime(2024, 3, 4, 10, 0)))
	assert.True(t, e.Covers(datetime(2024, 3, 10, 23, 59)))
	assert.False(t, e.Covers(date(2024, 2, 29)))
	assert.False(t, e.Covers(date(2024, 3, 11)))
}

func TestScheduleException_Validate(t *testing.T) {
	e := ScheduleException{DateFrom: date(2024, 3, 10), DateTo: date(2024, 3, 1)}
	assert.ErrorIs(t, e.Validate(), ErrExceptionDateOrder)

	e.DateTo = e.DateFrom
	assert.NoError(t, e.Validate())
}

func TestExceptionType_IsValid(t *testing.T) {
	assert.True(t, ExceptionTypeSickLeave.IsValid())
	assert.False(t, ExceptionType("HOLIDAY").IsValid())
}
