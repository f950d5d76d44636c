package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	Register()
	Register()

	before := testutil.ToFloat64(appointmentCreated.WithLabelValues("PHONE"))
	IncAppointmentCreated("PHONE")
	assert.Equal(t, before+1, testutil.ToFloat64(appointmentCreated.WithLabelValues("PHONE")))

	before = testutil.ToFloat64(statusTransition.WithLabelValues("WAITING", "CANCELLED"))
	IncStatusTransition("WAITING", "CANCELLED")
	assert.Equal(t, before+1, testutil.ToFloat64(statusTransition.WithLabelValues("WAITING", "CANCELLED")))

	before = testutil.ToFloat64(bookingConflict)
	IncBookingConflict()
	assert.Equal(t, before+1, testutil.ToFloat64(bookingConflict))
}
