package repository

import (
	"testing"

	"go-medical-booking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentRepository_FindActiveByProviderAndDate(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentRepository()
	providerID, patientID := uuid.New(), uuid.New()

	waiting := seedAppointment(t, db, providerID, patientID, at(2024, 3, 4, 10, 0), at(2024, 3, 4, 10, 30), entity.AppointmentStatusWaiting)
	seedAppointment(t, db, providerID, patientID, at(2024, 3, 4, 11, 0), at(2024, 3, 4, 11, 30), entity.AppointmentStatusCancelled)
	seedAppointment(t, db, providerID, patientID, at(2024, 3, 4, 12, 0), at(2024, 3, 4, 12, 30), entity.AppointmentStatusRescheduled)
	noShow := seedAppointment(t, db, providerID, patientID, at(2024, 3, 4, 9, 0), at(2024, 3, 4, 9, 30), entity.AppointmentStatusNoShow)
	seedAppointment(t, db, providerID, patientID, at(2024, 3, 5, 10, 0), at(2024, 3, 5, 10, 30), entity.AppointmentStatusWaiting)
	seedAppointment(t, db, uuid.New(), patientID, at(2024, 3, 4, 10, 0), at(2024, 3, 4, 10, 30), entity.AppointmentStatusWaiting)

	active, err := repo.FindActiveByProviderAndDate(db, providerID, day(2024, 3, 4))
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, noShow.ID, active[0].ID, "ordered by start time")
	assert.Equal(t, waiting.ID, active[1].ID)

	all, err := repo.FindByProviderAndDate(db, providerID, day(2024, 3, 4))
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestAppointmentRepository_FindByFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentRepository()
	providerID, patientID, otherPatient := uuid.New(), uuid.New(), uuid.New()

	seedAppointment(t, db, providerID, patientID, at(2024, 3, 4, 10, 0), at(2024, 3, 4, 10, 30), entity.AppointmentStatusWaiting)
	seedAppointment(t, db, providerID, otherPatient, at(2024, 3, 6, 10, 0), at(2024, 3, 6, 10, 30), entity.AppointmentStatusCompleted)
	seedAppointment(t, db, providerID, patientID, at(2024, 3, 8, 10, 0), at(2024, 3, 8, 10, 30), entity.AppointmentStatusCompleted)

	from, to := day(2024, 3, 5), day(2024, 3, 8)
	completed := entity.AppointmentStatusCompleted
	got, err := repo.FindByFilter(db, &entity.AppointmentFilter{ProviderID: &providerID, DateFrom: &from, DateTo: &to, Status: &completed})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = repo.FindByFilter(db, &entity.AppointmentFilter{PatientID: &patientID})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = repo.FindByFilter(db, nil)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestAppointmentRepository_FindUpcomingByPatient(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentRepository()
	providerID, patientID := uuid.New(), uuid.New()

	seedAppointment(t, db, providerID, patientID, at(2024, 3, 3, 9, 0), at(2024, 3, 3, 9, 30), entity.AppointmentStatusWaiting)
	morning := seedAppointment(t, db, providerID, patientID, at(2024, 3, 4, 9, 0), at(2024, 3, 4, 9, 30), entity.AppointmentStatusInProgress)
	later := seedAppointment(t, db, providerID, patientID, at(2024, 3, 4, 15, 0), at(2024, 3, 4, 15, 30), entity.AppointmentStatusWaiting)
	seedAppointment(t, db, providerID, patientID, at(2024, 3, 4, 16, 0), at(2024, 3, 4, 16, 30), entity.AppointmentStatusCompleted)
	seedAppointment(t, db, providerID, patientID, at(2024, 3, 5, 9, 0), at(2024, 3, 5, 9, 30), entity.AppointmentStatusCancelled)
	next := seedAppointment(t, db, providerID, patientID, at(2024, 3, 6, 9, 0), at(2024, 3, 6, 9, 30), entity.AppointmentStatusWaiting)
	seedAppointment(t, db, providerID, uuid.New(), at(2024, 3, 6, 10, 0), at(2024, 3, 6, 10, 30), entity.AppointmentStatusWaiting)

	// The cut-off is the calendar day, so the 09:00 visit in progress is kept.
	got, err := repo.FindUpcomingByPatient(db, patientID, at(2024, 3, 4, 12, 0))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, morning.ID, got[0].ID)
	assert.Equal(t, later.ID, got[1].ID)
	assert.Equal(t, next.ID, got[2].ID)
}

func TestAppointmentRepository_CountByStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentRepository()
	providerID, patientID := uuid.New(), uuid.New()

	seedAppointment(t, db, providerID, patientID, at(2024, 3, 4, 9, 0), at(2024, 3, 4, 9, 30), entity.AppointmentStatusCompleted)
	seedAppointment(t, db, providerID, patientID, at(2024, 3, 4, 10, 0), at(2024, 3, 4, 10, 30), entity.AppointmentStatusCompleted)
	seedAppointment(t, db, providerID, patientID, at(2024, 3, 5, 9, 0), at(2024, 3, 5, 9, 30), entity.AppointmentStatusNoShow)
	seedAppointment(t, db, providerID, patientID, at(2024, 4, 1, 9, 0), at(2024, 4, 1, 9, 30), entity.AppointmentStatusNoShow)

	counts, err := repo.CountByStatus(db, providerID, day(2024, 3, 1), day(2024, 3, 31))
	require.NoError(t, err)
	assert.Equal(t, 2, counts[entity.AppointmentStatusCompleted])
	assert.Equal(t, 1, counts[entity.AppointmentStatusNoShow])
	assert.Equal(t, 0, counts[entity.AppointmentStatusWaiting])
}

func TestAppointmentRepository_UpdateStatusChecksVersion(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentRepository()
	a := seedAppointment(t, db, uuid.New(), uuid.New(), at(2024, 3, 4, 9, 0), at(2024, 3, 4, 9, 30), entity.AppointmentStatusWaiting)

	stale := *a

	reason := "patient request"
	a.ApplyStatus(entity.AppointmentStatusCancelled, &reason)
	affected, err := repo.UpdateStatus(db, a)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.Equal(t, 2, a.Version)

	stale.ApplyStatus(entity.AppointmentStatusInProgress, nil)
	affected, err = repo.UpdateStatus(db, &stale)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected, "stale version must not overwrite")

	stored, err := repo.FindByID(db, a.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusCancelled, stored.Status)
	require.NotNil(t, stored.CancelReason)
	assert.Equal(t, "patient request", *stored.CancelReason)
	assert.Equal(t, 2, stored.Version)
}

func TestAppointmentRepository_FindByIDMissing(t *testing.T) {
	db := newTestDB(t)
	got, err := NewAppointmentRepository().FindByID(db, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, got)
}
