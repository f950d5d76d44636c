package usecase

import (
	"testing"

	"go-medical-booking/internal/delivery/dto"
	"go-medical-booking/internal/domain/entity"
	"go-medical-booking/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExceptionLifecycle(t *testing.T) {
	env := newTestEnv(t)
	uc := env.exceptionUsecase()

	created, err := uc.CreateException(env.asAdmin(), &dto.CreateExceptionRequest{
		ProviderID:    env.providerID,
		ExceptionType: "VACATION",
		DateFrom:      "2024-03-04",
		DateTo:        "2024-03-08",
		Reason:        "conference",
	})
	require.NoError(t, err)
	assert.Equal(t, "VACATION", created.ExceptionType)
	assert.Equal(t, "2024-03-04", created.DateFrom)
	assert.Equal(t, "2024-03-08", created.DateTo)
	assert.Equal(t, env.adminID, created.CreatedBy)

	blackout, err := env.availabilityUsecase().IsBlackoutDay(env.asAdmin(), env.providerID, "2024-03-06")
	require.NoError(t, err)
	assert.True(t, blackout.Blackout)

	got, err := uc.GetException(env.asAdmin(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "conference", got.Reason)

	require.NoError(t, uc.DeleteException(env.asAdmin(), created.ID))
	_, err = uc.GetException(env.asAdmin(), created.ID)
	assertKind(t, err, apperror.KindNotFound)

	blackout, err = env.availabilityUsecase().IsBlackoutDay(env.asAdmin(), env.providerID, "2024-03-06")
	require.NoError(t, err)
	assert.False(t, blackout.Blackout)

	assert.ElementsMatch(t, []string{
		entity.AuditActionExceptionCreate,
		entity.AuditActionExceptionDelete,
	}, env.auditActions(t))
}

func TestCreateException_Validation(t *testing.T) {
	env := newTestEnv(t)
	uc := env.exceptionUsecase()

	_, err := uc.CreateException(env.asAdmin(), &dto.CreateExceptionRequest{
		ProviderID: env.providerID, ExceptionType: "SICK_LEAVE", DateFrom: "2024-03-08", DateTo: "2024-03-04",
	})
	assertKind(t, err, apperror.KindBadRequest)
	assert.Equal(t, "date from must be before or equal to date to", apperror.MessageOf(err))

	_, err = uc.CreateException(env.asAdmin(), &dto.CreateExceptionRequest{
		ProviderID: env.providerID, ExceptionType: "HOLIDAY", DateFrom: "2024-03-04", DateTo: "2024-03-04",
	})
	assertKind(t, err, apperror.KindBadRequest)

	_, err = uc.CreateException(env.asAdmin(), &dto.CreateExceptionRequest{
		ProviderID: uuid.New(), ExceptionType: "OTHER", DateFrom: "2024-03-04", DateTo: "2024-03-04",
	})
	assertKind(t, err, apperror.KindNotFound)

	// single-day exception is valid
	_, err = uc.CreateException(env.asAdmin(), &dto.CreateExceptionRequest{
		ProviderID: env.providerID, ExceptionType: "OTHER", DateFrom: "2024-03-04", DateTo: "2024-03-04",
	})
	assert.NoError(t, err)
}

func TestListExceptions(t *testing.T) {
	env := newTestEnv(t)
	env.seedException(t, env.providerID, entity.ExceptionTypeVacation, date(2024, 1, 10), date(2024, 1, 20), "")
	env.seedException(t, env.providerID, entity.ExceptionTypeSickLeave, date(2024, 3, 1), date(2024, 3, 2), "")
	env.seedException(t, env.otherDocID, entity.ExceptionTypeOther, date(2024, 3, 1), date(2024, 3, 2), "")
	uc := env.exceptionUsecase()

	all, err := uc.ListExceptions(env.asDoctor(), env.providerID, "", "")
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)

	ranged, err := uc.ListExceptions(env.asAdmin(), env.providerID, "2024-01-20", "2024-02-28")
	require.NoError(t, err)
	require.Equal(t, 1, ranged.Total)
	assert.Equal(t, "VACATION", ranged.Exceptions[0].ExceptionType)

	_, err = uc.ListExceptions(env.asOtherDoctor(), env.providerID, "", "")
	assertKind(t, err, apperror.KindAccessDenied)
}

func TestAffectedAppointments(t *testing.T) {
	env := newTestEnv(t)
	inside := env.seedAppointment(t, date(2024, 3, 5), "10:00", "10:30", entity.AppointmentStatusWaiting)
	env.seedAppointment(t, date(2024, 3, 5), "11:00", "11:30", entity.AppointmentStatusCancelled)
	env.seedAppointment(t, date(2024, 3, 9), "10:00", "10:30", entity.AppointmentStatusWaiting)
	uc := env.exceptionUsecase()

	resp, err := uc.AffectedAppointments(env.asAdmin(), env.providerID, "2024-03-04", "2024-03-08")
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, inside.ID, resp.Appointments[0].ID)

	_, err = uc.AffectedAppointments(env.asAdmin(), env.providerID, "2024-03-08", "2024-03-04")
	assertKind(t, err, apperror.KindBadRequest)

	_, err = uc.AffectedAppointments(env.asPatient(), env.providerID, "2024-03-04", "2024-03-08")
	assertKind(t, err, apperror.KindAccessDenied)
}
