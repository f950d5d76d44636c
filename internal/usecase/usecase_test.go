package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"go-medical-booking/internal/delivery/http/middleware"
	"go-medical-booking/internal/domain/entity"
	"go-medical-booking/internal/infrastructure/database"
	"go-medical-booking/internal/repository"
	"go-medical-booking/internal/service"
	"go-medical-booking/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// testEnv is a clinic with one provider offering one service and two patients.
type testEnv struct {
	db  *gorm.DB
	log *logrus.Logger

	adminID    uuid.UUID
	providerID uuid.UUID
	otherDocID uuid.UUID
	serviceID  uuid.UUID
	patientID  uuid.UUID
	otherPatID uuid.UUID
	patientUID uuid.UUID

	audit     service.AuditService
	slotLocks *service.SlotLockService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.NewSQLiteConnection(":memory:", "silent")
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	log := logrus.New()
	log.SetOutput(io.Discard)

	env := &testEnv{
		db:         db,
		log:        log,
		adminID:    uuid.New(),
		providerID: uuid.New(),
		otherDocID: uuid.New(),
		patientUID: uuid.New(),
		audit:      service.NewAuditService(log, repository.NewAuditLogRepository()),
		slotLocks:  service.NewSlotLockService(nil, log, time.Second),
	}
	t.Cleanup(env.slotLocks.Stop)

	providers := repository.NewProviderRepository()
	require.NoError(t, providers.Create(db, &entity.Provider{ID: env.providerID, FullName: "Dr. House", Specialization: "Diagnostics", IsActive: true}))
	require.NoError(t, providers.Create(db, &entity.Provider{ID: env.otherDocID, FullName: "Dr. Wilson", Specialization: "Oncology", IsActive: true}))

	services := repository.NewMedicalServiceRepository()
	consult := &entity.MedicalService{Name: "Consultation", DurationMinutes: 30, Price: decimal.RequireFromString("150.00")}
	require.NoError(t, services.Create(db, consult))
	env.serviceID = consult.ID
	require.NoError(t, services.AssignToProvider(db, &entity.ProviderService{ProviderID: env.providerID, ServiceID: consult.ID}))

	patients := repository.NewPatientRepository()
	p1 := &entity.Patient{UserID: &env.patientUID, FullName: "Jane Roe", DocumentNumber: "DOC-1", DateOfBirth: date(1990, 5, 1)}
	p2 := &entity.Patient{FullName: "John Doe", DocumentNumber: "DOC-2", DateOfBirth: date(1985, 1, 1)}
	require.NoError(t, patients.Create(db, p1))
	require.NoError(t, patients.Create(db, p2))
	env.patientID = p1.ID
	env.otherPatID = p2.ID

	return env
}

func (e *testEnv) asAdmin() context.Context {
	return middleware.WithIdentity(context.Background(), e.adminID, entity.RoleIDAdmin)
}

func (e *testEnv) asDoctor() context.Context {
	return middleware.WithIdentity(context.Background(), e.providerID, entity.RoleIDDoctor)
}

func (e *testEnv) asOtherDoctor() context.Context {
	return middleware.WithIdentity(context.Background(), e.otherDocID, entity.RoleIDDoctor)
}

func (e *testEnv) asPatient() context.Context {
	return middleware.WithIdentity(context.Background(), e.patientUID, entity.RoleIDPatient)
}

func (e *testEnv) appointmentUsecase(policy BookingPolicy) AppointmentUsecase {
	if policy.Location == nil {
		policy.Location = time.UTC
	}
	return NewAppointmentUsecase(
		e.db, e.log, policy,
		repository.NewAppointmentRepository(),
		repository.NewStatusHistoryRepository(),
		repository.NewPatientRepository(),
		repository.NewProviderRepository(),
		repository.NewMedicalServiceRepository(),
		repository.NewRecurringScheduleRepository(),
		e.slotLocks,
	)
}

func (e *testEnv) statusUsecase(table entity.TransitionTable) AppointmentStatusUsecase {
	return NewAppointmentStatusUsecase(
		e.db, e.log, table,
		repository.NewAppointmentRepository(),
		repository.NewStatusHistoryRepository(),
		repository.NewPatientRepository(),
	)
}

func (e *testEnv) availabilityUsecase() AvailabilityUsecase {
	return NewAvailabilityUsecase(
		e.db, e.log,
		repository.NewRecurringScheduleRepository(),
		repository.NewScheduleExceptionRepository(),
		repository.NewProviderRepository(),
	)
}

func (e *testEnv) workloadUsecase(slotMinutes int) WorkloadUsecase {
	return NewWorkloadUsecase(
		e.db, e.log, slotMinutes,
		repository.NewRecurringScheduleRepository(),
		repository.NewScheduleExceptionRepository(),
		repository.NewProviderRepository(),
		repository.NewAppointmentRepository(),
		repository.NewPatientRepository(),
	)
}

func (e *testEnv) exceptionUsecase() ScheduleExceptionUsecase {
	return NewScheduleExceptionUsecase(
		e.db, e.log,
		repository.NewScheduleExceptionRepository(),
		repository.NewProviderRepository(),
		repository.NewAppointmentRepository(),
		repository.NewPatientRepository(),
		e.audit,
	)
}

func (e *testEnv) scheduleUsecase() ScheduleUsecase {
	return NewScheduleUsecase(
		e.db, e.log,
		repository.NewRecurringScheduleRepository(),
		repository.NewProviderRepository(),
		e.audit,
	)
}

func (e *testEnv) directoryUsecase() DirectoryUsecase {
	return NewDirectoryUsecase(
		e.db, e.log,
		repository.NewUserRepository(),
		repository.NewPatientRepository(),
		repository.NewProviderRepository(),
		repository.NewMedicalServiceRepository(),
		e.audit,
	)
}

// seedSchedule stores a recurring entry directly.
func (e *testEnv) seedSchedule(t *testing.T, providerID uuid.UUID, dayOfWeek int, start, end string, from time.Time, to *time.Time) *entity.RecurringSchedule {
	t.Helper()
	s := &entity.RecurringSchedule{
		ProviderID:    providerID,
		DayOfWeek:     dayOfWeek,
		StartTime:     start,
		EndTime:       end,
		EffectiveFrom: from,
		EffectiveTo:   to,
	}
	require.NoError(t, s.Validate())
	require.NoError(t, repository.NewRecurringScheduleRepository().Create(e.db, s))
	return s
}

func (e *testEnv) seedException(t *testing.T, providerID uuid.UUID, typ entity.ExceptionType, from, to time.Time, reason string) *entity.ScheduleException {
	t.Helper()
	ex := &entity.ScheduleException{
		ProviderID:    providerID,
		ExceptionType: typ,
		DateFrom:      from,
		DateTo:        to,
		Reason:        reason,
		CreatedBy:     e.adminID,
	}
	require.NoError(t, repository.NewScheduleExceptionRepository().Create(e.db, ex))
	return ex
}

func (e *testEnv) seedAppointment(t *testing.T, day time.Time, start, end string, status entity.AppointmentStatus) *entity.Appointment {
	t.Helper()
	a := &entity.Appointment{
		PatientID:       e.otherPatID,
		ProviderID:      e.providerID,
		ServiceID:       e.serviceID,
		AppointmentDate: day,
		StartTime:       entity.MustParseClock(start).On(day, time.UTC),
		EndTime:         entity.MustParseClock(end).On(day, time.UTC),
		Status:          status,
		Source:          entity.AppointmentSourcePhone,
		CreatedBy:       e.adminID,
		Version:         1,
	}
	require.NoError(t, repository.NewAppointmentRepository().Create(e.db, a))
	return a
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func strPtr(s string) *string { return &s }

func assertKind(t *testing.T, err error, kind apperror.Kind) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, kind, apperror.KindOf(err), "unexpected error: %v", err)
}
