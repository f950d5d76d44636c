package usecase

import (
	"context"
	"errors"
	"time"

	"go-medical-booking/internal/converter"
	"go-medical-booking/internal/delivery/dto"
	"go-medical-booking/internal/domain/access"
	"go-medical-booking/internal/domain/entity"
	"go-medical-booking/internal/domain/repository"
	"go-medical-booking/internal/infrastructure/metrics"
	"go-medical-booking/internal/service"
	"go-medical-booking/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound    = apperror.NotFound("appointment not found")
	ErrPatientNotFound        = apperror.NotFound("patient not found")
	ErrServiceNotFound        = apperror.NotFound("service not found")
	ErrInvalidTimeRange       = apperror.BadRequest("start time must be before end time")
	ErrInvalidSource          = apperror.BadRequest("source must be ONLINE, IN_PERSON, PHONE or OTHER")
	ErrServiceNotOffered      = apperror.BadRequest("service is not offered by this provider")
	ErrScheduleOfOther        = apperror.BadRequest("schedule entry belongs to another provider")
	ErrAppointmentInactive    = apperror.BadRequest("cancelled or rescheduled appointments cannot be moved")
	ErrSlotConflict           = apperror.AlreadyExists("time slot overlaps an existing appointment")
	ErrSlotBusy               = apperror.AlreadyExists("another booking for this provider and date is in progress")
	ErrConcurrentModification = apperror.AlreadyExists("appointment was modified concurrently")
)

// BookingPolicy holds the configurable booking behaviour
type BookingPolicy struct {
	// EnforceConflictCheck rejects bookings overlapping an active appointment.
	// When false double booking is allowed, e.g. for walk-ins.
	EnforceConflictCheck bool
	// Transitions restricts status changes. Nil allows any transition.
	Transitions entity.TransitionTable
	// Location is the clinic time zone appointment times are expressed in.
	Location *time.Location
}

type AppointmentUsecase interface {
	// CheckConflict is advisory: it reports an overlap and never rejects.
	CheckConflict(ctx context.Context, query *dto.ConflictQuery) (*dto.ConflictResponse, error)
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateAppointmentTime(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentTimeRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	ListAppointments(ctx context.Context, req *dto.AppointmentFilterRequest) (*dto.AppointmentListResponse, error)
	GetUpcomingForPatient(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	policy          BookingPolicy
	appointmentRepo repository.AppointmentRepository
	historyRepo     repository.StatusHistoryRepository
	patientRepo     repository.PatientRepository
	providerRepo    repository.ProviderRepository
	serviceRepo     repository.MedicalServiceRepository
	scheduleRepo    repository.RecurringScheduleRepository
	slotLocker      service.SlotLocker
	now             func() time.Time
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	policy BookingPolicy,
	appointmentRepo repository.AppointmentRepository,
	historyRepo repository.StatusHistoryRepository,
	patientRepo repository.PatientRepository,
	providerRepo repository.ProviderRepository,
	serviceRepo repository.MedicalServiceRepository,
	scheduleRepo repository.RecurringScheduleRepository,
	slotLocker service.SlotLocker,
) AppointmentUsecase {
	if policy.Location == nil {
		policy.Location = time.Local
	}
	return &appointmentUsecase{
		db:              db,
		log:             log,
		policy:          policy,
		appointmentRepo: appointmentRepo,
		historyRepo:     historyRepo,
		patientRepo:     patientRepo,
		providerRepo:    providerRepo,
		serviceRepo:     serviceRepo,
		scheduleRepo:    scheduleRepo,
		slotLocker:      slotLocker,
		now:             time.Now,
	}
}

func (u *appointmentUsecase) CheckConflict(ctx context.Context, query *dto.ConflictQuery) (*dto.ConflictResponse, error) {
	actor, err := currentActor(ctx, u.db, u.patientRepo)
	if err != nil {
		return nil, err
	}
	if err := authorize(actor, accessProvider(query.ProviderID)); err != nil {
		return nil, err
	}

	date, start, end, err := u.interval(query.Date, query.StartTime, query.EndTime)
	if err != nil {
		return nil, err
	}

	conflict, err := hasConflict(u.db.WithContext(ctx), u.appointmentRepo, query.ProviderID, date, start, end, query.ExcludeAppointmentID)
	if err != nil {
		u.log.Warnf("Failed to check conflicts for provider %s: %+v", query.ProviderID, err)
		return nil, err
	}

	return &dto.ConflictResponse{Conflict: conflict}, nil
}

// CreateAppointment books a WAITING appointment and records the creation in
// the status history. Bookings for one provider and date are serialized so
// the overlap check and the insert cannot interleave with another booking.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	actor, err := currentActor(ctx, u.db, u.patientRepo)
	if err != nil {
		return nil, err
	}
	if err := authorize(actor, access.AppointmentResource{ProviderID: req.ProviderID, PatientID: req.PatientID}); err != nil {
		return nil, err
	}

	date, start, end, err := u.interval(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	source := entity.AppointmentSource(req.Source)
	if !source.IsValid() {
		return nil, ErrInvalidSource
	}

	if err := u.resolveReferences(ctx, req); err != nil {
		return nil, err
	}

	unlock, err := u.lockSlot(ctx, req.ProviderID, date)
	if err != nil {
		return nil, err
	}
	defer unlock()

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if u.policy.EnforceConflictCheck {
		conflict, err := hasConflict(tx, u.appointmentRepo, req.ProviderID, date, start, end, nil)
		if err != nil {
			u.log.Warnf("Failed to check conflicts: %+v", err)
			return nil, err
		}
		if conflict {
			metrics.IncBookingConflict()
			return nil, ErrSlotConflict
		}
	}

	appointment := &entity.Appointment{
		PatientID:       req.PatientID,
		ProviderID:      req.ProviderID,
		ServiceID:       req.ServiceID,
		ScheduleID:      req.ScheduleID,
		AppointmentDate: date,
		StartTime:       start,
		EndTime:         end,
		IsPaid:          req.IsPaid,
		Status:          entity.AppointmentStatusWaiting,
		Source:          source,
		CreatedBy:       actor.UserID,
		Version:         1,
	}
	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.historyRepo.Append(tx, &entity.StatusHistory{
		AppointmentID: appointment.ID,
		NewStatus:     entity.AppointmentStatusWaiting,
		ChangedBy:     actor.UserID,
	}); err != nil {
		u.log.Warnf("Failed to append creation history: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	metrics.IncAppointmentCreated(string(source))
	u.log.WithFields(logrus.Fields{
		"appointment_id": appointment.ID,
		"provider_id":    appointment.ProviderID,
		"patient_id":     appointment.PatientID,
		"start":          appointment.StartTime,
		"end":            appointment.EndTime,
	}).Info("Appointment created")

	return converter.AppointmentToResponse(appointment), nil
}

// UpdateAppointmentTime moves an active appointment, comparing the new
// interval against every other appointment of the target day.
func (u *appointmentUsecase) UpdateAppointmentTime(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentTimeRequest) (*dto.AppointmentResponse, error) {
	actor, err := currentActor(ctx, u.db, u.patientRepo)
	if err != nil {
		return nil, err
	}
	if !actor.IsStaff() {
		return nil, ErrAccessDenied
	}

	date, start, end, err := u.interval(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if err := authorize(actor, accessAppointment(appointment)); err != nil {
		return nil, err
	}
	if !appointment.IsActive() {
		return nil, ErrAppointmentInactive
	}

	unlock, err := u.lockSlot(ctx, appointment.ProviderID, date)
	if err != nil {
		return nil, err
	}
	defer unlock()

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if u.policy.EnforceConflictCheck {
		conflict, err := hasConflict(tx, u.appointmentRepo, appointment.ProviderID, date, start, end, &appointment.ID)
		if err != nil {
			u.log.Warnf("Failed to check conflicts: %+v", err)
			return nil, err
		}
		if conflict {
			metrics.IncBookingConflict()
			return nil, ErrSlotConflict
		}
	}

	appointment.AppointmentDate = date
	appointment.StartTime = start
	appointment.EndTime = end
	affected, err := u.appointmentRepo.UpdateTime(tx, appointment)
	if err != nil {
		u.log.Warnf("Failed to update appointment time: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrConcurrentModification
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.WithFields(logrus.Fields{
		"appointment_id": appointment.ID,
		"start":          start,
		"end":            end,
	}).Info("Appointment time changed")

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	actor, err := currentActor(ctx, u.db, u.patientRepo)
	if err != nil {
		return nil, err
	}

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if err := authorize(actor, accessAppointment(appointment)); err != nil {
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

// ListAppointments narrows the filter to what the actor may see: doctors
// only their own bookings, patients only their own appointments.
func (u *appointmentUsecase) ListAppointments(ctx context.Context, req *dto.AppointmentFilterRequest) (*dto.AppointmentListResponse, error) {
	actor, err := currentActor(ctx, u.db, u.patientRepo)
	if err != nil {
		return nil, err
	}

	filter := &entity.AppointmentFilter{
		ProviderID: req.ProviderID,
		PatientID:  req.PatientID,
	}
	if req.DateFrom != "" {
		from, err := parseDate(req.DateFrom)
		if err != nil {
			return nil, err
		}
		filter.DateFrom = &from
	}
	if req.DateTo != "" {
		to, err := parseDate(req.DateTo)
		if err != nil {
			return nil, err
		}
		filter.DateTo = &to
	}
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateTo.Before(*filter.DateFrom) {
		return nil, ErrDateRangeOrder
	}
	if req.Status != "" {
		status := entity.AppointmentStatus(req.Status)
		if !status.IsValid() {
			return nil, ErrInvalidStatus
		}
		filter.Status = &status
	}

	switch actor.RoleID {
	case entity.RoleIDDoctor:
		if filter.ProviderID != nil && *filter.ProviderID != actor.UserID {
			return nil, ErrAccessDenied
		}
		filter.ProviderID = uuidPtr(actor.UserID)
	case entity.RoleIDPatient:
		if actor.PatientID == nil {
			return nil, ErrAccessDenied
		}
		if filter.PatientID != nil && *filter.PatientID != *actor.PatientID {
			return nil, ErrAccessDenied
		}
		filter.PatientID = actor.PatientID
	case entity.RoleIDAdmin, entity.RoleIDRegistrar:
	default:
		return nil, ErrAccessDenied
	}

	appointments, err := u.appointmentRepo.FindByFilter(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetUpcomingForPatient(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	actor, err := currentActor(ctx, u.db, u.patientRepo)
	if err != nil {
		return nil, err
	}
	if err := authorize(actor, access.PatientResource{PatientID: patientID}); err != nil {
		return nil, err
	}

	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	appointments, err := u.appointmentRepo.FindUpcomingByPatient(u.db.WithContext(ctx), patientID, u.now().In(u.policy.Location))
	if err != nil {
		u.log.Warnf("Failed to find upcoming appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// interval parses a date and times of day into the appointment date and the
// start and end instants in the clinic zone.
func (u *appointmentUsecase) interval(date, startTime, endTime string) (time.Time, time.Time, time.Time, error) {
	day, err := parseDate(date)
	if err != nil {
		return time.Time{}, time.Time{}, time.Time{}, err
	}
	startClock, err := parseClock(startTime)
	if err != nil {
		return time.Time{}, time.Time{}, time.Time{}, err
	}
	endClock, err := parseClock(endTime)
	if err != nil {
		return time.Time{}, time.Time{}, time.Time{}, err
	}
	if startClock >= endClock {
		return time.Time{}, time.Time{}, time.Time{}, ErrInvalidTimeRange
	}
	return day, startClock.On(day, u.policy.Location), endClock.On(day, u.policy.Location), nil
}

func (u *appointmentUsecase) resolveReferences(ctx context.Context, req *dto.CreateAppointmentRequest) error {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	provider, err := u.providerRepo.FindByID(db, req.ProviderID)
	if err != nil {
		u.log.Warnf("Failed to find provider: %+v", err)
		return err
	}
	if provider == nil {
		return ErrProviderNotFound
	}

	medicalService, err := u.serviceRepo.FindByID(db, req.ServiceID)
	if err != nil {
		u.log.Warnf("Failed to find service: %+v", err)
		return err
	}
	if medicalService == nil {
		return ErrServiceNotFound
	}

	if req.ScheduleID != nil {
		schedule, err := u.scheduleRepo.FindByID(db, *req.ScheduleID)
		if err != nil {
			u.log.Warnf("Failed to find schedule: %+v", err)
			return err
		}
		if schedule == nil {
			return ErrScheduleNotFound
		}
		if schedule.ProviderID != req.ProviderID {
			return ErrScheduleOfOther
		}
	}

	offered, err := u.serviceRepo.IsOfferedBy(db, req.ProviderID, req.ServiceID)
	if err != nil {
		u.log.Warnf("Failed to check provider service: %+v", err)
		return err
	}
	if !offered {
		return ErrServiceNotOffered
	}
	return nil
}

func (u *appointmentUsecase) lockSlot(ctx context.Context, providerID uuid.UUID, date time.Time) (func(), error) {
	unlock, err := u.slotLocker.Lock(ctx, providerID, date)
	if err != nil {
		if errors.Is(err, service.ErrSlotBusy) {
			return nil, ErrSlotBusy
		}
		u.log.Warnf("Failed to lock provider %s on %s: %+v", providerID, date.Format(entity.DateLayout), err)
		return nil, err
	}
	return unlock, nil
}

// hasConflict reports whether [start, end) strictly overlaps an active
// appointment of the provider on date. Touching intervals do not conflict.
func hasConflict(db *gorm.DB, repo repository.AppointmentRepository, providerID uuid.UUID, date, start, end time.Time, exclude *uuid.UUID) (bool, error) {
	appointments, err := repo.FindActiveByProviderAndDate(db, providerID, date)
	if err != nil {
		return false, err
	}
	for i := range appointments {
		if exclude != nil && appointments[i].ID == *exclude {
			continue
		}
		if appointments[i].Overlaps(start, end) {
			return true, nil
		}
	}
	return false, nil
}
