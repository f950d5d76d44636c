package usecase

import (
	"context"
	"strconv"

	"go-medical-booking/internal/converter"
	"go-medical-booking/internal/delivery/dto"
	"go-medical-booking/internal/domain/entity"
	"go-medical-booking/internal/domain/repository"
	"go-medical-booking/internal/service"
	"go-medical-booking/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrExceptionNotFound    = apperror.NotFound("schedule exception not found")
	ErrInvalidExceptionType = apperror.BadRequest("exception type must be VACATION, SICK_LEAVE or OTHER")
)

type ScheduleExceptionUsecase interface {
	CreateException(ctx context.Context, req *dto.CreateExceptionRequest) (*dto.ExceptionResponse, error)
	GetException(ctx context.Context, exceptionID int) (*dto.ExceptionResponse, error)
	DeleteException(ctx context.Context, exceptionID int) error
	// ListExceptions lists a provider's exceptions, restricted to those
	// intersecting [from, to] when both bounds are given.
	ListExceptions(ctx context.Context, providerID uuid.UUID, from, to string) (*dto.ExceptionListResponse, error)
	// AffectedAppointments lists active appointments inside [from, to], the
	// ones a new exception would strand.
	AffectedAppointments(ctx context.Context, providerID uuid.UUID, from, to string) (*dto.AppointmentListResponse, error)
}

type scheduleExceptionUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	exceptionRepo   repository.ScheduleExceptionRepository
	providerRepo    repository.ProviderRepository
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	auditService    service.AuditService
}

func NewScheduleExceptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	exceptionRepo repository.ScheduleExceptionRepository,
	providerRepo repository.ProviderRepository,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) ScheduleExceptionUsecase {
	return &scheduleExceptionUsecase{
		db:              db,
		log:             log,
		exceptionRepo:   exceptionRepo,
		providerRepo:    providerRepo,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		auditService:    auditService,
	}
}

func (u *scheduleExceptionUsecase) CreateException(ctx context.Context, req *dto.CreateExceptionRequest) (*dto.ExceptionResponse, error) {
	actorID, err := actorUserID(ctx)
	if err != nil {
		return nil, err
	}

	exceptionType := entity.ExceptionType(req.ExceptionType)
	if !exceptionType.IsValid() {
		return nil, ErrInvalidExceptionType
	}
	dateFrom, dateTo, err := parseDateRange(req.DateFrom, req.DateTo)
	if err != nil {
		return nil, err
	}

	if err := u.ensureProvider(ctx, req.ProviderID); err != nil {
		return nil, err
	}

	exception := &entity.ScheduleException{
		ProviderID:    req.ProviderID,
		ExceptionType: exceptionType,
		DateFrom:      dateFrom,
		DateTo:        dateTo,
		Reason:        req.Reason,
		CreatedBy:     actorID,
	}
	if err := exception.Validate(); err != nil {
		return nil, apperror.Wrap(apperror.KindBadRequest, err.Error(), err)
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.exceptionRepo.Create(tx, exception); err != nil {
		u.log.Warnf("Failed to create schedule exception: %+v", err)
		return nil, err
	}

	response := converter.ExceptionToResponse(exception)
	if err := u.auditService.Record(ctx, tx, service.AuditChange{
		Actor:    &actorID,
		Action:   entity.AuditActionExceptionCreate,
		Entity:   "schedule_exception",
		EntityID: strconv.Itoa(exception.ID),
		After:    response,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.WithFields(logrus.Fields{
		"provider_id": exception.ProviderID,
		"type":        exception.ExceptionType,
		"from":        response.DateFrom,
		"to":          response.DateTo,
	}).Info("Schedule exception created")

	return response, nil
}

func (u *scheduleExceptionUsecase) GetException(ctx context.Context, exceptionID int) (*dto.ExceptionResponse, error) {
	exception, err := u.exceptionRepo.FindByID(u.db.WithContext(ctx), exceptionID)
	if err != nil {
		u.log.Warnf("Failed to find schedule exception: %+v", err)
		return nil, err
	}
	if exception == nil {
		return nil, ErrExceptionNotFound
	}
	return converter.ExceptionToResponse(exception), nil
}

func (u *scheduleExceptionUsecase) DeleteException(ctx context.Context, exceptionID int) error {
	actorID, err := actorUserID(ctx)
	if err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	exception, err := u.exceptionRepo.FindByID(tx, exceptionID)
	if err != nil {
		u.log.Warnf("Failed to find schedule exception: %+v", err)
		return err
	}
	if exception == nil {
		return ErrExceptionNotFound
	}

	if _, err := u.exceptionRepo.Delete(tx, exceptionID); err != nil {
		u.log.Warnf("Failed to delete schedule exception: %+v", err)
		return err
	}

	if err := u.auditService.Record(ctx, tx, service.AuditChange{
		Actor:    &actorID,
		Action:   entity.AuditActionExceptionDelete,
		Entity:   "schedule_exception",
		EntityID: strconv.Itoa(exceptionID),
		Before:   converter.ExceptionToResponse(exception),
	}); err != nil {
		return err
	}

	return tx.Commit().Error
}

func (u *scheduleExceptionUsecase) ListExceptions(ctx context.Context, providerID uuid.UUID, from, to string) (*dto.ExceptionListResponse, error) {
	if err := u.authorizeProvider(ctx, providerID); err != nil {
		return nil, err
	}

	var (
		exceptions []entity.ScheduleException
		err        error
	)
	if from != "" && to != "" {
		dateFrom, dateTo, rangeErr := parseDateRange(from, to)
		if rangeErr != nil {
			return nil, rangeErr
		}
		exceptions, err = u.exceptionRepo.FindByProviderInRange(u.db.WithContext(ctx), providerID, dateFrom, dateTo)
	} else {
		exceptions, err = u.exceptionRepo.FindByProvider(u.db.WithContext(ctx), providerID)
	}
	if err != nil {
		u.log.Warnf("Failed to find schedule exceptions: %+v", err)
		return nil, err
	}

	return &dto.ExceptionListResponse{
		Exceptions: converter.ExceptionsToResponses(exceptions),
		Total:      len(exceptions),
	}, nil
}

func (u *scheduleExceptionUsecase) AffectedAppointments(ctx context.Context, providerID uuid.UUID, from, to string) (*dto.AppointmentListResponse, error) {
	dateFrom, dateTo, err := parseDateRange(from, to)
	if err != nil {
		return nil, err
	}
	if err := u.authorizeProvider(ctx, providerID); err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindActiveByProviderInRange(u.db.WithContext(ctx), providerID, dateFrom, dateTo)
	if err != nil {
		u.log.Warnf("Failed to find affected appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *scheduleExceptionUsecase) authorizeProvider(ctx context.Context, providerID uuid.UUID) error {
	actor, err := currentActor(ctx, u.db, u.patientRepo)
	if err != nil {
		return err
	}
	if err := authorize(actor, accessProvider(providerID)); err != nil {
		return err
	}
	return u.ensureProvider(ctx, providerID)
}

func (u *scheduleExceptionUsecase) ensureProvider(ctx context.Context, providerID uuid.UUID) error {
	provider, err := u.providerRepo.FindByID(u.db.WithContext(ctx), providerID)
	if err != nil {
		u.log.Warnf("Failed to find provider: %+v", err)
		return err
	}
	if provider == nil {
		return ErrProviderNotFound
	}
	return nil
}
