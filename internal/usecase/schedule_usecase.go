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
	ErrScheduleNotFound = apperror.NotFound("schedule entry not found")
)

type ScheduleUsecase interface {
	CreateSchedule(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error)
	GetSchedule(ctx context.Context, scheduleID int) (*dto.ScheduleResponse, error)
	GetSchedulesByProvider(ctx context.Context, providerID uuid.UUID) (*dto.ScheduleListResponse, error)
	UpdateSchedule(ctx context.Context, scheduleID int, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error)
	DeleteSchedule(ctx context.Context, scheduleID int) error
}

type scheduleUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	scheduleRepo repository.RecurringScheduleRepository
	providerRepo repository.ProviderRepository
	auditService service.AuditService
}

func NewScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	scheduleRepo repository.RecurringScheduleRepository,
	providerRepo repository.ProviderRepository,
	auditService service.AuditService,
) ScheduleUsecase {
	return &scheduleUsecase{
		db:           db,
		log:          log,
		scheduleRepo: scheduleRepo,
		providerRepo: providerRepo,
		auditService: auditService,
	}
}

func (u *scheduleUsecase) CreateSchedule(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	actorID, err := actorUserID(ctx)
	if err != nil {
		return nil, err
	}

	provider, err := u.providerRepo.FindByID(u.db.WithContext(ctx), req.ProviderID)
	if err != nil {
		u.log.Warnf("Failed to find provider: %+v", err)
		return nil, err
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}

	schedule := &entity.RecurringSchedule{ProviderID: req.ProviderID}
	if err := applyScheduleFields(schedule, scheduleFields{
		DayOfWeek:     req.DayOfWeek,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		PaidStartTime: req.PaidStartTime,
		PaidEndTime:   req.PaidEndTime,
		Location:      req.Location,
		EffectiveFrom: req.EffectiveFrom,
		EffectiveTo:   req.EffectiveTo,
	}); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.scheduleRepo.Create(tx, schedule); err != nil {
		u.log.Warnf("Failed to create schedule: %+v", err)
		return nil, err
	}

	response := converter.ScheduleToResponse(schedule)
	if err := u.auditService.Record(ctx, tx, service.AuditChange{
		Actor:    &actorID,
		Action:   entity.AuditActionScheduleCreate,
		Entity:   "recurring_schedule",
		EntityID: strconv.Itoa(schedule.ID),
		After:    response,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

func (u *scheduleUsecase) GetSchedule(ctx context.Context, scheduleID int) (*dto.ScheduleResponse, error) {
	schedule, err := u.scheduleRepo.FindByID(u.db.WithContext(ctx), scheduleID)
	if err != nil {
		u.log.Warnf("Failed to find schedule: %+v", err)
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	return converter.ScheduleToResponse(schedule), nil
}

func (u *scheduleUsecase) GetSchedulesByProvider(ctx context.Context, providerID uuid.UUID) (*dto.ScheduleListResponse, error) {
	schedules, err := u.scheduleRepo.FindByProvider(u.db.WithContext(ctx), providerID)
	if err != nil {
		u.log.Warnf("Failed to find schedules: %+v", err)
		return nil, err
	}

	return &dto.ScheduleListResponse{
		Schedules: converter.SchedulesToResponses(schedules),
		Total:     len(schedules),
	}, nil
}

func (u *scheduleUsecase) UpdateSchedule(ctx context.Context, scheduleID int, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error) {
	actorID, err := actorUserID(ctx)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	schedule, err := u.scheduleRepo.FindByID(tx, scheduleID)
	if err != nil {
		u.log.Warnf("Failed to find schedule: %+v", err)
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}
	before := converter.ScheduleToResponse(schedule)

	if err := applyScheduleFields(schedule, scheduleFields{
		DayOfWeek:     req.DayOfWeek,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		PaidStartTime: req.PaidStartTime,
		PaidEndTime:   req.PaidEndTime,
		Location:      req.Location,
		EffectiveFrom: req.EffectiveFrom,
		EffectiveTo:   req.EffectiveTo,
	}); err != nil {
		return nil, err
	}

	if err := u.scheduleRepo.Update(tx, schedule); err != nil {
		u.log.Warnf("Failed to update schedule: %+v", err)
		return nil, err
	}

	after := converter.ScheduleToResponse(schedule)
	if err := u.auditService.Record(ctx, tx, service.AuditChange{
		Actor:    &actorID,
		Action:   entity.AuditActionScheduleUpdate,
		Entity:   "recurring_schedule",
		EntityID: strconv.Itoa(schedule.ID),
		Before:   before,
		After:    after,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return after, nil
}

// DeleteSchedule removes the entry. Appointments keep their schedule id for
// traceability only, so nothing cascades.
func (u *scheduleUsecase) DeleteSchedule(ctx context.Context, scheduleID int) error {
	actorID, err := actorUserID(ctx)
	if err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	schedule, err := u.scheduleRepo.FindByID(tx, scheduleID)
	if err != nil {
		u.log.Warnf("Failed to find schedule: %+v", err)
		return err
	}
	if schedule == nil {
		return ErrScheduleNotFound
	}

	if _, err := u.scheduleRepo.Delete(tx, scheduleID); err != nil {
		u.log.Warnf("Failed to delete schedule: %+v", err)
		return err
	}

	if err := u.auditService.Record(ctx, tx, service.AuditChange{
		Actor:    &actorID,
		Action:   entity.AuditActionScheduleDelete,
		Entity:   "recurring_schedule",
		EntityID: strconv.Itoa(scheduleID),
		Before:   converter.ScheduleToResponse(schedule),
	}); err != nil {
		return err
	}

	return tx.Commit().Error
}

type scheduleFields struct {
	DayOfWeek     int
	StartTime     string
	EndTime       string
	PaidStartTime *string
	PaidEndTime   *string
	Location      *string
	EffectiveFrom string
	EffectiveTo   *string
}

// applyScheduleFields parses the request fields onto schedule and validates
// the entry invariants.
func applyScheduleFields(schedule *entity.RecurringSchedule, f scheduleFields) error {
	start, err := parseClock(f.StartTime)
	if err != nil {
		return err
	}
	end, err := parseClock(f.EndTime)
	if err != nil {
		return err
	}
	effectiveFrom, err := parseDate(f.EffectiveFrom)
	if err != nil {
		return err
	}

	schedule.DayOfWeek = f.DayOfWeek
	schedule.StartTime = start.String()
	schedule.EndTime = end.String()
	schedule.Location = f.Location
	schedule.EffectiveFrom = effectiveFrom
	schedule.PaidStartTime = nil
	schedule.PaidEndTime = nil
	schedule.EffectiveTo = nil

	if f.PaidStartTime != nil {
		paidStart, err := parseClock(*f.PaidStartTime)
		if err != nil {
			return err
		}
		v := paidStart.String()
		schedule.PaidStartTime = &v
	}
	if f.PaidEndTime != nil {
		paidEnd, err := parseClock(*f.PaidEndTime)
		if err != nil {
			return err
		}
		v := paidEnd.String()
		schedule.PaidEndTime = &v
	}
	if f.EffectiveTo != nil {
		effectiveTo, err := parseDate(*f.EffectiveTo)
		if err != nil {
			return err
		}
		schedule.EffectiveTo = &effectiveTo
	}

	if err := schedule.Validate(); err != nil {
		return apperror.Wrap(apperror.KindBadRequest, err.Error(), err)
	}
	return nil
}
