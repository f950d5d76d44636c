package usecase

import (
	"context"
	"time"

	"go-medical-booking/internal/converter"
	"go-medical-booking/internal/delivery/dto"
	"go-medical-booking/internal/domain/entity"
	"go-medical-booking/internal/domain/repository"
	"go-medical-booking/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrProviderNotFound = apperror.NotFound("provider not found")
)

type AvailabilityUsecase interface {
	ResolveAvailability(ctx context.Context, providerID uuid.UUID, date string) (*dto.AvailabilityResponse, error)
	IsBlackoutDay(ctx context.Context, providerID uuid.UUID, date string) (*dto.BlackoutResponse, error)
	GetDayAvailability(ctx context.Context, providerID uuid.UUID, date string) (*dto.DayAvailabilityResponse, error)
}

// calendar composes recurring schedules with exceptions. Resolving windows
// never looks at exceptions; callers combine the two.
type calendar struct {
	scheduleRepo  repository.RecurringScheduleRepository
	exceptionRepo repository.ScheduleExceptionRepository
}

// resolveWindows returns the windows of every entry matching the date's
// weekday and effective range, in start order. Overlapping entries are kept.
func (c calendar) resolveWindows(db *gorm.DB, providerID uuid.UUID, date time.Time) ([]entity.AvailabilityWindow, error) {
	schedules, err := c.scheduleRepo.FindByProviderAndDay(db, providerID, entity.Weekday(date))
	if err != nil {
		return nil, err
	}

	windows := make([]entity.AvailabilityWindow, 0, len(schedules))
	for i := range schedules {
		if schedules[i].AppliesOn(date) {
			windows = append(windows, schedules[i].Window())
		}
	}
	return windows, nil
}

// findBlackout returns the first exception covering date, or nil.
func (c calendar) findBlackout(db *gorm.DB, providerID uuid.UUID, date time.Time) (*entity.ScheduleException, error) {
	exceptions, err := c.exceptionRepo.FindByProviderOnDate(db, providerID, date)
	if err != nil {
		return nil, err
	}
	for i := range exceptions {
		if exceptions[i].Covers(date) {
			return &exceptions[i], nil
		}
	}
	return nil, nil
}

// bookableWindows is the day availability offered to booking callers
func (c calendar) bookableWindows(db *gorm.DB, providerID uuid.UUID, date time.Time) ([]entity.AvailabilityWindow, *entity.ScheduleException, error) {
	blackout, err := c.findBlackout(db, providerID, date)
	if err != nil {
		return nil, nil, err
	}
	if blackout != nil {
		return []entity.AvailabilityWindow{}, blackout, nil
	}
	windows, err := c.resolveWindows(db, providerID, date)
	if err != nil {
		return nil, nil, err
	}
	return windows, nil, nil
}

type availabilityUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	calendar     calendar
	providerRepo repository.ProviderRepository
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	scheduleRepo repository.RecurringScheduleRepository,
	exceptionRepo repository.ScheduleExceptionRepository,
	providerRepo repository.ProviderRepository,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:           db,
		log:          log,
		calendar:     calendar{scheduleRepo: scheduleRepo, exceptionRepo: exceptionRepo},
		providerRepo: providerRepo,
	}
}

func (u *availabilityUsecase) ResolveAvailability(ctx context.Context, providerID uuid.UUID, date string) (*dto.AvailabilityResponse, error) {
	day, err := u.prepare(ctx, providerID, date)
	if err != nil {
		return nil, err
	}

	windows, err := u.calendar.resolveWindows(u.db.WithContext(ctx), providerID, day)
	if err != nil {
		u.log.Warnf("Failed to resolve windows for provider %s: %+v", providerID, err)
		return nil, err
	}

	return &dto.AvailabilityResponse{
		ProviderID: providerID,
		Date:       day.Format(entity.DateLayout),
		Windows:    converter.WindowsToResponses(windows),
	}, nil
}

func (u *availabilityUsecase) IsBlackoutDay(ctx context.Context, providerID uuid.UUID, date string) (*dto.BlackoutResponse, error) {
	day, err := u.prepare(ctx, providerID, date)
	if err != nil {
		return nil, err
	}

	exception, err := u.calendar.findBlackout(u.db.WithContext(ctx), providerID, day)
	if err != nil {
		u.log.Warnf("Failed to find exceptions for provider %s: %+v", providerID, err)
		return nil, err
	}

	response := converter.BlackoutToResponse(exception)
	return &response, nil
}

func (u *availabilityUsecase) GetDayAvailability(ctx context.Context, providerID uuid.UUID, date string) (*dto.DayAvailabilityResponse, error) {
	day, err := u.prepare(ctx, providerID, date)
	if err != nil {
		return nil, err
	}

	windows, exception, err := u.calendar.bookableWindows(u.db.WithContext(ctx), providerID, day)
	if err != nil {
		u.log.Warnf("Failed to build day availability for provider %s: %+v", providerID, err)
		return nil, err
	}

	return &dto.DayAvailabilityResponse{
		ProviderID: providerID,
		Date:       day.Format(entity.DateLayout),
		Blackout:   converter.BlackoutToResponse(exception),
		Windows:    converter.WindowsToResponses(windows),
	}, nil
}

func (u *availabilityUsecase) prepare(ctx context.Context, providerID uuid.UUID, date string) (time.Time, error) {
	day, err := parseDate(date)
	if err != nil {
		return time.Time{}, err
	}

	provider, err := u.providerRepo.FindByID(u.db.WithContext(ctx), providerID)
	if err != nil {
		u.log.Warnf("Failed to find provider %s: %+v", providerID, err)
		return time.Time{}, err
	}
	if provider == nil {
		return time.Time{}, ErrProviderNotFound
	}
	return day, nil
}
