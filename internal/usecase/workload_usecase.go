package usecase

import (
	"context"
	"time"

	"go-medical-booking/internal/delivery/dto"
	"go-medical-booking/internal/domain/access"
	"go-medical-booking/internal/domain/entity"
	"go-medical-booking/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type WorkloadUsecase interface {
	GetProviderWorkload(ctx context.Context, providerID uuid.UUID, date string) (*dto.WorkloadResponse, error)
	GetClinicWorkload(ctx context.Context, date string) (*dto.ClinicWorkloadResponse, error)
	// GetNoShowRate returns no_show / (completed + no_show) * 100 over [from, to].
	GetNoShowRate(ctx context.Context, providerID uuid.UUID, from, to string) (*dto.NoShowRateResponse, error)
}

type workloadUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	slotMinutes     int
	calendar        calendar
	providerRepo    repository.ProviderRepository
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
}

func NewWorkloadUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	slotMinutes int,
	scheduleRepo repository.RecurringScheduleRepository,
	exceptionRepo repository.ScheduleExceptionRepository,
	providerRepo repository.ProviderRepository,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
) WorkloadUsecase {
	return &workloadUsecase{
		db:              db,
		log:             log,
		slotMinutes:     slotMinutes,
		calendar:        calendar{scheduleRepo: scheduleRepo, exceptionRepo: exceptionRepo},
		providerRepo:    providerRepo,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
	}
}

func (u *workloadUsecase) GetProviderWorkload(ctx context.Context, providerID uuid.UUID, date string) (*dto.WorkloadResponse, error) {
	actor, err := currentActor(ctx, u.db, u.patientRepo)
	if err != nil {
		return nil, err
	}
	if err := authorize(actor, accessProvider(providerID)); err != nil {
		return nil, err
	}

	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	provider, err := u.providerRepo.FindByID(u.db.WithContext(ctx), providerID)
	if err != nil {
		u.log.Warnf("Failed to find provider: %+v", err)
		return nil, err
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}

	return u.compute(u.db.WithContext(ctx), provider, day)
}

func (u *workloadUsecase) GetClinicWorkload(ctx context.Context, date string) (*dto.ClinicWorkloadResponse, error) {
	actor, err := currentActor(ctx, u.db, u.patientRepo)
	if err != nil {
		return nil, err
	}
	if err := authorize(actor, access.ClinicResource{}); err != nil {
		return nil, err
	}

	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)
	providers, err := u.providerRepo.FindAllActive(db)
	if err != nil {
		u.log.Warnf("Failed to find providers: %+v", err)
		return nil, err
	}

	response := &dto.ClinicWorkloadResponse{
		Date:      day.Format(entity.DateLayout),
		Providers: make([]dto.WorkloadResponse, 0, len(providers)),
	}
	for i := range providers {
		workload, err := u.compute(db, &providers[i], day)
		if err != nil {
			return nil, err
		}
		response.Providers = append(response.Providers, *workload)
	}
	return response, nil
}

func (u *workloadUsecase) GetNoShowRate(ctx context.Context, providerID uuid.UUID, from, to string) (*dto.NoShowRateResponse, error) {
	actor, err := currentActor(ctx, u.db, u.patientRepo)
	if err != nil {
		return nil, err
	}
	if err := authorize(actor, accessProvider(providerID)); err != nil {
		return nil, err
	}

	dateFrom, dateTo, err := parseDateRange(from, to)
	if err != nil {
		return nil, err
	}

	counts, err := u.appointmentRepo.CountByStatus(u.db.WithContext(ctx), providerID, dateFrom, dateTo)
	if err != nil {
		u.log.Warnf("Failed to count appointments by status: %+v", err)
		return nil, err
	}

	statusCounts := make(map[string]int, len(entity.AllAppointmentStatuses))
	total := 0
	for _, status := range entity.AllAppointmentStatuses {
		statusCounts[string(status)] = counts[status]
		total += counts[status]
	}

	noShow := counts[entity.AppointmentStatusNoShow]

	return &dto.NoShowRateResponse{
		ProviderID:   providerID,
		DateFrom:     dateFrom.Format(entity.DateLayout),
		DateTo:       dateTo.Format(entity.DateLayout),
		StatusCounts: statusCounts,
		Total:        total,
		NoShow:       noShow,
		Rate:         noShowRate(noShow, total),
	}, nil
}

// compute derives the workload from the bookable windows of the day, so a
// blackout day has zero slots.
func (u *workloadUsecase) compute(db *gorm.DB, provider *entity.Provider, day time.Time) (*dto.WorkloadResponse, error) {
	windows, blackout, err := u.calendar.bookableWindows(db, provider.ID, day)
	if err != nil {
		u.log.Warnf("Failed to resolve availability for provider %s: %+v", provider.ID, err)
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindByProviderAndDate(db, provider.ID, day)
	if err != nil {
		u.log.Warnf("Failed to find appointments for provider %s: %+v", provider.ID, err)
		return nil, err
	}
	occupied := 0
	for i := range appointments {
		if appointments[i].Status.OccupiesWorkload() {
			occupied++
		}
	}

	workload := entity.ComputeWorkload(windows, u.slotMinutes, occupied)
	return &dto.WorkloadResponse{
		ProviderID:   provider.ID,
		ProviderName: provider.FullName,
		Date:         day.Format(entity.DateLayout),
		Blackout:     blackout != nil,
		TotalSlots:   workload.TotalSlots,
		Occupied:     workload.Occupied,
		Free:         workload.Free,
		LoadPercent:  workload.LoadPercent,
	}, nil
}

// noShowRate is the share of no-shows among every appointment in the range,
// whatever its status, as a percentage rounded to two places.
func noShowRate(noShow, total int) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(noShow)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total))).
		Round(2)
}
