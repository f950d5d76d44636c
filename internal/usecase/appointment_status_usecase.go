package usecase

import (
	"context"
	"fmt"

	"go-medical-booking/internal/converter"
	"go-medical-booking/internal/delivery/dto"
	"go-medical-booking/internal/domain/entity"
	"go-medical-booking/internal/domain/repository"
	"go-medical-booking/internal/infrastructure/metrics"
	"go-medical-booking/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidStatus     = apperror.BadRequest("status must be one of WAITING, IN_PROGRESS, COMPLETED, NO_SHOW, CANCELLED, RESCHEDULED")
	ErrPatientCancelOnly = apperror.AccessDenied("patients may only cancel their appointments")
)

type AppointmentStatusUsecase interface {
	// TransitionStatus moves an appointment to a new status and appends exactly
	// one history entry in the same transaction.
	TransitionStatus(ctx context.Context, appointmentID uuid.UUID, req *dto.TransitionStatusRequest) (*dto.TransitionResponse, error)
	// ListHistory returns the appointment's status changes newest first.
	ListHistory(ctx context.Context, appointmentID uuid.UUID) (*dto.StatusHistoryListResponse, error)
}

type appointmentStatusUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	transitions     entity.TransitionTable
	appointmentRepo repository.AppointmentRepository
	historyRepo     repository.StatusHistoryRepository
	patientRepo     repository.PatientRepository
}

// NewAppointmentStatusUsecase builds the lifecycle usecase. A nil transition
// table permits every transition.
func NewAppointmentStatusUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	transitions entity.TransitionTable,
	appointmentRepo repository.AppointmentRepository,
	historyRepo repository.StatusHistoryRepository,
	patientRepo repository.PatientRepository,
) AppointmentStatusUsecase {
	return &appointmentStatusUsecase{
		db:              db,
		log:             log,
		transitions:     transitions,
		appointmentRepo: appointmentRepo,
		historyRepo:     historyRepo,
		patientRepo:     patientRepo,
	}
}

func (u *appointmentStatusUsecase) TransitionStatus(ctx context.Context, appointmentID uuid.UUID, req *dto.TransitionStatusRequest) (*dto.TransitionResponse, error) {
	actor, err := currentActor(ctx, u.db, u.patientRepo)
	if err != nil {
		return nil, err
	}

	newStatus := entity.AppointmentStatus(req.Status)
	if !newStatus.IsValid() {
		return nil, ErrInvalidStatus
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
	if actor.RoleID == entity.RoleIDPatient && newStatus != entity.AppointmentStatusCancelled {
		return nil, ErrPatientCancelOnly
	}

	if !u.transitions.Allows(appointment.Status, newStatus) {
		metrics.IncTransitionRejected()
		return nil, apperror.BadRequest(fmt.Sprintf("transition from %s to %s is not allowed", appointment.Status, newStatus))
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	oldStatus := appointment.ApplyStatus(newStatus, req.Reason)
	affected, err := u.appointmentRepo.UpdateStatus(tx, appointment)
	if err != nil {
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrConcurrentModification
	}

	entry := &entity.StatusHistory{
		AppointmentID: appointment.ID,
		OldStatus:     &oldStatus,
		NewStatus:     newStatus,
		ChangedBy:     actor.UserID,
		Reason:        req.Reason,
	}
	if err := u.historyRepo.Append(tx, entry); err != nil {
		u.log.Warnf("Failed to append status history: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	metrics.IncStatusTransition(string(oldStatus), string(newStatus))
	u.log.WithFields(logrus.Fields{
		"appointment_id": appointment.ID,
		"from":           oldStatus,
		"to":             newStatus,
		"changed_by":     actor.UserID,
	}).Info("Appointment status changed")

	return &dto.TransitionResponse{
		Appointment: *converter.AppointmentToResponse(appointment),
		History:     *converter.StatusHistoryToResponse(entry),
	}, nil
}

func (u *appointmentStatusUsecase) ListHistory(ctx context.Context, appointmentID uuid.UUID) (*dto.StatusHistoryListResponse, error) {
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

	entries, err := u.historyRepo.FindByAppointment(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find status history: %+v", err)
		return nil, err
	}

	return &dto.StatusHistoryListResponse{
		History: converter.StatusHistoriesToResponses(entries),
		Total:   len(entries),
	}, nil
}
