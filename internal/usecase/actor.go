package usecase

import (
	"context"
	"time"

	"go-medical-booking/internal/delivery/http/middleware"
	"go-medical-booking/internal/domain/access"
	"go-medical-booking/internal/domain/entity"
	"go-medical-booking/internal/domain/repository"
	"go-medical-booking/pkg/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrUnauthenticated = apperror.AccessDenied("authentication required")
	ErrAccessDenied    = apperror.AccessDenied("you don't have permission to access this resource")
	ErrInvalidDate     = apperror.BadRequest("invalid date format, use YYYY-MM-DD")
	ErrInvalidTime     = apperror.BadRequest("invalid time format, use HH:MM")
	ErrDateRangeOrder  = apperror.BadRequest("date from must be before or equal to date to")
)

// currentActor builds the access actor from the authenticated identity.
// Patient accounts are mapped to their patient record when one exists.
func currentActor(ctx context.Context, db *gorm.DB, patientRepo repository.PatientRepository) (access.Actor, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return access.Actor{}, ErrUnauthenticated
	}
	roleID, ok := middleware.GetRoleIDFromContext(ctx)
	if !ok {
		return access.Actor{}, ErrUnauthenticated
	}

	actor := access.Actor{UserID: userID, RoleID: roleID}
	if roleID == entity.RoleIDPatient {
		patient, err := patientRepo.FindByUserID(db.WithContext(ctx), userID)
		if err != nil {
			return access.Actor{}, err
		}
		if patient != nil {
			actor.PatientID = &patient.ID
		}
	}
	return actor, nil
}

// actorUserID returns the authenticated user for attribution only
func actorUserID(ctx context.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, ErrUnauthenticated
	}
	return userID, nil
}

func authorize(actor access.Actor, res access.Resource) error {
	if !access.CanAccess(actor, res) {
		return ErrAccessDenied
	}
	return nil
}

func accessProvider(providerID uuid.UUID) access.Resource {
	return access.ProviderResource{ProviderID: providerID}
}

func accessAppointment(appointment *entity.Appointment) access.Resource {
	return access.AppointmentResource{ProviderID: appointment.ProviderID, PatientID: appointment.PatientID}
}

func parseDate(s string) (time.Time, error) {
	date, err := entity.ParseDate(s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}

// parseDateRange parses an inclusive [from, to] range
func parseDateRange(from, to string) (time.Time, time.Time, error) {
	dateFrom, err := parseDate(from)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	dateTo, err := parseDate(to)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if dateTo.Before(dateFrom) {
		return time.Time{}, time.Time{}, ErrDateRangeOrder
	}
	return dateFrom, dateTo, nil
}

func parseClock(s string) (entity.ClockTime, error) {
	c, err := entity.ParseClock(s)
	if err != nil {
		return 0, ErrInvalidTime
	}
	return c, nil
}

func uuidPtr(id uuid.UUID) *uuid.UUID {
	return &id
}
