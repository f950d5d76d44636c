package repository

import (
	"errors"
	"time"

	"go-medical-booking/internal/domain/entity"
	domainRepo "go-medical-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

// FindActiveByProviderAndDate excludes CANCELLED and RESCHEDULED appointments.
func (r *appointmentRepository) FindActiveByProviderAndDate(db *gorm.DB, providerID uuid.UUID, date time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("provider_id = ? AND appointment_date = ? AND status NOT IN ?",
		providerID, entity.DateOf(date), entity.InactiveStatuses).
		Order("start_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByProviderAndDate(db *gorm.DB, providerID uuid.UUID, date time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("provider_id = ? AND appointment_date = ?", providerID, entity.DateOf(date)).
		Order("start_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindActiveByProviderInRange(db *gorm.DB, providerID uuid.UUID, from, to time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("provider_id = ? AND appointment_date >= ? AND appointment_date <= ? AND status NOT IN ?",
		providerID, entity.DateOf(from), entity.DateOf(to), entity.InactiveStatuses).
		Order("appointment_date ASC, start_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByFilter(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	query := db.Model(&entity.Appointment{})

	if filter != nil {
		if filter.ProviderID != nil {
			query = query.Where("provider_id = ?", *filter.ProviderID)
		}
		if filter.PatientID != nil {
			query = query.Where("patient_id = ?", *filter.PatientID)
		}
		if filter.DateFrom != nil {
			query = query.Where("appointment_date >= ?", entity.DateOf(*filter.DateFrom))
		}
		if filter.DateTo != nil {
			query = query.Where("appointment_date <= ?", entity.DateOf(*filter.DateTo))
		}
		if filter.Status != nil {
			query = query.Where("status = ?", *filter.Status)
		}
	}

	var appointments []entity.Appointment
	err := query.Order("appointment_date ASC, start_time ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// FindUpcomingByPatient returns the patient's WAITING and IN_PROGRESS
// appointments dated on or after the day of from. Same-day visits stay
// listed until they leave those statuses.
func (r *appointmentRepository) FindUpcomingByPatient(db *gorm.DB, patientID uuid.UUID, from time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("patient_id = ? AND appointment_date >= ? AND status IN ?",
		patientID, entity.DateOf(from), entity.UpcomingStatuses).
		Order("appointment_date ASC, start_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

type statusCount struct {
	Status entity.AppointmentStatus
	Total  int
}

func (r *appointmentRepository) CountByStatus(db *gorm.DB, providerID uuid.UUID, from, to time.Time) (map[entity.AppointmentStatus]int, error) {
	var rows []statusCount
	err := db.Model(&entity.Appointment{}).
		Select("status, COUNT(*) AS total").
		Where("provider_id = ? AND appointment_date >= ? AND appointment_date <= ?",
			providerID, entity.DateOf(from), entity.DateOf(to)).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[entity.AppointmentStatus]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

// UpdateStatus is a compare-and-set on the version column: 0 rows affected
// means another request changed the appointment first.
func (r *appointmentRepository) UpdateStatus(db *gorm.DB, appointment *entity.Appointment) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND version = ?", appointment.ID, appointment.Version).
		Updates(map[string]interface{}{
			"status":        appointment.Status,
			"cancel_reason": appointment.CancelReason,
			"version":       gorm.Expr("version + 1"),
			"updated_at":    time.Now(),
		})
	if result.Error == nil && result.RowsAffected == 1 {
		appointment.Version++
	}
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) UpdateTime(db *gorm.DB, appointment *entity.Appointment) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND version = ?", appointment.ID, appointment.Version).
		Updates(map[string]interface{}{
			"appointment_date": entity.DateOf(appointment.AppointmentDate),
			"start_time":       appointment.StartTime,
			"end_time":         appointment.EndTime,
			"schedule_id":      appointment.ScheduleID,
			"version":          gorm.Expr("version + 1"),
			"updated_at":       time.Now(),
		})
	if result.Error == nil && result.RowsAffected == 1 {
		appointment.Version++
	}
	return result.RowsAffected, result.Error
}
