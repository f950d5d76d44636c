package repository

import (
	"testing"
	"time"

	"go-medical-booking/internal/domain/entity"
	"go-medical-booking/internal/infrastructure/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewSQLiteConnection(":memory:", "silent")
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func at(year int, month time.Month, d, hour, min int) time.Time {
	return time.Date(year, month, d, hour, min, 0, 0, time.UTC)
}

func seedAppointment(t *testing.T, db *gorm.DB, providerID, patientID uuid.UUID, start, end time.Time, status entity.AppointmentStatus) *entity.Appointment {
	t.Helper()
	a := &entity.Appointment{
		PatientID:       patientID,
		ProviderID:      providerID,
		ServiceID:       uuid.New(),
		AppointmentDate: entity.DateOf(start),
		StartTime:       start,
		EndTime:         end,
		Status:          status,
		Source:          entity.AppointmentSourcePhone,
		CreatedBy:       uuid.New(),
		Version:         1,
	}
	require.NoError(t, NewAppointmentRepository().Create(db, a))
	return a
}
