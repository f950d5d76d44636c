package repository

import (
	"go-medical-booking/internal/domain/entity"

	"gorm.io/gorm"
)

// AuditLogRepository stores the administrative change trail. Entries are
// append-only; there is no update or delete.
type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	// FindByFilter returns matching entries, newest first.
	FindByFilter(db *gorm.DB, filter *entity.AuditLogFilter) ([]entity.AuditLog, error)
	FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error)
}
