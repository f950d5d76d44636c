package service

import (
	"context"

	"go-medical-booking/internal/domain/entity"
	"go-medical-booking/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditChange describes one administrative change. Before is nil for
// creations and After is nil for deletions.
type AuditChange struct {
	Actor    *uuid.UUID
	Action   string
	Entity   string
	EntityID string
	Before   interface{}
	After    interface{}
}

type AuditService interface {
	// Record writes the change inside tx so it commits or rolls back with it.
	Record(ctx context.Context, tx *gorm.DB, change AuditChange) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) Record(ctx context.Context, tx *gorm.DB, change AuditChange) error {
	auditLog := &entity.AuditLog{
		UserID: change.Actor,
		Action: change.Action,
		Metadata: entity.JSON{
			"entity":    change.Entity,
			"entity_id": change.EntityID,
			"old_value": change.Before,
			"new_value": change.After,
		},
	}

	if err := s.auditRepo.Create(tx.WithContext(ctx), auditLog); err != nil {
		s.log.Warnf("Failed to create audit log for %s: %+v", change.Action, err)
		return err
	}

	return nil
}
