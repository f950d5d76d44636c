package service

import (
	"context"
	"testing"

	"go-medical-booking/internal/domain/entity"
	"go-medical-booking/internal/infrastructure/database"
	"go-medical-booking/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditService_RecordRollsBackWithTx(t *testing.T) {
	db, err := database.NewSQLiteConnection(":memory:", "silent")
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	repo := repository.NewAuditLogRepository()
	svc := NewAuditService(quietLogger(), repo)
	actor := uuid.New()

	tx := db.Begin()
	require.NoError(t, svc.Record(context.Background(), tx, AuditChange{
		Actor:    &actor,
		Action:   entity.AuditActionScheduleDelete,
		Entity:   "recurring_schedule",
		EntityID: "7",
		Before:   map[string]interface{}{"day_of_week": 1},
	}))
	tx.Rollback()

	logs, err := repo.FindByFilter(db, nil)
	require.NoError(t, err)
	assert.Empty(t, logs)

	require.NoError(t, svc.Record(context.Background(), db, AuditChange{
		Actor:    &actor,
		Action:   entity.AuditActionScheduleCreate,
		Entity:   "recurring_schedule",
		EntityID: "8",
		After:    map[string]interface{}{"day_of_week": 2},
	}))

	logs, err = repo.FindByFilter(db, nil)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, entity.AuditActionScheduleCreate, logs[0].Action)
	assert.Equal(t, "8", logs[0].Metadata["entity_id"])
	assert.Nil(t, logs[0].Metadata["old_value"])
	require.NotNil(t, logs[0].UserID)
	assert.Equal(t, actor, *logs[0].UserID)
}
