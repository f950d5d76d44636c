package repository

import (
	"testing"

	"go-medical-booking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLogRepository_FindByFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewAuditLogRepository()
	admin, registrar := uuid.New(), uuid.New()

	for _, l := range []*entity.AuditLog{
		{UserID: &admin, Action: entity.AuditActionScheduleCreate, Metadata: entity.JSON{"entity_id": "1"}},
		{UserID: &registrar, Action: entity.AuditActionPatientCreate},
		{UserID: &admin, Action: entity.AuditActionScheduleUpdate, Metadata: entity.JSON{"entity_id": "1"}},
		{Action: entity.AuditActionScheduleCreate},
	} {
		require.NoError(t, repo.Create(db, l))
	}

	all, err := repo.FindByFilter(db, nil)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Greater(t, all[0].ID, all[3].ID, "newest first")

	mine, err := repo.FindByFilter(db, &entity.AuditLogFilter{UserID: &admin})
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, entity.AuditActionScheduleUpdate, mine[0].Action)

	creates, err := repo.FindByFilter(db, &entity.AuditLogFilter{Action: entity.AuditActionScheduleCreate, Limit: 1})
	require.NoError(t, err)
	require.Len(t, creates, 1)
	assert.Nil(t, creates[0].UserID)

	found, err := repo.FindByID(db, mine[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "1", found.Metadata["entity_id"])

	missing, err := repo.FindByID(db, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
