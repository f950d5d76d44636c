package usecase

import (
	"context"
	"testing"

	"go-medical-booking/internal/delivery/dto"
	"go-medical-booking/internal/domain/entity"
	"go-medical-booking/internal/repository"
	"go-medical-booking/internal/service"
	"go-medical-booking/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLogQueries(t *testing.T) {
	env := newTestEnv(t)
	uc := NewAuditLogUsecase(env.db, env.log, repository.NewAuditLogRepository())
	ctx := context.Background()

	empty, err := uc.ListAuditLogs(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Total)

	require.NoError(t, env.audit.Record(ctx, env.db, service.AuditChange{
		Actor:    &env.adminID,
		Action:   entity.AuditActionServiceCreate,
		Entity:   "medical_service",
		EntityID: "42",
		After:    map[string]string{"name": "X-Ray"},
	}))
	require.NoError(t, env.audit.Record(ctx, env.db, service.AuditChange{
		Actor:    &env.patientUID,
		Action:   entity.AuditActionUserLogin,
		Entity:   "user",
		EntityID: env.patientUID.String(),
	}))

	all, err := uc.ListAuditLogs(ctx, &dto.AuditLogFilterRequest{})
	require.NoError(t, err)
	require.Equal(t, 2, all.Total)
	assert.Equal(t, entity.AuditActionUserLogin, all.Logs[0].Action, "newest first")

	byAction, err := uc.ListAuditLogs(ctx, &dto.AuditLogFilterRequest{Action: entity.AuditActionServiceCreate})
	require.NoError(t, err)
	require.Equal(t, 1, byAction.Total)
	assert.Equal(t, env.adminID, *byAction.Logs[0].UserID)
	assert.Equal(t, "42", byAction.Logs[0].Metadata["entity_id"])

	byUser, err := uc.ListAuditLogs(ctx, &dto.AuditLogFilterRequest{UserID: &env.patientUID})
	require.NoError(t, err)
	require.Equal(t, 1, byUser.Total)
	assert.Equal(t, entity.AuditActionUserLogin, byUser.Logs[0].Action)

	limited, err := uc.ListAuditLogs(ctx, &dto.AuditLogFilterRequest{Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, limited.Total)

	for _, limit := range []int{-1, 501} {
		_, err = uc.ListAuditLogs(ctx, &dto.AuditLogFilterRequest{Limit: limit})
		assert.Equal(t, apperror.KindBadRequest, apperror.KindOf(err), "limit %d", limit)
	}

	got, err := uc.GetAuditLog(ctx, byAction.Logs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "medical_service", got.Metadata["entity"])

	_, err = uc.GetAuditLog(ctx, byAction.Logs[0].ID+100)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
