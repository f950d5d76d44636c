package handler

import (
	"context"

	"go-medical-booking/internal/delivery/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockAppointmentUsecase struct {
	mock.Mock
}

func (m *mockAppointmentUsecase) CheckConflict(ctx context.Context, query *dto.ConflictQuery) (*dto.ConflictResponse, error) {
	args := m.Called(ctx, query)
	resp, _ := args.Get(0).(*dto.ConflictResponse)
	return resp, args.Error(1)
}

func (m *mockAppointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.AppointmentResponse)
	return resp, args.Error(1)
}

func (m *mockAppointmentUsecase) UpdateAppointmentTime(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentTimeRequest) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, appointmentID, req)
	resp, _ := args.Get(0).(*dto.AppointmentResponse)
	return resp, args.Error(1)
}

func (m *mockAppointmentUsecase) GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, appointmentID)
	resp, _ := args.Get(0).(*dto.AppointmentResponse)
	return resp, args.Error(1)
}

func (m *mockAppointmentUsecase) ListAppointments(ctx context.Context, req *dto.AppointmentFilterRequest) (*dto.AppointmentListResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.AppointmentListResponse)
	return resp, args.Error(1)
}

func (m *mockAppointmentUsecase) GetUpcomingForPatient(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	args := m.Called(ctx, patientID)
	resp, _ := args.Get(0).(*dto.AppointmentListResponse)
	return resp, args.Error(1)
}

type mockStatusUsecase struct {
	mock.Mock
}

func (m *mockStatusUsecase) TransitionStatus(ctx context.Context, appointmentID uuid.UUID, req *dto.TransitionStatusRequest) (*dto.TransitionResponse, error) {
	args := m.Called(ctx, appointmentID, req)
	resp, _ := args.Get(0).(*dto.TransitionResponse)
	return resp, args.Error(1)
}

func (m *mockStatusUsecase) ListHistory(ctx context.Context, appointmentID uuid.UUID) (*dto.StatusHistoryListResponse, error) {
	args := m.Called(ctx, appointmentID)
	resp, _ := args.Get(0).(*dto.StatusHistoryListResponse)
	return resp, args.Error(1)
}

type mockAuthUsecase struct {
	mock.Mock
}

func (m *mockAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.TokenResponse)
	return resp, args.Error(1)
}

func (m *mockAuthUsecase) Logout(ctx context.Context, userID uuid.UUID, accessTokenID string, req *dto.LogoutRequest) error {
	args := m.Called(ctx, userID, accessTokenID, req)
	return args.Error(0)
}

func (m *mockAuthUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.TokenResponse)
	return resp, args.Error(1)
}

func (m *mockAuthUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	args := m.Called(ctx, userID)
	resp, _ := args.Get(0).(*dto.UserResponse)
	return resp, args.Error(1)
}

type mockWorkloadUsecase struct {
	mock.Mock
}

func (m *mockWorkloadUsecase) GetProviderWorkload(ctx context.Context, providerID uuid.UUID, date string) (*dto.WorkloadResponse, error) {
	args := m.Called(ctx, providerID, date)
	resp, _ := args.Get(0).(*dto.WorkloadResponse)
	return resp, args.Error(1)
}

func (m *mockWorkloadUsecase) GetClinicWorkload(ctx context.Context, date string) (*dto.ClinicWorkloadResponse, error) {
	args := m.Called(ctx, date)
	resp, _ := args.Get(0).(*dto.ClinicWorkloadResponse)
	return resp, args.Error(1)
}

func (m *mockWorkloadUsecase) GetNoShowRate(ctx context.Context, providerID uuid.UUID, from, to string) (*dto.NoShowRateResponse, error) {
	args := m.Called(ctx, providerID, from, to)
	resp, _ := args.Get(0).(*dto.NoShowRateResponse)
	return resp, args.Error(1)
}

type mockAuditLogUsecase struct {
	mock.Mock
}

func (m *mockAuditLogUsecase) ListAuditLogs(ctx context.Context, req *dto.AuditLogFilterRequest) (*dto.AuditLogListResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.AuditLogListResponse)
	return resp, args.Error(1)
}

func (m *mockAuditLogUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*dto.AuditLogResponse)
	return resp, args.Error(1)
}
