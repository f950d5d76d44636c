package usecase

import (
	"context"

	"go-medical-booking/internal/converter"
	"go-medical-booking/internal/delivery/dto"
	"go-medical-booking/internal/domain/access"
	"go-medical-booking/internal/domain/entity"
	"go-medical-booking/internal/domain/repository"
	repoimpl "go-medical-booking/internal/repository"
	"go-medical-booking/internal/service"
	"go-medical-booking/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrPatientAlreadyExists   = apperror.AlreadyExists("patient with this document number or user account already exists")
	ErrEmailAlreadyExists     = apperror.AlreadyExists("email already exists")
	ErrServiceAlreadyExists   = apperror.AlreadyExists("service with this name already exists")
	ErrServiceAlreadyAssigned = apperror.AlreadyExists("service is already assigned to this provider")
)

// DirectoryUsecase manages the records appointments refer to
type DirectoryUsecase interface {
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetPatient(ctx context.Context, patientID uuid.UUID) (*dto.PatientResponse, error)
	CreateProvider(ctx context.Context, req *dto.CreateProviderRequest) (*dto.ProviderResponse, error)
	GetProvider(ctx context.Context, providerID uuid.UUID) (*dto.ProviderResponse, error)
	CreateService(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	GetService(ctx context.Context, serviceID uuid.UUID) (*dto.ServiceResponse, error)
	AssignService(ctx context.Context, providerID uuid.UUID, req *dto.AssignServiceRequest) (*dto.ProviderResponse, error)
}

type directoryUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	patientRepo  repository.PatientRepository
	providerRepo repository.ProviderRepository
	serviceRepo  repository.MedicalServiceRepository
	auditService service.AuditService
}

func NewDirectoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientRepo repository.PatientRepository,
	providerRepo repository.ProviderRepository,
	serviceRepo repository.MedicalServiceRepository,
	auditService service.AuditService,
) DirectoryUsecase {
	return &directoryUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		patientRepo:  patientRepo,
		providerRepo: providerRepo,
		serviceRepo:  serviceRepo,
		auditService: auditService,
	}
}

func (u *directoryUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	actorID, err := actorUserID(ctx)
	if err != nil {
		return nil, err
	}
	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if req.UserID != nil {
		user, err := u.userRepo.FindByID(tx, *req.UserID)
		if err != nil {
			u.log.Warnf("Failed to find user: %+v", err)
			return nil, err
		}
		if user == nil {
			return nil, ErrUserNotFound
		}
	}

	patient := &entity.Patient{
		UserID:         req.UserID,
		FullName:       req.FullName,
		DocumentNumber: req.DocumentNumber,
		PhoneNumber:    req.PhoneNumber,
		DateOfBirth:    dob,
	}
	if err := u.patientRepo.Create(tx, patient); err != nil {
		if repoimpl.IsDuplicateKeyError(err) {
			return nil, ErrPatientAlreadyExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	response := converter.PatientToResponse(patient)
	if err := u.auditService.Record(ctx, tx, service.AuditChange{
		Actor:    &actorID,
		Action:   entity.AuditActionPatientCreate,
		Entity:   "patient",
		EntityID: patient.ID.String(),
		After:    response,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return response, nil
}

func (u *directoryUsecase) GetPatient(ctx context.Context, patientID uuid.UUID) (*dto.PatientResponse, error) {
	actor, err := currentActor(ctx, u.db, u.patientRepo)
	if err != nil {
		return nil, err
	}
	if err := authorize(actor, access.PatientResource{PatientID: patientID}); err != nil {
		return nil, err
	}

	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return converter.PatientToResponse(patient), nil
}

// CreateProvider creates the doctor's login account and provider record in
// one transaction. The provider shares the user's id.
func (u *directoryUsecase) CreateProvider(ctx context.Context, req *dto.CreateProviderRequest) (*dto.ProviderResponse, error) {
	actorID, err := actorUserID(ctx)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user := &entity.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		FullName: req.FullName,
		RoleID:   entity.RoleIDDoctor,
		IsActive: true,
	}
	if err := u.userRepo.Create(tx, user); err != nil {
		if repoimpl.IsDuplicateKeyError(err) {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	provider := &entity.Provider{
		ID:             user.ID,
		FullName:       req.FullName,
		Specialization: req.Specialization,
		IsActive:       true,
	}
	if err := u.providerRepo.Create(tx, provider); err != nil {
		u.log.Warnf("Failed to create provider: %+v", err)
		return nil, err
	}

	response := converter.ProviderToResponse(provider)
	response.Email = user.Email
	if err := u.auditService.Record(ctx, tx, service.AuditChange{
		Actor:    &actorID,
		Action:   entity.AuditActionProviderCreate,
		Entity:   "provider",
		EntityID: provider.ID.String(),
		After:    response,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return response, nil
}

func (u *directoryUsecase) GetProvider(ctx context.Context, providerID uuid.UUID) (*dto.ProviderResponse, error) {
	db := u.db.WithContext(ctx)
	provider, err := u.providerRepo.FindByID(db, providerID)
	if err != nil {
		u.log.Warnf("Failed to find provider: %+v", err)
		return nil, err
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}

	services, err := u.serviceRepo.FindByProvider(db, providerID)
	if err != nil {
		u.log.Warnf("Failed to find provider services: %+v", err)
		return nil, err
	}

	response := converter.ProviderToResponse(provider)
	response.Services = converter.ServicesToResponses(services)
	return response, nil
}

func (u *directoryUsecase) CreateService(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	actorID, err := actorUserID(ctx)
	if err != nil {
		return nil, err
	}
	if req.Price.IsNegative() {
		return nil, apperror.BadRequest("price must not be negative")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	medicalService := &entity.MedicalService{
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price.Round(2),
	}
	if err := u.serviceRepo.Create(tx, medicalService); err != nil {
		if repoimpl.IsDuplicateKeyError(err) {
			return nil, ErrServiceAlreadyExists
		}
		u.log.Warnf("Failed to create service: %+v", err)
		return nil, err
	}

	response := converter.ServiceToResponse(medicalService)
	if err := u.auditService.Record(ctx, tx, service.AuditChange{
		Actor:    &actorID,
		Action:   entity.AuditActionServiceCreate,
		Entity:   "medical_service",
		EntityID: medicalService.ID.String(),
		After:    response,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return response, nil
}

func (u *directoryUsecase) GetService(ctx context.Context, serviceID uuid.UUID) (*dto.ServiceResponse, error) {
	medicalService, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), serviceID)
	if err != nil {
		u.log.Warnf("Failed to find service: %+v", err)
		return nil, err
	}
	if medicalService == nil {
		return nil, ErrServiceNotFound
	}
	return converter.ServiceToResponse(medicalService), nil
}

func (u *directoryUsecase) AssignService(ctx context.Context, providerID uuid.UUID, req *dto.AssignServiceRequest) (*dto.ProviderResponse, error) {
	actorID, err := actorUserID(ctx)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	provider, err := u.providerRepo.FindByID(tx, providerID)
	if err != nil {
		u.log.Warnf("Failed to find provider: %+v", err)
		return nil, err
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}

	medicalService, err := u.serviceRepo.FindByID(tx, req.ServiceID)
	if err != nil {
		u.log.Warnf("Failed to find service: %+v", err)
		return nil, err
	}
	if medicalService == nil {
		return nil, ErrServiceNotFound
	}

	if err := u.serviceRepo.AssignToProvider(tx, &entity.ProviderService{ProviderID: providerID, ServiceID: req.ServiceID}); err != nil {
		if repoimpl.IsDuplicateKeyError(err) {
			return nil, ErrServiceAlreadyAssigned
		}
		u.log.Warnf("Failed to assign service: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(ctx, tx, service.AuditChange{
		Actor:    &actorID,
		Action:   entity.AuditActionServiceAssign,
		Entity:   "provider_service",
		EntityID: providerID.String() + ":" + req.ServiceID.String(),
		After:    map[string]string{"provider_id": providerID.String(), "service_id": req.ServiceID.String()},
	}); err != nil {
		return nil, err
	}

	services, err := u.serviceRepo.FindByProvider(tx, providerID)
	if err != nil {
		u.log.Warnf("Failed to find provider services: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	response := converter.ProviderToResponse(provider)
	response.Services = converter.ServicesToResponses(services)
	return response, nil
}
