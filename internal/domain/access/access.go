// Package access decides whether an authenticated actor may touch a resource.
package access

import (
	"go-medical-booking/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor is the authenticated caller. PatientID is resolved for patient accounts
// and nil for everyone else.
type Actor struct {
	UserID    uuid.UUID
	RoleID    int
	PatientID *uuid.UUID
}

// IsStaff reports whether the actor is clinic personnel.
func (a Actor) IsStaff() bool {
	return entity.IsStaffRole(a.RoleID)
}

// Resource is one of the variants below.
type Resource interface {
	resource()
}

// ProviderResource guards a provider's schedule, exceptions and workload.
type ProviderResource struct {
	ProviderID uuid.UUID
}

// PatientResource guards a patient record and the patient's appointment list.
type PatientResource struct {
	PatientID uuid.UUID
}

// AppointmentResource guards one appointment and its history.
type AppointmentResource struct {
	ProviderID uuid.UUID
	PatientID  uuid.UUID
}

// ClinicResource guards clinic-wide data such as workload of all providers.
type ClinicResource struct{}

func (ProviderResource) resource()    {}
func (PatientResource) resource()     {}
func (AppointmentResource) resource() {}
func (ClinicResource) resource()      {}

// CanAccess applies the per-role policy.
func CanAccess(actor Actor, res Resource) bool {
	switch actor.RoleID {
	case entity.RoleIDAdmin, entity.RoleIDRegistrar:
		if _, ok := res.(ClinicResource); ok {
			return actor.RoleID == entity.RoleIDAdmin
		}
		return true
	case entity.RoleIDDoctor:
		return doctorCanAccess(actor, res)
	case entity.RoleIDPatient:
		return patientCanAccess(actor, res)
	default:
		return false
	}
}

func doctorCanAccess(actor Actor, res Resource) bool {
	switch r := res.(type) {
	case ProviderResource:
		return r.ProviderID == actor.UserID
	case AppointmentResource:
		return r.ProviderID == actor.UserID
	default:
		return false
	}
}

func patientCanAccess(actor Actor, res Resource) bool {
	if actor.PatientID == nil {
		return false
	}
	switch r := res.(type) {
	case PatientResource:
		return r.PatientID == *actor.PatientID
	case AppointmentResource:
		return r.PatientID == *actor.PatientID
	default:
		return false
	}
}
