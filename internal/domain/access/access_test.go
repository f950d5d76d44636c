package access

import (
	"testing"

	"go-medical-booking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanAccess(t *testing.T) {
	doctorID := uuid.New()
	otherDoctorID := uuid.New()
	patientID := uuid.New()
	otherPatientID := uuid.New()

	admin := Actor{UserID: uuid.New(), RoleID: entity.RoleIDAdmin}
	registrar := Actor{UserID: uuid.New(), RoleID: entity.RoleIDRegistrar}
	doctor := Actor{UserID: doctorID, RoleID: entity.RoleIDDoctor}
	patient := Actor{UserID: uuid.New(), RoleID: entity.RoleIDPatient, PatientID: &patientID}
	patientWithoutRecord := Actor{UserID: uuid.New(), RoleID: entity.RoleIDPatient}
	unknown := Actor{UserID: uuid.New(), RoleID: 99}

	ownAppointment := AppointmentResource{ProviderID: doctorID, PatientID: patientID}
	foreignAppointment := AppointmentResource{ProviderID: otherDoctorID, PatientID: otherPatientID}

	tests := []struct {
		name  string
		actor Actor
		res   Resource
		want  bool
	}{
		{"admin clinic", admin, ClinicResource{}, true},
		{"admin foreign appointment", admin, foreignAppointment, true},
		{"registrar appointment", registrar, foreignAppointment, true},
		{"registrar patient", registrar, PatientResource{PatientID: otherPatientID}, true},
		{"registrar clinic", registrar, ClinicResource{}, false},
		{"doctor own provider", doctor, ProviderResource{ProviderID: doctorID}, true},
		{"doctor other provider", doctor, ProviderResource{ProviderID: otherDoctorID}, false},
		{"doctor own appointment", doctor, ownAppointment, true},
		{"doctor foreign appointment", doctor, foreignAppointment, false},
		{"doctor patient record", doctor, PatientResource{PatientID: patientID}, false},
		{"doctor clinic", doctor, ClinicResource{}, false},
		{"patient self", patient, PatientResource{PatientID: patientID}, true},
		{"patient other", patient, PatientResource{PatientID: otherPatientID}, false},
		{"patient own appointment", patient, ownAppointment, true},
		{"patient foreign appointment", patient, foreignAppointment, false},
		{"patient provider", patient, ProviderResource{ProviderID: doctorID}, false},
		{"patient without record", patientWithoutRecord, PatientResource{PatientID: patientID}, false},
		{"unknown role", unknown, ProviderResource{ProviderID: doctorID}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccess(tt.actor, tt.res))
		})
	}
}
