package entity

// Role represents a user role in the system
type Role struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants
const (
	RoleIDAdmin     = 1
	RoleIDDoctor    = 2
	RoleIDPatient   = 3
	RoleIDRegistrar = 4
)

// RoleNames constants
const (
	RoleAdmin     = "admin"
	RoleDoctor    = "doctor"
	RolePatient   = "patient"
	RoleRegistrar = "registrar"
)

// DefaultRoles is the seed set used by migrations and AutoMigrate.
func DefaultRoles() []Role {
	return []Role{
		{ID: RoleIDAdmin, RoleName: RoleAdmin, Description: "Clinic administrator"},
		{ID: RoleIDDoctor, RoleName: RoleDoctor, Description: "Medical provider"},
		{ID: RoleIDPatient, RoleName: RolePatient, Description: "Patient"},
		{ID: RoleIDRegistrar, RoleName: RoleRegistrar, Description: "Front desk registrar"},
	}
}

// IsStaffRole reports whether the role belongs to clinic personnel.
func IsStaffRole(roleID int) bool {
	return roleID == RoleIDAdmin || roleID == RoleIDDoctor || roleID == RoleIDRegistrar
}

// RoleNameOf maps a role id to its name, or "" for unknown ids.
func RoleNameOf(roleID int) string {
	for _, r := range DefaultRoles() {
		if r.ID == roleID {
			return r.RoleName
		}
	}
	return ""
}
