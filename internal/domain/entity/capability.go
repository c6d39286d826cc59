package entity

// Capability names a protected operation.
type Capability string

const (
	CapPatientRead       Capability = "patient.read"
	CapPatientWrite      Capability = "patient.write"
	CapProfessionalRead  Capability = "professional.read"
	CapProfessionalWrite Capability = "professional.write"
	CapAppointmentRead   Capability = "appointment.read"
	CapAppointmentWrite  Capability = "appointment.write"
	CapEncounterRead     Capability = "encounter.read"
	CapEncounterWrite    Capability = "encounter.write"
	CapBillingRead       Capability = "billing.read"
	CapBillingWrite      Capability = "billing.write"
	CapAuditRead         Capability = "audit.read"
)

// capabilityRoles maps each capability to the roles allowed to use it.
// A nil entry admits any authenticated session.
var capabilityRoles = map[Capability][]Role{
	CapPatientRead:       nil,
	CapPatientWrite:      nil,
	CapProfessionalRead:  nil,
	CapProfessionalWrite: {RoleAdmin},
	CapAppointmentRead:   nil,
	CapAppointmentWrite:  nil,
	CapEncounterRead:     {RoleAdmin, RoleProfessional},
	CapEncounterWrite:    {RoleAdmin, RoleProfessional},
	CapBillingRead:       nil,
	CapBillingWrite:      nil,
	CapAuditRead:         {RoleAdmin},
}

// AllowedRoles returns the roles for c and whether c is a known capability.
func (c Capability) AllowedRoles() ([]Role, bool) {
	roles, ok := capabilityRoles[c]
	return roles, ok
}
