package entity

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog represents a system audit trail entry
type AuditLog struct {
	ID        uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	AccountID *uint             `gorm:"index" json:"account_id,omitempty"`
	Action    string            `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata  datatypes.JSONMap `json:"metadata,omitempty"`
	CreatedAt time.Time         `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Account *Account `gorm:"foreignKey:AccountID;constraint:OnDelete:SET NULL" json:"account,omitempty"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Common audit actions
const (
	AuditActionUserLogin          = "user.login"
	AuditActionUserLogout         = "user.logout"
	AuditActionPatientCreate      = "patient.create"
	AuditActionPatientUpdate      = "patient.update"
	AuditActionPatientDelete      = "patient.delete"
	AuditActionProfessionalCreate = "professional.create"
	AuditActionProfessionalUpdate = "professional.update"
	AuditActionProfessionalDelete = "professional.delete"
	AuditActionAppointmentCreate  = "appointment.create"
	AuditActionAppointmentUpdate  = "appointment.update"
	AuditActionAppointmentStatus  = "appointment.status"
	AuditActionAppointmentDelete  = "appointment.delete"
	AuditActionEncounterCreate    = "encounter.create"
	AuditActionEncounterUpdate    = "encounter.update"
	AuditActionBillingCreate      = "billing.create"
	AuditActionBillingPay         = "billing.pay"
)
