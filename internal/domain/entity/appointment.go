package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "Agendada"
	AppointmentStatusCompleted AppointmentStatus = "Realizada"
	AppointmentStatusCancelled AppointmentStatus = "Cancelada"
	AppointmentStatusNoShow    AppointmentStatus = "Faltou"
)

// AppointmentStatuses lists the four accepted statuses.
var AppointmentStatuses = []AppointmentStatus{
	AppointmentStatusScheduled,
	AppointmentStatusCompleted,
	AppointmentStatusCancelled,
	AppointmentStatusNoShow,
}

func (s AppointmentStatus) IsValid() bool {
	for _, status := range AppointmentStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Appointment (consulta) is a scheduled patient-professional meeting.
// Value is priced once, at creation.
type Appointment struct {
	ID             uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID      uint              `gorm:"not null;index" json:"patient_id"`
	ProfessionalID uint              `gorm:"not null;index" json:"professional_id"`
	Date           time.Time         `gorm:"column:scheduled_date;not null;index" json:"date"`
	Time           string            `gorm:"column:scheduled_time;type:varchar(5);not null" json:"time"`
	Type           string            `gorm:"type:varchar(100)" json:"type"`
	Value          decimal.Decimal   `gorm:"type:decimal(10,2);not null" json:"value"`
	Status         AppointmentStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	Notes          string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient      Patient      `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Professional Professional `gorm:"foreignKey:ProfessionalID" json:"professional,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCompleted checks if the appointment already has its encounter recorded
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}
