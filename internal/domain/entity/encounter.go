package entity

import "time"

// Encounter (atendimento) is the clinical note recorded for an appointment.
type Encounter struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	AppointmentID  uint      `gorm:"not null;index" json:"appointment_id"`
	ProfessionalID uint      `gorm:"not null;index" json:"professional_id"`
	ChiefComplaint string    `gorm:"type:text" json:"chief_complaint"`
	Diagnosis      string    `gorm:"type:text" json:"diagnosis"`
	Plan           string    `gorm:"type:text" json:"plan"`
	Medications    string    `gorm:"type:text" json:"medications"`
	Notes          string    `gorm:"type:text" json:"notes"`
	CreatedAt      time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointment  Appointment  `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
	Professional Professional `gorm:"foreignKey:ProfessionalID" json:"professional,omitempty"`
}

func (Encounter) TableName() string {
	return "encounters"
}

// EncounterFilter scopes encounter history queries.
type EncounterFilter struct {
	ProfessionalID uint
	PatientID      uint // zero means every patient
}
