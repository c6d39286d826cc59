package dto

import "github.com/shopspring/decimal"

type CreateAppointmentRequest struct {
	PatientID      uint   `json:"paciente_id" validate:"required"`
	ProfessionalID uint   `json:"profissional_id" validate:"required"`
	Date           string `json:"data" validate:"required,datetime=2006-01-02"`
	Time           string `json:"hora" validate:"required,datetime=15:04"`
	Type           string `json:"tipo" validate:"omitempty,max=100"`
	Status         string `json:"status" validate:"omitempty,oneof=Agendada Realizada Cancelada Faltou"`
	Notes          string `json:"observacoes"`
}

// UpdateAppointmentRequest edits an appointment. The value stays what it was priced at.
type UpdateAppointmentRequest struct {
	PatientID      uint   `json:"paciente_id" validate:"required"`
	ProfessionalID uint   `json:"profissional_id" validate:"required"`
	Date           string `json:"data" validate:"required,datetime=2006-01-02"`
	Time           string `json:"hora" validate:"required,datetime=15:04"`
	Type           string `json:"tipo" validate:"omitempty,max=100"`
	Notes          string `json:"observacoes"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status"`
}

type AppointmentResponse struct {
	ID               uint            `json:"id"`
	PatientID        uint            `json:"paciente_id"`
	ProfessionalID   uint            `json:"profissional_id"`
	PatientName      string          `json:"paciente_nome"`
	ProfessionalName string          `json:"profissional_nome"`
	Specialty        string          `json:"especialidade"`
	Type             string          `json:"tipo"`
	Date             string          `json:"data"`
	Time             string          `json:"hora"`
	Value            decimal.Decimal `json:"valor"`
	Status           string          `json:"status"`
	Notes            *string         `json:"observacoes"`
}
