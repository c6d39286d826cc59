package dto

import "time"

type CreateEncounterRequest struct {
	AppointmentID  uint   `json:"consulta_id" validate:"required"`
	ChiefComplaint string `json:"queixa_principal"`
	Diagnosis      string `json:"diagnostico"`
	Plan           string `json:"conduta"`
	Medications    string `json:"medicamentos"`
	Notes          string `json:"observacoes"`
}

type UpdateEncounterRequest struct {
	ChiefComplaint string `json:"queixa_principal"`
	Diagnosis      string `json:"diagnostico"`
	Plan           string `json:"conduta"`
	Medications    string `json:"medicamentos"`
	Notes          string `json:"observacoes"`
}

type EncounterResponse struct {
	ID               uint      `json:"id"`
	AppointmentID    uint      `json:"consulta_id"`
	ProfessionalID   uint      `json:"profissional_id"`
	PatientName      string    `json:"paciente_nome,omitempty"`
	ProfessionalName string    `json:"profissional_nome,omitempty"`
	ChiefComplaint   string    `json:"queixa_principal"`
	Diagnosis        string    `json:"diagnostico"`
	Plan             string    `json:"conduta"`
	Medications      string    `json:"medicamentos"`
	Notes            string    `json:"observacoes"`
	CreatedAt        time.Time `json:"criado_em"`
}
