package dto

import "time"

// PatientRequest is the body of both create and update.
type PatientRequest struct {
	Name      string `json:"nome" validate:"required,max=255"`
	Phone     string `json:"telefone" validate:"omitempty,max=20"`
	Email     string `json:"email" validate:"omitempty,email,max=255"`
	Street    string `json:"rua" validate:"omitempty,max=255"`
	Number    string `json:"numero" validate:"omitempty,max=20"`
	District  string `json:"bairro" validate:"omitempty,max=100"`
	City      string `json:"cidade" validate:"omitempty,max=100"`
	State     string `json:"estado" validate:"omitempty,max=50"`
	BirthDate string `json:"data_nascimento" validate:"omitempty,datetime=2006-01-02"`
}

type PatientResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"nome"`
	Phone     *string   `json:"telefone"`
	Email     *string   `json:"email"`
	Street    *string   `json:"rua"`
	Number    *string   `json:"numero"`
	District  *string   `json:"bairro"`
	City      *string   `json:"cidade"`
	State     *string   `json:"estado"`
	BirthDate *string   `json:"data_nascimento"`
	CreatedAt time.Time `json:"criado_em"`
}
