package dto

import "github.com/shopspring/decimal"

type PayBillingRequest struct {
	Method    string `json:"metodo"`
	AccountID *uint  `json:"conta_id"`
}

type BillingResponse struct {
	ID               uint            `json:"id"`
	AppointmentID    uint            `json:"consulta_id"`
	Patient          string          `json:"paciente"`
	ProfessionalName string          `json:"profissional_nome,omitempty"`
	Type             string          `json:"tipo"`
	Date             string          `json:"data"`
	Description      string          `json:"descricao"`
	Value            decimal.Decimal `json:"valor"`
	Status           string          `json:"status"`
	PaymentDate      *string         `json:"data_pagamento"`
	PaymentMethod    *string         `json:"metodo_pagamento"`
	PaymentAccountID *uint           `json:"conta_id"`
}
