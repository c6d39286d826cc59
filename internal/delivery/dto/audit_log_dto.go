package dto

import "time"

type AuditLogResponse struct {
	ID        uint                   `json:"id"`
	AccountID *uint                  `json:"conta_id"`
	Email     string                 `json:"email,omitempty"`
	Action    string                 `json:"acao"`
	Metadata  map[string]interface{} `json:"metadados,omitempty"`
	CreatedAt time.Time              `json:"criado_em"`
}
