package dto

type CreateProfessionalRequest struct {
	Name      string `json:"nome" validate:"required,max=255"`
	Specialty string `json:"especialidade" validate:"omitempty,max=100"`
	Active    *bool  `json:"ativo"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"senha" validate:"required"`
	Role      string `json:"nivel" validate:"required,oneof=admin profissional recepcao"`
}

type UpdateProfessionalRequest struct {
	Name      string `json:"nome" validate:"required,max=255"`
	Specialty string `json:"especialidade" validate:"omitempty,max=100"`
	Active    *bool  `json:"ativo"`
}

type ProfessionalResponse struct {
	ID        uint   `json:"id"`
	AccountID uint   `json:"conta_id"`
	Name      string `json:"nome"`
	Specialty string `json:"especialidade"`
	Active    bool   `json:"ativo"`
	Email     string `json:"email"`
	Role      string `json:"nivel"`
}
