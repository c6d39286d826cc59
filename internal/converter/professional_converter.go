package converter

import (
	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/domain/entity"
)

// ProfessionalToResponse expects the Account association to be loaded.
func ProfessionalToResponse(professional *entity.Professional) *dto.ProfessionalResponse {
	if professional == nil {
		return nil
	}

	return &dto.ProfessionalResponse{
		ID:        professional.ID,
		AccountID: professional.AccountID,
		Name:      professional.Name,
		Specialty: professional.Specialty,
		Active:    professional.Active,
		Email:     professional.Account.Email,
		Role:      string(professional.Account.Role),
	}
}

func ProfessionalsToResponses(professionals []entity.Professional) []dto.ProfessionalResponse {
	responses := make([]dto.ProfessionalResponse, len(professionals))
	for i := range professionals {
		responses[i] = *ProfessionalToResponse(&professionals[i])
	}
	return responses
}
