package converter

import (
	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/domain/entity"
)

func IdentityToResponse(identity *entity.Identity) *dto.IdentityResponse {
	if identity == nil {
		return nil
	}

	return &dto.IdentityResponse{
		AccountID:      identity.AccountID,
		ProfessionalID: identity.ProfessionalID,
		Name:           identity.Name,
		Role:           string(identity.Role),
		Email:          identity.Email,
	}
}

// CredentialToIdentity builds the session principal from a verified credential.
func CredentialToIdentity(credential *entity.Credential) *entity.Identity {
	return &entity.Identity{
		AccountID:      credential.AccountID,
		ProfessionalID: credential.ProfessionalID,
		Name:           credential.Name,
		Role:           credential.Role,
		Email:          credential.Email,
	}
}
