package converter

import (
	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/domain/entity"
)

func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:        patient.ID,
		Name:      patient.Name,
		Phone:     optionalString(patient.Phone),
		Email:     optionalString(patient.Email),
		Street:    optionalString(patient.Street),
		Number:    optionalString(patient.Number),
		District:  optionalString(patient.District),
		City:      optionalString(patient.City),
		State:     optionalString(patient.State),
		BirthDate: optionalDate(patient.BirthDate),
		CreatedAt: patient.CreatedAt,
	}
}

func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}
