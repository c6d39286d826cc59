package converter

import (
	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/domain/entity"
)

func EncounterToResponse(encounter *entity.Encounter) *dto.EncounterResponse {
	if encounter == nil {
		return nil
	}

	return &dto.EncounterResponse{
		ID:               encounter.ID,
		AppointmentID:    encounter.AppointmentID,
		ProfessionalID:   encounter.ProfessionalID,
		PatientName:      encounter.Appointment.Patient.Name,
		ProfessionalName: encounter.Professional.Name,
		ChiefComplaint:   encounter.ChiefComplaint,
		Diagnosis:        encounter.Diagnosis,
		Plan:             encounter.Plan,
		Medications:      encounter.Medications,
		Notes:            encounter.Notes,
		CreatedAt:        encounter.CreatedAt,
	}
}

func EncountersToResponses(encounters []entity.Encounter) []dto.EncounterResponse {
	responses := make([]dto.EncounterResponse, len(encounters))
	for i := range encounters {
		responses[i] = *EncounterToResponse(&encounters[i])
	}
	return responses
}
