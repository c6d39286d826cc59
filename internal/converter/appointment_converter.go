package converter

import (
	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/domain/entity"
)

func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:               appointment.ID,
		PatientID:        appointment.PatientID,
		ProfessionalID:   appointment.ProfessionalID,
		PatientName:      appointment.Patient.Name,
		ProfessionalName: appointment.Professional.Name,
		Specialty:        appointment.Professional.Specialty,
		Type:             appointment.Type,
		Date:             appointment.Date.Format(dateLayout),
		Time:             appointment.Time,
		Value:            appointment.Value,
		Status:           string(appointment.Status),
		Notes:            optionalString(appointment.Notes),
	}
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
