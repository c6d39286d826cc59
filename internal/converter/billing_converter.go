package converter

import (
	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/domain/entity"
)

// BillingEntryToResponse reads type and date from the linked appointment.
func BillingEntryToResponse(entry *entity.BillingEntry) *dto.BillingResponse {
	if entry == nil {
		return nil
	}

	response := &dto.BillingResponse{
		ID:               entry.ID,
		AppointmentID:    entry.AppointmentID,
		Patient:          entry.Patient.Name,
		ProfessionalName: entry.Appointment.Professional.Name,
		Type:             entry.Appointment.Type,
		Description:      entry.Description,
		Value:            entry.Value,
		Status:           string(entry.Status),
		PaymentDate:      optionalDate(entry.PaymentDate),
		PaymentMethod:    optionalString(entry.PaymentMethod),
		PaymentAccountID: entry.PaymentAccountID,
	}
	if !entry.Appointment.Date.IsZero() {
		response.Date = entry.Appointment.Date.Format(dateLayout)
	}

	return response
}

func BillingEntriesToResponses(entries []entity.BillingEntry) []dto.BillingResponse {
	responses := make([]dto.BillingResponse, len(entries))
	for i := range entries {
		responses[i] = *BillingEntryToResponse(&entries[i])
	}
	return responses
}
