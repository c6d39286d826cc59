package usecase

import (
	"context"
	"testing"

	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func TestCreateAppointment_PricesAndBills(t *testing.T) {
	tests := []struct {
		appointmentType string
		want            int64
	}{
		{"Consulta", 200},
		{"Retorno", 150},
		{"Avaliação Neuropsicológica", 800},
		{"Avaliação Neuropsicológica Personalizada", 1200},
		{"Sessão livre", 0},
	}

	for _, tt := range tests {
		t.Run(tt.appointmentType, func(t *testing.T) {
			env := newTestEnv(t)
			professional := env.createProfessional(t, "ana@clinica.com", entity.RoleProfessional)
			patient := env.createPatient(t, "João")

			appointment := env.createAppointment(t, patient.ID, professional.ID, tt.appointmentType)
			if !appointment.Value.Equal(decimal.NewFromInt(tt.want)) {
				t.Errorf("Value = %s, want %d", appointment.Value, tt.want)
			}
			if appointment.Status != "Agendada" {
				t.Errorf("Status = %q, want Agendada", appointment.Status)
			}

			var entries []entity.BillingEntry
			env.db.Where("appointment_id = ?", appointment.ID).Find(&entries)
			if len(entries) != 1 {
				t.Fatalf("billing entries = %d, want 1", len(entries))
			}
			entry := entries[0]
			if !entry.Value.Equal(decimal.NewFromInt(tt.want)) {
				t.Errorf("billing value = %s, want %d", entry.Value, tt.want)
			}
			if entry.Description != "Consulta - "+tt.appointmentType {
				t.Errorf("Description = %q", entry.Description)
			}
			if entry.Status != entity.BillingStatusPending || entry.PatientID != patient.ID || entry.ProfessionalID != professional.ID {
				t.Errorf("unexpected entry %+v", entry)
			}
		})
	}
}

func TestCreateAppointment_Validation(t *testing.T) {
	env := newTestEnv(t)
	professional := env.createProfessional(t, "ana@clinica.com", entity.RoleProfessional)
	patient := env.createPatient(t, "João")

	valid := dto.CreateAppointmentRequest{PatientID: patient.ID, ProfessionalID: professional.ID, Date: "2024-01-01", Time: "10:00", Type: "Consulta"}

	tests := []struct {
		name   string
		mutate func(r *dto.CreateAppointmentRequest)
		want   error
	}{
		{"missing patient", func(r *dto.CreateAppointmentRequest) { r.PatientID = 0 }, ErrAppointmentFieldsRequired},
		{"missing professional", func(r *dto.CreateAppointmentRequest) { r.ProfessionalID = 0 }, ErrAppointmentFieldsRequired},
		{"missing date", func(r *dto.CreateAppointmentRequest) { r.Date = "" }, ErrAppointmentFieldsRequired},
		{"missing time", func(r *dto.CreateAppointmentRequest) { r.Time = "" }, ErrAppointmentFieldsRequired},
		{"bad date", func(r *dto.CreateAppointmentRequest) { r.Date = "01/01/2024" }, ErrInvalidDateFormat},
		{"bad time", func(r *dto.CreateAppointmentRequest) { r.Time = "10h" }, ErrInvalidAppointmentTime},
		{"bad status", func(r *dto.CreateAppointmentRequest) { r.Status = "Done" }, ErrInvalidAppointmentStatus},
		{"unknown patient", func(r *dto.CreateAppointmentRequest) { r.PatientID = 999 }, ErrAppointmentReferenceNotFound},
		{"unknown professional", func(r *dto.CreateAppointmentRequest) { r.ProfessionalID = 999 }, ErrAppointmentReferenceNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			if _, err := env.appointment.CreateAppointment(context.Background(), nil, &req); err != tt.want {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	if n := env.count(t, &entity.Appointment{}); n != 0 {
		t.Errorf("appointments = %d, want 0", n)
	}
}

func TestCreateAppointment_ExplicitStatus(t *testing.T) {
	env := newTestEnv(t)
	professional := env.createProfessional(t, "ana@clinica.com", entity.RoleProfessional)
	patient := env.createPatient(t, "João")

	appointment, err := env.appointment.CreateAppointment(context.Background(), nil, &dto.CreateAppointmentRequest{
		PatientID: patient.ID, ProfessionalID: professional.ID, Date: "2024-01-01", Time: "10:00", Type: "Retorno", Status: "Faltou",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appointment.Status != "Faltou" {
		t.Errorf("Status = %q, want Faltou", appointment.Status)
	}
}

func TestCreateAppointment_BillingFailureRollsBack(t *testing.T) {
	env := newTestEnv(t)
	professional := env.createProfessional(t, "ana@clinica.com", entity.RoleProfessional)
	patient := env.createPatient(t, "João")
	env.failCreates(t, "billing_entries")

	_, err := env.appointment.CreateAppointment(context.Background(), nil, &dto.CreateAppointmentRequest{
		PatientID: patient.ID, ProfessionalID: professional.ID, Date: "2024-01-01", Time: "10:00", Type: "Consulta",
	})
	if err == nil {
		t.Fatal("expected error")
	}

	if n := env.count(t, &entity.Appointment{}); n != 0 {
		t.Errorf("appointments = %d, want 0 after rollback", n)
	}
}

func TestUpdateAppointmentStatus(t *testing.T) {
	env := newTestEnv(t)
	professional := env.createProfessional(t, "ana@clinica.com", entity.RoleProfessional)
	patient := env.createPatient(t, "João")
	appointment := env.createAppointment(t, patient.ID, professional.ID, "Consulta")
	ctx := context.Background()

	for _, status := range entity.AppointmentStatuses {
		if err := env.appointment.UpdateAppointmentStatus(ctx, nil, appointment.ID, &dto.UpdateAppointmentStatusRequest{Status: string(status)}); err != nil {
			t.Errorf("status %s: %v", status, err)
		}
	}

	if err := env.appointment.UpdateAppointmentStatus(ctx, nil, appointment.ID, &dto.UpdateAppointmentStatusRequest{Status: "Concluída"}); err != ErrInvalidAppointmentStatus {
		t.Errorf("invalid status = %v, want %v", err, ErrInvalidAppointmentStatus)
	}
	if err := env.appointment.UpdateAppointmentStatus(ctx, nil, appointment.ID, &dto.UpdateAppointmentStatusRequest{}); err != ErrInvalidAppointmentStatus {
		t.Errorf("empty status = %v, want %v", err, ErrInvalidAppointmentStatus)
	}
	if err := env.appointment.UpdateAppointmentStatus(ctx, nil, 999, &dto.UpdateAppointmentStatusRequest{Status: "Cancelada"}); err != ErrAppointmentNotFound {
		t.Errorf("unknown id = %v, want %v", err, ErrAppointmentNotFound)
	}

	got, _ := env.appointment.GetAppointment(ctx, appointment.ID)
	if got.Status != "Faltou" {
		t.Errorf("Status = %q, want Faltou", got.Status)
	}
}

func TestUpdateAppointment_KeepsValue(t *testing.T) {
	env := newTestEnv(t)
	professional := env.createProfessional(t, "ana@clinica.com", entity.RoleProfessional)
	patient := env.createPatient(t, "João")
	appointment := env.createAppointment(t, patient.ID, professional.ID, "Consulta")
	ctx := context.Background()

	updated, err := env.appointment.UpdateAppointment(ctx, nil, appointment.ID, &dto.UpdateAppointmentRequest{
		PatientID: patient.ID, ProfessionalID: professional.ID, Date: "2024-02-02", Time: "15:30", Type: "Avaliação Neuropsicológica", Notes: "remarcada",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Date != "2024-02-02" || updated.Time != "15:30" || updated.Type != "Avaliação Neuropsicológica" {
		t.Errorf("fields not updated: %+v", updated)
	}
	if !updated.Value.Equal(decimal.NewFromInt(200)) {
		t.Errorf("Value = %s, want 200 (not repriced)", updated.Value)
	}
	if updated.PatientName != "João" {
		t.Errorf("PatientName = %q", updated.PatientName)
	}
}

func TestCompletedAppointment_IsLocked(t *testing.T) {
	env := newTestEnv(t)
	professional := env.createProfessional(t, "ana@clinica.com", entity.RoleProfessional)
	patient := env.createPatient(t, "João")
	appointment := env.createAppointment(t, patient.ID, professional.ID, "Consulta")
	ctx := context.Background()

	env.appointment.UpdateAppointmentStatus(ctx, nil, appointment.ID, &dto.UpdateAppointmentStatusRequest{Status: "Realizada"})

	_, err := env.appointment.UpdateAppointment(ctx, nil, appointment.ID, &dto.UpdateAppointmentRequest{
		PatientID: patient.ID, ProfessionalID: professional.ID, Date: "2024-02-02", Time: "15:30",
	})
	if err != ErrAppointmentCompleted {
		t.Errorf("update = %v, want %v", err, ErrAppointmentCompleted)
	}
	if err := env.appointment.DeleteAppointment(ctx, nil, appointment.ID); err != ErrAppointmentCompleted {
		t.Errorf("delete = %v, want %v", err, ErrAppointmentCompleted)
	}

	history, err := env.appointment.GetCompletedAppointments(ctx)
	if err != nil || len(history) != 1 {
		t.Errorf("history = (%v, %v), want one appointment", history, err)
	}
}

func TestDeleteAppointment_RemovesBilling(t *testing.T) {
	env := newTestEnv(t)
	professional := env.createProfessional(t, "ana@clinica.com", entity.RoleProfessional)
	patient := env.createPatient(t, "João")
	appointment := env.createAppointment(t, patient.ID, professional.ID, "Consulta")
	ctx := context.Background()

	if err := env.appointment.DeleteAppointment(ctx, nil, appointment.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := env.count(t, &entity.BillingEntry{}); n != 0 {
		t.Errorf("billing entries = %d, want 0", n)
	}
	if err := env.appointment.DeleteAppointment(ctx, nil, appointment.ID); err != ErrAppointmentNotFound {
		t.Errorf("second delete = %v, want %v", err, ErrAppointmentNotFound)
	}
}
