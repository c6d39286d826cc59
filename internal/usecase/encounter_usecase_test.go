package usecase

import (
	"context"
	"testing"

	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/domain/entity"
)

func TestCreateEncounter_CompletesAppointment(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createProfessional(t, "ana@clinica.com", entity.RoleProfessional)
	other := env.createProfessional(t, "bia@clinica.com", entity.RoleProfessional)
	patient := env.createPatient(t, "João")
	appointment := env.createAppointment(t, patient.ID, owner.ID, "Consulta")
	ctx := context.Background()

	encounter, err := env.encounter.CreateEncounter(ctx, identityOf(other, entity.RoleProfessional), &dto.CreateEncounterRequest{
		AppointmentID: appointment.ID,
		Diagnosis:     "F41.1",
		Plan:          "retorno em 30 dias",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if encounter == nil {
		t.Fatal("expected encounter")
	}
	if encounter.ProfessionalID != owner.ID {
		t.Errorf("ProfessionalID = %d, want appointment's professional %d", encounter.ProfessionalID, owner.ID)
	}

	got, _ := env.appointment.GetAppointment(ctx, appointment.ID)
	if got.Status != "Realizada" {
		t.Errorf("appointment status = %q, want Realizada", got.Status)
	}

	first, err := env.encounter.GetEncounterByAppointment(ctx, appointment.ID)
	if err != nil || first.ID != encounter.ID || first.Diagnosis != "F41.1" {
		t.Errorf("GetEncounterByAppointment = (%+v, %v)", first, err)
	}
}

func TestCreateEncounter_UnknownAppointment(t *testing.T) {
	env := newTestEnv(t)

	encounter, err := env.encounter.CreateEncounter(context.Background(), nil, &dto.CreateEncounterRequest{AppointmentID: 404})
	if err != nil || encounter != nil {
		t.Errorf("got (%v, %v), want (nil, nil)", encounter, err)
	}
	if n := env.count(t, &entity.Encounter{}); n != 0 {
		t.Errorf("encounters = %d, want 0", n)
	}

	if _, err := env.encounter.CreateEncounter(context.Background(), nil, &dto.CreateEncounterRequest{}); err != ErrEncounterFields {
		t.Errorf("missing appointment = %v, want %v", err, ErrEncounterFields)
	}
}

func TestCreateEncounter_StatusFailureRollsBack(t *testing.T) {
	env := newTestEnv(t)
	professional := env.createProfessional(t, "ana@clinica.com", entity.RoleProfessional)
	patient := env.createPatient(t, "João")
	appointment := env.createAppointment(t, patient.ID, professional.ID, "Consulta")
	env.failUpdates(t, "appointments")

	if _, err := env.encounter.CreateEncounter(context.Background(), nil, &dto.CreateEncounterRequest{AppointmentID: appointment.ID}); err == nil {
		t.Fatal("expected error")
	}
	if n := env.count(t, &entity.Encounter{}); n != 0 {
		t.Errorf("encounters = %d, want 0 after rollback", n)
	}
}

func TestEncounterHistory_ScopedToCaller(t *testing.T) {
	env := newTestEnv(t)
	ana := env.createProfessional(t, "ana@clinica.com", entity.RoleProfessional)
	bia := env.createProfessional(t, "bia@clinica.com", entity.RoleProfessional)
	joao := env.createPatient(t, "João")
	maria := env.createPatient(t, "Maria")
	ctx := context.Background()

	for _, a := range []*dto.AppointmentResponse{
		env.createAppointment(t, joao.ID, ana.ID, "Consulta"),
		env.createAppointment(t, maria.ID, ana.ID, "Retorno"),
		env.createAppointment(t, joao.ID, bia.ID, "Consulta"),
	} {
		if _, err := env.encounter.CreateEncounter(ctx, nil, &dto.CreateEncounterRequest{AppointmentID: a.ID}); err != nil {
			t.Fatalf("create encounter: %v", err)
		}
	}

	anaIdentity := identityOf(ana, entity.RoleProfessional)

	all, err := env.encounter.GetHistory(ctx, anaIdentity, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("history = %d entries, want 2", len(all))
	}

	perPatient, _ := env.encounter.GetHistory(ctx, anaIdentity, joao.ID)
	if len(perPatient) != 1 || perPatient[0].PatientName != "João" {
		t.Errorf("per-patient history = %+v", perPatient)
	}

	everything, _ := env.encounter.GetAllEncounters(ctx)
	if len(everything) != 3 {
		t.Errorf("all encounters = %d, want 3", len(everything))
	}
}

func TestUpdateEncounter(t *testing.T) {
	env := newTestEnv(t)
	professional := env.createProfessional(t, "ana@clinica.com", entity.RoleProfessional)
	patient := env.createPatient(t, "João")
	appointment := env.createAppointment(t, patient.ID, professional.ID, "Consulta")
	ctx := context.Background()

	created, _ := env.encounter.CreateEncounter(ctx, nil, &dto.CreateEncounterRequest{AppointmentID: appointment.ID, Diagnosis: "a"})

	updated, err := env.encounter.UpdateEncounter(ctx, nil, created.ID, &dto.UpdateEncounterRequest{Diagnosis: "b", Medications: "nenhum"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Diagnosis != "b" || updated.Medications != "nenhum" {
		t.Errorf("unexpected response %+v", updated)
	}

	if _, err := env.encounter.UpdateEncounter(ctx, nil, 999, &dto.UpdateEncounterRequest{}); err != ErrEncounterNotFound {
		t.Errorf("unknown id = %v, want %v", err, ErrEncounterNotFound)
	}
	if _, err := env.encounter.GetEncounterByAppointment(ctx, 999); err != ErrEncounterNotFound {
		t.Errorf("unknown appointment = %v, want %v", err, ErrEncounterNotFound)
	}
}
