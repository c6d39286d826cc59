package usecase

import (
	"context"
	"testing"

	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/domain/entity"
)

func TestPatientLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.patient.CreatePatient(ctx, nil, &dto.PatientRequest{
		Name:      "João Silva",
		Phone:     "11999990000",
		City:      "São Paulo",
		BirthDate: "1990-05-20",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.BirthDate == nil || *created.BirthDate != "1990-05-20" {
		t.Errorf("BirthDate = %v, want 1990-05-20", created.BirthDate)
	}
	if created.Email != nil {
		t.Errorf("Email = %v, want nil", *created.Email)
	}

	updated, err := env.patient.UpdatePatient(ctx, nil, created.ID, &dto.PatientRequest{Name: "João S."})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "João S." || updated.Phone != nil || updated.BirthDate != nil {
		t.Errorf("update must overwrite every field, got %+v", updated)
	}

	got, err := env.patient.GetPatient(ctx, created.ID)
	if err != nil || got.Name != "João S." {
		t.Errorf("get = (%+v, %v)", got, err)
	}

	if err := env.patient.DeletePatient(ctx, nil, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := env.patient.GetPatient(ctx, created.ID); err != ErrPatientNotFound {
		t.Errorf("get after delete = %v, want %v", err, ErrPatientNotFound)
	}

	var actions []string
	env.db.Model(&entity.AuditLog{}).Order("id").Pluck("action", &actions)
	want := []string{entity.AuditActionPatientCreate, entity.AuditActionPatientUpdate, entity.AuditActionPatientDelete}
	if len(actions) != len(want) {
		t.Fatalf("audit actions = %v, want %v", actions, want)
	}
	for i := range want {
		if actions[i] != want[i] {
			t.Errorf("audit action %d = %q, want %q", i, actions[i], want[i])
		}
	}
}

func TestPatient_Errors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.patient.CreatePatient(ctx, nil, &dto.PatientRequest{}); err != ErrPatientNameRequired {
		t.Errorf("create without name = %v, want %v", err, ErrPatientNameRequired)
	}
	if _, err := env.patient.CreatePatient(ctx, nil, &dto.PatientRequest{Name: "A", BirthDate: "20/05/1990"}); err != ErrInvalidDateFormat {
		t.Errorf("create with bad date = %v, want %v", err, ErrInvalidDateFormat)
	}
	if _, err := env.patient.UpdatePatient(ctx, nil, 42, &dto.PatientRequest{Name: "A"}); err != ErrPatientNotFound {
		t.Errorf("update unknown = %v, want %v", err, ErrPatientNotFound)
	}
	if err := env.patient.DeletePatient(ctx, nil, 42); err != ErrPatientNotFound {
		t.Errorf("delete unknown = %v, want %v", err, ErrPatientNotFound)
	}
}

func TestGetAllPatients_OrderedByName(t *testing.T) {
	env := newTestEnv(t)
	env.createPatient(t, "Maria")
	env.createPatient(t, "Ana")
	env.createPatient(t, "Ana")

	list, err := env.patient.GetAllPatients(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("len = %d, want 3 (duplicates allowed)", len(list))
	}
	if list[0].Name != "Ana" || list[2].Name != "Maria" {
		t.Errorf("unexpected order: %s, %s, %s", list[0].Name, list[1].Name, list[2].Name)
	}
}

func TestDeletePatient_WithAppointments(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	professional := env.createProfessional(t, "ana@clinica.com", entity.RoleProfessional)
	patient := env.createPatient(t, "João")
	env.createAppointment(t, patient.ID, professional.ID, "Consulta")

	if err := env.patient.DeletePatient(ctx, nil, patient.ID); err != ErrPatientInUse {
		t.Fatalf("err = %v, want %v", err, ErrPatientInUse)
	}
	if n := env.count(t, &entity.Patient{}); n != 1 {
		t.Errorf("patients = %d, want 1", n)
	}
	if n := env.count(t, &entity.Appointment{}); n != 1 {
		t.Errorf("appointments = %d, want 1", n)
	}
}
