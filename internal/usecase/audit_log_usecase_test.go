package usecase

import (
	"context"
	"testing"

	"clinic-management/internal/domain/entity"
)

func TestAuditLogUsecase(t *testing.T) {
	env := newTestEnv(t)
	env.createProfessional(t, "admin@clinica.com", entity.RoleAdmin)
	env.createPatient(t, "João")
	ctx := context.Background()

	logs, err := env.auditLog.GetAllAuditLogs(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("logs = %d, want 2", len(logs))
	}
	if logs[0].Action != entity.AuditActionPatientCreate {
		t.Errorf("newest action = %q, want %q", logs[0].Action, entity.AuditActionPatientCreate)
	}
	if logs[0].Metadata["entity_id"] == nil {
		t.Errorf("metadata = %v, want entity_id", logs[0].Metadata)
	}

	got, err := env.auditLog.GetAuditLog(ctx, logs[1].ID)
	if err != nil || got.Action != entity.AuditActionProfessionalCreate {
		t.Errorf("GetAuditLog = (%+v, %v)", got, err)
	}

	if _, err := env.auditLog.GetAuditLog(ctx, 999); err != ErrAuditLogNotFound {
		t.Errorf("unknown id = %v, want %v", err, ErrAuditLogNotFound)
	}
}
