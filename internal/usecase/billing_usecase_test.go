package usecase

import (
	"context"
	"testing"

	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func TestPayBillingEntry(t *testing.T) {
	env := newTestEnv(t)
	professional := env.createProfessional(t, "ana@clinica.com", entity.RoleProfessional)
	patient := env.createPatient(t, "João")
	env.createAppointment(t, patient.ID, professional.ID, "Consulta")
	ctx := context.Background()

	entries, err := env.billing.GetAllBillingEntries(ctx, "Pendente")
	if err != nil || len(entries) != 1 {
		t.Fatalf("pending = (%v, %v), want one entry", entries, err)
	}
	entry := entries[0]
	if entry.Patient != "João" || entry.Type != "Consulta" || entry.Date != "2024-01-01" {
		t.Errorf("unexpected entry %+v", entry)
	}

	accountID := uint(3)
	if err := env.billing.PayBillingEntry(ctx, nil, entry.ID, &dto.PayBillingRequest{Method: "Pix", AccountID: &accountID}); err != nil {
		t.Fatalf("pay: %v", err)
	}
	// Paying again overwrites the payment.
	if err := env.billing.PayBillingEntry(ctx, nil, entry.ID, &dto.PayBillingRequest{Method: "Dinheiro"}); err != nil {
		t.Fatalf("second pay: %v", err)
	}

	paid, _ := env.billing.GetAllBillingEntries(ctx, "Pago")
	if len(paid) != 1 {
		t.Fatalf("paid = %d entries, want 1", len(paid))
	}
	if paid[0].PaymentMethod == nil || *paid[0].PaymentMethod != "Dinheiro" || paid[0].PaymentAccountID != nil || paid[0].PaymentDate == nil {
		t.Errorf("unexpected paid entry %+v", paid[0])
	}

	if pending, _ := env.billing.GetAllBillingEntries(ctx, "Pendente"); len(pending) != 0 {
		t.Errorf("pending = %d entries, want 0", len(pending))
	}
}

func TestPayBillingEntry_Errors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if err := env.billing.PayBillingEntry(ctx, nil, 1, &dto.PayBillingRequest{Method: "  "}); err != ErrPaymentMethodRequired {
		t.Errorf("missing method = %v, want %v", err, ErrPaymentMethodRequired)
	}
	if err := env.billing.PayBillingEntry(ctx, nil, 1, &dto.PayBillingRequest{Method: "Pix"}); err != ErrBillingNotFound {
		t.Errorf("unknown entry = %v, want %v", err, ErrBillingNotFound)
	}
	if _, err := env.billing.GetAllBillingEntries(ctx, "Atrasado"); err != ErrInvalidBillingStatus {
		t.Errorf("unknown status = %v, want %v", err, ErrInvalidBillingStatus)
	}
}

func TestGenerateBillingEntry(t *testing.T) {
	env := newTestEnv(t)
	professional := env.createProfessional(t, "ana@clinica.com", entity.RoleProfessional)
	patient := env.createPatient(t, "João")
	appointment := env.createAppointment(t, patient.ID, professional.ID, "Retorno")
	ctx := context.Background()

	extra, err := env.billing.GenerateBillingEntry(ctx, nil, appointment.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !extra.Value.Equal(decimal.NewFromInt(150)) || extra.Status != "Pendente" {
		t.Errorf("unexpected entry %+v", extra)
	}
	if extra.Description != "Cobrança adicional - Retorno" {
		t.Errorf("Description = %q", extra.Description)
	}

	all, _ := env.billing.GetAllBillingEntries(ctx, "")
	if len(all) != 2 {
		t.Errorf("entries = %d, want 2", len(all))
	}

	if _, err := env.billing.GenerateBillingEntry(ctx, nil, 999); err != ErrAppointmentNotFound {
		t.Errorf("unknown appointment = %v, want %v", err, ErrAppointmentNotFound)
	}
}
