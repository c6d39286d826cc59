package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinic-management/config"
	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/domain/entity"
	"clinic-management/internal/repository"
	"clinic-management/internal/service"
	"clinic-management/internal/testutil"
	"clinic-management/pkg/jwt"
	"clinic-management/pkg/password"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var errForced = errors.New("forced failure")

type testEnv struct {
	db       *gorm.DB
	sessions *repository.MemorySessionRepository

	auth         AuthUsecase
	patient      PatientUsecase
	professional ProfessionalUsecase
	appointment  AppointmentUsecase
	encounter    EncounterUsecase
	billing      BillingUsecase
	auditLog     AuditLogUsecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.NewDB(t)
	log := testutil.NewLogger()

	accountRepo := repository.NewAccountRepository()
	professionalRepo := repository.NewProfessionalRepository()
	patientRepo := repository.NewPatientRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	encounterRepo := repository.NewEncounterRepository()
	billingRepo := repository.NewBillingRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	sessions := repository.NewMemorySessionRepository(log)
	t.Cleanup(sessions.Stop)

	auditService := service.NewAuditService(log, auditLogRepo)
	hasher := password.NewHasher(bcrypt.MinCost)
	jwtService := jwt.NewJWTService(config.SessionConfig{Secret: "test-secret", Expiry: time.Hour})

	return &testEnv{
		db:           db,
		sessions:     sessions,
		auth:         NewAuthUsecase(db, log, accountRepo, sessions, auditService, hasher, jwtService),
		patient:      NewPatientUsecase(db, log, patientRepo, auditService),
		professional: NewProfessionalUsecase(db, log, accountRepo, professionalRepo, auditService, hasher),
		appointment:  NewAppointmentUsecase(db, log, appointmentRepo, patientRepo, professionalRepo, encounterRepo, billingRepo, auditService),
		encounter:    NewEncounterUsecase(db, log, encounterRepo, appointmentRepo, auditService),
		billing:      NewBillingUsecase(db, log, billingRepo, appointmentRepo, auditService),
		auditLog:     NewAuditLogUsecase(db, log, auditLogRepo),
	}
}

// failCreates makes every insert into table fail.
func (e *testEnv) failCreates(t *testing.T, table string) {
	t.Helper()
	err := e.db.Callback().Create().Before("gorm:create").Register("test:fail_create_"+table, func(tx *gorm.DB) {
		if tx.Statement.Table == table {
			tx.AddError(errForced)
		}
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}
}

// failUpdates makes every update of table fail.
func (e *testEnv) failUpdates(t *testing.T, table string) {
	t.Helper()
	err := e.db.Callback().Update().Before("gorm:update").Register("test:fail_update_"+table, func(tx *gorm.DB) {
		if tx.Statement.Table == table {
			tx.AddError(errForced)
		}
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}
}

func (e *testEnv) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := e.db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func (e *testEnv) createProfessional(t *testing.T, email string, role entity.Role) *dto.ProfessionalResponse {
	t.Helper()
	professional, err := e.professional.CreateProfessional(context.Background(), nil, &dto.CreateProfessionalRequest{
		Name:      "Dra. " + email,
		Specialty: "Neuropsicologia",
		Email:     email,
		Password:  "secret",
		Role:      string(role),
	})
	if err != nil {
		t.Fatalf("create professional: %v", err)
	}
	return professional
}

func (e *testEnv) createPatient(t *testing.T, name string) *dto.PatientResponse {
	t.Helper()
	patient, err := e.patient.CreatePatient(context.Background(), nil, &dto.PatientRequest{Name: name})
	if err != nil {
		t.Fatalf("create patient: %v", err)
	}
	return patient
}

func (e *testEnv) createAppointment(t *testing.T, patientID, professionalID uint, appointmentType string) *dto.AppointmentResponse {
	t.Helper()
	appointment, err := e.appointment.CreateAppointment(context.Background(), nil, &dto.CreateAppointmentRequest{
		PatientID:      patientID,
		ProfessionalID: professionalID,
		Date:           "2024-01-01",
		Time:           "10:00",
		Type:           appointmentType,
	})
	if err != nil {
		t.Fatalf("create appointment: %v", err)
	}
	return appointment
}

func identityOf(p *dto.ProfessionalResponse, role entity.Role) *entity.Identity {
	return &entity.Identity{
		AccountID:      p.AccountID,
		ProfessionalID: p.ID,
		Name:           p.Name,
		Role:           role,
		Email:          p.Email,
	}
}
