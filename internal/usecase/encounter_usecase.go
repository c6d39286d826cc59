package usecase

import (
	"context"
	"errors"

	"clinic-management/internal/converter"
	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/domain/entity"
	"clinic-management/internal/domain/repository"
	"clinic-management/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrEncounterNotFound = errors.New("encounter not found")
	ErrEncounterFields   = errors.New("appointment is required")
)

type EncounterUsecase interface {
	CreateEncounter(ctx context.Context, actor *entity.Identity, req *dto.CreateEncounterRequest) (*dto.EncounterResponse, error)
	GetAllEncounters(ctx context.Context) ([]dto.EncounterResponse, error)
	GetEncounterByAppointment(ctx context.Context, appointmentID uint) (*dto.EncounterResponse, error)
	UpdateEncounter(ctx context.Context, actor *entity.Identity, id uint, req *dto.UpdateEncounterRequest) (*dto.EncounterResponse, error)
	GetHistory(ctx context.Context, actor *entity.Identity, patientID uint) ([]dto.EncounterResponse, error)
}

type encounterUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	encounterRepo   repository.EncounterRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewEncounterUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	encounterRepo repository.EncounterRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) EncounterUsecase {
	return &encounterUsecase{
		db:              db,
		log:             log,
		encounterRepo:   encounterRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

// CreateEncounter records the encounter and marks its appointment Completed in one
// transaction. The professional comes from the appointment, never from the caller.
// An unknown appointment yields (nil, nil).
func (u *encounterUsecase) CreateEncounter(ctx context.Context, actor *entity.Identity, req *dto.CreateEncounterRequest) (*dto.EncounterResponse, error) {
	if req.AppointmentID == 0 {
		return nil, ErrEncounterFields
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, nil
	}

	encounter := &entity.Encounter{
		AppointmentID:  appointment.ID,
		ProfessionalID: appointment.ProfessionalID,
		ChiefComplaint: req.ChiefComplaint,
		Diagnosis:      req.Diagnosis,
		Plan:           req.Plan,
		Medications:    req.Medications,
		Notes:          req.Notes,
	}

	if err := u.encounterRepo.Create(tx, encounter); err != nil {
		u.log.Warnf("Failed to create encounter: %+v", err)
		return nil, err
	}

	if _, err := u.appointmentRepo.UpdateStatus(tx, appointment.ID, entity.AppointmentStatusCompleted); err != nil {
		u.log.Warnf("Failed to complete appointment: %+v", err)
		return nil, err
	}

	encounter.Appointment = *appointment
	encounter.Professional = appointment.Professional

	response := converter.EncounterToResponse(encounter)
	if err := u.auditService.LogCreate(ctx, tx, actorAccountID(actor), entity.AuditActionEncounterCreate, "encounter", encounter.ID, response); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

func (u *encounterUsecase) GetAllEncounters(ctx context.Context) ([]dto.EncounterResponse, error) {
	encounters, err := u.encounterRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all encounters: %+v", err)
		return nil, err
	}

	return converter.EncountersToResponses(encounters), nil
}

func (u *encounterUsecase) GetEncounterByAppointment(ctx context.Context, appointmentID uint) (*dto.EncounterResponse, error) {
	encounter, err := u.encounterRepo.FindFirstByAppointmentID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find encounter: %+v", err)
		return nil, err
	}
	if encounter == nil {
		return nil, ErrEncounterNotFound
	}

	return converter.EncounterToResponse(encounter), nil
}

func (u *encounterUsecase) UpdateEncounter(ctx context.Context, actor *entity.Identity, id uint, req *dto.UpdateEncounterRequest) (*dto.EncounterResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	encounter, err := u.encounterRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find encounter: %+v", err)
		return nil, err
	}
	if encounter == nil {
		return nil, ErrEncounterNotFound
	}

	oldValue := converter.EncounterToResponse(encounter)

	encounter.ChiefComplaint = req.ChiefComplaint
	encounter.Diagnosis = req.Diagnosis
	encounter.Plan = req.Plan
	encounter.Medications = req.Medications
	encounter.Notes = req.Notes

	if err := u.encounterRepo.Update(tx, encounter); err != nil {
		u.log.Warnf("Failed to update encounter: %+v", err)
		return nil, err
	}

	newValue := converter.EncounterToResponse(encounter)
	if err := u.auditService.LogUpdate(ctx, tx, actorAccountID(actor), entity.AuditActionEncounterUpdate, "encounter", id, oldValue, newValue); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

// GetHistory lists the encounters written by the calling professional, newest first.
// A zero patientID covers every patient.
func (u *encounterUsecase) GetHistory(ctx context.Context, actor *entity.Identity, patientID uint) ([]dto.EncounterResponse, error) {
	filter := entity.EncounterFilter{
		ProfessionalID: actor.ProfessionalID,
		PatientID:      patientID,
	}

	encounters, err := u.encounterRepo.FindHistory(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to find encounter history: %+v", err)
		return nil, err
	}

	return converter.EncountersToResponses(encounters), nil
}
