package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-management/internal/converter"
	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/domain/entity"
	"clinic-management/internal/domain/repository"
	"clinic-management/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentFieldsRequired    = errors.New("patient, professional, date and time are required")
	ErrInvalidAppointmentTime       = errors.New("invalid time format, use HH:MM")
	ErrInvalidAppointmentStatus     = errors.New("invalid appointment status")
	ErrAppointmentNotFound          = errors.New("appointment not found")
	ErrAppointmentReferenceNotFound = errors.New("patient or professional not found")
	ErrAppointmentCompleted         = errors.New("appointment already completed")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, actor *entity.Identity, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAllAppointments(ctx context.Context) ([]dto.AppointmentResponse, error)
	GetCompletedAppointments(ctx context.Context) ([]dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id uint) (*dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, actor *entity.Identity, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateAppointmentStatus(ctx context.Context, actor *entity.Identity, id uint, req *dto.UpdateAppointmentStatusRequest) error
	DeleteAppointment(ctx context.Context, actor *entity.Identity, id uint) error
}

type appointmentUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	appointmentRepo  repository.AppointmentRepository
	patientRepo      repository.PatientRepository
	professionalRepo repository.ProfessionalRepository
	encounterRepo    repository.EncounterRepository
	billingRepo      repository.BillingRepository
	auditService     service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	professionalRepo repository.ProfessionalRepository,
	encounterRepo repository.EncounterRepository,
	billingRepo repository.BillingRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:               db,
		log:              log,
		appointmentRepo:  appointmentRepo,
		patientRepo:      patientRepo,
		professionalRepo: professionalRepo,
		encounterRepo:    encounterRepo,
		billingRepo:      billingRepo,
		auditService:     auditService,
	}
}

// CreateAppointment prices the appointment from its type and inserts it together with
// its pending billing entry. Either both rows are stored or neither is.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, actor *entity.Identity, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if req.PatientID == 0 || req.ProfessionalID == 0 || req.Date == "" || req.Time == "" {
		return nil, ErrAppointmentFieldsRequired
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if err := validateTime(req.Time); err != nil {
		return nil, err
	}

	status := entity.AppointmentStatusScheduled
	if req.Status != "" {
		status = entity.AppointmentStatus(req.Status)
		if !status.IsValid() {
			return nil, ErrInvalidAppointmentStatus
		}
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.checkReferences(tx, req.PatientID, req.ProfessionalID); err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		PatientID:      req.PatientID,
		ProfessionalID: req.ProfessionalID,
		Date:           date,
		Time:           req.Time,
		Type:           req.Type,
		Value:          entity.PriceForType(req.Type),
		Status:         status,
		Notes:          req.Notes,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isForeignKeyError(err, "") {
			return nil, ErrAppointmentReferenceNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	entryDate := date
	billing := &entity.BillingEntry{
		AppointmentID:  appointment.ID,
		PatientID:      appointment.PatientID,
		ProfessionalID: appointment.ProfessionalID,
		Description:    entity.BillingDescription(appointment.Type),
		Value:          appointment.Value,
		Status:         entity.BillingStatusPending,
		EntryDate:      &entryDate,
	}

	if err := u.billingRepo.Create(tx, billing); err != nil {
		u.log.Warnf("Failed to create billing entry: %+v", err)
		return nil, err
	}

	response := converter.AppointmentToResponse(appointment)
	if err := u.auditService.LogCreate(ctx, tx, actorAccountID(actor), entity.AuditActionAppointmentCreate, "appointment", appointment.ID, response); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all appointments: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

// GetCompletedAppointments lists the appointment history: every Completed appointment.
func (u *appointmentUsecase) GetCompletedAppointments(ctx context.Context) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindByStatus(u.db.WithContext(ctx), entity.AppointmentStatusCompleted)
	if err != nil {
		u.log.Warnf("Failed to find completed appointments: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

// UpdateAppointment edits a non-completed appointment. The value is not repriced.
func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, actor *entity.Identity, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if req.PatientID == 0 || req.ProfessionalID == 0 || req.Date == "" || req.Time == "" {
		return nil, ErrAppointmentFieldsRequired
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if err := validateTime(req.Time); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.IsCompleted() {
		return nil, ErrAppointmentCompleted
	}

	if err := u.checkReferences(tx, req.PatientID, req.ProfessionalID); err != nil {
		return nil, err
	}

	oldValue := converter.AppointmentToResponse(appointment)

	appointment.PatientID = req.PatientID
	appointment.ProfessionalID = req.ProfessionalID
	appointment.Date = date
	appointment.Time = req.Time
	appointment.Type = req.Type
	appointment.Notes = req.Notes

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		if isForeignKeyError(err, "") {
			return nil, ErrAppointmentReferenceNotFound
		}
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	updated, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}

	newValue := converter.AppointmentToResponse(updated)
	if err := u.auditService.LogUpdate(ctx, tx, actorAccountID(actor), entity.AuditActionAppointmentUpdate, "appointment", id, oldValue, newValue); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

// UpdateAppointmentStatus sets any of the four statuses. The status is checked before storage is touched.
func (u *appointmentUsecase) UpdateAppointmentStatus(ctx context.Context, actor *entity.Identity, id uint, req *dto.UpdateAppointmentStatusRequest) error {
	status := entity.AppointmentStatus(req.Status)
	if !status.IsValid() {
		return ErrInvalidAppointmentStatus
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	rows, err := u.appointmentRepo.UpdateStatus(tx, id, status)
	if err != nil {
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrAppointmentNotFound
	}

	details := map[string]interface{}{"entity_id": id, "status": string(status)}
	if err := u.auditService.LogEvent(ctx, tx, actorAccountID(actor), entity.AuditActionAppointmentStatus, details); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// DeleteAppointment removes a non-completed appointment with its encounters and billing entries.
func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, actor *entity.Identity, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	if appointment.IsCompleted() {
		return ErrAppointmentCompleted
	}

	if err := u.encounterRepo.DeleteByAppointmentID(tx, id); err != nil {
		u.log.Warnf("Failed delete encounters: %+v", err)
		return err
	}

	if err := u.billingRepo.DeleteByAppointmentID(tx, id); err != nil {
		u.log.Warnf("Failed delete billing entries: %+v", err)
		return err
	}

	rows, err := u.appointmentRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed delete appointment: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrAppointmentNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, actorAccountID(actor), entity.AuditActionAppointmentDelete, "appointment", id, converter.AppointmentToResponse(appointment)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *appointmentUsecase) checkReferences(tx *gorm.DB, patientID, professionalID uint) error {
	patient, err := u.patientRepo.FindByID(tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}

	professional, err := u.professionalRepo.FindByID(tx, professionalID)
	if err != nil {
		u.log.Warnf("Failed to find professional: %+v", err)
		return err
	}

	if patient == nil || professional == nil {
		return ErrAppointmentReferenceNotFound
	}
	return nil
}

func validateTime(value string) error {
	if _, err := time.Parse(timeLayout, value); err != nil {
		return ErrInvalidAppointmentTime
	}
	return nil
}
