package usecase

import (
	"context"
	"errors"
	"strings"

	"clinic-management/internal/converter"
	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/domain/entity"
	"clinic-management/internal/domain/repository"
	"clinic-management/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrBillingNotFound       = errors.New("billing entry not found")
	ErrPaymentMethodRequired = errors.New("payment method is required")
	ErrInvalidBillingStatus  = errors.New("invalid billing status")
)

type BillingUsecase interface {
	GetAllBillingEntries(ctx context.Context, status string) ([]dto.BillingResponse, error)
	PayBillingEntry(ctx context.Context, actor *entity.Identity, id uint, req *dto.PayBillingRequest) error
	GenerateBillingEntry(ctx context.Context, actor *entity.Identity, appointmentID uint) (*dto.BillingResponse, error)
}

type billingUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	billingRepo     repository.BillingRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewBillingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	billingRepo repository.BillingRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) BillingUsecase {
	return &billingUsecase{
		db:              db,
		log:             log,
		billingRepo:     billingRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

// GetAllBillingEntries lists entries by appointment date, newest first. An empty status lists all.
func (u *billingUsecase) GetAllBillingEntries(ctx context.Context, status string) ([]dto.BillingResponse, error) {
	filter := entity.BillingStatus(status)
	if filter != "" && !filter.IsValid() {
		return nil, ErrInvalidBillingStatus
	}

	entries, err := u.billingRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to find billing entries: %+v", err)
		return nil, err
	}

	return converter.BillingEntriesToResponses(entries), nil
}

// PayBillingEntry marks the entry Paid today. Paying an entry twice overwrites the first payment.
func (u *billingUsecase) PayBillingEntry(ctx context.Context, actor *entity.Identity, id uint, req *dto.PayBillingRequest) error {
	method := strings.TrimSpace(req.Method)
	if method == "" {
		return ErrPaymentMethodRequired
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	entry, err := u.billingRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find billing entry: %+v", err)
		return err
	}
	if entry == nil {
		return ErrBillingNotFound
	}

	payment := entity.Payment{
		Method:    method,
		AccountID: req.AccountID,
		Date:      today(),
	}

	if _, err := u.billingRepo.MarkPaid(tx, id, payment); err != nil {
		u.log.Warnf("Failed to mark billing entry paid: %+v", err)
		return err
	}

	details := map[string]interface{}{
		"entity_id":       id,
		"method":          method,
		"previous_status": string(entry.Status),
		"payment_account": req.AccountID,
	}
	if err := u.auditService.LogEvent(ctx, tx, actorAccountID(actor), entity.AuditActionBillingPay, details); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// GenerateBillingEntry adds an extra pending entry with the fixed extra-charge value.
func (u *billingUsecase) GenerateBillingEntry(ctx context.Context, actor *entity.Identity, appointmentID uint) (*dto.BillingResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	entryDate := today()
	entry := &entity.BillingEntry{
		AppointmentID:  appointment.ID,
		PatientID:      appointment.PatientID,
		ProfessionalID: appointment.ProfessionalID,
		Description:    entity.ExtraBillingDescription(appointment.Type),
		Value:          entity.ExtraBillingValue,
		Status:         entity.BillingStatusPending,
		EntryDate:      &entryDate,
	}

	if err := u.billingRepo.Create(tx, entry); err != nil {
		u.log.Warnf("Failed to create billing entry: %+v", err)
		return nil, err
	}

	entry.Appointment = *appointment
	entry.Patient = appointment.Patient

	response := converter.BillingEntryToResponse(entry)
	if err := u.auditService.LogCreate(ctx, tx, actorAccountID(actor), entity.AuditActionBillingCreate, "billing_entry", entry.ID, response); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}
