package repository

import (
	"errors"

	"clinic-management/internal/domain/entity"
	domainRepo "clinic-management/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type billingRepository struct{}

func NewBillingRepository() domainRepo.BillingRepository {
	return &billingRepository{}
}

func (r *billingRepository) Create(db *gorm.DB, entry *entity.BillingEntry) error {
	return db.Omit(clause.Associations).Create(entry).Error
}

// FindAll lists entries newest appointment first. An empty status lists every entry.
func (r *billingRepository) FindAll(db *gorm.DB, status entity.BillingStatus) ([]entity.BillingEntry, error) {
	var entries []entity.BillingEntry

	query := db.Model(&entity.BillingEntry{}).
		Joins("JOIN appointments ON appointments.id = billing_entries.appointment_id")

	if status != "" {
		query = query.Where("billing_entries.status = ?", status)
	}

	err := query.Preload("Patient").Preload("Appointment.Professional").
		Order("appointments.scheduled_date DESC, billing_entries.id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *billingRepository) FindByID(db *gorm.DB, id uint) (*entity.BillingEntry, error) {
	var entry entity.BillingEntry
	err := db.Preload("Patient").Preload("Appointment.Professional").
		Where("id = ?", id).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *billingRepository) FindByAppointmentID(db *gorm.DB, appointmentID uint) ([]entity.BillingEntry, error) {
	var entries []entity.BillingEntry
	err := db.Where("appointment_id = ?", appointmentID).Order("id").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *billingRepository) MarkPaid(db *gorm.DB, id uint, payment entity.Payment) (int64, error) {
	result := db.Model(&entity.BillingEntry{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":             entity.BillingStatusPaid,
			"payment_date":       payment.Date,
			"payment_method":     payment.Method,
			"payment_account_id": payment.AccountID,
		})
	return result.RowsAffected, result.Error
}

func (r *billingRepository) DeleteByAppointmentID(db *gorm.DB, appointmentID uint) error {
	return db.Where("appointment_id = ?", appointmentID).Delete(&entity.BillingEntry{}).Error
}
