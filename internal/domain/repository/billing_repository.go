package repository

import (
	"clinic-management/internal/domain/entity"

	"gorm.io/gorm"
)

type BillingRepository interface {
	Create(db *gorm.DB, entry *entity.BillingEntry) error
	FindAll(db *gorm.DB, status entity.BillingStatus) ([]entity.BillingEntry, error)
	FindByID(db *gorm.DB, id uint) (*entity.BillingEntry, error)
	FindByAppointmentID(db *gorm.DB, appointmentID uint) ([]entity.BillingEntry, error)
	MarkPaid(db *gorm.DB, id uint, payment entity.Payment) (int64, error)
	DeleteByAppointmentID(db *gorm.DB, appointmentID uint) error
}
