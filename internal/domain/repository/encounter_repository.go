package repository

import (
	"clinic-management/internal/domain/entity"

	"gorm.io/gorm"
)

type EncounterRepository interface {
	Create(db *gorm.DB, encounter *entity.Encounter) error
	FindAll(db *gorm.DB) ([]entity.Encounter, error)
	FindByID(db *gorm.DB, id uint) (*entity.Encounter, error)
	FindFirstByAppointmentID(db *gorm.DB, appointmentID uint) (*entity.Encounter, error)
	FindHistory(db *gorm.DB, filter entity.EncounterFilter) ([]entity.Encounter, error)
	Update(db *gorm.DB, encounter *entity.Encounter) error
	DeleteByAppointmentID(db *gorm.DB, appointmentID uint) error
}
