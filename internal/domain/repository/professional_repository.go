package repository

import (
	"clinic-management/internal/domain/entity"

	"gorm.io/gorm"
)

type ProfessionalRepository interface {
	Create(db *gorm.DB, professional *entity.Professional) error
	FindAll(db *gorm.DB) ([]entity.Professional, error)
	FindByID(db *gorm.DB, id uint) (*entity.Professional, error)
	Update(db *gorm.DB, professional *entity.Professional) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
