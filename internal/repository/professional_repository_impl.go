package repository

import (
	"errors"

	"clinic-management/internal/domain/entity"
	domainRepo "clinic-management/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type professionalRepository struct{}

func NewProfessionalRepository() domainRepo.ProfessionalRepository {
	return &professionalRepository{}
}

func (r *professionalRepository) Create(db *gorm.DB, professional *entity.Professional) error {
	return db.Omit(clause.Associations).Create(professional).Error
}

func (r *professionalRepository) FindAll(db *gorm.DB) ([]entity.Professional, error) {
	var professionals []entity.Professional
	err := db.Preload("Account").Order("name").Find(&professionals).Error
	if err != nil {
		return nil, err
	}
	return professionals, nil
}

func (r *professionalRepository) FindByID(db *gorm.DB, id uint) (*entity.Professional, error) {
	var professional entity.Professional
	err := db.Preload("Account").Where("id = ?", id).First(&professional).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &professional, nil
}

func (r *professionalRepository) Update(db *gorm.DB, professional *entity.Professional) error {
	return db.Omit(clause.Associations).Save(professional).Error
}

func (r *professionalRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Delete(&entity.Professional{}, id)
	return result.RowsAffected, result.Error
}
