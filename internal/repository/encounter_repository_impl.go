package repository

import (
	"errors"

	"clinic-management/internal/domain/entity"
	domainRepo "clinic-management/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type encounterRepository struct{}

func NewEncounterRepository() domainRepo.EncounterRepository {
	return &encounterRepository{}
}

func (r *encounterRepository) Create(db *gorm.DB, encounter *entity.Encounter) error {
	return db.Omit(clause.Associations).Create(encounter).Error
}

func (r *encounterRepository) FindAll(db *gorm.DB) ([]entity.Encounter, error) {
	var encounters []entity.Encounter
	err := db.Preload("Appointment.Patient").Preload("Professional").
		Order("created_at DESC").
		Find(&encounters).Error
	if err != nil {
		return nil, err
	}
	return encounters, nil
}

func (r *encounterRepository) FindByID(db *gorm.DB, id uint) (*entity.Encounter, error) {
	var encounter entity.Encounter
	err := db.Preload("Appointment.Patient").Preload("Professional").
		Where("id = ?", id).
		First(&encounter).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &encounter, nil
}

// FindFirstByAppointmentID returns the oldest encounter of the appointment.
func (r *encounterRepository) FindFirstByAppointmentID(db *gorm.DB, appointmentID uint) (*entity.Encounter, error) {
	var encounter entity.Encounter
	err := db.Preload("Professional").
		Where("appointment_id = ?", appointmentID).
		Order("created_at ASC, id ASC").
		First(&encounter).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &encounter, nil
}

func (r *encounterRepository) FindHistory(db *gorm.DB, filter entity.EncounterFilter) ([]entity.Encounter, error) {
	var encounters []entity.Encounter

	query := db.Model(&entity.Encounter{}).
		Joins("JOIN appointments ON appointments.id = encounters.appointment_id").
		Where("encounters.professional_id = ?", filter.ProfessionalID)

	if filter.PatientID != 0 {
		query = query.Where("appointments.patient_id = ?", filter.PatientID)
	}

	err := query.Preload("Appointment.Patient").Preload("Professional").
		Order("encounters.created_at DESC, encounters.id DESC").
		Find(&encounters).Error
	if err != nil {
		return nil, err
	}
	return encounters, nil
}

// Update writes the clinical fields only.
func (r *encounterRepository) Update(db *gorm.DB, encounter *entity.Encounter) error {
	return db.Model(&entity.Encounter{}).
		Where("id = ?", encounter.ID).
		Select("chief_complaint", "diagnosis", "plan", "medications", "notes").
		Updates(encounter).Error
}

func (r *encounterRepository) DeleteByAppointmentID(db *gorm.DB, appointmentID uint) error {
	return db.Where("appointment_id = ?", appointmentID).Delete(&entity.Encounter{}).Error
}
