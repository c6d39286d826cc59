package repository

import (
	"clinic-management/internal/domain/entity"

	"gorm.io/gorm"
)

type AccountRepository interface {
	Create(db *gorm.DB, account *entity.Account) error
	FindByEmail(db *gorm.DB, email string) (*entity.Account, error)
	FindCredentialByEmail(db *gorm.DB, email string) (*entity.Credential, error)
	Delete(db *gorm.DB, id uint) (int64, error)
}
