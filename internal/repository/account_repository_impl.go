package repository

import (
	"errors"

	"clinic-management/internal/domain/entity"
	domainRepo "clinic-management/internal/domain/repository"

	"gorm.io/gorm"
)

type accountRepository struct{}

func NewAccountRepository() domainRepo.AccountRepository {
	return &accountRepository{}
}

func (r *accountRepository) Create(db *gorm.DB, account *entity.Account) error {
	return db.Create(account).Error
}

func (r *accountRepository) FindByEmail(db *gorm.DB, email string) (*entity.Account, error) {
	var account entity.Account
	err := db.Where("email = ?", email).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

// FindCredentialByEmail joins the account to its professional. Accounts without a
// professional are never returned.
func (r *accountRepository) FindCredentialByEmail(db *gorm.DB, email string) (*entity.Credential, error) {
	var credential entity.Credential
	result := db.Table("accounts").
		Select(`accounts.id AS account_id,
			accounts.email,
			accounts.password_hash,
			accounts.role,
			accounts.active AS account_active,
			professionals.id AS professional_id,
			professionals.name,
			professionals.active AS professional_active`).
		Joins("JOIN professionals ON professionals.account_id = accounts.id").
		Where("accounts.email = ?", email).
		Limit(1).
		Scan(&credential)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &credential, nil
}

func (r *accountRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Delete(&entity.Account{}, id)
	return result.RowsAffected, result.Error
}
