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
	"clinic-management/pkg/password"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrProfessionalNotFound = errors.New("professional not found")
	ErrProfessionalInUse    = errors.New("professional has appointments or encounters")
	ErrProfessionalIsSelf   = errors.New("professional cannot delete itself")
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrInvalidRole          = errors.New("invalid role")
	ErrProfessionalFields   = errors.New("name, email and password are required")
)

type ProfessionalUsecase interface {
	CreateProfessional(ctx context.Context, actor *entity.Identity, req *dto.CreateProfessionalRequest) (*dto.ProfessionalResponse, error)
	GetAllProfessionals(ctx context.Context) ([]dto.ProfessionalResponse, error)
	GetProfessional(ctx context.Context, id uint) (*dto.ProfessionalResponse, error)
	UpdateProfessional(ctx context.Context, actor *entity.Identity, id uint, req *dto.UpdateProfessionalRequest) (*dto.ProfessionalResponse, error)
	DeleteProfessional(ctx context.Context, actor *entity.Identity, id uint) error
}

type professionalUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	accountRepo      repository.AccountRepository
	professionalRepo repository.ProfessionalRepository
	auditService     service.AuditService
	hasher           *password.Hasher
}

func NewProfessionalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	accountRepo repository.AccountRepository,
	professionalRepo repository.ProfessionalRepository,
	auditService service.AuditService,
	hasher *password.Hasher,
) ProfessionalUsecase {
	return &professionalUsecase{
		db:               db,
		log:              log,
		accountRepo:      accountRepo,
		professionalRepo: professionalRepo,
		auditService:     auditService,
		hasher:           hasher,
	}
}

// CreateProfessional inserts the account and its professional in one transaction.
// The account always starts active; the professional is active unless req says otherwise.
func (u *professionalUsecase) CreateProfessional(ctx context.Context, actor *entity.Identity, req *dto.CreateProfessionalRequest) (*dto.ProfessionalResponse, error) {
	email := strings.TrimSpace(req.Email)
	if req.Name == "" || email == "" || req.Password == "" {
		return nil, ErrProfessionalFields
	}

	role := entity.Role(req.Role)
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	hashedPassword, err := u.hasher.Hash(req.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	account := &entity.Account{
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
		Active:       true,
	}

	if err := u.accountRepo.Create(tx, account); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create account: %+v", err)
		return nil, err
	}

	professional := &entity.Professional{
		AccountID: account.ID,
		Name:      req.Name,
		Specialty: req.Specialty,
		Active:    req.Active == nil || *req.Active,
	}

	if err := u.professionalRepo.Create(tx, professional); err != nil {
		u.log.Warnf("Failed to create professional: %+v", err)
		return nil, err
	}
	professional.Account = *account

	response := converter.ProfessionalToResponse(professional)
	if err := u.auditService.LogCreate(ctx, tx, actorAccountID(actor), entity.AuditActionProfessionalCreate, "professional", professional.ID, response); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

func (u *professionalUsecase) GetAllProfessionals(ctx context.Context) ([]dto.ProfessionalResponse, error) {
	professionals, err := u.professionalRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all professionals: %+v", err)
		return nil, err
	}

	return converter.ProfessionalsToResponses(professionals), nil
}

func (u *professionalUsecase) GetProfessional(ctx context.Context, id uint) (*dto.ProfessionalResponse, error) {
	professional, err := u.professionalRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find professional: %+v", err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	return converter.ProfessionalToResponse(professional), nil
}

func (u *professionalUsecase) UpdateProfessional(ctx context.Context, actor *entity.Identity, id uint, req *dto.UpdateProfessionalRequest) (*dto.ProfessionalResponse, error) {
	if req.Name == "" {
		return nil, ErrProfessionalFields
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	professional, err := u.professionalRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find professional: %+v", err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	oldValue := converter.ProfessionalToResponse(professional)

	professional.Name = req.Name
	professional.Specialty = req.Specialty
	if req.Active != nil {
		professional.Active = *req.Active
	}

	if err := u.professionalRepo.Update(tx, professional); err != nil {
		u.log.Warnf("Failed to update professional: %+v", err)
		return nil, err
	}

	newValue := converter.ProfessionalToResponse(professional)
	if err := u.auditService.LogUpdate(ctx, tx, actorAccountID(actor), entity.AuditActionProfessionalUpdate, "professional", id, oldValue, newValue); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

// DeleteProfessional removes the professional and its account together.
func (u *professionalUsecase) DeleteProfessional(ctx context.Context, actor *entity.Identity, id uint) error {
	if actor != nil && actor.ProfessionalID == id {
		return ErrProfessionalIsSelf
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	professional, err := u.professionalRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find professional: %+v", err)
		return err
	}
	if professional == nil {
		return ErrProfessionalNotFound
	}

	rows, err := u.professionalRepo.Delete(tx, id)
	if err != nil {
		if isForeignKeyError(err, "") {
			return ErrProfessionalInUse
		}
		u.log.Warnf("Failed delete professional: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrProfessionalNotFound
	}

	if _, err := u.accountRepo.Delete(tx, professional.AccountID); err != nil {
		u.log.Warnf("Failed delete account: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, actorAccountID(actor), entity.AuditActionProfessionalDelete, "professional", id, converter.ProfessionalToResponse(professional)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
