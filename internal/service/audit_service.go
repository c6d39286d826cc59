package service

import (
	"context"
	"fmt"

	"clinic-management/internal/domain/entity"
	"clinic-management/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditService writes audit_logs rows through the caller's transaction, so an
// audit row commits or rolls back together with the change it describes.
type AuditService interface {
	LogEvent(ctx context.Context, tx *gorm.DB, accountID *uint, action string, details map[string]interface{}) error
	LogCreate(ctx context.Context, tx *gorm.DB, accountID *uint, action string, entityName string, entityID uint, newValue interface{}) error
	LogUpdate(ctx context.Context, tx *gorm.DB, accountID *uint, action string, entityName string, entityID uint, oldValue, newValue interface{}) error
	LogDelete(ctx context.Context, tx *gorm.DB, accountID *uint, action string, entityName string, entityID uint, oldValue interface{}) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogEvent records an action that is not tied to a single row, such as a login.
func (s *auditService) LogEvent(ctx context.Context, tx *gorm.DB, accountID *uint, action string, details map[string]interface{}) error {
	return s.write(tx, accountID, action, datatypes.JSONMap(details))
}

func (s *auditService) LogCreate(ctx context.Context, tx *gorm.DB, accountID *uint, action string, entityName string, entityID uint, newValue interface{}) error {
	return s.write(tx, accountID, action, changeMetadata(entityName, entityID, nil, newValue))
}

func (s *auditService) LogUpdate(ctx context.Context, tx *gorm.DB, accountID *uint, action string, entityName string, entityID uint, oldValue, newValue interface{}) error {
	return s.write(tx, accountID, action, changeMetadata(entityName, entityID, oldValue, newValue))
}

func (s *auditService) LogDelete(ctx context.Context, tx *gorm.DB, accountID *uint, action string, entityName string, entityID uint, oldValue interface{}) error {
	return s.write(tx, accountID, action, changeMetadata(entityName, entityID, oldValue, nil))
}

func (s *auditService) write(tx *gorm.DB, accountID *uint, action string, metadata datatypes.JSONMap) error {
	auditLog := &entity.AuditLog{
		AccountID: accountID,
		Action:    action,
		Metadata:  metadata,
	}

	if err := s.auditRepo.Create(tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log %s: %+v", action, err)
		return err
	}

	return nil
}

func changeMetadata(entityName string, entityID uint, oldValue, newValue interface{}) datatypes.JSONMap {
	return datatypes.JSONMap{
		"entity":    entityName,
		"entity_id": fmt.Sprint(entityID),
		"old_value": oldValue,
		"new_value": newValue,
	}
}
