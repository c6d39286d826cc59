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
	"clinic-management/pkg/jwt"
	"clinic-management/pkg/password"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrCredentialsRequired = errors.New("email and password are required")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrUnauthenticated     = errors.New("not authenticated")
	ErrForbidden           = errors.New("role not allowed")
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error)
	Logout(ctx context.Context, token string) error
	Authorize(ctx context.Context, token string, roles ...entity.Role) (*entity.Identity, error)
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	accountRepo  repository.AccountRepository
	sessionRepo  repository.SessionRepository
	auditService service.AuditService
	hasher       *password.Hasher
	jwtService   *jwt.JWTService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	accountRepo repository.AccountRepository,
	sessionRepo repository.SessionRepository,
	auditService service.AuditService,
	hasher *password.Hasher,
	jwtService *jwt.JWTService,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		accountRepo:  accountRepo,
		sessionRepo:  sessionRepo,
		auditService: auditService,
		hasher:       hasher,
		jwtService:   jwtService,
	}
}

// Login opens a session for an active professional. Unknown email, inactive
// account, inactive professional and wrong password all return ErrInvalidCredentials.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, ErrCredentialsRequired
	}

	credential, err := u.accountRepo.FindCredentialByEmail(u.db.WithContext(ctx), email)
	if err != nil {
		u.log.Warnf("Failed to find credential by email: %+v", err)
		return nil, err
	}
	if credential == nil || !credential.CanLogin() {
		return nil, ErrInvalidCredentials
	}
	if !u.hasher.Verify(req.Password, credential.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, sessionID, err := u.jwtService.GenerateSessionToken()
	if err != nil {
		u.log.Warnf("Failed to generate session token: %+v", err)
		return nil, err
	}

	identity := converter.CredentialToIdentity(credential)
	expiry := u.jwtService.GetExpiry()
	if err := u.sessionRepo.Save(ctx, sessionID, identity, expiry); err != nil {
		u.log.Warnf("Failed to store session: %+v", err)
		return nil, err
	}

	accountID := identity.AccountID
	details := map[string]interface{}{"email": identity.Email}
	if err := u.auditService.LogEvent(ctx, u.db.WithContext(ctx), &accountID, entity.AuditActionUserLogin, details); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return &dto.SessionResponse{
		Token:     token,
		ExpiresIn: int(expiry.Seconds()),
		Identity:  converter.IdentityToResponse(identity),
	}, nil
}

// Logout ends the session behind token. Unknown or already expired tokens are not an error.
func (u *authUsecase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	claims, err := u.jwtService.ValidateToken(token)
	if err != nil {
		return nil
	}

	identity, err := u.sessionRepo.Find(ctx, claims.SessionID)
	if err != nil {
		u.log.Warnf("Failed to find session: %+v", err)
		return err
	}

	if err := u.sessionRepo.Delete(ctx, claims.SessionID); err != nil {
		u.log.Warnf("Failed to delete session: %+v", err)
		return err
	}

	if identity != nil {
		accountID := identity.AccountID
		if err := u.auditService.LogEvent(ctx, u.db.WithContext(ctx), &accountID, entity.AuditActionUserLogout, nil); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
	}

	return nil
}

// Authorize resolves token to its identity. With roles given, the identity must hold one of them.
func (u *authUsecase) Authorize(ctx context.Context, token string, roles ...entity.Role) (*entity.Identity, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	claims, err := u.jwtService.ValidateToken(token)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	identity, err := u.sessionRepo.Find(ctx, claims.SessionID)
	if err != nil {
		u.log.Warnf("Failed to find session: %+v", err)
		return nil, err
	}
	if identity == nil {
		return nil, ErrUnauthenticated
	}

	if len(roles) > 0 && !identity.HasRole(roles...) {
		return nil, ErrForbidden
	}

	return identity, nil
}
