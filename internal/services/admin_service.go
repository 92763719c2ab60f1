package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Irfansyah001/223-APIKeyGenerator/domain"
)

// MinPasswordLength is the minimum accepted admin password length
const MinPasswordLength = 6

// AdminServiceImpl implements domain.AdminService
type AdminServiceImpl struct {
	adminRepo   domain.AdminRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	sessionTTL  time.Duration
}

// NewAdminService creates a new admin service
func NewAdminService(
	adminRepo domain.AdminRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	sessionTTL time.Duration,
) domain.AdminService {
	return &AdminServiceImpl{
		adminRepo:   adminRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		sessionTTL:  sessionTTL,
	}
}

// Register implements domain.AdminService. The clear-text password is never
// persisted or logged; only its bcrypt hash reaches the store.
func (s *AdminServiceImpl) Register(ctx context.Context, email, password, confirmPassword string) (*domain.AdminAccount, error) {
	if len(password) < MinPasswordLength {
		return nil, domain.ErrPasswordTooShort
	}
	if password != confirmPassword {
		return nil, domain.ErrPasswordMismatch
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &domain.AdminAccount{
		Email:        email,
		PasswordHash: hashedPassword,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, domain.ErrAdminExists) {
			return nil, domain.ErrAdminExists
		}
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	log.Printf("ADMIN_REGISTERED: admin_id=%d email=%s timestamp=%s",
		admin.ID, admin.Email, time.Now().UTC().Format(time.RFC3339))

	return admin, nil
}

// Login implements domain.AdminService. Unknown email and wrong password
// collapse to the same error so the response never leaks which one failed.
func (s *AdminServiceImpl) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(admin.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenSvc.GenerateSessionToken(admin.ID, admin.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	log.Printf("ADMIN_LOGIN: admin_id=%d email=%s timestamp=%s",
		admin.ID, admin.Email, time.Now().UTC().Format(time.RFC3339))

	return &domain.LoginResult{
		Token:     token,
		Admin:     admin,
		ExpiresIn: int64(s.sessionTTL.Seconds()),
	}, nil
}

// Verify implements domain.AdminService. The check needs no store lookup:
// a token issued before an account change stays valid until its embedded
// expiry elapses.
func (s *AdminServiceImpl) Verify(token string) (*domain.TokenClaims, error) {
	return s.tokenSvc.ValidateSessionToken(token)
}
