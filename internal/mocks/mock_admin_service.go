package mocks

import (
	"context"
	"time"

	"github.com/Irfansyah001/223-APIKeyGenerator/domain"
)

// MockAdminService implements domain.AdminService interface for testing
type MockAdminService struct {
	RegisterFunc func(ctx context.Context, email, password, confirmPassword string) (*domain.AdminAccount, error)
	LoginFunc    func(ctx context.Context, email, password string) (*domain.LoginResult, error)
	VerifyFunc   func(token string) (*domain.TokenClaims, error)
}

// NewMockAdminService creates a new MockAdminService with default behaviors
func NewMockAdminService() *MockAdminService {
	return &MockAdminService{}
}

// Register registers a new admin account
func (m *MockAdminService) Register(ctx context.Context, email, password, confirmPassword string) (*domain.AdminAccount, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, email, password, confirmPassword)
	}
	// Default behavior: canned account
	return &domain.AdminAccount{ID: 1, Email: email}, nil
}

// Login authenticates an admin and issues a session token
func (m *MockAdminService) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	// Default behavior: canned login
	return &domain.LoginResult{
		Token:     "mock-session-token",
		Admin:     &domain.AdminAccount{ID: 1, Email: email},
		ExpiresIn: 3600,
	}, nil
}

// Verify validates a session token
func (m *MockAdminService) Verify(token string) (*domain.TokenClaims, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(token)
	}
	// Default behavior: accept the fake token only
	if token != "mock-session-token" {
		return nil, domain.ErrTokenInvalid
	}
	now := time.Now()
	return &domain.TokenClaims{
		AdminID:   1,
		Email:     "admin@example.com",
		Role:      "admin",
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(time.Hour).Unix(),
	}, nil
}
