package mocks

import (
	"context"

	"github.com/Irfansyah001/223-APIKeyGenerator/domain"
)

// MockAdminRepository implements domain.AdminRepository interface for testing
type MockAdminRepository struct {
	CreateFunc      func(ctx context.Context, admin *domain.AdminAccount) error
	FindByEmailFunc func(ctx context.Context, email string) (*domain.AdminAccount, error)
}

// NewMockAdminRepository creates a new MockAdminRepository with default behaviors
func NewMockAdminRepository() *MockAdminRepository {
	return &MockAdminRepository{}
}

// Create stores a new admin account
func (m *MockAdminRepository) Create(ctx context.Context, admin *domain.AdminAccount) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, admin)
	}
	// Default behavior: success
	return nil
}

// FindByEmail finds an admin by email
func (m *MockAdminRepository) FindByEmail(ctx context.Context, email string) (*domain.AdminAccount, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}
