package mocks

import (
	"context"

	"github.com/Irfansyah001/223-APIKeyGenerator/domain"
)

// MockAPIKeyRepository implements domain.APIKeyRepository interface for testing
type MockAPIKeyRepository struct {
	CreateFunc            func(ctx context.Context, key *domain.APIKey) error
	FindByKeyFunc         func(ctx context.Context, rawKey string) (*domain.APIKey, error)
	ListByOwnerEmailFunc  func(ctx context.Context, email string) ([]domain.APIKey, error)
	ListAllWithOwnersFunc func(ctx context.Context) ([]domain.KeyWithOwner, error)
}

// NewMockAPIKeyRepository creates a new MockAPIKeyRepository with default behaviors
func NewMockAPIKeyRepository() *MockAPIKeyRepository {
	return &MockAPIKeyRepository{}
}

// Create stores a new api key
func (m *MockAPIKeyRepository) Create(ctx context.Context, key *domain.APIKey) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, key)
	}
	// Default behavior: success
	return nil
}

// FindByKey finds an api key by its raw value
func (m *MockAPIKeyRepository) FindByKey(ctx context.Context, rawKey string) (*domain.APIKey, error) {
	if m.FindByKeyFunc != nil {
		return m.FindByKeyFunc(ctx, rawKey)
	}
	// Default behavior: not found
	return nil, domain.ErrKeyNotFound
}

// ListByOwnerEmail lists keys owned by the given email
func (m *MockAPIKeyRepository) ListByOwnerEmail(ctx context.Context, email string) ([]domain.APIKey, error) {
	if m.ListByOwnerEmailFunc != nil {
		return m.ListByOwnerEmailFunc(ctx, email)
	}
	// Default behavior: empty
	return []domain.APIKey{}, nil
}

// ListAllWithOwners lists all keys joined with their owners
func (m *MockAPIKeyRepository) ListAllWithOwners(ctx context.Context) ([]domain.KeyWithOwner, error) {
	if m.ListAllWithOwnersFunc != nil {
		return m.ListAllWithOwnersFunc(ctx)
	}
	// Default behavior: empty
	return []domain.KeyWithOwner{}, nil
}
