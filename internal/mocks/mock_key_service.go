package mocks

import (
	"context"

	"github.com/Irfansyah001/223-APIKeyGenerator/domain"
)

// MockKeyService implements domain.KeyService interface for testing
type MockKeyService struct {
	IssueKeyFunc    func(ctx context.Context, req domain.IssueKeyRequest) (*domain.IssuedKey, error)
	ValidateKeyFunc func(ctx context.Context, rawKey string) (*domain.KeyValidation, error)
	KeysByEmailFunc func(ctx context.Context, email string) ([]domain.KeyWithStatus, error)
}

// NewMockKeyService creates a new MockKeyService with default behaviors
func NewMockKeyService() *MockKeyService {
	return &MockKeyService{}
}

// IssueKey issues a new api key
func (m *MockKeyService) IssueKey(ctx context.Context, req domain.IssueKeyRequest) (*domain.IssuedKey, error) {
	if m.IssueKeyFunc != nil {
		return m.IssueKeyFunc(ctx, req)
	}
	// Default behavior: canned issuance
	return &domain.IssuedKey{
		Key:    &domain.APIKey{ID: 1, UserID: 1, Key: "MOCKKEY1"},
		Owner:  &domain.User{ID: 1, FirstName: req.FirstName, LastName: req.LastName, Email: req.Email, Status: domain.StatusActive},
		Status: domain.StatusActive,
	}, nil
}

// ValidateKey validates a raw api key
func (m *MockKeyService) ValidateKey(ctx context.Context, rawKey string) (*domain.KeyValidation, error) {
	if m.ValidateKeyFunc != nil {
		return m.ValidateKeyFunc(ctx, rawKey)
	}
	// Default behavior: not found
	return nil, domain.ErrKeyNotFound
}

// KeysByEmail lists a user's keys with derived status
func (m *MockKeyService) KeysByEmail(ctx context.Context, email string) ([]domain.KeyWithStatus, error) {
	if m.KeysByEmailFunc != nil {
		return m.KeysByEmailFunc(ctx, email)
	}
	// Default behavior: empty
	return []domain.KeyWithStatus{}, nil
}
