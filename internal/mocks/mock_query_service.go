package mocks

import (
	"context"

	"github.com/Irfansyah001/223-APIKeyGenerator/domain"
)

// MockQueryService implements domain.QueryService interface for testing
type MockQueryService struct {
	UsersWithKeyCountsFunc func(ctx context.Context) ([]domain.UserKeyCounts, error)
	KeysWithOwnersFunc     func(ctx context.Context) ([]domain.KeyOwnerStatus, error)
}

// NewMockQueryService creates a new MockQueryService with default behaviors
func NewMockQueryService() *MockQueryService {
	return &MockQueryService{}
}

// UsersWithKeyCounts returns the per-user aggregate view
func (m *MockQueryService) UsersWithKeyCounts(ctx context.Context) ([]domain.UserKeyCounts, error) {
	if m.UsersWithKeyCountsFunc != nil {
		return m.UsersWithKeyCountsFunc(ctx)
	}
	// Default behavior: empty
	return []domain.UserKeyCounts{}, nil
}

// KeysWithOwners returns the flattened per-key view
func (m *MockQueryService) KeysWithOwners(ctx context.Context) ([]domain.KeyOwnerStatus, error) {
	if m.KeysWithOwnersFunc != nil {
		return m.KeysWithOwnersFunc(ctx)
	}
	// Default behavior: empty
	return []domain.KeyOwnerStatus{}, nil
}
