package services

import (
	"context"
	"time"

	"github.com/Irfansyah001/223-APIKeyGenerator/domain"
)

// QueryServiceImpl implements domain.QueryService. It holds no state of its
// own; both views are assembled from the repositories at call time, with
// key status derived against the current instant rather than cached.
type QueryServiceImpl struct {
	userRepo domain.UserRepository
	keyRepo  domain.APIKeyRepository
	expiry   *ExpiryPolicy
	now      func() time.Time
}

// NewQueryService creates a new query service
func NewQueryService(userRepo domain.UserRepository, keyRepo domain.APIKeyRepository, expiry *ExpiryPolicy) domain.QueryService {
	return &QueryServiceImpl{
		userRepo: userRepo,
		keyRepo:  keyRepo,
		expiry:   expiry,
		now:      time.Now,
	}
}

// UsersWithKeyCounts implements domain.QueryService
func (s *QueryServiceImpl) UsersWithKeyCounts(ctx context.Context) ([]domain.UserKeyCounts, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.keyRepo.ListAllWithOwners(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	type counts struct{ total, active int }
	byUser := make(map[uint]counts, len(users))
	for _, row := range rows {
		c := byUser[row.Key.UserID]
		c.total++
		if s.expiry.Status(row.Key.ExpiresAt, now) == domain.StatusActive {
			c.active++
		}
		byUser[row.Key.UserID] = c
	}

	result := make([]domain.UserKeyCounts, 0, len(users))
	for i := range users {
		c := byUser[users[i].ID]
		result = append(result, domain.UserKeyCounts{
			User:       &users[i],
			TotalKeys:  c.total,
			ActiveKeys: c.active,
		})
	}
	return result, nil
}

// KeysWithOwners implements domain.QueryService
func (s *QueryServiceImpl) KeysWithOwners(ctx context.Context) ([]domain.KeyOwnerStatus, error) {
	rows, err := s.keyRepo.ListAllWithOwners(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	result := make([]domain.KeyOwnerStatus, 0, len(rows))
	for _, row := range rows {
		result = append(result, domain.KeyOwnerStatus{
			Key:    row.Key,
			Owner:  row.Owner,
			Status: s.expiry.Status(row.Key.ExpiresAt, now),
		})
	}
	return result, nil
}
