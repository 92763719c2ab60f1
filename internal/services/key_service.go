package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Irfansyah001/223-APIKeyGenerator/domain"
)

// KeyServiceImpl implements domain.KeyService
type KeyServiceImpl struct {
	userRepo domain.UserRepository
	keyRepo  domain.APIKeyRepository
	keyGen   domain.KeyGenerator
	expiry   *ExpiryPolicy
	now      func() time.Time
}

// NewKeyService creates a new key service
func NewKeyService(
	userRepo domain.UserRepository,
	keyRepo domain.APIKeyRepository,
	keyGen domain.KeyGenerator,
	expiry *ExpiryPolicy,
) domain.KeyService {
	return &KeyServiceImpl{
		userRepo: userRepo,
		keyRepo:  keyRepo,
		keyGen:   keyGen,
		expiry:   expiry,
		now:      time.Now,
	}
}

// IssueKey implements domain.KeyService
func (s *KeyServiceImpl) IssueKey(ctx context.Context, req domain.IssueKeyRequest) (*domain.IssuedKey, error) {
	owner, err := s.findOrCreateOwner(ctx, req.Email, req.FirstName, req.LastName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve key owner: %w", err)
	}

	now := s.now()
	key := &domain.APIKey{
		UserID:    owner.ID,
		Key:       s.keyGen.Generate(req.Prefix),
		ExpiresAt: s.expiry.Resolve(req.Expiry, now),
	}

	if err := s.keyRepo.Create(ctx, key); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			// A random collision gets one retry with a fresh key
			key.Key = s.keyGen.Generate(req.Prefix)
			err = s.keyRepo.Create(ctx, key)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to store api key: %w", err)
		}
	}

	log.Printf("KEY_ISSUED: key_id=%d user_id=%d email=%s expiry=%s timestamp=%s",
		key.ID, owner.ID, owner.Email, req.Expiry, now.UTC().Format(time.RFC3339))

	return &domain.IssuedKey{
		Key:    key,
		Owner:  owner,
		Status: s.expiry.Status(key.ExpiresAt, now),
	}, nil
}

// findOrCreateOwner looks up a user by exact email, refreshing the stored
// name when it changed, and creates the user otherwise. A lost insert race
// is resolved by re-reading the row the winner created.
func (s *KeyServiceImpl) findOrCreateOwner(ctx context.Context, email, firstName, lastName string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		if user.FirstName != firstName || user.LastName != lastName {
			if err := s.userRepo.UpdateName(ctx, user.ID, firstName, lastName); err != nil {
				return nil, err
			}
			user.FirstName = firstName
			user.LastName = lastName
		}
		return user, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	user = &domain.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Status:    domain.StatusActive,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return s.userRepo.FindByEmail(ctx, email)
		}
		return nil, err
	}
	return user, nil
}

// ValidateKey implements domain.KeyService
func (s *KeyServiceImpl) ValidateKey(ctx context.Context, rawKey string) (*domain.KeyValidation, error) {
	key, err := s.keyRepo.FindByKey(ctx, rawKey)
	if err != nil {
		return nil, err
	}

	status := s.expiry.Status(key.ExpiresAt, s.now())
	return &domain.KeyValidation{
		Valid:  status == domain.StatusActive,
		Status: status,
		Key:    key,
	}, nil
}

// KeysByEmail implements domain.KeyService. An unknown email yields an
// empty listing.
func (s *KeyServiceImpl) KeysByEmail(ctx context.Context, email string) ([]domain.KeyWithStatus, error) {
	keys, err := s.keyRepo.ListByOwnerEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	now := s.now()
	result := make([]domain.KeyWithStatus, 0, len(keys))
	for i := range keys {
		result = append(result, domain.KeyWithStatus{
			Key:    &keys[i],
			Status: s.expiry.Status(keys[i].ExpiresAt, now),
		})
	}
	return result, nil
}
