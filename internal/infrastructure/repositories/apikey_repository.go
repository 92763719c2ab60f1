package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Irfansyah001/223-APIKeyGenerator/domain"
)

// APIKeyRepositoryImpl implements domain.APIKeyRepository using GORM
type APIKeyRepositoryImpl struct {
	db *gorm.DB
}

// DBAPIKey represents the database model for APIKey (with GORM tags).
// ExpiresAt is nullable; NULL means the key never expires and rows are
// immutable after insert.
type DBAPIKey struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index;not null"`
	User      DBUser    `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	Key       string    `gorm:"column:api_key;uniqueIndex;size:128;not null"`
	CreatedAt time.Time `gorm:"index"`
	ExpiresAt *time.Time
}

// TableName returns the table name for GORM
func (DBAPIKey) TableName() string {
	return "api_keys"
}

// keyOwnerRow is the flat scan target for the owner join
type keyOwnerRow struct {
	ID             uint
	UserID         uint
	APIKey         string
	CreatedAt      time.Time
	ExpiresAt      *time.Time
	OwnerFirstName string
	OwnerLastName  string
	OwnerEmail     string
	OwnerStatus    string
	OwnerCreatedAt time.Time
}

// NewAPIKeyRepository creates a new api key repository
func NewAPIKeyRepository(db *gorm.DB) domain.APIKeyRepository {
	return &APIKeyRepositoryImpl{db: db}
}

// Create implements domain.APIKeyRepository. The store's referential and
// unique constraints are the enforcement point: a missing owner surfaces as
// ErrOwnerNotFound, a colliding key as ErrDuplicateKey.
func (r *APIKeyRepositoryImpl) Create(ctx context.Context, key *domain.APIKey) error {
	dbKey := &DBAPIKey{
		UserID:    key.UserID,
		Key:       key.Key,
		ExpiresAt: key.ExpiresAt,
	}
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(dbKey).Error
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domain.ErrOwnerNotFound
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateKey
		}
		return err
	}
	key.ID = dbKey.ID
	key.CreatedAt = dbKey.CreatedAt
	return nil
}

// FindByKey implements domain.APIKeyRepository
func (r *APIKeyRepositoryImpl) FindByKey(ctx context.Context, rawKey string) (*domain.APIKey, error) {
	var dbKey DBAPIKey
	err := r.db.WithContext(ctx).Where("api_key = ?", rawKey).First(&dbKey).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrKeyNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbKey), nil
}

// ListByOwnerEmail implements domain.APIKeyRepository. An unknown email
// yields an empty slice, not an error.
func (r *APIKeyRepositoryImpl) ListByOwnerEmail(ctx context.Context, email string) ([]domain.APIKey, error) {
	var dbKeys []DBAPIKey
	err := r.db.WithContext(ctx).Model(&DBAPIKey{}).
		Joins("JOIN users ON users.id = api_keys.user_id").
		Where("users.email = ?", email).
		Order("api_keys.created_at DESC, api_keys.id DESC").
		Find(&dbKeys).Error
	if err != nil {
		return nil, err
	}

	keys := make([]domain.APIKey, 0, len(dbKeys))
	for i := range dbKeys {
		keys = append(keys, *r.dbToDomain(&dbKeys[i]))
	}
	return keys, nil
}

// ListAllWithOwners implements domain.APIKeyRepository, newest first
func (r *APIKeyRepositoryImpl) ListAllWithOwners(ctx context.Context) ([]domain.KeyWithOwner, error) {
	var rows []keyOwnerRow
	err := r.db.WithContext(ctx).Table("api_keys").
		Select("api_keys.id, api_keys.user_id, api_keys.api_key, api_keys.created_at, api_keys.expires_at, " +
			"users.first_name AS owner_first_name, users.last_name AS owner_last_name, " +
			"users.email AS owner_email, users.status AS owner_status, users.created_at AS owner_created_at").
		Joins("JOIN users ON users.id = api_keys.user_id").
		Order("api_keys.created_at DESC, api_keys.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]domain.KeyWithOwner, 0, len(rows))
	for _, row := range rows {
		result = append(result, domain.KeyWithOwner{
			Key: &domain.APIKey{
				ID:        row.ID,
				UserID:    row.UserID,
				Key:       row.APIKey,
				CreatedAt: row.CreatedAt,
				ExpiresAt: row.ExpiresAt,
			},
			Owner: &domain.User{
				ID:        row.UserID,
				FirstName: row.OwnerFirstName,
				LastName:  row.OwnerLastName,
				Email:     row.OwnerEmail,
				Status:    row.OwnerStatus,
				CreatedAt: row.OwnerCreatedAt,
			},
		})
	}
	return result, nil
}

// dbToDomain converts database api key to domain api key
func (r *APIKeyRepositoryImpl) dbToDomain(dbKey *DBAPIKey) *domain.APIKey {
	return &domain.APIKey{
		ID:        dbKey.ID,
		UserID:    dbKey.UserID,
		Key:       dbKey.Key,
		CreatedAt: dbKey.CreatedAt,
		ExpiresAt: dbKey.ExpiresAt,
	}
}
