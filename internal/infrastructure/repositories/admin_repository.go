package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Irfansyah001/223-APIKeyGenerator/domain"
)

// AdminRepositoryImpl implements domain.AdminRepository using GORM
type AdminRepositoryImpl struct {
	db *gorm.DB
}

// DBAdmin represents the database model for AdminAccount (with GORM tags)
type DBAdmin struct {
	ID           uint      `gorm:"primaryKey"`
	Email        string    `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBAdmin) TableName() string {
	return "admins"
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *gorm.DB) domain.AdminRepository {
	return &AdminRepositoryImpl{db: db}
}

// Create implements domain.AdminRepository. A unique-constraint collision
// on email is rejected, never overwritten.
func (r *AdminRepositoryImpl) Create(ctx context.Context, admin *domain.AdminAccount) error {
	dbAdmin := &DBAdmin{
		Email:        admin.Email,
		PasswordHash: admin.PasswordHash,
	}
	if err := r.db.WithContext(ctx).Create(dbAdmin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAdminExists
		}
		return err
	}
	admin.ID = dbAdmin.ID
	admin.CreatedAt = dbAdmin.CreatedAt
	return nil
}

// FindByEmail implements domain.AdminRepository
func (r *AdminRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.AdminAccount, error) {
	var dbAdmin DBAdmin
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbAdmin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &domain.AdminAccount{
		ID:           dbAdmin.ID,
		Email:        dbAdmin.Email,
		PasswordHash: dbAdmin.PasswordHash,
		CreatedAt:    dbAdmin.CreatedAt,
	}, nil
}
