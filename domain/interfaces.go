package domain

import "context"

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	UpdateName(ctx context.Context, id uint, firstName, lastName string) error
	List(ctx context.Context) ([]User, error)
}

// APIKeyRepository defines api key data access operations.
// Listings are ordered newest first.
type APIKeyRepository interface {
	Create(ctx context.Context, key *APIKey) error
	FindByKey(ctx context.Context, rawKey string) (*APIKey, error)
	ListByOwnerEmail(ctx context.Context, email string) ([]APIKey, error)
	ListAllWithOwners(ctx context.Context) ([]KeyWithOwner, error)
}

// AdminRepository defines admin account data access operations
type AdminRepository interface {
	Create(ctx context.Context, admin *AdminAccount) error
	FindByEmail(ctx context.Context, email string) (*AdminAccount, error)
}

// KeyService defines the credential lifecycle business logic
type KeyService interface {
	IssueKey(ctx context.Context, req IssueKeyRequest) (*IssuedKey, error)
	ValidateKey(ctx context.Context, rawKey string) (*KeyValidation, error)
	KeysByEmail(ctx context.Context, email string) ([]KeyWithStatus, error)
}

// AdminService defines admin registration, login and token verification.
// Verify is a pure function of the token and the current time; a token
// stays valid until its embedded expiry regardless of later account state.
type AdminService interface {
	Register(ctx context.Context, email, password, confirmPassword string) (*AdminAccount, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Verify(token string) (*TokenClaims, error)
}

// QueryService composes read-only admin listing views
type QueryService interface {
	UsersWithKeyCounts(ctx context.Context) ([]UserKeyCounts, error)
	KeysWithOwners(ctx context.Context) ([]KeyOwnerStatus, error)
}

// PasswordService defines password hashing operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines session token operations
type TokenService interface {
	GenerateSessionToken(adminID uint, email string) (string, error)
	ValidateSessionToken(token string) (*TokenClaims, error)
}

// KeyGenerator produces raw api key strings
type KeyGenerator interface {
	Generate(prefix string) string
}

// PolicyService defines authorization policy checks
type PolicyService interface {
	CheckPermission(role, resource, action string) (bool, error)
}

// CasbinEnforcer interface defines the methods we need from Casbin enforcer
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
