package domain

import "time"

// Status values shared by users and derived key status
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User represents a registered key owner
type User struct {
	ID        uint
	FirstName string
	LastName  string
	Email     string
	Status    string
	CreatedAt time.Time
}

// FullName returns the display name used in issue responses
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// APIKey represents an issued credential. ExpiresAt == nil means the key
// never expires; status is derived from ExpiresAt, never stored.
type APIKey struct {
	ID        uint
	UserID    uint
	Key       string
	CreatedAt time.Time
	ExpiresAt *time.Time
}

// AdminAccount represents an administrator login
type AdminAccount struct {
	ID           uint
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// IssueKeyRequest carries the inputs for key issuance
type IssueKeyRequest struct {
	FirstName   string
	LastName    string
	Email       string
	AppName     string
	Description string
	Expiry      string
	Scopes      []string
	Prefix      string
}

// IssuedKey is the outcome of a successful issuance
type IssuedKey struct {
	Key    *APIKey
	Owner  *User
	Status string
}

// KeyValidation is the outcome of a key lookup
type KeyValidation struct {
	Valid  bool
	Status string
	Key    *APIKey
}

// KeyWithStatus pairs a key with its derived status for history listings
type KeyWithStatus struct {
	Key    *APIKey
	Status string
}

// KeyWithOwner pairs a key with its owning user, as returned by the store join
type KeyWithOwner struct {
	Key   *APIKey
	Owner *User
}

// KeyOwnerStatus is the flattened admin listing row
type KeyOwnerStatus struct {
	Key    *APIKey
	Owner  *User
	Status string
}

// UserKeyCounts aggregates per-user key totals for the admin view.
// ActiveKeys is evaluated against the current instant at query time.
type UserKeyCounts struct {
	User       *User
	TotalKeys  int
	ActiveKeys int
}

// LoginResult represents a successful admin login
type LoginResult struct {
	Token     string
	Admin     *AdminAccount
	ExpiresIn int64
}

// TokenClaims represents admin session token claims
type TokenClaims struct {
	AdminID   uint   `json:"admin_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}
